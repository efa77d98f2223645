// Package sink implements the pipeline's output endpoints. A Sink is
// invoked from worker goroutines; the LogManager guarantees at most one
// worker writes a given Record to a given sink at a time, but two different
// records may visit the same sink concurrently from two workers, so every
// Sink implementation serializes its own output stream.
package sink

import "github.com/aymanrg/telemetrylogd/internal/record"

// Sink is a polymorphic write-one-record endpoint.
type Sink interface {
	Write(record.Record) error
}
