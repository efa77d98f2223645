package sink

import (
	"bufio"
	"os"
	"sync"

	"github.com/aymanrg/telemetrylogd/internal/record"
)

// consoleMu is process-wide: stdout is a single shared stream, so every
// ConsoleSink instance serializes through the same mutex rather than one
// per instance.
var consoleMu sync.Mutex

// ConsoleSink appends a record's textual form to standard output followed
// by a newline.
type ConsoleSink struct {
	writer *bufio.Writer
}

// NewConsoleSink returns a sink that writes to stdout.
func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{writer: bufio.NewWriter(os.Stdout)}
}

// Write renders rec using its mandated on-stream format and flushes it to
// stdout. Safe to call from any worker goroutine.
func (c *ConsoleSink) Write(rec record.Record) error {
	consoleMu.Lock()
	defer consoleMu.Unlock()

	if _, err := c.writer.WriteString(rec.String()); err != nil {
		return err
	}
	if err := c.writer.WriteByte('\n'); err != nil {
		return err
	}
	return c.writer.Flush()
}
