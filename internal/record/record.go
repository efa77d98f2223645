// Package record defines the immutable log record produced by the
// telemetry-to-log pipeline once a raw sample has been classified.
package record

import (
	"fmt"
	"time"
)

// Severity is the classification a Policy assigns to a telemetry sample.
type Severity int

const (
	Info Severity = iota
	Warning
	Critical
)

// String renders the severity the way it appears on the wire format.
func (s Severity) String() string {
	switch s {
	case Warning:
		return "Warning"
	case Critical:
		return "Critical"
	default:
		return "Info"
	}
}

// timestampLayout is the wall-clock format mandated by the wire format:
// "YYYY-MM-DD HH:MM:SS" in local time at creation.
const timestampLayout = "2006-01-02 15:04:05"

// Record is a fully-formed log line value, immutable after construction.
// Ownership transfers by value through the ring buffer; copying a Record is
// cheap and safe.
type Record struct {
	AppName   string
	Context   string
	Message   string
	Severity  Severity
	Timestamp time.Time
}

// New builds a Record stamped with the current local wall-clock time.
func New(appName, context, message string, severity Severity) Record {
	return Record{
		AppName:   appName,
		Context:   context,
		Message:   message,
		Severity:  severity,
		Timestamp: time.Now(),
	}
}

// String renders the record using the mandated on-stream format:
//
//	[<app_name>] [<timestamp>] [<context>] [<severity>] [<message>]
func (r Record) String() string {
	return fmt.Sprintf("[%s] [%s] [%s] [%s] [%s]",
		r.AppName,
		r.Timestamp.Format(timestampLayout),
		r.Context,
		r.Severity,
		r.Message,
	)
}
