package sink

import (
	"bufio"
	"encoding/json"
	"os"
	"sync"

	"github.com/aymanrg/telemetrylogd/internal/record"
)

// Format selects how FileSink renders a record to disk.
type Format int

const (
	// LineFormat is the mandated on-stream format, the only format the
	// console sink ever uses.
	LineFormat Format = iota
	// JSONFormat is a file-sink-only alternative encoding of the same
	// fields, for downstream machine consumption. It is an encoding
	// choice, not a query surface.
	JSONFormat
)

// FileSink appends records to an open, append-mode file. Each write is
// flushed immediately so a clean or unclean shutdown never loses a record
// that was already written to the sink.
type FileSink struct {
	mu     sync.Mutex
	file   *os.File
	writer *bufio.Writer
	format Format
}

// NewFileSink opens path in append mode, creating it if necessary.
func NewFileSink(path string) (*FileSink, error) {
	return newFileSink(path, LineFormat)
}

// NewJSONFileSink opens path in append mode and renders every record as a
// single line of JSON.
func NewJSONFileSink(path string) (*FileSink, error) {
	return newFileSink(path, JSONFormat)
}

func newFileSink(path string, format Format) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	return &FileSink{
		file:   f,
		writer: bufio.NewWriter(f),
		format: format,
	}, nil
}

type jsonRecord struct {
	AppName   string `json:"app_name"`
	Context   string `json:"context"`
	Message   string `json:"message"`
	Severity  string `json:"severity"`
	Timestamp string `json:"timestamp"`
}

// Write appends rec to the file and flushes. Safe to call from any worker
// goroutine; two records arriving concurrently from different workers are
// serialized by mu.
func (f *FileSink) Write(rec record.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var line []byte
	if f.format == JSONFormat {
		encoded, err := json.Marshal(jsonRecord{
			AppName:   rec.AppName,
			Context:   rec.Context,
			Message:   rec.Message,
			Severity:  rec.Severity.String(),
			Timestamp: rec.Timestamp.Format("2006-01-02 15:04:05"),
		})
		if err != nil {
			return err
		}
		line = encoded
	} else {
		line = []byte(rec.String())
	}

	if _, err := f.writer.Write(line); err != nil {
		return err
	}
	if err := f.writer.WriteByte('\n'); err != nil {
		return err
	}
	return f.writer.Flush()
}

// Close flushes any buffered data and closes the underlying file. Must be
// called at most once, from the owner that opened the sink.
func (f *FileSink) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.writer.Flush(); err != nil {
		f.file.Close()
		return err
	}
	return f.file.Close()
}
