// Package logmanager owns the ring buffer, worker pool, and sink list that
// together deliver classified Records to every configured output.
package logmanager

import (
	"go.uber.org/zap"

	"github.com/aymanrg/telemetrylogd/internal/record"
	"github.com/aymanrg/telemetrylogd/internal/ringbuffer"
	"github.com/aymanrg/telemetrylogd/internal/sink"
	"github.com/aymanrg/telemetrylogd/internal/workerpool"
)

// LogManager owns the ring buffer, the worker pool, and the sink list.
// AddSink must be called before Log is ever invoked — sinks are not added
// concurrently with logging.
type LogManager struct {
	buffer *ringbuffer.RingBuffer[record.Record]
	pool   *workerpool.Pool
	sinks  []sink.Sink
	diag   *zap.SugaredLogger
}

// New constructs a LogManager with the given buffer capacity and worker
// pool size. diag receives the operational notices spec.md requires
// ("buffer full, message dropped" and similar) — it is never handed a
// Record, only human-readable diagnostics about the pipeline itself.
func New(capacity, poolSize int, diag *zap.SugaredLogger) *LogManager {
	return &LogManager{
		buffer: ringbuffer.New[record.Record](capacity),
		pool:   workerpool.New(poolSize),
		diag:   diag,
	}
}

// AddSink registers sink for future drains, in the order sinks should
// receive each record.
func (m *LogManager) AddSink(s sink.Sink) {
	m.sinks = append(m.sinks, s)
}

// Log pushes rec into the ring buffer and, on success, submits a drain task
// to the worker pool. On overflow the record is dropped and a single notice
// is emitted to the diagnostic logger — emission never blocks on the
// pipeline itself.
func (m *LogManager) Log(rec record.Record) {
	if !m.buffer.TryPush(rec) {
		m.diag.Warnw("buffer full, message dropped", "context", rec.Context)
		return
	}
	m.pool.Submit(m.Drain)
}

// Drain repeatedly pops a record and writes it to every sink, in
// registration order, until the buffer is empty. Calling Drain on an empty
// buffer is a no-op. Two workers draining concurrently may interleave with
// each other; within a single drain call, pop order equals pop order across
// its writes. A sink write failure is ignored — only buffer overflow earns
// a diagnostic notice.
func (m *LogManager) Drain() {
	for {
		rec, ok := m.buffer.TryPop()
		if !ok {
			return
		}
		for _, s := range m.sinks {
			_ = s.Write(rec)
		}
	}
}

// Close performs the ordered shutdown spec.md mandates: a final Drain so no
// record sits in the buffer, then the worker pool is stopped (which joins
// every worker after finishing any tasks already queued).
func (m *LogManager) Close() {
	m.Drain()
	m.pool.Stop()
}
