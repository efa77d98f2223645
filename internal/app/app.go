// Package app wires the configured sinks and sources into a LogManager and
// runs the pipeline's lifecycle: start writer and producer goroutines,
// observe the shutdown signal, and join everything in order.
package app

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/aymanrg/telemetrylogd/internal/config"
	"github.com/aymanrg/telemetrylogd/internal/logmanager"
	"github.com/aymanrg/telemetrylogd/internal/policy"
	"github.com/aymanrg/telemetrylogd/internal/sink"
	"github.com/aymanrg/telemetrylogd/internal/source"
)

// closer is satisfied by every source driver that owns an OS resource.
type closer interface {
	Close() error
}

// App owns the LogManager, the sinks that need an explicit Close, and the
// lifecycle of every producer and writer goroutine.
type App struct {
	cfg     config.Config
	diag    *zap.SugaredLogger
	manager *logmanager.LogManager

	fileSinks []*sink.FileSink

	running  atomic.Bool
	sourceWG sync.WaitGroup
	writerWG sync.WaitGroup
}

// New constructs an App from cfg, registering every enabled sink. Sinks
// must all be registered before Run starts producers, matching
// LogManager's "add_sink before log" contract.
func New(cfg config.Config, diag *zap.SugaredLogger) *App {
	a := &App{
		cfg:  cfg,
		diag: diag,
	}
	a.manager = logmanager.New(cfg.LogManager.BufferCapacity, cfg.LogManager.ThreadPoolSize, diag)
	a.setupSinks()
	return a
}

func (a *App) setupSinks() {
	if a.cfg.Sinks.Console.Enabled {
		a.manager.AddSink(sink.NewConsoleSink())
	}

	for _, f := range a.cfg.Sinks.Files {
		if !f.Enabled || f.Path == "" {
			continue
		}
		newSink := sink.NewFileSink
		if f.Format == "json" {
			newSink = sink.NewJSONFileSink
		}
		fs, err := newSink(f.Path)
		if err != nil {
			a.diag.Warnw("failed to open file sink, skipping", "path", f.Path, "error", err)
			continue
		}
		a.manager.AddSink(fs)
		a.fileSinks = append(a.fileSinks, fs)
	}
}

// Run starts the writer goroutine and one producer goroutine per enabled
// source, then blocks until ctx is cancelled (the "shutdown requested"
// edge). On return, every producer and the writer have already been
// joined and a final drain has run.
func (a *App) Run(ctx context.Context) {
	a.running.Store(true)

	a.startWriter()
	a.startSources()

	<-ctx.Done()
	a.running.Store(false)

	a.sourceWG.Wait()
	a.writerWG.Wait()
	a.manager.Close()

	for _, fs := range a.fileSinks {
		if err := fs.Close(); err != nil {
			a.diag.Warnw("failed to close file sink", "error", err)
		}
	}
}

func (a *App) startWriter() {
	interval := a.cfg.SinkFlushInterval()
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}

	a.writerWG.Add(1)
	go func() {
		defer a.writerWG.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for a.running.Load() {
			<-ticker.C
			a.manager.Drain()
		}
		a.manager.Drain()
	}()
}

func (a *App) startSources() {
	if a.cfg.Sources.File.Enabled {
		a.startProducer("file", source.NewFileSource(a.cfg.Sources.File.Path),
			a.cfg.Sources.File.Policy, a.cfg.Sources.File.ParseRateMs)
	}
	if a.cfg.Sources.Socket.Enabled {
		a.startProducer("socket", source.NewTCPSource(a.cfg.Sources.Socket.IP, a.cfg.Sources.Socket.Port),
			a.cfg.Sources.Socket.Policy, a.cfg.Sources.Socket.ParseRateMs)
	}
	if a.cfg.Sources.SomeIP.Enabled {
		a.startProducer("someip", source.NewEventSource(),
			a.cfg.Sources.SomeIP.Policy, a.cfg.Sources.SomeIP.ParseRateMs)
	}
}

// startProducer launches one producer goroutine for src. It resolves
// policyName once up front: an unrecognized policy means this source is
// misconfigured and never produces a goroutine at all, rather than
// silently running with a default.
func (a *App) startProducer(name string, src source.Source, policyName string, rateMs int) {
	pol, ok := policy.ByName(policyName)
	if !ok {
		a.diag.Warnw("unrecognized policy, source disabled", "source", name, "policy", policyName)
		return
	}
	cadence := time.Duration(rateMs) * time.Millisecond

	a.sourceWG.Add(1)
	go func() {
		defer a.sourceWG.Done()
		if c, ok := src.(closer); ok {
			defer c.Close()
		}

		if !src.Open() {
			a.diag.Warnw("source open failed, producer exiting without retry", "source", name)
			return
		}

		for a.running.Load() {
			raw, ok := src.Read()
			if !ok {
				a.diag.Infow("source read failed or reached end of stream, producer exiting", "source", name)
				return
			}
			if rec, ok := policy.Format(pol, raw); ok {
				a.manager.Log(rec)
			}
			time.Sleep(cadence)
		}
	}()
}
