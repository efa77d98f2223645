// Command telemetrylogd runs the telemetry-to-log pipeline as a long-lived
// process, configured from a single declarative file and shut down cleanly
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/aymanrg/telemetrylogd/internal/app"
	"github.com/aymanrg/telemetrylogd/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "config.json", "path to the pipeline's JSON config file")
	flag.Parse()

	banner := logrus.New()
	banner.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load(*configPath)
	if err != nil {
		banner.WithError(err).WithField("path", *configPath).Error("failed to load configuration")
		return 1
	}

	banner.WithFields(logrus.Fields{
		"buffer_capacity":    cfg.LogManager.BufferCapacity,
		"thread_pool_size":   cfg.LogManager.ThreadPoolSize,
		"sink_flush_rate_ms": cfg.LogManager.SinkFlushRateMs,
		"console_sink":       cfg.Sinks.Console.Enabled,
		"file_sinks":         len(cfg.Sinks.Files),
	}).Info("starting telemetrylogd")

	diagLogger, err := zap.NewProduction()
	if err != nil {
		banner.WithError(err).Error("failed to construct diagnostic logger")
		return 1
	}
	defer diagLogger.Sync()
	diag := diagLogger.Sugar()

	a := app.New(cfg, diag)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Run(ctx)

	banner.Info("telemetrylogd shut down cleanly")
	return 0
}
