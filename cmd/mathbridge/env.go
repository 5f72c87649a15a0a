package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/mark3labs/mathbridge/internal/arith"
	"github.com/mark3labs/mathbridge/internal/config"
	"github.com/mark3labs/mathbridge/internal/logger"
	mbnats "github.com/mark3labs/mathbridge/internal/nats"
	"github.com/mark3labs/mathbridge/internal/sink"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// env is the per-command runtime: loaded config plus the sink it selects.
type env struct {
	cfg  *config.Config
	sink arith.Sink

	nc     *nats.Conn
	ns     *server.Server
	js     jetstream.JetStream
	stream jetstream.Stream
}

// loadEnv reads config, applies logging settings, and builds the sink.
// stdout is where the stdout sink writes.
func loadEnv(ctx context.Context, stdout io.Writer) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, fmt.Errorf("configuring logger: %w", err)
	}

	e := &env{cfg: cfg}
	switch cfg.Sink {
	case config.SinkStdout:
		e.sink = sink.NewWriterSink(stdout)
	case config.SinkLogger:
		e.sink = sink.NewLoggerSink(nil)
	case config.SinkNATS:
		if err := e.openNATS(ctx); err != nil {
			return nil, err
		}
		e.sink = sink.NewJetStreamSink(e.js, cfg.Channel)
	}

	logger.Debug("Using %s sink", cfg.Sink)
	return e, nil
}

// openNATS starts the embedded server under data_dir/nats and prepares the log stream.
func (e *env) openNATS(ctx context.Context) error {
	ns, err := mbnats.StartEmbeddedNATS(filepath.Join(e.cfg.DataDir, "nats"))
	if err != nil {
		return fmt.Errorf("failed to start NATS: %w", err)
	}
	nc, err := mbnats.ConnectInProcess(ns)
	if err != nil {
		ns.Shutdown()
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}
	e.ns, e.nc = ns, nc

	e.js, err = mbnats.CreateJetStream(nc)
	if err != nil {
		e.Close()
		return fmt.Errorf("failed to create JetStream context: %w", err)
	}
	e.stream, err = mbnats.SetupStream(ctx, e.js)
	if err != nil {
		e.Close()
		return fmt.Errorf("failed to set up log stream: %w", err)
	}
	return nil
}

// Service returns an arithmetic service bound to the env's sink.
func (e *env) Service() *arith.Service {
	return arith.New(e.sink)
}

// Close shuts down NATS if it was started.
func (e *env) Close() {
	if e.ns == nil {
		return
	}
	if err := mbnats.Shutdown(e.nc, e.ns); err != nil {
		logger.Warn("NATS shutdown: %v", err)
	}
	e.nc, e.ns = nil, nil
}
