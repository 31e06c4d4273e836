package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/vk/volsweep/internal/config"
	"github.com/vk/volsweep/internal/ctxlog"
	"github.com/vk/volsweep/internal/renderer"
	"github.com/vk/volsweep/internal/sink"
	"github.com/vk/volsweep/internal/sweep"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	ctx        context.Context
	logger     *slog.Logger
	config     *Config
	loader     config.Loader
	runID      string
	httpServer *http.Server
	progress   *sweep.Progress

	// Seams for tests; NewApp wires the real implementations.
	newInvoker   func(renderer.Settings) sweep.Invoker
	connectSinks func(ctx context.Context, specs []config.Sink, runID string) (*sink.Multi, error)
}

// NewApp is the constructor for the main application. It returns an App
// with its own isolated logger. Nothing is loaded until Run.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	runID := newRunID(time.Now())
	logger = logger.With("run_id", runID)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:     outW,
		ctx:      ctx,
		logger:   logger,
		config:   cfg,
		loader:   loader,
		runID:    runID,
		progress: sweep.NewProgress(),
		newInvoker: func(s renderer.Settings) sweep.Invoker {
			return renderer.New(s)
		},
		connectSinks: sink.New,
	}
}

// RunID identifies this process's results in every sink.
func (a *App) RunID() string {
	return a.runID
}

func newRunID(now time.Time) string {
	return now.UTC().Format("20060102T150405Z")
}
