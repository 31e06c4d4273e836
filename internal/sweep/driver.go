package sweep

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vk/volsweep/internal/config"
	"github.com/vk/volsweep/internal/ctxlog"
	"github.com/vk/volsweep/internal/model"
	"github.com/vk/volsweep/internal/renderer"
	"github.com/vk/volsweep/internal/report"
)

// Invoker runs one renderer configuration. *renderer.Renderer implements it.
type Invoker interface {
	Run(ctx context.Context, job renderer.Job) (*model.Metrics, error)
	CommandLine(job renderer.Job) string
}

// Publisher receives every finished table. *sink.Multi implements it.
type Publisher interface {
	Publish(ctx context.Context, table *model.Table) error
}

// Options tune the driver's side effects.
type Options struct {
	// OutputDir receives benchmark_results_<skipmode>.csv files.
	OutputDir string
	// Summary receives the console table after each skip mode. Nil disables it.
	Summary io.Writer
	// DryRun logs each command line instead of running it. Nothing is
	// written or published.
	DryRun bool
}

// Driver runs sweeps over a fixed image table.
type Driver struct {
	invoker   Invoker
	images    []model.ImageSpec
	publisher Publisher
	opts      Options
	progress  *Progress
}

// New creates a driver. publisher may be nil.
func New(invoker Invoker, images []model.ImageSpec, publisher Publisher, opts Options) *Driver {
	return &Driver{
		invoker:   invoker,
		images:    images,
		publisher: publisher,
		opts:      opts,
		progress:  NewProgress(),
	}
}

// Progress exposes the live counters.
func (d *Driver) Progress() *Progress {
	return d.progress
}

// Run executes the sweeps in order and returns one table per sweep. It
// stops at the first fatal error (an unwritable result file or a cancelled
// context); tables finished before that are still returned.
func (d *Driver) Run(ctx context.Context, sweeps []config.Sweep) ([]*model.Table, error) {
	logger := ctxlog.FromContext(ctx)

	planned := 0
	for _, s := range sweeps {
		planned += len(s.BlockSizes) * len(d.images)
	}
	d.progress.begin(planned)
	logger.Info("🚀 Starting benchmark sweep.", "sweeps", len(sweeps), "images", len(d.images), "planned_runs", planned, "dry_run", d.opts.DryRun)

	tables := make([]*model.Table, 0, len(sweeps))
	for _, s := range sweeps {
		table, err := d.SweepBlockSizes(ctx, s.SkipMode, s.BlockSizes)
		if table != nil {
			tables = append(tables, table)
		}
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				d.progress.finish(StatusCanceled)
			} else {
				d.progress.finish(StatusError)
			}
			return tables, err
		}
	}

	d.progress.finish(StatusComplete)
	snap := d.progress.Snapshot()
	logger.Info("🏁 Benchmark sweep finished.",
		"completed", snap.Completed,
		"reused", snap.Reused,
		"failed", snap.Failed,
		"skipped", snap.Skipped,
	)
	return tables, nil
}

// SweepBlockSizes runs every image under one skip mode for each block size
// in order, then writes, prints and publishes the resulting table.
func (d *Driver) SweepBlockSizes(ctx context.Context, mode model.SkipMode, blockSizes []int) (*model.Table, error) {
	ctx, logger := ctxlog.With(ctx, "skipmode", int(mode))
	logger.Info("Sweeping block sizes.", "mode", mode.String(), "block_sizes", blockSizes)

	table := model.NewTable(mode)
	runErr := d.collect(ctx, table, mode, blockSizes)

	if d.opts.DryRun {
		return table, runErr
	}
	if err := d.emit(ctx, table); err != nil {
		return table, errors.Join(runErr, err)
	}
	return table, runErr
}

func (d *Driver) collect(ctx context.Context, table *model.Table, mode model.SkipMode, blockSizes []int) error {
	logger := ctxlog.FromContext(ctx)

	for _, img := range d.images {
		logger.Debug("Processing image.", "image", img.Label, "file", img.File)

		// first holds the metrics of this image's first block size and is
		// only consulted under skip mode 0. It is reset per image, so a
		// failed run can never pick up another image's result.
		var first *model.Metrics

		for i, b := range blockSizes {
			if err := ctx.Err(); err != nil {
				logger.Warn("Sweep interrupted.", "error", err, "rows", table.Len())
				return err
			}
			job := renderer.Job{Image: img, Config: model.RunConfig{SkipMode: mode, BlockSize: b}}

			if mode.UsesBlockSize() || i == 0 {
				m := d.runOne(ctx, job)
				first = m
				if m != nil {
					table.Append(model.Row{Image: img, Config: job.Config, Metrics: *m})
				}
				continue
			}

			if first == nil {
				logger.Debug("No skip-mode-0 result to reuse.", "job", job.String())
				d.progress.skippedRun()
				continue
			}
			table.Append(model.Row{Image: img, Config: job.Config, Metrics: *first, Reused: true})
			d.progress.reusedRun()
		}
	}
	return nil
}

// runOne invokes the renderer and turns any failure into a logged, skipped
// configuration. It returns nil when no data point should be recorded.
func (d *Driver) runOne(ctx context.Context, job renderer.Job) *model.Metrics {
	logger := ctxlog.FromContext(ctx).With("job", job.String())

	if d.opts.DryRun {
		logger.Info("Dry run, not starting renderer.", "command", d.invoker.CommandLine(job))
		d.progress.skippedRun()
		return nil
	}

	d.progress.running(job.String())
	m, err := d.invoker.Run(ctx, job)
	if err != nil {
		var runErr *renderer.RunError
		if (errors.As(err, &runErr) && runErr.Kind == renderer.KindCanceled) || errors.Is(err, context.Canceled) {
			logger.Info("Renderer run interrupted, configuration not recorded.")
			d.progress.interrupted()
			return nil
		}
		if errors.As(err, &runErr) {
			logger.Warn("Renderer run failed, skipping configuration.", "kind", runErr.Kind, "error", runErr.Err, "output", runErr.Output)
		} else {
			logger.Warn("Renderer run failed, skipping configuration.", "error", err)
		}
		d.progress.failedRun(err)
		return nil
	}

	logger.Info("Run complete.",
		"framerate", m.FramerateFPS,
		"update_ms", m.UpdateMS,
		"occupancy", m.OccupancyPercent,
	)
	d.progress.succeeded()
	return m
}

// emit writes the CSV, prints the summary and publishes the table. Only the
// CSV write is fatal.
func (d *Driver) emit(ctx context.Context, table *model.Table) error {
	logger := ctxlog.FromContext(ctx)

	if d.opts.Summary != nil {
		fmt.Fprintf(d.opts.Summary, "\nskipmode %d (%s)\n", int(table.SkipMode), table.SkipMode)
		if err := report.WriteSummary(d.opts.Summary, table); err != nil {
			logger.Warn("Failed to print summary.", "error", err)
		}
	}

	path, err := report.WriteFile(d.opts.OutputDir, table)
	if err != nil {
		return err
	}
	logger.Info("📊 Result table written.", "path", path, "rows", table.Len())

	if d.publisher != nil {
		if err := d.publisher.Publish(ctx, table); err != nil {
			logger.Error("Failed to publish result table.", "error", err)
		}
	}
	return nil
}
