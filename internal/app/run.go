package app

import (
	"context"
	"fmt"

	"github.com/vk/volsweep/internal/ctxlog"
	"github.com/vk/volsweep/internal/sweep"
)

// Run executes the whole sweep described by the configured sweep file.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	plan, err := a.LoadPlan(ctx)
	if err != nil {
		return err
	}

	var publisher sweep.Publisher
	if a.config.DryRun {
		a.logger.Info("Dry run requested, sinks are not connected.")
	} else if len(plan.Sinks) > 0 {
		sinks, err := a.connectSinks(ctx, plan.Sinks, a.runID)
		if err != nil {
			return err
		}
		defer func() {
			if err := sinks.Close(); err != nil {
				a.logger.Warn("Failed to close sinks.", "error", err)
			}
		}()
		publisher = sinks
	}

	driver := sweep.New(
		a.newInvoker(rendererSettings(plan.Renderer)),
		plan.Images,
		publisher,
		sweep.Options{OutputDir: plan.Output.Dir, Summary: a.outW, DryRun: a.config.DryRun},
	)
	a.progress = driver.Progress()

	a.healthCheckServer()
	defer a.closeHealthCheckServer()

	tables, err := driver.Run(ctx, plan.Sweeps)
	if err != nil {
		return fmt.Errorf("sweep failed after %d of %d tables: %w", len(tables), len(plan.Sweeps), err)
	}

	a.logger.Debug("App.Run method finished.", "tables", len(tables))
	return nil
}
