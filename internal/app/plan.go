package app

import (
	"context"
	"fmt"

	"github.com/vk/volsweep/internal/config"
	"github.com/vk/volsweep/internal/ctxlog"
	"github.com/vk/volsweep/internal/renderer"
)

// LoadPlan loads the sweep file, applies the CLI overrides and validates
// the result.
func (a *App) LoadPlan(ctx context.Context) (*config.Plan, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading sweep plan...", "sweep_path", a.config.SweepPath)

	plan, err := a.loader.Load(ctx, a.config.SweepPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	a.applyOverrides(plan)
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sweep plan: %w", err)
	}

	logger.Info("Sweep plan loaded.",
		"images", len(plan.Images),
		"sweeps", len(plan.Sweeps),
		"planned_runs", plan.PlannedRuns(),
		"sinks", len(plan.Sinks),
		"output_dir", plan.Output.Dir,
	)
	return plan, nil
}

func (a *App) applyOverrides(plan *config.Plan) {
	if a.config.RendererPath != "" {
		plan.Renderer.Path = a.config.RendererPath
	}
	if a.config.WorkDir != "" {
		plan.Renderer.WorkDir = a.config.WorkDir
	}
	if a.config.OutputDir != "" {
		plan.Output.Dir = a.config.OutputDir
	}
	if a.config.Timeout > 0 {
		plan.Renderer.Timeout = a.config.Timeout
	}
}

func rendererSettings(r config.Renderer) renderer.Settings {
	return renderer.Settings{
		Path:         r.Path,
		WorkDir:      r.WorkDir,
		Width:        r.Width,
		Height:       r.Height,
		Frames:       r.Frames,
		Timeout:      r.Timeout,
		Args:         r.Args,
		Env:          r.Env,
		GradientTest: r.GradientTest,
	}
}
