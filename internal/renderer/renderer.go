package renderer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/vk/volsweep/internal/ctxlog"
	"github.com/vk/volsweep/internal/model"
)

// waitDelay bounds how long Run waits for output pipes after the child has
// been killed.
const waitDelay = 2 * time.Second

// Renderer runs the external renderer binary.
type Renderer struct {
	settings Settings
}

// New returns a Renderer for the given settings.
func New(settings Settings) *Renderer {
	return &Renderer{settings: settings}
}

// Settings returns a copy of the renderer's settings.
func (r *Renderer) Settings() Settings {
	return r.settings
}

// Run executes one job synchronously and parses its output. A non-zero
// exit status is not a failure on its own: if the benchmark lines are
// present the metrics are returned and the status is only logged.
func (r *Renderer) Run(ctx context.Context, job Job) (*model.Metrics, error) {
	logger := ctxlog.FromContext(ctx).With("job", job.String())

	runCtx := ctx
	if r.settings.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.settings.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, r.settings.Path, r.Args(job)...)
	cmd.Dir = r.settings.WorkDir
	cmd.Env = r.environ(os.Environ())
	cmd.WaitDelay = waitDelay

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	logger.Debug("Starting renderer.", "command", r.CommandLine(job), "workdir", r.settings.WorkDir)
	start := time.Now()
	runErr := cmd.Run()
	output := out.String()
	logger.Debug("Renderer exited.", "elapsed", time.Since(start), "output_bytes", len(output))

	exitCode := 0
	if runErr != nil {
		var exitErr *exec.ExitError
		switch {
		case ctx.Err() != nil:
			return nil, &RunError{Kind: KindCanceled, Job: job, Output: output, Err: ctx.Err()}
		case runCtx.Err() != nil:
			return nil, &RunError{Kind: KindTimeout, Job: job, Output: output,
				Err: fmt.Errorf("no result after %s: %w", r.settings.Timeout, runCtx.Err())}
		case errors.As(runErr, &exitErr):
			exitCode = exitErr.ExitCode()
		default:
			return nil, &RunError{Kind: KindLaunch, Job: job, Output: output, Err: runErr}
		}
	}

	metrics, err := ParseOutput(output)
	if err != nil {
		if exitCode != 0 {
			err = fmt.Errorf("%w (exit status %d)", err, exitCode)
		}
		return nil, &RunError{Kind: KindParse, Job: job, Output: output, Err: err}
	}
	if exitCode != 0 {
		logger.Warn("Renderer exited with non-zero status but reported metrics.", "exit_code", exitCode)
	}
	return metrics, nil
}
