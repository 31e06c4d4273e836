package renderer

import (
	"fmt"
	"time"

	"github.com/vk/volsweep/internal/model"
)

// Settings holds everything about the renderer that stays fixed for a
// whole sweep.
type Settings struct {
	Path    string // executable
	WorkDir string // working directory, volume files resolve against it

	Width  int
	Height int
	Frames int // --benchmark frame count

	// Timeout bounds a single invocation. Zero means no limit.
	Timeout time.Duration

	// Args are placed before the generated flags, e.g. a wrapper's own flags.
	Args []string
	// Env is appended to the parent process environment.
	Env map[string]string

	// GradientTest makes the renderer compute gradients on the fly.
	GradientTest bool
}

// Job is one renderer invocation: an image under a run configuration.
type Job struct {
	Image  model.ImageSpec
	Config model.RunConfig
}

// String identifies the job in logs and errors.
func (j Job) String() string {
	return fmt.Sprintf("%s skipmode=%d blocksize=%d", j.Image.Label, j.Config.SkipMode, j.Config.BlockSize)
}
