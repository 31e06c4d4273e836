package config

import (
	"time"

	"github.com/vk/volsweep/internal/model"
)

// Plan is the complete, explicit description of a sweep run.
type Plan struct {
	Renderer Renderer
	Images   []model.ImageSpec
	Sweeps   []Sweep
	Output   Output
	Sinks    []Sink
}

// Renderer describes the external renderer and the fixed part of its
// command line.
type Renderer struct {
	Path         string
	WorkDir      string
	Width        int
	Height       int
	Frames       int
	Timeout      time.Duration
	Args         []string
	Env          map[string]string
	GradientTest bool
}

// Sweep is one skip mode together with the ordered block sizes to try.
type Sweep struct {
	SkipMode   model.SkipMode
	BlockSizes []int
}

// Output controls where result tables are written.
type Output struct {
	Dir string
}

// Sink is a configured result publisher. Settings holds the block's
// attributes as strings; each sink kind interprets its own keys.
type Sink struct {
	Kind     string
	Name     string
	Settings map[string]string
}
