package config

import "github.com/vk/volsweep/internal/model"

// Defaults for settings a sweep file may omit.
const (
	DefaultWidth     = 1200
	DefaultHeight    = 1200
	DefaultFrames    = 1000
	DefaultOutputDir = "."
)

// DefaultBlockSizes is the block-size list tried when a sweep does not
// name its own.
var DefaultBlockSizes = []int{2, 3, 4, 5, 6}

// DefaultSweeps returns one sweep per skip mode over DefaultBlockSizes.
func DefaultSweeps() []Sweep {
	sweeps := make([]Sweep, 0, len(model.AllSkipModes))
	for _, mode := range model.AllSkipModes {
		sizes := make([]int, len(DefaultBlockSizes))
		copy(sizes, DefaultBlockSizes)
		sweeps = append(sweeps, Sweep{SkipMode: mode, BlockSizes: sizes})
	}
	return sweeps
}

// ApplyDefaults fills every unset field with its default.
func (p *Plan) ApplyDefaults() {
	if p.Renderer.Width == 0 {
		p.Renderer.Width = DefaultWidth
	}
	if p.Renderer.Height == 0 {
		p.Renderer.Height = DefaultHeight
	}
	if p.Renderer.Frames == 0 {
		p.Renderer.Frames = DefaultFrames
	}
	if p.Output.Dir == "" {
		p.Output.Dir = DefaultOutputDir
	}
	if len(p.Sweeps) == 0 {
		p.Sweeps = DefaultSweeps()
	}
}
