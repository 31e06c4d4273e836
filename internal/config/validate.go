package config

import (
	"errors"
	"fmt"
)

// Validate reports every problem with the plan at once.
func (p *Plan) Validate() error {
	var errs []error

	if p.Renderer.Path == "" {
		errs = append(errs, errors.New("renderer: path is required"))
	}
	if p.Renderer.Width <= 0 || p.Renderer.Height <= 0 {
		errs = append(errs, fmt.Errorf("renderer: resolution %dx%d must be positive", p.Renderer.Width, p.Renderer.Height))
	}
	if p.Renderer.Frames <= 0 {
		errs = append(errs, fmt.Errorf("renderer: frames %d must be positive", p.Renderer.Frames))
	}
	if p.Renderer.Timeout < 0 {
		errs = append(errs, fmt.Errorf("renderer: timeout %s must not be negative", p.Renderer.Timeout))
	}

	if len(p.Images) == 0 {
		errs = append(errs, errors.New("at least one image block is required"))
	}
	for _, img := range p.Images {
		if err := img.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	for i, s := range p.Sweeps {
		if !s.SkipMode.Valid() {
			errs = append(errs, fmt.Errorf("sweep %d: skip mode %d out of range 0..3", i, s.SkipMode))
		}
		if len(s.BlockSizes) == 0 {
			errs = append(errs, fmt.Errorf("sweep %d: block_sizes must not be empty", i))
		}
		for _, b := range s.BlockSizes {
			if b < 1 {
				errs = append(errs, fmt.Errorf("sweep %d: block size %d must be at least 1", i, b))
			}
		}
	}

	for _, s := range p.Sinks {
		if s.Kind == "" {
			errs = append(errs, errors.New("sink: kind label is required"))
		}
	}

	return errors.Join(errs...)
}

// PlannedRuns returns how many rows a fully successful run would produce.
func (p *Plan) PlannedRuns() int {
	n := 0
	for _, s := range p.Sweeps {
		n += len(s.BlockSizes) * len(p.Images)
	}
	return n
}
