package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/volsweep/internal/model"
)

func validPlan() *Plan {
	p := &Plan{
		Renderer: Renderer{Path: "vrender"},
		Images: []model.ImageSpec{
			{File: "present_492x492x442.uint16", Label: "present", IntensityMin: 0.071, IntensityMax: 1.0},
		},
	}
	p.ApplyDefaults()
	return p
}

func TestApplyDefaults(t *testing.T) {
	p := &Plan{}
	p.ApplyDefaults()

	assert.Equal(t, DefaultWidth, p.Renderer.Width)
	assert.Equal(t, DefaultHeight, p.Renderer.Height)
	assert.Equal(t, DefaultFrames, p.Renderer.Frames)
	assert.Equal(t, ".", p.Output.Dir)
	require.Len(t, p.Sweeps, 4)
	for i, s := range p.Sweeps {
		assert.Equal(t, model.SkipMode(i), s.SkipMode)
		assert.Equal(t, []int{2, 3, 4, 5, 6}, s.BlockSizes)
	}
}

func TestDefaultSweeps_DoNotShareBackingArrays(t *testing.T) {
	sweeps := DefaultSweeps()
	sweeps[0].BlockSizes[0] = 99

	assert.Equal(t, 2, DefaultSweeps()[0].BlockSizes[0])
	assert.Equal(t, 2, sweeps[1].BlockSizes[0])
}

func TestValidate(t *testing.T) {
	require.NoError(t, validPlan().Validate())

	testCases := []struct {
		name   string
		mutate func(p *Plan)
		errMsg string
	}{
		{"missing path", func(p *Plan) { p.Renderer.Path = "" }, "path is required"},
		{"no images", func(p *Plan) { p.Images = nil }, "at least one image"},
		{"bad skip mode", func(p *Plan) { p.Sweeps[0].SkipMode = 4 }, "out of range"},
		{"empty block sizes", func(p *Plan) { p.Sweeps[1].BlockSizes = nil }, "must not be empty"},
		{"zero block size", func(p *Plan) { p.Sweeps[1].BlockSizes = []int{0} }, "at least 1"},
		{"inverted window", func(p *Plan) { p.Images[0].IntensityMax = 0 }, "greater than imax"},
		{"negative frames", func(p *Plan) { p.Renderer.Frames = -1 }, "frames"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := validPlan()
			tc.mutate(p)
			require.ErrorContains(t, p.Validate(), tc.errMsg)
		})
	}
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	p := validPlan()
	p.Renderer.Path = ""
	p.Images = nil

	err := p.Validate()
	require.ErrorContains(t, err, "path is required")
	require.ErrorContains(t, err, "at least one image")
}

func TestPlannedRuns(t *testing.T) {
	p := validPlan()
	p.Images = append(p.Images, p.Images[0])
	assert.Equal(t, 4*5*2, p.PlannedRuns())
}
