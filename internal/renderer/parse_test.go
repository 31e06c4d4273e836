package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const benchmarkOutput = `[info] Initializing context
[info] Occupied voxels: 12.5% in 0.8ms
[info] Updated gradient map in 9.75ms
[info] Updated occupancy/distance map in 4.12ms
[info] ran 1000 frames, averaged 57.3 fps
`

func TestParseOutput_ExtractsAllMetrics(t *testing.T) {
	m, err := ParseOutput(benchmarkOutput)
	require.NoError(t, err)

	assert.Equal(t, 57.3, m.FramerateFPS)
	assert.Equal(t, 4.12, m.UpdateMS)
	assert.Equal(t, 12.5, m.OccupancyPercent)
	require.NotNil(t, m.OccupancyCountMS)
	assert.Equal(t, 0.8, *m.OccupancyCountMS)
	require.NotNil(t, m.GradientUpdateMS)
	assert.Equal(t, 9.75, *m.GradientUpdateMS)
}

func TestParseOutput_OrderIndependent(t *testing.T) {
	orders := []string{
		"ran 1000 frames, averaged 57.3 fps\nUpdated occupancy/distance map in 4.12ms\nOccupied voxels: 12.5%\n",
		"Occupied voxels: 12.5%\nnoise line\nran 1000 frames, averaged 57.3 fps\nUpdated occupancy/distance map in 4.12ms",
		"Updated occupancy/distance map in 4.12ms Occupied voxels: 12.5% ran 1000 frames, averaged 57.3 fps",
	}
	for _, out := range orders {
		m, err := ParseOutput(out)
		require.NoError(t, err, out)
		assert.Equal(t, 57.3, m.FramerateFPS)
		assert.Equal(t, 4.12, m.UpdateMS)
		assert.Equal(t, 12.5, m.OccupancyPercent)
		assert.Nil(t, m.GradientUpdateMS)
		assert.Nil(t, m.OccupancyCountMS)
	}
}

func TestParseOutput_FirstMatchWins(t *testing.T) {
	out := "Updated occupancy/distance map in 4.12ms\nUpdated occupancy/distance map in 9.99ms\n" +
		"Occupied voxels: 12.5%\nran 10 frames, averaged 57.3 fps\n"
	m, err := ParseOutput(out)
	require.NoError(t, err)
	assert.Equal(t, 4.12, m.UpdateMS)
}

func TestParseOutput_MissingMetrics(t *testing.T) {
	testCases := []struct {
		name    string
		output  string
		missing string
	}{
		{"empty", "", "framerate, update, occupancy"},
		{"no framerate", "Updated occupancy/distance map in 4.12ms\nOccupied voxels: 12.5%", "framerate"},
		{"no update", "ran 1000 frames, averaged 57.3 fps\nOccupied voxels: 12.5%", "update"},
		{"no occupancy", "ran 1000 frames, averaged 57.3 fps\nUpdated occupancy/distance map in 4.12ms", "occupancy"},
		{"unparseable number", "ran 1000 frames, averaged 5.7.3 fps\nUpdated occupancy/distance map in 4.12ms\nOccupied voxels: 12.5%", "framerate"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := ParseOutput(tc.output)
			require.ErrorIs(t, err, ErrMetricNotFound)
			assert.Nil(t, m)
			assert.Contains(t, err.Error(), tc.missing)
		})
	}
}
