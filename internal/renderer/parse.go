package renderer

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/vk/volsweep/internal/model"
)

// ErrMetricNotFound is wrapped by ParseOutput when a required line is
// missing or its number does not parse.
var ErrMetricNotFound = errors.New("metric not found in renderer output")

var (
	framerateRe = regexp.MustCompile(`ran \d+ frames, averaged ([\d.]+) fps`)
	updateRe    = regexp.MustCompile(`Updated occupancy/distance map in ([\d.]+)ms`)
	occupancyRe = regexp.MustCompile(`Occupied voxels: ([\d.]+)%(?: in ([\d.]+)ms)?`)
	gradientRe  = regexp.MustCompile(`Updated gradient map in ([\d.]+)ms`)
)

// ParseOutput extracts the benchmark metrics from the renderer's combined
// output. Lines may appear in any order and be mixed with unrelated
// output; the first match of each pattern wins.
func ParseOutput(output string) (*model.Metrics, error) {
	var (
		m       model.Metrics
		missing []string
	)

	required := []struct {
		name string
		re   *regexp.Regexp
		dst  *float64
	}{
		{"framerate", framerateRe, &m.FramerateFPS},
		{"update", updateRe, &m.UpdateMS},
		{"occupancy", occupancyRe, &m.OccupancyPercent},
	}
	for _, r := range required {
		v, ok := firstFloat(r.re, output, 1)
		if !ok {
			missing = append(missing, r.name)
			continue
		}
		*r.dst = v
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMetricNotFound, strings.Join(missing, ", "))
	}

	if v, ok := firstFloat(occupancyRe, output, 2); ok {
		m.OccupancyCountMS = &v
	}
	if v, ok := firstFloat(gradientRe, output, 1); ok {
		m.GradientUpdateMS = &v
	}
	return &m, nil
}

func firstFloat(re *regexp.Regexp, s string, group int) (float64, bool) {
	match := re.FindStringSubmatch(s)
	if len(match) <= group || match[group] == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(match[group], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
