package sink

import (
	"github.com/vk/volsweep/internal/model"
	"github.com/vk/volsweep/internal/report"
)

// Record is the wire form of one result row.
type Record struct {
	RunID        string  `json:"run_id"`
	Image        string  `json:"image"`
	File         string  `json:"file"`
	CSVFile      string  `json:"csv_file"`
	SkipMode     int     `json:"skipmode"`
	SkipModeName string  `json:"skipmode_name"`
	BlockSize    int     `json:"blocksize"`
	Occupancy    float64 `json:"occupancy"`
	Framerate    float64 `json:"framerate"`
	Update       float64 `json:"update"`
	IMin         float64 `json:"imin"`
	IMax         float64 `json:"imax"`
	GMin         float64 `json:"gmin"`
	GMax         float64 `json:"gmax"`
	Reused       bool    `json:"reused"`

	GradientUpdateMS *float64 `json:"gradient_update_ms,omitempty"`
	OccupancyCountMS *float64 `json:"occupancy_count_ms,omitempty"`
}

// Records flattens a table into wire records tagged with runID.
func Records(runID string, table *model.Table) []Record {
	out := make([]Record, 0, table.Len())
	csvFile := report.FileName(table.SkipMode)
	for _, r := range table.Rows {
		out = append(out, Record{
			RunID:            runID,
			Image:            r.Image.Label,
			File:             r.Image.File,
			CSVFile:          csvFile,
			SkipMode:         int(r.Config.SkipMode),
			SkipModeName:     r.Config.SkipMode.String(),
			BlockSize:        r.Config.BlockSize,
			Occupancy:        r.Metrics.OccupancyPercent,
			Framerate:        r.Metrics.FramerateFPS,
			Update:           r.Metrics.UpdateMS,
			IMin:             r.Image.IntensityMin,
			IMax:             r.Image.IntensityMax,
			GMin:             r.Image.GradientMin,
			GMax:             r.Image.GradientMax,
			Reused:           r.Reused,
			GradientUpdateMS: r.Metrics.GradientUpdateMS,
			OccupancyCountMS: r.Metrics.OccupancyCountMS,
		})
	}
	return out
}
