package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vk/volsweep/internal/model"
)

// Columns is the fixed column order of every result file.
var Columns = []string{"image", "skipmode", "blocksize", "occupancy", "framerate", "update", "imin", "imax", "gmin", "gmax"}

// FileName returns the result file name for a skip mode.
func FileName(mode model.SkipMode) string {
	return fmt.Sprintf("benchmark_results_%d.csv", int(mode))
}

// WriteCSV writes the header and one record per row.
func WriteCSV(w io.Writer, rows []model.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(record(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func record(r model.Row) []string {
	return []string{
		r.Image.Label,
		strconv.Itoa(int(r.Config.SkipMode)),
		strconv.Itoa(r.Config.BlockSize),
		model.FormatFloat(r.Metrics.OccupancyPercent),
		model.FormatFloat(r.Metrics.FramerateFPS),
		model.FormatFloat(r.Metrics.UpdateMS),
		model.FormatFloat(r.Image.IntensityMin),
		model.FormatFloat(r.Image.IntensityMax),
		model.FormatFloat(r.Image.GradientMin),
		model.FormatFloat(r.Image.GradientMax),
	}
}

// WriteFile writes table to dir/FileName(table.SkipMode), creating dir if
// needed, and returns the path written.
func WriteFile(dir string, table *model.Table) (path string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	path = filepath.Join(dir, FileName(table.SkipMode))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create result file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close result file %s: %w", path, cerr)
		}
	}()

	if err := WriteCSV(f, table.Rows); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// ReadCSV parses a result file back into rows. Only the columns present in
// the file are restored, so Image.File and the optional metrics are empty.
func ReadCSV(r io.Reader) ([]model.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Columns)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("result file is empty")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i, name := range Columns {
		if header[i] != name {
			return nil, fmt.Errorf("column %d is %q, want %q", i, header[i], name)
		}
	}

	var rows []model.Row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		row, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
}

func parseRecord(rec []string) (model.Row, error) {
	var (
		row  model.Row
		errs []error
	)
	atoi := func(col int) int {
		v, err := strconv.Atoi(rec[col])
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", Columns[col], err))
		}
		return v
	}
	atof := func(col int) float64 {
		v, err := strconv.ParseFloat(rec[col], 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", Columns[col], err))
		}
		return v
	}

	row.Image.Label = rec[0]
	row.Config.SkipMode = model.SkipMode(atoi(1))
	row.Config.BlockSize = atoi(2)
	row.Metrics.OccupancyPercent = atof(3)
	row.Metrics.FramerateFPS = atof(4)
	row.Metrics.UpdateMS = atof(5)
	row.Image.IntensityMin = atof(6)
	row.Image.IntensityMax = atof(7)
	row.Image.GradientMin = atof(8)
	row.Image.GradientMax = atof(9)

	return row, errors.Join(errs...)
}
