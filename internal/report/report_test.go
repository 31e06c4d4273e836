package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/volsweep/internal/model"
)

func presentRow(block int) model.Row {
	return model.Row{
		Image: model.ImageSpec{
			File:         "present_492x492x442.uint16",
			Label:        "present",
			IntensityMin: 0.071,
			IntensityMax: 1.0,
		},
		Config:  model.RunConfig{SkipMode: model.SkipBlock, BlockSize: block},
		Metrics: model.Metrics{FramerateFPS: 57.3, UpdateMS: 4.12, OccupancyPercent: 12.5},
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "benchmark_results_0.csv", FileName(model.SkipNone))
	assert.Equal(t, "benchmark_results_3.csv", FileName(model.SkipAnisotropic))
}

func TestWriteCSV_DocumentedRow(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, []model.Row{presentRow(3)}))

	want := "image,skipmode,blocksize,occupancy,framerate,update,imin,imax,gmin,gmax\n" +
		"present,1,3,12.5,57.3,4.12,0.071,1.0,0.0,0.0\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_EmptyTableHasHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, strings.Join(Columns, ",")+"\n", buf.String())
}

func TestWriteFile_RoundTrip(t *testing.T) {
	// --- Arrange ---
	dir := filepath.Join(t.TempDir(), "nested", "results")
	table := model.NewTable(model.SkipBlock)
	for _, b := range []int{2, 3, 4} {
		r := presentRow(b)
		r.Metrics.FramerateFPS += float64(b)
		table.Append(r)
	}
	beetle := presentRow(5)
	beetle.Image.Label = "beetle, stag"
	beetle.Image.GradientMin, beetle.Image.GradientMax = 0.1, 0.3
	table.Append(beetle)

	// --- Act ---
	path, err := WriteFile(dir, table)
	require.NoError(t, err)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	got, err := ReadCSV(f)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "benchmark_results_1.csv"), path)

	want := make([]model.Row, len(table.Rows))
	for i, r := range table.Rows {
		r.Image.File = ""
		want[i] = r
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadCSV_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		errMsg string
	}{
		{"empty", "", "empty"},
		{"wrong header", "img,skipmode,blocksize,occupancy,framerate,update,imin,imax,gmin,gmax\n", `column 0 is "img"`},
		{"bad number", strings.Join(Columns, ",") + "\npresent,1,three,12.5,57.3,4.12,0.071,1.0,0.0,0.0\n", "line 2: blocksize"},
		{"short record", strings.Join(Columns, ",") + "\npresent,1\n", "wrong number of fields"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tc.input))
			require.ErrorContains(t, err, tc.errMsg)
		})
	}
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	table := model.NewTable(model.SkipBlock)
	table.Append(presentRow(3))

	require.NoError(t, WriteSummary(&buf, table))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "image")
	assert.Contains(t, lines[0], "gmax")
	assert.Equal(t, []string{"0", "present", "1", "3", "12.5", "57.3", "4.12", "0.071", "1.0", "0.0", "0.0"}, strings.Fields(lines[1]))
}

func TestWriteSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, model.NewTable(model.SkipDistance)))
	assert.Contains(t, buf.String(), "no rows for skip mode 2")
}
