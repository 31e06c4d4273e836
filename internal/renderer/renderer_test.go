package renderer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/volsweep/internal/model"
)

var presentJob = Job{
	Image: model.ImageSpec{
		File:         "present_492x492x442.uint16",
		Label:        "present",
		IntensityMin: 0.071,
		IntensityMax: 1.0,
	},
	Config: model.RunConfig{SkipMode: model.SkipBlock, BlockSize: 3},
}

func TestArgs_MatchesRendererContract(t *testing.T) {
	r := New(Settings{Path: "vrender", Width: 1200, Height: 1200, Frames: 1000})

	want := []string{
		"--width=1200",
		"--height=1200",
		"--benchmark=1000",
		"--imin=0.071",
		"--imax=1.0",
		"--gmin=0.0",
		"--gmax=0.0",
		"--blocksize=3",
		"--skipmode=1",
		"present_492x492x442.uint16",
	}
	if diff := cmp.Diff(want, r.Args(presentJob)); diff != "" {
		t.Fatalf("Args() mismatch (-want +got):\n%s", diff)
	}
}

func TestArgs_PrefixAndGradientTest(t *testing.T) {
	r := New(Settings{Path: "prime-run", Args: []string{"vrender"}, Width: 64, Height: 32, Frames: 5, GradientTest: true})

	args := r.Args(presentJob)

	require.Equal(t, "vrender", args[0])
	require.Equal(t, "--gradient_test", args[len(args)-2])
	require.Equal(t, "present_492x492x442.uint16", args[len(args)-1])
}

func TestCommandLine_QuotesSpaces(t *testing.T) {
	r := New(Settings{Path: "C:/Program Files/vrender.exe", Width: 1, Height: 1, Frames: 1})
	assert.True(t, strings.HasPrefix(r.CommandLine(presentJob), `"C:/Program Files/vrender.exe" --width=1`))
}

// TestHelperProcess is not a real test. It is re-executed as a fake renderer
// by the tests below.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("VOLSWEEP_HELPER_PROCESS") != "1" {
		return
	}
	args := os.Args
	for i, a := range args {
		if a == "--" {
			args = args[i+1:]
			break
		}
	}
	wd, _ := os.Getwd()

	switch os.Getenv("VOLSWEEP_HELPER_MODE") {
	case "echo":
		fmt.Println("args:", strings.Join(args, " "))
		fmt.Println("cwd:", wd)
	case "ok":
		fmt.Println("Occupied voxels: 12.5% in 0.5ms")
		fmt.Fprintln(os.Stderr, "Updated occupancy/distance map in 4.12ms")
		fmt.Println("ran 1000 frames, averaged 57.3 fps")
	case "exit":
		fmt.Println("Occupied voxels: 12.5%")
		fmt.Println("Updated occupancy/distance map in 4.12ms")
		fmt.Println("ran 1000 frames, averaged 57.3 fps")
		os.Exit(3)
	case "crash":
		fmt.Println("VK_ERROR_DEVICE_LOST")
		os.Exit(1)
	case "hang":
		time.Sleep(30 * time.Second)
	}
	os.Exit(0)
}

func helperRenderer(t *testing.T, mode string, timeout time.Duration) *Renderer {
	t.Helper()
	return New(Settings{
		Path:    os.Args[0],
		WorkDir: t.TempDir(),
		Width:   1200,
		Height:  1200,
		Frames:  1000,
		Timeout: timeout,
		Args:    []string{"-test.run=TestHelperProcess", "--"},
		Env: map[string]string{
			"VOLSWEEP_HELPER_PROCESS": "1",
			"VOLSWEEP_HELPER_MODE":    mode,
		},
	})
}

func TestRun_Success(t *testing.T) {
	r := helperRenderer(t, "ok", 0)

	m, err := r.Run(context.Background(), presentJob)

	require.NoError(t, err)
	assert.Equal(t, 57.3, m.FramerateFPS)
	assert.Equal(t, 4.12, m.UpdateMS, "stderr must be captured alongside stdout")
	assert.Equal(t, 12.5, m.OccupancyPercent)
	require.NotNil(t, m.OccupancyCountMS)
	assert.Equal(t, 0.5, *m.OccupancyCountMS)
}

func TestRun_NonZeroExitWithMetricsSucceeds(t *testing.T) {
	r := helperRenderer(t, "exit", 0)

	m, err := r.Run(context.Background(), presentJob)

	require.NoError(t, err)
	assert.Equal(t, 57.3, m.FramerateFPS)
}

func TestRun_ParseFailureCarriesOutput(t *testing.T) {
	r := helperRenderer(t, "crash", 0)

	m, err := r.Run(context.Background(), presentJob)

	require.Nil(t, m)
	var runErr *RunError
	require.True(t, errors.As(err, &runErr))
	assert.Equal(t, KindParse, runErr.Kind)
	assert.Contains(t, runErr.Output, "VK_ERROR_DEVICE_LOST")
	assert.Contains(t, runErr.Error(), "exit status 1")
	assert.ErrorIs(t, err, ErrMetricNotFound)
}

func TestRun_Timeout(t *testing.T) {
	r := helperRenderer(t, "hang", 200*time.Millisecond)

	start := time.Now()
	_, err := r.Run(context.Background(), presentJob)

	var runErr *RunError
	require.True(t, errors.As(err, &runErr))
	assert.Equal(t, KindTimeout, runErr.Kind)
	assert.Less(t, time.Since(start), 20*time.Second)
}

func TestRun_Canceled(t *testing.T) {
	r := helperRenderer(t, "hang", 0)
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err := r.Run(ctx, presentJob)

	var runErr *RunError
	require.True(t, errors.As(err, &runErr))
	assert.Equal(t, KindCanceled, runErr.Kind)
}

func TestRun_LaunchFailure(t *testing.T) {
	r := New(Settings{Path: filepath.Join(t.TempDir(), "does-not-exist"), Width: 1, Height: 1, Frames: 1})

	_, err := r.Run(context.Background(), presentJob)

	var runErr *RunError
	require.True(t, errors.As(err, &runErr))
	assert.Equal(t, KindLaunch, runErr.Kind)
}

func TestRun_UsesWorkDirAndArgs(t *testing.T) {
	// The echo mode prints argv and cwd but no metrics, so the output comes
	// back on the parse error.
	r := helperRenderer(t, "echo", 0)

	_, err := r.Run(context.Background(), presentJob)

	var runErr *RunError
	require.True(t, errors.As(err, &runErr))
	assert.Contains(t, runErr.Output, "args: --width=1200 --height=1200 --benchmark=1000 --imin=0.071 --imax=1.0 --gmin=0.0 --gmax=0.0 --blocksize=3 --skipmode=1 present_492x492x442.uint16")
	wantDir, err := filepath.EvalSymlinks(r.Settings().WorkDir)
	require.NoError(t, err)
	assert.Contains(t, runErr.Output, "cwd: "+wantDir)
}
