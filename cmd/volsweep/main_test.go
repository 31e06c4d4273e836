package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/volsweep/internal/cli"
	"github.com/vk/volsweep/internal/testutil"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_InvalidSweepFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	invalidHCL := `
		renderer {
			path = "vrender"
		// Missing closing brace here
	`
	filePath := testutil.WriteFile(t, "sweep.hcl", invalidHCL)

	// --- Act ---
	err := run(context.Background(), &bytes.Buffer{}, []string{filePath})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestRun_DryRunEndToEnd(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	sweepHCL := `
renderer {
  path = "vrender"
}

image "present" {
  file = "present_492x492x442.uint16"
  imin = 0.071
  imax = 1.0
}
`
	filePath := testutil.WriteFile(t, "sweep.hcl", sweepHCL)
	outDir := filepath.Join(filepath.Dir(filePath), "results")
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, []string{"-dry-run", "-output-dir", outDir, filePath})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "--imin=0.071 --imax=1.0")
	_, statErr := os.Stat(outDir)
	require.True(t, os.IsNotExist(statErr), "a dry run writes no result files")
}
