// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import "fmt"

// ImageSpec is one row of the image table. The same volume file may appear
// several times with different transfer-function windows.
type ImageSpec struct {
	File  string // volume filename, resolved by the renderer relative to its working directory
	Label string // display label written to the "image" column

	IntensityMin float64
	IntensityMax float64
	GradientMin  float64
	GradientMax  float64
}

// Validate checks the invariants the renderer relies on.
func (s ImageSpec) Validate() error {
	if s.File == "" {
		return fmt.Errorf("image %q: file must not be empty", s.Label)
	}
	if s.Label == "" {
		return fmt.Errorf("image %q: label must not be empty", s.File)
	}
	if s.IntensityMin > s.IntensityMax {
		return fmt.Errorf("image %q: imin %s is greater than imax %s", s.Label, FormatFloat(s.IntensityMin), FormatFloat(s.IntensityMax))
	}
	if s.GradientMin > s.GradientMax {
		return fmt.Errorf("image %q: gmin %s is greater than gmax %s", s.Label, FormatFloat(s.GradientMin), FormatFloat(s.GradientMax))
	}
	return nil
}
