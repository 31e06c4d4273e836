// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders v as the shortest decimal that round-trips, always
// keeping a decimal point: 0 becomes "0.0" and 1 becomes "1.0". Both the
// renderer arguments and the CSV cells use this form, so an imax of 1
// reaches the renderer as --imax=1.0 and lands in the table as 1.0.
func FormatFloat(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
