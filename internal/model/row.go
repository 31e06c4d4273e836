// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the per-run result types. A Row is the unit written to
// CSV and published to sinks. A Table groups the rows of one skip mode in
// the order they were produced.

package model

// RunConfig is the renderer configuration a single invocation is made with.
type RunConfig struct {
	SkipMode  SkipMode
	BlockSize int
}

// Metrics are the values scraped from one renderer invocation.
type Metrics struct {
	FramerateFPS     float64
	UpdateMS         float64 // occupancy/distance map update time
	OccupancyPercent float64

	// Optional extras. They are nil when the renderer did not print them.
	GradientUpdateMS *float64
	OccupancyCountMS *float64
}

// Row is a single recorded data point.
type Row struct {
	Image   ImageSpec
	Config  RunConfig
	Metrics Metrics

	// Reused is set on skip-mode-0 rows whose metrics were copied from the
	// image's first block size instead of a fresh invocation.
	Reused bool
}

// Table is the ordered set of rows collected for one skip mode.
type Table struct {
	SkipMode SkipMode
	Rows     []Row
}

// NewTable returns an empty table for the given skip mode.
func NewTable(mode SkipMode) *Table {
	return &Table{SkipMode: mode}
}

// Append adds a row. Rows are stored by value, so later changes to the
// caller's copy do not leak into the table.
func (t *Table) Append(r Row) {
	t.Rows = append(t.Rows, r)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
