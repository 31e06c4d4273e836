// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines SkipMode, the selector the renderer receives through
// --skipmode. The numbering is fixed by the renderer; values outside 0..3
// are silently replaced by the renderer's own default, so the driver
// refuses them up front instead.

package model

import (
	"fmt"
	"strconv"
	"strings"
)

// SkipMode selects how the renderer skips empty space during ray traversal.
type SkipMode int

const (
	// SkipNone disables empty-space skipping. Block size has no effect.
	SkipNone SkipMode = iota
	// SkipBlock skips whole empty blocks.
	SkipBlock
	// SkipDistance uses an isotropic distance map.
	SkipDistance
	// SkipAnisotropic uses an anisotropic distance map.
	SkipAnisotropic
)

var skipModeNames = [...]string{"none", "block", "distance", "anisotropic"}

// AllSkipModes lists every mode in renderer order.
var AllSkipModes = []SkipMode{SkipNone, SkipBlock, SkipDistance, SkipAnisotropic}

// Valid reports whether the renderer recognises the mode.
func (m SkipMode) Valid() bool {
	return m >= SkipNone && m <= SkipAnisotropic
}

// UsesBlockSize reports whether the renderer's output depends on the block
// size under this mode.
func (m SkipMode) UsesBlockSize() bool {
	return m != SkipNone
}

// String returns the mode's lower-case name, or its number if unknown.
func (m SkipMode) String() string {
	if !m.Valid() {
		return strconv.Itoa(int(m))
	}
	return skipModeNames[m]
}

// ParseSkipMode accepts either the numeric form used on the renderer's
// command line or the mode's name.
func ParseSkipMode(s string) (SkipMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		m := SkipMode(n)
		if !m.Valid() {
			return 0, fmt.Errorf("skip mode %d out of range 0..3", n)
		}
		return m, nil
	}
	for i, name := range skipModeNames {
		if name == s {
			return SkipMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown skip mode %q", s)
}
