// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model defines the value types a benchmark sweep is made of: the
// images under test, the renderer configuration for a single run, the
// metrics scraped from the renderer, and the result rows collected per
// skip mode.
//
// # Core Concepts
//
//   - ImageSpec: one entry of the image table. A volume file plus the
//     intensity and gradient window the transfer function is opened to.
//
//   - SkipMode: the renderer's empty-space skipping strategy. Mode 0
//     disables skipping, which makes the block size irrelevant to the
//     renderer's output.
//
//   - RunConfig: the (skip mode, block size) pair a single renderer
//     invocation is made with.
//
//   - Row: one successful invocation, or one reuse of a skip-mode-0
//     invocation for a further block size. Rows are never mutated after
//     they are appended to a Table.
//
// Everything in this package is plain data. Parsing, process handling and
// serialization live in the renderer and report packages.
package model
