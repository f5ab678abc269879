// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ computes the differences between a baseline and a compare
// netlist.
//
// Walk is the single merge-join over two name-sorted netlists. It drives both
// the diff itself and the side-by-side compositor so the visual order of the
// report always matches the decisions taken by Diff: on a name mismatch the
// lexicographically smaller side advances alone.
package differ
