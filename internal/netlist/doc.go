// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package netlist holds the in-memory model compared by netdiff.
//
// A Net is a named signal and the ordered list of connection points (members)
// attached to it. A Netlist is a name-sorted collection of nets read from one
// input, together with a single forward cursor used by the merge-join walkers
// in the differ and compositor packages.
//
// Diff state lives on each Net:
//
//   - Differs is true when the whole net exists on one side only.
//   - DifferingMembers lists members present on this side and absent on the
//     other. It is only populated when Differs is false.
//
// Diff state is written by the differ package and cleared with ClearDiffs
// before every run, so a pair of netlists can be diffed repeatedly without
// being parsed again.
package netlist
