// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package parser reads netlist files into netlist.Netlist values.
//
// Two formats are understood:
//
//   - PADS ASCII netlists. A line starting with *SIGNAL* opens a net named by
//     the rest of the line; following lines list the net's pins separated by
//     whitespace; a line starting with any other * marker (*NET*, *PART*,
//     *END*) closes it. Pin lines outside a net are ignored, and a net left open
//     at the end of the file is dropped.
//   - JSON, either {"nets": {"NAME": ["pin", ...]}} or
//     {"nets": [{"name": "NAME", "members": ["pin", ...]}]}, with an optional
//     top-level "title" used as the label.
//
// The returned netlist is sorted by name with members sorted within each net.
package parser
