// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package layout turns a net and its diff state into a word-wrapped block of
// text lines for one report column.
//
// Rendering is pure. A Block is a list of Lines and each Line a list of Spans
// tagged with a Style; painting styles into terminal escape codes is left to
// the output package. Widths are measured in printable cells, so escape codes
// added later never count.
package layout
