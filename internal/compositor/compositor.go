// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package compositor lays rendered baseline and compare nets side by side.
package compositor

import (
	"fmt"

	"github.com/tfctl/netdiff/internal/differ"
	"github.com/tfctl/netdiff/internal/layout"
	"github.com/tfctl/netdiff/internal/log"
	"github.com/tfctl/netdiff/internal/netlist"
)

// Gutter separates the left and right columns of a row.
const Gutter = " | "

// Row is one printed line: the left and right column text.
type Row struct {
	Left  layout.Line
	Right layout.Line
}

// Pair is the group of rows emitted for one step of the walk. Baseline or
// Compare is nil when the net exists on one side only, never both.
type Pair struct {
	Baseline *netlist.Net
	Compare  *netlist.Net
	Rows     []Row
}

// Name returns the net name shown by the pair.
func (p Pair) Name() string {
	if p.Baseline != nil {
		return p.Baseline.Name
	}
	return p.Compare.Name
}

// HasDiffs reports whether either side of the pair carries a difference.
func (p Pair) HasDiffs() bool {
	return p.Baseline.HasDiffs() || p.Compare.HasDiffs()
}

// Options tune Composite.
type Options struct {
	// Width is the width of each column.
	Width int
	// DiffsOnly drops pairs without any difference.
	DiffsOnly bool
	// Text renders each net. Defaults to layout.NewTextManager().
	Text *layout.TextManager
}

// Composite walks both netlists in lockstep and returns the rows of the
// side-by-side report. Diff must have been run on the pair beforehand.
func Composite(baseline, compare *netlist.Netlist, width int, diffsOnly bool) ([]Pair, error) {
	return CompositeWith(baseline, compare, Options{Width: width, DiffsOnly: diffsOnly})
}

// CompositeWith is Composite with explicit options.
func CompositeWith(baseline, compare *netlist.Netlist, opts Options) ([]Pair, error) {
	if opts.Width <= 0 {
		return nil, fmt.Errorf("composite: width %d: %w", opts.Width, netlist.ErrInvalidArgument)
	}
	tm := opts.Text
	if tm == nil {
		tm = layout.NewTextManager()
	}

	var pairs []Pair
	emit := func(b, c *netlist.Net) error {
		p := Pair{Baseline: b, Compare: c}
		if opts.DiffsOnly && !p.HasDiffs() {
			return nil
		}
		left, err := render(tm, b, opts.Width)
		if err != nil {
			return err
		}
		right, err := render(tm, c, opts.Width)
		if err != nil {
			return err
		}
		p.Rows = Zip(left, right, opts.Width)
		pairs = append(pairs, p)
		return nil
	}

	err := differ.Walk(baseline, compare, differ.Visitor{
		OnBoth:         emit,
		OnBaselineOnly: func(b *netlist.Net) error { return emit(b, nil) },
		OnCompareOnly:  func(c *netlist.Net) error { return emit(nil, c) },
	})
	if err != nil {
		return nil, err
	}

	log.Debugf("composite: pairs=%d width=%d diffsOnly=%t", len(pairs), opts.Width, opts.DiffsOnly)
	return pairs, nil
}

// render returns the padded block for n, or no lines when n is absent.
func render(tm *layout.TextManager, n *netlist.Net, width int) (layout.Block, error) {
	if n == nil {
		return nil, nil
	}
	return tm.Render(n, width, true)
}

// Zip joins two blocks line by line. The shorter block is filled with blank
// lines of width spaces.
func Zip(left, right layout.Block, width int) []Row {
	rows := make([]Row, max(len(left), len(right)))
	for i := range rows {
		rows[i] = Row{Left: lineAt(left, i, width), Right: lineAt(right, i, width)}
	}
	return rows
}

func lineAt(b layout.Block, i, width int) layout.Line {
	if i < len(b) {
		return b[i]
	}
	return layout.Blank(width)
}

// String returns the unstyled "left | right" text of the row.
func (r Row) String() string {
	return r.Left.String() + Gutter + r.Right.String()
}

// HasStyle reports whether either column of the row carries a diff style.
func (r Row) HasStyle() bool {
	return r.Left.HasStyle() || r.Right.HasStyle()
}
