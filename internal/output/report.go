// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/tfctl/netdiff/internal/compositor"
	"github.com/tfctl/netdiff/internal/differ"
	"github.com/tfctl/netdiff/internal/log"
	"github.com/tfctl/netdiff/internal/netlist"
)

// Ellipsis marks a truncated header label.
const Ellipsis = "…"

// Status classifies a net in the report.
type Status string

const (
	StatusRemoved Status = "removed"
	StatusAdded   Status = "added"
	StatusChanged Status = "changed"
	StatusSame    Status = "same"
)

// Entry is one net of a structured report. Removed and Added list the
// members found on one side only; for a removed or added net that is every
// member.
type Entry struct {
	Name    string   `json:"name" yaml:"name"`
	Status  Status   `json:"status" yaml:"status"`
	Removed []string `json:"removed,omitempty" yaml:"removed,omitempty"`
	Added   []string `json:"added,omitempty" yaml:"added,omitempty"`
}

// Report is a finished comparison of two netlists.
type Report struct {
	Baseline  *netlist.Netlist
	Compare   *netlist.Netlist
	Width     int
	DiffsOnly bool

	Pairs   []compositor.Pair
	Entries []Entry
	Stats   Stats
}

// Build diffs baseline against compare and lays the result out in columns of
// width characters. With diffsOnly, nets without differences are left out of
// Pairs and Entries; Stats always counts every net.
func Build(baseline, compare *netlist.Netlist, width int, diffsOnly bool) (*Report, error) {
	if err := differ.Diff(compare, baseline); err != nil {
		return nil, err
	}

	r := &Report{
		Baseline:  baseline,
		Compare:   compare,
		Width:     width,
		DiffsOnly: diffsOnly,
		Entries:   []Entry{},
	}

	err := differ.Walk(baseline, compare, differ.Visitor{
		OnBoth: func(b, c *netlist.Net) error {
			e := Entry{Name: b.Name, Status: StatusSame}
			if b.HasDiffs() || c.HasDiffs() {
				e.Status = StatusChanged
				e.Removed = slices.Clone(b.DifferingMembers)
				e.Added = slices.Clone(c.DifferingMembers)
			}
			r.add(e)
			return nil
		},
		OnBaselineOnly: func(b *netlist.Net) error {
			r.add(Entry{Name: b.Name, Status: StatusRemoved, Removed: slices.Clone(b.Members)})
			return nil
		},
		OnCompareOnly: func(c *netlist.Net) error {
			r.add(Entry{Name: c.Name, Status: StatusAdded, Added: slices.Clone(c.Members)})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	if r.Pairs, err = compositor.Composite(baseline, compare, width, diffsOnly); err != nil {
		return nil, err
	}

	log.Debugf("report: %+v", r.Stats)
	return r, nil
}

func (r *Report) add(e Entry) {
	r.Stats.count(e)
	if r.DiffsOnly && e.Status == StatusSame {
		return
	}
	r.Entries = append(r.Entries, e)
}

// Lines renders the text report. marks[i] is true when lines[i] shows a
// difference. With summary, the summary table and sentence follow the rows.
func (r *Report) Lines(p Painter, summary bool) (lines []string, marks []bool) {
	emit := func(s string, mark bool) {
		lines = append(lines, s)
		marks = append(marks, mark)
	}

	emit(p.Title(fit(r.Baseline.Label, r.Width))+compositor.Gutter+p.Title(fit(r.Compare.Label, r.Width)), false)
	emit(p.Removed(strings.Repeat("-", r.Width))+compositor.Gutter+p.Added(strings.Repeat("+", r.Width)), false)

	for _, pair := range r.Pairs {
		for _, row := range pair.Rows {
			emit(p.Row(row), row.HasStyle())
		}
	}

	if summary {
		emit("", false)
		for _, l := range strings.Split(r.SummaryTable(p), "\n") {
			emit(l, false)
		}
		emit(r.Stats.Sentence(), false)
	}

	return lines, marks
}

// Text returns the text report as one string.
func (r *Report) Text(p Painter, summary bool) string {
	lines, _ := r.Lines(p, summary)
	return strings.Join(lines, "\n") + "\n"
}

// Document is the structured form of a report.
type Document struct {
	Baseline string  `json:"baseline" yaml:"baseline"`
	Compare  string  `json:"compare" yaml:"compare"`
	Nets     []Entry `json:"nets" yaml:"nets"`
	Summary  *Stats  `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// Document returns the report as a serializable document.
func (r *Report) Document(summary bool) Document {
	doc := Document{
		Baseline: r.Baseline.Label,
		Compare:  r.Compare.Label,
		Nets:     r.Entries,
	}
	if summary {
		stats := r.Stats
		doc.Summary = &stats
	}
	return doc
}

// fit truncates s with an ellipsis and pads it to exactly width cells.
func fit(s string, width int) string {
	s = ansi.Truncate(s, width, Ellipsis)
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// String implements fmt.Stringer for debugging.
func (e Entry) String() string {
	return fmt.Sprintf("%s %s -%v +%v", e.Status, e.Name, e.Removed, e.Added)
}
