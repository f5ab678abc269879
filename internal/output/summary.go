// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
)

// Stats counts the outcome of a comparison.
type Stats struct {
	Compared       int `json:"compared" yaml:"compared"`
	Removed        int `json:"removed" yaml:"removed"`
	Added          int `json:"added" yaml:"added"`
	Changed        int `json:"changed" yaml:"changed"`
	Same           int `json:"same" yaml:"same"`
	RemovedMembers int `json:"removedMembers" yaml:"removedMembers"`
	AddedMembers   int `json:"addedMembers" yaml:"addedMembers"`
}

func (s *Stats) count(e Entry) {
	s.Compared++
	switch e.Status {
	case StatusRemoved:
		s.Removed++
	case StatusAdded:
		s.Added++
	case StatusChanged:
		s.Changed++
		s.RemovedMembers += len(e.Removed)
		s.AddedMembers += len(e.Added)
	default:
		s.Same++
	}
}

// Differs reports whether any net differs.
func (s Stats) Differs() bool {
	return s.Removed+s.Added+s.Changed > 0
}

// Sentence summarises the stats, e.g. "1,204 nets compared: 2 removed,
// 1 added, and 3 changed".
func (s Stats) Sentence() string {
	head := humanize.Comma(int64(s.Compared)) + " " + english.PluralWord(s.Compared, "net", "") + " compared: "
	if !s.Differs() {
		return head + "no differences"
	}

	var parts []string
	for _, c := range []struct {
		n    int
		what string
	}{
		{s.Removed, "removed"},
		{s.Added, "added"},
		{s.Changed, "changed"},
	} {
		if c.n > 0 {
			parts = append(parts, humanize.Comma(int64(c.n))+" "+c.what)
		}
	}
	return head + english.OxfordWordSeries(parts, "and")
}

// SummaryTable renders per-side counts as a borderless table.
func (r *Report) SummaryTable(p Painter) string {
	headerStyle := lipgloss.NewStyle().Align(lipgloss.Left)
	cellStyle := lipgloss.NewStyle().Align(lipgloss.Right)

	itoa := func(n int) string { return humanize.Comma(int64(n)) }

	t := table.New().
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return headerStyle
			}
			return cellStyle.PaddingLeft(1)
		}).
		Headers("", p.Title(fit(r.Baseline.Label, r.Width)), p.Title(fit(r.Compare.Label, r.Width))).
		Row("nets", itoa(r.Baseline.Len()), itoa(r.Compare.Len())).
		Row("only here", p.Removed(itoa(r.Stats.Removed)), p.Added(itoa(r.Stats.Added))).
		Row("differing members", p.Removed(itoa(r.Stats.RemovedMembers)), p.Added(itoa(r.Stats.AddedMembers)))

	return t.String()
}
