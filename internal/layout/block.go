// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/tfctl/netdiff/internal/netlist"
)

// Style tags a span with the diff color it should be painted in.
type Style int

const (
	StylePlain Style = iota
	StyleRemoved
	StyleAdded
)

// StyleFor returns the diff style of a role: removed for the baseline and
// added for the compare side.
func StyleFor(role netlist.Role) Style {
	if role == netlist.RoleCompare {
		return StyleAdded
	}
	return StyleRemoved
}

// Span is a run of text sharing one style.
type Span struct {
	Text  string
	Style Style
}

// Line is one rendered output line.
type Line []Span

// Blank returns a line of width spaces.
func Blank(width int) Line {
	if width <= 0 {
		return Line{}
	}
	return Line{{Text: strings.Repeat(" ", width)}}
}

// Width is the printable width of the line.
func (l Line) Width() (w int) {
	for _, s := range l {
		w += ansi.StringWidth(s.Text)
	}
	return
}

// String returns the unstyled text of the line.
func (l Line) String() string {
	var sb strings.Builder
	for _, s := range l {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// HasStyle reports whether any span carries a diff style.
func (l Line) HasStyle() bool {
	for _, s := range l {
		if s.Style != StylePlain {
			return true
		}
	}
	return false
}

// Pad right-pads the line with plain spaces up to width.
func (l Line) Pad(width int) Line {
	if gap := width - l.Width(); gap > 0 {
		return append(l, Span{Text: strings.Repeat(" ", gap)})
	}
	return l
}

// TrimRight drops trailing spaces, removing spans left empty.
func (l Line) TrimRight() Line {
	out := append(Line{}, l...)
	for len(out) > 0 {
		last := &out[len(out)-1]
		last.Text = strings.TrimRight(last.Text, " ")
		if last.Text != "" {
			break
		}
		out = out[:len(out)-1]
	}
	return out
}

// restyle returns a copy of the line with every span set to style.
func (l Line) restyle(style Style) Line {
	out := make(Line, len(l))
	for i, s := range l {
		out[i] = Span{Text: s.Text, Style: style}
	}
	return out
}

// Block is a rendered multi-line description of one net.
type Block []Line

// Strings returns the unstyled text of each line.
func (b Block) Strings() []string {
	out := make([]string, len(b))
	for i, l := range b {
		out[i] = l.String()
	}
	return out
}
