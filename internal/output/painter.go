// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"image/color"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/tfctl/netdiff/internal/compositor"
	"github.com/tfctl/netdiff/internal/config"
	"github.com/tfctl/netdiff/internal/layout"
)

// Painter turns styled lines into terminal text. The zero value paints
// nothing.
type Painter struct {
	enabled bool
	removed lipgloss.Style
	added   lipgloss.Style
	title   lipgloss.Style
}

// NewPainter returns a painter using the configured colors, falling back to
// defaults that suit a dark or light background. A disabled painter emits
// plain text.
func NewPainter(enabled, dark bool) Painter {
	if !enabled {
		return Painter{}
	}

	removed, added, title := getColors("colors", dark)
	return Painter{
		enabled: true,
		removed: lipgloss.NewStyle().Foreground(removed),
		added:   lipgloss.NewStyle().Foreground(added),
		title:   lipgloss.NewStyle().Foreground(title).Bold(true),
	}
}

// HasDarkBackground queries the terminal on stdin/stdout.
func HasDarkBackground() bool {
	return lipgloss.HasDarkBackground(os.Stdin, os.Stdout)
}

// Enabled reports whether the painter emits escape codes.
func (p Painter) Enabled() bool {
	return p.enabled
}

// Line paints each span of l in its diff color.
func (p Painter) Line(l layout.Line) string {
	if !p.enabled {
		return l.String()
	}

	var sb strings.Builder
	for _, s := range l {
		switch s.Style {
		case layout.StyleRemoved:
			sb.WriteString(p.removed.Render(s.Text))
		case layout.StyleAdded:
			sb.WriteString(p.added.Render(s.Text))
		default:
			sb.WriteString(s.Text)
		}
	}
	return sb.String()
}

// Row paints a compositor row as "left | right".
func (p Painter) Row(r compositor.Row) string {
	return p.Line(r.Left) + compositor.Gutter + p.Line(r.Right)
}

// Title paints header text.
func (p Painter) Title(s string) string {
	if !p.enabled {
		return s
	}
	return p.title.Render(s)
}

// Removed paints s in the baseline diff color.
func (p Painter) Removed(s string) string {
	return p.Line(layout.Line{{Text: s, Style: layout.StyleRemoved}})
}

// Added paints s in the compare diff color.
func (p Painter) Added(s string) string {
	return p.Line(layout.Line{{Text: s, Style: layout.StyleAdded}})
}

// getColors returns the configured diff colors. Without a config entry the
// default is picked for the terminal background so output stays readable.
func getColors(key string, dark bool) (removed, added, title color.Color) {
	resolveColor := func(key string, light string, darkDefault string) color.Color {
		if colorCfg, err := config.GetString(key); err == nil && colorCfg != "" {
			return lipgloss.Color(colorCfg)
		}
		if dark {
			return lipgloss.Color(darkDefault)
		}
		return lipgloss.Color(light)
	}

	removed = resolveColor(key+".removed", "#d70000", "#ff5f5f")
	added = resolveColor(key+".added", "#008700", "#5fd75f")
	title = resolveColor(key+".title", "#b08800", "#f6be00")

	return
}
