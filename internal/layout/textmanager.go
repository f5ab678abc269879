// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package layout

import (
	"fmt"
	"strings"

	"github.com/tfctl/netdiff/internal/netlist"
)

// DefaultIndent is the indent of continuation lines.
const DefaultIndent = 3

// TextManager renders nets as word-wrapped blocks of "name: m1, m2".
type TextManager struct {
	// Indent is the number of spaces starting each continuation line.
	Indent int
	// Separator follows every member but the last.
	Separator string
}

// NewTextManager returns a TextManager with the default indent and comma
// separator.
func NewTextManager() *TextManager {
	return &TextManager{Indent: DefaultIndent, Separator: Comma}
}

// Render wraps n into lines no wider than maxWidth. A token wider than the
// remaining room starts a new, indented line; tokens are never split, so a
// single oversized token gets a line of its own. With pad set every line is
// filled with spaces to exactly maxWidth.
//
// Nets differing as a whole are rendered with a role sign and the whole block
// takes the role's style. Otherwise only members recorded as differing are
// signed and styled.
func (tm *TextManager) Render(n *netlist.Net, maxWidth int, pad bool) (Block, error) {
	if n == nil {
		return nil, fmt.Errorf("render: nil net: %w", netlist.ErrInvalidArgument)
	}
	if maxWidth <= 0 {
		return nil, fmt.Errorf("render: width %d: %w", maxWidth, netlist.ErrInvalidArgument)
	}

	sign := " "
	if n.Differs {
		sign = n.Role.Sign()
	}

	w := &wrapper{maxWidth: maxWidth, indent: tm.Indent, pad: pad}
	w.add(Line{{Text: sign + n.Name + ": "}})

	style := StyleFor(n.Role)
	for member, sep := range Separate(n.Members, tm.Separator) {
		if !n.Differs && n.MemberDiffers(member) {
			tok := Line{{Text: n.Role.Sign() + member, Style: style}}
			if sep != "" {
				tok = append(tok, Span{Text: sep})
			}
			w.add(tok)
			continue
		}
		w.add(Line{{Text: member + sep}})
	}
	w.commit()

	if n.Differs {
		for i, l := range w.lines {
			w.lines[i] = l.restyle(style)
		}
	}
	return w.lines, nil
}

// wrapper accumulates tokens into lines.
type wrapper struct {
	maxWidth int
	indent   int
	pad      bool

	lines  Block
	cur    Line
	width  int
	tokens int
}

func (w *wrapper) add(tok Line) {
	if w.tokens > 0 && w.width+tok.TrimRight().Width() > w.maxWidth {
		w.commit()
		w.cur = Line{{Text: strings.Repeat(" ", w.indent)}}
		w.width = w.indent
	}
	w.cur = append(w.cur, tok...)
	w.width += tok.Width()
	w.tokens++
}

func (w *wrapper) commit() {
	if w.tokens == 0 {
		return
	}
	line := w.cur.TrimRight()
	if w.pad {
		line = line.Pad(w.maxWidth)
	}
	w.lines = append(w.lines, line)
	w.cur, w.width, w.tokens = nil, 0, 0
}
