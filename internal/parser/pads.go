// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/tfctl/netdiff/internal/log"
	"github.com/tfctl/netdiff/internal/netlist"
)

// SignalMarker opens a net in a PADS netlist.
const SignalMarker = "*SIGNAL*"

// padsLexer only recognises markers at the start of a line. Any non-blank
// character at line start switches to the Line state, where everything up to
// the newline is a pin word.
var padsLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Newline", Pattern: `\r?\n`},
		{Name: "Signal", Pattern: `\*SIGNAL\*[^\r\n]*`},
		{Name: "Marker", Pattern: `\*[^\r\n]*`},
		{Name: "Whitespace", Pattern: `[ \t\r]+`, Action: lexer.Push("Line")},
		{Name: "Word", Pattern: `[^\s]+`, Action: lexer.Push("Line")},
	},
	"Line": {
		{Name: "Newline", Pattern: `\r?\n`, Action: lexer.Pop()},
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Word", Pattern: `[^\s]+`},
	},
})

// padsFile is the grammar of a PADS netlist: a flat list of lines.
type padsFile struct {
	Lines []*padsLine `parser:"@@*"`
}

type padsLine struct {
	Signal  *string  `parser:"  @Signal Newline?"`
	Marker  *string  `parser:"| @Marker Newline?"`
	Members []string `parser:"| @Word+ Newline?"`
	Blank   bool     `parser:"| @Newline"`
}

// padsParser is built once; participle parsers are safe for reuse.
var padsParser = participle.MustBuild[padsFile](
	participle.Lexer(padsLexer),
	participle.Elide("Whitespace"),
)

// ParsePADS reads a PADS netlist from r.
func ParsePADS(label string, r io.Reader) (*netlist.Netlist, error) {
	file, err := padsParser.Parse(label, r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	nl := &netlist.Netlist{Label: label}
	var open *netlist.Net
	dropped := 0
	for _, line := range file.Lines {
		switch {
		case line.Signal != nil:
			if open != nil {
				nl.Add(open)
			}
			name := strings.TrimSpace(strings.TrimPrefix(*line.Signal, SignalMarker))
			open = netlist.NewNet(name)
		case line.Marker != nil:
			if open != nil {
				nl.Add(open)
				open = nil
			}
		case len(line.Members) > 0:
			if open == nil {
				dropped++
				continue
			}
			open.AddMembers(line.Members...)
		}
	}
	if open != nil {
		log.Debugf("pads: %s: net %s not closed by a marker, dropped", label, open.Name)
	}
	if dropped > 0 {
		log.Debugf("pads: %s: ignored %d pin lines outside a net", label, dropped)
	}

	nl.Sort()
	log.Debugf("pads: %s: nets=%d", label, nl.Len())
	return nl, nil
}
