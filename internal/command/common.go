// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/tfctl/netdiff/internal/filters"
	"github.com/tfctl/netdiff/internal/log"
	"github.com/tfctl/netdiff/internal/meta"
	"github.com/tfctl/netdiff/internal/netlist"
	"github.com/tfctl/netdiff/internal/output"
	"github.com/tfctl/netdiff/internal/parser"
	"github.com/tfctl/netdiff/internal/source"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// SourceOptions builds the source options shared by every input of cmd.
func SourceOptions(cmd *cli.Command, m meta.Meta) (*source.Options, error) {
	format, err := parser.ParseFormat(cmd.String("format"))
	if err != nil {
		return nil, err
	}
	return &source.Options{
		Format:  format,
		Profile: cmd.String("profile"),
		Region:  cmd.String("region"),
		Stdin:   m.In(),
	}, nil
}

// ApplyFilters narrows every netlist by the --filter expressions.
func ApplyFilters(cmd *cli.Command, nls ...*netlist.Netlist) {
	spec := cmd.String("filter")
	if spec == "" {
		return
	}
	for _, nl := range nls {
		if dropped := filters.Apply(nl, spec); dropped > 0 {
			log.Debugf("filter dropped %d nets from %s", dropped, nl.Label)
		}
	}
}

// NewPainter honours an explicit --color, then NO_COLOR, then colors a
// terminal.
func NewPainter(cmd *cli.Command, out io.Writer) output.Painter {
	enabled := false
	switch {
	case cmd.IsSet("color"):
		enabled = cmd.Bool("color")
	case os.Getenv("NO_COLOR") != "":
	default:
		enabled = isTerminal(out)
	}

	dark := true
	if enabled {
		dark = output.HasDarkBackground()
	}
	return output.NewPainter(enabled, dark)
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
