// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v2"

	"github.com/tfctl/netdiff/internal/netlist"
)

// Format selects how results are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the accepted --output values.
var Formats = []string{string(FormatText), string(FormatJSON), string(FormatYAML)}

// Options control Write.
type Options struct {
	Format  Format
	Painter Painter
	Summary bool
}

// Write prints the report to w in the requested format.
func Write(w io.Writer, r *Report, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		return writeJSON(w, r.Document(opts.Summary))
	case FormatYAML:
		return writeYAML(w, r.Document(opts.Summary))
	case FormatText, "":
		_, err := io.WriteString(w, r.Text(opts.Painter, opts.Summary))
		return err
	default:
		return fmt.Errorf("unsupported output: %s", opts.Format)
	}
}

// DumpDocument is the structured form of a single netlist. It has the shape
// of a JSON netlist input, so a JSON dump can be read back.
type DumpDocument struct {
	Title string    `json:"title" yaml:"title"`
	Nets  []DumpNet `json:"nets" yaml:"nets"`
}

// DumpNet is one net of a DumpDocument.
type DumpNet struct {
	Name    string   `json:"name" yaml:"name"`
	Members []string `json:"members" yaml:"members"`
}

// WriteDump prints one netlist to w. Text output is the label followed by one
// indented "name: members" line per net.
func WriteDump(w io.Writer, nl *netlist.Netlist, format Format) error {
	switch format {
	case FormatText, "":
		return nl.Dump(w)
	case FormatJSON, FormatYAML:
		doc := DumpDocument{Title: nl.Label, Nets: make([]DumpNet, 0, nl.Len())}
		for _, n := range nl.Nets {
			members := n.Members
			if members == nil {
				members = []string{}
			}
			doc.Nets = append(doc.Nets, DumpNet{Name: n.Name, Members: slices.Clone(members)})
		}
		if format == FormatJSON {
			return writeJSON(w, doc)
		}
		return writeYAML(w, doc)
	default:
		return fmt.Errorf("unsupported output: %s", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func writeYAML(w io.Writer, v any) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	_, err = w.Write(b)
	return err
}
