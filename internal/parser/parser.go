// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tfctl/netdiff/internal/netlist"
)

// Format selects the input syntax.
type Format string

const (
	FormatAuto Format = "auto"
	FormatPADS Format = "pads"
	FormatJSON Format = "json"
)

// Formats lists the accepted --format values.
var Formats = []string{string(FormatAuto), string(FormatPADS), string(FormatJSON)}

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatAuto, FormatPADS, FormatJSON:
		return f, nil
	case "":
		return FormatAuto, nil
	default:
		return "", fmt.Errorf("must be one of %v", Formats)
	}
}

// Detect picks a concrete format for auto: JSON when the label has a .json
// extension or the data starts with '{', PADS otherwise.
func Detect(label string, data []byte) Format {
	if strings.EqualFold(filepath.Ext(label), ".json") {
		return FormatJSON
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}
	return FormatPADS
}

// Parse reads data in the given format. label names the netlist in reports.
func Parse(label string, data []byte, format Format) (*netlist.Netlist, error) {
	if format == FormatAuto || format == "" {
		format = Detect(label, data)
	}

	var (
		nl  *netlist.Netlist
		err error
	)
	switch format {
	case FormatJSON:
		nl, err = ParseJSON(label, data)
	case FormatPADS:
		nl, err = ParsePADS(label, bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}
	return nl, nil
}
