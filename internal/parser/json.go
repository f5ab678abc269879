// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/tfctl/netdiff/internal/log"
	"github.com/tfctl/netdiff/internal/netlist"
)

// ParseJSON reads a JSON netlist document.
func ParseJSON(label string, data []byte) (*netlist.Netlist, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("parse error: invalid JSON")
	}

	doc := gjson.ParseBytes(data)
	if title := doc.Get("title"); title.Type == gjson.String && title.String() != "" {
		label = title.String()
	}

	nl := &netlist.Netlist{Label: label}
	nets := doc.Get("nets")
	switch {
	case nets.IsObject():
		nets.ForEach(func(name, members gjson.Result) bool {
			nl.Add(netlist.NewNet(name.String(), stringsOf(members)...))
			return true
		})
	case nets.IsArray():
		for i, n := range nets.Array() {
			name := n.Get("name")
			if name.Type != gjson.String {
				return nil, fmt.Errorf("parse error: nets[%d] has no name", i)
			}
			nl.Add(netlist.NewNet(name.String(), stringsOf(n.Get("members"))...))
		}
	default:
		return nil, errors.New(`parse error: missing "nets"`)
	}

	nl.Sort()
	log.Debugf("json: %s: nets=%d", label, nl.Len())
	return nl, nil
}

func stringsOf(r gjson.Result) []string {
	var out []string
	for _, v := range r.Array() {
		out = append(out, v.String())
	}
	return out
}
