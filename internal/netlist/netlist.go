// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package netlist

import (
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"
)

// dumpIndent is the indent used by Dump for each net line.
const dumpIndent = "   "

// Netlist is a name-sorted set of nets read from one input.
type Netlist struct {
	Label string
	Nets  []*Net
	Role  Role

	cursor int
	index  map[string]*Net
}

// New builds a netlist from nets and sorts it by name. Nets sharing a name are
// merged into the first one.
func New(label string, nets ...*Net) *Netlist {
	nl := &Netlist{Label: label}
	for _, n := range nets {
		nl.Add(n)
	}
	nl.Sort()
	return nl
}

// Add appends a net. If a net of the same name already exists its members
// are merged into it instead. Callers adding out of order must call Sort.
func (nl *Netlist) Add(n *Net) *Net {
	if nl.index == nil {
		nl.index = make(map[string]*Net, len(nl.Nets))
		for _, existing := range nl.Nets {
			nl.index[existing.Name] = existing
		}
	}
	if existing, ok := nl.index[n.Name]; ok {
		existing.AddMembers(n.Members...)
		return existing
	}
	n.Role = nl.Role
	nl.Nets = append(nl.Nets, n)
	nl.index[n.Name] = n
	return n
}

// Sort orders nets by name. Ordering is byte-wise, so it is case-sensitive,
// and stable.
func (nl *Netlist) Sort() {
	slices.SortStableFunc(nl.Nets, func(a, b *Net) int {
		return strings.Compare(a.Name, b.Name)
	})
}

// IsSorted reports whether nets are in name order.
func (nl *Netlist) IsSorted() bool {
	return slices.IsSortedFunc(nl.Nets, func(a, b *Net) int {
		return strings.Compare(a.Name, b.Name)
	})
}

// Len returns the number of nets.
func (nl *Netlist) Len() int {
	return len(nl.Nets)
}

// Find returns the net called name, or nil. The netlist must be sorted.
func (nl *Netlist) Find(name string) *Net {
	i := sort.Search(len(nl.Nets), func(i int) bool { return nl.Nets[i].Name >= name })
	if i < len(nl.Nets) && nl.Nets[i].Name == name {
		return nl.Nets[i]
	}
	return nil
}

// Retain keeps only the nets for which keep returns true.
func (nl *Netlist) Retain(keep func(*Net) bool) {
	nl.Nets = slices.DeleteFunc(nl.Nets, func(n *Net) bool { return !keep(n) })
	nl.index = nil
	nl.ResetTraverse()
}

// ClearDiffs resets diff state on every net and assigns the role for the next
// diff run.
func (nl *Netlist) ClearDiffs(role Role) {
	nl.Role = role
	for _, n := range nl.Nets {
		n.Role = role
		n.ClearDiffs()
	}
}

// DiffCount returns the number of nets carrying any difference.
func (nl *Netlist) DiffCount() (count int) {
	for _, n := range nl.Nets {
		if n.HasDiffs() {
			count++
		}
	}
	return
}

// ResetTraverse moves the cursor back to the first net.
func (nl *Netlist) ResetTraverse() {
	nl.cursor = 0
}

// Current returns the net under the cursor, or nil once past the end.
func (nl *Netlist) Current() *Net {
	if nl.cursor >= len(nl.Nets) {
		return nil
	}
	return nl.Nets[nl.cursor]
}

// Advance moves the cursor forward by one net.
func (nl *Netlist) Advance() {
	if nl.cursor < len(nl.Nets) {
		nl.cursor++
	}
}

// Traverse returns the net under the cursor and advances past it.
func (nl *Netlist) Traverse() *Net {
	n := nl.Current()
	nl.Advance()
	return n
}

// Dump writes the label followed by one indented line per net.
func (nl *Netlist) Dump(w io.Writer) error {
	if _, err := fmt.Fprintln(w, nl.Label); err != nil {
		return err
	}
	for _, n := range nl.Nets {
		if _, err := fmt.Fprintln(w, dumpIndent+n.String()); err != nil {
			return err
		}
	}
	return nil
}
