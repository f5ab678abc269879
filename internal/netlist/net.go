// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package netlist

import (
	"fmt"
	"slices"
	"strings"
)

// Role tells which side of a comparison a net was read from.
type Role int

const (
	RoleBaseline Role = iota
	RoleCompare
)

// String returns the role name.
func (r Role) String() string {
	if r == RoleCompare {
		return "compare"
	}
	return "baseline"
}

// Sign is the diff marker used for nets and members of this role.
func (r Role) Sign() string {
	if r == RoleCompare {
		return "+"
	}
	return "-"
}

// Net is a named signal and its connection points.
type Net struct {
	Name    string
	Members []string
	Role    Role

	// Differs is set when the net exists on this side only.
	Differs bool
	// DifferingMembers are members missing from the other side, in the order
	// they were found.
	DifferingMembers []string

	differing map[string]struct{}
}

// NewNet returns a net holding a sorted copy of members.
func NewNet(name string, members ...string) *Net {
	n := &Net{Name: name}
	n.AddMembers(members...)
	return n
}

// AddMembers appends members and keeps the list sorted. Duplicates are kept.
func (n *Net) AddMembers(members ...string) {
	n.Members = append(n.Members, members...)
	slices.Sort(n.Members)
}

// ClearDiffs resets the diff state of the net.
func (n *Net) ClearDiffs() {
	n.Differs = false
	n.DifferingMembers = nil
	n.differing = nil
}

// MarkDiffers flags the whole net as present on one side only. Member level
// differences are dropped since the whole-net difference supersedes them.
func (n *Net) MarkDiffers() {
	n.Differs = true
	n.DifferingMembers = nil
	n.differing = nil
}

// AddDifferingMember records a member absent from the other side. Repeats are
// recorded once.
func (n *Net) AddDifferingMember(member string) {
	if n.Differs {
		return
	}
	if n.differing == nil {
		n.differing = make(map[string]struct{})
	}
	if _, ok := n.differing[member]; ok {
		return
	}
	n.differing[member] = struct{}{}
	n.DifferingMembers = append(n.DifferingMembers, member)
}

// MemberDiffers reports whether member was recorded as differing.
func (n *Net) MemberDiffers(member string) bool {
	_, ok := n.differing[member]
	return ok
}

// HasDiffs is true when the net differs as a whole or by any member.
func (n *Net) HasDiffs() bool {
	return n != nil && (n.Differs || len(n.DifferingMembers) > 0)
}

// GoString implements fmt.GoStringer.
func (n *Net) GoString() string {
	return fmt.Sprintf("Net(%q, %q)", n.Name, n.Members)
}

// String renders the net as "name: m1, m2".
func (n *Net) String() string {
	return n.Name + ": " + strings.Join(n.Members, ", ")
}
