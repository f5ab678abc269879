// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"

	"github.com/tfctl/netdiff/internal/log"
	"github.com/tfctl/netdiff/internal/netlist"
)

// Diff compares two netlists and records the result on their nets. Existing
// diff state is cleared first, so Diff can be re-run on the same pair. Members
// are never modified.
func Diff(compare, baseline *netlist.Netlist) error {
	log.Debugf(">> differ.Diff()")

	if compare == nil || baseline == nil {
		return fmt.Errorf("diff: nil netlist: %w", netlist.ErrInvalidArgument)
	}

	compare.ClearDiffs(netlist.RoleCompare)
	baseline.ClearDiffs(netlist.RoleBaseline)

	err := Walk(baseline, compare, Visitor{
		OnBoth: func(b, c *netlist.Net) error {
			diffMembers(b, c)
			diffMembers(c, b)
			return nil
		},
		OnBaselineOnly: markDiffers,
		OnCompareOnly:  markDiffers,
	})
	if err != nil {
		return err
	}

	log.Debugf("diff: baseline=%s nets=%d differing=%d", baseline.Label, baseline.Len(), baseline.DiffCount())
	log.Debugf("diff: compare=%s nets=%d differing=%d", compare.Label, compare.Len(), compare.DiffCount())
	return nil
}

// diffMembers records on side every member absent from other, walking side's
// members in their stored order.
func diffMembers(side, other *netlist.Net) {
	present := make(map[string]struct{}, len(other.Members))
	for _, m := range other.Members {
		present[m] = struct{}{}
	}
	for _, m := range side.Members {
		if _, ok := present[m]; !ok {
			side.AddDifferingMember(m)
		}
	}
}

func markDiffers(n *netlist.Net) error {
	n.MarkDiffers()
	return nil
}
