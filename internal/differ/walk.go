// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"strings"

	"github.com/tfctl/netdiff/internal/log"
	"github.com/tfctl/netdiff/internal/netlist"
)

// Visitor receives the steps of a Walk. Nil callbacks are skipped. Returning
// an error stops the walk.
type Visitor struct {
	// OnBoth is called when both sides hold a net of the same name.
	OnBoth func(baseline, compare *netlist.Net) error
	// OnBaselineOnly is called for a net present in the baseline only.
	OnBaselineOnly func(baseline *netlist.Net) error
	// OnCompareOnly is called for a net present in the compare side only.
	OnCompareOnly func(compare *netlist.Net) error
}

// Walk resets the cursors of both netlists and merge-joins them by name. Both
// netlists must be sorted.
func Walk(baseline, compare *netlist.Netlist, v Visitor) error {
	if baseline == nil || compare == nil {
		return fmt.Errorf("walk: nil netlist: %w", netlist.ErrInvalidArgument)
	}
	if !baseline.IsSorted() || !compare.IsSorted() {
		return fmt.Errorf("walk: netlists must be sorted by name: %w", netlist.ErrInvalidArgument)
	}

	baseline.ResetTraverse()
	compare.ResetTraverse()

	steps := 0
	for {
		b, c := baseline.Current(), compare.Current()

		var err error
		switch {
		case b == nil && c == nil:
			log.Tracef("walk done: steps=%d", steps)
			return nil
		case c == nil:
			err = visit(v.OnBaselineOnly, b)
			baseline.Advance()
		case b == nil:
			err = visit(v.OnCompareOnly, c)
			compare.Advance()
		default:
			switch cmp := strings.Compare(b.Name, c.Name); {
			case cmp == 0:
				if v.OnBoth != nil {
					err = v.OnBoth(b, c)
				}
				baseline.Advance()
				compare.Advance()
			case cmp < 0:
				err = visit(v.OnBaselineOnly, b)
				baseline.Advance()
			default:
				err = visit(v.OnCompareOnly, c)
				compare.Advance()
			}
		}
		if err != nil {
			return err
		}
		steps++
	}
}

func visit(fn func(*netlist.Net) error, n *netlist.Net) error {
	if fn == nil {
		return nil
	}
	return fn(n)
}
