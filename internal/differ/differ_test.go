// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/netdiff/internal/netlist"
)

func TestDiffMemberDifferences(t *testing.T) {
	baseline := netlist.New("left", netlist.NewNet("CLK", "U1.1", "U2.3"))
	compare := netlist.New("right", netlist.NewNet("CLK", "U1.1", "U3.5"))

	require.NoError(t, Diff(compare, baseline))

	b, c := baseline.Find("CLK"), compare.Find("CLK")
	assert.Equal(t, []string{"U2.3"}, b.DifferingMembers)
	assert.Equal(t, []string{"U3.5"}, c.DifferingMembers)
	assert.False(t, b.Differs)
	assert.False(t, c.Differs)
	assert.Equal(t, netlist.RoleBaseline, b.Role)
	assert.Equal(t, netlist.RoleCompare, c.Role)
}

func TestDiffWholeNet(t *testing.T) {
	baseline := netlist.New("left", netlist.NewNet("GND", "U1.7"), netlist.NewNet("VCC", "U1.14"))
	compare := netlist.New("right", netlist.NewNet("VCC", "U1.14"), netlist.NewNet("ZZZ", "R1.1"))

	require.NoError(t, Diff(compare, baseline))

	assert.True(t, baseline.Find("GND").Differs)
	assert.Empty(t, baseline.Find("GND").DifferingMembers)
	assert.Nil(t, compare.Find("GND"))
	assert.True(t, compare.Find("ZZZ").Differs)
	assert.False(t, baseline.Find("VCC").HasDiffs())
	assert.False(t, compare.Find("VCC").HasDiffs())
}

func TestDiffEmptyMembers(t *testing.T) {
	baseline := netlist.New("left", netlist.NewNet("NC"))
	compare := netlist.New("right", netlist.NewNet("NC"))

	require.NoError(t, Diff(compare, baseline))

	for _, n := range []*netlist.Net{baseline.Find("NC"), compare.Find("NC")} {
		assert.False(t, n.Differs)
		assert.Empty(t, n.DifferingMembers)
	}
}

func TestDiffIsSymmetricSetDifference(t *testing.T) {
	baseline := netlist.New("left", netlist.NewNet("N", "a", "b", "c", "c", "d"))
	compare := netlist.New("right", netlist.NewNet("N", "b", "d", "e", "f"))

	require.NoError(t, Diff(compare, baseline))

	assert.ElementsMatch(t, []string{"a", "c"}, baseline.Nets[0].DifferingMembers)
	assert.ElementsMatch(t, []string{"e", "f"}, compare.Nets[0].DifferingMembers)
}

func TestDiffOneSideEmpty(t *testing.T) {
	baseline := netlist.New("left", netlist.NewNet("A"), netlist.NewNet("B"))
	compare := netlist.New("right")

	require.NoError(t, Diff(compare, baseline))

	assert.Equal(t, 2, baseline.DiffCount())
	assert.Equal(t, 0, compare.DiffCount())
}

func TestDiffIsRepeatable(t *testing.T) {
	baseline := netlist.New("left",
		netlist.NewNet("A", "1", "2"),
		netlist.NewNet("B", "3"),
		netlist.NewNet("D", "9"),
	)
	compare := netlist.New("right",
		netlist.NewNet("A", "2", "4"),
		netlist.NewNet("C", "5"),
		netlist.NewNet("D", "9"),
	)

	snapshot := func(nl *netlist.Netlist) map[string][]string {
		out := map[string][]string{}
		for _, n := range nl.Nets {
			v := append([]string{}, n.DifferingMembers...)
			if n.Differs {
				v = append(v, "<whole>")
			}
			out[n.Name] = v
		}
		return out
	}

	require.NoError(t, Diff(compare, baseline))
	first := []map[string][]string{snapshot(baseline), snapshot(compare)}

	require.NoError(t, Diff(compare, baseline))
	second := []map[string][]string{snapshot(baseline), snapshot(compare)}

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"1"}, first[0]["A"])
	assert.Equal(t, []string{"<whole>"}, first[0]["B"])
	assert.Equal(t, []string{"<whole>"}, first[1]["C"])
}

func TestDiffDoesNotTouchMembers(t *testing.T) {
	baseline := netlist.New("left", netlist.NewNet("A", "2", "1"))
	compare := netlist.New("right", netlist.NewNet("A", "3"))

	require.NoError(t, Diff(compare, baseline))

	assert.Equal(t, []string{"1", "2"}, baseline.Nets[0].Members)
	assert.Equal(t, []string{"3"}, compare.Nets[0].Members)
}

func TestDiffInvalidArguments(t *testing.T) {
	nl := netlist.New("x")

	assert.True(t, errors.Is(Diff(nil, nl), netlist.ErrInvalidArgument))
	assert.True(t, errors.Is(Diff(nl, nil), netlist.ErrInvalidArgument))

	unsorted := &netlist.Netlist{Nets: []*netlist.Net{netlist.NewNet("B"), netlist.NewNet("A")}}
	assert.True(t, errors.Is(Diff(unsorted, nl), netlist.ErrInvalidArgument))
}

func TestWalkOrder(t *testing.T) {
	baseline := netlist.New("left", netlist.NewNet("A"), netlist.NewNet("C"), netlist.NewNet("E"))
	compare := netlist.New("right", netlist.NewNet("B"), netlist.NewNet("C"), netlist.NewNet("F"), netlist.NewNet("G"))

	var got []string
	err := Walk(baseline, compare, Visitor{
		OnBoth: func(b, c *netlist.Net) error {
			got = append(got, "="+b.Name)
			return nil
		},
		OnBaselineOnly: func(b *netlist.Net) error {
			got = append(got, "-"+b.Name)
			return nil
		},
		OnCompareOnly: func(c *netlist.Net) error {
			got = append(got, "+"+c.Name)
			return nil
		},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"-A", "+B", "=C", "-E", "+F", "+G"}, got)
}

func TestWalkStopsOnError(t *testing.T) {
	baseline := netlist.New("left", netlist.NewNet("A"), netlist.NewNet("B"))
	compare := netlist.New("right")
	boom := errors.New("boom")

	calls := 0
	err := Walk(baseline, compare, Visitor{
		OnBaselineOnly: func(*netlist.Net) error {
			calls++
			return boom
		},
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}
