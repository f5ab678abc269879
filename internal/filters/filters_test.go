// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/netdiff/internal/netlist"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// testBuildFiltersCase represents a single test case for TestBuildFilters.
type testBuildFiltersCase struct {
	Name      string   `yaml:"name"`
	Spec      string   `yaml:"spec"`
	Delimiter string   `yaml:"delimiter"`
	Want      []Filter `yaml:"want"`
	WantCount int      `yaml:"wantCount"`
}

// testCheckStringOperandCase represents a single test case for
// TestCheckStringOperand.
type testCheckStringOperandCase struct {
	Name   string `yaml:"name"`
	Value  string `yaml:"value"`
	Filter Filter `yaml:"filter"`
	Want   bool   `yaml:"want"`
}

// testCheckNumericOperandCase represents a single test case for
// TestCheckNumericOperand.
type testCheckNumericOperandCase struct {
	Name   string  `yaml:"name"`
	Value  float64 `yaml:"value"`
	Filter Filter  `yaml:"filter"`
	Want   bool    `yaml:"want"`
}

// testMatchCase represents a single test case for TestApply.
type testMatchCase struct {
	Name string   `yaml:"name"`
	Spec string   `yaml:"spec"`
	Want []string `yaml:"want"`
}

// loadTestData loads test data from embedded YAML files.
func loadTestData(filename string, v interface{}) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func testNetlist() *netlist.Netlist {
	return netlist.New("board",
		netlist.NewNet("CLK", "U1.1", "U2.3"),
		netlist.NewNet("DATA0", "U1.2", "U2.5"),
		netlist.NewNet("DATA1", "R1.1", "U3.1"),
		netlist.NewNet("GND", "U1.7", "U2.4", "C1.2"),
		netlist.NewNet("N0042", "R1.2"),
	)
}

func TestBuildFilters(t *testing.T) {
	var tests []testBuildFiltersCase
	require.NoError(t, loadTestData("filters_test_build_filters.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			if tt.Delimiter != "" {
				t.Setenv("NETDIFF_FILTER_DELIM", tt.Delimiter)
			}

			got := BuildFilters(tt.Spec)
			assert.Len(t, got, tt.WantCount)
			for i, filter := range tt.Want {
				assert.Equal(t, filter.Key, got[i].Key)
				assert.Equal(t, filter.Operand, got[i].Operand)
				assert.Equal(t, filter.Value, got[i].Value)
				assert.Equal(t, filter.Negate, got[i].Negate)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(""))
	assert.NoError(t, Validate("name=A,members>1, member@U1"))
	assert.ErrorContains(t, Validate("name=A,pin=U1.1"), `unknown key "pin"`)
	assert.ErrorContains(t, Validate("=A"), "empty key")
	assert.ErrorContains(t, Validate("members"), "missing operator")
}

func TestCheckStringOperand(t *testing.T) {
	var tests []testCheckStringOperandCase
	require.NoError(t, loadTestData("filters_test_check_string_operand.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			got := checkStringOperand(tt.Value, tt.Filter)
			assert.Equal(t, tt.Want, got)
		})
	}
}

func TestCheckNumericOperand(t *testing.T) {
	var tests []testCheckNumericOperandCase
	require.NoError(t, loadTestData("filters_test_check_numeric_operand.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			got := checkNumericOperand(tt.Value, tt.Filter)
			assert.Equal(t, tt.Want, got)
		})
	}
}

func TestCheckMemberOperand(t *testing.T) {
	members := []string{"U1.1", "U2.3"}

	assert.True(t, checkMemberOperand(members, Filter{Operand: "=", Value: "U2.3"}))
	assert.False(t, checkMemberOperand(members, Filter{Operand: "=", Value: "U9.9"}))
	assert.False(t, checkMemberOperand(members, Filter{Operand: "=", Value: "U2.3", Negate: true}))
	assert.True(t, checkMemberOperand(members, Filter{Operand: "^", Value: "R", Negate: true}))
	assert.False(t, checkMemberOperand(nil, Filter{Operand: "@", Value: ""}))
}

func TestApply(t *testing.T) {
	var tests []testMatchCase
	require.NoError(t, loadTestData("filters_test_match.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			nl := testNetlist()
			before := nl.Len()

			dropped := Apply(nl, tt.Spec)

			got := []string{}
			for _, n := range nl.Nets {
				got = append(got, n.Name)
			}
			assert.Equal(t, tt.Want, got)
			assert.Equal(t, before-len(tt.Want), dropped)
			assert.True(t, nl.IsSorted())
		})
	}
}

func TestApplyNil(t *testing.T) {
	assert.Zero(t, Apply(nil, "name=A"))
}
