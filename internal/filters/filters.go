// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"fmt"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/apex/log"

	"github.com/tfctl/netdiff/internal/netlist"
)

// filterRegex splits a filter expression into key, operator (with optional
// negation) and target. Operators are one of = ^ ~ < > @ or /.
var filterRegex = regexp.MustCompile(`^([^!=^~<>@/]*)(!?[=^~<>@/])?(.*)$`)

// Keys that a filter can test.
const (
	KeyName    = "name"
	KeyMembers = "members"
	KeyMember  = "member"
)

// Keys lists the supported filter keys.
var Keys = []string{KeyName, KeyMembers, KeyMember}

// Filter is a single parsed --filter expression.
type Filter struct {
	Key     string `yaml:"key" json:"Key"`
	Negate  bool   `yaml:"negate" json:"Negate"`
	Operand string `yaml:"operand" json:"Operand"`
	Value   string `yaml:"value" json:"Value"`
}

// BuildFilters parses a filter specification string into a slice of Filter.
// Invalid expressions are logged and skipped.
func BuildFilters(spec string) []Filter {
	//nolint:prealloc
	var filters []Filter

	if spec == "" {
		return filters
	}

	for _, filterSpec := range strings.Split(spec, delimiter()) {
		filterSpec = strings.TrimSpace(filterSpec)
		if filterSpec == "" {
			continue
		}

		f, err := parseFilter(filterSpec)
		if err != nil {
			log.WithError(err).Error("invalid filter")
			continue
		}
		filters = append(filters, f)
	}

	return filters
}

// Validate reports the first invalid expression in spec.
func Validate(spec string) error {
	for _, filterSpec := range strings.Split(spec, delimiter()) {
		if filterSpec = strings.TrimSpace(filterSpec); filterSpec == "" {
			continue
		}
		if _, err := parseFilter(filterSpec); err != nil {
			return err
		}
	}
	return nil
}

// delimiter is "," unless NETDIFF_FILTER_DELIM overrides it for values with
// commas in them, regexes mostly.
func delimiter() string {
	if d, ok := os.LookupEnv("NETDIFF_FILTER_DELIM"); ok && d != "" {
		return d
	}
	return ","
}

func parseFilter(filterSpec string) (Filter, error) {
	parts := filterRegex.FindStringSubmatch(filterSpec)
	if parts == nil {
		return Filter{}, fmt.Errorf("%s: malformed", filterSpec)
	}

	key := strings.TrimSpace(parts[1])
	operand := parts[2]
	if key == "" {
		return Filter{}, fmt.Errorf("%s: empty key", filterSpec)
	}
	if !slices.Contains(Keys, key) {
		return Filter{}, fmt.Errorf("%s: unknown key %q, must be one of %v", filterSpec, key, Keys)
	}
	if operand == "" {
		return Filter{}, fmt.Errorf("%s: missing operator", filterSpec)
	}

	negate := strings.HasPrefix(operand, "!")
	return Filter{
		Key:     key,
		Negate:  negate,
		Operand: strings.TrimPrefix(operand, "!"),
		Value:   parts[3],
	}, nil
}

// Apply drops every net of nl that does not match all filters in spec and
// returns how many were dropped.
func Apply(nl *netlist.Netlist, spec string) int {
	filters := BuildFilters(spec)
	if nl == nil || len(filters) == 0 {
		return 0
	}

	before := nl.Len()
	nl.Retain(func(n *netlist.Net) bool {
		return Match(n, filters)
	})
	dropped := before - nl.Len()
	log.Debugf("filters: %s: kept=%d dropped=%d", nl.Label, nl.Len(), dropped)
	return dropped
}

// Match returns true if the net satisfies every filter.
func Match(n *netlist.Net, filters []Filter) bool {
	for _, filter := range filters {
		var result bool
		switch filter.Key {
		case KeyName:
			result = checkStringOperand(n.Name, filter)
		case KeyMembers:
			result = checkNumericOperand(float64(len(n.Members)), filter)
		case KeyMember:
			result = checkMemberOperand(n.Members, filter)
		default:
			log.Error("unsupported filter key: " + filter.Key)
			continue
		}
		if !result {
			return false
		}
	}
	return true
}

// checkMemberOperand is true when any member matches. Negation inverts the
// whole test, so member!=U1.1 keeps nets that do not touch U1.1 at all.
func checkMemberOperand(members []string, filter Filter) bool {
	positive := filter
	positive.Negate = false
	found := slices.ContainsFunc(members, func(m string) bool {
		return checkStringOperand(m, positive)
	})
	return found != filter.Negate
}

// checkNumericOperand compares a numeric value against the filter value.
// Supported operands: =, >, < and their negations.
func checkNumericOperand(value float64, filter Filter) bool {
	tgt, err := strconv.ParseFloat(strings.TrimSpace(filter.Value), 64)
	if err != nil {
		log.Error("invalid numeric value: " + filter.Value)
		return false
	}

	switch filter.Operand {
	case "=":
		return (value == tgt) == !filter.Negate
	case ">":
		return (value > tgt) == !filter.Negate
	case "<":
		return (value < tgt) == !filter.Negate
	default:
		log.Error("unsupported numeric operand: " + filter.Operand)
		return false
	}
}

// checkStringOperand evaluates a string comparison against value.
func checkStringOperand(value string, filter Filter) bool {
	switch filter.Operand {
	case "=":
		return value == filter.Value == !filter.Negate
	case "~":
		return strings.EqualFold(value, filter.Value) == !filter.Negate
	case "^":
		return strings.HasPrefix(value, filter.Value) == !filter.Negate
	case ">":
		return value > filter.Value == !filter.Negate
	case "<":
		return value < filter.Value == !filter.Negate
	case "@":
		return strings.Contains(value, filter.Value) == !filter.Negate
	case "/":
		matched, err := regexp.MatchString(filter.Value, value)
		if err != nil {
			log.Error("invalid regex: " + filter.Value)
			return false
		}
		return matched == !filter.Negate
	default:
		log.Error("unsupported filtering operand: " + filter.Operand)
		return false
	}
}
