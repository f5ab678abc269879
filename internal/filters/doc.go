// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters selects the nets of a netlist from --filter expressions.
//
// A filter spec is a delimited (default: comma, override with
// NETDIFF_FILTER_DELIM) list of key-operator-value expressions. Keys:
//
//   - name    : the net name
//   - members : the number of members (numeric)
//   - member  : any single member
//
// Operators, each of which can be negated with a leading '!':
//
//   - = : exact match
//   - ^ : prefix match
//   - ~ : case-insensitive match
//   - @ : contains substring
//   - / : regex match
//   - < : less than
//   - > : greater than
//
// Examples:
//
//   - "name^DATA"     : nets whose name starts with DATA
//   - "members>2"     : nets with more than two members
//   - "member=U1.7"   : nets touching pin U1.7
//   - "name!/^N\d+$"  : skip auto-named nets
//
// A net is kept only when it matches every filter. Expressions with an
// unknown key or a missing operator are logged and skipped.
package filters
