// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output prints comparison reports and netlist dumps as text, JSON or
// YAML. Text reports are painted with lipgloss when color is on.
package output
