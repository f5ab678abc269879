// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package netlist

import "errors"

// ErrInvalidArgument is returned for degenerate calls into the diff core, such
// as nil collections, non-positive widths or unsorted netlists.
var ErrInvalidArgument = errors.New("invalid argument")
