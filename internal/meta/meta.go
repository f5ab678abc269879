// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"
	"io"
	"os"

	"github.com/tfctl/netdiff/internal/config"
)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// loaded configuration, context, the starting working directory and the
// streams commands read from and write to.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	StartingDir string

	Stdin  io.Reader
	Stdout io.Writer
}

// In returns Stdin, or os.Stdin when unset.
func (m Meta) In() io.Reader {
	if m.Stdin == nil {
		return os.Stdin
	}
	return m.Stdin
}

// Out returns Stdout, or os.Stdout when unset.
func (m Meta) Out() io.Writer {
	if m.Stdout == nil {
		return os.Stdout
	}
	return m.Stdout
}
