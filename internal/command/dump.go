// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/netdiff/internal/meta"
	"github.com/tfctl/netdiff/internal/output"
	"github.com/tfctl/netdiff/internal/source"
)

// dumpCommandAction prints a single netlist after --filter.
func dumpCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)

	opts, err := SourceOptions(cmd, m)
	if err != nil {
		return err
	}

	nl, err := source.Load(ctx, cmd.Args().First(), opts)
	if err != nil {
		return err
	}

	ApplyFilters(cmd, nl)

	return output.WriteDump(m.Out(), nl, output.Format(cmd.String("output")))
}

func dumpCommandBuilder(meta meta.Meta) *cli.Command {
	const ns = "dump"

	return &cli.Command{
		Name:      ns,
		Usage:     "print the nets of one netlist",
		UsageText: "netdiff dump <netlist> [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: NewGlobalFlags(ns, meta.Config.Source),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, ArgsValidator(cmd, "netlist")
		},
		Action: dumpCommandAction,
	}
}
