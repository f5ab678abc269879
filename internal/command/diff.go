// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/netdiff/internal/log"
	"github.com/tfctl/netdiff/internal/meta"
	"github.com/tfctl/netdiff/internal/output"
	"github.com/tfctl/netdiff/internal/pager"
	"github.com/tfctl/netdiff/internal/source"
)

// diffHeaderRows is the number of report lines (labels and rule) the pager
// keeps pinned while scrolling.
const diffHeaderRows = 2

// diffCommandAction loads both netlists, narrows them by --filter, and writes
// the side-by-side report. Differences are not an error.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	args := cmd.Args().Slice()

	opts, err := SourceOptions(cmd, m)
	if err != nil {
		return err
	}

	baseline, err := source.Load(ctx, args[0], opts)
	if err != nil {
		return err
	}
	compare, err := source.Load(ctx, args[1], opts)
	if err != nil {
		return err
	}
	log.Debugf("loaded %d baseline and %d compare nets", baseline.Len(), compare.Len())

	ApplyFilters(cmd, baseline, compare)

	report, err := output.Build(baseline, compare, cmd.Int("width"), cmd.Bool("diffs-only"))
	if err != nil {
		return err
	}
	log.Debugf("diff: %s", report.Stats.Sentence())

	format := output.Format(cmd.String("output"))
	painter := NewPainter(cmd, m.Out())

	if cmd.Bool("interactive") {
		return page(m, report, format, painter, cmd.Bool("summary"))
	}

	return output.Write(m.Out(), report, output.Options{
		Format:  format,
		Painter: painter,
		Summary: cmd.Bool("summary"),
	})
}

// page shows a text report in the interactive viewer.
func page(m meta.Meta, r *output.Report, format output.Format, p output.Painter, summary bool) error {
	if format != output.FormatText {
		return fmt.Errorf("--interactive needs text output, not %s", format)
	}
	if !isTerminal(m.Out()) {
		return errors.New("--interactive needs a terminal")
	}

	lines, marks := r.Lines(p, summary)
	title := fmt.Sprintf("%s vs %s", r.Baseline.Label, r.Compare.Label)
	return pager.Run(title, lines, marks, diffHeaderRows)
}

// diffCommandBuilder constructs the cli.Command for "diff", wiring metadata,
// flags, and action handlers.
func diffCommandBuilder(meta meta.Meta) *cli.Command {
	const ns = "diff"
	path := meta.Config.Source

	width := &cli.IntFlag{
		Name:    "width",
		Aliases: []string{"w"},
		Usage:   "width of each report column",
		Value:   DefaultWidth,
		Sources: cli.NewValueSourceChain(cli.EnvVar("NETDIFF_WIDTH")),
		Validator: func(value int) error {
			return FlagValidators(value, WidthValidator)
		},
	}
	NameSpacedValueChainFromConfigFile(ns, path, width.Name, &width.Sources)

	diffsOnly := &cli.BoolFlag{
		Name:    "diffs-only",
		Aliases: []string{"d"},
		Usage:   "show only nets that differ",
		Sources: cli.NewValueSourceChain(cli.EnvVar("NETDIFF_DIFFS_ONLY")),
	}
	NameSpacedValueChainFromConfigFile(ns, path, diffsOnly.Name, &diffsOnly.Sources)

	summary := &cli.BoolFlag{
		Name:    "summary",
		Usage:   "append a summary of the differences",
		Sources: cli.NewValueSourceChain(cli.EnvVar("NETDIFF_SUMMARY")),
	}
	NameSpacedValueChainFromConfigFile(ns, path, summary.Name, &summary.Sources)

	return &cli.Command{
		Name:      ns,
		Usage:     "compare two netlists side by side",
		UsageText: "netdiff [diff] <baseline> <compare> [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			width,
			diffsOnly,
			summary,
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "browse the report in a scrollable viewer",
			},
		}, NewGlobalFlags(ns, path)...),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, ArgsValidator(cmd, "baseline", "compare")
		},
		Action: diffCommandAction,
	}
}
