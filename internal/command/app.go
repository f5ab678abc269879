// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/netdiff/internal/config"
	"github.com/tfctl/netdiff/internal/log"
	"github.com/tfctl/netdiff/internal/meta"
)

// Commands names the subcommands understood by the app. Anything else in the
// command position is treated as the start of an implicit diff.
var Commands = []string{"completion", "diff", "dump", "help"}

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// The arg[1] immediately following the binary (arg[0]) is the netdiff
	// subcommand and also the namespace used when retrieving config values.
	// arg[1] could be -h/--help, so ignore it if it appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	config.Config.Namespace = ns
	cfg, err := config.Load()
	if err != nil {
		log.Debugf("no config loaded: %v", err)
	}

	return NewApp(meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}), nil
}

// NewApp builds the command tree around m. Streams left nil in m fall back to
// the process stdin and stdout.
func NewApp(m meta.Meta) *cli.Command {
	app := &cli.Command{
		Name:                  "netdiff",
		Usage:                 "compare two netlists side by side",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "netdiff version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		diffCommandBuilder(m),
		dumpCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app
}
