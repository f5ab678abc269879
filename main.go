// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/tfctl/netdiff/internal/cacheutil"
	"github.com/tfctl/netdiff/internal/command"
	"github.com/tfctl/netdiff/internal/config"
	"github.com/tfctl/netdiff/internal/log"
	"github.com/tfctl/netdiff/internal/version"
)

var ctx = context.Background()

// flagAliases maps short flags to their long names so duplicates are found
// whichever spelling was used.
var flagAliases = map[string]string{
	"-c": "--color",
	"-d": "--diffs-only",
	"-f": "--filter",
	"-i": "--interactive",
	"-o": "--output",
	"-w": "--width",
}

// boolFlags never take a separate value.
var boolFlags = map[string]bool{
	"--color":       true,
	"--diffs-only":  true,
	"--interactive": true,
	"--summary":     true,
}

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// handleImplicitDiff inserts the diff command when args[1] is not a known
// command, so "netdiff a b" runs "netdiff diff a b".
func handleImplicitDiff(args []string) []string {
	if len(args) <= 1 {
		return args
	}
	a := args[1]
	if slices.Contains(command.Commands, a) || a == "-h" || a == "--help" ||
		strings.HasPrefix(a, "--generate-shell-completion") {
		return args
	}
	return slices.Insert(slices.Clone(args), 1, "diff")
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	if len(args) > 1 && args[1] == "completion" {
		return args
	}

	args = processSetOnly(args)
	log.Debugf("args after set processing: args=%v", args)

	return deduplicateFlags(args)
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	// Pre-create cache directory when caching is enabled.
	if _, ok, err := cacheutil.EnsureBaseDir(); err != nil && ok {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("cache ensure err: err=%v", err)
	}

	if hours, err := config.GetInt("cache.clean", 0); err == nil {
		if err := cacheutil.Purge(float64(hours)); err != nil {
			log.Debugf("cache purge err: err=%v", err)
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)
	args = handleImplicitDiff(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	if !slices.Contains(args, "--help") && !slices.Contains(args, "-h") {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args)
}

// processSetOnly expands an @set argument into the entries of the
// "<command>.<set>" config list, in place of the @set argument.
func processSetOnly(args []string) []string {
	if len(args) < 3 {
		return args
	}

	for i, a := range args[2:] {
		if !strings.HasPrefix(a, "@") || len(a) == 1 {
			continue
		}
		idx := 2 + i
		entries, err := config.GetStringSlice(args[1] + "." + a[1:])
		if err != nil {
			log.Warnf("unknown set %s: %v", a, err)
		}
		args = slices.Delete(slices.Clone(args), idx, idx+1)
		return injectConfigSet(args, entries, idx)
	}
	return args
}

// injectConfigSet splits each entry on whitespace and inserts the fields into
// args at insertIdx.
func injectConfigSet(args []string, entries []string, insertIdx int) []string {
	if len(entries) == 0 {
		return args
	}

	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, strings.Fields(entry)...)
	}

	return slices.Insert(slices.Clone(args), insertIdx, expanded...)
}

// deduplicateFlags drops all but the last occurrence of each flag after the
// command, so a flag given on the command line overrides one expanded from a
// set. A flag without "=" owns the following argument as its value unless it
// is boolean or the next argument is itself a flag. Positional arguments keep
// their order.
func deduplicateFlags(args []string) []string {
	if len(args) <= 2 {
		return args
	}

	type group struct {
		key    string
		tokens []string
	}

	var groups []group
	rest := args[2:]
	for i := 0; i < len(rest); i++ {
		a := rest[i]
		if !isFlag(a) {
			groups = append(groups, group{tokens: []string{a}})
			continue
		}

		name, _, hasValue := strings.Cut(a, "=")
		if long, ok := flagAliases[name]; ok {
			name = long
		}
		g := group{key: name, tokens: []string{a}}
		if !hasValue && !boolFlags[name] && i+1 < len(rest) && !isFlag(rest[i+1]) {
			g.tokens = append(g.tokens, rest[i+1])
			i++
		}
		groups = append(groups, g)
	}

	last := map[string]int{}
	for i, g := range groups {
		if g.key != "" {
			last[g.key] = i
		}
	}

	result := slices.Clone(args[:2])
	for i, g := range groups {
		if g.key == "" || last[g.key] == i {
			result = append(result, g.tokens...)
		}
	}
	return result
}

// isFlag reports whether a looks like a flag. A lone "-" is stdin.
func isFlag(a string) bool {
	return len(a) > 1 && strings.HasPrefix(a, "-")
}
