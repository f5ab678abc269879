// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// DefaultWidth is the column width used when --width is not given.
const DefaultWidth = 40

// NewGlobalFlags returns the flags shared by every command. ns is the command
// name and path the config file backing the flags; either may be empty.
func NewGlobalFlags(ns string, path string) (flags []cli.Flag) {
	color := &cli.BoolFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "enable colored text output (default: on for a terminal)",
		Sources: cli.NewValueSourceChain(cli.EnvVar("NETDIFF_COLOR")),
	}
	NameSpacedValueChainFromConfigFile(ns, path, color.Name, &color.Sources)

	filter := &cli.StringFlag{
		Name:    "filter",
		Aliases: []string{"f"},
		Usage:   "comma-separated list of filters selecting the nets to compare",
		Sources: cli.NewValueSourceChain(cli.EnvVar("NETDIFF_FILTER")),
		Validator: func(value string) error {
			return FlagValidators(value, FilterValidator)
		},
	}
	NameSpacedValueChainFromConfigFile(ns, path, filter.Name, &filter.Sources)

	format := &cli.StringFlag{
		Name:    "format",
		Usage:   "input format (auto, pads, json)",
		Value:   "auto",
		Sources: cli.NewValueSourceChain(cli.EnvVar("NETDIFF_FORMAT")),
		Validator: func(value string) error {
			return FlagValidators(value, FormatValidator)
		},
	}
	NameSpacedValueChainFromConfigFile(ns, path, format.Name, &format.Sources)

	output := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format (text, json, yaml)",
		Value:   "text",
		Sources: cli.NewValueSourceChain(cli.EnvVar("NETDIFF_OUTPUT")),
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}
	NameSpacedValueChainFromConfigFile(ns, path, output.Name, &output.Sources)

	flags = []cli.Flag{color, filter, format, output}
	flags = append(flags, newSourceFlags(path)...)

	return
}

// newSourceFlags returns the flags steering S3 access. Their config keys live
// under s3 rather than the command namespace.
func newSourceFlags(path string) []cli.Flag {
	profile := &cli.StringFlag{
		Name:    "profile",
		Usage:   "AWS profile for s3:// inputs",
		Sources: cli.NewValueSourceChain(cli.EnvVar("NETDIFF_PROFILE"), cli.EnvVar("AWS_PROFILE")),
	}
	region := &cli.StringFlag{
		Name:    "region",
		Usage:   "AWS region for s3:// inputs",
		Sources: cli.NewValueSourceChain(cli.EnvVar("NETDIFF_REGION"), cli.EnvVar("AWS_REGION")),
	}
	if path != "" {
		profile.Sources.Chain = append(profile.Sources.Chain, yaml.YAML("s3.profile", altsrc.StringSourcer(path)))
		region.Sources.Chain = append(region.Sources.Chain, yaml.YAML("s3.region", altsrc.StringSourcer(path)))
	}
	return []cli.Flag{profile, region}
}

// NameSpacedValueChainFromConfigFile adds namespaced and global config file
// sources for the named flag to chain. Nothing is added without a config file.
func NameSpacedValueChainFromConfigFile(ns string, path string, name string, chain *cli.ValueSourceChain) {
	if path == "" {
		return
	}

	if ns != "" {
		src := yaml.YAML(ns+"."+name, altsrc.StringSourcer(path))
		chain.Chain = append(chain.Chain, src)
	}

	src := yaml.YAML(name, altsrc.StringSourcer(path))
	chain.Chain = append(chain.Chain, src)
}
