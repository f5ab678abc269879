// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/netdiff/internal/filters"
	"github.com/tfctl/netdiff/internal/output"
	"github.com/tfctl/netdiff/internal/parser"
	"github.com/tfctl/netdiff/internal/source"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func OutputValidator(value any) error {
	s, _ := value.(string)
	if !slices.Contains(output.Formats, s) {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

func FormatValidator(value any) error {
	s, _ := value.(string)
	_, err := parser.ParseFormat(s)
	return err
}

func FilterValidator(value any) error {
	s, _ := value.(string)
	return filters.Validate(s)
}

func WidthValidator(value any) error {
	if w, ok := value.(int); !ok || w <= 0 {
		return fmt.Errorf("must be greater than 0, got %v", value)
	}
	return nil
}

// ArgsValidator checks cmd received exactly want positional arguments and
// that at most one of them reads stdin.
func ArgsValidator(cmd *cli.Command, want ...string) error {
	args := cmd.Args().Slice()
	if len(args) != len(want) {
		return fmt.Errorf("%s: expected %d argument(s) %v, got %d", cmd.Name, len(want), want, len(args))
	}

	stdin := 0
	for _, a := range args {
		if a == source.Stdin {
			stdin++
		}
	}
	if stdin > 1 {
		return fmt.Errorf("%s: only one input may be read from stdin", cmd.Name)
	}
	return nil
}
