// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package source fetches netlist bytes from stdin, local files or S3 and
// hands them to the parser.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tfctl/netdiff/internal/aws"
	"github.com/tfctl/netdiff/internal/cacheutil"
	"github.com/tfctl/netdiff/internal/log"
	"github.com/tfctl/netdiff/internal/netlist"
	"github.com/tfctl/netdiff/internal/parser"
)

// Stdin is the location naming standard input.
const Stdin = "-"

// StdinLabel labels a netlist read from standard input.
const StdinLabel = "<stdin>"

// Options control how a location is read.
type Options struct {
	Format  parser.Format
	Profile string
	Region  string

	// Stdin replaces os.Stdin for the "-" location.
	Stdin io.Reader
	// S3 replaces the client built from Profile and Region.
	S3 aws.ObjectGetter
}

// Load reads and parses the netlist at location. opts may be shared across
// calls so both sides of a comparison reuse one S3 client.
func Load(ctx context.Context, location string, opts *Options) (*netlist.Netlist, error) {
	if opts == nil {
		opts = &Options{}
	}
	label, data, err := Read(ctx, location, opts)
	if err != nil {
		return nil, err
	}
	return parser.Parse(label, data, opts.Format)
}

// Read returns a display label and the raw bytes at location. An S3 client
// built on demand is kept in opts for later calls.
func Read(ctx context.Context, location string, opts *Options) (string, []byte, error) {
	switch {
	case location == Stdin:
		in := opts.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return StdinLabel, data, nil

	case aws.IsURI(location):
		data, err := readS3(ctx, location, opts)
		return location, data, err

	default:
		path, err := ParsePath(location)
		if err != nil {
			return "", nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", nil, err
		}
		log.Debugf("source: read %s bytes=%d", path, len(data))
		return location, data, nil
	}
}

// ParsePath resolves a local netlist path to an absolute one. The entry must
// exist and be a regular file.
func ParsePath(location string) (string, error) {
	if location == "" {
		return "", fmt.Errorf("empty path: %w", os.ErrInvalid)
	}

	path, err := filepath.Abs(location)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: no such file", location)
		}
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%s: not a regular file", location)
	}
	return path, nil
}

func readS3(ctx context.Context, location string, opts *Options) ([]byte, error) {
	loc, err := aws.ParseURI(location)
	if err != nil {
		return nil, err
	}

	return cacheutil.Fetch([]string{"s3", loc.Bucket}, loc.String(), func() ([]byte, error) {
		if opts.S3 == nil {
			cfg, err := aws.LoadAWSConfig(ctx, aws.WithProfile(opts.Profile), aws.WithRegion(opts.Region))
			if err != nil {
				return nil, fmt.Errorf("failed to load aws config: %w", err)
			}
			opts.S3 = aws.NewS3(cfg)
		}
		return aws.GetObject(ctx, opts.S3, loc)
	})
}
