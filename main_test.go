// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/netdiff/internal/config"
)

func TestDeduplicateFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "empty args",
			args:     []string{},
			expected: []string{},
		},
		{
			name:     "only program and command",
			args:     []string{"netdiff", "diff"},
			expected: []string{"netdiff", "diff"},
		},
		{
			name:     "no duplicates",
			args:     []string{"netdiff", "diff", "a", "b", "--output", "text", "--summary"},
			expected: []string{"netdiff", "diff", "a", "b", "--output", "text", "--summary"},
		},
		{
			name:     "duplicate flag with value - last wins",
			args:     []string{"netdiff", "diff", "--output", "json", "--summary", "--output", "text"},
			expected: []string{"netdiff", "diff", "--summary", "--output", "text"},
		},
		{
			name:     "duplicate boolean flag",
			args:     []string{"netdiff", "diff", "--summary", "-d", "--summary"},
			expected: []string{"netdiff", "diff", "-d", "--summary"},
		},
		{
			name:     "duplicate flag with equals syntax",
			args:     []string{"netdiff", "diff", "--output=json", "--summary", "--output=text"},
			expected: []string{"netdiff", "diff", "--summary", "--output=text"},
		},
		{
			name:     "mixed equals and space syntax",
			args:     []string{"netdiff", "diff", "--output=json", "--output", "text"},
			expected: []string{"netdiff", "diff", "--output", "text"},
		},
		{
			name:     "short and long spellings are one flag",
			args:     []string{"netdiff", "diff", "-w", "30", "a", "b", "--width", "60"},
			expected: []string{"netdiff", "diff", "a", "b", "--width", "60"},
		},
		{
			name:     "boolean flag does not swallow a positional",
			args:     []string{"netdiff", "diff", "-d", "a.asc", "b.asc", "-d"},
			expected: []string{"netdiff", "diff", "a.asc", "b.asc", "-d"},
		},
		{
			name:     "stdin is a positional",
			args:     []string{"netdiff", "diff", "-f", "name^D", "-", "b.asc"},
			expected: []string{"netdiff", "diff", "-f", "name^D", "-", "b.asc"},
		},
		{
			name:     "different flags not affected",
			args:     []string{"netdiff", "diff", "--color", "--diffs-only"},
			expected: []string{"netdiff", "diff", "--color", "--diffs-only"},
		},
		{
			name:     "triple duplicate",
			args:     []string{"netdiff", "diff", "-o", "json", "-o", "yaml", "--output", "text"},
			expected: []string{"netdiff", "diff", "--output", "text"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, deduplicateFlags(tt.args))
		})
	}
}

func TestInjectConfigSet(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		insertIdx int
		entries   []string
		expected  []string
	}{
		{
			name:      "empty entries returns args unchanged",
			args:      []string{"netdiff", "diff", "a", "b"},
			insertIdx: 2,
			expected:  []string{"netdiff", "diff", "a", "b"},
		},
		{
			name:      "multi-word entry split",
			args:      []string{"netdiff", "diff", "a", "b"},
			insertIdx: 2,
			entries:   []string{"--width 60", "-d"},
			expected:  []string{"netdiff", "diff", "--width", "60", "-d", "a", "b"},
		},
		{
			name:      "insert after positionals",
			args:      []string{"netdiff", "diff", "a", "b", "--summary"},
			insertIdx: 4,
			entries:   []string{"-o json"},
			expected:  []string{"netdiff", "diff", "a", "b", "-o", "json", "--summary"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, injectConfigSet(tt.args, tt.entries, tt.insertIdx))
		})
	}
}

func TestProcessSetOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("diff:\n  review:\n    - --diffs-only\n    - --width 60\n"), 0o600))
	_, err := config.Load(path)
	require.NoError(t, err)
	t.Cleanup(func() { config.Config = config.Type{} })

	args := processSetOnly([]string{"netdiff", "diff", "a", "@review", "b", "-w", "80"})
	assert.Equal(t, []string{"netdiff", "diff", "a", "--diffs-only", "--width", "60", "b", "-w", "80"}, args)
	assert.Equal(t, []string{"netdiff", "diff", "a", "--diffs-only", "b", "-w", "80"}, deduplicateFlags(args))

	// An unknown set is dropped.
	assert.Equal(t, []string{"netdiff", "diff", "a"}, processSetOnly([]string{"netdiff", "diff", "a", "@nope"}))
}

func TestHandleImplicitDiff(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"netdiff", "a", "b"}, []string{"netdiff", "diff", "a", "b"}},
		{[]string{"netdiff", "-w", "20", "a", "b"}, []string{"netdiff", "diff", "-w", "20", "a", "b"}},
		{[]string{"netdiff", "diff", "a", "b"}, []string{"netdiff", "diff", "a", "b"}},
		{[]string{"netdiff", "dump", "a"}, []string{"netdiff", "dump", "a"}},
		{[]string{"netdiff", "completion", "bash"}, []string{"netdiff", "completion", "bash"}},
		{[]string{"netdiff", "--help"}, []string{"netdiff", "--help"}},
		{[]string{"netdiff"}, []string{"netdiff"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, handleImplicitDiff(tt.args), "%v", tt.args)
	}
}

func TestHandleNakedCommand(t *testing.T) {
	assert.Equal(t, []string{"netdiff", "--help"}, handleNakedCommand([]string{"netdiff"}))
	assert.Equal(t, []string{"netdiff", "a"}, handleNakedCommand([]string{"netdiff", "a"}))
}
