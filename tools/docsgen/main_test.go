// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/netdiff/internal/command"
	"github.com/tfctl/netdiff/internal/meta"
)

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

	require.NoError(t, generate(dir, command.NewApp(meta.Meta{}), now))

	page, err := os.ReadFile(filepath.Join(dir, "diff.md"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "# netdiff diff")
	assert.Contains(t, string(page), "| `--width, -w` | width of each report column |")
	assert.Contains(t, string(page), "_Generated March 4, 2026 for netdiff")

	_, err = os.Stat(filepath.Join(dir, "dump.md"))
	assert.NoError(t, err)
}
