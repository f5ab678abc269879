// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/netdiff/internal/config"
	"github.com/tfctl/netdiff/internal/meta"
	"github.com/tfctl/netdiff/internal/output"
)

const (
	left  = "testdata/left.asc"
	right = "testdata/right.asc"
)

// run executes the app with args and returns what it wrote to stdout.
func run(t *testing.T, m meta.Meta, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	m.Stdout = &out
	m.Context = context.Background()
	err := NewApp(m).Run(context.Background(), append([]string{"netdiff"}, args...))
	return out.String(), err
}

func decodeReport(t *testing.T, s string) output.Document {
	t.Helper()
	var doc output.Document
	require.NoError(t, json.Unmarshal([]byte(s), &doc))
	return doc
}

func statuses(doc output.Document) map[string]output.Status {
	out := map[string]output.Status{}
	for _, e := range doc.Nets {
		out[e.Name] = e.Status
	}
	return out
}

func TestDiffText(t *testing.T) {
	out, err := run(t, meta.Meta{}, "diff", left, right, "-w", "24")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Greater(t, len(lines), 2)
	assert.Contains(t, lines[0], left)
	assert.Contains(t, lines[0], right)
	assert.Equal(t, strings.Repeat("-", 24)+" | "+strings.Repeat("+", 24), lines[1])
	assert.Contains(t, out, "-GND: ")
	assert.Contains(t, out, "+RESET: ")
	assert.NotContains(t, out, "\x1b[", "output to a buffer is never colored")
	for _, l := range lines[2:] {
		assert.Len(t, []rune(l), 24+3+24, "row %q", l)
	}
}

func TestDiffJSON(t *testing.T) {
	out, err := run(t, meta.Meta{}, "diff", left, right, "-o", "json")
	require.NoError(t, err)

	doc := decodeReport(t, out)
	assert.Equal(t, left, doc.Baseline)
	assert.Equal(t, right, doc.Compare)
	assert.Equal(t, map[string]output.Status{
		"CLK":   output.StatusChanged,
		"GND":   output.StatusRemoved,
		"RESET": output.StatusAdded,
		"VCC":   output.StatusSame,
	}, statuses(doc))

	for _, e := range doc.Nets {
		if e.Name == "CLK" {
			assert.Equal(t, []string{"U2.3"}, e.Removed)
			assert.Equal(t, []string{"U3.5"}, e.Added)
		}
	}
}

func TestDiffDiffsOnlyAndSummary(t *testing.T) {
	out, err := run(t, meta.Meta{}, "diff", left, right, "-o", "json", "-d", "--summary")
	require.NoError(t, err)

	doc := decodeReport(t, out)
	assert.NotContains(t, statuses(doc), "VCC")
	require.NotNil(t, doc.Summary)
	assert.Equal(t, 4, doc.Summary.Compared)
	assert.Equal(t, 1, doc.Summary.Same)
}

func TestDiffFilter(t *testing.T) {
	out, err := run(t, meta.Meta{}, "diff", left, right, "-o", "json", "-f", "name^C")
	require.NoError(t, err)
	assert.Equal(t, map[string]output.Status{"CLK": output.StatusChanged}, statuses(decodeReport(t, out)))
}

func TestDiffStdin(t *testing.T) {
	data, err := os.ReadFile(left)
	require.NoError(t, err)

	out, err := run(t, meta.Meta{Stdin: bytes.NewReader(data)}, "diff", "-", right, "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "baseline: <stdin>")
}

func TestDiffErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"one argument", []string{"diff", left}, "expected 2"},
		{"three arguments", []string{"diff", left, right, left}, "expected 2"},
		{"stdin twice", []string{"diff", "-", "-"}, "stdin"},
		{"missing file", []string{"diff", left, "testdata/nope.asc"}, "no such file"},
		{"zero width", []string{"diff", left, right, "-w", "0"}, "greater than 0"},
		{"bad output", []string{"diff", left, right, "-o", "xml"}, "must be one of"},
		{"bad format", []string{"diff", left, right, "--format", "xml"}, "must be one of"},
		{"bad filter", []string{"diff", left, right, "-f", "pins=3"}, "unknown key"},
		{"forced json on pads", []string{"diff", left, right, "--format", "json"}, "invalid JSON"},
		{"interactive without terminal", []string{"diff", left, right, "-i"}, "terminal"},
		{"interactive json", []string{"diff", left, right, "-i", "-o", "json"}, "text output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, meta.Meta{}, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDiffConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("output: yaml\ndiff:\n  output: json\n  diffs-only: true\n"), 0o600))

	out, err := run(t, meta.Meta{Config: config.Type{Source: path}}, "diff", left, right)
	require.NoError(t, err)

	doc := decodeReport(t, out)
	assert.Len(t, doc.Nets, 3)

	// The command line beats the config file.
	out, err = run(t, meta.Meta{Config: config.Type{Source: path}}, "diff", left, right, "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, " | ")
}

func TestDiffEnv(t *testing.T) {
	t.Setenv("NETDIFF_OUTPUT", "json")
	t.Setenv("NETDIFF_FILTER", "member=U1.14")

	out, err := run(t, meta.Meta{}, "diff", left, right)
	require.NoError(t, err)
	assert.Equal(t, map[string]output.Status{"VCC": output.StatusSame}, statuses(decodeReport(t, out)))
}

func TestDump(t *testing.T) {
	out, err := run(t, meta.Meta{}, "dump", left)
	require.NoError(t, err)
	assert.Equal(t, left+"\n"+
		"   CLK: U1.1, U2.3\n"+
		"   GND: C1.2, U1.7, U2.4\n"+
		"   VCC: C1.1, U1.14, U2.8\n", out)

	out, err = run(t, meta.Meta{}, "dump", right, "-o", "json", "-f", "members>2")
	require.NoError(t, err)

	var doc output.DumpDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Nets, 1)
	assert.Equal(t, "VCC", doc.Nets[0].Name)

	_, err = run(t, meta.Meta{}, "dump")
	assert.Error(t, err)
}

func TestFlagsSorted(t *testing.T) {
	for _, cmd := range NewApp(meta.Meta{}).Commands {
		for i := 1; i < len(cmd.Flags); i++ {
			assert.Less(t, cmd.Flags[i-1].Names()[0], cmd.Flags[i].Names()[0], cmd.Name)
		}
	}
}

func TestValidators(t *testing.T) {
	assert.NoError(t, FlagValidators("json", OutputValidator))
	assert.Error(t, FlagValidators("raw", OutputValidator))
	assert.NoError(t, FlagValidators("PADS", FormatValidator))
	assert.NoError(t, FlagValidators(7, WidthValidator))
	assert.Error(t, FlagValidators(-1, WidthValidator))
	assert.Error(t, FlagValidators("7", WidthValidator))
	assert.NoError(t, FlagValidators("", FilterValidator))
	assert.Error(t, FlagValidators("name", FilterValidator))
}

func TestGetMeta(t *testing.T) {
	assert.Equal(t, meta.Meta{}, GetMeta(nil))

	m := meta.Meta{StartingDir: "/tmp"}
	cmd := diffCommandBuilder(m)
	assert.Equal(t, "/tmp", GetMeta(cmd).StartingDir)
}
