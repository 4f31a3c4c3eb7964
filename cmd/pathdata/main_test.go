package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), err
}

func TestRunForms(t *testing.T) {
	var tests = []struct {
		args []string
		want string
	}{
		{[]string{"l10,0 10,10"}, "l10,0 10,10\n"},
		{[]string{"-form", "simple", "l10,0 10,10"}, "l10,0 l10,10\n"},
		{[]string{"-form", "absolute", "M1 1 l1 1"}, "M1 1L2 2\n"},
		{[]string{"-form", "plain", "M0 0 h1 v1 z"}, "M0 0L1 0L1 1Z\n"},
		{[]string{"-form", "flat", "M0 0 C1 1 2 2 3 3"}, "M0 0L3 3\n"},
		{[]string{"-translate", "1,2", "M0 0 l1 1"}, "M1 2l1 1\n"},
		{[]string{"-scale", "2,3", "M1 1 h1"}, "M2 3L4 3\n"},
		{[]string{"-segments", "M0 0L1 1M2 2L3 3"}, "M0 0L1 1\nM2 2L3 3\n"},
		{[]string{"-bounds", "M0 0 C0 100 100 100 100 0"}, "0 0 100 75\n"},
	}
	for _, tt := range tests {
		got, err := runArgs(t, tt.args...)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want, got, tt.args)
	}
}

func TestRunErrors(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"a", "b"},
		{"-form", "nope", "M0 0"},
		{"-translate", "1", "M0 0"},
		{"-form", "absolute", "M0 0 L1"},
		{"-form", "simple", "M0 0 L1"},
		{"-segments", "M0 0 L1 1 M2 2 L3"},
		{"-translate", "1,x", "M0 0"},
		{"-scale", "2,2px", "M0 0"},
		{"-form", "base", "M0 0 Q1 1 2 2"},
		{"-config", "missing.toml", "M0 0"},
	} {
		_, err := runArgs(t, args...)
		assert.Error(t, err, args)
	}
}

func TestParsePair(t *testing.T) {
	x, y, err := parsePair(" -1.5, 2e1")
	require.NoError(t, err)
	assert.Equal(t, -1.5, x)
	assert.Equal(t, 20., y)

	x, _, err = parsePair("0.1234567890123456789,0")
	require.NoError(t, err)
	assert.Equal(t, 0.1234567890123456789, x)
}

func TestRunConfig(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(file, []byte(`
form = "absolute"

[flatten]
approximation_scale = 4.0
`), 0o644))

	got, err := runArgs(t, "-config", file, "m1 1 l1 1")
	require.NoError(t, err)
	assert.Equal(t, "M1 1L2 2\n", got)

	// flags take precedence
	got, err = runArgs(t, "-config", file, "-form", "simple", "m1 1 1 1")
	require.NoError(t, err)
	assert.Equal(t, "m1 1 l1 1\n", got)

	require.NoError(t, os.WriteFile(file, []byte("unknown = 1\n"), 0o644))
	_, err = runArgs(t, "-config", file, "M0 0")
	assert.Error(t, err)
}

func TestRunSVG(t *testing.T) {
	got, err := runArgs(t, "-form", "plain", filepath.Join("..", "..", "svgdoc", "testdata", "shapes.svg"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(got), "\n")
	assert.Len(t, lines, 7)
	assert.Equal(t, "M150 20L170 20L170 40L150 40Z", lines[6])
}

func TestRunVerbose(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-v", "-form", "normalized", "m0 0 q1 1 2 0"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "derived view")
}
