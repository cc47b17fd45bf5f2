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

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()

	return out.String(), err
}

func TestConvertStdin(t *testing.T) {
	out, err := run(t, "name,qty\nshoe,3\n", "convert", "--from", "csv", "--to", "json")
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"name\": \"shoe\",\n    \"qty\": \"3\"\n  }\n]\n", out)
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "items.yaml")
	require.NoError(t, os.WriteFile(in, []byte("b: 1\na: [x]\n"), 0o600))

	out, err := run(t, "", "convert", "--to", "json", in)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": [\n    \"x\"\n  ]\n}\n", out)

	target := filepath.Join(dir, "out", "items.toml")
	_, err = run(t, "", "convert", "--to", "toml", "-o", target, in)
	require.NoError(t, err)

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(content), "b = 1")
}

func TestConvertConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "datash.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("json_indent: 0\n"), 0o600))

	out, err := run(t, "a;b", "--config", cfg, "convert", "--from", "semicolon", "--to", "json")
	require.NoError(t, err)
	assert.Equal(t, "[\"a\",\"b\"]\n", out)
}

func TestConvertHTMLToMarkdown(t *testing.T) {
	out, err := run(t, "<h2>Hi</h2>", "convert", "--from", "html", "--to", "md")
	require.NoError(t, err)
	assert.Contains(t, out, "Hi")
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing --to", []string{"convert", "--from", "json"}},
		{"no input format", []string{"convert", "--to", "json"}},
		{"unknown output", []string{"convert", "--from", "json", "--to", "bogus"}},
		{"missing file", []string{"convert", "--to", "json", "/nonexistent/file.json"}},
		{"bad config", []string{"--config", "/nonexistent/datash.yaml", "convert", "--from", "json", "--to", "yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "{}", tt.args...)
			require.Error(t, err)
		})
	}
}

func TestFormats(t *testing.T) {
	out, err := run(t, "", "formats")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Greater(t, len(lines), 10)
	assert.True(t, strings.HasPrefix(lines[0], "FORMAT"))
	assert.Contains(t, out, "application/json")
	assert.Contains(t, out, "yaml, yml")
}

func TestCheck(t *testing.T) {
	out, err := run(t, "", "check")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ok: "), out)

	out, err = run(t, "", "check", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "info: #15 to-string: [opaque] declares no transformations")
}

func TestConvertSourceAndDates(t *testing.T) {
	out, err := run(t, "package p\n\nvar   x=1\n", "convert", "--from", "go", "--to", "go")
	require.NoError(t, err)
	assert.Equal(t, "package p\n\nvar x = 1\n", out)

	out, err = run(t, "2024-05-06T07:08:09Z", "convert", "--from", "date", "--to", "date")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-06T07:08:09Z\n", out)
}
