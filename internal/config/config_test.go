package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datashell/internal/codec"
	"datashell/internal/format"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datash.yaml")
	require.NoError(t, os.WriteFile(path, []byte("json_indent: 4\ncsv_numbers: sniff\nast_language: ts\n"), 0o600))

	t.Setenv("DATASH_CSV_COMMA", ";")
	t.Setenv("DATASH_JSON_INDENT", "0")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.JSONIndent)
	assert.Equal(t, "sniff", cfg.CSVNumbers)
	assert.Equal(t, ";", cfg.CSVComma)

	opts := cfg.CodecOptions()
	assert.Equal(t, ';', opts.CSVComma)
	assert.Equal(t, codec.NumbersSniff, opts.CSVNumbers)

	f, err := cfg.ASTFormat()
	require.NoError(t, err)
	assert.Equal(t, format.TypeScript, f)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative indent", func(c *Config) { c.JSONIndent = -1 }},
		{"unknown number policy", func(c *Config) { c.CSVNumbers = "float" }},
		{"long comma", func(c *Config) { c.CSVComma = ";;" }},
		{"quote comma", func(c *Config) { c.CSVComma = "\"" }},
		{"unknown language", func(c *Config) { c.ASTLanguage = "cobol" }},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	require.NoError(t, Default().Validate())
}

func TestNewLoggerTo(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "info"

	var buf bytes.Buffer

	logger, err := NewLoggerTo(cfg, &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
