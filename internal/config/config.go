// Package config loads engine settings with viper and builds the zap
// logger used by the engine and the CLI.
//
// Settings are resolved from defaults, then an optional YAML file, then
// DATASH_* environment variables (DATASH_JSON_INDENT, DATASH_CSV_NUMBERS,
// and so on).
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"

	"datashell/internal/codec"
	"datashell/internal/format"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "DATASH"

// Keys.
const (
	KeyJSONIndent  = "json_indent"
	KeyCSVNumbers  = "csv_numbers"
	KeyCSVComma    = "csv_comma"
	KeyDatePattern = "date_pattern"
	KeyASTLanguage = "ast_language"
	KeyLogLevel    = "log_level"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the engine settings.
type Config struct {
	JSONIndent  int    `mapstructure:"json_indent"`
	CSVNumbers  string `mapstructure:"csv_numbers"`
	CSVComma    string `mapstructure:"csv_comma"`
	DatePattern string `mapstructure:"date_pattern"`
	ASTLanguage string `mapstructure:"ast_language"`
	LogLevel    string `mapstructure:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		JSONIndent:  2,
		CSVNumbers:  string(codec.NumbersAsStrings),
		CSVComma:    ",",
		ASTLanguage: "javascript",
		LogLevel:    "warn",
	}
}

// Load resolves the configuration. path may be empty.
func Load(path string) (Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault(KeyJSONIndent, defaults.JSONIndent)
	v.SetDefault(KeyCSVNumbers, defaults.CSVNumbers)
	v.SetDefault(KeyCSVComma, defaults.CSVComma)
	v.SetDefault(KeyDatePattern, defaults.DatePattern)
	v.SetDefault(KeyASTLanguage, defaults.ASTLanguage)
	v.SetDefault(KeyLogLevel, defaults.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %q: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	var errs []error

	if c.JSONIndent < 0 || c.JSONIndent > 8 {
		errs = append(errs, fmt.Errorf("%s must be between 0 and 8, got %d", KeyJSONIndent, c.JSONIndent))
	}

	switch codec.NumberPolicy(c.CSVNumbers) {
	case codec.NumbersAsStrings, codec.NumbersSniff:
	default:
		errs = append(errs, fmt.Errorf("%s must be %q or %q, got %q",
			KeyCSVNumbers, codec.NumbersAsStrings, codec.NumbersSniff, c.CSVNumbers))
	}

	if utf8.RuneCountInString(c.CSVComma) != 1 || c.CSVComma == "\n" || c.CSVComma == "\"" {
		errs = append(errs, fmt.Errorf("%s must be a single character other than newline or quote, got %q", KeyCSVComma, c.CSVComma))
	}

	if _, err := c.ASTFormat(); err != nil {
		errs = append(errs, err)
	}

	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", KeyLogLevel, err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// ASTFormat resolves ast_language to the source format the Text.AST
// accessor parses when a text has no language format of its own.
func (c Config) ASTFormat() (string, error) {
	switch f := format.Resolve(c.ASTLanguage); f {
	case format.JavaScript, format.TypeScript, format.Go:
		return f, nil
	default:
		return "", fmt.Errorf("%s must be javascript, typescript or go, got %q", KeyASTLanguage, c.ASTLanguage)
	}
}

// CodecOptions converts the settings for codec.Default.
func (c Config) CodecOptions() codec.Options {
	opts := codec.DefaultOptions()
	opts.JSONIndent = c.JSONIndent
	opts.CSVNumbers = codec.NumberPolicy(c.CSVNumbers)
	opts.DatePattern = c.DatePattern

	if r, _ := utf8.DecodeRuneInString(c.CSVComma); r != utf8.RuneError {
		opts.CSVComma = r
	}

	return opts
}
