package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes content to an atomview.yaml in a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "atomview.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0600))
	return cfgPath
}

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "config file")
	flags.StringP("output", "o", "", "output format")
	flags.BoolP("verbose", "v", false, "verbose")
	flags.String("log-level", "", "log level")
	flags.Bool("plain", false, "plain digits")
	return flags
}

// TestLoadConfig_Defaults tests that defaults apply without file, env or flags.
func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()

	cfg, err := LoadConfig(writeConfig(t, "{}\n"), nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultElement, cfg.DefaultElement)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.Plain)
	assert.Equal(t, TableConfig{From: 1, To: 118}, cfg.Table)
	assert.Same(t, cfg, GetCurrentConfig())
}

// TestLoadConfig_File tests values read from a YAML config file.
func TestLoadConfig_File(t *testing.T) {
	ResetConfig()

	cfgPath := writeConfig(t, `output: json
default_element: Fe
plain: true
table:
  from: 21
  to: 30
`)
	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, "Fe", cfg.DefaultElement)
	assert.True(t, cfg.Plain)
	assert.Equal(t, TableConfig{From: 21, To: 30}, cfg.Table)
	assert.Equal(t, cfgPath, GetConfigFileUsed())
}

// TestLoadConfig_NumericDefaultElement tests weak decoding of a numeric element.
func TestLoadConfig_NumericDefaultElement(t *testing.T) {
	ResetConfig()

	cfg, err := LoadConfig(writeConfig(t, "default_element: 26\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, "26", cfg.DefaultElement)
}

// TestLoadConfig_UnusedKeys tests that unknown keys are reported, not rejected.
func TestLoadConfig_UnusedKeys(t *testing.T) {
	ResetConfig()

	cfg, err := LoadConfig(writeConfig(t, "plain: true\ncolour: red\nsuperscript: false\n"), nil)
	require.NoError(t, err)
	assert.True(t, cfg.Plain)
	assert.Equal(t, []string{"colour", "superscript"}, GetUnusedKeys())

	ResetConfig()
	assert.Empty(t, GetUnusedKeys())
}

// TestLoadConfig_MissingFile tests that an explicit missing file is an error.
func TestLoadConfig_MissingFile(t *testing.T) {
	ResetConfig()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

// TestLoadConfig_FlagPrecedence tests that flags override env vars and config file.
func TestLoadConfig_FlagPrecedence(t *testing.T) {
	ResetConfig()

	cfgPath := writeConfig(t, "output: markdown\n")
	t.Setenv("ATOMVIEW_OUTPUT", "text")

	flags := newFlags()
	require.NoError(t, flags.Set("output", "json"))

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.OutputFormat, "flag value should override config file and env var")
}

// TestLoadConfig_EnvPrecedenceOverFile tests that env vars override config file.
func TestLoadConfig_EnvPrecedenceOverFile(t *testing.T) {
	ResetConfig()

	cfgPath := writeConfig(t, "output: markdown\nlog_level: info\n")
	t.Setenv("ATOMVIEW_OUTPUT", "text")
	t.Setenv("ATOMVIEW_LOG_LEVEL", "debug")
	t.Setenv("ATOMVIEW_TABLE__TO", "36")

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.OutputFormat, "env var should override config file")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 36, cfg.Table.To)
}

// TestLoadConfig_FlagNotSetUsesEnv tests that unset flags fall back to env vars.
func TestLoadConfig_FlagNotSetUsesEnv(t *testing.T) {
	ResetConfig()

	cfgPath := writeConfig(t, "plain: false\n")
	t.Setenv("ATOMVIEW_PLAIN", "true")

	cfg, err := LoadConfig(cfgPath, newFlags())
	require.NoError(t, err)
	assert.True(t, cfg.Plain, "env var should be used when flag is not set")
}

// TestLoadConfig_Invalid tests that invalid values are rejected at load time.
func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		errSubstr string
	}{
		{"bad output", "output: yaml\n", "invalid output format"},
		{"bad log level", "log_level: loud\n", "invalid log level"},
		{"table from out of range", "table:\n  from: 0\n", "table.from"},
		{"table inverted", "table:\n  from: 50\n  to: 10\n", "must not exceed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetConfig()
			_, err := LoadConfig(writeConfig(t, tt.content), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

// TestConfig_Validate tests the Config.Validate method.
func TestConfig_Validate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, Default().Validate())
	})

	t.Run("empty output means auto", func(t *testing.T) {
		cfg := Default()
		cfg.OutputFormat = ""
		assert.NoError(t, cfg.Validate())
	})

	t.Run("empty default element", func(t *testing.T) {
		cfg := Default()
		cfg.DefaultElement = "  "
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "default_element is required")
	})
}

func TestConfig_Level(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    slog.Level
		wantErr bool
	}{
		{"default", Config{}, slog.LevelWarn, false},
		{"info", Config{LogLevel: "info"}, slog.LevelInfo, false},
		{"upper case", Config{LogLevel: "ERROR"}, slog.LevelError, false},
		{"verbose wins", Config{LogLevel: "error", Verbose: true}, slog.LevelDebug, false},
		{"invalid", Config{LogLevel: "chatty"}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.Level()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogger(t *testing.T) {
	var buf strings.Builder
	logger, err := NewLogger(&buf, &Config{LogLevel: "info"})
	require.NoError(t, err)

	ctx := WithLogger(context.Background(), logger)
	GetLogger(ctx).Debug("hidden")
	GetLogger(ctx).Info("resolved element", "z", 8)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "resolved element")
	assert.Contains(t, buf.String(), "z=8")
}

func TestGetLogger_Fallback(t *testing.T) {
	logger := GetLogger(context.Background())
	require.NotNil(t, logger)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "log_level", envKey("ATOMVIEW_LOG_LEVEL"))
	assert.Equal(t, "table.from", envKey("ATOMVIEW_TABLE__FROM"))
	assert.Equal(t, "output", envKey("ATOMVIEW_OUTPUT"))
}
