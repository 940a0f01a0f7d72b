package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/atomview/internal/cli/output"
	"github.com/leapstack-labs/atomview/pkg/core"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !output.Mode(c.OutputFormat).Valid() {
		return fmt.Errorf("invalid output format %q (want auto, text, markdown or json)", c.OutputFormat)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if strings.TrimSpace(c.DefaultElement) == "" {
		return fmt.Errorf("default_element is required")
	}
	if err := core.AtomicNumber(c.Table.From).Validate(); err != nil {
		return fmt.Errorf("table.from: %w", err)
	}
	if err := core.AtomicNumber(c.Table.To).Validate(); err != nil {
		return fmt.Errorf("table.to: %w", err)
	}
	if c.Table.From > c.Table.To {
		return fmt.Errorf("table.from (%d) must not exceed table.to (%d)", c.Table.From, c.Table.To)
	}
	return nil
}

// Level returns the slog level for the configuration. Verbose forces debug.
func (c *Config) Level() (slog.Level, error) {
	if c.Verbose {
		return slog.LevelDebug, nil
	}
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q (want debug, info, warn or error)", c.LogLevel)
	}
	return level, nil
}
