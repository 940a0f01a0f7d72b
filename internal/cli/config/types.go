// Package config provides configuration management for the atomview CLI.
//
// Values are layered, highest precedence first:
// flags > ATOMVIEW_ environment variables > config file > defaults.
package config

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat   string      `koanf:"output"`
	Verbose        bool        `koanf:"verbose"`
	LogLevel       string      `koanf:"log_level"`
	DefaultElement string      `koanf:"default_element"` // number, symbol or name
	Plain          bool        `koanf:"plain"`           // disable superscript digits
	Table          TableConfig `koanf:"table"`
}

// TableConfig bounds the range listed by the table command.
type TableConfig struct {
	From int `koanf:"from"`
	To   int `koanf:"to"`
}

// Default configuration values.
const (
	DefaultOutput         = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogLevel       = "warn"
	DefaultElement        = "8" // oxygen
	DefaultTableFrom      = 1
	DefaultTableTo        = 118
	EnvPrefix             = "ATOMVIEW_"
	configFileBaseName    = "atomview"
	homeConfigDirBaseName = ".atomview"
)

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		OutputFormat:   DefaultOutput,
		LogLevel:       DefaultLogLevel,
		DefaultElement: DefaultElement,
		Table: TableConfig{
			From: DefaultTableFrom,
			To:   DefaultTableTo,
		},
	}
}
