package config

import "fmt"

// Default values.
const (
	DefaultSchemaFile = "board.schema.json"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
	DefaultIndentSize = 2
)

// Config holds the full configuration for boardmd.
type Config struct {
	// Validation
	SchemaFile string `toml:"schema_file"`
	Strict     bool   `toml:"strict"`

	// Serializer formatting
	IncludeEmptyFields  bool `toml:"include_empty_fields"`
	SeparateCardsWithHr bool `toml:"separate_cards_with_hr"`
	IndentSize          int  `toml:"indent_size"`

	// Logging
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// setDefaults fills cfg with built-in defaults.
func setDefaults(cfg *Config) {
	cfg.SchemaFile = DefaultSchemaFile
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.IndentSize = DefaultIndentSize
}

// finalizeConfig validates the merged result.
func finalizeConfig(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (expected debug|info|warn|error)", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("invalid log_format %q (expected text|json|logfmt)", cfg.LogFormat)
	}
	if cfg.IndentSize < 0 {
		return fmt.Errorf("invalid indent_size %d", cfg.IndentSize)
	}
	return nil
}
