package config

import (
	"os"
	"strconv"
)

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("BOARDMD_SCHEMA"); v != "" {
		cfg.SchemaFile = v
	}
	if v := os.Getenv("BOARDMD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("BOARDMD_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("BOARDMD_STRICT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Strict = b
		}
	}
	if v := os.Getenv("BOARDMD_INCLUDE_EMPTY_FIELDS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.IncludeEmptyFields = b
		}
	}
	if v := os.Getenv("BOARDMD_SEPARATE_CARDS_WITH_HR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.SeparateCardsWithHr = b
		}
	}
	if v := os.Getenv("BOARDMD_INDENT_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.IndentSize = n
		}
	}
}
