// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.boardmd/boardmd.toml or OS-specific config directory)
// 3. Project config file (boardmd.toml or .boardmd.toml in the current directory)
// 4. Environment variables (BOARDMD_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - ~/.boardmd/boardmd.toml (preferred)
// - Windows: %APPDATA%\boardmd\boardmd.toml
// - macOS: ~/Library/Application Support/boardmd/boardmd.toml
// - Linux/BSD: $XDG_CONFIG_HOME/boardmd/boardmd.toml or ~/.config/boardmd/boardmd.toml
//
// Project-level config locations (overrides user config):
// - ./boardmd.toml (preferred)
// - ./.boardmd.toml
package config
