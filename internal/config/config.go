// Package config handles global sqltrace configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the global sqltrace configuration.
type Config struct {
	// LogFile is the default log file to scan when --log is not given.
	LogFile string `toml:"log_file"`

	// Encoding is the character encoding label of the log file
	// (e.g. "utf-8", "shift_jis", "euc-jp"). Defaults to UTF-8.
	Encoding string `toml:"encoding"`

	// AutoCopy copies the filled SQL of the last execution to the clipboard
	// after query/last, as if --copy were always passed.
	AutoCopy bool `toml:"auto_copy"`

	// DB holds the default connection for the exec command.
	DB DBConfig `toml:"db"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// DBConfig is the default database connection for executing recovered SQL.
type DBConfig struct {
	// Driver is "sqlite" or "mysql".
	Driver string `toml:"driver"`

	// DSN is the driver-specific connection string.
	DSN string `toml:"dsn"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	path := DefaultPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// DefaultPath returns the default config file path.
// Checks ~/.config/sqltrace/config.toml first (XDG style),
// then falls back to the OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "sqltrace", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "sqltrace", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

// CreateDefault creates a commented default config file at the default path
// if it doesn't exist.
func CreateDefault() (string, error) {
	return CreateDefaultAt(DefaultPath())
}

// CreateDefaultAt creates a commented default config file at path if it
// doesn't exist.
func CreateDefaultAt(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil // Already exists
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	defaultConfig := `# sqltrace configuration

# Default log file to scan when --log is not given.
# log_file = "/var/log/app/dao.log"

# Character encoding of the log file. Accepts any WHATWG encoding label.
# Common values: utf-8, shift_jis, euc-jp, iso-2022-jp, utf-16le
# encoding = "shift_jis"

# Copy the filled SQL of the last execution to the clipboard automatically.
# auto_copy = true

# Default connection for 'sqltrace exec'.
# [db]
# driver = "mysql"
# dsn = "user:pass@tcp(localhost:3306)/appdb"

# Optional UI accent color (ANSI code 0-255 or #RRGGBB).
# [ui]
# accent = "39"
`

	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return path, nil
}
