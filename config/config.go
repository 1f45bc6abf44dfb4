// Package config loads the settings of the monkey command-line tool.
//
// Configuration is read from a TOML file. Every field has a default, so an
// empty or missing file yields a usable configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable that points at a config file.
const EnvVar = "MONKEY_CONFIG"

// Modes accepted by [REPLConfig.Mode].
const (
	ModeTokens = "tokens"
	ModeAST    = "ast"
)

// Formats accepted by [OutputConfig.Format].
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the complete tool configuration.
type Config struct {
	REPL   REPLConfig   `toml:"repl"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

// REPLConfig controls the interactive loop.
type REPLConfig struct {
	Prompt string `toml:"prompt"`
	Mode   string `toml:"mode"` // "tokens" or "ast"
	Banner bool   `toml:"banner"`
}

// OutputConfig controls how tokens, trees and diagnostics are printed.
type OutputConfig struct {
	Format string `toml:"format"` // "text", "json" or "yaml"
	Color  bool   `toml:"color"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{
		REPL:   REPLConfig{Banner: true},
		Output: OutputConfig{Color: true},
	}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by MONKEY_CONFIG, falling back to the
// default locations. When no file exists anywhere, Default() is returned and
// the path is empty.
func LoadFromEnv() (*Config, string, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		for _, p := range defaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	if path == "" {
		return Default(), "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

func defaultPaths() []string {
	paths := []string{"./monkey.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "monkey", "config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration.
func (c *Config) applyDefaults() {
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = ">> "
	}
	if c.REPL.Mode == "" {
		c.REPL.Mode = ModeAST
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	c.REPL.Mode = strings.ToLower(c.REPL.Mode)
	c.Output.Format = strings.ToLower(c.Output.Format)
	c.Log.Level = strings.ToLower(c.Log.Level)
}

// Validate reports every field holding a value the tool does not understand.
func (c *Config) Validate() error {
	var errs []error
	switch c.REPL.Mode {
	case ModeTokens, ModeAST:
	default:
		errs = append(errs, fmt.Errorf("repl.mode: unknown mode %q", c.REPL.Mode))
	}
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		errs = append(errs, fmt.Errorf("output.format: unknown format %q", c.Output.Format))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}
	return errors.Join(errs...)
}
