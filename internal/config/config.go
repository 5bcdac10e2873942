package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// LogConfig holds settings for "supgit log".
type LogConfig struct {
	ShortCount int `toml:"short_count"` // entries shown by "log --short"
	LongCount  int `toml:"long_count"`  // entries shown by "log"
}

// UpdateConfig holds settings for the automatic release check.
type UpdateConfig struct {
	Check    bool          `toml:"check"`
	Interval time.Duration `toml:"interval"` // e.g. "24h"
}

// AliasConfig holds settings for "supgit alias" and "supgit unalias".
type AliasConfig struct {
	ShellConfig string `toml:"shell_config"` // overrides the detected startup file
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string `toml:"theme"`
}

// Config holds the supgit configuration
type Config struct {
	Log    LogConfig    `toml:"log"`
	Update UpdateConfig `toml:"update"`
	Alias  AliasConfig  `toml:"alias"`
	UI     UIConfig     `toml:"ui"`
}

// Defaults for the [log] and [update] sections.
const (
	DefaultShortLogCount  = 20
	DefaultLongLogCount   = 40
	DefaultUpdateInterval = 24 * time.Hour
)

// Environment variables that override the config file.
const (
	EnvSkipUpdateCheck = "SUPGIT_SKIP_UPDATE_CHECK"
	EnvShellConfig     = "SUPGIT_SHELL_CONFIG"
)

// Default returns the default configuration
func Default() Config {
	return Config{
		Log: LogConfig{
			ShortCount: DefaultShortLogCount,
			LongCount:  DefaultLongLogCount,
		},
		Update: UpdateConfig{
			Check:    true,
			Interval: DefaultUpdateInterval,
		},
		UI: UIConfig{Theme: "default"},
	}
}

// Path returns the path to the config file
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "supgit", "config.toml"), nil
}

// Load reads config from ~/.config/supgit/config.toml and applies
// environment overrides.
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		cfg := Default()
		applyEnv(&cfg, os.LookupEnv)
		return cfg, nil
	}

	cfg, err := LoadFile(path)
	applyEnv(&cfg, os.LookupEnv)
	return cfg, err
}

// LoadFile reads the config file at path without environment overrides.
// Keys missing from the file keep their default values.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(string(data))
}

// Parse decodes and validates TOML config text on top of the defaults.
func Parse(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}

	if cfg.Alias.ShellConfig != "" {
		expanded, err := expandPath(cfg.Alias.ShellConfig)
		if err != nil {
			return Default(), fmt.Errorf("expand alias.shell_config: %w", err)
		}
		cfg.Alias.ShellConfig = expanded
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = "default"
	}
	return cfg, nil
}

// applyEnv overlays environment variables. A set SUPGIT_SKIP_UPDATE_CHECK
// disables the check whatever its value.
func applyEnv(cfg *Config, lookupEnv func(string) (string, bool)) {
	if _, ok := lookupEnv(EnvSkipUpdateCheck); ok {
		cfg.Update.Check = false
	}
	if path, _ := lookupEnv(EnvShellConfig); path != "" {
		if expanded, err := expandPath(path); err == nil {
			cfg.Alias.ShellConfig = expanded
		}
	}
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

type ctxKey struct{}

// WithConfig attaches cfg to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns the defaults if none is attached.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	cfg := Default()
	return &cfg
}

const defaultConfig = `# supgit configuration

[log]
# Number of commits shown by "supgit log --short" and "supgit log"
short_count = 20
long_count = 40

[update]
# Check for a newer release at most once per interval.
# Set SUPGIT_SKIP_UPDATE_CHECK to any value to disable it for one shell.
check = true
interval = "24h"

[alias]
# Startup file that "supgit alias" edits.
# Must be an absolute path or start with ~. Defaults to ~/.zshrc when
# $SHELL is zsh, ~/.bashrc otherwise.
# shell_config = "~/.bashrc"

[ui]
# Color theme: default, dracula, nord or none
theme = "default"
`

// DefaultFile returns the content written by Init.
func DefaultFile() string {
	return defaultConfig
}

// Init creates a default config file at ~/.config/supgit/config.toml
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}
	return path, InitFile(path, force)
}

// InitFile writes the default config to path.
func InitFile(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfig), 0o644)
}
