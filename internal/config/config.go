// Package config loads gotodir settings.
//
// Settings are layered, later layers winning:
//   - built-in defaults (Default)
//   - <dir>/env, a dotenv file that never overrides variables already set
//   - <dir>/config.yaml
//   - GOTO_* environment variables
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"gotodir/internal/model"
)

const (
	// DirEnv overrides the configuration directory.
	DirEnv = "GOTO_CONFIG_DIR"

	ConfigFile    = "config.yaml"
	EnvFile       = "env"
	ShortcutsFile = "shortcuts"
	HistoryFile   = "history"
)

// Config holds all gotodir settings.
type Config struct {
	// Dir is the configuration directory holding the stores. Not read from yaml.
	Dir string `yaml:"-"`

	// Home is where an empty request (or a home keyword) resolves.
	Home string `yaml:"home" env:"GOTO_HOME"`
	// Opener is the default tool for "open"; "shell" means just change directory.
	Opener string `yaml:"opener" env:"GOTO_OPENER"`

	HomeKeywords []string `yaml:"home_keywords" env:"GOTO_HOME_KEYWORDS" envSeparator:","`
	BackKeywords []string `yaml:"back_keywords" env:"GOTO_BACK_KEYWORDS" envSeparator:","`

	PriorityCeiling int `yaml:"priority_ceiling" env:"GOTO_PRIORITY_CEILING"`
	DecayStep       int `yaml:"decay_step" env:"GOTO_DECAY_STEP"`
	HistoryMax      int `yaml:"history_max" env:"GOTO_HISTORY_MAX"` // 0 disables the cap

	TrackHistory    bool `yaml:"track_history" env:"GOTO_TRACK_HISTORY"`
	SkipMissing     bool `yaml:"skip_missing" env:"GOTO_SKIP_MISSING"`
	ClearScreen     bool `yaml:"clear_screen" env:"GOTO_CLEAR_SCREEN"`
	TranslateMounts bool `yaml:"translate_mounts" env:"GOTO_TRANSLATE_MOUNTS"`

	LogLevel string `yaml:"log_level" env:"GOTO_LOG_LEVEL"`
	// UpdateRepo is "owner/repo" on GitHub, used by "version --check".
	UpdateRepo string `yaml:"update_repo" env:"GOTO_UPDATE_REPO"`
}

// ShellOpener is the opener value that means "no external tool".
const ShellOpener = "shell"

// Default returns the built-in settings.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Home:            home,
		Opener:          ShellOpener,
		HomeKeywords:    []string{"~", "home", "pwsh"},
		BackKeywords:    []string{"-", "back"},
		PriorityCeiling: 1000,
		DecayStep:       10,
		HistoryMax:      200,
		TrackHistory:    true,
		SkipMissing:     true,
		LogLevel:        "warn",
	}
}

// DefaultDir returns $GOTO_CONFIG_DIR, or <user config dir>/gotodir.
func DefaultDir() (string, error) {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config directory: %w", err)
	}
	return filepath.Join(base, "gotodir"), nil
}

// Load builds the configuration for dir. Missing files are not errors.
func Load(dir string) (Config, error) {
	cfg := Default()
	cfg.Dir = dir

	if err := godotenv.Load(filepath.Join(dir, EnvFile)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: load %s: %v", model.ErrInvalidArgument, EnvFile, err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ConfigFile))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: parse %s: %v", model.ErrInvalidArgument, ConfigFile, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return Config{}, fmt.Errorf("%w: read %s: %w", model.ErrIO, ConfigFile, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parse env: %v", model.ErrInvalidArgument, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.PriorityCeiling <= 0 {
		return fmt.Errorf("%w: priority_ceiling must be positive, got %d", model.ErrInvalidArgument, c.PriorityCeiling)
	}
	if c.DecayStep < 0 {
		return fmt.Errorf("%w: decay_step must not be negative, got %d", model.ErrInvalidArgument, c.DecayStep)
	}
	if c.HistoryMax < 0 {
		return fmt.Errorf("%w: history_max must not be negative, got %d", model.ErrInvalidArgument, c.HistoryMax)
	}
	if strings.TrimSpace(c.Home) == "" {
		return fmt.Errorf("%w: home is not set and no user home directory was found", model.ErrInvalidArgument)
	}
	if err := model.ValidatePath(c.Home); err != nil {
		return err
	}
	return model.ValidateOpener(c.Opener)
}

// YAML renders the settings as they would appear in config.yaml.
func (c Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// Save writes the yaml-backed settings to <Dir>/config.yaml.
func (c Config) Save() error {
	data, err := c.YAML()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", model.ErrIO, err)
	}
	if err := os.WriteFile(filepath.Join(c.Dir, ConfigFile), data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", model.ErrIO, err)
	}
	return nil
}

// ShortcutsPath is the shortcut store file.
func (c Config) ShortcutsPath() string { return filepath.Join(c.Dir, ShortcutsFile) }

// HistoryPath is the history store file.
func (c Config) HistoryPath() string { return filepath.Join(c.Dir, HistoryFile) }

// IsShellOpener reports whether opener means "just change directory".
func IsShellOpener(opener, shellName string) bool {
	return opener == "" || opener == ShellOpener || (shellName != "" && opener == shellName)
}
