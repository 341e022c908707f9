// Package config handles the XDG configuration directory and settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application directory name.
	AppName = "focustasks"

	// ConfigFile is the optional settings filename.
	ConfigFile = "config.yaml"

	// EnvPrefix prefixes environment overrides (FOCUSTASKS_BACKEND, ...).
	EnvPrefix = "FOCUSTASKS"

	// BackendFile stores the slot as a JSON file.
	BackendFile = "file"

	// BackendBolt stores the slot in an embedded bbolt database.
	BackendBolt = "bolt"

	// DefaultSlot is the slot name used when none is configured.
	DefaultSlot = "tasksData"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration and data directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Backend selects the slot backend: "file" or "bolt".
	Backend string

	// Slot is the name of the durable slot holding the task list.
	Slot string

	// LogLevel is a logrus level name. Empty means the default.
	LogLevel string
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/focustasks or $HOME/.config/focustasks.
// Settings come from <dir>/config.yaml when present, then FOCUSTASKS_* variables.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir}
	if err := cfg.load(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) load() error {
	v := viper.New()
	v.SetDefault("backend", BackendFile)
	v.SetDefault("slot", DefaultSlot)
	v.SetDefault("log_level", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if c.HasConfigFile() {
		v.SetConfigFile(c.ConfigPath())
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read %s: %w", ConfigFile, err)
		}
	}

	c.Backend = strings.ToLower(strings.TrimSpace(v.GetString("backend")))
	c.Slot = strings.TrimSpace(v.GetString("slot"))
	c.LogLevel = strings.TrimSpace(v.GetString("log_level"))

	return c.Validate()
}

// Validate checks the loaded settings.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendBolt:
	default:
		return fmt.Errorf("unknown backend: %s", c.Backend)
	}
	if c.Slot == "" {
		return errors.New("slot name required")
	}
	return nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the path to the optional settings file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// HasConfigFile checks if the settings file exists.
func (c *Config) HasConfigFile() bool {
	_, err := os.Stat(c.ConfigPath())
	return err == nil
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
