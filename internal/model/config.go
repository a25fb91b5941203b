package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DisplayConfig holds UI/rendering preferences applied to new projects.
type DisplayConfig struct {
	Theme              string `mapstructure:"theme" yaml:"theme"`
	ColumnCount        int    `mapstructure:"column_count" yaml:"column_count"`
	DefaultFocalLength string `mapstructure:"default_focal_length" yaml:"default_focal_length"`
	UseDropdowns       bool   `mapstructure:"use_dropdowns" yaml:"use_dropdowns"`
}

// AutosaveConfig controls the recovery snapshot schedule.
type AutosaveConfig struct {
	Enabled     bool `mapstructure:"enabled" yaml:"enabled"`
	IntervalSec int  `mapstructure:"interval_sec" yaml:"interval_sec"`
}

// LogConfig controls the session log file.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Display     DisplayConfig  `mapstructure:"display" yaml:"display"`
	Autosave    AutosaveConfig `mapstructure:"autosave" yaml:"autosave"`
	Log         LogConfig      `mapstructure:"log" yaml:"log"`
	RecentLimit int            `mapstructure:"recent_limit" yaml:"recent_limit"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/shotlist/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "shotlist", "config.yaml")
}

// DefaultDataDir returns the directory holding the application database
// and session logs, located at ~/.local/share/shotlist.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "shotlist")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Display: DisplayConfig{
			Theme:              DefaultTheme,
			ColumnCount:        DefaultColumnCount,
			DefaultFocalLength: DefaultFocalLength,
			UseDropdowns:       true,
		},
		Autosave: AutosaveConfig{
			Enabled:     true,
			IntervalSec: 60,
		},
		Log:         LogConfig{Level: "info"},
		RecentLimit: 5,
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("display.theme", DefaultTheme)
	v.SetDefault("display.column_count", DefaultColumnCount)
	v.SetDefault("display.default_focal_length", DefaultFocalLength)
	v.SetDefault("display.use_dropdowns", true)
	v.SetDefault("autosave.enabled", true)
	v.SetDefault("autosave.interval_sec", 60)
	v.SetDefault("log.level", "info")
	v.SetDefault("recent_limit", 5)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Display.ColumnCount < 2 || cfg.Display.ColumnCount > 4 {
		cfg.Display.ColumnCount = DefaultColumnCount
	}
	if cfg.Autosave.IntervalSec <= 0 {
		cfg.Autosave.IntervalSec = 60
	}
	if cfg.RecentLimit <= 0 {
		cfg.RecentLimit = 5
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("display", cfg.Display)
	v.Set("autosave", cfg.Autosave)
	v.Set("log", cfg.Log)
	v.Set("recent_limit", cfg.RecentLimit)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
