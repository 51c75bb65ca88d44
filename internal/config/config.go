package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	appName = "sprintsim"

	// EnvDatabasePath overrides database_path
	EnvDatabasePath = "SPRINTSIM_DB"
	// EnvThemeFile points at a yaml file whose theme section is merged over the config
	EnvThemeFile = "SPRINTSIM_THEME_FILE"

	DefaultLogLevel    = "info"
	DefaultReviewStyle = "dark"
)

// Config represents the application configuration
type Config struct {
	DatabasePath   string      `yaml:"database_path,omitempty"`
	LogLevel       string      `yaml:"log_level"`
	ConfirmDeletes *bool       `yaml:"confirm_deletes,omitempty"`
	ReviewStyle    string      `yaml:"review_style"`
	KeyMappings    KeyMappings `yaml:"key_mappings"`
	ColorScheme    ColorScheme `yaml:"theme"`
}

// Default returns a config with every value set to its default
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from SPRINTSIM_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("failed to read theme file", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if err := yaml.Unmarshal(themeData, &themeConfig); err != nil {
		slog.Warn("failed to parse theme file", "path", themeFile, "error", err)
		return
	}
	config.ColorScheme.MergeFrom(themeConfig.Theme)
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		config.applyEnv()
		return config, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit path. A missing file yields the defaults.
func LoadFrom(configPath string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
		}
	}

	config.applyEnv()

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the config to configPath, creating its directory if needed
func (c *Config) SaveTo(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

// ShouldConfirmDeletes reports whether deletions prompt first (default true)
func (c *Config) ShouldConfirmDeletes() bool {
	return c.ConfirmDeletes == nil || *c.ConfirmDeletes
}

// SlogLevel parses LogLevel, falling back to info
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// applyEnv applies environment overrides
func (c *Config) applyEnv() {
	if dbPath := os.Getenv(EnvDatabasePath); dbPath != "" {
		c.DatabasePath = dbPath
	}
	loadThemeFile(c)
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.ReviewStyle == "" {
		c.ReviewStyle = DefaultReviewStyle
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
