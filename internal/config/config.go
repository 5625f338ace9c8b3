package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// DataDir overrides where the board database lives (default ~/.triage)
	DataDir string `yaml:"data_dir"`

	// Namespace prefixes every storage key; changing it orphans existing data
	Namespace string `yaml:"namespace"`

	Theme Theme `yaml:"theme"`
}

// Theme holds the CLI color palette
type Theme struct {
	Accent string `yaml:"accent"`
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`
	Error  string `yaml:"error"`
}

// DefaultTheme returns the stock palette.
func DefaultTheme() Theme {
	return Theme{
		Accent: "#7D56F4",
		Title:  "#FAFAFA",
		Subtle: "#626262",
		Normal: "#DDDDDD",
		Error:  "#FF5F87",
	}
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		DataDir:   filepath.Join(home, ".triage"),
		Namespace: "kanban",
		Theme:     DefaultTheme(),
	}
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return Default(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()
	return &config, nil
}

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// applyDefaults fills in any missing values with defaults.
func (c *Config) applyDefaults() {
	defaults := Default()
	if c.DataDir == "" {
		c.DataDir = defaults.DataDir
	}
	if c.Namespace == "" {
		c.Namespace = defaults.Namespace
	}
	if c.Theme.Accent == "" {
		c.Theme.Accent = defaults.Theme.Accent
	}
	if c.Theme.Title == "" {
		c.Theme.Title = defaults.Theme.Title
	}
	if c.Theme.Subtle == "" {
		c.Theme.Subtle = defaults.Theme.Subtle
	}
	if c.Theme.Normal == "" {
		c.Theme.Normal = defaults.Theme.Normal
	}
	if c.Theme.Error == "" {
		c.Theme.Error = defaults.Theme.Error
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "triage", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "triage", "config.yaml"), nil
}
