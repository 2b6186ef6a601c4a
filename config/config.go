package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the csmap tool.
type Config struct {
	Scan    ScanConfig    `yaml:"scan"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

// ScanConfig holds structural-scan configuration.
type ScanConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
	Modifier string   `yaml:"modifier"` // access modifier declaring a scannable member
}

// WatchConfig holds watch-mode configuration.
type WatchConfig struct {
	DebounceMillis int `yaml:"debounce_millis"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Includes: []string{"**/*.cs"},
			Excludes: []string{"**/bin/**", "**/obj/**", "**/.git/**", "**/packages/**"},
			Modifier: "public",
		},
		Watch: WatchConfig{
			DebounceMillis: 500,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for csmap.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "csmap.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	// Return defaults
	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// OutlineDBPath returns the path to the outline database.
func OutlineDBPath(dir string) string {
	return filepath.Join(dir, ".csmap", "outline.db")
}

// EnsureDir ensures the .csmap directory exists.
func EnsureDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".csmap"), 0755)
}
