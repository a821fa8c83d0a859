// Package config handles loading and saving application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppName is used for the config directory name.
const AppName = "aki"

// ErrInvalidConfig wraps validation failures.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration.
type Config struct {
	Profile    ProfileConfig    `yaml:"profile"`
	UI         UIConfig         `yaml:"ui"`
	Navigation NavigationConfig `yaml:"navigation"`
	Playlists  []PlaylistConfig `yaml:"playlists"`
	Log        LogConfig        `yaml:"log"`
}

// ProfileConfig is shown in the sidebar footer.
type ProfileConfig struct {
	Name string `yaml:"name"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	VimMode bool `yaml:"vim_mode"`

	// StartDestination is the identity selected at launch, e.g. "trending"
	// or "library-Movies".
	StartDestination string `yaml:"start_destination,omitempty"`

	LibraryExpanded   bool `yaml:"library_expanded"`
	PlaylistsExpanded bool `yaml:"playlists_expanded"`

	// Notifications enables the desktop "Now Playing" notification.
	Notifications bool `yaml:"notifications"`
}

// NavigationConfig controls routing policy.
type NavigationConfig struct {
	// ClearStackOnSelect empties the drill-down stack whenever a sidebar
	// item is selected.
	ClearStackOnSelect bool `yaml:"clear_stack_on_select"`
}

// PlaylistConfig is a playlist shown in the sidebar. ID defaults to Name.
type PlaylistConfig struct {
	ID   string `yaml:"id,omitempty"`
	Name string `yaml:"name"`
}

// LogConfig controls the debug log.
type LogConfig struct {
	Level   string `yaml:"level"`
	Enabled bool   `yaml:"enabled"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Profile: ProfileConfig{Name: "John Doe"},
		UI: UIConfig{
			VimMode:           true,
			StartDestination:  "home",
			LibraryExpanded:   true,
			PlaylistsExpanded: true,
		},
		Playlists: []PlaylistConfig{
			{Name: "My Top 25 Rated"},
		},
		Log: LogConfig{
			Level:   "INFO",
			Enabled: true,
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", AppName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the default config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from path.
// If the file doesn't exist, returns a default configuration.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the default config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the configuration to path.
func SaveTo(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Owner read/write only
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks values the UI cannot recover from.
func (c *Config) Validate() error {
	seen := make(map[string]bool)
	for i, p := range c.Playlists {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: playlist %d has no name", ErrInvalidConfig, i)
		}
		key := p.Key()
		if seen[key] {
			return fmt.Errorf("%w: duplicate playlist id %q", ErrInvalidConfig, key)
		}
		seen[key] = true
	}
	return nil
}

// Key returns the playlist identity key.
func (p PlaylistConfig) Key() string {
	if p.ID != "" {
		return p.ID
	}
	return p.Name
}
