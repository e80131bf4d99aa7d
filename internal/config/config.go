package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvPath overrides the config file location.
const EnvPath = "GAMEBRIEF_CONFIG"

const appDir = "gamebrief"

// Theme preference values. Empty means follow the terminal background.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

type Config struct {
	Theme       string        `yaml:"theme,omitempty"` // "dark", "light" or "" for system
	OutputDir   string        `yaml:"output_dir,omitempty"`
	TargetModel string        `yaml:"target_model,omitempty"`
	StudioURL   string        `yaml:"studio_url,omitempty"`
	Logging     LoggingConfig `yaml:"logging,omitempty"`
}

type LoggingConfig struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		OutputDir:   ".",
		TargetModel: "Gemini 3 Pro (Expert Reasoning)",
		StudioURL:   "https://aistudio.google.com/",
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(ConfigDir(), "gamebrief.log"),
		},
	}
}

// ConfigDir is the per-user directory holding the config and log files.
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, appDir)
}

func ConfigPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return filepath.Join(ConfigDir(), "config.yaml")
}

// LoadFromPath reads path over the defaults. A missing file is not an error.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	if cfg.Theme != "" && cfg.Theme != ThemeDark && cfg.Theme != ThemeLight {
		return nil, fmt.Errorf("config %s: unknown theme %q", path, cfg.Theme)
	}
	return cfg, nil
}

// SaveTheme records the theme preference in the file at path. Only keys
// already in the file are written back, so defaults never leak into it.
func SaveTheme(path, theme string) error {
	var onDisk Config
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &onDisk); err != nil {
			return fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	onDisk.Theme = theme
	return onDisk.SaveTo(path)
}

func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ResolveTheme picks dark or light: the persisted preference wins, otherwise
// the terminal background decides.
func ResolveTheme(pref string, hasDarkBackground bool) string {
	switch pref {
	case ThemeDark, ThemeLight:
		return pref
	}
	if hasDarkBackground {
		return ThemeDark
	}
	return ThemeLight
}
