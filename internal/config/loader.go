package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the path checked for YAML configuration.
const DefaultConfigFile = "verse-order.yaml"

// Load returns a Config using the hierarchy: defaults < YAML < ENV.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigFile)
}

// LoadFrom is Load with an explicit YAML path. A missing file is not an
// error.
func LoadFrom(yamlPath string) (*Config, error) {
	cfg := Defaults()

	if err := loadYAML(&cfg, yamlPath); err != nil {
		return nil, fmt.Errorf("config yaml: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config env: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validate: %w", err)
	}

	return &cfg, nil
}

func loadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func validate(cfg *Config) error {
	switch strings.ToLower(cfg.UI.Mode) {
	case "game", "study":
	default:
		return fmt.Errorf("ui.mode must be game or study, got %q", cfg.UI.Mode)
	}
	if cfg.Chapters.Default == "" {
		return errors.New("chapters.default must not be empty")
	}
	if cfg.Chapters.FetchTimeout <= 0 {
		return errors.New("chapters.fetch_timeout must be positive")
	}
	if cfg.Chapters.CacheMaxBytes <= 0 {
		return errors.New("chapters.cache_max_bytes must be positive")
	}
	if cfg.Chapters.CacheTTL <= 0 {
		return errors.New("chapters.cache_ttl must be positive")
	}
	if cfg.Sound.Enabled && cfg.Sound.SampleRate <= 0 {
		return errors.New("sound.sample_rate must be positive")
	}
	return nil
}
