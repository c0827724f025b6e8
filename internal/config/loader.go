package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDisplay loads the display configuration.
// Search order: customPath -> ~/.heartquest/display.yaml -> ./configs/display.yaml -> embedded default
func LoadDisplay(customPath string) (DisplayConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DisplayConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseDisplay(data)
		if err != nil {
			return DisplayConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("display.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseDisplay(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/display.yaml"); err == nil {
		if cfg, err := ParseDisplay(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseDisplay(defaultDisplayYAML)
	if err != nil {
		return DefaultDisplayConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseDisplay decodes and validates a display config document.
// Keys missing from the document keep their default values; unknown keys
// are an error.
func ParseDisplay(data []byte) (DisplayConfig, error) {
	cfg := DefaultDisplayConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return DisplayConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return DisplayConfig{}, err
	}
	if _, err := cfg.Palette.Parse(); err != nil {
		return DisplayConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".heartquest", filename)
}
