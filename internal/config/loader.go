package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in every search location.
const ConfigFile = "match3.yaml"

// Load loads the match-3 configuration.
// Search order: customPath -> ~/.match3/configs/match3.yaml ->
// ./configs/match3.yaml -> embedded default -> DefaultMatch3Config.
// Only a custom path reports errors; broken files elsewhere are skipped.
func Load(customPath string) (Match3Config, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", ConfigFile)); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	return Parse(defaultMatch3YAML), nil
}

// Parse decodes YAML on top of the built-in defaults, so a file only needs the
// keys it changes. Unparsable or invalid input yields the built-in defaults.
func Parse(data []byte) Match3Config {
	cfg, err := decode(data)
	if err != nil || cfg.Validate() != nil {
		return DefaultMatch3Config()
	}
	return cfg
}

func loadFile(path string) (Match3Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Match3Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := decode(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func decode(data []byte) (Match3Config, error) {
	cfg := DefaultMatch3Config()
	levels := cfg.Levels
	cfg.Levels = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Levels == nil {
		cfg.Levels = levels
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".match3", "configs", filename)
}
