package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "destroyer.yaml"

// Load loads the destroyer configuration.
// Search order: customPath -> ~/.destroyer/configs/destroyer.yaml -> ./configs/destroyer.yaml -> embedded default.
// Files are merged over the built-in defaults, so partial files are allowed.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			return parse(data, userCfgPath)
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", fileName)
	if data, err := os.ReadFile(localPath); err == nil {
		return parse(data, localPath)
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML, "embedded default")
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the defaults and validates the result.
func parse(data []byte, source string) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: invalid %s: %w", source, err)
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".destroyer", "configs", filename)
}
