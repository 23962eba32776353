package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a configuration came from.
const (
	SourceEmbedded  = "embedded"
	SourceHardcoded = "hardcoded"
)

// LoadShooter loads the shooter configuration and reports where it came from.
// Search order: customPath -> ~/.shooter/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default.
// Only an explicit customPath can fail; broken implicit files are skipped.
func LoadShooter(customPath string) (ShooterConfig, string, error) {
	if customPath != "" {
		cfg, err := parseFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	candidates := []string{"configs/shooter.yaml"}
	if userCfgPath := userConfigPath("shooter.yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		if cfg, err := parseFile(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := Parse(defaultShooterYAML)
	if err != nil {
		return DefaultShooterConfig(), SourceHardcoded, nil
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML on top of the hardcoded defaults and validates the result,
// so a partial file only overrides the keys it names.
func Parse(data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg ShooterConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode yaml: %w", err)
	}
	return data, nil
}

func parseFile(path string) (ShooterConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ShooterConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shooter", "configs", filename)
}
