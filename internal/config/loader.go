package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads Snake configuration.
// Search order: customPath -> ~/.arcade/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := load("snake", customPath, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid snake config: %w", err)
	}
	return cfg, nil
}

// LoadFighter loads Sci-Fi Fighter configuration.
// Search order: customPath -> ~/.arcade/configs/fighter.yaml -> ./configs/fighter.yaml -> embedded default
func LoadFighter(customPath string) (FighterConfig, error) {
	cfg := DefaultFighterConfig()
	if err := load("fighter", customPath, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid fighter config: %w", err)
	}
	return cfg, nil
}

// load fills out from the first config source that parses. out should already
// hold hardcoded defaults so that partial files only override what they set.
func load(gameID, customPath string, out any) error {
	// A custom path is explicit, so any failure is reported.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	filename := gameID + ".yaml"
	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := unmarshalInto(data, out); err == nil {
			return nil
		}
	}

	// Embedded default; the hardcoded values already in out are the fallback.
	//nolint:errcheck // embedded YAML is covered by tests
	unmarshalInto(GetDefaultYAML(gameID), out)
	return nil
}

// unmarshalInto decodes data over out without clobbering it on failure.
func unmarshalInto(data []byte, out any) error {
	switch v := out.(type) {
	case *SnakeConfig:
		tmp := *v
		if err := yaml.Unmarshal(data, &tmp); err != nil {
			return err
		}
		*v = tmp
	case *FighterConfig:
		tmp := *v
		tmp.Roster = append([]CombatantConfig(nil), v.Roster...)
		if err := yaml.Unmarshal(data, &tmp); err != nil {
			return err
		}
		*v = tmp
	default:
		return yaml.Unmarshal(data, out)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
