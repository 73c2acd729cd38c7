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
	if err := load("snake", customPath, defaultSnakeYAML, &cfg); err != nil {
		// A failed decode can leave cfg half-filled
		return DefaultSnakeConfig(), err
	}
	if err := cfg.Validate(); err != nil {
		return DefaultSnakeConfig(), err
	}
	return cfg, nil
}

// LoadTetris loads Tetris configuration.
// Search order: customPath -> ~/.arcade/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	if err := load("tetris", customPath, defaultTetrisYAML, &cfg); err != nil {
		// A failed decode can leave cfg half-filled
		return DefaultTetrisConfig(), err
	}
	if err := cfg.Validate(); err != nil {
		return DefaultTetrisConfig(), err
	}
	return cfg, nil
}

// load decodes the first available source into out. out should hold the
// hardcoded defaults, so keys missing from a file keep their default value.
func load(gameID, customPath string, embedded []byte, out any) error {
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	// Use embedded default YAML; out already holds hardcoded defaults if this fails
	//nolint:errcheck // Embedded defaults are covered by tests
	yaml.Unmarshal(embedded, out)
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
