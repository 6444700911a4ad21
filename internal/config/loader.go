package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the loaded file.
const (
	EnvTickMS   = "SNAKE_TICK_MS"
	EnvTileSize = "SNAKE_TILE_SIZE"
	EnvWidthPx  = "SNAKE_WIDTH_PX"
	EnvHeightPx = "SNAKE_HEIGHT_PX"
	EnvDBPath   = "SNAKE_DB"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Files are applied on top of the defaults, so they may set only some fields.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultSnakeYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}

// LoadDotEnv loads KEY=VALUE pairs from an env file into the process environment.
// Existing variables win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: cannot load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides board and loop settings from environment variables.
// lookup is usually os.LookupEnv.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	overrides := []struct {
		name string
		dst  *int
	}{
		{EnvTickMS, &cfg.Loop.TickMS},
		{EnvTileSize, &cfg.Board.TileSize},
		{EnvWidthPx, &cfg.Board.WidthPx},
		{EnvHeightPx, &cfg.Board.HeightPx},
	}
	for _, o := range overrides {
		raw, ok := lookup(o.name)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("config: %s=%q is not an integer: %w", o.name, raw, err)
		}
		*o.dst = v
	}
	return nil
}
