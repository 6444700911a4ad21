package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration: a 600x600 px board with 20 px
// tiles (30x30 cells) ticking every 100ms.
func Default() Config {
	return Config{
		Board: BoardConfig{
			WidthPx:  600,
			HeightPx: 600,
			TileSize: 20,
			StartX:   5,
			StartY:   5,
		},
		Loop: LoopConfig{
			TickMS: 100,
		},
		Keys: KeysConfig{
			Up:      []string{"w", "up"},
			Down:    []string{"s", "down"},
			Left:    []string{"a", "left"},
			Right:   []string{"d", "right"},
			Restart: []string{"r", "R"},
			Quit:    []string{"q", "ctrl+c"},
		},
		Theme: ThemeConfig{
			Head:        "@",
			Body:        "o",
			Food:        "*",
			HeadColor:   "bright_green",
			BodyColor:   "green",
			FoodColor:   "bright_red",
			BorderColor: "gray",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
