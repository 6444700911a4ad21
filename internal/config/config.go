// Package config provides YAML-based configuration loading for snake.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Sentinel errors returned by Validate.
var (
	ErrInvalidBoard = errors.New("config: invalid board")
	ErrInvalidTick  = errors.New("config: invalid tick interval")
	ErrInvalidKeys  = errors.New("config: invalid key bindings")
)

// Config contains all configuration for the game.
type Config struct {
	Board BoardConfig `yaml:"board"`
	Loop  LoopConfig  `yaml:"loop"`
	Keys  KeysConfig  `yaml:"keys"`
	Theme ThemeConfig `yaml:"theme"`
}

// BoardConfig defines the playfield. Cells are pixel size divided by tile size.
type BoardConfig struct {
	WidthPx  int `yaml:"width_px"`
	HeightPx int `yaml:"height_px"`
	TileSize int `yaml:"tile_size"`
	StartX   int `yaml:"start_x"`
	StartY   int `yaml:"start_y"`
}

// LoopConfig defines the fixed tick rate.
type LoopConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// KeysConfig lists key identifiers (as Bubble Tea names them) per intent.
type KeysConfig struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Restart []string `yaml:"restart"`
	Quit    []string `yaml:"quit"`
}

// ThemeConfig defines glyphs and color names for the terminal renderer.
type ThemeConfig struct {
	Head        string `yaml:"head"`
	Body        string `yaml:"body"`
	Food        string `yaml:"food"`
	HeadColor   string `yaml:"head_color"`
	BodyColor   string `yaml:"body_color"`
	FoodColor   string `yaml:"food_color"`
	BorderColor string `yaml:"border_color"`
}

// SnakeBoard derives the cell board from the pixel dimensions.
func (c Config) SnakeBoard() (snake.Board, error) {
	b, err := snake.NewBoard(c.Board.WidthPx, c.Board.HeightPx, c.Board.TileSize,
		snake.Position{X: c.Board.StartX, Y: c.Board.StartY})
	if err != nil {
		return snake.Board{}, fmt.Errorf("%w: %v", ErrInvalidBoard, err)
	}
	return b, nil
}

// Interval returns the tick period.
func (c Config) Interval() time.Duration {
	return time.Duration(c.Loop.TickMS) * time.Millisecond
}

// Bindings converts the key lists into router bindings.
func (c Config) Bindings() snake.Bindings {
	moves := make(map[string]snake.Direction)
	add := func(keys []string, d snake.Direction) {
		for _, k := range keys {
			moves[k] = d
		}
	}
	add(c.Keys.Up, snake.DirUp)
	add(c.Keys.Down, snake.DirDown)
	add(c.Keys.Left, snake.DirLeft)
	add(c.Keys.Right, snake.DirRight)

	restart := make([]string, len(c.Keys.Restart))
	copy(restart, c.Keys.Restart)
	return snake.Bindings{Moves: moves, Restart: restart}
}

// Validate checks the configuration can run a game.
func (c Config) Validate() error {
	if _, err := c.SnakeBoard(); err != nil {
		return err
	}
	if c.Loop.TickMS <= 0 {
		return fmt.Errorf("%w: tick_ms %d", ErrInvalidTick, c.Loop.TickMS)
	}

	seen := make(map[string]string)
	groups := []struct {
		name string
		keys []string
	}{
		{"up", c.Keys.Up},
		{"down", c.Keys.Down},
		{"left", c.Keys.Left},
		{"right", c.Keys.Right},
		{"restart", c.Keys.Restart},
		{"quit", c.Keys.Quit},
	}
	for _, g := range groups {
		if len(g.keys) == 0 {
			return fmt.Errorf("%w: no keys for %s", ErrInvalidKeys, g.name)
		}
		for _, k := range g.keys {
			if prev, ok := seen[k]; ok {
				return fmt.Errorf("%w: %q bound to both %s and %s", ErrInvalidKeys, k, prev, g.name)
			}
			seen[k] = g.name
		}
	}
	return nil
}
