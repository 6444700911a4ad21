package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) failed: %v", err)
	}
	def := Default()

	if cfg.Board != def.Board {
		t.Errorf("Board = %+v, expected %+v", cfg.Board, def.Board)
	}
	if cfg.Loop != def.Loop {
		t.Errorf("Loop = %+v, expected %+v", cfg.Loop, def.Loop)
	}
	if cfg.Theme != def.Theme {
		t.Errorf("Theme = %+v, expected %+v", cfg.Theme, def.Theme)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Embedded default should validate: %v", err)
	}
}

func TestDefaultBoardIs30x30(t *testing.T) {
	b, err := Default().SnakeBoard()
	if err != nil {
		t.Fatalf("Board() failed: %v", err)
	}
	if b.Width != 30 || b.Height != 30 || b.Start != (snake.Position{X: 5, Y: 5}) {
		t.Errorf("Board() = %+v, expected 30x30 starting at (5,5)", b)
	}
	if Default().Interval() != 100*time.Millisecond {
		t.Errorf("Interval() = %v, expected 100ms", Default().Interval())
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	writeFile(t, path, "loop:\n  tick_ms: 150\nboard:\n  tile_size: 30\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Loop.TickMS != 150 {
		t.Errorf("TickMS = %d, expected 150", cfg.Loop.TickMS)
	}
	b, err := cfg.SnakeBoard()
	if err != nil {
		t.Fatalf("Board() failed: %v", err)
	}
	if b.Width != 20 || b.Height != 20 {
		t.Errorf("Expected 20x20 cells with 30px tiles, got %dx%d", b.Width, b.Height)
	}
	if len(cfg.Keys.Up) == 0 {
		t.Error("Unset keys should keep their defaults")
	}
}

func TestLoadCustomErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "board: [not, a, map")
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".snake", "configs", "snake.yaml"), "loop:\n  tick_ms: 80\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Loop.TickMS != 80 {
		t.Errorf("TickMS = %d, expected 80 from user config", cfg.Loop.TickMS)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero tile", func(c *Config) { c.Board.TileSize = 0 }, ErrInvalidBoard},
		{"start outside", func(c *Config) { c.Board.StartX = 30 }, ErrInvalidBoard},
		{"zero tick", func(c *Config) { c.Loop.TickMS = 0 }, ErrInvalidTick},
		{"no quit key", func(c *Config) { c.Keys.Quit = nil }, ErrInvalidKeys},
		{"duplicate key", func(c *Config) { c.Keys.Restart = []string{"w"} }, ErrInvalidKeys},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestBindings(t *testing.T) {
	b := Default().Bindings()

	if b.Moves["w"] != snake.DirUp || b.Moves["left"] != snake.DirLeft {
		t.Errorf("Unexpected move bindings: %v", b.Moves)
	}
	if len(b.Restart) != 2 || b.Restart[0] != "r" {
		t.Errorf("Restart = %v, expected [r R]", b.Restart)
	}
	if _, ok := b.Moves["q"]; ok {
		t.Error("Quit key should not be a move")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvTickMS:   "60",
		EnvTileSize: "40",
		EnvWidthPx:  "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	if err := ApplyEnv(&cfg, lookup); err != nil {
		t.Fatalf("ApplyEnv() failed: %v", err)
	}
	if cfg.Loop.TickMS != 60 || cfg.Board.TileSize != 40 {
		t.Errorf("Overrides not applied: %+v %+v", cfg.Loop, cfg.Board)
	}
	if cfg.Board.WidthPx != 600 {
		t.Errorf("Empty variable should be ignored, WidthPx = %d", cfg.Board.WidthPx)
	}

	env[EnvTickMS] = "fast"
	if err := ApplyEnv(&cfg, lookup); err == nil {
		t.Error("ApplyEnv() should reject non-integer values")
	}
}

func TestLoadDotEnv(t *testing.T) {
	const key = "SNAKE_TEST_DOTENV_TICK"
	t.Cleanup(func() { os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, key+"=75\n")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() failed: %v", err)
	}
	if got := os.Getenv(key); got != "75" {
		t.Errorf("%s = %q, expected 75", key, got)
	}

	if err := LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("Missing env file should be ignored, got %v", err)
	}
}
