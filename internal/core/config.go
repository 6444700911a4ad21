package core

import "time"

// RuntimeConfig is what the terminal layer knows when a game session starts.
type RuntimeConfig struct {
	ScreenW  int           // Screen width in characters
	ScreenH  int           // Screen height in characters
	Interval time.Duration // Wall-clock period between game ticks
	Seed     int64         // RNG seed for the first run, 0 = time based
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		Interval: 100 * time.Millisecond,
	}
}
