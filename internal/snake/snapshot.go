package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StateRunning  GameStateType = "running"
	StateGameOver GameStateType = "game_over"
)

// Snapshot is a read-only copy of the game for renderers and replay checks.
type Snapshot struct {
	Tick      uint64
	Width     int
	Height    int
	Segments  []Position // Head first
	Food      Position
	HasFood   bool
	Direction Direction
	GameOver  bool
	Outcome   Outcome
}

// Snapshot returns the current game snapshot. The segment slice is a copy.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Width:     g.board.Width,
		Height:    g.board.Height,
		Segments:  g.Segments(),
		Food:      g.food,
		HasFood:   g.hasFood,
		Direction: g.direction,
		GameOver:  g.gameOver,
		Outcome:   g.outcome,
	}
}

// State returns the state machine position.
func (s Snapshot) State() GameStateType {
	if s.GameOver {
		return StateGameOver
	}
	return StateRunning
}

// Length returns the number of segments.
func (s Snapshot) Length() int {
	return len(s.Segments)
}

// Score is the number of food items eaten.
func (s Snapshot) Score() int {
	if len(s.Segments) == 0 {
		return 0
	}
	return len(s.Segments) - 1
}

// Head returns the head position.
func (s Snapshot) Head() Position {
	if len(s.Segments) == 0 {
		return Position{}
	}
	return s.Segments[0]
}
