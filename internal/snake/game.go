package snake

// Game owns the snake, the food and the game-over state.
// It is not safe for concurrent use; see loop.Driver for a serialised wrapper.
type Game struct {
	board Board
	rng   Rand

	snake     []Position // Head at index 0
	direction Direction
	food      Position
	hasFood   bool
	gameOver  bool
	outcome   Outcome
	tick      uint64
}

// New creates a game on the given board and places the first food.
// The board must be valid (see Board.Validate).
func New(board Board, rng Rand) *Game {
	g := &Game{
		board: board,
		rng:   rng,
	}
	g.Reset()
	return g
}

// Reset restores the initial configuration with freshly placed food.
func (g *Game) Reset() {
	g.snake = []Position{g.board.Start}
	g.direction = DirRight
	g.gameOver = false
	g.outcome = OutcomeNone
	g.tick = 0
	if !g.placeFood() {
		// Only possible on a one-cell board.
		g.gameOver = true
		g.outcome = OutcomeBoardFull
	}
}

// Tick advances the game by one cell. It does nothing once the game is over.
func (g *Game) Tick() {
	if g.gameOver {
		return
	}
	g.tick++

	newHead := g.snake[0].Add(g.direction)

	if g.hasFood && newHead == g.food {
		g.snake = append(g.snake, Position{})
		copy(g.snake[1:], g.snake)
		g.snake[0] = newHead
		if !g.placeFood() {
			g.gameOver = true
			g.outcome = OutcomeBoardFull
		}
	} else {
		copy(g.snake[1:], g.snake[:len(g.snake)-1])
		g.snake[0] = newHead
	}

	if !g.board.Contains(newHead) {
		g.gameOver = true
		g.outcome = OutcomeWall
		return
	}
	for _, seg := range g.snake[1:] {
		if seg == newHead {
			g.gameOver = true
			g.outcome = OutcomeSelf
			return
		}
	}
}

// SetDirection changes the heading for the next tick.
// Reversals and changes while the game is over are rejected.
func (g *Game) SetDirection(d Direction) bool {
	if g.gameOver {
		return false
	}
	if d == g.direction.Opposite() {
		return false
	}
	g.direction = d
	return true
}

// placeFood picks a uniformly random free cell. Returns false when the snake
// covers the whole board.
func (g *Game) placeFood() bool {
	occupied := make(map[Position]bool, len(g.snake))
	for _, seg := range g.snake {
		occupied[seg] = true
	}

	free := make([]Position, 0, max(g.board.Cells()-len(occupied), 0))
	for y := 0; y < g.board.Height; y++ {
		for x := 0; x < g.board.Width; x++ {
			p := Position{X: x, Y: y}
			if !occupied[p] {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		g.hasFood = false
		g.food = Position{X: -1, Y: -1}
		return false
	}

	g.food = free[g.rng.Intn(len(free))]
	g.hasFood = true
	return true
}

// Board returns the board the game was created with.
func (g *Game) Board() Board { return g.board }

// Head returns the head position.
func (g *Game) Head() Position { return g.snake[0] }

// Len returns the snake length.
func (g *Game) Len() int { return len(g.snake) }

// Food returns the food position and whether food is on the board.
func (g *Game) Food() (Position, bool) { return g.food, g.hasFood }

// Direction returns the current heading.
func (g *Game) Direction() Direction { return g.direction }

// GameOver reports whether the game has ended.
func (g *Game) GameOver() bool { return g.gameOver }

// Outcome returns why the game ended, or OutcomeNone while running.
func (g *Game) Outcome() Outcome { return g.outcome }

// Ticks returns the number of ticks since the last reset.
func (g *Game) Ticks() uint64 { return g.tick }

// Segments returns a copy of the snake, head first.
func (g *Game) Segments() []Position {
	out := make([]Position, len(g.snake))
	copy(out, g.snake)
	return out
}
