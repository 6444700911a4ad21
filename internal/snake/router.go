package snake

// Action reports what a key press did.
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionRestart
)

func (a Action) String() string {
	switch a {
	case ActionMove:
		return "Move"
	case ActionRestart:
		return "Restart"
	default:
		return "None"
	}
}

// Bindings maps key identifiers to game intents.
type Bindings struct {
	Moves   map[string]Direction
	Restart []string
}

// DefaultBindings returns WASD plus arrow keys for movement and R for restart.
func DefaultBindings() Bindings {
	return Bindings{
		Moves: map[string]Direction{
			"w": DirUp, "up": DirUp,
			"s": DirDown, "down": DirDown,
			"a": DirLeft, "left": DirLeft,
			"d": DirRight, "right": DirRight,
		},
		Restart: []string{"r", "R"},
	}
}

// Router translates raw key identifiers into game mutations.
type Router struct {
	game     *Game
	bindings Bindings
}

// NewRouter creates a router for the game.
func NewRouter(game *Game, bindings Bindings) *Router {
	return &Router{game: game, bindings: bindings}
}

// OnKey applies a key press. While the game is over only a restart key has
// an effect; while running only movement keys do.
func (r *Router) OnKey(key string) Action {
	if r.game.GameOver() {
		if r.IsRestart(key) {
			r.game.Reset()
			return ActionRestart
		}
		return ActionNone
	}

	dir, ok := r.bindings.Moves[key]
	if !ok {
		return ActionNone
	}
	if r.game.SetDirection(dir) {
		return ActionMove
	}
	return ActionNone
}

// DirectionFor returns the direction bound to key, if any.
func (r *Router) DirectionFor(key string) (Direction, bool) {
	dir, ok := r.bindings.Moves[key]
	return dir, ok
}

// IsRestart reports whether key is bound to restart.
func (r *Router) IsRestart(key string) bool {
	for _, k := range r.bindings.Restart {
		if k == key {
			return true
		}
	}
	return false
}
