// Package loop drives a snake game at a fixed cadence.
// It owns the game, the input router and the random source, and serialises
// timer firings with key presses so either may arrive from any goroutine.
package loop

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// DefaultInterval is the tick period.
const DefaultInterval = 100 * time.Millisecond

// Options configures a Driver.
type Options struct {
	// Interval is the wall-clock period between ticks (default 100ms).
	Interval time.Duration

	// Seed seeds the first run. 0 means draw one from Seeds.
	Seed int64

	// Seeds produces the seed for every restarted run.
	// Defaults to the current time in nanoseconds.
	Seeds func() int64

	// OnGameOver is called once per run, after the tick that ended it.
	// It runs outside the driver lock.
	OnGameOver func(Recording)
}

// Driver fires game ticks on a fixed period and routes key presses.
type Driver struct {
	mu       sync.Mutex
	rng      *rand.Rand
	game     *snake.Game
	router   *snake.Router
	interval time.Duration
	seeds    func() int64
	onOver   func(Recording)

	seed     int64
	moves    []Move
	reported bool
}

// New creates a driver with a fresh game on the board.
func New(board snake.Board, bindings snake.Bindings, opts Options) *Driver {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Seeds == nil {
		opts.Seeds = func() int64 { return time.Now().UnixNano() }
	}
	seed := opts.Seed
	if seed == 0 {
		seed = opts.Seeds()
	}

	rng := rand.New(rand.NewSource(seed))
	game := snake.New(board, rng)

	return &Driver{
		rng:      rng,
		game:     game,
		router:   snake.NewRouter(game, bindings),
		interval: opts.Interval,
		seeds:    opts.Seeds,
		onOver:   opts.OnGameOver,
		seed:     seed,
	}
}

// Interval returns the tick period.
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Fire runs one loop iteration: tick if the game is running, then return the
// snapshot to draw. While the game is over the final snapshot is returned unchanged.
func (d *Driver) Fire() snake.Snapshot {
	d.mu.Lock()
	if !d.game.GameOver() {
		d.game.Tick()
	}
	snap := d.game.Snapshot()

	var rec *Recording
	if snap.GameOver && !d.reported {
		d.reported = true
		r := d.recordingLocked(snap)
		rec = &r
	}
	d.mu.Unlock()

	if rec != nil && d.onOver != nil {
		d.onOver(*rec)
	}
	return snap
}

// Key applies a key press through the router.
// A restart reseeds the random source so every run can be replayed from its seed.
func (d *Driver) Key(key string) snake.Action {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.game.GameOver() && d.router.IsRestart(key) {
		d.seed = d.seeds()
		d.rng.Seed(d.seed)
		d.moves = d.moves[:0]
		d.reported = false
		return d.router.OnKey(key)
	}

	tick := d.game.Ticks()
	action := d.router.OnKey(key)
	if action == snake.ActionMove {
		d.moves = append(d.moves, Move{Tick: tick, Dir: d.game.Direction()})
	}
	return action
}

// Snapshot returns the current game state without advancing it.
func (d *Driver) Snapshot() snake.Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.game.Snapshot()
}

// Recording returns the seed and inputs of the current run so far.
func (d *Driver) Recording() Recording {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.recordingLocked(d.game.Snapshot())
}

func (d *Driver) recordingLocked(snap snake.Snapshot) Recording {
	moves := make([]Move, len(d.moves))
	copy(moves, d.moves)
	return Recording{
		Seed:    d.seed,
		Board:   d.game.Board(),
		Moves:   moves,
		Ticks:   snap.Tick,
		Length:  snap.Length(),
		Outcome: snap.Outcome,
	}
}

// Run fires the loop on a fixed wall-clock period and hands every snapshot to
// redraw. It returns when ctx is cancelled.
func (d *Driver) Run(ctx context.Context, redraw func(snake.Snapshot)) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			snap := d.Fire()
			if redraw != nil {
				redraw(snap)
			}
		}
	}
}
