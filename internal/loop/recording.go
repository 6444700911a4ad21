package loop

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// ErrBadMoves is returned when a move log cannot be parsed.
var ErrBadMoves = errors.New("loop: malformed move log")

// Move is an accepted direction change and the tick count at which it was made.
// It takes effect on tick Tick+1.
type Move struct {
	Tick uint64
	Dir  snake.Direction
}

// Recording is everything needed to re-simulate a run.
type Recording struct {
	Seed    int64
	Board   snake.Board
	Moves   []Move
	Ticks   uint64
	Length  int
	Outcome snake.Outcome
}

// EncodeMoves serialises moves as "12U,30L,...".
func EncodeMoves(moves []Move) string {
	var b strings.Builder
	for i, m := range moves {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(m.Tick, 10))
		b.WriteByte(m.Dir.Letter())
	}
	return b.String()
}

// ParseMoves is the inverse of EncodeMoves.
func ParseMoves(s string) ([]Move, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	moves := make([]Move, 0, len(parts))
	for _, p := range parts {
		if len(p) < 2 {
			return nil, fmt.Errorf("%w: %q", ErrBadMoves, p)
		}
		dir, ok := snake.DirectionFromLetter(p[len(p)-1])
		if !ok {
			return nil, fmt.Errorf("%w: bad direction in %q", ErrBadMoves, p)
		}
		tick, err := strconv.ParseUint(p[:len(p)-1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad tick in %q", ErrBadMoves, p)
		}
		moves = append(moves, Move{Tick: tick, Dir: dir})
	}
	return moves, nil
}

// Replayer steps a recording one tick at a time.
type Replayer struct {
	rec  Recording
	game *snake.Game
	next int
}

// NewReplayer starts a fresh game from the recording's seed and board.
func NewReplayer(rec Recording) *Replayer {
	return &Replayer{
		rec:  rec,
		game: snake.New(rec.Board, rand.New(rand.NewSource(rec.Seed))),
	}
}

// Done reports whether the replay has reached the recorded tick count or the game has ended.
func (r *Replayer) Done() bool {
	return r.game.GameOver() || r.game.Ticks() >= r.rec.Ticks
}

// Step applies the moves recorded for the current tick, then ticks once.
// After Done it only returns the final snapshot.
func (r *Replayer) Step() snake.Snapshot {
	if r.Done() {
		return r.game.Snapshot()
	}
	t := r.game.Ticks()
	for r.next < len(r.rec.Moves) && r.rec.Moves[r.next].Tick <= t {
		if r.rec.Moves[r.next].Tick == t {
			r.game.SetDirection(r.rec.Moves[r.next].Dir)
		}
		r.next++
	}
	r.game.Tick()
	return r.game.Snapshot()
}

// Snapshot returns the replay state without advancing it.
func (r *Replayer) Snapshot() snake.Snapshot {
	return r.game.Snapshot()
}

// Recording returns the recording being replayed.
func (r *Replayer) Recording() Recording {
	return r.rec
}

// Replay re-simulates a recording without a timer and returns the final snapshot.
// It stops after rec.Ticks ticks or when the game ends, whichever is first.
func Replay(rec Recording) snake.Snapshot {
	r := NewReplayer(rec)
	for !r.Done() {
		r.Step()
	}
	return r.Snapshot()
}

// Matches reports whether a replayed snapshot agrees with the recording.
func (r Recording) Matches(snap snake.Snapshot) bool {
	return snap.Tick == r.Ticks && snap.Length() == r.Length && snap.Outcome == r.Outcome
}
