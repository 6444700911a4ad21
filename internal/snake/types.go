// Package snake implements the game state of a single-player snake game.
// It contains no terminal or timer dependencies: a scheduler calls Tick at a
// fixed cadence and input code calls SetDirection and Reset.
package snake

import (
	"errors"
	"fmt"
)

// Position is a cell coordinate on the board.
type Position struct {
	X, Y int
}

// Add returns p translated by one step in direction d.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the one-cell offset for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Letter returns the single-letter code used in recorded move logs.
func (d Direction) Letter() byte {
	switch d {
	case DirUp:
		return 'U'
	case DirDown:
		return 'D'
	case DirLeft:
		return 'L'
	default:
		return 'R'
	}
}

// DirectionFromLetter parses a code produced by Letter.
func DirectionFromLetter(b byte) (Direction, bool) {
	switch b {
	case 'U':
		return DirUp, true
	case 'D':
		return DirDown, true
	case 'L':
		return DirLeft, true
	case 'R':
		return DirRight, true
	}
	return DirRight, false
}

// Outcome records why a game ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWall
	OutcomeSelf
	OutcomeBoardFull
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWall:
		return "wall"
	case OutcomeSelf:
		return "self"
	case OutcomeBoardFull:
		return "board_full"
	default:
		return "none"
	}
}

// ParseOutcome is the inverse of Outcome.String.
func ParseOutcome(s string) Outcome {
	switch s {
	case "wall":
		return OutcomeWall
	case "self":
		return OutcomeSelf
	case "board_full":
		return OutcomeBoardFull
	default:
		return OutcomeNone
	}
}

// ErrInvalidBoard is returned for boards that cannot hold a game.
var ErrInvalidBoard = errors.New("snake: invalid board")

// DefaultStart is where a fresh snake is placed.
var DefaultStart = Position{X: 5, Y: 5}

// Board describes the fixed playfield in cells.
type Board struct {
	Width  int
	Height int
	Start  Position
}

// NewBoard derives a board from pixel dimensions and a tile size.
func NewBoard(widthPx, heightPx, tileSize int, start Position) (Board, error) {
	if tileSize <= 0 {
		return Board{}, fmt.Errorf("%w: tile size %d", ErrInvalidBoard, tileSize)
	}
	b := Board{
		Width:  widthPx / tileSize,
		Height: heightPx / tileSize,
		Start:  start,
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Validate checks the board has at least one cell and contains the start.
func (b Board) Validate() error {
	if b.Width < 1 || b.Height < 1 {
		return fmt.Errorf("%w: %dx%d cells", ErrInvalidBoard, b.Width, b.Height)
	}
	if !b.Contains(b.Start) {
		return fmt.Errorf("%w: start (%d,%d) outside %dx%d", ErrInvalidBoard,
			b.Start.X, b.Start.Y, b.Width, b.Height)
	}
	return nil
}

// Contains reports whether p lies on the board.
func (b Board) Contains(p Position) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Cells returns the number of cells on the board.
func (b Board) Cells() int {
	return b.Width * b.Height
}

// Rand is the random source used for food placement.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}
