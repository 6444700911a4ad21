// Package storage provides a SQLite journal of finished runs so they can be
// listed and replayed. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-snake/internal/loop"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Lookup errors.
var (
	ErrRunNotFound  = errors.New("storage: run not found")
	ErrAmbiguousRun = errors.New("storage: run ID prefix matches several runs")
)

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// RunEntry is one finished run.
type RunEntry struct {
	ID        string
	Player    string
	Seed      int64
	BoardW    int
	BoardH    int
	StartX    int
	StartY    int
	Ticks     uint64
	Length    int
	Outcome   string
	Moves     string
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// SQLite has a single writer; SSH sessions share this handle.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL,
			board_w INTEGER NOT NULL,
			board_h INTEGER NOT NULL,
			start_x INTEGER NOT NULL,
			start_y INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			length INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			moves TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun inserts a run. An empty ID is replaced with a new UUID.
// Returns the ID of the stored run.
func (s *Store) SaveRun(e RunEntry) (string, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, player, seed, board_w, board_h, start_x, start_y, ticks, length, outcome, moves)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Player, e.Seed, e.BoardW, e.BoardH, e.StartX, e.StartY,
		int64(e.Ticks), e.Length, e.Outcome, e.Moves,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return e.ID, nil
}

// SaveRecording stores a finished run produced by loop.Driver.
func (s *Store) SaveRecording(player string, rec loop.Recording) (string, error) {
	return s.SaveRun(EntryFromRecording(player, rec))
}

// EntryFromRecording converts a driver recording into a journal row.
func EntryFromRecording(player string, rec loop.Recording) RunEntry {
	return RunEntry{
		Player:  player,
		Seed:    rec.Seed,
		BoardW:  rec.Board.Width,
		BoardH:  rec.Board.Height,
		StartX:  rec.Board.Start.X,
		StartY:  rec.Board.Start.Y,
		Ticks:   rec.Ticks,
		Length:  rec.Length,
		Outcome: rec.Outcome.String(),
		Moves:   loop.EncodeMoves(rec.Moves),
	}
}

// Recording converts the row back into a replayable recording.
func (e RunEntry) Recording() (loop.Recording, error) {
	moves, err := loop.ParseMoves(e.Moves)
	if err != nil {
		return loop.Recording{}, fmt.Errorf("storage: run %s: %w", e.ID, err)
	}
	board := snake.Board{
		Width:  e.BoardW,
		Height: e.BoardH,
		Start:  snake.Position{X: e.StartX, Y: e.StartY},
	}
	if err := board.Validate(); err != nil {
		return loop.Recording{}, fmt.Errorf("storage: run %s: %w", e.ID, err)
	}
	return loop.Recording{
		Seed:    e.Seed,
		Board:   board,
		Moves:   moves,
		Ticks:   e.Ticks,
		Length:  e.Length,
		Outcome: snake.ParseOutcome(e.Outcome),
	}, nil
}

const runColumns = `id, player, seed, board_w, board_h, start_x, start_y, ticks, length, outcome, moves, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (RunEntry, error) {
	var e RunEntry
	var ticks int64
	var createdAt any
	if err := row.Scan(&e.ID, &e.Player, &e.Seed, &e.BoardW, &e.BoardH, &e.StartX, &e.StartY,
		&ticks, &e.Length, &e.Outcome, &e.Moves, &createdAt); err != nil {
		return RunEntry{}, err
	}
	e.Ticks = uint64(ticks)
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// RunByID retrieves a run by its ID.
func (s *Store) RunByID(id string) (RunEntry, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	e, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RunEntry{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return RunEntry{}, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return e, nil
}

// FindRun looks a run up by full ID or by a unique ID prefix, such as the
// shortened IDs shown in listings.
func (s *Store) FindRun(idOrPrefix string) (RunEntry, error) {
	if idOrPrefix == "" {
		return RunEntry{}, fmt.Errorf("%w: empty ID", ErrRunNotFound)
	}
	if e, err := s.RunByID(idOrPrefix); err == nil || !errors.Is(err, ErrRunNotFound) {
		return e, err
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+` FROM runs WHERE substr(id, 1, ?) = ? LIMIT 2`,
		len(idOrPrefix), idOrPrefix,
	)
	if err != nil {
		return RunEntry{}, fmt.Errorf("storage: cannot query run: %w", err)
	}
	defer rows.Close()

	var found []RunEntry
	for rows.Next() {
		e, err := scanRun(rows)
		if err != nil {
			return RunEntry{}, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		found = append(found, e)
	}
	if err := rows.Err(); err != nil {
		return RunEntry{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	switch len(found) {
	case 0:
		return RunEntry{}, fmt.Errorf("%w: %s", ErrRunNotFound, idOrPrefix)
	case 1:
		return found[0], nil
	default:
		return RunEntry{}, fmt.Errorf("%w: %s", ErrAmbiguousRun, idOrPrefix)
	}
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		e, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// CountRuns returns the number of stored runs.
func (s *Store) CountRuns() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// DeleteRun removes one run.
func (s *Store) DeleteRun(id string) error {
	res, err := s.db.Exec(`DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return nil
}

// ClearRuns deletes every run.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec(`DELETE FROM runs`); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
