package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/loop"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunEntry{
		Player:  "alice",
		Seed:    42,
		BoardW:  30,
		BoardH:  30,
		StartX:  5,
		StartY:  5,
		Ticks:   87,
		Length:  6,
		Outcome: "wall",
		Moves:   "3D,10L",
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id == "" {
		t.Fatal("SaveRun() should assign an ID")
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got.Player != "alice" || got.Seed != 42 || got.Ticks != 87 || got.Length != 6 ||
		got.Outcome != "wall" || got.Moves != "3D,10L" {
		t.Errorf("RunByID() = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreRunNotFound(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.RunByID("nope"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("RunByID() error = %v, expected ErrRunNotFound", err)
	}
	if err := store.DeleteRun("nope"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("DeleteRun() error = %v, expected ErrRunNotFound", err)
	}
}

func TestStoreRecentRunsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	var ids []string
	for i := 0; i < 5; i++ {
		id, err := store.SaveRun(RunEntry{Seed: int64(i), BoardW: 30, BoardH: 30, Outcome: "self"})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		ids = append(ids, id)
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	// Newest first
	if runs[0].ID != ids[4] || runs[2].ID != ids[2] {
		t.Errorf("Runs not newest first: got %s..%s", runs[0].ID, runs[2].ID)
	}

	n, err := store.CountRuns()
	if err != nil || n != 5 {
		t.Errorf("CountRuns() = %d, %v, expected 5", n, err)
	}
}

func TestStoreDeleteAndClear(t *testing.T) {
	store := openTestStore(t)

	id1, _ := store.SaveRun(RunEntry{Outcome: "wall"})
	store.SaveRun(RunEntry{Outcome: "self"})

	if err := store.DeleteRun(id1); err != nil {
		t.Fatalf("DeleteRun() failed: %v", err)
	}
	if n, _ := store.CountRuns(); n != 1 {
		t.Errorf("Expected 1 run after delete, got %d", n)
	}

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if n, _ := store.CountRuns(); n != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", n)
	}
}

func TestStoredRecordingReplays(t *testing.T) {
	store := openTestStore(t)

	var rec loop.Recording
	board := snake.Board{Width: 30, Height: 30, Start: snake.DefaultStart}
	d := loop.New(board, snake.DefaultBindings(), loop.Options{
		Seed:       2024,
		OnGameOver: func(r loop.Recording) { rec = r },
	})
	for i := 0; i < 200; i++ {
		switch i {
		case 4:
			d.Key("s")
		case 11:
			d.Key("a")
		}
		if d.Fire().GameOver {
			break
		}
	}
	if rec.Ticks == 0 {
		t.Fatal("Run did not end")
	}

	id, err := store.SaveRecording("local", rec)
	if err != nil {
		t.Fatalf("SaveRecording() failed: %v", err)
	}

	entry, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	loaded, err := entry.Recording()
	if err != nil {
		t.Fatalf("Recording() failed: %v", err)
	}
	if loaded.Seed != rec.Seed || loaded.Board != rec.Board || len(loaded.Moves) != len(rec.Moves) {
		t.Errorf("Loaded recording %+v differs from %+v", loaded, rec)
	}

	if snap := loop.Replay(loaded); !loaded.Matches(snap) {
		t.Errorf("Replay of stored run does not match: tick=%d len=%d outcome=%v",
			snap.Tick, snap.Length(), snap.Outcome)
	}
}

func TestEntryRecordingBadMoves(t *testing.T) {
	e := RunEntry{ID: "x", Moves: "zz"}
	if _, err := e.Recording(); !errors.Is(err, loop.ErrBadMoves) {
		t.Errorf("Recording() error = %v, expected ErrBadMoves", err)
	}
}

func TestStoredRunWithBadBoard(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name  string
		entry RunEntry
	}{
		{"zero width", RunEntry{Seed: 1, BoardW: 0, BoardH: 10}},
		{"zero height", RunEntry{Seed: 1, BoardW: 10, BoardH: 0}},
		{"start outside", RunEntry{Seed: 1, BoardW: 5, BoardH: 5, StartX: 9, StartY: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.entry.Outcome = snake.OutcomeWall.String()
			id, err := store.SaveRun(tt.entry)
			if err != nil {
				t.Fatalf("SaveRun() failed: %v", err)
			}
			got, err := store.RunByID(id)
			if err != nil {
				t.Fatalf("RunByID() failed: %v", err)
			}
			if _, err := got.Recording(); !errors.Is(err, snake.ErrInvalidBoard) {
				t.Errorf("Recording() error = %v, expected ErrInvalidBoard", err)
			}
		})
	}
}

func TestStoreFindRunByPrefix(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{"abc12345-0000", "abc99999-0000", "def00000-0000"} {
		if _, err := store.SaveRun(RunEntry{ID: id, Outcome: "wall"}); err != nil {
			t.Fatalf("SaveRun(%s) failed: %v", id, err)
		}
	}

	tests := []struct {
		query  string
		wantID string
		err    error
	}{
		{"abc12345-0000", "abc12345-0000", nil},
		{"abc1", "abc12345-0000", nil},
		{"def", "def00000-0000", nil},
		{"abc", "", ErrAmbiguousRun},
		{"zzz", "", ErrRunNotFound},
		{"", "", ErrRunNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			got, err := store.FindRun(tc.query)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Errorf("FindRun(%q) error = %v, expected %v", tc.query, err, tc.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindRun(%q) failed: %v", tc.query, err)
			}
			if got.ID != tc.wantID {
				t.Errorf("FindRun(%q) = %s, expected %s", tc.query, got.ID, tc.wantID)
			}
		})
	}
}
