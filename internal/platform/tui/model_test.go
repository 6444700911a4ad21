package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/loop"
)

type fakeJournal struct {
	calls   int
	players []string
	recs    []loop.Recording
	err     error
}

func (f *fakeJournal) SaveRecording(player string, rec loop.Recording) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	f.players = append(f.players, player)
	f.recs = append(f.recs, rec)
	return "run-1", nil
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func newTestModel(t *testing.T, j Journal, w, h int) Model {
	t.Helper()
	m, err := NewModel(config.Default(), ModelOptions{
		Runtime: core.RuntimeConfig{ScreenW: w, ScreenH: h, Seed: 42},
		Journal: j,
		Player:  "tester",
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return nm, cmd
}

// playIntoWall turns up from the start cell and ticks until the run ends.
func playIntoWall(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, keyMsg("up"))
	for i := 0; i < 20; i++ {
		m, _ = update(t, m, TickMsg{})
		if m.Snapshot().GameOver {
			return m
		}
	}
	t.Fatal("Game did not end")
	return m
}

func TestNewModelRejectsBadBoard(t *testing.T) {
	cfg := config.Default()
	cfg.Board.TileSize = 0
	if _, err := NewModel(cfg, ModelOptions{}); !errors.Is(err, config.ErrInvalidBoard) {
		t.Errorf("NewModel() error = %v, expected ErrInvalidBoard", err)
	}
}

func TestModelTickAdvancesGame(t *testing.T) {
	m := newTestModel(t, nil, 80, 40)

	if m.Init() == nil {
		t.Fatal("Init() should schedule the first tick")
	}

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("Tick should schedule the next tick")
	}
	if snap := m.Snapshot(); snap.Tick != 1 || snap.Head().X != 6 {
		t.Errorf("Expected tick 1 with head at x=6, got tick %d head %v", snap.Tick, snap.Head())
	}
}

func TestModelQuitKeys(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m := newTestModel(t, nil, 80, 40)
			m, cmd := update(t, m, keyMsg(k))
			if cmd == nil {
				t.Fatal("Quit key should return a command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("Quit key should return tea.Quit")
			}
			if m.View() != "" {
				t.Error("View should be empty after quitting")
			}
		})
	}
}

func TestModelRecordsFinishedRun(t *testing.T) {
	j := &fakeJournal{}
	m := newTestModel(t, j, 80, 40)

	m = playIntoWall(t, m)
	for i := 0; i < 3; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	if j.calls != 1 {
		t.Fatalf("Expected 1 saved run, got %d", j.calls)
	}
	if j.players[0] != "tester" || j.recs[0].Seed != 42 {
		t.Errorf("Unexpected saved run: player=%q seed=%d", j.players[0], j.recs[0].Seed)
	}
	if m.LastRunID() != "run-1" {
		t.Errorf("LastRunID() = %q", m.LastRunID())
	}

	view := m.View()
	for _, want := range []string{"Game Over! D:", "Press 'R' to Try Again! :D", "run run-1 saved"} {
		if !strings.Contains(view, want) {
			t.Errorf("View should contain %q", want)
		}
	}
}

func TestModelRestart(t *testing.T) {
	m := newTestModel(t, &fakeJournal{}, 80, 40)
	m = playIntoWall(t, m)

	m, _ = update(t, m, keyMsg("r"))
	snap := m.Snapshot()
	if snap.GameOver || snap.Tick != 0 || snap.Length() != 1 {
		t.Errorf("Expected a fresh game after restart, got %+v", snap)
	}
	if m.LastRunID() != "" {
		t.Error("Restart should clear the saved-run notice")
	}
}

func TestModelCustomRestartKey(t *testing.T) {
	cfg := config.Default()
	cfg.Keys.Restart = []string{"x"}
	m, err := NewModel(cfg, ModelOptions{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 40, Seed: 42},
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}

	m = playIntoWall(t, m)
	view := m.View()
	if !strings.Contains(view, "Press 'x' to Try Again! :D") {
		t.Errorf("Prompt should name the configured key:\n%s", view)
	}
	if strings.Contains(view, "Press 'R'") {
		t.Error("Prompt should not name an unbound key")
	}

	m, _ = update(t, m, keyMsg("x"))
	if m.Snapshot().GameOver {
		t.Error("Configured restart key should start a new game")
	}
}

func TestModelJournalErrorKeepsPlaying(t *testing.T) {
	j := &fakeJournal{err: errors.New("disk full")}
	m := newTestModel(t, j, 80, 40)

	m = playIntoWall(t, m)
	if j.calls != 1 {
		t.Errorf("Expected one save attempt, got %d", j.calls)
	}
	if m.LastRunID() != "" {
		t.Error("Failed save should not report a run ID")
	}
	if !strings.Contains(m.View(), "Game Over! D:") {
		t.Error("Game over overlay should still be shown")
	}
}

func TestModelWindowTooSmall(t *testing.T) {
	m := newTestModel(t, nil, 80, 40)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})

	if !strings.Contains(m.View(), "Window too small") {
		t.Error("Small window should show the resize overlay")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	if strings.Contains(m.View(), "Window too small") {
		t.Error("Overlay should disappear once the window is large enough")
	}
}
