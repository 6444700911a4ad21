package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// GameKeyMap defines the key bindings shown and matched during play.
// Movement and restart keys are routed to the game by name; the bindings
// here exist for the help footer and for quit handling.
type GameKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Restart, k.Quit},
	}
}

// NewGameKeyMap builds bindings from the configured key lists.
func NewGameKeyMap(keys config.KeysConfig) GameKeyMap {
	return GameKeyMap{
		Up:      binding(keys.Up, "up"),
		Down:    binding(keys.Down, "down"),
		Left:    binding(keys.Left, "left"),
		Right:   binding(keys.Right, "right"),
		Restart: binding(keys.Restart, "restart"),
		Quit:    binding(keys.Quit, "quit"),
	}
}

// DefaultGameKeyMap returns the bindings of the default config.
func DefaultGameKeyMap() GameKeyMap {
	return NewGameKeyMap(config.Default().Keys)
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// RunsKeyMap defines the key bindings for the runs browser.
type RunsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Replay key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Replay, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Replay, k.Delete, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Replay: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "replay"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}
