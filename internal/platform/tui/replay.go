package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/loop"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// ReplayModel plays back a recorded run at the loop cadence.
type ReplayModel struct {
	replayer *loop.Replayer
	screen   *core.Screen
	theme    Theme
	quit     key.Binding
	help     help.Model
	title    string
	rt       core.RuntimeConfig
	snap     snake.Snapshot
	quitting bool
}

// NewReplayModel creates a replay of rec. label names the run in the HUD.
func NewReplayModel(rec loop.Recording, label string, theme Theme, rt core.RuntimeConfig) ReplayModel {
	if rt.Interval <= 0 {
		rt.Interval = loop.DefaultInterval
	}
	r := loop.NewReplayer(rec)
	return ReplayModel{
		replayer: r,
		screen:   core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 0)),
		theme:    theme,
		quit:     DefaultRunsKeyMap().Quit,
		help:     help.New(),
		title:    "Replay " + label,
		rt:       rt,
		snap:     r.Snapshot(),
	}
}

// Init starts playback.
func (m ReplayModel) Init() tea.Cmd {
	return tickCmd(m.rt.Interval)
}

// Update advances playback on ticks and quits on the quit keys.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.quit) {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
	case TickMsg:
		if m.replayer.Done() {
			return m, nil
		}
		m.snap = m.replayer.Step()
		return m, tickCmd(m.rt.Interval)
	}
	return m, nil
}

// View renders the current replay frame.
func (m ReplayModel) View() string {
	if m.quitting {
		return ""
	}

	rec := m.replayer.Recording()
	over := Overlay{
		Title:  "Replay finished",
		Prompt: fmt.Sprintf("Outcome: %s  Length: %d", m.snap.Outcome, m.snap.Length()),
	}
	DrawBoard(m.screen, m.snap, m.theme, m.title, over)

	footer := fmt.Sprintf("tick %d/%d  %s", m.snap.Tick, rec.Ticks, m.help.ShortHelpView([]key.Binding{m.quit}))
	if m.replayer.Done() && !rec.Matches(m.snap) {
		footer = "replay diverged from the recording  " + footer
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// Snapshot returns the current replay frame.
func (m ReplayModel) Snapshot() snake.Snapshot {
	return m.snap
}

// RunReplay plays rec back in the terminal until the user quits.
func RunReplay(rec loop.Recording, label string, theme Theme, rt core.RuntimeConfig) error {
	p := tea.NewProgram(NewReplayModel(rec, label, theme, rt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
