package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/loop"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Journal records finished runs. *storage.Store satisfies it.
type Journal interface {
	SaveRecording(player string, rec loop.Recording) (string, error)
}

// ModelOptions configures a game Model.
type ModelOptions struct {
	Runtime core.RuntimeConfig
	Journal Journal     // nil disables recording
	Player  string      // stored with each run
	Logger  *log.Logger // nil discards
	Title   string      // HUD title, defaults to "Snake"
}

// session is shared by all copies of a Model.
type session struct {
	journal Journal
	player  string
	logger  *log.Logger
	lastRun string
}

// record saves a finished run. Failures are logged and play continues.
func (s *session) record(rec loop.Recording) {
	s.lastRun = ""
	s.logger.Info("run finished",
		"player", s.player,
		"seed", rec.Seed,
		"ticks", rec.Ticks,
		"length", rec.Length,
		"outcome", rec.Outcome,
	)
	if s.journal == nil {
		return
	}
	id, err := s.journal.SaveRecording(s.player, rec)
	if err != nil {
		s.logger.Warn("could not save run", "error", err)
		return
	}
	s.lastRun = id
	s.logger.Debug("run saved", "id", id)
}

// Model is the Bubble Tea model for one player's game.
type Model struct {
	driver   *loop.Driver
	screen   *core.Screen
	theme    Theme
	over     Overlay
	keys     GameKeyMap
	help     help.Model
	sess     *session
	title    string
	snap     snake.Snapshot
	quitting bool
}

// NewModel creates a game model from the loaded configuration.
func NewModel(cfg config.Config, opts ModelOptions) (Model, error) {
	board, err := cfg.SnakeBoard()
	if err != nil {
		return Model{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	interval := opts.Runtime.Interval
	if interval <= 0 {
		interval = cfg.Interval()
	}
	title := opts.Title
	if title == "" {
		title = "Snake"
	}

	sess := &session{journal: opts.Journal, player: opts.Player, logger: logger}
	driver := loop.New(board, cfg.Bindings(), loop.Options{
		Interval:   interval,
		Seed:       opts.Runtime.Seed,
		OnGameOver: sess.record,
	})

	h := help.New()
	h.ShowAll = false

	return Model{
		driver: driver,
		screen: core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 0)),
		theme:  ThemeFromConfig(cfg.Theme),
		over:   GameOverOverlay(cfg.Keys.Restart),
		keys:   NewGameKeyMap(cfg.Keys),
		help:   h,
		sess:   sess,
		title:  title,
		snap:   driver.Snapshot(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.driver.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.driver.Key(msg.String()) == snake.ActionRestart {
			m.sess.lastRun = ""
			m.snap = m.driver.Snapshot()
		}
		return m, nil

	case tea.WindowSizeMsg:
		// One line is kept for the help footer.
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.snap = m.driver.Fire()
		return m, tickCmd(m.driver.Interval())
	}

	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawBoard(m.screen, m.snap, m.theme, m.title, m.over)

	footer := m.help.View(m.keys)
	if m.snap.GameOver && m.sess.lastRun != "" {
		footer = fmt.Sprintf("run %s saved  %s", shortID(m.sess.lastRun), footer)
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// Snapshot returns the last drawn game state.
func (m Model) Snapshot() snake.Snapshot {
	return m.snap
}

// LastRunID returns the journal ID of the most recent finished run, if it was saved.
func (m Model) LastRunID() string {
	return m.sess.lastRun
}

// shortID trims a UUID to its first block for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Run starts the Bubble Tea program with the given model.
func Run(model Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
