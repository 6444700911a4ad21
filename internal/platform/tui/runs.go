package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

// maxRuns is how many recent runs the browser loads.
const maxRuns = 100

// RunSource is the part of the journal the runs browser needs.
type RunSource interface {
	RecentRuns(limit int) ([]storage.RunEntry, error)
	DeleteRun(id string) error
}

// RunsModel is the Bubble Tea model for browsing recorded runs, newest first.
type RunsModel struct {
	source   RunSource
	runs     []storage.RunEntry
	table    table.Model
	help     help.Model
	keys     RunsKeyMap
	width    int
	height   int
	err      error
	selected string
	quitting bool
}

// NewRunsModel creates a runs browser.
func NewRunsModel(source RunSource, width, height int) RunsModel {
	h := help.New()
	h.ShowAll = false

	m := RunsModel{
		source: source,
		keys:   DefaultRunsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a table sized to the window.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Run", Width: 8},
		{Title: "Player", Width: 10},
		{Title: "Length", Width: 6},
		{Title: "Ticks", Width: 7},
		{Title: "Outcome", Width: 10},
		{Title: "Date", Width: 12},
	}

	// Give spare width to the player column
	if spare := m.width - 4 - 2*len(columns) - 53; spare > 0 {
		columns[1].Width += min(spare, 14)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for title, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns reloads the recent runs from the source.
func (m *RunsModel) loadRuns() {
	if m.source == nil {
		m.runs = nil
		m.updateTableRows()
		return
	}

	runs, err := m.source.RecentRuns(maxRuns)
	m.err = err
	if err != nil {
		m.runs = nil
	} else {
		m.runs = runs
	}
	m.updateTableRows()
}

// updateTableRows fills the table from the loaded runs.
func (m *RunsModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			shortID(r.ID),
			player,
			strconv.Itoa(r.Length),
			strconv.FormatUint(r.Ticks, 10),
			r.Outcome,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.GotoTop()
	}
}

// current returns the run under the cursor.
func (m RunsModel) current() (storage.RunEntry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) {
		return storage.RunEntry{}, false
	}
	return m.runs[i], true
}

// Init initializes the runs model.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the runs browser.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Replay):
			if run, ok := m.current(); ok {
				m.selected = run.ID
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if run, ok := m.current(); ok && m.source != nil {
				if err := m.source.DeleteRun(run.ID); err != nil && !errors.Is(err, storage.ErrRunNotFound) {
					m.err = err
					return m, nil
				}
				m.loadRuns()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the runs browser.
func (m RunsModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText(fmt.Sprintf("RECENT RUNS (%d)", len(m.runs)), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		b.WriteString(errStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m RunsModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nFinished games show up here.")
	}

	return m.table.View()
}

// Selected returns the ID of the run chosen for replay, or "".
func (m RunsModel) Selected() string {
	return m.selected
}

// centerText pads text to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunRunsBrowser shows the runs browser.
// Returns the ID of the run to replay, or "" if the user quit.
func RunRunsBrowser(source RunSource, width, height int) (string, error) {
	p := tea.NewProgram(
		NewRunsModel(source, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(RunsModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
