package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/platformer/internal/core"
	"github.com/vovakirdan/platformer/internal/storage"
)

// History layout constants
const (
	maxHistoryRuns   = 200 // Max runs to load
	historyChrome    = 8   // Rows used by title, borders and help
	minHistoryHeight = 5
)

// HistoryModel is the Bubble Tea model for browsing past runs.
type HistoryModel struct {
	runs     []storage.RunEntry
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history browser over the given runs.
func NewHistoryModel(runs []storage.RunEntry, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		runs:   runs,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a table sized to the current window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Run", Width: 8},
		{Title: "Result", Width: 9},
		{Title: "Tiles", Width: 6},
		{Title: "Start", Width: 6},
		{Title: "End", Width: 5},
		{Title: "Jumps", Width: 6},
		{Title: "Drops", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 13},
	}

	height := m.height - historyChrome
	if height < minHistoryHeight {
		height = minHistoryHeight
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// updateTableRows fills the table from the loaded runs.
func (m *HistoryModel) updateTableRows() {
	m.table.SetRows(HistoryRows(m.runs))
	m.table.GotoTop()
}

// HistoryRows formats runs as table rows, newest first as given.
func HistoryRows(runs []storage.RunEntry) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		end := "-"
		if r.Outcome != core.Undecided {
			end = fmt.Sprintf("%d", r.Position)
		}
		rows[i] = table.Row{
			shortID(r.RunID),
			r.Outcome.String(),
			fmt.Sprintf("%d", r.Tiles),
			fmt.Sprintf("%d", r.Start),
			end,
			fmt.Sprintf("%d", r.Jumps),
			fmt.Sprintf("%d", r.Drops),
			r.Duration.Truncate(100 * time.Millisecond).String(),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// shortID trims a run UUID to its first group.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
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

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText(fmt.Sprintf("RUN HISTORY (%d)", len(m.runs)), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nPlay a game to start the history!")
	}
	return m.table.View()
}

// RunHistory loads recent runs from the store and shows them full screen.
func RunHistory(store *storage.Store, limit, width, height int) error {
	if limit <= 0 || limit > maxHistoryRuns {
		limit = maxHistoryRuns
	}

	var runs []storage.RunEntry
	if store != nil {
		var err error
		runs, err = store.RecentRuns(limit)
		if err != nil {
			return err
		}
	}

	p := tea.NewProgram(
		NewHistoryModel(runs, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
