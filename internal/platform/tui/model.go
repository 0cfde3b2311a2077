package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/platformer/internal/core"
)

// maxLogLines is how many recent events the live view keeps on screen.
const maxLogLines = 8

// FrameMsg delivers a rendered frame to the live view.
type FrameMsg core.Frame

// finishedMsg tells the live view the session has returned.
type finishedMsg struct{}

// LiveModel is the Bubble Tea model that watches a running game.
// It only observes; the game runs in its own goroutines.
type LiveModel struct {
	tiles    int
	frame    core.Frame
	events   []string
	spinner  spinner.Model
	help     help.Model
	keys     LiveKeyMap
	cancel   context.CancelFunc
	started  time.Time
	elapsed  time.Duration
	width    int
	finished bool
	quitting bool
}

// NewLiveModel creates a live view for a floor of the given size.
// cancel is called when the user aborts; it may be nil.
func NewLiveModel(tiles int, cancel context.CancelFunc) LiveModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return LiveModel{
		tiles:   tiles,
		frame:   core.Frame{Tiles: tiles, Position: core.NoTile, Dropped: core.NoTile},
		spinner: sp,
		help:    help.New(),
		keys:    DefaultLiveKeyMap(),
		cancel:  cancel,
		started: time.Now(),
		width:   80,
	}
}

// Init starts the spinner and the elapsed-time clock.
func (m LiveModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickCmd(time.Second))
}

// Update handles messages and updates the model state.
func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			if m.cancel != nil && !m.finished {
				m.cancel()
			}
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame(core.Frame(msg)), nil

	case finishedMsg:
		m.finished = true
		return m, tea.Quit

	case TickMsg:
		if m.finished {
			return m, nil
		}
		m.elapsed = time.Since(m.started).Truncate(time.Second)
		return m, tickCmd(time.Second)

	case spinner.TickMsg:
		if m.finished {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleFrame records the latest floor and appends the event to the log.
func (m LiveModel) handleFrame(f core.Frame) LiveModel {
	m.frame = f
	if _, ok := f.Event.(core.EndEvent); ok {
		m.finished = true
	}

	line := DescribeEvent(f.Event, func(c core.Color, text string) string {
		return colorStyles[c].Render(text)
	})
	if line != "" {
		m.events = append(m.events, line)
		if len(m.events) > maxLogLines {
			m.events = m.events[len(m.events)-maxLogLines:]
		}
	}
	return m
}

// View renders the current state to a string for display.
func (m LiveModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("PLATFORMER", m.width)))
	b.WriteString("\n\n")

	status := m.spinner.View()
	if m.finished {
		status = "■"
	}
	remaining := len(m.frame.Floor)
	fmt.Fprintf(&b, "%s tiles left %d/%d  tile %d  %s\n\n", status, remaining, m.tiles, m.frame.Position, m.elapsed)

	floorStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(floorStyle.Render(RenderScreen(FloorScreen(m.frame))))
	b.WriteString("\n\n")

	for _, line := range m.events {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// LiveView runs a LiveModel in its own Bubble Tea program and feeds it
// frames. It implements core.Renderer and io.Closer.
type LiveView struct {
	program *tea.Program
	done    chan struct{}
	err     error
}

// StartLiveView starts the live view program in the background.
func StartLiveView(tiles int, cancel context.CancelFunc, opts ...tea.ProgramOption) (*LiveView, error) {
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}

	lv := &LiveView{
		program: tea.NewProgram(NewLiveModel(tiles, cancel), opts...),
		done:    make(chan struct{}),
	}
	go func() {
		defer close(lv.done)
		_, lv.err = lv.program.Run()
	}()
	return lv, nil
}

// Render implements core.Renderer. Frames sent after the program has
// exited are dropped.
func (lv *LiveView) Render(f core.Frame) {
	select {
	case <-lv.done:
		return
	default:
	}
	lv.program.Send(FrameMsg(f))
}

// Close stops the program and waits for the terminal to be restored.
func (lv *LiveView) Close() error {
	lv.program.Send(finishedMsg{})
	<-lv.done
	return lv.err
}
