package tui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/platformer/internal/core"
	"github.com/vovakirdan/platformer/internal/registry"
)

func init() {
	registry.Register("color", "Colored console log", func(opts registry.Options) (core.Renderer, error) {
		return NewConsoleRenderer(outOrStdout(opts.Out), true), nil
	})
	registry.Register("plain", "Plain console log", func(opts registry.Options) (core.Renderer, error) {
		return NewConsoleRenderer(outOrStdout(opts.Out), false), nil
	})
	registry.Register("quiet", "No output until the result", func(registry.Options) (core.Renderer, error) {
		return core.NopRenderer{}, nil
	})
	registry.Register("live", "Full-screen live view", func(opts registry.Options) (core.Renderer, error) {
		return StartLiveView(opts.Tiles, opts.Cancel)
	})
}

func outOrStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

// ConsoleRenderer prints one line per event followed by the floor row.
// Both actors render concurrently; a mutex keeps lines from interleaving.
type ConsoleRenderer struct {
	mu     sync.Mutex
	out    io.Writer
	color  bool
	styles map[core.Color]lipgloss.Style
}

// NewConsoleRenderer creates a console renderer writing to out.
func NewConsoleRenderer(out io.Writer, color bool) *ConsoleRenderer {
	return &ConsoleRenderer{
		out:    out,
		color:  color,
		styles: paletteFor(lipgloss.NewRenderer(out)),
	}
}

// Render implements core.Renderer.
func (c *ConsoleRenderer) Render(f core.Frame) {
	line := DescribeEvent(f.Event, c.paint)

	screen := FloorScreen(f)
	row := screen.String()
	if c.color {
		row = renderScreenWith(screen, c.styles)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if line != "" {
		fmt.Fprintln(c.out, line)
	}
	fmt.Fprintln(c.out, row)
}

// paint colors text when color output is enabled.
func (c *ConsoleRenderer) paint(col core.Color, text string) string {
	if !c.color {
		return text
	}
	return c.styles[col].Render(text)
}

// Painter colors a piece of text.
type Painter func(c core.Color, text string) string

// DescribeEvent returns the log line for an event, or "" for none.
func DescribeEvent(evt core.Event, paint Painter) string {
	switch e := evt.(type) {
	case nil:
		return ""
	case core.JumpEvent:
		if e.Fallback {
			return fmt.Sprintf("Cannot jump %s, jumping %s to tile %s", e.Requested, e.Dir, paint(core.ColorYellow, fmt.Sprint(e.To)))
		}
		return fmt.Sprintf("Jumping %s to tile %s", e.Dir, paint(core.ColorYellow, fmt.Sprint(e.To)))
	case core.StallEvent:
		return fmt.Sprintf("Current tile index: %d. Cannot jump left or right!", e.Index)
	case core.DropEvent:
		if e.Fatal {
			return paint(core.ColorRed, fmt.Sprintf("The tile %d where the character was standing just fell down!", e.Tile))
		}
		return fmt.Sprintf("Dropping tile number %s", paint(core.ColorYellow, fmt.Sprint(e.Tile)))
	case core.EndEvent:
		return paint(core.ColorMagenta, fmt.Sprintf("Game ended on tile %d", e.Position))
	default:
		return ""
	}
}

// OutcomeBanner returns the final message for an outcome, styled for out.
func OutcomeBanner(out io.Writer, o core.Outcome, color bool) string {
	text, col := "GAME ENDED", core.ColorMagenta
	switch o {
	case core.Victory:
		text, col = "VICTORY", core.ColorGreen
	case core.Defeat:
		text, col = "GAME OVER", core.ColorRed
	}
	if !color {
		return text
	}
	return paletteFor(lipgloss.NewRenderer(out))[col].Bold(true).Render(text)
}
