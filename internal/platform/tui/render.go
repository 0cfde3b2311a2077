package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/platformer/internal/core"
)

// colorStyles maps core.Color to lipgloss styles on the default renderer.
var colorStyles = paletteFor(lipgloss.DefaultRenderer())

// paletteFor builds the color styles for a lipgloss renderer, so color
// support is detected per output rather than always for stdout.
func paletteFor(r *lipgloss.Renderer) map[core.Color]lipgloss.Style {
	return map[core.Color]lipgloss.Style{
		core.ColorDefault: r.NewStyle(),
		core.ColorRed:     r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		core.ColorGreen:   r.NewStyle().Foreground(lipgloss.Color("2")),
		core.ColorYellow:  r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		core.ColorMagenta: r.NewStyle().Foreground(lipgloss.Color("5")),
		core.ColorGray:    r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	return renderScreenWith(s, colorStyles)
}

// renderScreenWith groups adjacent cells with the same color to minimize
// ANSI escape sequences.
func renderScreenWith(s *core.Screen, styles map[core.Color]lipgloss.Style) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[startColor]
			if !ok {
				style = styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// FloorWidth returns the width of a rendered floor row of n tiles.
// Every slot is as wide as its tile id, so rows stay aligned as tiles fall.
func FloorWidth(n int) int {
	w := 0
	for id := range n {
		w += len(strconv.Itoa(id)) + 1
	}
	return max(w-1, 0)
}

// DrawFloor draws one floor row at y. Remaining tiles show their id, the
// character's tile is yellow, fallen tiles are gray '*' and the tile that
// just fell is a red '*'.
func DrawFloor(s *core.Screen, y int, f core.Frame) {
	x := 0
	for id := range f.Tiles {
		label := strconv.Itoa(id)
		switch {
		case id == f.Dropped:
			s.DrawTextColor(x, y, padRight("*", len(label)), core.ColorRed)
		case !f.Has(id):
			s.DrawTextColor(x, y, padRight("*", len(label)), core.ColorGray)
		case id == f.Position:
			s.DrawTextColor(x, y, label, core.ColorYellow)
		default:
			s.DrawText(x, y, label)
		}
		x += len(label) + 1
	}
}

// FloorScreen returns a single-row screen holding the frame's floor.
func FloorScreen(f core.Frame) *core.Screen {
	s := core.NewScreen(FloorWidth(f.Tiles), 1)
	DrawFloor(s, 0, f)
	return s
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// centerText pads text on the left to center it within width.
func centerText(text string, width int) string {
	if lipgloss.Width(text) >= width {
		return text
	}
	padding := (width - lipgloss.Width(text)) / 2
	return strings.Repeat(" ", padding) + text
}
