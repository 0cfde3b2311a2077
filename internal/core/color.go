package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each color to a terminal style.
type Color uint8

// Predefined colors for floor rendering.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorGray
)
