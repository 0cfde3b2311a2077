package core

import "slices"

// Frame is a read-only snapshot handed to a Renderer.
// Floor and Position are taken in the same critical section as Event.
type Frame struct {
	Tiles    int   // Original floor size
	Floor    []int // Sorted remaining tile ids (a copy)
	Position int
	Dropped  int // Tile dropped by this event, or NoTile
	Event    Event
}

// Has reports whether tile id is still on the floor.
func (f Frame) Has(id int) bool {
	_, ok := slices.BinarySearch(f.Floor, id)
	return ok
}

// Renderer is the presentation collaborator. Render must not retain
// or modify the frame's floor slice; it is purely observational.
type Renderer interface {
	Render(f Frame)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(f Frame)

// Render calls fn(f).
func (fn RendererFunc) Render(f Frame) {
	fn(f)
}

// NopRenderer discards every frame.
type NopRenderer struct{}

// Render does nothing.
func (NopRenderer) Render(Frame) {}
