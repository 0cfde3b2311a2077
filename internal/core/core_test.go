package core

import "testing"

func TestOutcome(t *testing.T) {
	tests := []struct {
		o        Outcome
		name     string
		terminal bool
	}{
		{Undecided, "undecided", false},
		{Victory, "victory", true},
		{Defeat, "defeat", true},
		{Outcome(42), "unknown", false},
	}

	for _, tt := range tests {
		if got := tt.o.String(); got != tt.name {
			t.Errorf("Outcome(%d).String() = %q, expected %q", tt.o, got, tt.name)
		}
		if got := tt.o.Terminal(); got != tt.terminal {
			t.Errorf("Outcome(%d).Terminal() = %v, expected %v", tt.o, got, tt.terminal)
		}
	}

	for _, o := range []Outcome{Undecided, Victory, Defeat} {
		if got := ParseOutcome(o.String()); got != o {
			t.Errorf("ParseOutcome(%q) = %v, expected %v", o.String(), got, o)
		}
	}
	if got := ParseOutcome("garbage"); got != Undecided {
		t.Errorf("ParseOutcome(garbage) = %v, expected undecided", got)
	}
}

func TestDirection(t *testing.T) {
	if Left.Opposite() != Right || Right.Opposite() != Left {
		t.Error("Opposite should swap left and right")
	}
	if Left.Offset() != -2 || Right.Offset() != 2 {
		t.Errorf("Offset() = %d/%d, expected -2/2", Left.Offset(), Right.Offset())
	}
	if Left.String() != "left" || Right.String() != "right" {
		t.Errorf("String() = %q/%q", Left.String(), Right.String())
	}
}

func TestFrameHas(t *testing.T) {
	f := Frame{Tiles: 6, Floor: []int{0, 2, 3, 5}, Position: 2, Dropped: NoTile}

	for id := range 6 {
		want := id != 1 && id != 4
		if got := f.Has(id); got != want {
			t.Errorf("Has(%d) = %v, expected %v", id, got, want)
		}
	}

	var empty Frame
	if empty.Has(0) {
		t.Error("empty frame should not contain any tile")
	}
}

type fixedRand int

func (r fixedRand) Intn(n int) int { return int(r) % n }

func TestPick(t *testing.T) {
	items := []string{"a", "b", "c"}
	if got := Pick(fixedRand(1), items); got != "b" {
		t.Errorf("Pick = %q, expected b", got)
	}
	if got := Pick(fixedRand(5), items); got != "c" {
		t.Errorf("Pick = %q, expected c", got)
	}
	if got := Pick[int](fixedRand(0), nil); got != 0 {
		t.Errorf("Pick on empty = %d, expected zero value", got)
	}
}

func TestNewRandSeeded(t *testing.T) {
	a, b := NewRand(99), NewRand(99)
	for i := range 20 {
		x, y := a.Intn(100), b.Intn(100)
		if x != y {
			t.Fatalf("draw %d: same seed gave %d and %d", i, x, y)
		}
		if x < 0 || x >= 100 {
			t.Fatalf("draw %d out of range: %d", i, x)
		}
	}
}

func TestRendererFunc(t *testing.T) {
	var got Frame
	var r Renderer = RendererFunc(func(f Frame) { got = f })
	r.Render(Frame{Position: 3})
	if got.Position != 3 {
		t.Errorf("RendererFunc did not receive the frame, got %+v", got)
	}
	NopRenderer{}.Render(Frame{})
}
