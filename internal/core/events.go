package core

// Direction is the horizontal direction of a jump.
type Direction int

const (
	Left Direction = iota
	Right
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == Left {
		return Right
	}
	return Left
}

// Offset returns the rank offset of a jump in this direction.
func (d Direction) Offset() int {
	if d == Left {
		return -2
	}
	return 2
}

// Event is something that happened to the shared game state.
// Events travel inside Frames to the presentation layer.
type Event interface {
	event()
}

// JumpEvent is emitted when the character lands on a new tile.
type JumpEvent struct {
	From      int
	To        int
	Requested Direction // Direction the jumper asked for
	Dir       Direction // Direction actually taken
	Fallback  bool      // True if the opposite direction was used
}

func (JumpEvent) event() {}

// StallEvent is emitted when neither jump direction is available.
type StallEvent struct {
	Position  int
	Index     int // Rank of the position in the remaining floor
	Requested Direction
}

func (StallEvent) event() {}

// DropEvent is emitted when a tile falls.
type DropEvent struct {
	Tile  int
	Fatal bool // The character was standing on it
}

func (DropEvent) event() {}

// EndEvent is emitted once, after both actors have finished.
type EndEvent struct {
	Outcome  Outcome
	Position int
}

func (EndEvent) event() {}
