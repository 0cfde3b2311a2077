package core

// Floor size limits shared by the game and the CLI.
const (
	MinTiles     = 3
	MaxTiles     = 100
	VictoryTiles = 3 // floor size at or below which the jumper wins
)

// NoTile marks the absence of a tile id (e.g. a frame with no drop).
const NoTile = -1

// RuntimeConfig contains configuration passed to a game session at start.
type RuntimeConfig struct {
	Tiles int   // Number of floor tiles, ids 0..Tiles-1
	Start int   // Starting tile of the character
	Seed  int64 // RNG seed; 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Tiles: 10,
		Start: 5,
		Seed:  0, // 0 means use current time
	}
}

// Outcome is the write-once terminal result of a game.
type Outcome int

const (
	Undecided Outcome = iota
	Victory
	Defeat
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Undecided:
		return "undecided"
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ends the game.
func (o Outcome) Terminal() bool {
	return o == Victory || o == Defeat
}

// ParseOutcome converts a stored outcome name back to an Outcome.
func ParseOutcome(s string) Outcome {
	switch s {
	case "victory":
		return Victory
	case "defeat":
		return Defeat
	default:
		return Undecided
	}
}

// GameState is a consistent read of the shared game state.
type GameState struct {
	Outcome   Outcome
	Position  int  // Tile the character stands on (stale after a defeat)
	Remaining int  // Tiles still on the floor
	Stopped   bool // Whether the stop flag is set
}
