// Package platformer implements the tile-drop survival game: a character
// jumps two surviving tiles at a time while a concurrent dropper removes
// random tiles from the floor.
package platformer

import (
	"slices"
	"sync"

	"github.com/vovakirdan/platformer/internal/core"
)

// State is the game state shared by the jumper and the dropper.
//
// A single mutex guards the floor, the position, the stop flag and the
// outcome. Every jump decision and every drop runs inside one critical
// section, so the floor size, the rank lookup and the position used for a
// single decision always come from the same consistent state.
type State struct {
	tiles int // original floor size, ids are 0..tiles-1

	mu       sync.Mutex
	floor    []int // sorted, duplicate-free, only ever shrinks
	position int
	outcome  core.Outcome
	stopped  bool

	done     chan struct{}
	doneOnce sync.Once
}

// New creates a floor of n tiles (ids 0..n-1) with the character on position.
func New(n, position int) (*State, error) {
	switch {
	case n <= 0:
		return nil, invalidConfig("cannot create a row of %d tiles", n)
	case n < core.MinTiles:
		return nil, invalidConfig("floor needs at least %d tiles, got %d", core.MinTiles, n)
	case n > core.MaxTiles:
		return nil, invalidConfig("floor supports at most %d tiles, got %d", core.MaxTiles, n)
	case position < 0:
		return nil, invalidConfig("character cannot stand on negative tile %d", position)
	case position >= n:
		return nil, invalidConfig("tile %d is outside the floor 0..%d", position, n-1)
	}

	floor := make([]int, n)
	for i := range floor {
		floor[i] = i
	}

	return &State{
		tiles:    n,
		floor:    floor,
		position: position,
		done:     make(chan struct{}),
	}, nil
}

// Tiles returns the original number of tiles.
func (s *State) Tiles() int {
	return s.tiles
}

// IsTerminalBySize reports whether too few tiles remain to keep jumping.
func (s *State) IsTerminalBySize() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.terminalBySizeLocked()
}

func (s *State) terminalBySizeLocked() bool {
	return len(s.floor) <= core.VictoryTiles
}

// RequestStop sets the stop flag and records outcome. Only the first call
// has any effect; it returns true for that call and false afterwards.
func (s *State) RequestStop(outcome core.Outcome) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopLocked(outcome)
}

func (s *State) stopLocked(outcome core.Outcome) bool {
	if s.stopped {
		return false
	}
	s.stopped = true
	s.outcome = outcome
	s.doneOnce.Do(func() {
		close(s.done)
	})
	return true
}

// Done returns a channel that is closed once the stop flag is set.
func (s *State) Done() <-chan struct{} {
	return s.done
}

// Stopped reports whether the stop flag is set.
func (s *State) Stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

// Outcome returns the recorded outcome.
func (s *State) Outcome() core.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

// SnapshotFloor returns a copy of the remaining tiles in ascending order.
func (s *State) SnapshotFloor() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.floor)
}

// CurrentPosition returns the tile the character stands on.
func (s *State) CurrentPosition() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

// Remaining returns the number of tiles still on the floor.
func (s *State) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.floor)
}

// Contains reports whether tile id is still on the floor.
func (s *State) Contains(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := slices.BinarySearch(s.floor, id)
	return ok
}

// State returns a consistent read of outcome, position and floor size.
func (s *State) State() core.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.GameState{
		Outcome:   s.outcome,
		Position:  s.position,
		Remaining: len(s.floor),
		Stopped:   s.stopped,
	}
}

// Frame returns a snapshot of the floor and position for rendering.
func (s *State) Frame(evt core.Event) core.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frameLocked(evt, core.NoTile)
}

func (s *State) frameLocked(evt core.Event, dropped int) core.Frame {
	return core.Frame{
		Tiles:    s.tiles,
		Floor:    slices.Clone(s.floor),
		Position: s.position,
		Dropped:  dropped,
		Event:    evt,
	}
}

// move is the result of one jump decision.
type move struct {
	kind  moveKind
	event core.Event
	frame core.Frame
}

type moveKind int

const (
	moveHalted  moveKind = iota // game already stopped
	moveVictory                 // floor too small, victory recorded
	moveStalled                 // no direction available
	moveJumped
)

// jump performs one jump decision in a single critical section.
func (s *State) jump(dir core.Direction) move {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return move{kind: moveHalted}
	}
	if s.terminalBySizeLocked() {
		s.stopLocked(core.Victory)
		return move{kind: moveVictory}
	}

	idx, ok := slices.BinarySearch(s.floor, s.position)
	if !ok {
		// The occupied tile is gone; the drop that removed it ends the game
		// in the same critical section, so this is unreachable while running.
		return move{kind: moveHalted}
	}

	taken := dir
	fallback := false
	if !s.canJumpLocked(idx, taken) {
		if !s.canJumpLocked(idx, taken.Opposite()) {
			evt := core.StallEvent{Position: s.position, Index: idx, Requested: dir}
			return move{kind: moveStalled, event: evt, frame: s.frameLocked(evt, core.NoTile)}
		}
		taken = taken.Opposite()
		fallback = true
	}

	from := s.position
	s.position = s.floor[idx+taken.Offset()]

	evt := core.JumpEvent{
		From:      from,
		To:        s.position,
		Requested: dir,
		Dir:       taken,
		Fallback:  fallback,
	}
	return move{kind: moveJumped, event: evt, frame: s.frameLocked(evt, core.NoTile)}
}

// canJumpLocked reports whether a jump from rank idx in dir stays on the floor.
func (s *State) canJumpLocked(idx int, dir core.Direction) bool {
	if dir == core.Left {
		return idx >= 2
	}
	return idx <= len(s.floor)-3
}

// fall is the result of one drop attempt.
type fall struct {
	kind  fallKind
	event core.DropEvent
	frame core.Frame
}

type fallKind int

const (
	fallHalted  fallKind = iota // game already stopped
	fallSkipped                 // floor too small to drop
	fallDropped
	fallFatal // the character's tile fell, defeat recorded
)

// drop removes one random remaining tile in a single critical section.
// Ids are drawn from [0, tiles) until one that is still present comes up.
func (s *State) drop(rng core.Rand) fall {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return fall{kind: fallHalted}
	}
	if s.terminalBySizeLocked() {
		return fall{kind: fallSkipped}
	}

	var (
		id  int
		idx int
		ok  bool
	)
	for !ok {
		id = rng.Intn(s.tiles)
		idx, ok = slices.BinarySearch(s.floor, id)
	}
	s.floor = slices.Delete(s.floor, idx, idx+1)

	evt := core.DropEvent{Tile: id, Fatal: id == s.position}
	kind := fallDropped
	if evt.Fatal {
		s.stopLocked(core.Defeat)
		kind = fallFatal
	}
	return fall{kind: kind, event: evt, frame: s.frameLocked(evt, id)}
}
