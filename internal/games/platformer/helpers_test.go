package platformer

import (
	"slices"
	"sync"

	"github.com/vovakirdan/platformer/internal/core"
)

// seqRand replays a fixed sequence of values, reduced modulo n.
type seqRand struct {
	mu   sync.Mutex
	vals []int
	i    int
	ns   []int // every n passed to Intn
}

func newSeqRand(vals ...int) *seqRand {
	return &seqRand{vals: vals}
}

func (r *seqRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ns = append(r.ns, n)
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

// removeTile drops a specific tile through the regular drop path.
// The tile must still be present.
func (s *State) removeTile(id int) core.DropEvent {
	if !s.Contains(id) {
		panic("removeTile: tile already gone")
	}
	return s.drop(newSeqRand(id)).event
}

// frameLog records every rendered frame.
type frameLog struct {
	mu     sync.Mutex
	frames []core.Frame
}

func (l *frameLog) Render(f core.Frame) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.frames = append(l.frames, f)
}

func (l *frameLog) all() []core.Frame {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.frames)
}

// saverFunc adapts a function to ResultSaver.
type saverFunc func(Result) error

func (f saverFunc) SaveResult(r Result) error {
	return f(r)
}

// consistent reports whether the state invariants hold at this instant.
func (s *State) consistent() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !slices.IsSorted(s.floor) {
		return false
	}
	for i := 1; i < len(s.floor); i++ {
		if s.floor[i] == s.floor[i-1] {
			return false
		}
	}
	if len(s.floor) > 0 && (s.floor[0] < 0 || s.floor[len(s.floor)-1] >= s.tiles) {
		return false
	}
	if s.stopped != s.outcome.Terminal() {
		return false
	}
	_, onFloor := slices.BinarySearch(s.floor, s.position)
	switch {
	case !s.stopped:
		return onFloor
	case s.outcome == core.Defeat:
		return !onFloor
	default:
		return onFloor
	}
}
