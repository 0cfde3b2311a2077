package platformer

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/platformer/internal/core"
)

// Jumper moves the character two surviving tiles at a time.
// A Jumper is driven by a single goroutine; its counters are not locked.
type Jumper struct {
	state    *State
	rng      core.Rand
	delays   []time.Duration
	renderer core.Renderer
	logger   *log.Logger

	jumps     int
	fallbacks int
	stalls    int
}

// NewJumper creates a jumper acting on state. A nil renderer or logger
// discards output.
func NewJumper(state *State, rng core.Rand, delays []time.Duration, renderer core.Renderer, logger *log.Logger) *Jumper {
	if renderer == nil {
		renderer = core.NopRenderer{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Jumper{
		state:    state,
		rng:      rng,
		delays:   delays,
		renderer: renderer,
		logger:   logger,
	}
}

// JumpLeft jumps two remaining tiles to the left, falling back to the right.
func (j *Jumper) JumpLeft(ctx context.Context) bool {
	return j.Jump(ctx, core.Left)
}

// JumpRight jumps two remaining tiles to the right, falling back to the left.
func (j *Jumper) JumpRight(ctx context.Context) bool {
	return j.Jump(ctx, core.Right)
}

// Step jumps in a uniformly random direction.
func (j *Jumper) Step(ctx context.Context) bool {
	return j.Jump(ctx, core.Direction(j.rng.Intn(2)))
}

// Jump makes one jump decision and reports whether the character moved.
// When the floor is down to its last tiles the jump records a victory
// instead. Unavailable jumps never fail; they fall back or stall.
func (j *Jumper) Jump(ctx context.Context, dir core.Direction) bool {
	m := j.state.jump(dir)

	switch m.kind {
	case moveHalted:
		return false

	case moveVictory:
		j.logger.Debug("too few tiles left to jump", "remaining", j.state.Remaining())
		return false

	case moveStalled:
		j.stalls++
		evt := m.event.(core.StallEvent)
		j.logger.Debug("cannot jump", "direction", dir, "tile", evt.Position, "index", evt.Index)
		j.renderer.Render(m.frame)
		return false
	}

	evt := m.event.(core.JumpEvent)
	j.jumps++
	if evt.Fallback {
		j.fallbacks++
	}
	j.logger.Debug("jumped", "from", evt.From, "to", evt.To, "direction", evt.Dir, "fallback", evt.Fallback)
	j.renderer.Render(m.frame)

	randomWait(ctx, j.state, j.rng, j.delays)
	return true
}

// Jumps returns the number of successful jumps.
func (j *Jumper) Jumps() int {
	return j.jumps
}

// Fallbacks returns how many jumps went the opposite way.
func (j *Jumper) Fallbacks() int {
	return j.fallbacks
}

// Stalls returns how many decisions found no jump available.
func (j *Jumper) Stalls() int {
	return j.stalls
}
