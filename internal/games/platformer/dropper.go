package platformer

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/platformer/internal/core"
)

// Dropper removes random tiles from the floor in the background.
// It only ever records a defeat; victory belongs to the jumper.
type Dropper struct {
	state    *State
	rng      core.Rand
	warmup   []time.Duration
	delays   []time.Duration
	renderer core.Renderer
	logger   *log.Logger

	drops int
}

// NewDropper creates a dropper acting on state. A nil renderer or logger
// discards output.
func NewDropper(state *State, rng core.Rand, warmup, delays []time.Duration, renderer core.Renderer, logger *log.Logger) *Dropper {
	if renderer == nil {
		renderer = core.NopRenderer{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Dropper{
		state:    state,
		rng:      rng,
		warmup:   warmup,
		delays:   delays,
		renderer: renderer,
		logger:   logger,
	}
}

// TileFalls drops one random remaining tile. It returns the drop and true,
// or false when nothing fell because the game stopped or the floor is
// already down to its last tiles.
func (d *Dropper) TileFalls(ctx context.Context) (core.DropEvent, bool) {
	f := d.state.drop(d.rng)

	switch f.kind {
	case fallHalted, fallSkipped:
		return core.DropEvent{}, false

	case fallFatal:
		d.drops++
		d.logger.Debug("tile under the character fell", "tile", f.event.Tile)
		d.renderer.Render(f.frame)
		return f.event, true
	}

	d.drops++
	d.logger.Debug("tile dropped", "tile", f.event.Tile, "remaining", len(f.frame.Floor))
	d.renderer.Render(f.frame)

	randomWait(ctx, d.state, d.rng, d.delays)
	return f.event, true
}

// Run drops tiles until the stop flag is set or ctx is done.
// The flag is polled once per iteration.
func (d *Dropper) Run(ctx context.Context) {
	d.logger.Debug("dropper starting")
	defer d.logger.Debug("dropper finished", "drops", d.drops)

	randomWait(ctx, d.state, d.rng, d.warmup)

	for ctx.Err() == nil && !d.state.Stopped() {
		d.TileFalls(ctx)
		randomWait(ctx, d.state, d.rng, d.delays)
	}
}

// Drops returns the number of tiles this dropper removed.
func (d *Dropper) Drops() int {
	return d.drops
}
