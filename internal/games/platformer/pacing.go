package platformer

import (
	"context"
	"time"

	"github.com/vovakirdan/platformer/internal/config"
	"github.com/vovakirdan/platformer/internal/core"
)

// Pacing holds the randomized delays observed by the actors.
// Each list is sampled uniformly; an empty list means no delay.
type Pacing struct {
	Jump   []time.Duration // after a successful jump
	Turn   []time.Duration // between two jump decisions
	Warmup []time.Duration // before the first drop
	Drop   []time.Duration // after a non-fatal drop and between drop iterations
}

// PacingFromConfig converts millisecond config lists to a Pacing.
func PacingFromConfig(cfg config.PlatformerConfig) Pacing {
	return Pacing{
		Jump:   config.Durations(cfg.Jumper.DelaysMS),
		Turn:   config.Durations(cfg.Jumper.TurnMS),
		Warmup: config.Durations(cfg.Dropper.WarmupMS),
		Drop:   config.Durations(cfg.Dropper.DelaysMS),
	}
}

// DefaultPacing returns the reference pacing: every delay is one of
// 500, 1000 or 1500 ms.
func DefaultPacing() Pacing {
	return PacingFromConfig(config.DefaultPlatformerConfig())
}

// randomWait sleeps for a delay picked from delays. It returns early when
// ctx is done or the game stops, and reports whether the full delay elapsed.
func randomWait(ctx context.Context, s *State, rng core.Rand, delays []time.Duration) bool {
	d := core.Pick(rng, delays)
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	case <-s.Done():
		return false
	}
}
