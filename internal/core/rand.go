package core

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the random source injected into the actors.
type Rand interface {
	// Intn returns a uniform int in [0, n). n must be positive.
	Intn(n int) int
}

// lockedRand serializes access to a *rand.Rand, which is not safe for
// concurrent use on its own.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRand returns a goroutine-safe source seeded with seed.
// A zero seed is replaced with the current time.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedRand{rng: rand.New(rand.NewSource(seed))}
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

// Pick returns a uniformly chosen element of items.
// It returns the zero value for an empty slice.
func Pick[T any](r Rand, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[r.Intn(len(items))]
}
