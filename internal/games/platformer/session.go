package platformer

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/platformer/internal/core"
)

// Result is the report of a finished session. Victory and defeat are both
// successful completions; they differ only in Outcome.
type Result struct {
	ID        string
	Tiles     int
	Start     int
	Seed      int64
	Outcome   core.Outcome
	Position  int   // Final tile; the fallen tile after a defeat
	Floor     []int // Remaining tiles
	Jumps     int
	Fallbacks int
	Stalls    int
	Drops     int
	StartedAt time.Time
	Duration  time.Duration
}

// ResultSaver persists finished sessions.
// This allows the session to save results without depending on the storage package.
type ResultSaver interface {
	SaveResult(r Result) error
}

// Option configures a Session.
type Option func(*Session)

// WithRenderer sets the presentation collaborator.
func WithRenderer(r core.Renderer) Option {
	return func(s *Session) {
		s.renderer = r
	}
}

// WithLogger sets the logger used by the session and both actors.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithPacing overrides the default actor delays.
func WithPacing(p Pacing) Option {
	return func(s *Session) {
		s.pacing = p
	}
}

// WithRand injects the random source. By default one is seeded from the
// runtime config.
func WithRand(r core.Rand) Option {
	return func(s *Session) {
		s.rng = r
	}
}

// WithResultSaver sets the optional result saver.
func WithResultSaver(saver ResultSaver) Option {
	return func(s *Session) {
		s.saver = saver
	}
}

// Session orchestrates one game: it runs the dropper in the background,
// drives the jumper in the caller's goroutine, and joins both before
// reporting.
type Session struct {
	cfg      core.RuntimeConfig
	pacing   Pacing
	state    *State
	rng      core.Rand
	renderer core.Renderer
	logger   *log.Logger
	saver    ResultSaver // Optional, can be nil

	jumper  *Jumper
	dropper *Dropper
}

// NewSession validates cfg and prepares a session.
// It returns an error wrapping ErrInvalidConfiguration for bad tile counts
// or starting positions.
func NewSession(cfg core.RuntimeConfig, opts ...Option) (*Session, error) {
	state, err := New(cfg.Tiles, cfg.Start)
	if err != nil {
		return nil, err
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:    cfg,
		pacing: DefaultPacing(),
		state:  state,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.rng == nil {
		s.rng = core.NewRand(cfg.Seed)
	}
	if s.renderer == nil {
		s.renderer = core.NopRenderer{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	s.jumper = NewJumper(state, s.rng, s.pacing.Jump, s.renderer, s.logger.WithPrefix("jumper"))
	s.dropper = NewDropper(state, s.rng, s.pacing.Warmup, s.pacing.Drop, s.renderer, s.logger.WithPrefix("dropper"))
	return s, nil
}

// State returns the shared game state.
func (s *Session) State() *State {
	return s.state
}

// Config returns the runtime config with the resolved seed.
func (s *Session) Config() core.RuntimeConfig {
	return s.cfg
}

// Run plays the game to completion. The returned Result carries the
// outcome; the error is non-nil only when the game was stopped without a
// winner (ctx cancelled, or RequestStop(core.Undecided)).
func (s *Session) Run(ctx context.Context) (Result, error) {
	started := time.Now()
	s.logger.Info("game starting", "tiles", s.cfg.Tiles, "start", s.cfg.Start, "seed", s.cfg.Seed)
	s.renderer.Render(s.state.Frame(nil))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.dropper.Run(ctx)
	}()

	for ctx.Err() == nil && !s.state.Stopped() {
		s.jumper.Step(ctx)
		if s.state.Stopped() {
			break
		}
		randomWait(ctx, s.state, s.rng, s.pacing.Turn)
	}

	// No actor output may follow the report.
	wg.Wait()

	gs := s.state.State()
	result := Result{
		ID:        uuid.NewString(),
		Tiles:     s.cfg.Tiles,
		Start:     s.cfg.Start,
		Seed:      s.cfg.Seed,
		Outcome:   gs.Outcome,
		Position:  gs.Position,
		Floor:     s.state.SnapshotFloor(),
		Jumps:     s.jumper.Jumps(),
		Fallbacks: s.jumper.Fallbacks(),
		Stalls:    s.jumper.Stalls(),
		Drops:     s.dropper.Drops(),
		StartedAt: started,
		Duration:  time.Since(started),
	}

	if !gs.Outcome.Terminal() {
		err := ctx.Err()
		if err == nil {
			err = ErrAborted
		}
		s.logger.Warn("game aborted", "error", err)
		return result, err
	}

	s.logger.Info("game finished", "outcome", result.Outcome, "jumps", result.Jumps, "drops", result.Drops)
	s.renderer.Render(s.state.Frame(core.EndEvent{Outcome: gs.Outcome, Position: gs.Position}))

	if s.saver != nil {
		if err := s.saver.SaveResult(result); err != nil {
			s.logger.Warn("could not save result", "error", err)
		}
	}
	return result, nil
}
