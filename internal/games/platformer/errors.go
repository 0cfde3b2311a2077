package platformer

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned by New for out-of-range tile counts
// or starting positions. Check with errors.Is.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ErrAborted is returned by Session.Run when the game stopped undecided.
var ErrAborted = errors.New("platformer: game aborted")

// invalidConfig wraps ErrInvalidConfiguration with a reason.
func invalidConfig(format string, args ...any) error {
	return fmt.Errorf("platformer: %w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}
