package platformer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/platformer/internal/core"
)

func TestNewValidConfigurations(t *testing.T) {
	for n := core.MinTiles; n <= core.MaxTiles; n++ {
		for pos := 0; pos < n; pos++ {
			s, err := New(n, pos)
			require.NoError(t, err, "New(%d, %d)", n, pos)
			assert.Equal(t, pos, s.CurrentPosition())
			assert.Equal(t, n, s.Remaining())
		}
	}
}

func TestNewInvalidConfigurations(t *testing.T) {
	testCases := []struct {
		name     string
		n, start int
	}{
		{"zero tiles", 0, 0},
		{"negative tiles", -4, 0},
		{"too few tiles", 2, 0},
		{"too many tiles", 101, 0},
		{"negative position", 5, -1},
		{"position past the end", 5, 5},
		{"position far outside", 5, 42},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := New(tc.n, tc.start)
			require.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Nil(t, s)
		})
	}
}

func TestNewInitialState(t *testing.T) {
	s, err := New(5, 2)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, s.SnapshotFloor())
	assert.Equal(t, core.GameState{Outcome: core.Undecided, Position: 2, Remaining: 5}, s.State())
	assert.False(t, s.Stopped())
	assert.False(t, s.IsTerminalBySize())

	select {
	case <-s.Done():
		t.Fatal("Done() closed before any stop request")
	default:
	}
}

func TestSnapshotFloorIsACopy(t *testing.T) {
	s, err := New(5, 2)
	require.NoError(t, err)

	snap := s.SnapshotFloor()
	snap[0] = 99
	assert.Equal(t, []int{0, 1, 2, 3, 4}, s.SnapshotFloor())
}

func TestRequestStopIsWriteOnce(t *testing.T) {
	s, err := New(5, 2)
	require.NoError(t, err)

	assert.True(t, s.RequestStop(core.Victory))
	assert.False(t, s.RequestStop(core.Defeat))
	assert.False(t, s.RequestStop(core.Victory))

	assert.Equal(t, core.Victory, s.Outcome())
	assert.True(t, s.Stopped())
	<-s.Done() // must be closed
}

func TestRequestStopConcurrentCallers(t *testing.T) {
	for i := 0; i < 50; i++ {
		s, err := New(10, 5)
		require.NoError(t, err)

		var (
			wg      sync.WaitGroup
			winners = make(chan core.Outcome, 20)
		)
		for j := 0; j < 20; j++ {
			outcome := core.Victory
			if j%2 == 1 {
				outcome = core.Defeat
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				if s.RequestStop(outcome) {
					winners <- outcome
				}
			}()
		}
		wg.Wait()
		close(winners)

		var won []core.Outcome
		for o := range winners {
			won = append(won, o)
		}
		require.Len(t, won, 1, "exactly one caller must win")
		assert.Equal(t, won[0], s.Outcome())
	}
}

func TestIsTerminalBySize(t *testing.T) {
	s, err := New(5, 2)
	require.NoError(t, err)

	s.removeTile(0)
	assert.False(t, s.IsTerminalBySize(), "4 tiles left")

	s.removeTile(4)
	assert.True(t, s.IsTerminalBySize(), "3 tiles left")
	assert.Equal(t, []int{1, 2, 3}, s.SnapshotFloor())
}

func TestContains(t *testing.T) {
	s, err := New(6, 0)
	require.NoError(t, err)

	s.removeTile(3)
	assert.False(t, s.Contains(3))
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(6))
	assert.False(t, s.Contains(-1))
}

func TestFrameIsConsistentSnapshot(t *testing.T) {
	s, err := New(5, 1)
	require.NoError(t, err)

	f := s.Frame(nil)
	assert.Equal(t, 5, f.Tiles)
	assert.Equal(t, 1, f.Position)
	assert.Equal(t, core.NoTile, f.Dropped)
	assert.Nil(t, f.Event)
	assert.True(t, f.Has(1))

	f.Floor[0] = 42
	assert.True(t, s.Contains(0), "frame floor must not alias the state")
}
