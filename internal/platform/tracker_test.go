package platform

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-rescue/internal/core"
	"github.com/vovakirdan/tui-rescue/internal/storage"
)

func TestTrackerWithoutStore(t *testing.T) {
	tr := NewTracker(nil, "runner", 3)

	assert.False(t, tr.Observe(core.GameState{Started: true}, 1))
	assert.True(t, tr.Observe(core.GameState{Started: true, GameOver: true}, 1))
	assert.False(t, tr.Observe(core.GameState{Started: true, GameOver: true}, 1))
	assert.Equal(t, time.Second, tr.Elapsed())
}

func TestTrackerCountsOnlyUnpausedPlay(t *testing.T) {
	tr := NewTracker(nil, "patrol", 0)

	tr.Observe(core.GameState{}, 0.5)
	tr.Observe(core.GameState{Started: true}, 0.5)
	tr.Observe(core.GameState{Started: true, Paused: true}, 0.5)
	tr.Observe(core.GameState{Started: true}, 0.25)

	assert.Equal(t, 750*time.Millisecond, tr.Elapsed())
}

func TestTrackerRecordsEachMission(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	tr := NewTracker(store, "runner", 40)
	ended := core.GameState{Started: true, GameOver: true, Score: 90, Rescues: 1, Target: 8}

	tr.Observe(core.GameState{Started: true}, 2)
	require.True(t, tr.Observe(ended, 0))
	require.False(t, tr.Observe(ended, 0))

	tr.Observe(core.GameState{Started: true}, 1)
	assert.Equal(t, int64(41), tr.Seed())
	require.True(t, tr.Observe(core.GameState{Started: true, GameOver: true, Won: true, Score: 640, Rescues: 8, Target: 8}, 0))

	runs, err := store.RecentRuns("runner", 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.True(t, runs[0].Won)
	assert.Equal(t, int64(41), runs[0].Seed)
	assert.Equal(t, time.Second, runs[0].Duration)
	assert.False(t, runs[1].Won)
	assert.Equal(t, int64(40), runs[1].Seed)
	assert.Equal(t, 2*time.Second, runs[1].Duration)

	high, err := store.HighScore("runner")
	require.NoError(t, err)
	assert.Equal(t, 640, high)

	tr.Reset(99)
	assert.Equal(t, int64(99), tr.Seed())
	assert.Zero(t, tr.Elapsed())
}
