// Package platform holds what the terminal and desktop shells share.
package platform

import (
	"time"

	"github.com/vovakirdan/tui-rescue/internal/core"
	"github.com/vovakirdan/tui-rescue/internal/storage"
)

// Tracker follows a game's state across frames and records every finished
// mission exactly once.
type Tracker struct {
	store    *storage.Store // nil disables recording
	gameID   string
	seed     int64
	runTime  float64 // Seconds of unpaused play in the current mission
	restarts int64   // Missions restarted since Reset, for the run seed
	saved    bool    // Whether the current ending was recorded
}

// NewTracker creates a tracker for a game reset with seed.
func NewTracker(store *storage.Store, gameID string, seed int64) *Tracker {
	return &Tracker{store: store, gameID: gameID, seed: seed}
}

// Reset forgets the current mission after the game was reset with seed.
func (t *Tracker) Reset(seed int64) {
	t.seed = seed
	t.runTime = 0
	t.restarts = 0
	t.saved = false
}

// Observe feeds the state after a step of dt seconds.
// Returns true when this call recorded an ending.
func (t *Tracker) Observe(state core.GameState, dt float64) bool {
	// The game restarts itself; a cleared ending means a new mission.
	if t.saved && !state.GameOver {
		t.saved = false
		t.runTime = 0
		t.restarts++
	}

	if state.Started && !state.Paused && !state.GameOver {
		t.runTime += dt
	}

	if !state.GameOver || t.saved {
		return false
	}
	t.saved = true
	t.record(state)
	return true
}

// Seed returns the seed of the current mission.
func (t *Tracker) Seed() int64 {
	return t.seed + t.restarts
}

// Elapsed returns the unpaused play time of the current mission.
func (t *Tracker) Elapsed() time.Duration {
	return time.Duration(t.runTime * float64(time.Second))
}

func (t *Tracker) record(state core.GameState) {
	if t.store == nil {
		return
	}
	if state.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		t.store.SaveScore(t.gameID, state.Score)
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	t.store.SaveRun(storage.Run{
		GameID:   t.gameID,
		Score:    state.Score,
		Rescues:  state.Rescues,
		Target:   state.Target,
		Won:      state.Won,
		Seed:     t.Seed(),
		Duration: t.Elapsed(),
	})
}
