package rescue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(target int) (*Session, *Recorder) {
	rec := &Recorder{}
	return NewSession(SessionConfig{TargetRescues: target, RescueReward: 80}, rec), rec
}

func TestSessionStartsNotStarted(t *testing.T) {
	s, rec := newTestSession(3)

	assert.Equal(t, StatusNotStarted, s.Status())
	assert.Equal(t, OutcomeNone, s.Outcome())
	assert.Zero(t, s.Score())
	assert.Zero(t, s.Rescues())
	assert.Empty(t, rec.Events)
}

func TestSessionStartOnlyFromNotStarted(t *testing.T) {
	s, rec := newTestSession(3)

	require.True(t, s.Start())
	assert.Equal(t, StatusRunning, s.Status())
	assert.False(t, s.Start(), "second Start should be a no-op")
	assert.Equal(t, []EventKind{EventMissionStart}, rec.Kinds())
}

func TestSessionInvalidTransitionsAreNoOps(t *testing.T) {
	s, rec := newTestSession(3)

	assert.False(t, s.Pause(), "pause while NotStarted")
	assert.False(t, s.Resume(), "resume while NotStarted")
	assert.False(t, s.TogglePause(), "toggle while NotStarted")
	assert.False(t, s.RecordRescue(), "rescue while NotStarted")
	assert.False(t, s.RecordCollision(), "collision while NotStarted")
	assert.False(t, s.AddScore(10), "score while NotStarted")

	assert.Equal(t, StatusNotStarted, s.Status())
	assert.Zero(t, s.Score())
	assert.Zero(t, s.Rescues())
	assert.Empty(t, rec.Events)
}

func TestSessionPauseResume(t *testing.T) {
	s, _ := newTestSession(3)
	s.Start()

	require.True(t, s.TogglePause())
	assert.Equal(t, StatusPaused, s.Status())

	// Frozen while paused
	assert.False(t, s.RecordRescue())
	assert.False(t, s.RecordCollision())
	assert.False(t, s.AddScore(5))
	assert.Zero(t, s.Score())

	require.True(t, s.TogglePause())
	assert.Equal(t, StatusRunning, s.Status())

	assert.False(t, s.Resume(), "resume while running")
	assert.True(t, s.Pause())
	assert.False(t, s.Pause(), "pause while paused")
}

func TestSessionRescueIncrementsScoreAndCount(t *testing.T) {
	s, rec := newTestSession(3)
	s.Start()

	require.True(t, s.RecordRescue())
	assert.Equal(t, 1, s.Rescues())
	assert.Equal(t, 80, s.Score())
	assert.Equal(t, 1, rec.Count(EventEntityRescued))
	assert.Equal(t, StatusRunning, s.Status())
}

func TestSessionWinExactlyOnce(t *testing.T) {
	s, rec := newTestSession(3)
	s.Start()

	for i := 0; i < 3; i++ {
		s.RecordRescue()
	}
	assert.Equal(t, StatusEnded, s.Status())
	assert.Equal(t, OutcomeWin, s.Outcome())
	assert.Equal(t, 3, s.Rescues())

	// Further rescues are ignored once ended
	assert.False(t, s.RecordRescue())
	assert.Equal(t, 3, s.Rescues())
	assert.Equal(t, 1, rec.Count(EventWin))
	assert.Zero(t, rec.Count(EventLoss))
}

func TestSessionCollisionKeepsProgress(t *testing.T) {
	s, rec := newTestSession(3)
	s.Start()
	s.AddScore(12)
	s.RecordRescue()

	require.True(t, s.RecordCollision())
	assert.Equal(t, StatusEnded, s.Status())
	assert.Equal(t, OutcomeLoss, s.Outcome())
	assert.Equal(t, 92, s.Score())
	assert.Equal(t, 1, s.Rescues())
	assert.Equal(t, 1, rec.Count(EventLoss))

	assert.False(t, s.RecordCollision(), "second collision")
	assert.False(t, s.TogglePause(), "pause after end")
	assert.Equal(t, 1, rec.Count(EventLoss))
}

func TestSessionReset(t *testing.T) {
	s, _ := newTestSession(2)
	s.Start()
	s.RecordRescue()
	s.RecordRescue()
	require.True(t, s.Ended())
	gen := s.Generation()

	s.Reset()

	assert.Equal(t, StatusNotStarted, s.Status())
	assert.Equal(t, OutcomeNone, s.Outcome())
	assert.Zero(t, s.Score())
	assert.Zero(t, s.Rescues())
	assert.NotEqual(t, gen, s.Generation())
	assert.True(t, s.Start(), "a reset session can start again")
}

func TestSessionScoreMonotonicWhileRunning(t *testing.T) {
	s, _ := newTestSession(100)
	s.Start()

	prevScore, prevRescues := s.Score(), s.Rescues()
	for i := 0; i < 50; i++ {
		switch i % 3 {
		case 0:
			s.AddScore(i)
		case 1:
			s.AddScore(-5) // negative points are rejected
		case 2:
			s.RecordRescue()
		}
		assert.GreaterOrEqual(t, s.Score(), prevScore)
		assert.GreaterOrEqual(t, s.Rescues(), prevRescues)
		prevScore, prevRescues = s.Score(), s.Rescues()
	}
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession(SessionConfig{}, nil)
	assert.Equal(t, 1, s.Target(), "target is at least one")

	// Nil announcer must not panic
	s.Start()
	s.RecordRescue()
	assert.Equal(t, OutcomeWin, s.Outcome())
}
