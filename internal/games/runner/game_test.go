package runner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-rescue/internal/config"
	"github.com/vovakirdan/tui-rescue/internal/core"
	"github.com/vovakirdan/tui-rescue/internal/rescue"
)

const frame = 0.02

// quietConfig has no obstacles, one far-away citizen and no difficulty
// scaling, so tests can place entities exactly where they need them.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Road.ObstacleCount = 0
	cfg.Road.CitizenCount = 1
	cfg.Road.CitizenStart = 100000
	cfg.Difficulty.Enabled = false
	cfg.Scoring.SupportInterval = 0
	return cfg
}

func newGame(t *testing.T, cfg config.RunnerConfig) (*Game, *rescue.Recorder) {
	t.Helper()
	g := NewWithConfig(cfg)
	rec := &rescue.Recorder{}
	g.SetAnnouncer(rec)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	return g, rec
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func run(g *Game, frames int) {
	for i := 0; i < frames; i++ {
		g.Step(core.NewInputFrame(), frame)
	}
}

func TestRunnerIdle(t *testing.T) {
	g, rec := newGame(t, quietConfig())

	run(g, 100)

	st := g.State()
	assert.False(t, st.Started)
	assert.Zero(t, st.Score)
	assert.Zero(t, g.World().Hero().Progress, "hero does not move before the mission starts")
	assert.Empty(t, rec.Events)
}

func TestRunnerDistanceScore(t *testing.T) {
	g, rec := newGame(t, quietConfig())

	g.Step(input(core.ActionConfirm), frame)
	require.True(t, g.State().Started)
	assert.Equal(t, []rescue.EventKind{rescue.EventMissionStart}, rec.Kinds())

	run(g, 49) // one second in total at robot speed 460

	assert.InDelta(t, 460, g.World().Hero().Progress, 1e-6)
	// 460 * 0.08 = 36.8, the remainder is carried
	assert.Equal(t, 36, g.State().Score)
}

func TestRunnerSteering(t *testing.T) {
	g, _ := newGame(t, quietConfig())

	g.Step(input(core.ActionMoveRight), frame)
	assert.True(t, g.State().Started, "steering starts the mission")
	assert.Equal(t, 180.0, g.World().Hero().LaneTarget)

	for i := 0; i < 5; i++ {
		g.Step(input(core.ActionMoveRight), frame)
	}
	assert.Equal(t, 520.0, g.World().Hero().LaneTarget, "clamped to the lane limit")

	run(g, 100)
	assert.InDelta(t, 520, g.World().Hero().Pos.X, 0.5)
}

func TestRunnerPointerSteersToColumn(t *testing.T) {
	g, _ := newGame(t, quietConfig())

	_, right := roadColumns(80)
	in := core.NewInputFrame()
	in.PointerDownAt(right, 10)
	g.Step(in, frame)

	assert.True(t, g.State().Started)
	assert.InDelta(t, 520, g.World().Hero().LaneTarget, 1e-9)
}

func TestRunnerCollisionEndsInLoss(t *testing.T) {
	cfg := quietConfig()
	cfg.Road.ObstacleCount = 1
	cfg.Road.ObstacleStart = 100000
	g, rec := newGame(t, cfg)

	g.Step(input(core.ActionConfirm), frame)
	run(g, 10)
	scoreBefore := g.State().Score

	hero := g.World().Hero()
	g.World().Registry().Obstacles()[0].Pos = core.V(hero.Pos.X, hero.Pos.Y+40)
	g.Step(core.NewInputFrame(), frame)

	st := g.State()
	assert.True(t, st.GameOver)
	assert.False(t, st.Won)
	assert.GreaterOrEqual(t, st.Score, scoreBefore)
	assert.Equal(t, 1, rec.Count(rescue.EventLoss))

	// Frozen after the end
	progress := hero.Progress
	run(g, 20)
	assert.Equal(t, progress, g.World().Hero().Progress)
}

func TestRunnerContactRescueAndWin(t *testing.T) {
	cfg := quietConfig()
	cfg.Session.TargetRescues = 3
	cfg.Road.CitizenCount = 4
	g, rec := newGame(t, cfg)
	g.Step(input(core.ActionConfirm), frame)

	for i := 0; i < 3; i++ {
		hero := g.World().Hero()
		c := &g.World().Registry().Citizens()[i]
		c.Pos = core.V(hero.Pos.X+20, hero.Pos.Y+30)
		g.Step(core.NewInputFrame(), frame)
		assert.Equal(t, i+1, g.State().Rescues)
	}

	st := g.State()
	assert.True(t, st.GameOver)
	assert.True(t, st.Won)
	assert.Equal(t, 1, rec.Count(rescue.EventWin))
	assert.Equal(t, 3, rec.Count(rescue.EventEntityRescued))
	assert.Contains(t, g.Message(), "safe")
}

func TestRunnerRestartAfterEnd(t *testing.T) {
	cfg := quietConfig()
	cfg.Session.TargetRescues = 1
	g, _ := newGame(t, cfg)
	g.Step(input(core.ActionConfirm), frame)

	hero := g.World().Hero()
	g.World().Registry().Citizens()[0].Pos = hero.Pos
	g.Step(core.NewInputFrame(), frame)
	require.True(t, g.State().GameOver)
	gen := g.World().Session().Generation()

	g.Step(input(core.ActionRestart), frame)

	st := g.State()
	assert.False(t, st.GameOver)
	assert.False(t, st.Started)
	assert.Zero(t, st.Score)
	assert.Zero(t, st.Rescues)
	assert.NotEqual(t, gen, g.World().Session().Generation())
	assert.Zero(t, g.World().Respawns().Len(), "pending respawns are cleared")
}

func TestRunnerRestartIgnoredWhileRunning(t *testing.T) {
	g, _ := newGame(t, quietConfig())
	g.Step(input(core.ActionConfirm), frame)
	run(g, 10)

	g.Step(input(core.ActionRestart), frame)
	assert.True(t, g.State().Started)
	assert.Positive(t, g.World().Hero().Progress)
}

func TestRunnerPauseFreezes(t *testing.T) {
	g, _ := newGame(t, quietConfig())
	g.Step(input(core.ActionConfirm), frame)
	run(g, 10)

	g.Step(input(core.ActionPause), frame)
	require.True(t, g.State().Paused)
	progress, score := g.World().Hero().Progress, g.State().Score

	g.Step(input(core.ActionMoveLeft), frame)
	run(g, 50)
	assert.Equal(t, progress, g.World().Hero().Progress)
	assert.Equal(t, score, g.State().Score)
	assert.Zero(t, g.World().Hero().LaneTarget, "steering ignored while paused")

	g.Step(input(core.ActionPause), frame)
	assert.False(t, g.State().Paused)
}

func TestRunnerToggleForm(t *testing.T) {
	g, rec := newGame(t, quietConfig())

	g.Step(input(core.ActionToggleForm), frame)
	assert.True(t, g.State().Started, "transform starts the mission")
	assert.Equal(t, rescue.FormAlternate, g.World().Hero().Form)
	assert.Equal(t, 1, rec.Count(rescue.EventFormChanged))

	run(g, 1)
	assert.Equal(t, 620.0, g.World().Hero().Speed, "vehicle speed")
}

func TestRunnerRecyclesEntitiesBehind(t *testing.T) {
	cfg := quietConfig()
	cfg.Road.ObstacleCount = 1
	cfg.Road.ObstacleStart = 100000
	g, _ := newGame(t, cfg)
	g.Step(input(core.ActionConfirm), frame)

	hero := g.World().Hero()
	g.World().Registry().Obstacles()[0].Pos = core.V(0, hero.Pos.Y-1000)
	g.Step(core.NewInputFrame(), frame)

	o := g.World().Registry().Obstacles()[0]
	ahead := o.Pos.Y - hero.Progress
	assert.GreaterOrEqual(t, ahead, cfg.Road.ObstacleAhead.Min)
	assert.LessOrEqual(t, ahead, cfg.Road.ObstacleAhead.Max)
}

func TestRunnerSupportCalls(t *testing.T) {
	cfg := quietConfig()
	cfg.Scoring.SupportInterval = 1
	g, rec := newGame(t, cfg)
	g.Step(input(core.ActionConfirm), frame)

	run(g, 125) // 2.5 seconds

	assert.Equal(t, 2, rec.Count(rescue.EventSupport))
}

func TestRunnerSameSeedSameRoad(t *testing.T) {
	a, _ := newGame(t, config.DefaultRunnerConfig())
	b, _ := newGame(t, config.DefaultRunnerConfig())

	assert.Equal(t, a.World().Registry().Obstacles(), b.World().Registry().Obstacles())
	assert.Equal(t, a.World().Registry().Citizens(), b.World().Registry().Citizens())
	assert.Len(t, a.World().Registry().Obstacles(), 14)
	assert.Len(t, a.World().Registry().Citizens(), 8)
}

func TestRunnerRender(t *testing.T) {
	g, _ := newGame(t, config.DefaultRunnerConfig())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	assert.Contains(t, screen.Row(0), "Score: 0")
	assert.Contains(t, screen.Row(0), "Saved: 0/8")
	assert.True(t, strings.ContainsRune(screen.String(), HeadChar), "hero is drawn")

	g.Step(input(core.ActionConfirm), frame)
	g.Step(input(core.ActionPause), frame)
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")
}

func TestRunnerScene(t *testing.T) {
	g, _ := newGame(t, config.DefaultRunnerConfig())
	snap := g.Scene()

	assert.Equal(t, rescue.StatusNotStarted, snap.Status)
	assert.Equal(t, g.Message(), snap.Message)
	assert.Len(t, snap.Obstacles, 14)
}
