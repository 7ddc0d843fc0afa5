// Package runner implements the lane runner: the hero runs up a city road,
// steers between lanes, switches between robot and vehicle, saves citizens
// on contact and loses on the first collision with an obstacle.
package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-rescue/internal/config"
	"github.com/vovakirdan/tui-rescue/internal/core"
	"github.com/vovakirdan/tui-rescue/internal/registry"
	"github.com/vovakirdan/tui-rescue/internal/rescue"
)

// ID is the registry identifier of the runner.
const ID = "runner"

// Game implements the lane runner.
type Game struct {
	cfg        config.RunnerConfig
	runtime    core.RuntimeConfig
	view       [2]int // Size of the last rendered screen
	layout     roadLayout
	world      *rescue.World
	difficulty *config.DifficultyManager
	announcer  rescue.Announcer
	carry      float64 // Fractional distance points not yet credited
	support    float64 // Running seconds since the last support call
	message    string  // Status line
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset ("" keeps the config file).
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new runner instance.
func New() *Game {
	return &Game{announcer: rescue.NopAnnouncer{}}
}

// NewWithConfig creates a runner that skips config loading.
func NewWithConfig(cfg config.RunnerConfig) *Game {
	g := New()
	g.cfg = cfg
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "City Runner"
}

// SetAnnouncer routes session events to a.
func (g *Game) SetAnnouncer(a rescue.Announcer) {
	if a == nil {
		a = rescue.NopAnnouncer{}
	}
	g.announcer = a
}

// Reset initializes the game, or starts a fresh round on the existing world.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.world == nil {
		if g.cfg.Session.TargetRescues == 0 {
			cfg, err := config.LoadRunner(configPath)
			if err != nil {
				cfg = config.DefaultRunnerConfig()
			}
			g.cfg = cfg
		}
		config.ApplyRunnerPreset(&g.cfg, difficultyPreset)

		g.layout = newRoadLayout(g.cfg)
		g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
		g.world = rescue.NewWorld(worldConfig(g.cfg), g.layout, g.announcer, runtime.Seed)
	} else {
		g.world.Reset(runtime.Seed)
	}

	g.carry = 0
	g.support = 0
	g.message = "Press Enter or steer to start the mission"
}

func worldConfig(cfg config.RunnerConfig) rescue.WorldConfig {
	return rescue.WorldConfig{
		Session: rescue.SessionConfig{
			TargetRescues: cfg.Session.TargetRescues,
			RescueReward:  cfg.Session.RescueReward,
		},
		Integrator: rescue.Integrator{
			SmoothingRate: cfg.Motion.SmoothingRate,
			LaneLimit:     cfg.Motion.LaneLimit,
			MaxDelta:      cfg.Motion.MaxDelta,
		},
		RespawnDelay: cfg.Session.RespawnDelay,
		Reach:        [2]float64{cfg.Reach.Primary, cfg.Reach.Alternate},
	}
}

// Step applies input, then advances the simulation by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	g.handleInput(in)

	dt, running := g.world.BeginFrame(dt)
	if running {
		g.simulate(dt)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) handleInput(in core.InputFrame) {
	session := g.world.Session()

	if in.Has(core.ActionRestart) && session.Ended() {
		g.runtime.Seed++
		g.Reset(g.runtime)
		return
	}

	if in.Has(core.ActionPause) && g.world.TogglePause() {
		if session.Status() == rescue.StatusPaused {
			g.message = "Paused"
		} else {
			g.message = "Resumed"
		}
	}

	if in.Has(core.ActionConfirm) {
		g.start()
	}

	if in.Has(core.ActionToggleForm) {
		g.start()
		if g.world.ToggleForm() {
			g.message = "Transform: " + g.world.Hero().Form.String()
		}
	}

	integ := g.world.Integrator()
	hero := g.world.Hero()
	if in.Has(core.ActionMoveLeft) || in.Has(core.ActionMoveRight) {
		step := 0.0
		if in.Has(core.ActionMoveLeft) {
			step -= g.cfg.Hero.LaneStep
		}
		if in.Has(core.ActionMoveRight) {
			step += g.cfg.Hero.LaneStep
		}
		g.start()
		if session.Running() {
			integ.Steer(hero, step)
		}
	}

	if p := in.Pointer; p != nil {
		g.start()
		if session.Running() {
			integ.SteerTo(hero, g.columnToLane(p.X))
		}
	}

	if in.Has(core.ActionInteract) {
		g.rescueNearest()
	}
}

// start begins the mission if it has not started yet.
func (g *Game) start() {
	if g.world.Start() {
		g.message = "Mission started"
	}
}

func (g *Game) simulate(dt float64) {
	hero := g.world.Hero()
	integ := g.world.Integrator()
	session := g.world.Session()

	hero.Speed = g.difficulty.Speed(g.formSpeed(hero.Form), session.Score(), g.world.Clock())
	integ.Lateral(hero, dt)
	dist := integ.Advance(hero, dt)

	g.carry += dist * g.cfg.Scoring.DistanceRate
	if pts := int(g.carry); pts > 0 {
		session.AddScore(pts)
		g.carry -= float64(pts)
	}

	if g.world.CheckCollision() {
		g.message = "Collision! Press R to try again"
		return
	}

	// Contact rescue: running into a citizen counts as an interaction.
	if t, ok := g.world.NearestCitizen(); ok && t.InRange {
		if g.rescueNearest() && session.Ended() {
			return
		}
	}

	g.recycle()
	g.callSupport(dt)
}

func (g *Game) rescueNearest() bool {
	if !g.world.InteractNearest() {
		return false
	}
	session := g.world.Session()
	if session.Outcome() == rescue.OutcomeWin {
		g.message = "The city is safe! Press R for a new round"
	} else {
		g.message = fmt.Sprintf("Citizen saved! %d/%d", session.Rescues(), session.Target())
	}
	return true
}

// recycle moves entities that fell behind the hero back up the road.
func (g *Game) recycle() {
	hero := *g.world.Hero()
	rng := g.world.RNG()
	reg := g.world.Registry()

	for i, e := range reg.Obstacles() {
		if g.layout.behind(e, hero) {
			g.world.Recycle(rescue.Ref{Kind: rescue.KindObstacle, Index: i},
				g.layout.ahead(g.cfg.Road.ObstacleAhead, hero, rng))
		}
	}
	for i, e := range reg.Citizens() {
		if !e.Resolved && g.layout.behind(e, hero) {
			g.world.Recycle(rescue.Ref{Kind: rescue.KindCitizen, Index: i},
				g.layout.ahead(g.cfg.Road.CitizenAhead, hero, rng))
		}
	}
}

// callSupport announces a support call at most once per support interval.
func (g *Game) callSupport(dt float64) {
	if g.cfg.Scoring.SupportInterval <= 0 {
		return
	}
	g.support += dt
	if g.support >= g.cfg.Scoring.SupportInterval {
		g.support = 0
		g.world.Session().Announce(rescue.EventSupport)
	}
}

func (g *Game) formSpeed(f rescue.Form) float64 {
	if f == rescue.FormAlternate {
		return g.cfg.Hero.AlternateSpeed
	}
	return g.cfg.Hero.PrimarySpeed
}

// columnToLane converts a screen column to a lateral world position.
func (g *Game) columnToLane(col int) float64 {
	w, _ := g.viewSize()
	left, right := roadColumns(w)
	if right <= left {
		return 0
	}
	t := float64(col-left) / float64(right-left)
	return (t*2 - 1) * g.cfg.Motion.LaneLimit
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.world.Session()
	return core.GameState{
		Score:    s.Score(),
		Rescues:  s.Rescues(),
		Target:   s.Target(),
		Started:  s.Status() != rescue.StatusNotStarted,
		Paused:   s.Status() == rescue.StatusPaused,
		GameOver: s.Ended(),
		Won:      s.Outcome() == rescue.OutcomeWin,
	}
}

// Scene returns a snapshot of the world for shape-based frontends.
func (g *Game) Scene() rescue.Snapshot {
	snap := g.world.Snapshot()
	snap.Message = g.message
	snap.Scrolling = true
	limit := g.cfg.Motion.LaneLimit
	snap.Area = core.Bounds{MinX: -limit, MaxX: limit, MinY: math.Inf(-1), MaxY: math.Inf(1)}
	return snap
}

// viewSize returns the size of the last rendered screen, falling back to
// the runtime size before the first render.
func (g *Game) viewSize() (int, int) {
	if g.view[0] > 0 && g.view[1] > 0 {
		return g.view[0], g.view[1]
	}
	return g.runtime.ScreenW, g.runtime.ScreenH
}

// World exposes the underlying world, mainly for tests and tools.
func (g *Game) World() *rescue.World {
	return g.world
}

// Message returns the current status line.
func (g *Game) Message() string {
	return g.message
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
