// Package patrol implements the city patrol: the hero walks freely around a
// bounded city, finds citizens with problems and solves them to earn
// reputation. The shift is won after the target number of missions.
package patrol

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-rescue/internal/config"
	"github.com/vovakirdan/tui-rescue/internal/core"
	"github.com/vovakirdan/tui-rescue/internal/registry"
	"github.com/vovakirdan/tui-rescue/internal/rescue"
)

// ID is the registry identifier of the patrol.
const ID = "patrol"

// Directions indexed into Game.hold.
const (
	dirLeft = iota
	dirRight
	dirUp
	dirDown
)

// companion trails the hero around the city.
type companion struct {
	Pos  core.Vec2
	Rate float64 // Follow smoothing rate per second
}

// Game implements the city patrol.
type Game struct {
	cfg          config.PatrolConfig
	runtime      core.RuntimeConfig
	view         [2]int // Size of the last rendered screen
	layout       cityLayout
	world        *rescue.World
	difficulty   *config.DifficultyManager
	announcer    rescue.Announcer
	hold         [4]float64 // Seconds each direction stays held
	sprint       float64    // Seconds sprint stays held
	dest         *core.Vec2 // Walk-to target from a pointer press
	now          float64    // Seconds since reset, paused time included
	message      string
	messageUntil float64
	companions   [2]companion
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

// New creates a new patrol instance.
func New() *Game {
	return &Game{announcer: rescue.NopAnnouncer{}}
}

// NewWithConfig creates a patrol that skips config loading.
func NewWithConfig(cfg config.PatrolConfig) *Game {
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
	return "City Patrol"
}

// SetAnnouncer routes session events to a.
func (g *Game) SetAnnouncer(a rescue.Announcer) {
	if a == nil {
		a = rescue.NopAnnouncer{}
	}
	g.announcer = a
}

// Reset initializes the game, or starts a fresh shift on the existing world.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.world == nil {
		if g.cfg.Session.TargetRescues == 0 {
			cfg, err := config.LoadPatrol(configPath)
			if err != nil {
				cfg = config.DefaultPatrolConfig()
			}
			g.cfg = cfg
		}
		config.ApplyPatrolPreset(&g.cfg, difficultyPreset)

		g.layout = cityLayout{city: g.cfg.City, hero: g.cfg.Hero, issues: g.cfg.Issues}
		g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
		g.world = rescue.NewWorld(worldConfig(g.cfg), g.layout, g.announcer, runtime.Seed)
	} else {
		g.world.Reset(runtime.Seed)
	}

	hero := g.world.Hero().Pos
	g.companions = [2]companion{
		{Pos: hero.Add(core.V(-60, 45)), Rate: 5.4},
		{Pos: hero.Add(core.V(75, -25)), Rate: 7.2},
	}
	g.hold = [4]float64{}
	g.sprint = 0
	g.dest = nil
	g.now = 0
	g.pop("Patrol is out in the city. Press Enter or move to start", g.cfg.Messages.Long)
}

func worldConfig(cfg config.PatrolConfig) rescue.WorldConfig {
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
	g.now += g.world.Integrator().ClampDelta(dt)
	g.handleInput(in)

	dt, running := g.world.BeginFrame(dt)
	if running {
		g.simulate(dt)
	}
	g.refreshMessage()

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
			g.pop("Paused", g.cfg.Messages.Short)
		} else {
			g.pop("Back on patrol", g.cfg.Messages.Short)
		}
	}

	if in.Has(core.ActionConfirm) {
		g.start()
	}

	if in.Has(core.ActionToggleForm) {
		g.start()
		if g.world.ToggleForm() {
			g.pop("Transform: "+g.world.Hero().Form.String(), g.cfg.Messages.Short)
		}
	}

	moves := [4]core.Action{core.ActionMoveLeft, core.ActionMoveRight, core.ActionMoveUp, core.ActionMoveDown}
	for dir, a := range moves {
		if !in.Has(a) {
			continue
		}
		g.start()
		if session.Running() {
			g.hold[dir] = g.cfg.Hero.HoldWindow
			g.dest = nil
		}
	}

	if in.Has(core.ActionSprint) && session.Running() {
		g.sprint = g.cfg.Hero.HoldWindow
	}

	if p := in.Pointer; p != nil {
		g.start()
		if session.Running() {
			dest := g.screenToWorld(p.X, p.Y)
			g.dest = &dest
		}
	}

	if in.Has(core.ActionInteract) {
		g.solve()
	}
}

// start begins the shift if it has not started yet.
func (g *Game) start() {
	if g.world.Start() {
		g.pop("Shift started", g.cfg.Messages.Short)
	}
}

// solve helps the nearest citizen within reach.
func (g *Game) solve() {
	if !g.world.Session().Running() {
		return
	}
	t, ok := g.world.NearestCitizen()
	if !ok || !t.InRange {
		g.pop("Nobody close enough. Walk up and press E", g.cfg.Messages.Short)
		return
	}

	reg := g.world.Registry()
	issue := reg.Entity(t.Ref).Issue
	if !g.world.InteractNearest() {
		return
	}
	if !g.world.Session().Running() {
		g.pop("Every mission done. Press R for a new shift", g.cfg.Messages.Long)
		return
	}
	// The citizen returns later with a new problem.
	reg.Entity(t.Ref).Issue = g.layout.issue(g.world.RNG())
	g.pop(fmt.Sprintf("Solved: %s. The city is safer!", issue), g.cfg.Messages.Long)
}

func (g *Game) simulate(dt float64) {
	hero := g.world.Hero()
	session := g.world.Session()

	var dir core.Vec2
	if g.hold[dirLeft] > 0 {
		dir.X--
	}
	if g.hold[dirRight] > 0 {
		dir.X++
	}
	if g.hold[dirUp] > 0 {
		dir.Y--
	}
	if g.hold[dirDown] > 0 {
		dir.Y++
	}
	for i := range g.hold {
		g.hold[i] = math.Max(0, g.hold[i]-dt)
	}

	speed := g.cfg.Hero.WalkSpeed
	if g.sprint > 0 || hero.Form == rescue.FormAlternate {
		speed = g.cfg.Hero.SprintSpeed
	}
	g.sprint = math.Max(0, g.sprint-dt)
	hero.Speed = speed

	if dir == (core.Vec2{}) && g.dest != nil {
		to := g.dest.Sub(hero.Pos)
		if to.Len() <= math.Max(g.cfg.Hero.ArriveDist, speed*dt) {
			hero.Pos = g.layout.bounds().Clamp(*g.dest)
			g.dest = nil
		} else {
			dir = to
		}
	}
	g.world.Integrator().Glide(hero, dir, speed, dt, g.layout.bounds())

	for i := range g.companions {
		c := &g.companions[i]
		phase := float64(i) * math.Pi
		anchor := hero.Pos.Add(core.V(
			math.Cos(g.now/0.4+phase)*70,
			math.Sin(g.now/0.46+phase*0.7)*55,
		))
		c.Pos = rescue.Follow(c.Pos, anchor, c.Rate, dt)
	}

	g.world.Respawns().SetDelay(
		g.difficulty.RespawnDelay(g.cfg.Session.RespawnDelay, session.Score(), g.world.Clock()))
}

// pop shows msg for duration seconds.
func (g *Game) pop(msg string, duration float64) {
	g.message = msg
	g.messageUntil = g.now + duration
}

// refreshMessage falls back to the nearest citizen's issue once the current
// message expires.
func (g *Game) refreshMessage() {
	if g.now <= g.messageUntil {
		return
	}
	s := g.world.Session()
	switch {
	case s.Outcome() == rescue.OutcomeWin:
		g.message = "Patrol complete. Press R for a new shift"
	case s.Status() == rescue.StatusPaused:
		g.message = "Paused"
	default:
		if t, ok := g.world.NearestCitizen(); ok {
			g.message = "Nearest citizen needs help: " + g.world.Registry().Entity(t.Ref).Issue
		} else {
			g.message = "The city is calm. Nobody needs help right now"
		}
	}
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
	snap.Area = core.Bounds{MaxX: g.cfg.City.Width, MaxY: g.cfg.City.Height}
	return snap
}

// Companions returns the positions of the trailing companions.
func (g *Game) Companions() []core.Vec2 {
	out := make([]core.Vec2, len(g.companions))
	for i, c := range g.companions {
		out[i] = c.Pos
	}
	return out
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
