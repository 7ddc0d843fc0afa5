package rescue

import (
	"math/rand"

	"github.com/vovakirdan/tui-rescue/internal/core"
)

// Layout places entities for a particular game.
type Layout interface {
	// HeroStart returns the hero at the beginning of a session.
	HeroStart() Hero
	// Populate fills an empty registry with the initial entities.
	Populate(r *Registry, rng *rand.Rand)
	// Respawn picks a new position for a recycled entity.
	Respawn(kind Kind, hero Hero, rng *rand.Rand) core.Vec2
}

// WorldConfig holds the tunables of a World.
type WorldConfig struct {
	Session      SessionConfig
	Integrator   Integrator
	RespawnDelay float64    // Seconds between a rescue and the citizen's return
	Reach        [2]float64 // Extra citizen reach indexed by Form
}

// World ties the session, registry, respawn queue and hero together and
// applies the interaction rules. All mutation happens on the caller's tick;
// there are no timers or goroutines.
type World struct {
	cfg      WorldConfig
	layout   Layout
	session  *Session
	registry *Registry
	respawns *RespawnQueue
	hero     Hero
	rng      *rand.Rand
	clock    float64 // Seconds of Running time in this session
}

// NewWorld builds a world and populates it with seed.
func NewWorld(cfg WorldConfig, layout Layout, a Announcer, seed int64) *World {
	w := &World{
		cfg:      cfg,
		layout:   layout,
		session:  NewSession(cfg.Session, a),
		registry: NewRegistry(),
		respawns: NewRespawnQueue(cfg.RespawnDelay),
	}
	w.session.form = func() Form { return w.hero.Form }
	w.populate(seed)
	return w
}

// Reset returns to NotStarted with a freshly populated registry.
// Respawns scheduled before the reset can no longer fire.
func (w *World) Reset(seed int64) {
	w.session.Reset()
	w.respawns.Clear()
	w.registry.Clear()
	w.populate(seed)
}

func (w *World) populate(seed int64) {
	w.rng = rand.New(rand.NewSource(seed))
	w.clock = 0
	w.hero = w.layout.HeroStart()
	w.layout.Populate(w.registry, w.rng)
}

// Start begins the mission if it has not started yet.
func (w *World) Start() bool {
	return w.session.Start()
}

// TogglePause pauses or resumes a started mission.
func (w *World) TogglePause() bool {
	return w.session.TogglePause()
}

// ToggleForm switches the hero between robot and vehicle.
// Not allowed once the session has ended.
func (w *World) ToggleForm() bool {
	if w.session.Ended() {
		return false
	}
	w.hero.Form = w.hero.Form.Toggle()
	w.session.Announce(EventFormChanged)
	return true
}

// BeginFrame clamps dt and, while Running, advances the session clock and
// fires due respawns. It returns the clamped delta and whether the rest of
// the frame should be simulated.
func (w *World) BeginFrame(dt float64) (float64, bool) {
	dt = w.cfg.Integrator.ClampDelta(dt)
	if !w.session.Running() {
		return dt, false
	}
	w.clock += dt
	w.respawns.Drain(w.clock, w.session.Generation(), w.respawn)
	return dt, true
}

func (w *World) respawn(ref Ref) {
	pos := w.layout.Respawn(ref.Kind, w.hero, w.rng)
	w.registry.Reactivate(ref, pos)
}

// NearestCitizen returns the closest unresolved citizen and whether the
// hero can reach it in its current form.
func (w *World) NearestCitizen() (Target, bool) {
	return NearestTarget(w.registry, KindCitizen, w.hero.Pos, w.Reach())
}

// Reach returns the citizen reach of the current form.
func (w *World) Reach() float64 {
	return w.cfg.Reach[w.hero.Form]
}

// InteractNearest rescues the nearest unresolved citizen if it is in range.
// Only one entity can be credited per call.
func (w *World) InteractNearest() bool {
	if !w.session.Running() {
		return false
	}
	t, ok := w.NearestCitizen()
	if !ok || !t.InRange {
		return false
	}
	return w.rescue(t.Ref)
}

func (w *World) rescue(ref Ref) bool {
	if !w.registry.Resolve(ref) {
		return false
	}
	if bonus := w.registry.Entity(ref).Reward; bonus > 0 {
		w.session.AddScore(bonus)
	}
	w.respawns.Schedule(ref, w.clock, w.session.Generation())
	w.session.RecordRescue()
	return true
}

// CheckCollision ends the session when the hero is inside the radius of the
// nearest obstacle.
func (w *World) CheckCollision() bool {
	if !w.session.Running() {
		return false
	}
	t, ok := NearestTarget(w.registry, KindObstacle, w.hero.Pos, 0)
	if !ok || !t.InRange {
		return false
	}
	return w.session.RecordCollision()
}

// Recycle moves an entity to pos without changing its resolved state, as
// runners do for entities that scroll past the hero. Ignored unless Running.
func (w *World) Recycle(ref Ref, pos core.Vec2) bool {
	if !w.session.Running() {
		return false
	}
	return w.registry.Relocate(ref, pos)
}

// Session returns the session state machine.
func (w *World) Session() *Session { return w.session }

// Registry returns the entity registry.
func (w *World) Registry() *Registry { return w.registry }

// Respawns returns the respawn queue.
func (w *World) Respawns() *RespawnQueue { return w.respawns }

// Hero returns the hero for in-place movement.
func (w *World) Hero() *Hero { return &w.hero }

// Integrator returns the movement integrator.
func (w *World) Integrator() Integrator { return w.cfg.Integrator }

// Clock returns the seconds of Running time since the last reset.
func (w *World) Clock() float64 { return w.clock }

// RNG returns the world's seeded random source.
func (w *World) RNG() *rand.Rand { return w.rng }
