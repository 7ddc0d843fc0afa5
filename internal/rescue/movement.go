package rescue

import (
	"math"

	"github.com/vovakirdan/tui-rescue/internal/core"
)

// Form is the hero's current shape.
type Form int

const (
	FormPrimary   Form = iota // Robot
	FormAlternate             // Vehicle
)

// String returns a human-readable name for the form.
func (f Form) String() string {
	if f == FormAlternate {
		return "Vehicle"
	}
	return "Robot"
}

// Toggle returns the other form.
func (f Form) Toggle() Form {
	if f == FormPrimary {
		return FormAlternate
	}
	return FormPrimary
}

// Hero is the player-controlled entity.
type Hero struct {
	Pos        core.Vec2
	Form       Form
	LaneTarget float64 // Lateral position the hero is steering toward
	Speed      float64 // Forward speed in world units per second
	Progress   float64 // Distance travelled along the road
}

// Integrator advances hero movement with frame delta time.
type Integrator struct {
	SmoothingRate float64 // Exponential smoothing rate for lateral motion
	LaneLimit     float64 // Lateral positions are clamped to [-LaneLimit, +LaneLimit]
	MaxDelta      float64 // Upper bound for a single frame delta in seconds
}

// ClampDelta bounds a frame delta to [0, MaxDelta] so a long stall (tab
// resume, terminal suspend) cannot tunnel the hero through obstacles.
func (in Integrator) ClampDelta(dt float64) float64 {
	if dt < 0 || math.IsNaN(dt) {
		return 0
	}
	if in.MaxDelta > 0 && dt > in.MaxDelta {
		return in.MaxDelta
	}
	return dt
}

// Steer shifts the lane target by delta, clamped to the lane limit.
func (in Integrator) Steer(h *Hero, delta float64) {
	h.LaneTarget = core.ClampF(h.LaneTarget+delta, -in.LaneLimit, in.LaneLimit)
}

// SteerTo sets the lane target to x, clamped to the lane limit.
func (in Integrator) SteerTo(h *Hero, x float64) {
	h.LaneTarget = core.ClampF(x, -in.LaneLimit, in.LaneLimit)
}

// Lateral moves the hero toward its lane target.
func (in Integrator) Lateral(h *Hero, dt float64) {
	h.Pos.X += (h.LaneTarget - h.Pos.X) * math.Min(1, dt*in.SmoothingRate)
	h.Pos.X = core.ClampF(h.Pos.X, -in.LaneLimit, in.LaneLimit)
}

// Advance moves the hero forward by Speed*dt and returns the distance.
func (in Integrator) Advance(h *Hero, dt float64) float64 {
	d := h.Speed * dt
	h.Progress += d
	h.Pos.Y += d
	return d
}

// Glide moves the hero freely along dir at speed, kept inside bounds.
func (in Integrator) Glide(h *Hero, dir core.Vec2, speed, dt float64, bounds core.Bounds) {
	step := dir.Normalize().Scale(speed * dt)
	h.Pos = bounds.Clamp(h.Pos.Add(step))
}

// Follow moves p toward target with the same smoothing rule used for the hero
// and returns the new position. Used for companions trailing the hero.
func Follow(p, target core.Vec2, rate, dt float64) core.Vec2 {
	k := math.Min(1, dt*rate)
	return p.Add(target.Sub(p).Scale(k))
}
