package desktop

import (
	"math"

	"github.com/vovakirdan/tui-rescue/internal/core"
	"github.com/vovakirdan/tui-rescue/internal/rescue"
)

// heroLine is where a scrolling view keeps the hero, as a share of height.
const heroLine = 0.8

// projection maps world coordinates to window pixels.
type projection struct {
	scale  float64   // Pixels per world unit
	origin core.Vec2 // World point drawn at pixel (0, 0), top-down only
	hero   core.Vec2
	width  int
	height int
	scroll bool
}

func newProjection(snap rescue.Snapshot, width, height int) projection {
	p := projection{hero: snap.Hero.Pos, width: width, height: height, scroll: snap.Scrolling}

	if snap.Scrolling {
		// The road fills the window width
		span := snap.Area.MaxX - snap.Area.MinX
		if span <= 0 || math.IsInf(span, 0) {
			span = float64(width)
		}
		p.scale = float64(width) / span
		p.origin = core.V(snap.Area.MinX, 0)
		return p
	}

	p.scale = float64(width) / patrolSpan
	viewW := float64(width) / p.scale
	viewH := float64(height) / p.scale
	p.origin = core.V(
		core.ClampF(snap.Hero.Pos.X-viewW/2, snap.Area.MinX, math.Max(snap.Area.MinX, snap.Area.MaxX-viewW)),
		core.ClampF(snap.Hero.Pos.Y-viewH/2, snap.Area.MinY, math.Max(snap.Area.MinY, snap.Area.MaxY-viewH)),
	)
	return p
}

// point returns the pixel position of world point w.
func (p projection) point(w core.Vec2) (float32, float32) {
	x := (w.X - p.origin.X) * p.scale
	if p.scroll {
		// Ahead of the hero is up
		y := float64(p.height)*heroLine - (w.Y-p.hero.Y)*p.scale
		return float32(x), float32(y)
	}
	return float32(x), float32((w.Y - p.origin.Y) * p.scale)
}
