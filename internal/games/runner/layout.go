package runner

import (
	"math/rand"

	"github.com/vovakirdan/tui-rescue/internal/config"
	"github.com/vovakirdan/tui-rescue/internal/core"
	"github.com/vovakirdan/tui-rescue/internal/rescue"
)

// roadLayout places obstacles and citizens along the road ahead of the hero.
// World y grows in the running direction; the hero starts at Hero.StartY.
type roadLayout struct {
	hero config.RunnerHero
	road config.RunnerRoad
	lane float64
}

func newRoadLayout(cfg config.RunnerConfig) roadLayout {
	return roadLayout{hero: cfg.Hero, road: cfg.Road, lane: cfg.Motion.LaneLimit}
}

// HeroStart returns the robot centred on the road.
func (l roadLayout) HeroStart() rescue.Hero {
	return rescue.Hero{
		Pos:   core.V(0, l.hero.StartY),
		Form:  rescue.FormPrimary,
		Speed: l.hero.PrimarySpeed,
	}
}

// Populate spaces obstacles and citizens evenly along the road at random lanes.
func (l roadLayout) Populate(r *rescue.Registry, rng *rand.Rand) {
	for i := 0; i < l.road.ObstacleCount; i++ {
		r.Add(rescue.Entity{
			Kind:   rescue.KindObstacle,
			Pos:    core.V(l.laneX(rng), l.road.ObstacleStart+float64(i)*l.road.ObstacleSpacing),
			Radius: l.road.ObstacleRadius,
		})
	}
	for i := 0; i < l.road.CitizenCount; i++ {
		r.Add(rescue.Entity{
			Kind:   rescue.KindCitizen,
			Pos:    core.V(l.laneX(rng), l.road.CitizenStart+float64(i)*l.road.CitizenSpacing),
			Radius: l.road.CitizenRadius,
			Phase:  rng.Float64(),
		})
	}
}

// Respawn places a rescued citizen back on the road, further ahead than a
// recycled one.
func (l roadLayout) Respawn(kind rescue.Kind, hero rescue.Hero, rng *rand.Rand) core.Vec2 {
	if kind == rescue.KindObstacle {
		return l.ahead(l.road.ObstacleAhead, hero, rng)
	}
	return l.ahead(l.road.RescuedAhead, hero, rng)
}

// ahead picks a random lane at a distance within span past the scroll origin.
func (l roadLayout) ahead(span config.Span, hero rescue.Hero, rng *rand.Rand) core.Vec2 {
	y := hero.Progress + span.Min + rng.Float64()*(span.Max-span.Min)
	return core.V(l.laneX(rng), y)
}

func (l roadLayout) laneX(rng *rand.Rand) float64 {
	return (rng.Float64()*2 - 1) * l.lane
}

// behind reports whether e has scrolled far enough past the hero to be recycled.
func (l roadLayout) behind(e rescue.Entity, hero rescue.Hero) bool {
	return e.Pos.Y < hero.Pos.Y-l.road.RecycleBehind
}
