package patrol

import (
	"math/rand"

	"github.com/vovakirdan/tui-rescue/internal/config"
	"github.com/vovakirdan/tui-rescue/internal/core"
	"github.com/vovakirdan/tui-rescue/internal/rescue"
)

// cityLayout scatters citizens with random issues across the city.
type cityLayout struct {
	city   config.PatrolCity
	hero   config.PatrolHero
	issues []string
}

// HeroStart places the hero in the middle of the city.
func (l cityLayout) HeroStart() rescue.Hero {
	return rescue.Hero{
		Pos:   core.V(l.city.Width/2, l.city.Height/2),
		Form:  rescue.FormPrimary,
		Speed: l.hero.WalkSpeed,
	}
}

// Populate adds the citizens.
func (l cityLayout) Populate(r *rescue.Registry, rng *rand.Rand) {
	for i := 0; i < l.city.CitizenCount; i++ {
		r.Add(rescue.Entity{
			Kind:   rescue.KindCitizen,
			Pos:    l.Respawn(rescue.KindCitizen, rescue.Hero{}, rng),
			Radius: l.city.CitizenRadius,
			Issue:  l.issue(rng),
			Phase:  rng.Float64(),
		})
	}
}

// Respawn picks a random position inside the spawn margins.
func (l cityLayout) Respawn(_ rescue.Kind, _ rescue.Hero, rng *rand.Rand) core.Vec2 {
	m := l.city.SpawnMargin
	return core.V(
		m+rng.Float64()*(l.city.Width-2*m),
		m+rng.Float64()*(l.city.Height-2*m),
	)
}

func (l cityLayout) issue(rng *rand.Rand) string {
	if len(l.issues) == 0 {
		return ""
	}
	return l.issues[rng.Intn(len(l.issues))]
}

// bounds returns the area the hero may walk in.
func (l cityLayout) bounds() core.Bounds {
	m := l.city.EdgeMargin
	return core.Bounds{MinX: m, MinY: m, MaxX: l.city.Width - m, MaxY: l.city.Height - m}
}
