package rescue

import (
	"math"

	"github.com/vovakirdan/tui-rescue/internal/core"
)

// Nearest finds the unresolved entity closest to hero.
// Ties go to the earliest index. ok is false when no candidate is unresolved.
func Nearest(candidates []Entity, hero core.Vec2) (index int, distance float64, ok bool) {
	index = -1
	distance = math.Inf(1)
	for i := range candidates {
		if candidates[i].Resolved {
			continue
		}
		d := hero.Dist(candidates[i].Pos)
		if d < distance {
			distance = d
			index = i
		}
	}
	if index < 0 {
		return -1, 0, false
	}
	return index, distance, true
}

// IsWithinRange reports whether distance is inside an interaction radius.
func IsWithinRange(distance, radius float64) bool {
	return distance <= radius
}

// Target is the result of a proximity query.
type Target struct {
	Ref      Ref
	Distance float64
	InRange  bool
}

// NearestTarget runs Nearest over one kind of the registry and checks the
// winner against its radius plus reach.
func NearestTarget(r *Registry, kind Kind, hero core.Vec2, reach float64) (Target, bool) {
	list := r.Citizens()
	if kind == KindObstacle {
		list = r.Obstacles()
	}
	i, d, ok := Nearest(list, hero)
	if !ok {
		return Target{}, false
	}
	return Target{
		Ref:      Ref{Kind: kind, Index: i},
		Distance: d,
		InRange:  IsWithinRange(d, list[i].Radius+reach),
	}, true
}
