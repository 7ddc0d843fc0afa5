package rescue

import "github.com/vovakirdan/tui-rescue/internal/core"

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Hero      Hero
	Obstacles []Entity
	Citizens  []Entity
	Status    Status
	Outcome   Outcome
	Score     int
	Rescues   int
	Target    int
	Clock     float64
	Nearest   *Target // Closest unresolved citizen, nil when none
	Message   string  // Status line chosen by the game

	// Set by the game for shape-based frontends.
	Scrolling bool        // Hero runs toward +Y; draw ahead as up
	Area      core.Bounds // Playable area
}

// Snapshot copies the current world state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Hero:      w.hero,
		Obstacles: append([]Entity(nil), w.registry.Obstacles()...),
		Citizens:  append([]Entity(nil), w.registry.Citizens()...),
		Status:    w.session.Status(),
		Outcome:   w.session.Outcome(),
		Score:     w.session.Score(),
		Rescues:   w.session.Rescues(),
		Target:    w.session.Target(),
		Clock:     w.clock,
	}
	if t, ok := w.NearestCitizen(); ok {
		s.Nearest = &t
	}
	return s
}
