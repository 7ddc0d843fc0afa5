package rescue

import "github.com/vovakirdan/tui-rescue/internal/core"

// Kind separates obstacles from citizens.
type Kind int

const (
	KindObstacle Kind = iota
	KindCitizen
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	if k == KindObstacle {
		return "obstacle"
	}
	return "citizen"
}

// Entity is an obstacle or citizen placed in the world.
// Entities are recycled in place; they are never removed from the registry.
type Entity struct {
	Kind     Kind
	Pos      core.Vec2
	Radius   float64 // Interaction radius
	Resolved bool    // Rescued/cleared and waiting for respawn
	Issue    string  // Citizen only: what the citizen needs help with
	Reward   int     // Citizen only: bonus on top of the session reward
	Phase    float64 // Cosmetic animation offset
}

// Ref addresses one entity in a Registry.
type Ref struct {
	Kind  Kind
	Index int
}

// Registry holds the flat obstacle and citizen lists of a world.
type Registry struct {
	obstacles []Entity
	citizens  []Entity
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		obstacles: make([]Entity, 0, 16),
		citizens:  make([]Entity, 0, 16),
	}
}

// Add appends an entity and returns its reference.
func (r *Registry) Add(e Entity) Ref {
	if e.Kind == KindObstacle {
		r.obstacles = append(r.obstacles, e)
		return Ref{Kind: KindObstacle, Index: len(r.obstacles) - 1}
	}
	r.citizens = append(r.citizens, e)
	return Ref{Kind: KindCitizen, Index: len(r.citizens) - 1}
}

// Entity returns a pointer to the referenced entity, or nil for a stale or
// out-of-range reference.
func (r *Registry) Entity(ref Ref) *Entity {
	list := r.list(ref.Kind)
	if ref.Index < 0 || ref.Index >= len(list) {
		return nil
	}
	return &list[ref.Index]
}

// Obstacles returns the obstacle list. Callers may mutate positions.
func (r *Registry) Obstacles() []Entity {
	return r.obstacles
}

// Citizens returns the citizen list. Callers may mutate positions.
func (r *Registry) Citizens() []Entity {
	return r.citizens
}

// Resolve marks an unresolved entity as resolved.
// Returns false if the entity does not exist or is already resolved,
// so one entity can never be credited twice.
func (r *Registry) Resolve(ref Ref) bool {
	e := r.Entity(ref)
	if e == nil || e.Resolved {
		return false
	}
	e.Resolved = true
	return true
}

// Reactivate moves a resolved entity to pos and clears its resolved flag.
func (r *Registry) Reactivate(ref Ref, pos core.Vec2) bool {
	e := r.Entity(ref)
	if e == nil || !e.Resolved {
		return false
	}
	e.Pos = pos
	e.Resolved = false
	return true
}

// Relocate moves an entity without touching its resolved flag.
func (r *Registry) Relocate(ref Ref, pos core.Vec2) bool {
	e := r.Entity(ref)
	if e == nil {
		return false
	}
	e.Pos = pos
	return true
}

// Unresolved counts entities of the given kind that can be targeted.
func (r *Registry) Unresolved(kind Kind) int {
	n := 0
	for _, e := range r.list(kind) {
		if !e.Resolved {
			n++
		}
	}
	return n
}

// Len returns the number of entities of the given kind.
func (r *Registry) Len(kind Kind) int {
	return len(r.list(kind))
}

// Clear removes all entities. Used only when a world is rebuilt on reset.
func (r *Registry) Clear() {
	r.obstacles = r.obstacles[:0]
	r.citizens = r.citizens[:0]
}

func (r *Registry) list(kind Kind) []Entity {
	if kind == KindObstacle {
		return r.obstacles
	}
	return r.citizens
}
