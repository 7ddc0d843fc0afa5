package rescue

// pendingRespawn is one deferred reactivation.
type pendingRespawn struct {
	ref        Ref
	dueAt      float64
	generation uint64
}

// RespawnQueue holds deferred entity reactivations, tagged with the session
// generation they were scheduled in. It is drained once per tick; entries
// from an older generation are dropped instead of fired.
type RespawnQueue struct {
	delay   float64
	pending []pendingRespawn
}

// NewRespawnQueue creates a queue that fires entries delay seconds after
// scheduling.
func NewRespawnQueue(delay float64) *RespawnQueue {
	if delay < 0 {
		delay = 0
	}
	return &RespawnQueue{
		delay:   delay,
		pending: make([]pendingRespawn, 0, 8),
	}
}

// Delay returns the respawn delay in seconds.
func (q *RespawnQueue) Delay() float64 {
	return q.delay
}

// SetDelay changes the delay for entries scheduled from now on.
func (q *RespawnQueue) SetDelay(delay float64) {
	q.delay = max(delay, 0)
}

// Schedule queues a reactivation of ref at now+delay.
func (q *RespawnQueue) Schedule(ref Ref, now float64, generation uint64) {
	q.pending = append(q.pending, pendingRespawn{
		ref:        ref,
		dueAt:      now + q.delay,
		generation: generation,
	})
}

// Drain fires every entry that is due at now and belongs to generation,
// in scheduling order. Stale entries are discarded. Returns how many fired.
func (q *RespawnQueue) Drain(now float64, generation uint64, fire func(Ref)) int {
	fired := 0
	kept := q.pending[:0]
	for _, p := range q.pending {
		switch {
		case p.generation != generation:
			// dropped
		case p.dueAt <= now:
			fire(p.ref)
			fired++
		default:
			kept = append(kept, p)
		}
	}
	q.pending = kept
	return fired
}

// Pending reports whether ref has a respawn queued for generation.
func (q *RespawnQueue) Pending(ref Ref, generation uint64) bool {
	for _, p := range q.pending {
		if p.ref == ref && p.generation == generation {
			return true
		}
	}
	return false
}

// Len returns the number of queued entries, stale ones included.
func (q *RespawnQueue) Len() int {
	return len(q.pending)
}

// Clear drops all queued entries.
func (q *RespawnQueue) Clear() {
	q.pending = q.pending[:0]
}
