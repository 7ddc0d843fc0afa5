package rescue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespawnQueueFiresWhenDue(t *testing.T) {
	q := NewRespawnQueue(1.8)
	ref := Ref{Kind: KindCitizen, Index: 2}
	q.Schedule(ref, 1.0, 7)

	var fired []Ref
	fire := func(r Ref) { fired = append(fired, r) }

	assert.Zero(t, q.Drain(2.7, 7, fire), "not due before 2.8")
	assert.True(t, q.Pending(ref, 7))

	assert.Equal(t, 1, q.Drain(2.8, 7, fire))
	assert.Equal(t, []Ref{ref}, fired)
	assert.Zero(t, q.Len())
	assert.False(t, q.Pending(ref, 7))
}

func TestRespawnQueueDropsStaleGenerations(t *testing.T) {
	q := NewRespawnQueue(1.8)
	q.Schedule(Ref{Kind: KindCitizen, Index: 0}, 0, 1)
	q.Schedule(Ref{Kind: KindCitizen, Index: 1}, 0, 2)

	var fired []Ref
	n := q.Drain(10, 2, func(r Ref) { fired = append(fired, r) })

	assert.Equal(t, 1, n)
	assert.Equal(t, []Ref{{Kind: KindCitizen, Index: 1}}, fired)
	assert.Zero(t, q.Len(), "stale entry is discarded, not kept")
}

func TestRespawnQueueOrderAndClear(t *testing.T) {
	q := NewRespawnQueue(1)
	for i := 0; i < 3; i++ {
		q.Schedule(Ref{Kind: KindCitizen, Index: i}, float64(i), 0)
	}

	var order []int
	q.Drain(2.5, 0, func(r Ref) { order = append(order, r.Index) })
	assert.Equal(t, []int{0, 1}, order)
	assert.Equal(t, 1, q.Len())

	q.Clear()
	assert.Zero(t, q.Len())

	assert.Zero(t, NewRespawnQueue(-3).Delay(), "negative delay clamps to zero")
}
