package eventqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simcore/internal/worldevent"
)

func TestPopDueReturnsChronologicalOrder(t *testing.T) {
	q := New()
	q.Push(5, worldevent.WorldEvent{EventType: "c"})
	q.Push(1, worldevent.WorldEvent{EventType: "a"})
	q.Push(3, worldevent.WorldEvent{EventType: "b"})

	due := q.PopDue(10)
	require.Len(t, due, 3)

	for i := 1; i < len(due); i++ {
		assert.GreaterOrEqual(t, due[i].DeliveryTime, due[i-1].DeliveryTime)
	}
	assert.Equal(t, "a", due[0].Event.EventType)
	assert.Equal(t, "c", due[2].Event.EventType)
}

func TestPopDueOnlyPopsEventsAtOrBeforeNow(t *testing.T) {
	q := New()
	q.Push(1, worldevent.WorldEvent{EventType: "soon"})
	q.Push(100, worldevent.WorldEvent{EventType: "later"})

	due := q.PopDue(5)
	require.Len(t, due, 1)
	assert.Equal(t, "soon", due[0].Event.EventType)
	assert.Equal(t, 1, q.Len())
}

func TestEmptyQueuePopDueReturnsEmpty(t *testing.T) {
	q := New()
	due := q.PopDue(1000)
	assert.Empty(t, due)

	_, ok := q.PeekNextTime()
	assert.False(t, ok)
	assert.True(t, q.Empty())
}
