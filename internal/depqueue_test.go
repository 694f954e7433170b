package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newItem(priority int) *DepItem {
	d := NewDepItem(func() {})
	d.priority = priority
	return d
}

func TestDepQueuePopsInPriorityOrder(t *testing.T) {
	q := NewDepQueue()

	items := []*DepItem{newItem(5), newItem(1), newItem(3), newItem(1), newItem(4)}
	for _, it := range items {
		q.Push(it)
	}

	var got []int
	for q.Size() > 0 {
		got = append(got, q.Pop().priority)
	}

	assert.Equal(t, []int{1, 1, 3, 4, 5}, got)
}

func TestDepQueuePushIsIdempotentWhileEnqueued(t *testing.T) {
	q := NewDepQueue()
	item := newItem(1)

	q.Push(item)
	q.Push(item)

	assert.Equal(t, 1, q.Size())
}

func TestDepQueueRemoveClearsLatch(t *testing.T) {
	q := NewDepQueue()
	a, b, c := newItem(1), newItem(2), newItem(3)

	q.Push(a)
	q.Push(b)
	q.Push(c)

	q.Remove(b)

	assert.False(t, b.Enqueued())
	assert.Equal(t, 2, q.Size())

	var got []int
	for q.Size() > 0 {
		got = append(got, q.Pop().priority)
	}
	assert.Equal(t, []int{1, 3}, got)
}

func TestDepQueueRemoveOfAbsentItemIsNoop(t *testing.T) {
	q := NewDepQueue()
	item := newItem(1)

	assert.NotPanics(t, func() { q.Remove(item) })
}
