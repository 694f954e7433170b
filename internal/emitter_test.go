package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitterFiresInInsertionOrder(t *testing.T) {
	e := NewEmitter()
	var order []int

	e.AddListener(func(args ...any) { order = append(order, 1) }, nil)
	e.AddListener(func(args ...any) { order = append(order, 2) }, nil)
	e.AddListener(func(args ...any) { order = append(order, 3) }, nil)

	e.Emit()

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestEmitterRemovalDuringEmitIsSafe(t *testing.T) {
	e := NewEmitter()
	var order []int

	var second *Listener
	e.AddListener(func(args ...any) { order = append(order, 1) }, nil)
	second = e.AddListener(func(args ...any) {
		order = append(order, 2)
		second.Dispose()
	}, nil)
	e.AddListener(func(args ...any) { order = append(order, 3) }, nil)

	assert.NotPanics(t, func() { e.Emit() })
	assert.Equal(t, []int{1, 2, 3}, order)

	order = nil
	e.Emit()
	assert.Equal(t, []int{1, 3}, order) // second no longer fires
}

func TestEmitterChangeCBFiresOnAddAndRemove(t *testing.T) {
	e := NewEmitter()
	var transitions []bool

	e.SetChangeCB(func(hasListeners bool, ctx any) {
		transitions = append(transitions, hasListeners)
	}, nil)

	l := e.AddListener(func(args ...any) {}, nil)
	assert.True(t, e.HasListeners())

	l.Dispose()
	assert.False(t, e.HasListeners())

	assert.Equal(t, []bool{true, false}, transitions)
}

func TestListenerDisposeIsIdempotent(t *testing.T) {
	e := NewEmitter()
	l := e.AddListener(func(args ...any) {}, nil)

	l.Dispose()
	assert.NotPanics(t, func() { l.Dispose() })
	assert.False(t, e.HasListeners())
}
