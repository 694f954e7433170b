package rui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeDisposer struct {
	log  *[]string
	name string
}

func (f *fakeDisposer) Dispose() {
	*f.log = append(*f.log, "disposed "+f.name)
}

func TestHolder(t *testing.T) {
	t.Run("empty by default", func(t *testing.T) {
		h := NewHolder[*fakeDisposer]()
		_, ok := h.Get()
		assert.False(t, ok)
	})

	t.Run("replacing disposes the previous value", func(t *testing.T) {
		var log []string
		h := NewHolder[*fakeDisposer]()

		h.Set(&fakeDisposer{log: &log, name: "a"})
		h.Set(&fakeDisposer{log: &log, name: "b"})

		assert.Equal(t, []string{"disposed a"}, log)

		v, ok := h.Get()
		assert.True(t, ok)
		assert.Equal(t, "b", v.name)
	})

	t.Run("clear disposes and empties", func(t *testing.T) {
		var log []string
		h := NewHolder[*fakeDisposer]()
		h.Set(&fakeDisposer{log: &log, name: "a"})

		h.Clear()
		assert.Equal(t, []string{"disposed a"}, log)

		_, ok := h.Get()
		assert.False(t, ok)
	})
}

func TestHolderEmptiesOnExternalDispose(t *testing.T) {
	h := NewHolder[*Owner]()
	owned := NewOwner()
	h.Set(owned)

	owned.Dispose() // external: not via h.Clear()/h.Dispose()/h.Set()

	_, ok := h.Get()
	assert.False(t, ok, "holder should empty itself once its value disposes itself")
}

func TestHolderExternalDisposeOfReplacedValueIsIgnored(t *testing.T) {
	h := NewHolder[*Owner]()
	first := NewOwner()
	h.Set(first)

	second := NewOwner()
	h.Set(second) // disposes first and replaces the slot

	first.Dispose() // already disposed; its stale notification must not clear second

	v, ok := h.Get()
	assert.True(t, ok)
	assert.Same(t, second, v)
}

func TestMultiHolder(t *testing.T) {
	t.Run("clear disposes in reverse-registration order", func(t *testing.T) {
		var log []string
		m := NewMultiHolder()

		m.Add(&fakeDisposer{log: &log, name: "a"})
		m.Add(&fakeDisposer{log: &log, name: "b"})
		m.Add(&fakeDisposer{log: &log, name: "c"})

		m.Clear()

		assert.Equal(t, []string{"disposed c", "disposed b", "disposed a"}, log)
	})

	t.Run("reusable after clear", func(t *testing.T) {
		var log []string
		m := NewMultiHolder()

		m.Add(&fakeDisposer{log: &log, name: "a"})
		m.Clear()
		m.Add(&fakeDisposer{log: &log, name: "b"})
		m.Dispose()

		assert.Equal(t, []string{"disposed a", "disposed b"}, log)
	})
}
