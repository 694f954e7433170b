package rui

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObservable(t *testing.T) {
	t.Run("get and set", func(t *testing.T) {
		count := NewObservable(0)
		assert.Equal(t, 0, count.Get())

		count.Set(10)
		assert.Equal(t, 10, count.Get())
	})

	t.Run("concurrent get/set", func(t *testing.T) {
		var wg sync.WaitGroup
		count := NewObservable(0)

		wg.Add(1)
		go func() {
			defer wg.Done()
			count.Set(count.Get() + 1)
		}()

		wg.Wait()
		assert.Equal(t, 1, count.Get())
	})

	t.Run("zero values", func(t *testing.T) {
		e := NewObservable[error](nil)
		assert.Nil(t, e.Get())

		e.Set(errors.New("oops"))
		assert.EqualError(t, e.Get(), "oops")

		e.Set(nil)
		assert.Nil(t, e.Get())
	})

	t.Run("WithEqual suppresses writes the gate considers unchanged", func(t *testing.T) {
		type point struct{ x, y int }

		var notifications int
		p := NewObservable(point{1, 1}, WithEqual(func(a, b point) bool { return a.x == b.x }))
		p.AddListener(func(newValue, oldValue point) { notifications++ }, nil)

		p.Set(point{1, 2}) // same x, gate treats as unchanged
		assert.Equal(t, 0, notifications)

		p.Set(point{2, 2})
		assert.Equal(t, 1, notifications)
	})

	t.Run("SetAndTrigger bypasses the equality gate", func(t *testing.T) {
		var notifications int
		count := NewObservable(5)
		count.AddListener(func(newValue, oldValue int) { notifications++ }, nil)

		count.SetAndTrigger(5)
		assert.Equal(t, 1, notifications)
	})
}
