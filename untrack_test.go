package rui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUntrack(t *testing.T) {
	t.Run("does not track reads", func(t *testing.T) {
		log := []string{}

		count := NewObservable(0)

		NewEffect(func(r *Reader) func() {
			c := Untrack(func() int { return count.Get() })
			log = append(log, fmt.Sprintf("effect %d", c))
			return nil
		})

		count.Set(10)

		assert.Equal(t, []string{
			"effect 0",
		}, log)
	})
}
