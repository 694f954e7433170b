package rui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContext(t *testing.T) {
	t.Run("store value", func(t *testing.T) {
		ctx := NewContext(0)
		assert.Equal(t, 0, ctx.Value())

		ctx.Set(42)
		assert.Equal(t, 0, ctx.Value()) // still zero, no owner to hold the value
	})

	t.Run("inherit value from parent owner", func(t *testing.T) {
		ctx := NewContext("default")

		parent := NewOwner()
		parent.Run(func() {
			ctx.Set("parent value")

			NewOwner().Run(func() {
				assert.Equal(t, "parent value", ctx.Value())
			})
		})

		assert.Equal(t, "default", ctx.Value())
	})
}
