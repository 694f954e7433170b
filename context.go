package rui

import "github.com/corvidkit/rui/internal"

// Context is an owner-scoped inherited value: Value walks the current
// owner's ancestor chain for the nearest Set, falling back to the
// initial value given to NewContext.
type Context[T any] struct {
	inner *internal.Context
}

// NewContext returns a context defaulting to initial until some owner in
// the current chain calls Set.
func NewContext[T any](initial T) *Context[T] {
	return &Context[T]{inner: internal.GetRuntime().NewContext(initial)}
}

// Value returns the nearest ancestor owner's Set value, or initial.
func (c *Context[T]) Value() T {
	return as[T](c.inner.Value())
}

// Set stores value for c in the current owner, shadowing any ancestor's
// value for the remainder of that owner's subtree. A no-op outside of
// any Owner.Run scope.
func (c *Context[T]) Set(value T) {
	c.inner.Set(value)
}
