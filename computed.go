package rui

import "github.com/corvidkit/rui/internal"

// ComputedOption configures a Computed[T] at construction.
type ComputedOption[T any] func(*Computed[T])

// WithWrite makes the Computed writable: Write(v) calls fn instead of
// panicking. Without this option, Write always panics.
func WithWrite[T any](fn func(v T)) ComputedOption[T] {
	return func(c *Computed[T]) {
		c.write = fn
	}
}

// Computed is an Observable whose value is derived from whatever cells
// its read callback reads via Use, recomputing only when one of them
// changes.
type Computed[T any] struct {
	inner *internal.Computed
	write func(T)
}

// NewComputed builds a Computed around compute, evaluating it once,
// eagerly, before returning.
func NewComputed[T any](compute func(r *Reader) T, opts ...ComputedOption[T]) *Computed[T] {
	c := &Computed[T]{}
	c.inner = internal.GetRuntime().NewComputed(func(sub *internal.Subscription) any {
		return compute(&Reader{sub: sub})
	})
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the last computed value without registering a dependency
// of its own.
func (c *Computed[T]) Get() T {
	return as[T](c.inner.Get())
}

// Write calls the WithWrite callback, if one was configured; panics
// otherwise
func (c *Computed[T]) Write(v T) {
	if c.write == nil {
		panic("rui: computed is not writable")
	}
	c.write(v)
}

// AddListener registers cb to fire whenever the computed value changes.
func (c *Computed[T]) AddListener(cb func(newValue, oldValue T), ctx any) *internal.Listener {
	return c.inner.AddListener(func(newValue, oldValue any) {
		cb(as[T](newValue), as[T](oldValue))
	}, ctx)
}

// Dispose detaches every dependency and disposes whatever the read
// callback's last run registered on its scope.
func (c *Computed[T]) Dispose() {
	c.inner.Dispose()
}

func (c *Computed[T]) observable() *internal.Observable { return c.inner.Observable() }
func (c *Computed[T]) depItem() *internal.DepItem        { return c.inner.DepItem() }
