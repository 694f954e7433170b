package rui

import "github.com/corvidkit/rui/internal"

// PureComputed is a Computed that stays unsubscribed from its
// dependencies while nobody is listening to it: Get recomputes directly,
// untracking immediately afterward, instead of relying on a cached,
// push-updated value. It activates the moment it gains a
// listener (including indirectly, by being read via Use from inside
// another Computed/PureComputed/Effect), and deactivates when the last
// one is removed.
type PureComputed[T any] struct {
	inner *internal.PureComputed
}

// NewPureComputed builds a PureComputed around compute. Unlike Computed,
// construction does not evaluate eagerly.
func NewPureComputed[T any](compute func(r *Reader) T) *PureComputed[T] {
	inner := internal.GetRuntime().NewPureComputed(func(sub *internal.Subscription) any {
		return compute(&Reader{sub: sub})
	})
	return &PureComputed[T]{inner: inner}
}

// Get returns the current value, recomputing fresh if this PureComputed
// currently has no listeners.
func (p *PureComputed[T]) Get() T {
	return as[T](p.inner.Get())
}

// AddListener registers cb to fire on future changes, activating live
// tracking of this PureComputed's dependencies on the first listener.
func (p *PureComputed[T]) AddListener(cb func(newValue, oldValue T), ctx any) *internal.Listener {
	return p.inner.AddListener(func(newValue, oldValue any) {
		cb(as[T](newValue), as[T](oldValue))
	}, ctx)
}

// Dispose detaches every dependency (if currently active) and disposes
// whatever the read callback's last run registered on its scope.
func (p *PureComputed[T]) Dispose() {
	p.inner.Dispose()
}

func (p *PureComputed[T]) observable() *internal.Observable { return p.inner.Observable() }
func (p *PureComputed[T]) depItem() *internal.DepItem        { return p.inner.DepItem() }
