package rui

import "github.com/corvidkit/rui/internal"

// Option configures an Observable[T] at construction, following the
// functional-options shape coregx-signals' Options[T] uses for the same
// equality/panic-sink pair.
type Option[T any] func(*Observable[T])

// WithEqual overrides the equality gate Set uses to decide whether a
// write is a no-op, in place of the default `==` comparison — useful for
// types with their own notion of equality, or types `==` can't compare
// at all (e.g. slices, which NewObservable[[]T] needs for ObsArray).
func WithEqual[T any](equal func(a, b T) bool) Option[T] {
	return func(o *Observable[T]) {
		o.obs.SetEqual(func(a, b any) bool {
			return equal(as[T](a), as[T](b))
		})
	}
}

// WithOnPanic installs the sink invoked if disposing an outgoing held
// value panics. An Observable built by NewObservable never disposes the
// values it holds, so for it the sink is never invoked.
func WithOnPanic[T any](onPanic func(any)) Option[T] {
	return func(o *Observable[T]) {
		o.obs.SetOnPanic(onPanic)
	}
}

// Observable holds one value of type T and notifies listeners whenever
// Set actually changes it.
type Observable[T any] struct {
	obs *internal.Observable
}

// NewObservable returns an Observable seeded with initial.
func NewObservable[T any](initial T, opts ...Option[T]) *Observable[T] {
	o := &Observable[T]{obs: internal.GetRuntime().NewObservable(initial)}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Get returns the current value without registering a dependency. Use
// Use(r, o) from within a Computed/PureComputed/Effect/Subscribe read
// callback to depend on this observable.
func (o *Observable[T]) Get() T {
	return as[T](o.obs.Get())
}

// Set stores v, running BundleChanges around the write so every dependent
// settles before control returns. A no-op if v equals the current value
// under the configured equality gate.
func (o *Observable[T]) Set(v T) {
	internal.GetRuntime().NewBatch(func() {
		o.obs.Set(v)
	})
}

// SetAndTrigger stores v and notifies listeners even if v equals the
// previous value, bypassing the equality gate.
func (o *Observable[T]) SetAndTrigger(v T) {
	internal.GetRuntime().NewBatch(func() {
		o.obs.SetAndTrigger(v)
	})
}

// AddListener registers cb to fire on every future Set that actually
// changes the value and on every SetAndTrigger.
func (o *Observable[T]) AddListener(cb func(newValue, oldValue T), ctx any) *internal.Listener {
	return o.obs.AddListener(func(newValue, oldValue any) {
		cb(as[T](newValue), as[T](oldValue))
	}, ctx)
}

// HasListeners reports whether any listener is currently attached.
func (o *Observable[T]) HasListeners() bool {
	return o.obs.HasListeners()
}

// Dispose detaches every listener.
func (o *Observable[T]) Dispose() {
	o.obs.Dispose()
}

func (o *Observable[T]) observable() *internal.Observable { return o.obs }
func (o *Observable[T]) depItem() *internal.DepItem        { return nil }
