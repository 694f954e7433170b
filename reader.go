package rui

import "github.com/corvidkit/rui/internal"

// Reader is the capability a Computed/PureComputed/Effect/Subscribe read
// callback receives to record dynamic dependencies. Per, this
// explicit reader-function idiom is the only sanctioned way to depend on
// a cell from inside such a callback — there is no implicit
// "current evaluation" global a stray read elsewhere could be captured
// by.
type Reader struct {
	sub *internal.Subscription
}

// Dependency is implemented by every readable cell (Observable[T],
// Computed[T], PureComputed[T]) so Use can treat them uniformly. The
// methods are unexported — only this package's own cell types can
// satisfy it — but the interface name itself is exported so other
// packages (e.g. dom) can accept "some rui cell" as a parameter and pass
// it straight through to Use without needing to implement it themselves.
type Dependency interface {
	observable() *internal.Observable
	depItem() *internal.DepItem
}

// Use reads dep's current value and records it as a dependency of the
// Subscription r belongs to: the read callback recomputes the next time
// dep changes.
func Use[T any](r *Reader, dep Dependency) T {
	return as[T](r.sub.Use(dep.observable(), dep.depItem()))
}

// Subscription is a standalone, valueless binding to one or more cells,
// for side effects that don't produce a value of their own.
type Subscription struct {
	computed *internal.Computed
}

// Subscribe runs fn immediately and again every time a dependency it
// reads via Use changes.
func Subscribe(fn func(r *Reader)) *Subscription {
	inner := internal.GetRuntime().NewComputed(func(sub *internal.Subscription) any {
		fn(&Reader{sub: sub})
		return nil
	})
	return &Subscription{computed: inner}
}

// Dispose detaches every dependency this subscription tracks.
func (s *Subscription) Dispose() {
	s.computed.Dispose()
}
