// Package rui is a reactive-state core driving a lightweight,
// direct-to-DOM user-interface toolkit: observable cells, derived cells,
// a deterministic batching scheduler, and an ownership discipline tying
// subscriptions and live DOM subtrees to explicit owners.
//
// The generic types in this package (Observable[T], Computed[T], ...)
// are thin, type-erasing wrappers over internal's untyped engine.
package rui

import "github.com/corvidkit/rui/internal"

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

// Disposer is anything with a Dispose method — the contract AutoDispose,
// Holder, and Create's factory protocol all operate on.
type Disposer = internal.Disposer

// BundleChanges defers every scheduler drain triggered by fn (and any
// BundleChanges nested inside it) until fn returns, then drains once, so
// cells depending on more than one of fn's writes recompute at most once.
func BundleChanges(fn func()) {
	internal.GetRuntime().NewBatch(fn)
}

// Untrack runs fn with dependency capture disabled: reads inside fn do
// not register as dependencies of whatever Computed/Subscription/Effect
// is currently evaluating.
func Untrack[T any](fn func() T) T {
	var result T
	internal.GetRuntime().Untrack(func() { result = fn() })
	return result
}

// OnCleanup registers fn to run when the current owner is disposed. A
// no-op outside of any Owner.Run, Computed/PureComputed/Effect
// evaluation, or Create.
func OnCleanup(fn func()) {
	internal.GetRuntime().OnCleanup(fn)
}
