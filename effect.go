package rui

import "github.com/corvidkit/rui/internal"

// Effect runs a side-effecting callback once immediately and again every
// time a dependency it reads via Use changes, in scheduler priority
// order, queued separately from Render effects (see dom package) so that
// DOM updates settle before user effects observe them.
type Effect struct {
	inner *internal.Effect
}

// NewEffect runs fn immediately and schedules it to re-run whenever a
// dependency read via Use changes. fn may return a cleanup, run right
// before the next re-run and on Dispose.
func NewEffect(fn func(r *Reader) func()) *Effect {
	inner := internal.GetRuntime().NewEffect(internal.EffectUser, func(sub *internal.Subscription) func() {
		return fn(&Reader{sub: sub})
	})
	return &Effect{inner: inner}
}

// Dispose runs the pending cleanup and detaches every dependency.
func (e *Effect) Dispose() {
	e.inner.Dispose()
}

// NewRenderEffect is NewEffect, queued on the Render effect queue instead
// of the User one, so it runs before any NewEffect callback observes the
// result. The dom package's reactive DOM bindings are built on this, not
// on the plain Subscription/Computed engine, so a DOM update is always
// settled before user effects that might read the DOM run.
func NewRenderEffect(fn func(r *Reader) func()) *Effect {
	inner := internal.GetRuntime().NewEffect(internal.EffectRender, func(sub *internal.Subscription) func() {
		return fn(&Reader{sub: sub})
	})
	return &Effect{inner: inner}
}
