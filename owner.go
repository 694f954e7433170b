package rui

import "github.com/corvidkit/rui/internal"

// Owner manages the lifecycle of reactive nodes and arbitrary resources
// created within its Run scope, disposing them in reverse-registration
// order when the owner itself is disposed.
type Owner struct {
	inner *internal.Owner
}

// NewOwner returns a fresh, empty Owner. Called while another owner is
// current (inside Owner.Run or a reactive evaluation), it becomes a child
// of that owner: it is disposed along with it, and context lookups and
// panics fall through to it.
func NewOwner() *Owner {
	rt := internal.GetRuntime()
	o := &Owner{inner: rt.NewOwner()}
	if parent := rt.CurrentOwner(); parent != nil {
		parent.AddChild(o.inner)
	}
	return o
}

// Run executes fn with this owner installed as the current owner, so
// every reactive node created inside fn (and every OnCleanup call) binds
// to it. A panic propagating out of fn is handed to o's OnError
// catchers, if any; otherwise it re-panics.
func (o *Owner) Run(fn func()) {
	o.inner.Run(fn)
}

// IsDisposed reports whether Dispose has already run to completion.
func (o *Owner) IsDisposed() bool {
	return o.inner.IsDisposed()
}

// AutoDispose registers d.Dispose to run when o is disposed.
func (o *Owner) AutoDispose(d Disposer) {
	o.inner.AutoDispose(d)
}

// OnDispose registers a bare cleanup callback to run when o is disposed.
func (o *Owner) OnDispose(fn func()) {
	o.inner.OnDispose(fn)
}

// OnError registers a panic handler invoked by Run when fn panics, and
// when an effect owned by o or by one of its descendant owners panics
// while re-running and no nearer owner has a handler.
func (o *Owner) OnError(fn func(any)) {
	o.inner.OnError(fn)
}

// Dispose disposes every child owner and every registered resource, in
// reverse-registration order, then itself. Idempotent.
func (o *Owner) Dispose() {
	o.inner.Dispose()
}

// Create runs build with a fresh sentinel owner installed as the current
// owner, so that anything build creates via OnCleanup/AutoDispose against
// the ambient owner is torn down if build panics before returning. On
// success, if owner is non-nil, the sentinel's accumulated resources are
// reparented under owner and owner.AutoDispose(obj) is called, tying the
// whole thing to owner's lifetime; if owner is nil, construction
// succeeded and nothing further is done.
func Create[T Disposer](owner *Owner, build func() T) T {
	sentinel := &Owner{inner: internal.GetRuntime().NewOwner()}

	var obj T
	panicked := func() (p any) {
		defer func() { p = recover() }()
		sentinel.Run(func() { obj = build() })
		return nil
	}()

	if panicked != nil {
		sentinel.Dispose()
		panic(panicked)
	}

	if owner != nil {
		owner.inner.AddChild(sentinel.inner)
		owner.AutoDispose(obj)
	}

	return obj
}
