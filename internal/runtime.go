package internal

// Runtime is the per-goroutine container for the scheduler, the tracker,
// and the effect queue (see DESIGN.md). GetRuntime, which resolves the
// Runtime for the calling goroutine, lives in runtime_default.go/
// runtime_wasm.go since its strategy differs by build target.
type Runtime struct {
	scheduler   *Scheduler
	tracker     *Tracker
	effectQueue *EffectQueue
}

// NewRuntime returns a freshly wired Runtime.
func NewRuntime() *Runtime {
	return &Runtime{
		scheduler:   NewScheduler(),
		tracker:     NewTracker(),
		effectQueue: NewEffectQueue(),
	}
}

// CurrentOwner returns the owner currently installed by Owner.Run or a
// Subscription's evaluation.
func (r *Runtime) CurrentOwner() *Owner {
	return r.tracker.CurrentOwner()
}

// CurrentSubscription returns the subscription currently evaluating, or
// nil.
func (r *Runtime) CurrentSubscription() *Subscription {
	return r.tracker.CurrentSubscription()
}

// OnCleanup registers fn with the current owner, if any. A no-op outside
// of any Owner.Run/Subscription evaluation.
func (r *Runtime) OnCleanup(fn func()) {
	if owner := r.CurrentOwner(); owner != nil {
		owner.OnDispose(fn)
	}
}

// Untrack runs fn with dependency capture disabled.
func (r *Runtime) Untrack(fn func()) {
	r.tracker.RunUntracked(fn)
}

// Schedule enqueues item. Draining happens only when the outermost
// RunAndFlush/NewBatch scope closes — a bare Schedule call never drains on
// its own, so that every listener notified by a single Set has a chance to
// enqueue before any of them recomputes.
func (r *Runtime) Schedule(item *DepItem) {
	r.scheduler.Enqueue(item)
}

// RunAndFlush runs fn as a single BundleChanges scope and, if this call
// wasn't itself nested inside another such scope, drains the scheduler and
// flushes queued effects. This is the sole entry point mutations go
// through — internal.Observable.Set itself never schedules a drain, so
// that recomputes triggered from inside one can freely call Set again
// without re-entering the drain loop (guarded by Scheduler's bundleDepth).
func (r *Runtime) RunAndFlush(fn func()) {
	r.scheduler.BundleChanges(fn)
	if !r.scheduler.IsBundling() {
		r.flushEffects()
	}
}

// NewBatch is RunAndFlush under the name bundleChanges API uses.
func (r *Runtime) NewBatch(fn func()) {
	r.RunAndFlush(fn)
}

func (r *Runtime) flushEffects() {
	r.effectQueue.RunEffects(EffectRender)
	r.effectQueue.RunEffects(EffectUser)
}
