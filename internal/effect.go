package internal

// Effect is a Subscription whose body runs for its side effects and may
// return a cleanup, run right before the next recompute and on Dispose.
// It's built directly on Subscription rather than wrapping
// Computed/Observable — an effect has no value for anything else to
// depend on, so there's nothing for an Observable to store.
type Effect struct {
	sub   *Subscription
	owner *Owner

	typ EffectType
	fn  func(*Subscription) func()

	cleanup func()
}

// NewEffect builds an Effect of the given type and runs it once,
// synchronously, so its first subscriptions are established immediately
// rather than waiting for the next queue flush.
func (r *Runtime) NewEffect(typ EffectType, fn func(*Subscription) func()) *Effect {
	e := &Effect{
		typ:   typ,
		fn:    fn,
		owner: r.NewOwner(),
	}
	e.sub = NewSubscription(e.scheduleRun)

	if parent := r.CurrentOwner(); parent != nil {
		parent.AddChild(e.owner)
		parent.AutoDispose(disposerFunc(e.Dispose))
	}

	e.run()
	return e
}

// scheduleRun is the Subscription's recompute callback: rather than
// re-running inline, it queues the actual run on the shared EffectQueue.
func (e *Effect) scheduleRun() {
	GetRuntime().effectQueue.Enqueue(e.typ, e.run)
}

func (e *Effect) run() {
	if e.sub.disposed {
		return
	}
	e.owner.DisposeChildren()
	e.runCleanup()

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		for o := e.owner; o != nil; o = o.parent {
			if len(o.catchers) > 0 {
				for _, catcher := range o.catchers {
					catcher(r)
				}
				return
			}
		}
		panic(r)
	}()

	e.sub.Evaluate(e.owner, func() {
		e.cleanup = e.fn(e.sub)
	})
}

func (e *Effect) runCleanup() {
	if e.cleanup == nil {
		return
	}
	cleanup := e.cleanup
	e.cleanup = nil
	cleanup()
}

// Dispose detaches every dependency, runs the last cleanup, and disposes
// whatever the effect body registered on its owner.
func (e *Effect) Dispose() {
	e.sub.Dispose()
	e.runCleanup()
	e.owner.Dispose()
}
