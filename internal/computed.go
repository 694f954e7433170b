package internal

// Computed is an Observable whose value is produced by a read callback
// run through a Subscription, recomputing only when one of the
// dependencies it actually read last time changes. Dependency tracking
// itself is Subscription's map-based mark/sweep (see subscription.go);
// there is no pending-value double buffer, for the same reason
// Observable has none (observable.go).
type Computed struct {
	obs *Observable
	sub *Subscription

	// owner scopes whatever the read callback creates (nested effects,
	// child Computeds); it is torn down and rebuilt before every recompute
	// so a stale run's side effects never outlive it.
	owner *Owner

	initialized bool
	compute     func(*Subscription) any
}

// NewComputed builds a Computed around compute, evaluating it once
// eagerly so Get() is valid immediately after construction.
func (r *Runtime) NewComputed(compute func(*Subscription) any) *Computed {
	c := &Computed{
		obs:     r.NewObservable(nil),
		owner:   r.NewOwner(),
		compute: compute,
	}
	c.sub = NewSubscription(c.recompute)

	if parent := r.CurrentOwner(); parent != nil {
		parent.AddChild(c.owner)
		parent.AutoDispose(disposerFunc(c.Dispose))
	}

	c.recompute()
	return c
}

// disposerFunc adapts a bare func() to the Disposer interface.
type disposerFunc func()

func (f disposerFunc) Dispose() { f() }

// Get returns the last computed value without registering any dependency
// of its own (use Subscription.Use from within another Computed/effect to
// depend on this one).
func (c *Computed) Get() any {
	return c.obs.Get()
}

// DepItem exposes the Subscription's scheduling record as this Computed's
// own, so another Subscription depending on c folds in c's priority.
func (c *Computed) DepItem() *DepItem {
	return c.sub.DepItem()
}

// Observable exposes the Observable backing this Computed's cached value,
// so another Subscription can Use it as a dependency.
func (c *Computed) Observable() *Observable {
	return c.obs
}

// AddListener registers cb to fire whenever the computed value actually
// changes.
func (c *Computed) AddListener(cb func(newValue, oldValue any), ctx any) *Listener {
	return c.obs.AddListener(cb, ctx)
}

func (c *Computed) recompute() {
	c.owner.DisposeChildren()

	c.sub.Evaluate(c.owner, func() {
		value := c.compute(c.sub)
		if !c.initialized {
			c.initialized = true
			c.obs.SetAndTrigger(value)
			return
		}
		c.obs.Set(value)
	})
}

// Dispose tears down the Subscription (detaching every dependency
// listener) and the owner scoping the read callback's side effects.
func (c *Computed) Dispose() {
	c.sub.Dispose()
	c.owner.Dispose()
}
