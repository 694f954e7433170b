package internal

// PureComputed is a Computed that only subscribes to its dependencies
// while it has listeners of its own — a "lazy, self-unsubscribing"
// variant, after Knockout's pureComputed. With no listeners, Get
// recomputes synchronously on every call, temporarily tracking and then
// immediately dropping its dependencies — it never sits subscribed to
// anything it isn't actively needed by.
type PureComputed struct {
	obs   *Observable
	sub   *Subscription
	owner *Owner

	compute func(*Subscription) any

	active bool
	inCall bool // guards against a cyclic read re-entering Get while inactive
}

// NewPureComputed builds a PureComputed around compute. Unlike Computed,
// construction does not eagerly evaluate: the first Get (or the first
// listener, whichever comes first) does.
func (r *Runtime) NewPureComputed(compute func(*Subscription) any) *PureComputed {
	p := &PureComputed{
		obs:     r.NewObservable(nil),
		owner:   r.NewOwner(),
		compute: compute,
	}
	p.sub = NewSubscription(p.recompute)
	p.obs.SetListenerChangeCB(func(hasListeners bool, ctx any) {
		if hasListeners {
			if !p.active {
				p.activate()
			}
		} else {
			p.deactivate()
		}
	}, nil)

	if parent := r.CurrentOwner(); parent != nil {
		parent.AddChild(p.owner)
		parent.AutoDispose(disposerFunc(p.Dispose))
	}

	return p
}

// Get returns the current value, computing it fresh (and untracking
// immediately afterward) if no listener is keeping this PureComputed
// actively subscribed.
func (p *PureComputed) Get() any {
	if p.active {
		return p.obs.Get()
	}

	if p.inCall {
		panic("rui: cyclic PureComputed read")
	}
	p.inCall = true
	defer func() { p.inCall = false }()

	p.recompute()
	p.sub.DetachAll()

	return p.obs.Get()
}

// DepItem exposes the Subscription's scheduling record as this
// PureComputed's own.
func (p *PureComputed) DepItem() *DepItem {
	return p.sub.DepItem()
}

// Observable exposes the Observable backing this PureComputed's cached
// value, so another Subscription can Use it as a dependency: Use attaches
// its listener before reading, and that attachment alone flips
// hasListeners and activates this PureComputed, so the value read is
// always fresh. Reading this Observable directly, without going through
// Use, bypasses activation and may return a stale cached value.
func (p *PureComputed) Observable() *Observable {
	return p.obs
}

// AddListener registers cb to fire on future changes, activating live
// tracking of this PureComputed's dependencies on the first listener.
func (p *PureComputed) AddListener(cb func(newValue, oldValue any), ctx any) *Listener {
	return p.obs.AddListener(cb, ctx)
}

func (p *PureComputed) activate() {
	p.active = true
	p.recompute()
}

func (p *PureComputed) deactivate() {
	p.active = false
	p.sub.DetachAll()
}

func (p *PureComputed) recompute() {
	p.owner.DisposeChildren()

	p.sub.Evaluate(p.owner, func() {
		value := p.compute(p.sub)
		p.obs.SetAndTrigger(value)
	})
}

// Dispose detaches every dependency listener and disposes the owner
// scoping the read callback's side effects.
func (p *PureComputed) Dispose() {
	p.sub.Dispose()
	p.owner.Dispose()
}
