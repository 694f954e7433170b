package internal

// Subscription is the dependency-tracking engine shared by Computed,
// PureComputed, and bare effects. Each evaluation marks every
// previously-known dependency as "not in use", lets the read callback
// call Use for each Observable it actually reads (marking that one back
// "in use" and attaching a listener the first time it's seen), then
// sweeps away whatever is left unmarked — a "mark then sweep" discipline
// over a genuinely dynamic dependency set.
type Subscription struct {
	depItem *DepItem
	owner   *Owner

	deps map[*Observable]*depRecord

	disposed bool
}

type depRecord struct {
	listener *Listener
	inUse    bool
}

// NewSubscription returns a Subscription whose DepItem recomputes by
// calling recompute when drained by the scheduler.
func NewSubscription(recompute func()) *Subscription {
	return &Subscription{
		depItem: NewDepItem(recompute),
		deps:    make(map[*Observable]*depRecord),
	}
}

// DepItem returns the scheduling record backing this subscription.
func (s *Subscription) DepItem() *DepItem {
	return s.depItem
}

// Evaluate runs fn with s installed as the current subscription/owner
// (so nested Use calls and OnCleanup registrations attach to s), marking
// stale dependencies before and sweeping them after.
func (s *Subscription) Evaluate(owner *Owner, fn func()) {
	s.depItem.ResetPriority()
	for _, rec := range s.deps {
		rec.inUse = false
	}

	GetRuntime().tracker.RunWithSubscription(s, owner, fn)

	for obs, rec := range s.deps {
		if !rec.inUse {
			rec.listener.Dispose()
			delete(s.deps, obs)
		}
	}
}

// Use reads obs's current value, recording it as a dependency of s: the
// first time obs is seen, a listener is attached that re-enqueues s's
// DepItem on every future change; on every call, obs's contribution to
// s's priority is folded in via dep (obs's own DepItem, or nil for a leaf
// Observable). Dependency capture goes through this explicit call rather
// than an ambient global, so unrelated code reading obs elsewhere is
// never accidentally captured.
func (s *Subscription) Use(obs *Observable, dep *DepItem) any {
	if !GetRuntime().tracker.IsTracking() {
		return obs.Get()
	}
	rec, ok := s.deps[obs]
	if !ok {
		rec = &depRecord{listener: s.attach(obs)}
		s.deps[obs] = rec
	}
	rec.inUse = true
	s.depItem.UseDepItem(dep)
	return obs.Get()
}

func (s *Subscription) attach(obs *Observable) *Listener {
	return obs.AddListener(func(newValue, oldValue any) {
		s.onDepChanged()
	}, nil)
}

func (s *Subscription) onDepChanged() {
	if s.disposed {
		return
	}
	GetRuntime().Schedule(s.depItem)
}

// DetachAll drops every currently-tracked dependency listener without
// marking the Subscription itself disposed — used by PureComputed to shed
// its live subscriptions the moment it goes from having listeners to
// having none, and to drop the transient listeners it picks up from a
// single lazy, temporarily-tracked evaluation while inactive.
func (s *Subscription) DetachAll() {
	for obs, rec := range s.deps {
		rec.listener.Dispose()
		delete(s.deps, obs)
	}
}

// Dispose detaches every dependency listener and evicts the DepItem from
// the scheduler queue, if it happens to be sitting in it.
func (s *Subscription) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true

	for _, rec := range s.deps {
		rec.listener.Dispose()
	}
	s.deps = nil

	GetRuntime().scheduler.Remove(s.depItem)
}
