package internal

import "sync"

// Tracker holds the "current owner" / "current subscription" state that
// Owner.Run and Subscription evaluation push and pop, plus a
// cross-goroutine misuse guard. Dependency capture itself does not go
// through a Track(node) method on this type (see Subscription.Use):
// dynamic-dependency recording goes through an explicit reader function
// rather than an implicitly-consulted global, specifically so unrelated
// code reading an Observable elsewhere in the same goroutine can't be
// accidentally captured. What remains global here is ownership
// attribution (OnCleanup needs to know "whose child is this") and the
// untracked toggle.
type Tracker struct {
	mu sync.RWMutex

	tracking bool

	executingGID        int64
	currentOwner        *Owner
	currentSubscription *Subscription
}

// NewTracker returns a tracker with tracking enabled.
func NewTracker() *Tracker {
	return &Tracker{tracking: true}
}

// IsTracking reports whether dependency capture is currently enabled.
func (t *Tracker) IsTracking() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tracking
}

// CurrentOwner returns the owner installed by the innermost enclosing
// Owner.Run / Subscription evaluation, or nil.
func (t *Tracker) CurrentOwner() *Owner {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.currentOwner
}

// CurrentSubscription returns the subscription currently evaluating its
// read callback, or nil outside of one.
func (t *Tracker) CurrentSubscription() *Subscription {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.currentSubscription
}

// RunWithOwner runs fn with owner installed as the current owner.
func (t *Tracker) RunWithOwner(owner *Owner, fn func()) {
	t.mu.Lock()
	prevOwner := t.currentOwner
	t.currentOwner = owner
	t.executingGID = getGID()
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.currentOwner = prevOwner
		t.mu.Unlock()
	}()

	fn()
}

// RunWithSubscription runs fn with sub installed as both the current
// owner (so OnCleanup inside the read callback attaches to sub) and the
// current subscription (so Use(sub, ...) calls can assert they're being
// invoked from sub's own evaluation).
func (t *Tracker) RunWithSubscription(sub *Subscription, owner *Owner, fn func()) {
	t.mu.Lock()
	prevOwner := t.currentOwner
	prevSub := t.currentSubscription
	t.currentOwner = owner
	t.currentSubscription = sub
	t.executingGID = getGID()
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.currentOwner = prevOwner
		t.currentSubscription = prevSub
		t.mu.Unlock()
	}()

	fn()
}

// RunUntracked disables dependency capture for the duration of fn.
func (t *Tracker) RunUntracked(fn func()) {
	t.mu.Lock()
	prev := t.tracking
	t.tracking = false
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.tracking = prev
		t.mu.Unlock()
	}()

	fn()
}

// SameGoroutineAsExecuting reports whether the calling goroutine matches
// the one that most recently entered RunWithOwner/RunWithSubscription,
// guarding against cross-goroutine dependency capture.
func (t *Tracker) SameGoroutineAsExecuting() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return getGID() == t.executingGID
}
