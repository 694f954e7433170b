package internal

// Holder is a single-slot Owner: it holds at most one Disposer at a time,
// and replacing or disposing the holder disposes whatever was held. It's
// built directly on Observable acting in "holder mode" (asHolder true)
// rather than duplicating Observable's store-and-emit logic.
type Holder struct {
	obs *Observable
}

// NewHolder returns an empty Holder.
func (r *Runtime) NewHolder() *Holder {
	obs := r.NewObservable(nil)
	obs.asHolder = true
	return &Holder{obs: obs}
}

// Get returns the currently held Disposer, or nil if empty.
func (h *Holder) Get() Disposer {
	v := h.obs.Get()
	if v == nil {
		return nil
	}
	return v.(Disposer)
}

// Set replaces the held value, disposing whatever was previously held.
// Setting nil empties the holder. If d exposes OnDispose (as *Owner
// does), the holder subscribes to it: disposing d by any other means
// empties the slot without re-disposing it, rather than leaving a stale
// reference for a later Set/Dispose to double-dispose.
func (h *Holder) Set(d Disposer) {
	if d == nil {
		h.obs.SetAndTrigger(nil)
		return
	}
	if notifier, ok := d.(interface{ OnDispose(func()) }); ok {
		notifier.OnDispose(func() { h.clearIfStillHolding(d) })
	}
	h.obs.SetAndTrigger(d)
}

// clearIfStillHolding empties the slot without disposing anything. Called
// from a held value's own OnDispose notification, so whatever it guarded
// against has already been cleaned up; it only acts if h still points at
// exactly d, guarding against a stale notification from a value the
// holder has since replaced.
func (h *Holder) clearIfStillHolding(d Disposer) {
	if h.obs.Get() == d {
		h.obs.ClearSilently()
	}
}

// Dispose empties the holder, disposing whatever it held.
func (h *Holder) Dispose() {
	h.obs.Dispose()
	h.obs.ClearSilently()
}

// MultiHolder is a Holder that holds an ordered set of Disposables,
// disposing all of them (in reverse-registration order, like Owner) when
// cleared or disposed.
type MultiHolder struct {
	owner *Owner
}

// NewMultiHolder returns an empty MultiHolder.
func (r *Runtime) NewMultiHolder() *MultiHolder {
	return &MultiHolder{owner: r.NewOwner()}
}

// Add registers d to be disposed the next time Clear or Dispose runs.
func (m *MultiHolder) Add(d Disposer) {
	m.owner.AutoDispose(d)
}

// Clear disposes every held Disposable and empties the holder, leaving it
// reusable for further Add calls. Add registers into the owner's disposal
// entries (not its children), so emptying it means disposing it outright
// and swapping in a fresh one.
func (m *MultiHolder) Clear() {
	m.owner.Dispose()
	m.owner = GetRuntime().NewOwner()
}

// Dispose disposes every held Disposable; the MultiHolder itself cannot
// be reused afterward.
func (m *MultiHolder) Dispose() {
	m.owner.Dispose()
}
