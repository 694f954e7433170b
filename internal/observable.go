package internal

// Observable holds one value of arbitrary type and an Emitter that fires
// (newValue, oldValue) on every Set that actually changes the value.
// There is no pending-value double buffering; listeners observe the new
// value synchronously as soon as Set stores it.
type Observable struct {
	value   any
	emitter *Emitter

	equal func(a, b any) bool

	// asHolder, when true, makes Set dispose the outgoing value if it
	// implements Disposer — the "Observable acting as a Holder" behavior.
	// Set by Holder.
	asHolder bool

	onPanic func(any)
}

// NewObservable returns an Observable seeded with initial and a default
// reference-equality gate.
func (r *Runtime) NewObservable(initial any) *Observable {
	return &Observable{
		value:   initial,
		emitter: NewEmitter(),
		equal:   defaultEqual,
	}
}

func defaultEqual(a, b any) bool { return a == b }

// SetEqual overrides the equality gate used by Set.
func (o *Observable) SetEqual(fn func(a, b any) bool) {
	if fn != nil {
		o.equal = fn
	}
}

// SetOnPanic installs the panic sink used when disposing an outgoing
// held value panics (Set's own disposal path, for an asHolder
// Observable) — routed through onPanic if set; with no sink installed,
// the panic is recovered and discarded.
func (o *Observable) SetOnPanic(fn func(any)) {
	o.onPanic = fn
}

// Get returns the current value without registering any dependency;
// dependency capture is the caller's (Subscription.Use's) job.
func (o *Observable) Get() any {
	return o.value
}

// Set stores v and emits (v, previous) to every listener, unless v
// equals the previous value under o.equal. When o is acting as a Holder,
// the outgoing value is disposed after the emit.
func (o *Observable) Set(v any) {
	if o.equal(o.value, v) {
		return
	}
	o.setAndTrigger(v)
}

// SetAndTrigger stores v and always emits, bypassing the equality gate.
func (o *Observable) SetAndTrigger(v any) {
	o.setAndTrigger(v)
}

func (o *Observable) setAndTrigger(v any) {
	previous := o.value
	o.value = v
	o.emitter.Emit(v, previous)

	if o.asHolder {
		disposeIfDisposer(previous, o.onPanic)
	}
}

func disposeIfDisposer(v any, onPanic func(any)) {
	d, ok := v.(Disposer)
	if !ok || d == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			if onPanic != nil {
				onPanic(r)
			}
		}
	}()
	d.Dispose()
}

// AddListener registers cb to fire on every future Set/SetAndTrigger.
func (o *Observable) AddListener(cb func(newValue, oldValue any), ctx any) *Listener {
	return o.emitter.AddListener(func(args ...any) {
		cb(args[0], args[1])
	}, ctx)
}

// HasListeners reports whether any listener is currently attached.
func (o *Observable) HasListeners() bool {
	return o.emitter.HasListeners()
}

// SetListenerChangeCB installs the Emitter's single change callback,
// fired on every listener add and remove with whether any listener remains
// — this is what lets PureComputed activate/deactivate its Subscription.
func (o *Observable) SetListenerChangeCB(cb func(hasListeners bool, ctx any), ctx any) {
	o.emitter.SetChangeCB(cb, ctx)
}

// ClearSilently replaces the held value with nil without emitting and
// without running the asHolder outgoing-value dispose. For a Holder whose
// held value has already disposed itself and notified back; there is
// nothing left to dispose, only the slot to empty.
func (o *Observable) ClearSilently() {
	o.value = nil
}

// Dispose detaches every listener and, if acting as a Holder, disposes
// the currently held value.
func (o *Observable) Dispose() {
	if o.asHolder {
		disposeIfDisposer(o.value, o.onPanic)
	}
	o.emitter.Dispose()
}
