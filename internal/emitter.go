package internal

// Listener is one entry in an Emitter's subscriber list.
type Listener struct {
	cb  func(args ...any)
	ctx any

	emitter *Emitter
	prev    *Listener
	next    *Listener

	detached bool
}

// Dispose detaches the listener from its emitter. Idempotent.
func (l *Listener) Dispose() {
	if l == nil || l.detached {
		return
	}
	l.detached = true
	l.emitter.remove(l)
}

// Emitter is a circular doubly-linked list of listeners with a sentinel
// header, generalized to arbitrary callbacks instead of dependency edges.
type Emitter struct {
	head *Listener // sentinel; head.next is the first real listener

	changeCB    func(hasListeners bool, ctx any)
	changeCBCtx any
}

// NewEmitter returns an initialized, listener-less Emitter.
func NewEmitter() *Emitter {
	sentinel := &Listener{}
	sentinel.prev = sentinel
	sentinel.next = sentinel
	return &Emitter{head: sentinel}
}

// AddListener appends cb to the list and returns a handle to remove it.
// Appending fires the change callback with hasListeners=true.
func (e *Emitter) AddListener(cb func(args ...any), ctx any) *Listener {
	l := &Listener{cb: cb, ctx: ctx, emitter: e}

	tail := e.head.prev
	tail.next = l
	l.prev = tail
	l.next = e.head
	e.head.prev = l

	e.fireChangeCB()

	return l
}

func (e *Emitter) remove(l *Listener) {
	l.prev.next = l.next
	l.next.prev = l.prev
	l.prev = nil
	// l.next is kept so an Emit walk that has already captured l can step
	// past it to the rest of the list.

	e.fireChangeCB()
}

func (e *Emitter) fireChangeCB() {
	if e.changeCB != nil {
		e.changeCB(e.HasListeners(), e.changeCBCtx)
	}
}

// SetChangeCB installs the single change-callback fired on every add/remove.
// Replaces any previously installed callback.
func (e *Emitter) SetChangeCB(cb func(hasListeners bool, ctx any), ctx any) {
	e.changeCB = cb
	e.changeCBCtx = ctx
}

// HasListeners reports whether any listener is currently attached.
func (e *Emitter) HasListeners() bool {
	return e.head.next != e.head
}

// Emit walks the list in insertion order, invoking each listener with args.
// Listeners removed during the walk are skipped (the walker captures next
// before invoking, and a removed listener is stepped over without being
// called). Listeners added during the walk are appended at the tail, just
// before the sentinel; this same walk reaches them, unless they were added
// by the listener that was last in the list when it was invoked.
func (e *Emitter) Emit(args ...any) {
	l := e.head.next
	for l != e.head {
		next := l.next
		if !l.detached {
			l.cb(args...)
		}
		l = next
	}
}

// Dispose detaches every listener without invoking any of them.
func (e *Emitter) Dispose() {
	e.head.next = e.head
	e.head.prev = e.head
	e.changeCB = nil
}
