package internal

import (
	"iter"
	"log"
)

// disposeEntry is one (resource, disposer) pair in an Owner's ordered
// disposal list ("Disposable / Owner").
type disposeEntry struct {
	resource any // kept for the log message on disposer failure; may be nil
	disposer func()
}

// Owner carries an ordered list of disposal entries plus a parent/child
// ownership tree. isDisposed marks an owner whose Dispose has run.
type Owner struct {
	entries []disposeEntry
	isDisposed bool

	catchers []func(any)

	// context holds this owner's own context.Set values; context.Value
	// falls back to the parent chain when a key is absent here.
	context map[any]any

	parent       *Owner
	prevSibling  *Owner
	nextSibling  *Owner
	childrenHead *Owner
}

// NewOwner returns a fresh, empty Owner with no parent.
func (r *Runtime) NewOwner() *Owner {
	return &Owner{context: make(map[any]any)}
}

// Run executes fn with this owner installed as the current owner, so that
// every reactive node created inside fn becomes a child of o. A panic
// propagating out of fn is handed to o's OnError catchers, if any;
// otherwise it re-panics, per Owner.Run.
func (o *Owner) Run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if len(o.catchers) == 0 {
				panic(r)
			}
			for _, catcher := range o.catchers {
				catcher(r)
			}
		}
	}()

	GetRuntime().tracker.RunWithOwner(o, fn)
}

// AddChild links child under parent, at the head of parent's children.
func (parent *Owner) AddChild(child *Owner) {
	child.parent = parent
	child.prevSibling = nil
	child.nextSibling = parent.childrenHead

	if parent.childrenHead != nil {
		parent.childrenHead.prevSibling = child
	}
	parent.childrenHead = child
}

// Children iterates this owner's direct children.
func (o *Owner) Children() iter.Seq[*Owner] {
	return func(yield func(*Owner) bool) {
		for child := o.childrenHead; child != nil; child = child.nextSibling {
			if !yield(child) {
				return
			}
		}
	}
}

// IsDisposed reports whether Dispose has already run to completion.
func (o *Owner) IsDisposed() bool {
	return o.isDisposed
}

// AutoDispose registers obj's Dispose method to run when o is disposed,
//: "autoDispose(obj) pushes {obj, obj.dispose}".
func (o *Owner) AutoDispose(obj Disposer) {
	if obj == nil {
		return
	}
	o.OnDisposeNamed(obj, obj.Dispose)
}

// OnDispose registers a bare cleanup callback, with no owning resource to
// name in failure logs.
func (o *Owner) OnDispose(fn func()) {
	o.OnDisposeNamed(nil, fn)
}

// OnDisposeNamed is OnDispose/AutoDispose's shared path; resource is kept
// only to improve the disposer-failure log message.
func (o *Owner) OnDisposeNamed(resource any, fn func()) {
	if o.isDisposed {
		// Disposing into an already-disposed owner runs immediately,
		// matching Holder semantics extended to Owner.
		fn()
		return
	}
	o.entries = append(o.entries, disposeEntry{resource: resource, disposer: fn})
}

// WipeOnDispose registers reset, a function that nulls the fields of the
// owning object, as an ordinary disposal entry. It runs in the same
// reverse-registration order as every other entry, so it runs after the
// entries registered before it but before any registered after it; it is
// not moved to the end of the disposal pass. Go has no
// generic "null every property" reflection step worth trusting on
// arbitrary structs, so callers supply the reset closure themselves;
// describes the behavior, not a reflection mechanism.
func (o *Owner) WipeOnDispose(reset func()) {
	o.OnDispose(reset)
}

// OnError registers a panic handler invoked by Run when fn panics, and by
// an Effect below o in the owner tree whose re-run panics when no nearer
// owner has a handler.
func (o *Owner) OnError(fn func(any)) {
	o.catchers = append(o.catchers, fn)
}

// Dispose runs DisposeChildren, then this owner's own disposal entries in
// reverse-registration order, catching and logging individual disposer
// panics so the rest still run. Idempotent: the list is
// nulled before iterating, so a disposer that re-enters Dispose sees it as
// already disposed.
func (o *Owner) Dispose() {
	if o.isDisposed {
		return
	}
	o.isDisposed = true

	o.DisposeChildren()

	entries := o.entries
	o.entries = nil

	for i := len(entries) - 1; i >= 0; i-- {
		runDisposer(entries[i])
	}
}

func runDisposer(e disposeEntry) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("rui: disposer for %T failed: %v", e.resource, r)
		}
	}()
	e.disposer()
}

// DisposeChildren disposes every child owner, in no particular order
// beyond each child's own reverse-registration discipline, and detaches
// them from the tree.
func (o *Owner) DisposeChildren() {
	for child := range o.Children() {
		child.Dispose()
	}
	o.childrenHead = nil
}

// Disposer is anything with a Dispose method; AutoDispose accepts it.
type Disposer interface {
	Dispose()
}
