package dom

// disposerRegistry substitutes for a weak map keyed by DOM node: Go has
// no weak references, and a real browser Node is an opaque js.Value we
// can't attach fields to, so each node is assigned a generated id the
// first time a disposer is registered against it, and the registry is
// keyed on that id instead. Grounded on ozanturksever-uiwgo's
// ScopeRegistry generated-id-map pattern (dom-mutation_observer.go.go).
type disposerRegistry struct {
	nextID    int
	ids       map[Node]int
	disposers map[int][]func()
}

var registry = &disposerRegistry{
	ids:       map[Node]int{},
	disposers: map[int][]func(){},
}

func (r *disposerRegistry) idFor(n Node) int {
	if id, ok := r.ids[n]; ok {
		return id
	}
	r.nextID++
	r.ids[n] = r.nextID
	return r.nextID
}

// OnDisposeElem registers fn to run when n (or an ancestor) is torn down
// via DomDispose. The reactive regions of this package (DomComputed,
// Maybe, ForEach) register their effect's Dispose through this, so a
// subtree removal cleans up those effects, not just the DOM nodes.
func OnDisposeElem(n Node, fn func()) {
	id := registry.idFor(n)
	registry.disposers[id] = append(registry.disposers[id], fn)
}

// DomDispose walks n's subtree post-order, running and clearing every
// disposer registered (directly or via OnDisposeElem) against each node,
// then detaches n from its parent. Safe to call on a node with no
// registered disposers.
func DomDispose(n Node) {
	for _, child := range n.ChildNodes() {
		DomDispose(child)
	}
	runDisposers(n)
	n.Remove()
}

func runDisposers(n Node) {
	id, ok := registry.ids[n]
	if !ok {
		return
	}
	fns := registry.disposers[id]
	delete(registry.disposers, id)
	delete(registry.ids, n)
	for _, fn := range fns {
		fn()
	}
}

// domDispose is DomDispose with the final parent detachment skipped —
// used internally by a failed Element build to tear down nodes that
// were never attached to anything in the first place.
func domDispose(n Node) {
	for _, child := range n.ChildNodes() {
		domDispose(child)
	}
	runDisposers(n)
}
