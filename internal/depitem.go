package internal

// DepItem is the scheduling record attached to every reactive node
// (Computed, PureComputed's Subscription, a bare Subscription/effect).
// Priority is a conservative upper bound on the node's longest path from
// any leaf Observable it depends on; Enqueued is a latch preventing the
// same node from entering the queue twice before it is drained.
type DepItem struct {
	priority int
	enqueued bool

	// Recompute is invoked by the scheduler when this item is drained.
	Recompute func()

	index int // position in the queue's backing array, -1 when not queued
}

// NewDepItem creates a DepItem bound to the given recompute callback.
func NewDepItem(recompute func()) *DepItem {
	return &DepItem{Recompute: recompute, index: -1}
}

// Priority returns the item's current priority.
func (d *DepItem) Priority() int { return d.priority }

// ResetPriority zeroes the priority before a recompute begins using it;
// UseDep then raises it once per dependency actually read.
func (d *DepItem) ResetPriority() { d.priority = 0 }

// UseDep raises d's priority so that it stays above every dependency it
// reads: priority(node) > priority(dep). depPriority is the dependency's
// own priority (0 for a leaf Observable).
func (d *DepItem) UseDep(depPriority int) {
	if want := depPriority + 1; want > d.priority {
		d.priority = want
	}
}

// UseDepItem is UseDep for a dependency that itself has a DepItem (a
// Computed/Subscription depending on another one). A nil dep (e.g. a
// leaf Observable with no DepItem of its own) contributes priority 0.
func (d *DepItem) UseDepItem(dep *DepItem) {
	if dep == nil {
		d.UseDep(0)
		return
	}
	d.UseDep(dep.priority)
}

// Enqueued reports whether the item is currently sitting in the queue.
func (d *DepItem) Enqueued() bool { return d.enqueued }
