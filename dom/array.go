package dom

import (
	"github.com/corvidkit/rui"
	"github.com/samber/lo"
)

// SpliceDescriptor records the shape of a single array mutation: items[start:start+deleted]
// in the previous slice were replaced by numAdded new items at the same
// position. It always satisfies len(next) == len(prev) - Deleted + NumAdded.
type SpliceDescriptor struct {
	Start    int
	NumAdded int
	Deleted  int
}

// SpliceListener is the handle OnSplice returns; Dispose stops further
// callbacks without affecting the array itself.
type SpliceListener struct {
	dispose func()
}

// Dispose detaches the listener. Safe to call more than once.
func (l *SpliceListener) Dispose() {
	if l == nil || l.dispose == nil {
		return
	}
	l.dispose()
	l.dispose = nil
}

// ObsArray is an Observable[[]T] with slice-mutation convenience methods.
// Dep exposes the underlying cell as a rui.Dependency so ForEach and any
// Reader can read it reactively.
type ObsArray[T any] struct {
	obs             *rui.Observable[[]T]
	spliceListeners []func(next, prev []T, desc SpliceDescriptor)
}

// NewObsArray returns an ObsArray seeded with a copy of initial. Slices
// aren't comparable with `==`, so the observable is built with an
// always-unequal gate: every Set/Splice notifies listeners regardless of
// content.
func NewObsArray[T any](initial []T) *ObsArray[T] {
	obs := rui.NewObservable(append([]T(nil), initial...), rui.WithEqual(func(_, _ []T) bool { return false }))
	return &ObsArray[T]{obs: obs}
}

// Dep exposes the array for Use and ForEach.
func (a *ObsArray[T]) Dep() rui.Dependency { return a.obs }

// Get returns the current backing slice. Treat it as read-only; mutate
// through the methods below so listeners fire.
func (a *ObsArray[T]) Get() []T { return a.obs.Get() }

// Set replaces the whole slice, reported as a single splice that deletes
// everything and adds the whole of items.
func (a *ObsArray[T]) Set(items []T) {
	cur := a.obs.Get()
	next := append([]T(nil), items...)
	a.obs.SetAndTrigger(next)
	a.emitSplice(next, cur, SpliceDescriptor{Start: 0, NumAdded: len(next), Deleted: len(cur)})
}

// Len is len(Get()).
func (a *ObsArray[T]) Len() int { return len(a.obs.Get()) }

// Push appends items at the end.
func (a *ObsArray[T]) Push(items ...T) {
	a.Splice(a.Len(), 0, items...)
}

// Pop removes and returns the last item, if any.
func (a *ObsArray[T]) Pop() (T, bool) {
	n := a.Len()
	if n == 0 {
		var zero T
		return zero, false
	}
	removed := a.Splice(n-1, 1)
	return removed[0], true
}

// Shift removes and returns the first item, if any.
func (a *ObsArray[T]) Shift() (T, bool) {
	if a.Len() == 0 {
		var zero T
		return zero, false
	}
	removed := a.Splice(0, 1)
	return removed[0], true
}

// Unshift inserts items at the start.
func (a *ObsArray[T]) Unshift(items ...T) {
	a.Splice(0, 0, items...)
}

// Splice removes deleteCount items starting at start and inserts items in
// their place, returning the removed items. start and deleteCount are
// clamped to the current length.
func (a *ObsArray[T]) Splice(start, deleteCount int, items ...T) []T {
	cur := a.obs.Get()
	start = lo.Clamp(start, 0, len(cur))
	deleteCount = lo.Clamp(deleteCount, 0, len(cur)-start)

	removed := append([]T(nil), cur[start:start+deleteCount]...)

	next := make([]T, 0, len(cur)-deleteCount+len(items))
	next = append(next, cur[:start]...)
	next = append(next, items...)
	next = append(next, cur[start+deleteCount:]...)

	a.obs.SetAndTrigger(next)
	a.emitSplice(next, cur, SpliceDescriptor{Start: start, NumAdded: len(items), Deleted: deleteCount})
	return removed
}

// OnSplice registers cb to run after every mutation, alongside the
// underlying Observable's own (new, old) notification, carrying the
// {start, numAdded, deleted} descriptor ComputedArray needs to apply a
// change incrementally instead of remapping the whole slice.
func (a *ObsArray[T]) OnSplice(cb func(next, prev []T, desc SpliceDescriptor)) *SpliceListener {
	a.spliceListeners = append(a.spliceListeners, cb)
	idx := len(a.spliceListeners) - 1
	return &SpliceListener{dispose: func() {
		a.spliceListeners[idx] = nil
	}}
}

func (a *ObsArray[T]) emitSplice(next, prev []T, desc SpliceDescriptor) {
	for _, cb := range a.spliceListeners {
		if cb != nil {
			cb(next, prev, desc)
		}
	}
}

// keyedItem pairs a rendered node with the LiveIndex ForEach keeps current
// as the item's position shifts.
type keyedItem struct {
	node  Node
	index *LiveIndex
}

// LiveIndex is the reactive position ForEach hands each render callback.
// It tracks the same element as the array around it changes shape: Get
// reports ok=false once the array has become empty, and otherwise stays
// clamped to [0, length). SetLive(false) freezes it against further
// tracking except the clamp needed to keep it in range; SetLive(true)
// resumes tracking from wherever ForEach currently places this item.
type LiveIndex struct {
	obs  *rui.Observable[int]
	live bool
}

func newLiveIndex(i int) *LiveIndex {
	return &LiveIndex{obs: rui.NewObservable(i), live: true}
}

// Dep exposes the index for Use.
func (i *LiveIndex) Dep() rui.Dependency { return i.obs }

// Get returns the current index without tracking it as a dependency. ok is
// false when the backing array is empty (no valid index exists).
func (i *LiveIndex) Get() (index int, ok bool) {
	v := i.obs.Get()
	return v, v >= 0
}

// SetLive toggles whether this index follows the array's changes.
func (i *LiveIndex) SetLive(live bool) { i.live = live }

// update is ForEach's per-render hook: pos is this item's position in the
// just-computed slice, length is that slice's length.
func (i *LiveIndex) update(pos, length int) {
	if length == 0 {
		i.obs.Set(-1)
		return
	}
	if !i.live {
		pos = i.obs.Get()
	}
	i.obs.Set(lo.Clamp(pos, 0, length-1))
}

// ForEach renders one Node per element of the slice dep currently holds,
// reacting to future changes by reusing nodes for keys that persist,
// inserting nodes for new keys, and disposing nodes for removed keys,
// rather than tearing down and rebuilding the whole list on every change.
// Persisted nodes (and whatever reactive bindings their subtrees hold) are
// repositioned in place, never disposed. render receives each item's
// current value and its LiveIndex.
func ForEach[T any, K comparable](
	source *ObsArray[T],
	key func(item T) K,
	render func(item T, index *LiveIndex) Node,
) []Node {
	rg := newRegion("foreach")
	items := map[K]*keyedItem{}

	eff := rui.NewRenderEffect(func(r *rui.Reader) func() {
		values := rui.Use[[]T](r, source.Dep())

		newItems := make(map[K]*keyedItem, len(values))
		nodes := make([]Node, len(values))

		for i, v := range values {
			k := key(v)

			existing, ok := items[k]
			if ok {
				existing.index.update(i, len(values))
				newItems[k] = existing
				nodes[i] = existing.node
				continue
			}

			live := newLiveIndex(i)
			node := render(v, live)
			newItems[k] = &keyedItem{node: node, index: live}
			nodes[i] = node
		}

		for k, it := range items {
			if _, stillPresent := newItems[k]; !stillPresent {
				it.index.update(0, 0)
				DomDispose(it.node)
			}
		}

		items = newItems
		rg.applyReconciled(nodes)
		return nil
	})

	OnDisposeElem(rg.Pre, eff.Dispose)
	return rg.fragment()
}

// ForEachAttr is ForEach wrapped as an Element modifier.
func ForEachAttr[T any, K comparable](
	source *ObsArray[T],
	key func(item T) K,
	render func(item T, index *LiveIndex) Node,
) func(Element) {
	return func(el Element) {
		for _, n := range ForEach(source, key, render) {
			el.AppendChild(n)
		}
	}
}

// DerivedArray is the read-only array ComputedArray produces: an
// incrementally maintained mapping of a source ObsArray's elements. It
// offers Dep/Get/OnSplice like an ObsArray, so it can be read with Use;
// ForEach and ComputedArray take an *ObsArray and do not accept it.
type DerivedArray[U any] struct {
	obs             *rui.Observable[[]U]
	spliceListeners []func(next, prev []U, desc SpliceDescriptor)
}

// Dep exposes the derived slice for Use.
func (d *DerivedArray[U]) Dep() rui.Dependency { return d.obs }

// Get returns the current derived slice.
func (d *DerivedArray[U]) Get() []U { return d.obs.Get() }

// OnSplice registers cb to run after every derived-array update, carrying
// on the splice descriptor ComputedArray re-emits.
func (d *DerivedArray[U]) OnSplice(cb func(next, prev []U, desc SpliceDescriptor)) *SpliceListener {
	d.spliceListeners = append(d.spliceListeners, cb)
	idx := len(d.spliceListeners) - 1
	return &SpliceListener{dispose: func() {
		d.spliceListeners[idx] = nil
	}}
}

func (d *DerivedArray[U]) emitSplice(next, prev []U, desc SpliceDescriptor) {
	for _, cb := range d.spliceListeners {
		if cb != nil {
			cb(next, prev, desc)
		}
	}
}

// ComputedArray derives a DerivedArray[U] from source by mapping each
// element with fn. Every source splice is applied incrementally: fn runs
// only over the newly added elements, which are spliced into the derived
// sequence at the same position, and a corresponding splice descriptor is
// re-emitted for downstream consumers. There is no whole-slice remap on
// each change. ObsArray never coalesces more than one descriptor per
// mutation, so a source reset (Set) already falls out of this same
// formula as the degenerate case of deleting everything and adding the
// whole slice.
func ComputedArray[T, U any](source *ObsArray[T], fn func(item T, index int) U) *DerivedArray[U] {
	initial := lo.Map(source.Get(), func(item T, index int) U { return fn(item, index) })
	d := &DerivedArray[U]{
		obs: rui.NewObservable(append([]U(nil), initial...), rui.WithEqual(func(_, _ []U) bool { return false })),
	}

	source.OnSplice(func(next, prev []T, desc SpliceDescriptor) {
		cur := d.obs.Get()

		added := make([]U, desc.NumAdded)
		for i := 0; i < desc.NumAdded; i++ {
			added[i] = fn(next[desc.Start+i], desc.Start+i)
		}

		out := make([]U, 0, len(cur)-desc.Deleted+desc.NumAdded)
		out = append(out, cur[:desc.Start]...)
		out = append(out, added...)
		out = append(out, cur[desc.Start+desc.Deleted:]...)

		d.obs.SetAndTrigger(out)
		d.emitSplice(out, cur, desc)
	})

	return d
}
