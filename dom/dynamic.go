package dom

import (
	"fmt"

	"github.com/corvidkit/rui"
)

// replaceContent removes every sibling strictly between markerPre and
// markerPost and inserts newContent in their place, leaving both markers
// untouched. This is the primitive every dynamic region (DomComputed,
// Maybe, array reconciliation) bottoms out on.
func replaceContent(markerPre, markerPost Node, newContent []Node) {
	parent := markerPre.ParentNode()
	if parent == nil {
		return
	}

	for n := markerPre.NextSibling(); n != nil && n != markerPost; {
		next := n.NextSibling()
		DomDispose(n)
		n = next
	}

	for _, n := range newContent {
		parent.InsertBefore(n, markerPost)
	}
}

// region is a marker-bounded slot in the tree: two comment nodes
// bracketing whatever content is current, reactively replaced as its
// source changes. A region's first render happens before its markers
// have a parent (the caller hasn't spliced the returned fragment into
// the tree yet), so that first render's nodes are held in initial and
// returned as part of the fragment instead of spliced via replaceContent.
type region struct {
	Pre, Post Node
	initial   []Node
}

func newRegion(label string) *region {
	return &region{
		Pre:  CurrentEnv().Document.CreateComment(label + "-start"),
		Post: CurrentEnv().Document.CreateComment(label + "-end"),
	}
}

// apply is what the reactive callback calls on every render, including
// the first.
func (rg *region) apply(nodes []Node) {
	if rg.Pre.ParentNode() == nil {
		rg.initial = nodes
		return
	}
	replaceContent(rg.Pre, rg.Post, nodes)
}

// applyReconciled is apply's counterpart for regions whose content has
// persistent identity across renders (ForEach's keyed nodes): it never
// disposes anything. The caller has already disposed whatever it removed;
// everything passed here is either a freshly rendered node or one being
// repositioned. InsertBefore detaches a node from wherever it currently
// sits before reinserting it, so passing an already-attached node here
// moves it in place instead of tearing it down and rebuilding it.
func (rg *region) applyReconciled(nodes []Node) {
	if rg.Pre.ParentNode() == nil {
		rg.initial = nodes
		return
	}
	parent := rg.Pre.ParentNode()
	for _, n := range nodes {
		parent.InsertBefore(n, rg.Post)
	}
}

// fragment returns the full [Pre, initial content..., Post] sequence to
// splice into a caller's tree.
func (rg *region) fragment() []Node {
	out := make([]Node, 0, len(rg.initial)+2)
	out = append(out, rg.Pre)
	out = append(out, rg.initial...)
	out = append(out, rg.Post)
	return out
}

// normalizeContent accepts nil, a single Node, []Node, or any other value
// (stringified into a text node) and returns a []Node, matching the
// render-function return shapes DomComputed/Maybe allow.
func normalizeContent(v any) []Node {
	switch x := v.(type) {
	case nil:
		return nil
	case Node:
		return []Node{x}
	case []Node:
		return x
	default:
		return []Node{CurrentEnv().Document.CreateTextNode(fmt.Sprint(x))}
	}
}

// DomComputed renders render(rui.Use[T](r, dep)) into a marker-bounded
// region, re-rendering every time dep changes. render may return nil, a
// single Node, []Node, or any other value, which is rendered as a text
// node. Returns the full fragment (both markers plus
// current content) for a caller to splice into its own tree.
func DomComputed[T any](dep rui.Dependency, render func(T) any) []Node {
	rg := newRegion("computed")

	eff := rui.NewRenderEffect(func(r *rui.Reader) func() {
		value := rui.Use[T](r, dep)
		rg.apply(normalizeContent(render(value)))
		return nil
	})

	OnDisposeElem(rg.Pre, eff.Dispose)
	return rg.fragment()
}

// Computed is DomComputed wrapped as an Element modifier, so it can be
// passed directly as an Element/Update argument: Element("div",
// dom.Computed(count, func(n int) any { return fmt.Sprint(n) })).
func Computed[T any](dep rui.Dependency, render func(T) any) func(Element) {
	return func(el Element) {
		for _, n := range DomComputed(dep, render) {
			el.AppendChild(n)
		}
	}
}

// Maybe renders render() into a marker-bounded region only while cond's
// value is true, disposing its content the moment it goes false.
// Returns the full fragment to splice in.
func Maybe(cond rui.Dependency, render func() any) []Node {
	rg := newRegion("maybe")

	eff := rui.NewRenderEffect(func(r *rui.Reader) func() {
		if !rui.Use[bool](r, cond) {
			rg.apply(nil)
			return nil
		}
		rg.apply(normalizeContent(render()))
		return nil
	})

	OnDisposeElem(rg.Pre, eff.Dispose)
	return rg.fragment()
}

// When is Maybe wrapped as an Element modifier.
func When(cond rui.Dependency, render func() any) func(Element) {
	return func(el Element) {
		for _, n := range Maybe(cond, render) {
			el.AppendChild(n)
		}
	}
}
