//go:build js && wasm

package dom

import (
	"syscall/js"

	domv2 "honnef.co/go/js/dom/v2"
)

// realNode/realElement wrap honnef.co/go/js/dom/v2's Node/Element so the
// rest of this package can stay agnostic of syscall/js — the typed
// wrapper replaces raw js.Value.Call/.Set for everything but the escape
// hatches below.
type realNode struct {
	n domv2.Node
}

func wrapNode(n domv2.Node) Node {
	if n == nil {
		return nil
	}
	return realNode{n: n}
}

func (r realNode) NodeType() int { return int(r.n.NodeType()) }

func (r realNode) ParentNode() Node      { return wrapNode(r.n.ParentNode()) }
func (r realNode) NextSibling() Node     { return wrapNode(r.n.NextSibling()) }
func (r realNode) PreviousSibling() Node { return wrapNode(r.n.PreviousSibling()) }
func (r realNode) FirstChild() Node      { return wrapNode(r.n.FirstChild()) }

func (r realNode) ChildNodes() []Node {
	kids := r.n.ChildNodes()
	out := make([]Node, len(kids))
	for i, k := range kids {
		out[i] = wrapNode(k)
	}
	return out
}

func (r realNode) AppendChild(child Node) {
	r.n.AppendChild(child.(interface{ raw() domv2.Node }).raw())
}

func (r realNode) InsertBefore(newChild, reference Node) {
	var ref domv2.Node
	if reference != nil {
		ref = reference.(interface{ raw() domv2.Node }).raw()
	}
	r.n.InsertBefore(newChild.(interface{ raw() domv2.Node }).raw(), ref)
}

func (r realNode) RemoveChild(child Node) {
	r.n.RemoveChild(child.(interface{ raw() domv2.Node }).raw())
}

func (r realNode) Remove() {
	if p := r.n.ParentNode(); p != nil {
		p.RemoveChild(r.n)
	}
}

func (r realNode) SetTextContent(s string) { r.n.SetTextContent(s) }
func (r realNode) TextContent() string     { return r.n.TextContent() }

func (r realNode) raw() domv2.Node { return r.n }

type realElement struct {
	realNode
	e domv2.Element
}

func wrapElement(e domv2.Element) Element {
	if e == nil {
		return nil
	}
	return realElement{realNode: realNode{n: e}, e: e}
}

func (r realElement) TagName() string { return r.e.TagName() }

func (r realElement) SetAttribute(name, value string) { r.e.SetAttribute(name, value) }
func (r realElement) RemoveAttribute(name string)      { r.e.RemoveAttribute(name) }
func (r realElement) GetAttribute(name string) (string, bool) {
	if !r.e.HasAttribute(name) {
		return "", false
	}
	return r.e.GetAttribute(name), true
}

type realDocument struct {
	doc domv2.Document
}

func (d realDocument) CreateElement(tag string) Element {
	return wrapElement(d.doc.CreateElement(tag))
}

func (d realDocument) CreateElementNS(ns, tag string) Element {
	return wrapElement(d.doc.CreateElementNS(ns, tag))
}

func (d realDocument) CreateTextNode(text string) Node {
	return wrapNode(d.doc.CreateTextNode(text))
}

func (d realDocument) CreateComment(text string) Node {
	return wrapNode(d.doc.CreateComment(text))
}

// DefaultEnv returns the browser-backed Env, wrapping the global document
// via honnef.co/go/js/dom/v2.
func DefaultEnv() Env {
	return Env{Document: realDocument{doc: domv2.GetWindow().Document()}}
}

// Underlying returns n's raw js.Value, escape-hatching out of this
// package's Node/Element abstraction for concerns it deliberately doesn't
// cover, like event binding — this package leaves wiring a listener to
// syscall/js directly rather than growing its own event API.
func Underlying(n Node) js.Value {
	switch v := n.(type) {
	case realElement:
		return v.e.Underlying()
	case realNode:
		return v.n.Underlying()
	default:
		return js.Value{}
	}
}

// OnClick wires a click listener directly via syscall/js.
func OnClick(el Element, fn func()) {
	Underlying(el).Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	}))
}

// Mount appends el as a child of document.body.
func Mount(el Element) {
	js.Global().Get("document").Get("body").Call("appendChild", Underlying(el))
}
