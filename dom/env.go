// Package dom is the direct-to-DOM binding layer: element construction
// with inline modifiers, an element-scoped disposer registry, marker-
// bounded dynamic regions, and array reconciliation, grounded primarily
// on ozanturksever-uiwgo's reactivity-scope/comps-helpers/dom-mutation_
// observer files, restructured around an explicit element(tag,
// ...args) builder and marker-comment-node bookkeeping instead of that
// repo's querySelectorAll attribute scanning.
package dom

// Node is the minimal DOM node surface this package needs: enough to
// build a tree, walk it, and mutate attributes/text/children. Document
// nodes, text nodes, comment nodes (the markers dynamic regions use),
// and elements all satisfy it.
type Node interface {
	NodeType() int
	ParentNode() Node
	NextSibling() Node
	PreviousSibling() Node
	FirstChild() Node
	ChildNodes() []Node

	AppendChild(child Node)
	InsertBefore(newChild, reference Node)
	RemoveChild(child Node)
	Remove()

	SetTextContent(s string)
	TextContent() string
}

// Element is a Node that additionally supports attributes.
type Element interface {
	Node

	TagName() string
	SetAttribute(name, value string)
	RemoveAttribute(name string)
	GetAttribute(name string) (string, bool)
}

// DOM node type constants, mirroring the real DOM's.
const (
	NodeTypeElement = 1
	NodeTypeText    = 3
	NodeTypeComment = 8
)

// Document creates the node kinds a running Env needs.
type Document interface {
	CreateElement(tag string) Element
	CreateElementNS(ns, tag string) Element
	CreateTextNode(text string) Node
	CreateComment(text string) Node
}

// Env bundles the document global this package depends on, replaceable
// wholesale for testability.
type Env struct {
	Document Document
}

var envStack []Env

// PushEnv installs env as the active environment; bindings created
// afterward resolve Document through it until PopEnv restores the
// previous one. Grounded on ozanturksever-uiwgo's currentCleanupScope
// push/pop global and ScopeRegistry pairing, applied here to the
// document/window globals instead of to cleanup scopes (this package's
// disposer registry plays that role here).
func PushEnv(env Env) {
	envStack = append(envStack, env)
}

// PopEnv restores the environment active before the most recent PushEnv.
func PopEnv() {
	if len(envStack) == 0 {
		return
	}
	envStack = envStack[:len(envStack)-1]
}

// CurrentEnv returns the active environment, or the fake one if none was
// ever pushed (so tests and non-wasm builds work without ceremony).
func CurrentEnv() Env {
	if len(envStack) == 0 {
		return Env{Document: fakeDocument{}}
	}
	return envStack[len(envStack)-1]
}
