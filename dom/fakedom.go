package dom

// fakeNode/fakeElement/fakeDocument are a minimal, dependency-free DOM
// implementation satisfying Node/Element/Document, used whenever no Env
// has been pushed (non-wasm builds, and unit tests of the reconciliation
// logic).
type fakeNode struct {
	nodeType int
	tag      string
	text     string
	attrs    map[string]string

	parent   *fakeNode
	children []*fakeNode
}

func newFakeNode(nodeType int, tag string) *fakeNode {
	return &fakeNode{nodeType: nodeType, tag: tag, attrs: map[string]string{}}
}

func (n *fakeNode) NodeType() int { return n.nodeType }

func (n *fakeNode) ParentNode() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *fakeNode) indexInParent() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	return -1
}

func (n *fakeNode) NextSibling() Node {
	i := n.indexInParent()
	if i < 0 || i+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[i+1]
}

func (n *fakeNode) PreviousSibling() Node {
	i := n.indexInParent()
	if i <= 0 {
		return nil
	}
	return n.parent.children[i-1]
}

func (n *fakeNode) FirstChild() Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

func (n *fakeNode) ChildNodes() []Node {
	out := make([]Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *fakeNode) AppendChild(child Node) {
	c := child.(*fakeNode)
	c.detach()
	c.parent = n
	n.children = append(n.children, c)
}

func (n *fakeNode) InsertBefore(newChild, reference Node) {
	c := newChild.(*fakeNode)
	c.detach()
	c.parent = n

	if reference == nil {
		n.children = append(n.children, c)
		return
	}
	ref := reference.(*fakeNode)
	idx := len(n.children)
	for i, child := range n.children {
		if child == ref {
			idx = i
			break
		}
	}
	n.children = append(n.children, nil)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = c
}

func (n *fakeNode) RemoveChild(child Node) {
	child.(*fakeNode).detach()
}

func (n *fakeNode) Remove() {
	n.detach()
}

func (n *fakeNode) detach() {
	if n.parent == nil {
		return
	}
	i := n.indexInParent()
	if i < 0 {
		n.parent = nil
		return
	}
	n.parent.children = append(n.parent.children[:i], n.parent.children[i+1:]...)
	n.parent = nil
}

func (n *fakeNode) SetTextContent(s string) { n.text = s }
func (n *fakeNode) TextContent() string     { return n.text }

func (n *fakeNode) TagName() string { return n.tag }

func (n *fakeNode) SetAttribute(name, value string) { n.attrs[name] = value }
func (n *fakeNode) RemoveAttribute(name string)      { delete(n.attrs, name) }
func (n *fakeNode) GetAttribute(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

type fakeDocument struct{}

func (fakeDocument) CreateElement(tag string) Element       { return newFakeNode(NodeTypeElement, tag) }
func (fakeDocument) CreateElementNS(_, tag string) Element   { return newFakeNode(NodeTypeElement, tag) }
func (fakeDocument) CreateTextNode(text string) Node {
	n := newFakeNode(NodeTypeText, "")
	n.text = text
	return n
}
func (fakeDocument) CreateComment(text string) Node {
	n := newFakeNode(NodeTypeComment, "")
	n.text = text
	return n
}
