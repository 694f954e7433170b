package dom

import (
	"fmt"
	"testing"

	"github.com/corvidkit/rui"
	"github.com/stretchr/testify/assert"
)

func textOf(n Node) string {
	if n.NodeType() == NodeTypeText {
		return n.TextContent()
	}
	return ""
}

func TestComputedRerendersOnChange(t *testing.T) {
	count := rui.NewObservable(1)

	host := Element("div",
		Computed(count, func(n int) any {
			return fmt.Sprintf("n=%d", n)
		}),
	)

	var texts []string
	for _, c := range host.ChildNodes() {
		if c.NodeType() == NodeTypeText {
			texts = append(texts, c.TextContent())
		}
	}
	assert.Equal(t, []string{"n=1"}, texts)

	count.Set(2)

	texts = nil
	for _, c := range host.ChildNodes() {
		if c.NodeType() == NodeTypeText {
			texts = append(texts, c.TextContent())
		}
	}
	assert.Equal(t, []string{"n=2"}, texts)
}

func TestWhenShowsAndHidesContent(t *testing.T) {
	show := rui.NewObservable(false)

	host := Element("div",
		When(show, func() any { return Element("p", "hi") }),
	)

	countElements := func() int {
		n := 0
		for _, c := range host.ChildNodes() {
			if c.NodeType() == NodeTypeElement {
				n++
			}
		}
		return n
	}

	assert.Equal(t, 0, countElements())

	show.Set(true)
	assert.Equal(t, 1, countElements())

	show.Set(false)
	assert.Equal(t, 0, countElements())
}

func TestComputedDisposalDetachesListener(t *testing.T) {
	count := rui.NewObservable(1)

	host := Element("div", Computed(count, func(n int) any { return fmt.Sprint(n) }))

	DomDispose(host)

	// after disposal, further writes must not panic even though the
	// region's marker nodes are no longer attached to anything.
	assert.NotPanics(t, func() { count.Set(99) })
}
