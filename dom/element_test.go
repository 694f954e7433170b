package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementTagGrammar(t *testing.T) {
	el := Element("div#main.card.highlighted")

	assert.Equal(t, "div", el.TagName())
	id, _ := el.GetAttribute("id")
	assert.Equal(t, "main", id)
	class, _ := el.GetAttribute("class")
	assert.Equal(t, "card highlighted", class)
}

func TestElementRejectsIDAfterClass(t *testing.T) {
	assert.Panics(t, func() {
		Element("div.card#main")
	})
}

func TestElementArgDispatch(t *testing.T) {
	el := Element("ul",
		map[string]any{"data-role": "list"},
		Element("li", "one"),
		[]any{Element("li", "two"), nil},
		42,
	)

	role, ok := el.GetAttribute("data-role")
	assert.True(t, ok)
	assert.Equal(t, "list", role)

	children := el.ChildNodes()
	assert.Len(t, children, 3)
	assert.Equal(t, "li", children[0].(Element).TagName())
	assert.Equal(t, "li", children[1].(Element).TagName())
	assert.Equal(t, "42", children[2].TextContent())
}

func TestAttrValueMapping(t *testing.T) {
	el := Element("input", Attr("disabled", true))
	v, ok := el.GetAttribute("disabled")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	Update(el, Attr("disabled", false))
	_, ok = el.GetAttribute("disabled")
	assert.False(t, ok)

	Update(el, Attr("value", 7))
	v, _ = el.GetAttribute("value")
	assert.Equal(t, "7", v)

	Update(el, Attr("value", nil))
	_, ok = el.GetAttribute("value")
	assert.False(t, ok)
}

func TestClsTogglesClass(t *testing.T) {
	el := Element("div", Attr("class", "a b"))

	Update(el, Cls("c", true))
	class, _ := el.GetAttribute("class")
	assert.Equal(t, "a b c", class)

	Update(el, Cls("a", false))
	class, _ = el.GetAttribute("class")
	assert.Equal(t, "b c", class)
}

func TestElementBuildFailureDisposesAttachedNodes(t *testing.T) {
	disposed := false
	child := Element("span")
	OnDisposeElem(child, func() { disposed = true })

	assert.Panics(t, func() {
		Element("div",
			child,
			func(Element) { panic("boom") },
		)
	})
	assert.True(t, disposed)
}
