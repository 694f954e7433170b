package dom

import (
	"fmt"
	"strings"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// Element builds a single element from a tag string and a list of
// modifier arguments, applied in order. If applying any argument panics,
// every node attached so far (including the element itself) is disposed
// via domDispose before the panic is rethrown, so a failed build never
// leaks a half-wired subtree.
func Element(tagString string, args ...any) Element {
	return buildElement(tagString, "", args)
}

// SVG is Element, but the element it creates lives in the SVG namespace.
// Children passed as arguments are built before SVG runs, so a nested
// Element call still yields an HTML-namespace element; use nested SVG
// calls for SVG children.
func SVG(tagString string, args ...any) Element {
	return buildElement(tagString, svgNamespace, args)
}

func buildElement(tagString, namespace string, args []any) Element {
	tag, id, classes, err := parseTagString(tagString)
	if err != nil {
		panic(err)
	}

	var el Element
	if namespace != "" {
		el = CurrentEnv().Document.CreateElementNS(namespace, tag)
	} else {
		el = CurrentEnv().Document.CreateElement(tag)
	}

	if id != "" {
		el.SetAttribute("id", id)
	}
	if len(classes) > 0 {
		el.SetAttribute("class", strings.Join(classes, " "))
	}

	attached := []Node{el}
	func() {
		defer func() {
			if r := recover(); r != nil {
				for i := len(attached) - 1; i >= 0; i-- {
					domDispose(attached[i])
				}
				panic(r)
			}
		}()
		applyArgs(el, args, &attached)
	}()

	return el
}

// Update re-applies modifier arguments to an already-built element — the
// same dispatch Element uses, exposed standalone for mutating an
// existing node.
func Update(el Element, args ...any) {
	attached := []Node{el}
	applyArgs(el, args, &attached)
}

// Fragment collects the nodes among args (Node, []Node, and []any holding
// either) so a caller can insert them as a group. Other arguments, such as
// strings and modifier functions, are not applied and produce no nodes.
func Fragment(args ...any) []Node {
	var nodes []Node
	collectArgs(args, &nodes)
	return nodes
}

func parseTagString(s string) (tag, id string, classes []string, err error) {
	i := 0
	for i < len(s) && s[i] != '#' && s[i] != '.' {
		i++
	}
	tag = s[:i]
	if tag == "" {
		return "", "", nil, fmt.Errorf("rui/dom: empty tag in %q", s)
	}

	sawClass := false
	for i < len(s) {
		switch s[i] {
		case '#':
			if sawClass {
				return "", "", nil, fmt.Errorf("rui/dom: %q has an id after a class", s)
			}
			if id != "" {
				return "", "", nil, fmt.Errorf("rui/dom: %q has more than one id", s)
			}
			j := i + 1
			for j < len(s) && s[j] != '#' && s[j] != '.' {
				j++
			}
			id = s[i+1 : j]
			i = j
		case '.':
			sawClass = true
			j := i + 1
			for j < len(s) && s[j] != '#' && s[j] != '.' {
				j++
			}
			classes = append(classes, s[i+1:j])
			i = j
		}
	}
	return tag, id, classes, nil
}

// applyArgs dispatches each arg by its dynamic type: function of an
// element, slice, nil, Node, attribute map, or stringified text.
func applyArgs(el Element, args []any, attached *[]Node) {
	for _, arg := range args {
		applyArg(el, arg, attached)
	}
}

func applyArg(el Element, arg any, attached *[]Node) {
	switch v := arg.(type) {
	case nil:
		return
	case func(Element):
		v(el)
	case func(Element) any:
		if result := v(el); result != nil {
			applyArg(el, result, attached)
		}
	case []any:
		applyArgs(el, v, attached)
	case Node:
		el.AppendChild(v)
		*attached = append(*attached, v)
	case []Node:
		for _, n := range v {
			el.AppendChild(n)
			*attached = append(*attached, n)
		}
	case map[string]any:
		applyAttrs(el, v)
	case string:
		n := CurrentEnv().Document.CreateTextNode(v)
		el.AppendChild(n)
		*attached = append(*attached, n)
	default:
		n := CurrentEnv().Document.CreateTextNode(fmt.Sprint(v))
		el.AppendChild(n)
		*attached = append(*attached, n)
	}
}

func collectArgs(args []any, out *[]Node) {
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
		case []any:
			collectArgs(v, out)
		case Node:
			*out = append(*out, v)
		case []Node:
			*out = append(*out, v...)
		}
	}
}

// applyAttrs maps an attribute dict onto the element: nil or false
// removes the attribute, true sets it to the empty string, anything else
// is stringified.
func applyAttrs(el Element, attrs map[string]any) {
	for name, value := range attrs {
		setAttr(el, name, value)
	}
}

func setAttr(el Element, name string, value any) {
	switch v := value.(type) {
	case nil:
		el.RemoveAttribute(name)
	case bool:
		if v {
			el.SetAttribute(name, "")
		} else {
			el.RemoveAttribute(name)
		}
	case string:
		el.SetAttribute(name, v)
	default:
		el.SetAttribute(name, fmt.Sprint(v))
	}
}

// Attrs returns a modifier applying the given attribute map, for use as
// an Element argument: Element("div", Attrs(map[string]any{"id": "x"})).
func Attrs(attrs map[string]any) func(Element) {
	return func(el Element) { applyAttrs(el, attrs) }
}

// Attr sets a single attribute, following the same value-mapping rules
// as Attrs.
func Attr(name string, value any) func(Element) {
	return func(el Element) { setAttr(el, name, value) }
}

// BoolAttr is Attr specialised for booleans.
func BoolAttr(name string, value bool) func(Element) {
	return Attr(name, value)
}

// Text appends a text node.
func Text(s string) func(Element) {
	return func(el Element) {
		el.AppendChild(CurrentEnv().Document.CreateTextNode(s))
	}
}

// Style sets inline style properties via the `style` attribute.
func Style(props map[string]string) func(Element) {
	return func(el Element) {
		var b strings.Builder
		for k, v := range props {
			b.WriteString(k)
			b.WriteString(": ")
			b.WriteString(v)
			b.WriteString("; ")
		}
		el.SetAttribute("style", strings.TrimSpace(b.String()))
	}
}

// Cls toggles a class on/off depending on cond.
func Cls(class string, cond bool) func(Element) {
	return func(el Element) {
		existing, _ := el.GetAttribute("class")
		classes := strings.Fields(existing)
		has := false
		for _, c := range classes {
			if c == class {
				has = true
				break
			}
		}
		switch {
		case cond && !has:
			classes = append(classes, class)
		case !cond && has:
			filtered := classes[:0]
			for _, c := range classes {
				if c != class {
					filtered = append(filtered, c)
				}
			}
			classes = filtered
		}
		el.SetAttribute("class", strings.Join(classes, " "))
	}
}

// Show toggles the `hidden` attribute.
func Show(cond bool) func(Element) {
	return BoolAttr("hidden", !cond)
}

// Hide is Show(false).
func Hide() func(Element) {
	return Show(false)
}

// Data sets a `data-*` attribute.
func Data(key string, value any) func(Element) {
	return Attr("data-"+key, value)
}

// GetData reads a `data-*` attribute back off an already-built element.
func GetData(el Element, key string) (string, bool) {
	return el.GetAttribute("data-" + key)
}
