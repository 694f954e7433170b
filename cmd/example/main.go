//go:build js && wasm

// Command example is a minimal counter-and-todo-list demo driving the
// dom package against a real browser document.
package main

import (
	"fmt"

	"github.com/corvidkit/rui"
	"github.com/corvidkit/rui/dom"
)

func main() {
	dom.PushEnv(dom.DefaultEnv())

	count := rui.NewObservable(0)
	todos := dom.NewObsArray([]string{"write the spec", "build the toolkit"})

	incr := dom.Element("button#incr", "+1")
	dom.OnClick(incr, func() { count.Set(count.Get() + 1) })

	app := dom.Element("div#app",
		dom.Element("h1", "rui counter"),
		dom.Element("p",
			"Count: ",
			dom.Computed(count, func(n int) any { return fmt.Sprint(n) }),
		),
		incr,
		dom.When(rui.NewComputed(func(r *rui.Reader) bool {
			return rui.Use[int](r, count) >= 5
		}), func() any {
			return dom.Element("p.milestone", "you've clicked a lot")
		}),
		dom.Element("h2", "todos"),
		dom.Element("ul",
			dom.ForEachAttr(todos, func(s string) string { return s },
				func(item string, idx *dom.LiveIndex) dom.Node {
					return dom.Element("li",
						dom.Computed(idx.Dep(), func(v any) any {
							return fmt.Sprintf("%d. %s", v.(int)+1, item)
						}),
					)
				}),
		),
	)

	dom.Mount(app)

	<-make(chan struct{})
}
