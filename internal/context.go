package internal

// Context is an owner-scoped inherited value. A Context is identified by
// its own pointer identity, used as the map key in each Owner's context
// map.
type Context struct {
	initial any
}

// NewContext returns a context whose value defaults to initial until some
// owner in the current chain calls Set.
func (r *Runtime) NewContext(initial any) *Context {
	return &Context{initial: initial}
}

// Value looks up c in the current owner and its ancestors, falling back
// to c's initial value if no owner in the chain has called Set.
func (c *Context) Value() any {
	owner := GetRuntime().CurrentOwner()
	for o := owner; o != nil; o = o.parent {
		if v, ok := o.context[c]; ok {
			return v
		}
	}
	return c.initial
}

// Set stores value for c in the current owner, shadowing any ancestor's
// value for the remainder of that owner's subtree.
func (c *Context) Set(value any) {
	owner := GetRuntime().CurrentOwner()
	if owner == nil {
		return
	}
	owner.context[c] = value
}
