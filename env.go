package formula

import "sort"

// Environment is the caller-owned mapping from variable name to [Result].
// Dot-containing names ("math.sqrt") are single opaque keys.
//
// The Environment is the only mutable state in the system. It is passed by
// shared reference through the whole recursive evaluation of one
// expression, and the single sanctioned write path into it is an
// assignment node executed during [Expr.Resolve]. Everything else —
// including [FreeVars] — treats it as read-only.
//
// An Environment is not safe for concurrent mutation; callers sharing one
// across goroutines must serialize evaluations themselves.
type Environment struct {
	vars map[string]Result
}

// NewEnvironment returns an empty Environment.
func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]Result)}
}

// Lookup returns the value bound to name, reporting whether it exists.
func (e *Environment) Lookup(name string) (Result, bool) {
	if e == nil || e.vars == nil {
		return Null, false
	}

	v, ok := e.vars[name]

	return v, ok
}

// Has reports whether name is bound.
func (e *Environment) Has(name string) bool {
	_, ok := e.Lookup(name)

	return ok
}

// Bind associates name with value, replacing any existing binding.
func (e *Environment) Bind(name string, value Result) *Environment {
	if e.vars == nil {
		e.vars = make(map[string]Result)
	}

	e.vars[name] = value

	return e
}

// Len returns the number of bindings.
func (e *Environment) Len() int {
	if e == nil {
		return 0
	}

	return len(e.vars)
}

// Keys returns all bound names in sorted order.
func (e *Environment) Keys() []string {
	if e == nil || len(e.vars) == 0 {
		return nil
	}

	keys := make([]string, 0, len(e.vars))
	for k := range e.vars {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Clone returns a shallow copy of the Environment. List values share
// backing storage with the original; since evaluation never mutates a list
// in place, this is safe for running the same formula against a scratch
// copy.
func (e *Environment) Clone() *Environment {
	clone := NewEnvironment()

	if e != nil {
		for k, v := range e.vars {
			clone.vars[k] = v
		}
	}

	return clone
}
