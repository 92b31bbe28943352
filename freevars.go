package formula

import "sort"

// varScope is the transient state of one free-variable walk. The bound set
// is scratch owned by the walk; the caller's Environment is never written.
type varScope struct {
	env   *Environment
	bound map[string]struct{}
	free  map[string]struct{}
}

// FreeVars reports, in sorted order, the names the expression would need
// bound externally to evaluate without an undefined-variable failure.
// Names already present in env are excluded, as are names an assignment
// within the expression binds before they are read. The analysis is purely
// structural; nothing is evaluated and env is not modified.
func FreeVars(x Expr, env *Environment) []string {
	sc := &varScope{
		env:   env,
		bound: make(map[string]struct{}),
		free:  make(map[string]struct{}),
	}

	x.freeVars(sc)

	if len(sc.free) == 0 {
		return nil
	}

	names := make([]string, 0, len(sc.free))
	for name := range sc.free {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (n number) freeVars(_ *varScope)  {}
func (n boolean) freeVars(_ *varScope) {}
func (n str) freeVars(_ *varScope)     {}

func (n variable) freeVars(sc *varScope) {
	if _, ok := sc.bound[n.name]; ok {
		return
	}

	if sc.env.Has(n.name) {
		return
	}

	sc.free[n.name] = struct{}{}
}

func (n list) freeVars(sc *varScope) {
	for _, e := range n.elems {
		e.freeVars(sc)
	}
}

func (n index) freeVars(sc *varScope) {
	n.target.freeVars(sc)
	n.at.freeVars(sc)
}

func (n slice) freeVars(sc *varScope) {
	n.target.freeVars(sc)
	n.from.freeVars(sc)
	n.to.freeVars(sc)
}

func (n apply) freeVars(sc *varScope) {
	n.target.freeVars(sc)

	for _, a := range n.args {
		a.freeVars(sc)
	}
}

func (n condition) freeVars(sc *varScope) {
	n.cond.freeVars(sc)
	n.then.freeVars(sc)
	n.els.freeVars(sc)
}

func (n unary) freeVars(sc *varScope) {
	n.operand.freeVars(sc)
}

func (n binary) freeVars(sc *varScope) {
	// An assignment target is locally bound before the right-hand side and
	// everything after it, mirroring that evaluation makes the name
	// available to later parts of the same tree.
	if n.op == opAssign {
		if target, ok := n.lhs.(variable); ok {
			sc.bound[target.name] = struct{}{}
			n.rhs.freeVars(sc)

			return
		}
	}

	n.lhs.freeVars(sc)
	n.rhs.freeVars(sc)
}
