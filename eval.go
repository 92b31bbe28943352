package formula

import (
	"log/slog"
	"math"
)

// Literals resolve to themselves.

func (n number) Resolve(_ *Environment) (Result, error) {
	return Num(n.val), nil
}

func (n boolean) Resolve(_ *Environment) (Result, error) {
	return Bool(n.val), nil
}

func (n str) Resolve(_ *Environment) (Result, error) {
	return Str(n.val), nil
}

func (n variable) Resolve(env *Environment) (Result, error) {
	v, ok := env.Lookup(n.name)
	if !ok {
		return Null, ErrUndefinedVariable.
			With(slog.String("name", n.name))
	}

	return v, nil
}

func (n list) Resolve(env *Environment) (Result, error) {
	items := make([]Result, len(n.elems))

	for i, e := range n.elems {
		v, err := e.Resolve(env)
		if err != nil {
			return Null, err
		}

		items[i] = v
	}

	return ListOf(items...), nil
}

func (n index) Resolve(env *Environment) (Result, error) {
	items, err := resolveList("Index", n.target, env)
	if err != nil {
		return Null, err
	}

	at, err := resolveNumber("Index", n.at, env)
	if err != nil {
		return Null, err
	}

	i := int(at)
	if i < 0 || i >= len(items) {
		return Null, ErrIndexRange.With(
			slog.Int("index", i),
			slog.Int("length", len(items)),
		)
	}

	return items[i], nil
}

func (n slice) Resolve(env *Environment) (Result, error) {
	items, err := resolveList("Slice", n.target, env)
	if err != nil {
		return Null, err
	}

	from, err := resolveNumber("Slice", n.from, env)
	if err != nil {
		return Null, err
	}

	to, err := resolveNumber("Slice", n.to, env)
	if err != nil {
		return Null, err
	}

	// Out-of-range bounds clamp to the list's extent.
	lo, hi := int(from), int(to)
	if lo < 0 {
		lo = 0
	}

	if hi > len(items) {
		hi = len(items)
	}

	if lo > hi || lo >= len(items) {
		return ListOf(), nil
	}

	return ListOf(items[lo:hi]...), nil
}

func (n apply) Resolve(env *Environment) (Result, error) {
	target, err := n.target.Resolve(env)
	if err != nil {
		return Null, err
	}

	if target.Kind() != KindFunc {
		return Null, ErrTypeMismatch.With(
			slog.String("op", "Apply"),
			slog.String("want", KindFunc.String()),
			slog.String("got", target.Kind().String()),
		)
	}

	args := make([]Result, len(n.args))

	for i, a := range n.args {
		v, err := a.Resolve(env)
		if err != nil {
			return Null, err
		}

		args[i] = v
	}

	result, err := target.Callable()(args...)
	if err != nil {
		return Null, WrapError(err)
	}

	return result, nil
}

// Resolve evaluates the condition and exactly one branch. Unlike And/Or,
// the untaken branch never executes.
func (n condition) Resolve(env *Environment) (Result, error) {
	cond, err := resolveBool("Condition", n.cond, env)
	if err != nil {
		return Null, err
	}

	if cond {
		return n.then.Resolve(env)
	}

	return n.els.Resolve(env)
}

func (n unary) Resolve(env *Environment) (Result, error) {
	switch n.op {
	case opNegate:
		v, err := resolveNumber(n.op.name(), n.operand, env)
		if err != nil {
			return Null, err
		}

		return Num(-v), nil

	case opNot:
		v, err := resolveBool(n.op.name(), n.operand, env)
		if err != nil {
			return Null, err
		}

		return Bool(!v), nil

	case opFactorial:
		v, err := resolveNumber(n.op.name(), n.operand, env)
		if err != nil {
			return Null, err
		}

		if v < 0 {
			return Null, ErrNegativeFactorial.
				With(slog.Float64("operand", v))
		}

		product := 1.0
		for k := 2; k <= int(v); k++ {
			product *= float64(k)
		}

		return Num(product), nil

	default:
		return Null, ErrTypeMismatch.
			With(slog.String("op", "unknown unary operator"))
	}
}

func (n binary) Resolve(env *Environment) (Result, error) {
	if n.op == opAssign {
		return n.resolveAssign(env)
	}

	// All remaining operators evaluate both operands eagerly, in source
	// order. And/Or deliberately do not short-circuit so that assignment
	// side effects on either side always execute.
	lhs, err := n.lhs.Resolve(env)
	if err != nil {
		return Null, err
	}

	rhs, err := n.rhs.Resolve(env)
	if err != nil {
		return Null, err
	}

	switch n.op {
	case opAdd, opSub, opMul, opDiv, opMod, opPow:
		return n.arithmetic(lhs, rhs)

	case opEq:
		return Bool(lhs.Equal(rhs)), nil

	case opNe:
		return Bool(!lhs.Equal(rhs)), nil

	case opLt, opGt, opLe, opGe:
		return n.ordering(lhs, rhs)

	case opAnd, opOr:
		return n.logical(lhs, rhs)

	default:
		return Null, ErrTypeMismatch.
			With(slog.String("op", "unknown binary operator"))
	}
}

// resolveAssign writes the right operand's value into the environment.
// This is the single sanctioned mutation in the whole system.
func (n binary) resolveAssign(env *Environment) (Result, error) {
	target, ok := n.lhs.(variable)
	if !ok {
		return Null, ErrInvalidAssignTarget.
			With(slog.String("target", n.lhs.Code("")))
	}

	value, err := n.rhs.Resolve(env)
	if err != nil {
		return Null, err
	}

	env.Bind(target.name, value)

	return value, nil
}

func (n binary) arithmetic(lhs, rhs Result) (Result, error) {
	l, err := wantNumber(n.op.name(), lhs)
	if err != nil {
		return Null, err
	}

	r, err := wantNumber(n.op.name(), rhs)
	if err != nil {
		return Null, err
	}

	switch n.op {
	case opAdd:
		return Num(l + r), nil
	case opSub:
		return Num(l - r), nil
	case opMul:
		return Num(l * r), nil
	case opDiv:
		// Division by zero yields ±Inf or NaN; arithmetic stays total.
		return Num(l / r), nil
	case opMod:
		return Num(math.Mod(l, r)), nil
	default: // opPow
		return Num(math.Pow(l, r)), nil
	}
}

func (n binary) ordering(lhs, rhs Result) (Result, error) {
	l, err := wantNumber(n.op.name(), lhs)
	if err != nil {
		return Null, err
	}

	r, err := wantNumber(n.op.name(), rhs)
	if err != nil {
		return Null, err
	}

	switch n.op {
	case opLt:
		return Bool(l < r), nil
	case opGt:
		return Bool(l > r), nil
	case opLe:
		return Bool(l <= r), nil
	default: // opGe
		return Bool(l >= r), nil
	}
}

func (n binary) logical(lhs, rhs Result) (Result, error) {
	l, err := wantBool(n.op.name(), lhs)
	if err != nil {
		return Null, err
	}

	r, err := wantBool(n.op.name(), rhs)
	if err != nil {
		return Null, err
	}

	if n.op == opAnd {
		return Bool(l && r), nil
	}

	return Bool(l || r), nil
}

// Operand helpers. Every operator site checks its operand kinds explicitly
// so a mismatch fails with a descriptive error instead of coercing.

func wantNumber(op string, r Result) (float64, error) {
	if r.Kind() != KindNumber {
		return 0, ErrTypeMismatch.With(
			slog.String("op", op),
			slog.String("want", KindNumber.String()),
			slog.String("got", r.Kind().String()),
		)
	}

	return r.Float(), nil
}

func wantBool(op string, r Result) (bool, error) {
	if r.Kind() != KindBool {
		return false, ErrTypeMismatch.With(
			slog.String("op", op),
			slog.String("want", KindBool.String()),
			slog.String("got", r.Kind().String()),
		)
	}

	return r.Truth(), nil
}

func resolveNumber(op string, x Expr, env *Environment) (float64, error) {
	v, err := x.Resolve(env)
	if err != nil {
		return 0, err
	}

	return wantNumber(op, v)
}

func resolveBool(op string, x Expr, env *Environment) (bool, error) {
	v, err := x.Resolve(env)
	if err != nil {
		return false, err
	}

	return wantBool(op, v)
}

func resolveList(op string, x Expr, env *Environment) ([]Result, error) {
	v, err := x.Resolve(env)
	if err != nil {
		return nil, err
	}

	if v.Kind() != KindList {
		return nil, ErrTypeMismatch.With(
			slog.String("op", op),
			slog.String("want", KindList.String()),
			slog.String("got", v.Kind().String()),
		)
	}

	return v.Items(), nil
}
