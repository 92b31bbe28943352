package formula

import (
	"strconv"
	"strings"
)

// Expr is one node of a parsed expression tree. Nodes are immutable value
// trees built once at parse time; a node never mutates itself or its
// children, so an Expr can be evaluated any number of times against any
// number of environments.
//
// The set of node kinds is closed: every variant lives in this package and
// is produced by the constructor functions below, which are also the
// vocabulary of [Expr.Code] output.
type Expr interface {
	// Resolve evaluates the node against env. Any contract violation
	// (undefined variable, operand kind mismatch, invalid assignment
	// target, negative factorial, index out of range) aborts evaluation of
	// the whole expression with a descriptive error.
	Resolve(env *Environment) (Result, error)

	// Code renders the node as its constructor invocation, each child
	// rendered recursively, optionally qualified by a namespace prefix.
	// It is a debugging aid and is not re-parseable by the grammar.
	Code(namespace string) string

	// freeVars accumulates names read before being bound. Keeping this
	// unexported keeps the node set closed.
	freeVars(sc *varScope)
}

type unaryOp int

const (
	opNegate unaryOp = iota
	opNot
	opFactorial
)

type binaryOp int

const (
	opAdd binaryOp = iota
	opSub
	opMul
	opDiv
	opMod
	opPow
	opEq
	opNe
	opLt
	opGt
	opLe
	opGe
	opAnd
	opOr
	opAssign
)

// name returns the constructor name rendered by Code.
func (op unaryOp) name() string {
	switch op {
	case opNegate:
		return "Negate"
	case opNot:
		return "Not"
	case opFactorial:
		return "Factorial"
	default:
		return "Unknown"
	}
}

// name returns the constructor name rendered by Code.
func (op binaryOp) name() string {
	switch op {
	case opAdd:
		return "Addition"
	case opSub:
		return "Subtraction"
	case opMul:
		return "Multiply"
	case opDiv:
		return "Divide"
	case opMod:
		return "Modulo"
	case opPow:
		return "Exponentiate"
	case opEq:
		return "Equality"
	case opNe:
		return "Inequality"
	case opLt:
		return "LessThan"
	case opGt:
		return "GreaterThan"
	case opLe:
		return "LessThanEq"
	case opGe:
		return "GreaterThanEq"
	case opAnd:
		return "And"
	case opOr:
		return "Or"
	case opAssign:
		return "Assignment"
	default:
		return "Unknown"
	}
}

// Node variants. All fields are set at construction and never modified.
type (
	number   struct{ val float64 }
	boolean  struct{ val bool }
	str      struct{ val string }
	variable struct{ name string }
	list     struct{ elems []Expr }
	index    struct{ target, at Expr }
	slice    struct{ target, from, to Expr }
	apply    struct {
		target Expr
		args   []Expr
	}
	condition struct{ cond, then, els Expr }
	unary     struct {
		op      unaryOp
		operand Expr
	}
	binary struct {
		op       binaryOp
		lhs, rhs Expr
	}
)

// Number returns a numeric literal node.
func Number(v float64) Expr { return number{val: v} }

// Boolean returns a boolean literal node.
func Boolean(v bool) Expr { return boolean{val: v} }

// String returns a string literal node.
func String(v string) Expr { return str{val: v} }

// Variable returns a variable reference node. Dotted names are one opaque
// environment key.
func Variable(name string) Expr { return variable{name: name} }

// List returns a list literal node evaluating its elements in source order.
func List(elems ...Expr) Expr { return list{elems: elems} }

// Index returns an element access node: target[at].
func Index(target, at Expr) Expr { return index{target: target, at: at} }

// Slice returns a sub-list node: target[from:to]. Out-of-range bounds clamp
// to the list's extent rather than failing.
func Slice(target, from, to Expr) Expr {
	return slice{target: target, from: from, to: to}
}

// Apply returns a function application node: target(args...).
func Apply(target Expr, args ...Expr) Expr {
	return apply{target: target, args: args}
}

// Condition returns a ternary node: then if cond else els. Only the taken
// branch is evaluated.
func Condition(cond, then, els Expr) Expr {
	return condition{cond: cond, then: then, els: els}
}

// Negate returns an arithmetic negation node.
func Negate(operand Expr) Expr { return unary{op: opNegate, operand: operand} }

// Not returns a logical negation node.
func Not(operand Expr) Expr { return unary{op: opNot, operand: operand} }

// Factorial returns a factorial node. It is part of the node model but not
// wired into the grammar; hosts building trees directly may use it.
func Factorial(operand Expr) Expr {
	return unary{op: opFactorial, operand: operand}
}

// Addition returns lhs + rhs.
func Addition(lhs, rhs Expr) Expr { return binary{op: opAdd, lhs: lhs, rhs: rhs} }

// Subtraction returns lhs - rhs.
func Subtraction(lhs, rhs Expr) Expr { return binary{op: opSub, lhs: lhs, rhs: rhs} }

// Multiply returns lhs * rhs.
func Multiply(lhs, rhs Expr) Expr { return binary{op: opMul, lhs: lhs, rhs: rhs} }

// Divide returns lhs / rhs. Division follows floating-point semantics;
// dividing by zero yields an infinity or NaN rather than an error.
func Divide(lhs, rhs Expr) Expr { return binary{op: opDiv, lhs: lhs, rhs: rhs} }

// Modulo returns lhs % rhs with floating-point remainder semantics.
func Modulo(lhs, rhs Expr) Expr { return binary{op: opMod, lhs: lhs, rhs: rhs} }

// Exponentiate returns lhs ** rhs.
func Exponentiate(lhs, rhs Expr) Expr { return binary{op: opPow, lhs: lhs, rhs: rhs} }

// Equality returns lhs == rhs, comparing structurally across any kinds.
func Equality(lhs, rhs Expr) Expr { return binary{op: opEq, lhs: lhs, rhs: rhs} }

// Inequality returns lhs != rhs, the negation of Equality.
func Inequality(lhs, rhs Expr) Expr { return binary{op: opNe, lhs: lhs, rhs: rhs} }

// LessThan returns lhs < rhs over numbers.
func LessThan(lhs, rhs Expr) Expr { return binary{op: opLt, lhs: lhs, rhs: rhs} }

// GreaterThan returns lhs > rhs over numbers.
func GreaterThan(lhs, rhs Expr) Expr { return binary{op: opGt, lhs: lhs, rhs: rhs} }

// LessThanEq returns lhs <= rhs over numbers.
func LessThanEq(lhs, rhs Expr) Expr { return binary{op: opLe, lhs: lhs, rhs: rhs} }

// GreaterThanEq returns lhs >= rhs over numbers.
func GreaterThanEq(lhs, rhs Expr) Expr { return binary{op: opGe, lhs: lhs, rhs: rhs} }

// And returns lhs and rhs. Both operands always evaluate; there is no
// short-circuit, so assignment side effects on either side always fire.
func And(lhs, rhs Expr) Expr { return binary{op: opAnd, lhs: lhs, rhs: rhs} }

// Or returns lhs or rhs. Both operands always evaluate; see [And].
func Or(lhs, rhs Expr) Expr { return binary{op: opOr, lhs: lhs, rhs: rhs} }

// Assignment returns lhs := rhs. The left operand must be a [Variable];
// the right operand evaluates first, its value is written into the
// environment under the variable's key, and the same value is the node's
// result.
func Assignment(lhs, rhs Expr) Expr {
	return binary{op: opAssign, lhs: lhs, rhs: rhs}
}

// qualify prefixes name with the namespace, if any.
func qualify(namespace, name string) string {
	if namespace == "" {
		return name
	}

	return namespace + "." + name
}

func (n number) Code(ns string) string {
	return qualify(ns, "Number") +
		"(" + strconv.FormatFloat(n.val, 'g', -1, 64) + ")"
}

func (n boolean) Code(ns string) string {
	return qualify(ns, "Boolean") + "(" + strconv.FormatBool(n.val) + ")"
}

func (n str) Code(ns string) string {
	return qualify(ns, "String") + "(" + strconv.Quote(n.val) + ")"
}

func (n variable) Code(ns string) string {
	return qualify(ns, "Variable") + "(" + strconv.Quote(n.name) + ")"
}

func (n list) Code(ns string) string {
	parts := make([]string, len(n.elems))
	for i, e := range n.elems {
		parts[i] = e.Code(ns)
	}

	return qualify(ns, "List") + "(" + strings.Join(parts, ", ") + ")"
}

func (n index) Code(ns string) string {
	return qualify(ns, "Index") +
		"(" + n.target.Code(ns) + ", " + n.at.Code(ns) + ")"
}

func (n slice) Code(ns string) string {
	return qualify(ns, "Slice") +
		"(" + n.target.Code(ns) +
		", " + n.from.Code(ns) +
		", " + n.to.Code(ns) + ")"
}

func (n apply) Code(ns string) string {
	parts := make([]string, 0, len(n.args)+1)
	parts = append(parts, n.target.Code(ns))

	for _, a := range n.args {
		parts = append(parts, a.Code(ns))
	}

	return qualify(ns, "Apply") + "(" + strings.Join(parts, ", ") + ")"
}

func (n condition) Code(ns string) string {
	return qualify(ns, "Condition") +
		"(" + n.cond.Code(ns) +
		", " + n.then.Code(ns) +
		", " + n.els.Code(ns) + ")"
}

func (n unary) Code(ns string) string {
	return qualify(ns, n.op.name()) + "(" + n.operand.Code(ns) + ")"
}

func (n binary) Code(ns string) string {
	return qualify(ns, n.op.name()) +
		"(" + n.lhs.Code(ns) + ", " + n.rhs.Code(ns) + ")"
}
