package formula

import (
	"strconv"
	"strings"
)

// Kind discriminates the variants of a [Result].
type Kind int

const (
	// KindNull is the zero Result: no value.
	KindNull Kind = iota

	// KindNumber is a 64-bit floating point number.
	KindNumber

	// KindBool is a boolean.
	KindBool

	// KindString is an uninterpreted character string.
	KindString

	// KindList is an ordered sequence of Results.
	KindList

	// KindFunc is a callable supplied by the host through the environment.
	KindFunc
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindFunc:
		return "function"
	default:
		return "unknown"
	}
}

// Func is the signature of host-supplied callables. Arguments are passed
// positionally in source order.
type Func func(args ...Result) (Result, error)

// Result is the closed tagged union that expressions evaluate to.
// Exactly one variant is populated, selected by Kind. The zero value is
// the null Result.
type Result struct {
	kind Kind
	num  float64
	boo  bool
	str  string
	list []Result
	fn   Func
}

// Null is the absent value.
var Null = Result{}

// Num returns a number Result.
func Num(v float64) Result { return Result{kind: KindNumber, num: v} }

// Bool returns a boolean Result.
func Bool(v bool) Result { return Result{kind: KindBool, boo: v} }

// Str returns a string Result.
func Str(v string) Result { return Result{kind: KindString, str: v} }

// ListOf returns a list Result holding the given items in order.
func ListOf(items ...Result) Result {
	return Result{kind: KindList, list: items}
}

// FuncOf returns a callable Result.
func FuncOf(fn Func) Result { return Result{kind: KindFunc, fn: fn} }

// Kind reports which variant the Result holds.
func (r Result) Kind() Kind { return r.kind }

// IsNull reports whether the Result is the null value.
func (r Result) IsNull() bool { return r.kind == KindNull }

// Float returns the numeric value. It is zero unless Kind is KindNumber.
func (r Result) Float() float64 { return r.num }

// Truth returns the boolean value. It is false unless Kind is KindBool.
func (r Result) Truth() bool { return r.boo }

// Text returns the string value. It is empty unless Kind is KindString.
func (r Result) Text() string { return r.str }

// Items returns the list elements. It is nil unless Kind is KindList.
// The returned slice is shared with the Result; callers must not modify it.
func (r Result) Items() []Result { return r.list }

// Callable returns the function value, or nil unless Kind is KindFunc.
func (r Result) Callable() Func { return r.fn }

// Equal reports deep structural equality. Results of different kinds are
// never equal. Callables are never equal to anything, themselves included.
func (r Result) Equal(o Result) bool {
	if r.kind != o.kind {
		return false
	}

	switch r.kind {
	case KindNull:
		return true

	case KindNumber:
		return r.num == o.num

	case KindBool:
		return r.boo == o.boo

	case KindString:
		return r.str == o.str

	case KindList:
		if len(r.list) != len(o.list) {
			return false
		}

		for i := range r.list {
			if !r.list[i].Equal(o.list[i]) {
				return false
			}
		}

		return true

	default:
		return false
	}
}

// String renders the Result in the grammar's literal syntax.
// Numbers use the shortest representation that round-trips; booleans render
// as the True/False keywords; strings are double-quoted verbatim.
func (r Result) String() string {
	switch r.kind {
	case KindNull:
		return "None"

	case KindNumber:
		return strconv.FormatFloat(r.num, 'g', -1, 64)

	case KindBool:
		if r.boo {
			return "True"
		}

		return "False"

	case KindString:
		return `"` + r.str + `"`

	case KindList:
		parts := make([]string, len(r.list))
		for i, item := range r.list {
			parts[i] = item.String()
		}

		return "[" + strings.Join(parts, ", ") + "]"

	case KindFunc:
		return "<function>"

	default:
		return "<unknown>"
	}
}

// Native converts the Result to its plain Go representation: float64, bool,
// string, []any, nil, or [Func]. Used for JSON/YAML rendering.
func (r Result) Native() any {
	switch r.kind {
	case KindNumber:
		return r.num

	case KindBool:
		return r.boo

	case KindString:
		return r.str

	case KindList:
		items := make([]any, len(r.list))
		for i, item := range r.list {
			items[i] = item.Native()
		}

		return items

	case KindFunc:
		return r.fn

	default:
		return nil
	}
}
