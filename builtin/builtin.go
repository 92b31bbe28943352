// Package builtin provides the standard host environment available to
// formula expressions: math functions and constants, string and list
// helpers, filesystem predicates, path manipulation, and PATH-like list
// munging.
//
// Built-in names use dotted identifiers ("math.sqrt", "path.cat"), which
// the expression grammar treats as single opaque variable names. Every
// call to [Environment] returns a fresh environment, so bindings made by
// one evaluation session never leak into another.
package builtin

import (
	"log/slog"
	"sync"

	"github.com/ardnew/formula"
)

// Private singleton cache of the built-in bindings. Values are immutable
// Results, so sharing them across environments is safe.
var (
	cacheOnce sync.Once
	cache     map[string]formula.Result
)

func makeCache() map[string]formula.Result {
	cacheOnce.Do(func() {
		cache = map[string]formula.Result{}

		bindMath(cache)
		bindString(cache)
		bindSystem(cache)
	})

	return cache
}

// Environment returns a new environment pre-bound with every built-in
// name. The caller owns the result and may bind over any built-in.
func Environment() *formula.Environment {
	env := formula.NewEnvironment()

	for name, value := range makeCache() {
		env.Bind(name, value)
	}

	return env
}

// Names returns the sorted names of all built-in bindings.
func Names() []string {
	return Environment().Keys()
}

// errArity reports a call with the wrong number of arguments.
func errArity(name string, want string, got int) error {
	return formula.ErrTypeMismatch.With(
		slog.String("function", name),
		slog.String("want", want+" arguments"),
		slog.Int("got", got),
	)
}

// argNumber extracts argument i as a number.
func argNumber(name string, args []formula.Result, i int) (float64, error) {
	if args[i].Kind() != formula.KindNumber {
		return 0, formula.ErrTypeMismatch.With(
			slog.String("function", name),
			slog.Int("argument", i+1),
			slog.String("want", formula.KindNumber.String()),
			slog.String("got", args[i].Kind().String()),
		)
	}

	return args[i].Float(), nil
}

// argString extracts argument i as a string.
func argString(name string, args []formula.Result, i int) (string, error) {
	if args[i].Kind() != formula.KindString {
		return "", formula.ErrTypeMismatch.With(
			slog.String("function", name),
			slog.Int("argument", i+1),
			slog.String("want", formula.KindString.String()),
			slog.String("got", args[i].Kind().String()),
		)
	}

	return args[i].Text(), nil
}

// unary1 adapts a float64 function to a built-in callable.
func unary1(name string, fn func(float64) float64) formula.Result {
	return formula.FuncOf(func(args ...formula.Result) (formula.Result, error) {
		if len(args) != 1 {
			return formula.Null, errArity(name, "1", len(args))
		}

		v, err := argNumber(name, args, 0)
		if err != nil {
			return formula.Null, err
		}

		return formula.Num(fn(v)), nil
	})
}

// binary2 adapts a two-argument float64 function to a built-in callable.
func binary2(name string, fn func(a, b float64) float64) formula.Result {
	return formula.FuncOf(func(args ...formula.Result) (formula.Result, error) {
		if len(args) != 2 {
			return formula.Null, errArity(name, "2", len(args))
		}

		a, err := argNumber(name, args, 0)
		if err != nil {
			return formula.Null, err
		}

		b, err := argNumber(name, args, 1)
		if err != nil {
			return formula.Null, err
		}

		return formula.Num(fn(a, b)), nil
	})
}
