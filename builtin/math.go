package builtin

import (
	"math"

	"github.com/ardnew/formula"
)

// bindMath installs numeric constants and functions under "math.".
func bindMath(env map[string]formula.Result) {
	env["math.pi"] = formula.Num(math.Pi)
	env["math.e"] = formula.Num(math.E)
	env["math.inf"] = formula.Num(math.Inf(1))

	env["math.abs"] = unary1("math.abs", math.Abs)
	env["math.ceil"] = unary1("math.ceil", math.Ceil)
	env["math.floor"] = unary1("math.floor", math.Floor)
	env["math.round"] = unary1("math.round", math.Round)
	env["math.trunc"] = unary1("math.trunc", math.Trunc)
	env["math.sqrt"] = unary1("math.sqrt", math.Sqrt)
	env["math.cbrt"] = unary1("math.cbrt", math.Cbrt)
	env["math.exp"] = unary1("math.exp", math.Exp)
	env["math.log"] = unary1("math.log", math.Log)
	env["math.log2"] = unary1("math.log2", math.Log2)
	env["math.log10"] = unary1("math.log10", math.Log10)
	env["math.sin"] = unary1("math.sin", math.Sin)
	env["math.cos"] = unary1("math.cos", math.Cos)
	env["math.tan"] = unary1("math.tan", math.Tan)
	env["math.asin"] = unary1("math.asin", math.Asin)
	env["math.acos"] = unary1("math.acos", math.Acos)
	env["math.atan"] = unary1("math.atan", math.Atan)

	env["math.atan2"] = binary2("math.atan2", math.Atan2)
	env["math.hypot"] = binary2("math.hypot", math.Hypot)
	env["math.min"] = binary2("math.min", math.Min)
	env["math.max"] = binary2("math.max", math.Max)
	env["math.mod"] = binary2("math.mod", math.Mod)

	env["math.sum"] = formula.FuncOf(mathSum)
}

// mathSum totals its arguments, flattening one level of lists so both
// sum(1, 2, 3) and sum([1, 2, 3]) work.
func mathSum(args ...formula.Result) (formula.Result, error) {
	total := 0.0

	flat := make([]formula.Result, 0, len(args))

	for _, a := range args {
		if a.Kind() == formula.KindList {
			flat = append(flat, a.Items()...)
		} else {
			flat = append(flat, a)
		}
	}

	for i := range flat {
		v, err := argNumber("math.sum", flat, i)
		if err != nil {
			return formula.Null, err
		}

		total += v
	}

	return formula.Num(total), nil
}
