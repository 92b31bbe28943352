package builtin

import (
	"strings"

	"github.com/ardnew/formula"
)

// bindString installs the length builtin and string helpers under "str.".
func bindString(env map[string]formula.Result) {
	env["len"] = formula.FuncOf(lenFunc)

	env["str.upper"] = stringFunc("str.upper", strings.ToUpper)
	env["str.lower"] = stringFunc("str.lower", strings.ToLower)
	env["str.trim"] = stringFunc("str.trim", strings.TrimSpace)

	env["str.contains"] = formula.FuncOf(strContains)
	env["str.split"] = formula.FuncOf(strSplit)
	env["str.join"] = formula.FuncOf(strJoin)
}

// lenFunc returns the length of a string or list.
func lenFunc(args ...formula.Result) (formula.Result, error) {
	if len(args) != 1 {
		return formula.Null, errArity("len", "1", len(args))
	}

	switch args[0].Kind() {
	case formula.KindString:
		return formula.Num(float64(len(args[0].Text()))), nil

	case formula.KindList:
		return formula.Num(float64(len(args[0].Items()))), nil

	default:
		_, err := argString("len", args, 0)

		return formula.Null, err
	}
}

// stringFunc adapts a string transform to a built-in callable.
func stringFunc(name string, fn func(string) string) formula.Result {
	return formula.FuncOf(func(args ...formula.Result) (formula.Result, error) {
		if len(args) != 1 {
			return formula.Null, errArity(name, "1", len(args))
		}

		s, err := argString(name, args, 0)
		if err != nil {
			return formula.Null, err
		}

		return formula.Str(fn(s)), nil
	})
}

func strContains(args ...formula.Result) (formula.Result, error) {
	if len(args) != 2 {
		return formula.Null, errArity("str.contains", "2", len(args))
	}

	s, err := argString("str.contains", args, 0)
	if err != nil {
		return formula.Null, err
	}

	sub, err := argString("str.contains", args, 1)
	if err != nil {
		return formula.Null, err
	}

	return formula.Bool(strings.Contains(s, sub)), nil
}

func strSplit(args ...formula.Result) (formula.Result, error) {
	if len(args) != 2 {
		return formula.Null, errArity("str.split", "2", len(args))
	}

	s, err := argString("str.split", args, 0)
	if err != nil {
		return formula.Null, err
	}

	sep, err := argString("str.split", args, 1)
	if err != nil {
		return formula.Null, err
	}

	parts := strings.Split(s, sep)
	items := make([]formula.Result, len(parts))

	for i, part := range parts {
		items[i] = formula.Str(part)
	}

	return formula.ListOf(items...), nil
}

func strJoin(args ...formula.Result) (formula.Result, error) {
	if len(args) != 2 {
		return formula.Null, errArity("str.join", "2", len(args))
	}

	if args[0].Kind() != formula.KindList {
		_, err := argString("str.join", args, 1)
		if err == nil {
			err = errArity("str.join", "list and separator", len(args))
		}

		return formula.Null, err
	}

	sep, err := argString("str.join", args, 1)
	if err != nil {
		return formula.Null, err
	}

	items := args[0].Items()
	parts := make([]string, len(items))

	for i, item := range items {
		if item.Kind() == formula.KindString {
			parts[i] = item.Text()
		} else {
			parts[i] = item.String()
		}
	}

	return formula.Str(strings.Join(parts, sep)), nil
}
