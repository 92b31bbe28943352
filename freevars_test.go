package formula

import (
	"reflect"
	"testing"
)

func TestFreeVars(t *testing.T) {
	t.Parallel()

	bound := NewEnvironment().
		Bind("known", Num(1)).
		Bind("f", FuncOf(func(...Result) (Result, error) {
			return Null, nil
		}))

	cases := []struct {
		name string
		src  string
		env  *Environment
		want []string
	}{
		{
			name: "literal has none",
			src:  "1 + 2",
			env:  NewEnvironment(),
			want: nil,
		},
		{
			name: "unbound variable",
			src:  "x + 1",
			env:  NewEnvironment(),
			want: []string{"x"},
		},
		{
			name: "bound variable excluded",
			src:  "known + x",
			env:  bound,
			want: []string{"x"},
		},
		{
			name: "deduplicated and sorted",
			src:  "b + a + b + a",
			env:  NewEnvironment(),
			want: []string{"a", "b"},
		},
		{
			name: "assignment binds before read",
			src:  "(x := 1) + x",
			env:  NewEnvironment(),
			want: nil,
		},
		{
			name: "assignment value may be free",
			src:  "x := y + 1",
			env:  NewEnvironment(),
			want: []string{"y"},
		},
		{
			name: "both conditional branches count",
			src:  "a if c else b",
			env:  NewEnvironment(),
			want: []string{"a", "b", "c"},
		},
		{
			name: "application target and arguments",
			src:  "f(x, g(y))",
			env:  bound,
			want: []string{"g", "x", "y"},
		},
		{
			name: "index and slice operands",
			src:  "xs[i] == xs[lo:hi]",
			env:  NewEnvironment(),
			want: []string{"hi", "i", "lo", "xs"},
		},
		{
			name: "dotted name is one unit",
			src:  "math.sqrt(2)",
			env:  NewEnvironment(),
			want: []string{"math.sqrt"},
		},
		{
			name: "chained assignment binds every target",
			src:  "a := b := 1",
			env:  NewEnvironment(),
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			x := mustParse(t, tc.src)

			got := FreeVars(x, tc.env)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("FreeVars(%q) = %v, want %v", tc.src, got, tc.want)
			}
		})
	}
}

// TestFreeVarsDoesNotMutate verifies the analysis never writes to the
// environment, even for assignments it treats as locally bound.
func TestFreeVarsDoesNotMutate(t *testing.T) {
	t.Parallel()

	env := NewEnvironment()

	FreeVars(mustParse(t, "(x := 1) + x"), env)

	if env.Len() != 0 {
		t.Errorf("analysis bound %v into the environment", env.Keys())
	}
}
