package builtin

import (
	"context"
	"errors"
	"testing"

	"github.com/ardnew/formula"
)

// eval parses and resolves src against a fresh built-in environment.
func eval(t *testing.T, src string) (formula.Result, error) {
	t.Helper()

	x, err := formula.ParseString(context.Background(), src)
	if err != nil {
		t.Fatalf("ParseString(%q) failed: %v", src, err)
	}

	return x.Resolve(Environment())
}

func TestMathBuiltins(t *testing.T) {
	t.Parallel()

	cases := []struct {
		src  string
		want float64
	}{
		{"math.sqrt(9)", 3},
		{"math.abs(-4.5)", 4.5},
		{"math.floor(2.9)", 2},
		{"math.ceil(2.1)", 3},
		{"math.max(2, 7)", 7},
		{"math.min(2, 7)", 2},
		{"math.sum(1, 2, 3)", 6},
		{"math.sum([1, 2, 3, 4])", 10},
		{"math.sqrt(math.abs(0 - 16))", 4},
		{"len('hello')", 5},
		{"len([1, 2, 3])", 3},
	}

	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			t.Parallel()

			got, err := eval(t, tc.src)
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tc.src, err)
			}

			if got.Kind() != formula.KindNumber || got.Float() != tc.want {
				t.Errorf("Resolve(%q) = %v, want %v", tc.src, got, tc.want)
			}
		})
	}
}

func TestMathConstants(t *testing.T) {
	t.Parallel()

	got, err := eval(t, "math.pi")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if got.Float() < 3.14 || got.Float() > 3.15 {
		t.Errorf("math.pi = %v", got.Float())
	}
}

func TestStringBuiltins(t *testing.T) {
	t.Parallel()

	cases := []struct {
		src  string
		want string
	}{
		{"str.upper('abc')", "ABC"},
		{"str.lower('ABC')", "abc"},
		{"str.trim('  x  ')", "x"},
		{"str.join(['a', 'b', 'c'], '-')", "a-b-c"},
	}

	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			t.Parallel()

			got, err := eval(t, tc.src)
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tc.src, err)
			}

			if got.Kind() != formula.KindString || got.Text() != tc.want {
				t.Errorf("Resolve(%q) = %v, want %q", tc.src, got, tc.want)
			}
		})
	}
}

func TestStrSplit(t *testing.T) {
	t.Parallel()

	got, err := eval(t, "str.split('a,b,c', ',')")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := formula.ListOf(formula.Str("a"), formula.Str("b"), formula.Str("c"))
	if !got.Equal(want) {
		t.Errorf("str.split = %v, want %v", got, want)
	}
}

func TestEnvLookup(t *testing.T) {
	t.Setenv("FORMULA_TEST_KEY", "some value")

	got, err := eval(t, "env('FORMULA_TEST_KEY')")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if got.Text() != "some value" {
		t.Errorf("env lookup = %q, want %q", got.Text(), "some value")
	}

	got, err = eval(t, "env('FORMULA_TEST_UNSET')")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if got.Text() != "" {
		t.Errorf("unset env lookup = %q, want empty", got.Text())
	}
}

func TestArityErrors(t *testing.T) {
	t.Parallel()

	for _, src := range []string{
		"math.sqrt()",
		"math.sqrt(1, 2)",
		"len()",
		"env()",
	} {
		if _, err := eval(t, src); !errors.Is(err, formula.ErrTypeMismatch) {
			t.Errorf("Resolve(%q) error = %v, want type mismatch", src, err)
		}
	}
}

func TestTypeErrors(t *testing.T) {
	t.Parallel()

	for _, src := range []string{
		"math.sqrt('nine')",
		"str.upper(3)",
		"len(True)",
	} {
		if _, err := eval(t, src); !errors.Is(err, formula.ErrTypeMismatch) {
			t.Errorf("Resolve(%q) error = %v, want type mismatch", src, err)
		}
	}
}

func TestBuiltinsAreShadowable(t *testing.T) {
	t.Parallel()

	env := Environment()

	x, err := formula.ParseString(context.Background(), "(len := 42) + len")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	got, err := x.Resolve(env)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if got.Float() != 84 {
		t.Errorf("shadowed len = %v, want 84", got)
	}
}

func TestEnvironmentsAreIndependent(t *testing.T) {
	t.Parallel()

	a := Environment()
	a.Bind("x", formula.Num(1))

	if Environment().Has("x") {
		t.Error("binding leaked into a fresh environment")
	}
}

func TestNamesIncludesNamespaces(t *testing.T) {
	t.Parallel()

	names := Names()
	seen := make(map[string]bool, len(names))

	for _, n := range names {
		seen[n] = true
	}

	for _, want := range []string{
		"math.sqrt", "len", "env", "path.cat", "file.exists", "mung.prefix",
	} {
		if !seen[want] {
			t.Errorf("Names() missing %q", want)
		}
	}
}
