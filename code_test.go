package formula

import "testing"

func TestCodeNamespace(t *testing.T) {
	t.Parallel()

	x := mustParse(t, "x + 1")

	want := `formula.Addition(formula.Variable("x"), formula.Number(1))`
	if got := x.Code("formula"); got != want {
		t.Errorf("Code(\"formula\") = %s, want %s", got, want)
	}

	want = `Addition(Variable("x"), Number(1))`
	if got := x.Code(""); got != want {
		t.Errorf("Code(\"\") = %s, want %s", got, want)
	}
}

func TestCodeQuotesStrings(t *testing.T) {
	t.Parallel()

	x := mustParse(t, `'say "hi"'`)

	want := `String("say \"hi\"")`
	if got := x.Code(""); got != want {
		t.Errorf("Code = %s, want %s", got, want)
	}
}

// TestCodeMatchesConstructors builds a tree by hand and parses its
// source-level equivalent, verifying both render identically.
func TestCodeMatchesConstructors(t *testing.T) {
	t.Parallel()

	built := Condition(
		GreaterThan(Variable("x"), Number(0)),
		Variable("x"),
		Negate(Variable("x")),
	)

	parsed := mustParse(t, "x if x > 0 else -x")

	if built.Code("") != parsed.Code("") {
		t.Errorf("built = %s\nparsed = %s", built.Code(""), parsed.Code(""))
	}
}
