package formula

import (
	"context"
	"testing"
)

// FuzzParseString checks that arbitrary input never panics the parser and
// that anything it accepts renders and evaluates without panicking.
func FuzzParseString(f *testing.F) {
	for _, seed := range []string{
		"1 + 2 * 3",
		"(x := 1) + x",
		"a if c else b",
		"xs[1:2]",
		"f(1, 'two', [3])",
		"not a and b or c",
		"4 ** 3 ** 2",
		"-2 ** 2",
		"''",
		"[]",
		"math.sqrt(2)",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		x, err := ParseString(
			context.Background(), src, WithMaxDepth(64),
		)
		if err != nil {
			return
		}

		if x.Code("") == "" {
			t.Errorf("accepted input %q rendered empty code", src)
		}

		// Evaluation may fail (undefined variables, type mismatches); it
		// must not panic.
		_, _ = x.Resolve(NewEnvironment())

		_ = FreeVars(x, NewEnvironment())
	})
}
