package formula

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestParseStringCachedEquivalence(t *testing.T) {
	ClearCache()

	// The first parse populates the cache; the second is served from it.
	// Both must render and evaluate identically.
	a := mustParse(t, "1 + 2 * x")
	b := mustParse(t, "1 + 2 * x")

	if a.Code("") != b.Code("") {
		t.Errorf("cached parse differs: %s vs %s", a.Code(""), b.Code(""))
	}

	env := NewEnvironment().Bind("x", Num(10))

	for _, x := range []Expr{a, b} {
		got, err := x.Resolve(env)
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}

		if got.Float() != 21 {
			t.Errorf("Resolve = %v, want 21", got)
		}
	}
}

func TestClearCache(t *testing.T) {
	ClearCache()

	before := mustParse(t, "7 * 6")

	ClearCache()

	after := mustParse(t, "7 * 6")

	if before.Code("") != after.Code("") {
		t.Errorf("re-parse after ClearCache differs: %s vs %s",
			before.Code(""), after.Code(""))
	}
}

func TestParseFailuresAreNotCached(t *testing.T) {
	ClearCache()

	// Each attempt re-diagnoses; a cached failure would surface as a
	// missing or stale error on the second pass.
	for range 2 {
		_, err := ParseString(context.Background(), "1 +")
		if !errors.Is(err, ErrTrailingInput) {
			t.Fatalf("error = %v, want %v", err, ErrTrailingInput)
		}
	}
}

func TestParseReader(t *testing.T) {
	x, err := ParseReader(
		context.Background(), strings.NewReader("  2 ** 8  "),
	)
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}

	got, err := x.Resolve(NewEnvironment())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if got.Float() != 256 {
		t.Errorf("Resolve = %v, want 256", got)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestParseReaderFailure(t *testing.T) {
	_, err := ParseReader(context.Background(), failingReader{})
	if !errors.Is(err, ErrReadInput) {
		t.Errorf("error = %v, want %v", err, ErrReadInput)
	}
}

func BenchmarkParseWarm(b *testing.B) {
	ClearCache()

	ctx := context.Background()

	for range b.N {
		if _, err := ParseString(ctx, "(x := 1) + x * 2 ** 8"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseCold(b *testing.B) {
	ctx := context.Background()

	for range b.N {
		ClearCache()

		if _, err := ParseString(ctx, "(x := 1) + x * 2 ** 8"); err != nil {
			b.Fatal(err)
		}
	}
}
