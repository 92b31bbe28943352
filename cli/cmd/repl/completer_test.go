package repl

import (
	"testing"

	"github.com/ardnew/formula"
)

func TestWordAt(t *testing.T) {
	t.Parallel()

	cases := []struct {
		line       string
		pos        int
		start, end int
	}{
		{"", 0, 0, 0},
		{"abc", 3, 0, 3},
		{"abc", 1, 0, 3},
		{"1 + foo", 7, 4, 7},
		{"1 + foo", 5, 4, 7},
		{"math.sq + 1", 7, 0, 7},
		{"a(b", 3, 2, 3},
		{"x ", 2, 2, 2},
		{"foo", 99, 0, 3}, // cursor clamped to end of line
	}

	for _, tc := range cases {
		start, end := wordAt(tc.line, tc.pos)
		if start != tc.start || end != tc.end {
			t.Errorf("wordAt(%q, %d) = %d, %d; want %d, %d",
				tc.line, tc.pos, start, end, tc.start, tc.end)
		}
	}
}

func testEnv() *formula.Environment {
	env := formula.NewEnvironment()

	for _, name := range []string{
		"alpha", "alphabet", "beta", "math.sqrt", "math.sin",
	} {
		env.Bind(name, formula.Num(0))
	}

	return env
}

func TestCompleterMatch(t *testing.T) {
	t.Parallel()

	c := newCompleter(testEnv())

	c.match("1 + alp", 7)

	if len(c.matches) != 2 {
		t.Fatalf("matches = %d, want 2", len(c.matches))
	}

	if c.start != 4 || c.end != 7 {
		t.Errorf("word span = %d:%d, want 4:7", c.start, c.end)
	}
}

func TestCompleterSkipsKeywords(t *testing.T) {
	t.Parallel()

	c := newCompleter(testEnv())

	for _, word := range []string{"True", "False", "not", "and", "or", "if", "else"} {
		c.match(word, len(word))

		if len(c.matches) != 0 {
			t.Errorf("keyword %q produced %d candidates", word, len(c.matches))
		}
	}
}

func TestCompleterCycle(t *testing.T) {
	t.Parallel()

	c := newCompleter(testEnv())

	line, pos, ok := c.cycle("bet + 1", 3, 1)
	if !ok {
		t.Fatal("cycle found no candidates")
	}

	if line != "beta + 1" || pos != 4 {
		t.Errorf("cycle = %q, %d; want %q, 4", line, pos, "beta + 1")
	}

	// Cycling wraps around the candidate list.
	for range len(c.matches) {
		line, pos, ok = c.cycle(line, pos, 1)
		if !ok {
			t.Fatal("cycle lost its candidates")
		}
	}

	if line != "beta + 1" {
		t.Errorf("full cycle = %q, want %q", line, "beta + 1")
	}
}

func TestCompleterCycleNoWord(t *testing.T) {
	t.Parallel()

	c := newCompleter(testEnv())

	if _, _, ok := c.cycle("1 + 2 ", 6, 1); ok {
		t.Error("cycle reported candidates with no word under cursor")
	}
}

func TestCompleterSeesNewBindings(t *testing.T) {
	t.Parallel()

	env := testEnv()
	c := newCompleter(env)

	c.match("gam", 3)

	if len(c.matches) != 0 {
		t.Fatalf("unexpected candidates: %d", len(c.matches))
	}

	env.Bind("gamma", formula.Num(1))
	c.match("gam", 3)

	if len(c.matches) != 1 || c.matches[0].Str != "gamma" {
		t.Errorf("matches = %v, want [gamma]", c.matches)
	}
}
