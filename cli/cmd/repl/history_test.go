package repl

import "testing"

func TestHistoryWalk(t *testing.T) {
	t.Parallel()

	h := newHistory()

	if _, ok := h.prev(); ok {
		t.Error("prev on empty history reported an entry")
	}

	h.add("one")
	h.add("two")
	h.add("three")

	for _, want := range []string{"three", "two", "one"} {
		got, ok := h.prev()
		if !ok || got != want {
			t.Errorf("prev = %q, %v; want %q", got, ok, want)
		}
	}

	if _, ok := h.prev(); ok {
		t.Error("prev walked past the oldest entry")
	}

	for _, want := range []string{"two", "three", ""} {
		got, ok := h.next()
		if !ok || got != want {
			t.Errorf("next = %q, %v; want %q", got, ok, want)
		}
	}

	if _, ok := h.next(); ok {
		t.Error("next walked past the prompt")
	}
}

func TestHistoryDedupsConsecutive(t *testing.T) {
	t.Parallel()

	h := newHistory()

	h.add("x + 1")
	h.add("x + 1")
	h.add("y")
	h.add("x + 1")

	if got := len(h.lines); got != 3 {
		t.Errorf("len(lines) = %d, want 3", got)
	}
}

func TestHistoryAddResetsWalk(t *testing.T) {
	t.Parallel()

	h := newHistory()

	h.add("one")
	h.add("two")
	h.prev()
	h.prev()

	h.add("three")

	if got, ok := h.prev(); !ok || got != "three" {
		t.Errorf("prev after add = %q, %v; want %q", got, ok, "three")
	}
}
