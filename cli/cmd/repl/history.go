package repl

// history holds the lines entered this session. Navigation walks backward
// from the most recent entry; adding a line resets the walk.
type history struct {
	lines []string
	idx   int
}

func newHistory() *history {
	return &history{}
}

// add appends line unless it repeats the most recent entry.
func (h *history) add(line string) {
	if n := len(h.lines); n > 0 && h.lines[n-1] == line {
		h.idx = n

		return
	}

	h.lines = append(h.lines, line)
	h.idx = len(h.lines)
}

// prev steps backward, reporting whether an entry was available.
func (h *history) prev() (string, bool) {
	if h.idx == 0 {
		return "", false
	}

	h.idx--

	return h.lines[h.idx], true
}

// next steps forward. Walking past the most recent entry returns an empty
// line, restoring the prompt the user was typing on.
func (h *history) next() (string, bool) {
	if h.idx >= len(h.lines) {
		return "", false
	}

	h.idx++

	if h.idx == len(h.lines) {
		return "", true
	}

	return h.lines[h.idx], true
}
