package repl

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/formula"
)

// maxShown bounds the number of candidates rendered below the input.
const maxShown = 8

var (
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// completer fuzzy-matches the word under the cursor against the names
// bound in the session environment. The environment is consulted on every
// match, so names bound mid-session complete immediately.
type completer struct {
	env     *formula.Environment
	matches fuzzy.Matches
	start   int // byte offset of the matched word
	end     int // byte offset one past the matched word
	sel     int // selected candidate, -1 when not cycling
}

func newCompleter(env *formula.Environment) *completer {
	return &completer{env: env, sel: -1}
}

// reset clears the current match state.
func (c *completer) reset() {
	c.matches = nil
	c.sel = -1
}

// isWordRune reports whether r can appear in a variable name.
func isWordRune(r byte) bool {
	return r == '_' || r == '.' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// wordAt finds the identifier surrounding pos in line.
func wordAt(line string, pos int) (start, end int) {
	if pos > len(line) {
		pos = len(line)
	}

	start = pos
	for start > 0 && isWordRune(line[start-1]) {
		start--
	}

	end = pos
	for end < len(line) && isWordRune(line[end]) {
		end++
	}

	return start, end
}

// match recomputes the candidate list for the word under the cursor.
func (c *completer) match(line string, pos int) {
	c.reset()

	start, end := wordAt(line, pos)
	if start == end {
		return
	}

	word := line[start:end]

	// Skip keywords and literals; completing "True" or "if" is noise.
	switch word {
	case "True", "False", "not", "and", "or", "if", "else":
		return
	}

	c.matches = fuzzy.Find(word, c.env.Keys())
	c.start, c.end = start, end
}

// cycle selects the next candidate and returns the input line with the
// word under the cursor replaced, along with the new cursor position.
func (c *completer) cycle(line string, pos, delta int) (string, int, bool) {
	if len(c.matches) == 0 {
		c.match(line, pos)
	}

	if len(c.matches) == 0 {
		return "", 0, false
	}

	c.sel = (c.sel + delta + len(c.matches)) % len(c.matches)
	name := c.matches[c.sel].Str

	replaced := line[:c.start] + name + line[c.end:]
	c.end = c.start + len(name)

	return replaced, c.end, true
}

// hint renders the candidate list, highlighting the current selection.
func (c *completer) hint() string {
	if len(c.matches) == 0 {
		return ""
	}

	shown := len(c.matches)
	if shown > maxShown {
		shown = maxShown
	}

	parts := make([]string, 0, shown)

	for i := range shown {
		if i == c.sel {
			parts = append(parts, selectedStyle.Render(c.matches[i].Str))
		} else {
			parts = append(parts, suggestionStyle.Render(c.matches[i].Str))
		}
	}

	if len(c.matches) > shown {
		parts = append(parts, suggestionStyle.Render("…"))
	}

	return "  " + strings.Join(parts, "  ")
}
