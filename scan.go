package formula

import "regexp"

// Lexing is folded into the grammar as per-rule regular expressions.
// Every pattern is anchored so it matches only at the scanner's cursor.
var (
	// Number: int, int.frac, .frac, or int. — alternatives ordered
	// longest-first because Go regexp alternation is leftmost-first.
	reNumber = regexp.MustCompile(`^(?:\d+\.\d+|\d+\.|\.\d+|\d+)`)

	// Boolean: the True/False keywords only, case-sensitive. The trailing
	// boundary keeps identifiers like "Truext" out.
	reBoolean = regexp.MustCompile(`^(?:True|False)\b`)

	// String: double- or single-quoted, no escape processing; content is
	// any run of characters excluding the matching quote.
	reString = regexp.MustCompile(`^(?:"[^"]*"|'[^']*')`)

	// Identifier: dots are allowed and treated as part of one opaque key
	// ("math.sqrt" is a single environment lookup).
	reIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*`)
)

// scanner is the cursor the combinators advance and rewind over one input.
// Combinators backtrack by saving and restoring pos; the furthest position
// reached before a failure is kept for diagnostics.
type scanner struct {
	src      string
	pos      int
	depth    int
	maxDepth int

	failPos  int
	expected []string
	fatal    *Error
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

func (s *scanner) mark() int { return s.pos }

func (s *scanner) reset(mark int) { s.pos = mark }

// enter guards recursion depth. Exceeding the limit poisons the scanner so
// the whole parse unwinds promptly.
func (s *scanner) enter() bool {
	if s.fatal != nil {
		return false
	}

	s.depth++
	if s.maxDepth > 0 && s.depth > s.maxDepth {
		s.fatal = ErrMaxDepthExceeded.
			WithPosition(positionAt(s.src, s.pos))

		return false
	}

	return true
}

func (s *scanner) leave() { s.depth-- }

func (s *scanner) skipSpace() {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case ' ', '\t', '\r', '\n':
			s.pos++
		default:
			return
		}
	}
}

// match applies an anchored pattern at the cursor without skipping leading
// whitespace. Literal primitives use this directly.
func (s *scanner) match(re *regexp.Regexp) (string, bool) {
	if s.fatal != nil {
		return "", false
	}

	m := re.FindString(s.src[s.pos:])
	if m == "" {
		return "", false
	}

	s.pos += len(m)

	return m, true
}

// token matches an operator or punctuation pattern with surrounding
// optional whitespace trimmed.
func (s *scanner) token(re *regexp.Regexp) bool {
	if s.fatal != nil {
		return false
	}

	mark := s.pos

	s.skipSpace()

	if _, ok := s.match(re); !ok {
		s.pos = mark

		return false
	}

	s.skipSpace()

	return true
}

// fail records what was expected at the furthest point any alternative
// reached, which is where the eventual parse error points.
func (s *scanner) fail(what string) {
	switch {
	case s.pos > s.failPos:
		s.failPos = s.pos
		s.expected = append(s.expected[:0], what)

	case s.pos == s.failPos:
		for _, e := range s.expected {
			if e == what {
				return
			}
		}

		s.expected = append(s.expected, what)
	}
}
