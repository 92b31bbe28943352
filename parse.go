package formula

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/ardnew/formula/log"
)

// DefaultMaxDepth bounds parser recursion. Each nested parenthesis,
// chained prefix operator, ternary, or assignment adds one level; the
// bound keeps pathological input from exhausting the call stack.
// Users may change it via [WithMaxDepth] per parse.
const DefaultMaxDepth = 500

// parser holds per-parse configuration.
type parser struct {
	maxDepth int
	logger   log.Logger
}

// Option configures parsing behavior.
type Option func(*parser)

// WithMaxDepth sets the maximum recursion depth for nested expressions.
func WithMaxDepth(depth int) Option {
	return func(p *parser) {
		p.maxDepth = depth
	}
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(p *parser) {
		p.logger = logger
	}
}

// ParseString parses one expression and returns its immutable tree.
// The whole input must be consumed; a valid prefix followed by trailing
// text is a parse error. Leading and trailing whitespace are trimmed
// before parsing.
//
// When called with no options the result is cached by source hash, so
// repeated parses of the same formula are cheap.
func ParseString(
	ctx context.Context,
	input string,
	opts ...Option,
) (Expr, error) {
	if len(opts) == 0 {
		return parseStringCached(ctx, input)
	}

	p := &parser{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}

	return p.parse(ctx, input)
}

// parse is the internal parsing implementation.
func (p *parser) parse(ctx context.Context, input string) (Expr, error) {
	src := strings.TrimSpace(input)

	p.logger.TraceContext(
		ctx,
		"parse start",
		slog.Int("source_length", len(src)),
	)

	s := &scanner{src: src, maxDepth: p.maxDepth}

	x, ok := grammarRoot(s)
	if s.fatal != nil {
		return nil, s.fatal
	}

	if !ok {
		return nil, p.parseError(src, s)
	}

	s.skipSpace()

	if !s.eof() {
		pos := positionAt(src, s.pos)

		return nil, ErrTrailingInput.
			WithPosition(pos).
			With(slog.String("snippet", formatSnippet(src, pos)))
	}

	p.logger.TraceContext(ctx, "parse complete")

	return x, nil
}

// parseError builds the diagnostic for the furthest point reached.
func (p *parser) parseError(src string, s *scanner) error {
	pos := positionAt(src, s.failPos)
	err := ErrParse.WithPosition(pos)

	if len(s.expected) > 0 {
		err = err.With(
			slog.String("expected", strings.Join(s.expected, ", ")),
		)
	}

	return err.With(slog.String("snippet", formatSnippet(src, pos)))
}

// grammarRoot is the assembled precedence ladder. It is stateless across
// parses; all cursor state lives in the scanner.
var grammarRoot = newGrammar()

// Shared punctuation tokens.
var (
	lparen = tok(`\(`)
	rparen = tok(`\)`)
	lbrack = tok(`\[`)
	rbrack = tok(`\]`)
	comma  = tok(`,`)
	colon  = tok(`:`)
)

// newGrammar composes the precedence ladder bottom-up, tightest binding
// first, each layer taking the previous layer as its operand parser.
func newGrammar() parserFunc {
	// Forward reference: primaries (parens, lists, call arguments) recurse
	// into the full expression grammar.
	var expr parserFunc

	ref := func(s *scanner) (Expr, bool) { return expr(s) }

	prim := primaryParser(ref)

	power := rightBinary(prim, rule(`\*\*`, Exponentiate))
	neg := unaryPrefix(tok(`-`), Negate, power)
	mul := leftBinary(neg,
		rule(`\*`, Multiply),
		rule(`/`, Divide),
		rule(`%`, Modulo),
	)
	add := leftBinary(mul,
		rule(`\+`, Addition),
		rule(`-`, Subtraction),
	)
	// Two-character comparisons are listed before their one-character
	// prefixes; alternatives are tried in order.
	rel := leftBinary(add,
		rule(`==`, Equality),
		rule(`!=`, Inequality),
		rule(`<=`, LessThanEq),
		rule(`>=`, GreaterThanEq),
		rule(`<`, LessThan),
		rule(`>`, GreaterThan),
	)
	not := unaryPrefix(tok(`not\b`), Not, rel)
	and := leftBinary(not, rule(`and\b`, And))
	or := leftBinary(and, rule(`or\b`, Or))
	cond := ternary(or)

	expr = rightBinary(cond, rule(`:=`, Assignment))

	return expr
}

// primaryParser combines the lexical primitives with the parenthesized,
// list, apply, index, and slice rules. Apply, index, and slice share a
// target prefix "name(" / "name["; the target is parsed exactly once and
// the token that follows selects the form, with a ':' inside the brackets
// selecting slice over index. A malformed suffix backtracks to the bare
// target, so re-parsing is confined to the bracket contents and nesting
// depth never multiplies parse work.
func primaryParser(expr parserFunc) parserFunc {
	// target parses what can be applied, indexed, or sliced: a plain
	// identifier or a parenthesized expression.
	target := func(s *scanner) (Expr, bool) {
		mark := s.mark()

		if s.token(lparen) {
			if x, ok := expr(s); ok && s.token(rparen) {
				return x, true
			}

			s.reset(mark)

			return nil, false
		}

		if name, ok := s.match(reIdent); ok {
			return Variable(name), true
		}

		return nil, false
	}

	return func(s *scanner) (Expr, bool) {
		if !s.enter() {
			return nil, false
		}
		defer s.leave()

		mark := s.mark()

		if m, ok := s.match(reNumber); ok {
			v, err := strconv.ParseFloat(m, 64)
			if err != nil {
				s.reset(mark)

				return nil, false
			}

			return Number(v), true
		}

		if m, ok := s.match(reBoolean); ok {
			return Boolean(m == "True"), true
		}

		if m, ok := s.match(reString); ok {
			return String(m[1 : len(m)-1]), true
		}

		// List literal
		if s.token(lbrack) {
			if elems, ok := commaList(s, expr, rbrack); ok {
				return List(elems...), true
			}

			s.reset(mark)
		}

		t, ok := target(s)
		if !ok {
			s.fail("expression")

			return nil, false
		}

		after := s.mark()

		// Apply: target "(" args ")"
		if s.token(lparen) {
			if args, ok := commaList(s, expr, rparen); ok {
				return Apply(t, args...), true
			}

			s.reset(after)

			return t, true
		}

		// Index: target "[" expr "]"
		// Slice: target "[" expr ":" expr "]"
		if s.token(lbrack) {
			if from, ok := expr(s); ok {
				if s.token(colon) {
					if to, ok := expr(s); ok && s.token(rbrack) {
						return Slice(t, from, to), true
					}
				} else if s.token(rbrack) {
					return Index(t, from), true
				}
			}

			s.reset(after)
		}

		return t, true
	}
}

// commaList parses zero or more comma-separated expressions terminated by
// closing, which is always consumed on success.
func commaList(
	s *scanner,
	expr parserFunc,
	closing *regexp.Regexp,
) ([]Expr, bool) {
	if s.token(closing) {
		return nil, true
	}

	var elems []Expr

	for {
		e, ok := expr(s)
		if !ok {
			return nil, false
		}

		elems = append(elems, e)

		if s.token(comma) {
			continue
		}

		if s.token(closing) {
			return elems, true
		}

		s.fail("',' or closing delimiter")

		return nil, false
	}
}
