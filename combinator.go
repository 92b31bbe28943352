package formula

import "regexp"

// parserFunc attempts to parse one expression at the scanner's cursor.
// On failure the cursor is left where it started, so alternatives can be
// tried with unrestricted backtracking.
type parserFunc func(s *scanner) (Expr, bool)

// opRule pairs an operator token with the pure construction function for
// its node kind. The grammar layer never touches node internals; it only
// invokes these constructors.
type opRule struct {
	token *regexp.Regexp
	build func(lhs, rhs Expr) Expr
}

// rule compiles an anchored operator pattern bound to a binary constructor.
func rule(pattern string, build func(lhs, rhs Expr) Expr) opRule {
	return opRule{
		token: regexp.MustCompile(`^(?:` + pattern + `)`),
		build: build,
	}
}

// tok compiles an anchored token pattern.
func tok(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + pattern + `)`)
}

// unaryPrefix wraps next with one prefix-operator layer. The operand parse
// recurses into the same layer so chained prefixes nest correctly.
func unaryPrefix(
	op *regexp.Regexp,
	build func(operand Expr) Expr,
	next parserFunc,
) parserFunc {
	var self parserFunc

	self = func(s *scanner) (Expr, bool) {
		mark := s.mark()

		if s.token(op) {
			if s.enter() {
				operand, ok := self(s)
				s.leave()

				if ok {
					return build(operand), true
				}
			}

			s.reset(mark)
		}

		return next(s)
	}

	return self
}

// leftBinary wraps next with one layer of left-associative operators:
// parse one operand, then fold each (op, operand) pair into a node so the
// first operand becomes the left child of the first fold step.
func leftBinary(next parserFunc, ops ...opRule) parserFunc {
	return func(s *scanner) (Expr, bool) {
		lhs, ok := next(s)
		if !ok {
			return nil, false
		}

	fold:
		for {
			mark := s.mark()

			for _, op := range ops {
				if !s.token(op.token) {
					continue
				}

				rhs, ok := next(s)
				if !ok {
					s.reset(mark)

					break fold
				}

				lhs = op.build(lhs, rhs)

				continue fold
			}

			break
		}

		return lhs, true
	}
}

// rightBinary wraps next with one right-associative operator layer: the
// right child is a full recursive parse of the same layer, producing
// right-nesting for chained operators.
func rightBinary(next parserFunc, op opRule) parserFunc {
	var self parserFunc

	self = func(s *scanner) (Expr, bool) {
		lhs, ok := next(s)
		if !ok {
			return nil, false
		}

		mark := s.mark()

		if s.token(op.token) {
			if s.enter() {
				rhs, ok := self(s)
				s.leave()

				if ok {
					return op.build(lhs, rhs), true
				}
			}

			s.reset(mark)
		}

		return lhs, true
	}

	return self
}

// ternary wraps next with the conditional layer: then "if" cond "else"
// alternative. The else branch recurses into the same layer, so chained
// conditionals associate to the right.
func ternary(next parserFunc) parserFunc {
	ifTok := tok(`if\b`)
	elseTok := tok(`else\b`)

	var self parserFunc

	self = func(s *scanner) (Expr, bool) {
		then, ok := next(s)
		if !ok {
			return nil, false
		}

		mark := s.mark()

		if s.token(ifTok) {
			if s.enter() {
				cond, ok := next(s)

				if ok && s.token(elseTok) {
					els, ok := self(s)
					if ok {
						s.leave()

						return Condition(cond, then, els), true
					}
				} else if ok {
					s.fail("else")
				}

				s.leave()
			}

			s.reset(mark)
		}

		return then, true
	}

	return self
}
