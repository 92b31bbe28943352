// Package formula parses and evaluates a restricted, Python-flavored
// expression grammar. It is meant to be embedded in a host application that
// needs to evaluate user- or config-authored formulas (derived settings,
// computed defaults) without hosting a general-purpose interpreter.
//
// # Grammar
//
// Informal EBNF, loosest binding first:
//
//	expr           → assignment
//	assignment     → conditional (":=" assignment)?               // right-assoc
//	conditional    → or ("if" or "else" conditional)?             // right-assoc
//	or             → and ("or" and)*
//	and            → notExpr ("and" notExpr)*
//	notExpr        → "not" notExpr | relational
//	relational     → additive (("=="|"!="|"<="|">="|"<"|">") additive)*
//	additive       → multiplicative (("+"|"-") multiplicative)*
//	multiplicative → unaryNeg (("*"|"/"|"%") unaryNeg)*
//	unaryNeg       → "-" unaryNeg | power
//	power          → primary ("**" power)?                        // right-assoc
//	primary        → number | bool | string | list | apply
//	               | index | slice | "(" expr ")" | variable
//
// Lexing is folded into per-rule regular expressions. Identifiers may
// contain dots ("math.sqrt"); the dotted name is one opaque environment key,
// not a nested-path lookup. String literals are single- or double-quoted
// with no escape processing.
//
// # Evaluation
//
// [ParseString] produces an immutable [Expr] that can be evaluated any
// number of times against any number of environments:
//
//	x, err := formula.ParseString(ctx, "(n := 3) * n + 1")
//	env := formula.NewEnvironment()
//	res, err := x.Resolve(env)   // Num(10); env now binds n
//
// The [Environment] is the only mutable state in the system, and an
// assignment node is the only sanctioned write path into it. All other
// nodes treat the environment as read-only. "and"/"or" evaluate both
// operands eagerly so assignment side effects on either side always fire;
// the ternary conditional evaluates only the taken branch.
//
// [FreeVars] reports which names an expression reads from the environment
// without binding them first, so a host can determine a formula's inputs
// before running it. [Expr.Code] renders the tree as its constructor calls
// for debugging and golden comparisons.
//
// Parsing and evaluation recurse with depth proportional to expression
// nesting; the parser bounds this with a configurable limit
// ([WithMaxDepth]). Concurrent evaluation against a shared Environment is
// the caller's responsibility to serialize.
package formula
