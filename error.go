package formula

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrParse               = NewError("parse error")
	ErrTrailingInput       = NewError("unconsumed trailing input")
	ErrMaxDepthExceeded    = NewError("maximum nesting depth exceeded")
	ErrReadInput           = NewError("failed to read input")
	ErrUndefinedVariable   = NewError("undefined variable")
	ErrTypeMismatch        = NewError("type mismatch")
	ErrInvalidAssignTarget = NewError("invalid assignment target")
	ErrNegativeFactorial   = NewError("factorial of negative number")
	ErrIndexRange          = NewError("index out of range")
)

// Position locates a byte offset in parser input.
type Position struct {
	Offset int
	Line   int
	Column int
}

// positionAt computes the 1-based line and column of offset in src.
func positionAt(src string, offset int) Position {
	if offset > len(src) {
		offset = len(src)
	}

	line, col := 1, 1

	for _, r := range src[:offset] {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	return Position{Offset: offset, Line: line, Column: col}
}

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether e derives from target. Derived errors created by
// Wrap/With/WithPosition share the sentinel's message, which identifies the
// taxonomy entry.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.msg == e.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// WithPosition adds source-location attributes to the error.
func (e *Error) WithPosition(pos Position) *Error {
	return e.With(
		slog.Int("line", pos.Line),
		slog.Int("column", pos.Column),
		slog.Int("offset", pos.Offset),
	)
}

// formatSnippet renders the offending source line with a caret marker:
//
//	  1 | a + * b
//	          ^
func formatSnippet(source string, pos Position) string {
	lines := strings.Split(source, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return ""
	}

	var buf strings.Builder

	line := lines[pos.Line-1]

	buf.WriteString("  ")
	buf.WriteString(strconv.Itoa(pos.Line))
	buf.WriteString(" | ")
	buf.WriteString(line)
	buf.WriteRune('\n')

	// +5 accounts for: 2 leading spaces + " | " (3 chars)
	padding := len(strconv.Itoa(pos.Line)) + 5
	if pos.Column > 0 {
		padding += pos.Column - 1
	}

	buf.WriteString(strings.Repeat(" ", padding) + "^")

	return buf.String()
}
