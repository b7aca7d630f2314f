// Package yangerr defines the structured error taxonomy for the YANG
// front-end (lexer, parser, resolver), per spec.md section 7. Each
// concrete error type carries the source position it was raised at and is
// wrapped with a stack trace via github.com/pkg/errors at the point of
// construction, so callers that log these errors get both a structured
// kind (via errors.As) and a trace to the call site that built it.
package yangerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies which branch of the taxonomy an error belongs to.
type Kind string

const (
	KindLexical            Kind = "lexical"
	KindInvalidIdentifier  Kind = "invalid_identifier"
	KindInvalidDate        Kind = "invalid_date"
	KindInvalidArgument    Kind = "invalid_argument"
	KindUnexpectedStatement Kind = "unexpected_statement"
	KindDuplicateStatement Kind = "duplicate_statement"
	KindUnresolvedReference Kind = "unresolved_reference"
)

// Position mirrors token.Position without importing package token, so
// yangerr stays a leaf dependency that lexer/parser/resolver can all import
// without a cycle.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Error is the concrete error type returned for every taxonomy member.
type Error struct {
	Kind    Kind
	Pos     Position
	Message string
}

func (e *Error) Error() string {
	if e.Pos.Line == 0 && e.Pos.Column == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Pos, e.Message)
}

// Is supports errors.Is comparisons against a bare *Error with only Kind
// set, e.g. errors.Is(err, &yangerr.Error{Kind: yangerr.KindInvalidDate}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// newf builds a *Error and wraps it with a stack trace.
func newf(kind Kind, pos Position, format string, args ...any) error {
	return errors.WithStack(&Error{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)})
}

func Lexical(pos Position, format string, args ...any) error {
	return newf(KindLexical, pos, format, args...)
}

func InvalidIdentifier(pos Position, format string, args ...any) error {
	return newf(KindInvalidIdentifier, pos, format, args...)
}

func InvalidDate(pos Position, format string, args ...any) error {
	return newf(KindInvalidDate, pos, format, args...)
}

func InvalidArgument(pos Position, format string, args ...any) error {
	return newf(KindInvalidArgument, pos, format, args...)
}

func UnexpectedStatement(pos Position, format string, args ...any) error {
	return newf(KindUnexpectedStatement, pos, format, args...)
}

func DuplicateStatement(pos Position, format string, args ...any) error {
	return newf(KindDuplicateStatement, pos, format, args...)
}

func UnresolvedReference(pos Position, format string, args ...any) error {
	return newf(KindUnresolvedReference, pos, format, args...)
}

// ErrEmptyInput is the distinguished, unrecoverable-programmer-error value
// returned when StripComments is handed zero bytes (spec.md section 4.1).
var ErrEmptyInput = errors.New("yangerr: comment stripper received empty input")

// Warning is a non-fatal diagnostic. The parser records one for each
// duplicate statement kept under the lenient-parse policy (spec.md section
// 9). Unresolved references are returned by the resolver as errors, and an
// unterminated block comment is reported as a lexer.Warning.
type Warning struct {
	Kind    Kind
	Pos     Position
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s at %s: %s", w.Kind, w.Pos, w.Message)
}
