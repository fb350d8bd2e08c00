package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/sexpr/lexer"
)

var (
	ErrEmptyInput          = errors.New("empty input")
	ErrUnexpectedEOF       = errors.New("unexpected end of input")
	ErrUnmatchedCloseParen = errors.New("unmatched close parenthesis")
	ErrTrailingContent     = errors.New("trailing content after expression")
	ErrTooDeep             = errors.New("maximum nesting depth exceeded")
)

// Error is a parse error with the position where it was detected. Use
// errors.Is to check its kind against the sentinel errors of this package.
type Error struct {
	Err error
	Pos lexer.Position
}

func newError(err error, pos lexer.Position) *Error {
	return &Error{Err: err, Pos: pos}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %v (offset %d)", e.Pos.Line, e.Pos.Col, e.Err, e.Pos.Offset)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Offset returns the byte offset at which the error was detected.
func (e *Error) Offset() int {
	return e.Pos.Offset
}
