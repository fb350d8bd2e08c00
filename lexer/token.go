package lexer

import (
	"fmt"
)

// Position locates a byte in the input. Offset is zero-based and counted in
// bytes; Line and Col start at 1 and Col counts runes.
type Position struct {
	Offset int
	Line   int
	Col    int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string

	pos Position
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, lexeme string, pos Position) *Token {
	return &Token{
		tt:     tt,
		lexeme: lexeme,
		pos:    pos,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the position of the first byte of the lexical unit
func (t Token) Pos() Position {
	return t.pos
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d %d])", t.tt, t.lexeme, t.pos.Line, t.pos.Col)
}
