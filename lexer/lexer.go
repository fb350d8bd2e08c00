package lexer

import (
	"unicode/utf8"
)

type lexState func(*Lexer) lexState

const eof rune = -1

var (
	isOpenList   = isTokenType(TokenOpenList)
	isCloseList  = isTokenType(TokenCloseList)
	isWhitespace = isTokenType(TokenWhitespace)
)

// New initializes a Lexer that reads tokens from src. The lexer keeps a
// reference to src, which must not be modified while lexing.
func New(src []byte) *Lexer {
	start := Position{Offset: 0, Line: 1, Col: 1}
	return &Lexer{
		src:   src,
		state: lexDefaultState,
		start: start,
		pos:   start,
	}
}

// Lexer represents a lexical analyzer. Tokens are produced on demand by
// Next; the last token of every input is TokenEOF.
type Lexer struct {
	src []byte

	state   lexState
	tok     Token
	emitted bool

	start Position // first byte of the pending token
	pos   Position // next byte to read
}

// Next advances the lexer to the next token. It returns false once the EOF
// token has already been returned.
func (lx *Lexer) Next() bool {
	for lx.state != nil {
		lx.state = lx.state(lx)
		if lx.emitted {
			lx.emitted = false
			return true
		}
	}
	return false
}

// Token returns the token produced by the last call to Next.
func (lx *Lexer) Token() Token {
	return lx.tok
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tok = Token{
		tt:     tt,
		lexeme: string(lx.src[lx.start.Offset:lx.pos.Offset]),
		pos:    lx.start,
	}
	lx.start = lx.pos
	lx.emitted = true
}

func (lx *Lexer) peek() rune {
	if lx.pos.Offset >= len(lx.src) {
		return eof
	}
	r, _ := utf8.DecodeRune(lx.src[lx.pos.Offset:])
	return r
}

func (lx *Lexer) next() rune {
	if lx.pos.Offset >= len(lx.src) {
		return eof
	}
	r, size := utf8.DecodeRune(lx.src[lx.pos.Offset:])
	lx.pos.Offset += size
	if r == '\n' {
		lx.pos.Line++
		lx.pos.Col = 1
	} else {
		lx.pos.Col++
	}
	return r
}

func lexDefaultState(lx *Lexer) lexState {
	r := lx.peek()

	switch {
	case r == eof:
		lx.emit(TokenEOF)
		return nil
	case isOpenList(r):
		lx.next()
		return lexEmit(TokenOpenList)
	case isCloseList(r):
		lx.next()
		return lexEmit(TokenCloseList)
	case isWhitespace(r):
		return lexCollectStream(TokenWhitespace)
	default:
		return lexAtom
	}
}

func lexAtom(lx *Lexer) lexState {
	for r := lx.peek(); r != eof && !IsBreak(r); r = lx.peek() {
		lx.next()
	}
	return lexEmit(TokenAtom)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexCollectStream(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		is := isTokenType(tt)
		for is(lx.peek()) {
			lx.next()
		}
		return lexEmit(tt)
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// ending with TokenEOF.
func Tokenize(in []byte) []Token {
	tokens := []Token{}

	lx := New(in)
	for lx.Next() {
		tokens = append(tokens, lx.Token())
	}

	return tokens
}
