// Package sexpr reads and writes S-expressions made of atoms and
// parenthesized lists.
//
// Parse is permissive about whitespace between tokens, while Serialize
// always produces the same canonical single-line text, so
//
//	Parse(Serialize(e)) is equal to e
//
// for every tree e.
package sexpr

import (
	"io"

	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/parser"
)

// Parse errors. Every error returned by the parsing functions wraps one of
// them and can be inspected with errors.Is.
var (
	ErrEmptyInput          = parser.ErrEmptyInput
	ErrUnexpectedEOF       = parser.ErrUnexpectedEOF
	ErrUnmatchedCloseParen = parser.ErrUnmatchedCloseParen
	ErrTrailingContent     = parser.ErrTrailingContent
	ErrTooDeep             = parser.ErrTooDeep
)

// Option configures parsing.
type Option func(*parser.ParserOptions)

// WithMaxDepth limits how deeply lists may be nested. A negative depth
// removes the limit.
func WithMaxDepth(depth int) Option {
	return func(o *parser.ParserOptions) {
		o.MaxDepth = depth
	}
}

func newParser(in []byte, opts []Option) *parser.Parser {
	var options parser.ParserOptions
	for _, opt := range opts {
		opt(&options)
	}
	p := parser.New(in)
	p.SetOptions(options)
	return p
}

// Reader parses expressions from an io.Reader. The whole input is read into
// memory before parsing.
type Reader struct {
	r    io.Reader
	opts []Option
}

// NewReader creates a Reader for r.
func NewReader(r io.Reader, opts ...Option) *Reader {
	return &Reader{r: r, opts: opts}
}

// Parse reads all of the input and parses exactly one expression from it.
func (r *Reader) Parse() (*ast.Node, error) {
	in, err := io.ReadAll(r.r)
	if err != nil {
		return nil, err
	}
	return Parse(in, r.opts...)
}

// ParseAll reads all of the input and parses every expression in it.
func (r *Reader) ParseAll() ([]*ast.Node, error) {
	in, err := io.ReadAll(r.r)
	if err != nil {
		return nil, err
	}
	return ParseAll(in, r.opts...)
}

// Parse parses exactly one expression from in. Leading and trailing
// whitespace is ignored; anything else after the expression is an error.
func Parse(in []byte, opts ...Option) (*ast.Node, error) {
	return newParser(in, opts).Parse()
}

// ParseString is like Parse but takes a string.
func ParseString(s string, opts ...Option) (*ast.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseAll parses a sequence of expressions separated by whitespace.
func ParseAll(in []byte, opts ...Option) ([]*ast.Node, error) {
	return newParser(in, opts).ParseAll()
}

// Serialize returns the canonical text of n.
func Serialize(n *ast.Node) string {
	return string(ast.Encode(n))
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b *ast.Node) bool {
	return a.Equal(b)
}
