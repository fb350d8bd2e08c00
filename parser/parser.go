package parser

import (
	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/lexer"
)

// DefaultMaxDepth is the nesting limit used when ParserOptions.MaxDepth is
// zero.
const DefaultMaxDepth = 1024

// ParserOptions configures a Parser.
type ParserOptions struct {
	// MaxDepth is the maximum number of lists that may be open at the same
	// time. Zero means DefaultMaxDepth; a negative value removes the limit.
	MaxDepth int
}

func (o ParserOptions) maxDepth() int {
	if o.MaxDepth == 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

type parserState func(p *Parser) parserState

// frame is a list that has been opened but not closed yet.
type frame struct {
	tok      *lexer.Token
	children []*ast.Node
}

// Parser builds expression trees from the tokens of an in-memory input.
// Open lists are kept on an explicit stack, so the depth of the input does
// not grow the goroutine stack.
type Parser struct {
	lx      *lexer.Lexer
	options ParserOptions

	nextTok *lexer.Token

	stack []*frame
	nodes []*ast.Node

	// afterExpression is the state that follows a complete top-level
	// expression.
	afterExpression parserState

	lastErr error
}

// New creates a parser for src. The parser keeps a reference to src, which
// must not be modified while parsing.
func New(src []byte) *Parser {
	return &Parser{
		lx: lexer.New(src),
	}
}

// SetOptions replaces the options of the parser.
func (p *Parser) SetOptions(options ParserOptions) {
	p.options = options
}

// Parse reads exactly one expression. Whitespace around it is ignored; any
// other content after it is an error.
func (p *Parser) Parse() (*ast.Node, error) {
	p.afterExpression = parserStateEnd
	if err := p.run(parserStateExpression); err != nil {
		return nil, err
	}
	return p.nodes[0], nil
}

// ParseAll reads a sequence of expressions until the end of the input. An
// input with no expressions yields an empty slice.
func (p *Parser) ParseAll() ([]*ast.Node, error) {
	p.afterExpression = parserStateSequence
	if err := p.run(parserStateSequence); err != nil {
		return nil, err
	}
	return p.nodes, nil
}

func (p *Parser) run(state parserState) error {
	p.nodes = []*ast.Node{}
	p.stack = p.stack[:0]
	p.lastErr = nil

	for state != nil {
		state = state(p)
	}
	return p.lastErr
}

// read returns the next significant token; whitespace is skipped.
func (p *Parser) read() *lexer.Token {
	for p.lx.Next() {
		tok := p.lx.Token()
		if tok.Is(lexer.TokenWhitespace) {
			continue
		}
		return &tok
	}
	tok := p.lx.Token()
	return &tok
}

func (p *Parser) peek() *lexer.Token {
	if p.nextTok != nil {
		return p.nextTok
	}

	p.nextTok = p.read()
	return p.nextTok
}

func (p *Parser) next() *lexer.Token {
	if tok := p.nextTok; tok != nil {
		p.nextTok = nil
		return tok
	}
	return p.read()
}

// open pushes a new list started by tok.
func (p *Parser) open(tok *lexer.Token) parserState {
	if limit := p.options.maxDepth(); limit > 0 && len(p.stack) >= limit {
		return parserErrorState(ErrTooDeep, tok)
	}
	p.stack = append(p.stack, &frame{tok: tok, children: []*ast.Node{}})
	return parserStateList
}

// complete hands a finished node to the enclosing list, or records it as a
// top-level expression.
func (p *Parser) complete(node *ast.Node) parserState {
	if len(p.stack) == 0 {
		p.nodes = append(p.nodes, node)
		return p.afterExpression
	}
	top := p.stack[len(p.stack)-1]
	top.children = append(top.children, node)
	return parserStateList
}

func parserErrorState(err error, tok *lexer.Token) parserState {
	return func(p *Parser) parserState {
		p.lastErr = newError(err, tok.Pos())
		p.nodes = nil
		return nil
	}
}

func parserStateExpression(p *Parser) parserState {
	tok := p.next()

	switch tok.Type() {
	case lexer.TokenEOF:
		return parserErrorState(ErrEmptyInput, tok)
	case lexer.TokenCloseList:
		return parserErrorState(ErrUnmatchedCloseParen, tok)
	case lexer.TokenOpenList:
		return p.open(tok)
	default:
		return p.complete(ast.NewAtomNode(tok))
	}
}

func parserStateList(p *Parser) parserState {
	tok := p.next()

	switch tok.Type() {
	case lexer.TokenEOF:
		return parserErrorState(ErrUnexpectedEOF, tok)

	case lexer.TokenCloseList:
		top := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]
		return p.complete(ast.NewListNode(top.tok, top.children))

	case lexer.TokenOpenList:
		return p.open(tok)

	default:
		return p.complete(ast.NewAtomNode(tok))
	}
}

func parserStateEnd(p *Parser) parserState {
	tok := p.next()

	switch tok.Type() {
	case lexer.TokenEOF:
		return nil
	case lexer.TokenCloseList:
		return parserErrorState(ErrUnmatchedCloseParen, tok)
	default:
		return parserErrorState(ErrTrailingContent, tok)
	}
}

func parserStateSequence(p *Parser) parserState {
	if p.peek().Is(lexer.TokenEOF) {
		return nil
	}
	return parserStateExpression
}

// Parse reads exactly one expression from in.
func Parse(in []byte) (*ast.Node, error) {
	return New(in).Parse()
}

// ParseAll reads every expression from in.
func ParseAll(in []byte) ([]*ast.Node, error) {
	return New(in).ParseAll()
}
