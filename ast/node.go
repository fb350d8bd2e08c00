package ast

import (
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/xiam/sexpr/lexer"
)

var (
	ErrEmptyAtom   = errors.New("atom must not be empty")
	ErrInvalidAtom = errors.New("atom must not contain whitespace or parentheses")
	ErrNilChild    = errors.New("list child must not be nil")
)

// Node represents an expression: either an atom or a list of nodes. Nodes
// are never modified after construction.
type Node struct {
	nt  NodeType
	tok *lexer.Token

	text     string
	children []*Node
}

// NewAtom creates an atom holding text verbatim.
func NewAtom(text string) (*Node, error) {
	if text == "" {
		return nil, ErrEmptyAtom
	}
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if lexer.IsBreak(r) {
			return nil, ErrInvalidAtom
		}
		i += size
	}
	return &Node{nt: NodeTypeAtom, text: text}, nil
}

// MustAtom is like NewAtom but panics if text is not a valid atom.
func MustAtom(text string) *Node {
	n, err := NewAtom(text)
	if err != nil {
		panic(fmt.Sprintf("ast: %v: %q", err, text))
	}
	return n
}

// NewList creates a list with the given children. The slice is copied.
func NewList(children ...*Node) (*Node, error) {
	for i := range children {
		if children[i] == nil {
			return nil, ErrNilChild
		}
	}
	return newList(nil, slices.Clone(children)), nil
}

// MustList is like NewList but panics if any child is nil.
func MustList(children ...*Node) *Node {
	n, err := NewList(children...)
	if err != nil {
		panic("ast: " + err.Error())
	}
	return n
}

// NewAtomNode creates an atom from an atom token, keeping the token for
// position information.
func NewAtomNode(tok *lexer.Token) *Node {
	return &Node{nt: NodeTypeAtom, tok: tok, text: tok.Text()}
}

// NewListNode creates a list opened by tok. The node takes ownership of
// children.
func NewListNode(tok *lexer.Token, children []*Node) *Node {
	return newList(tok, children)
}

func newList(tok *lexer.Token, children []*Node) *Node {
	if children == nil {
		children = []*Node{}
	}
	return &Node{nt: NodeTypeList, tok: tok, children: children}
}

// Type returns the type of the node
func (n *Node) Type() NodeType {
	if n == nil {
		return NodeTypeInvalid
	}
	return n.nt
}

// IsAtom returns true if the node is an atom
func (n *Node) IsAtom() bool {
	return n.Type() == NodeTypeAtom
}

// IsList returns true if the node is a list
func (n *Node) IsList() bool {
	return n.Type() == NodeTypeList
}

// Token returns the token the node was parsed from, or nil for nodes built
// with NewAtom or NewList.
func (n *Node) Token() *lexer.Token {
	return n.tok
}

// Pos returns the position of the node in its source, if known.
func (n *Node) Pos() (lexer.Position, bool) {
	if n.tok == nil {
		return lexer.Position{}, false
	}
	return n.tok.Pos(), true
}

// Text returns the text of an atom, or an empty string for a list.
func (n *Node) Text() string {
	return n.text
}

// Len returns the number of children of a list.
func (n *Node) Len() int {
	return len(n.children)
}

// Child returns the i-th child of a list.
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

// Children returns a copy of the children of a list.
func (n *Node) Children() []*Node {
	if n.nt != NodeTypeList {
		return nil
	}
	return slices.Clone(n.children)
}

// Equal reports whether n and m have the same structure: same type, same
// atom text and equal children in the same order. Source positions are not
// compared.
func (n *Node) Equal(m *Node) bool {
	if n == nil || m == nil {
		return n == m
	}
	if n.nt != m.nt {
		return false
	}
	switch n.nt {
	case NodeTypeAtom:
		return n.text == m.text
	case NodeTypeList:
		return slices.EqualFunc(n.children, m.children, (*Node).Equal)
	}
	return false
}

// String returns the canonical text of the node.
func (n *Node) String() string {
	return string(Encode(n))
}

// GoString returns a description of the node for debugging.
func (n *Node) GoString() string {
	switch n.Type() {
	case NodeTypeAtom:
		return fmt.Sprintf("(%v): %q", n.nt, n.text)
	case NodeTypeList:
		return fmt.Sprintf("(%v)[%d]", n.nt, len(n.children))
	}
	return "(invalid)"
}
