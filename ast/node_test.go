package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/sexpr/lexer"
)

func TestNode(t *testing.T) {
	token := lexer.NewToken(lexer.TokenAtom, "AAAA", lexer.Position{Offset: 3, Line: 1, Col: 4})

	node := NewAtomNode(token)
	assert.True(t, node.IsAtom())
	assert.False(t, node.IsList())
	assert.Equal(t, "AAAA", node.Text())
	assert.Equal(t, 0, node.Len())
	assert.Nil(t, node.Children())

	pos, ok := node.Pos()
	require.True(t, ok)
	assert.Equal(t, 3, pos.Offset)
}

func TestNodeList(t *testing.T) {
	token := lexer.NewToken(lexer.TokenOpenList, "(", lexer.Position{Line: 1, Col: 1})

	list := NewListNode(token, nil)
	assert.True(t, list.IsList())
	assert.Equal(t, 0, list.Len())
	assert.NotNil(t, list.Children())
	assert.Equal(t, "()", list.String())
}

func TestNewAtom(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{"abc", nil},
		{"123", nil},
		{"a-b.c/d", nil},
		{"\"quoted\"", nil},
		{"\U0001F916", nil},
		{"", ErrEmptyAtom},
		{"a b", ErrInvalidAtom},
		{"a\tb", ErrInvalidAtom},
		{"a\nb", ErrInvalidAtom},
		{"a\rb", ErrInvalidAtom},
		{"(a", ErrInvalidAtom},
		{"a)", ErrInvalidAtom},
	}

	for i := range testCases {
		node, err := NewAtom(testCases[i].In)
		if testCases[i].Err != nil {
			assert.ErrorIs(t, err, testCases[i].Err, "input: %q", testCases[i].In)
			assert.Nil(t, node)
			continue
		}
		require.NoError(t, err, "input: %q", testCases[i].In)
		assert.Equal(t, testCases[i].In, node.Text())

		_, ok := node.Pos()
		assert.False(t, ok)
	}

	assert.Panics(t, func() { MustAtom("") })
}

func TestNewList(t *testing.T) {
	a := MustAtom("a")

	_, err := NewList(a, nil)
	assert.ErrorIs(t, err, ErrNilChild)
	assert.Panics(t, func() { MustList(nil) })

	children := []*Node{a, MustAtom("b")}
	list, err := NewList(children...)
	require.NoError(t, err)

	// The list owns a copy of its children.
	children[0] = MustAtom("z")
	assert.Equal(t, "(a b)", list.String())

	got := list.Children()
	got[1] = MustAtom("y")
	assert.Equal(t, "(a b)", list.String())
	assert.Equal(t, "b", list.Child(1).Text())
}

func TestEqual(t *testing.T) {
	a := MustList(MustAtom("a"), MustList(MustAtom("b"), MustAtom("c")), MustAtom("d"))

	testCases := []struct {
		Node  *Node
		Equal bool
	}{
		{MustList(MustAtom("a"), MustList(MustAtom("b"), MustAtom("c")), MustAtom("d")), true},
		{MustList(MustAtom("a"), MustList(MustAtom("b"), MustAtom("c"))), false},
		{MustList(MustAtom("a"), MustList(MustAtom("c"), MustAtom("b")), MustAtom("d")), false},
		{MustList(MustAtom("a"), MustAtom("b"), MustAtom("c"), MustAtom("d")), false},
		{MustAtom("a"), false},
		{nil, false},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Equal, a.Equal(testCases[i].Node), "case %d", i)
		assert.Equal(t, testCases[i].Equal, testCases[i].Node.Equal(a), "case %d", i)
	}

	var nilNode *Node
	assert.True(t, nilNode.Equal(nil))
	assert.False(t, MustList().Equal(MustAtom("x")))
	assert.True(t, MustList().Equal(MustList()))
}

func TestEqualIgnoresPosition(t *testing.T) {
	tok := lexer.NewToken(lexer.TokenAtom, "x", lexer.Position{Offset: 10, Line: 2, Col: 5})
	assert.True(t, NewAtomNode(tok).Equal(MustAtom("x")))
}

func TestGoString(t *testing.T) {
	assert.Equal(t, `(atom): "a"`, MustAtom("a").GoString())
	assert.Equal(t, `(list)[2]`, MustList(MustAtom("a"), MustList()).GoString())
}
