package ast

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/sexpr/lexer"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		In  *Node
		Out string
	}{
		{MustList(), "()"},
		{MustAtom("a"), "a"},
		{MustList(MustAtom("abcd"), MustAtom("123"), MustAtom("abc")), "(abcd 123 abc)"},
		{MustList(MustAtom("a"), MustList(MustAtom("b"), MustAtom("c")), MustAtom("d")), "(a (b c) d)"},
		{MustList(MustList(MustList())), "((()))"},
		{MustList(MustList(), MustList()), "(() ())"},
		{nil, ""},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, string(Encode(testCases[i].In)))
		assert.Equal(t, testCases[i].Out, testCases[i].In.String())
	}

	dst := AppendEncode([]byte("x = "), MustList(MustAtom("y")))
	assert.Equal(t, "x = (y)", string(dst))
}

func TestFprint(t *testing.T) {
	open := lexer.NewToken(lexer.TokenOpenList, "(", lexer.Position{Offset: 0, Line: 1, Col: 1})
	atom := lexer.NewToken(lexer.TokenAtom, "12", lexer.Position{Offset: 1, Line: 1, Col: 2})

	tree := NewListNode(open, []*Node{
		NewAtomNode(atom),
		MustList(MustAtom("b")),
	})

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, tree))

	expected := "(list): [2] @1:1\n" +
		"    (atom): \"12\" (integer) @1:2\n" +
		"    (list): [1]\n" +
		"        (atom): \"b\" (symbol)\n"
	assert.Equal(t, expected, buf.String())

	buf.Reset()
	require.NoError(t, Fprint(&buf, nil))
	assert.Equal(t, ":nil\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestFprintError(t *testing.T) {
	err := Fprint(failingWriter{}, MustList(MustAtom("a")))
	assert.EqualError(t, err, "closed")
}

func TestWalk(t *testing.T) {
	tree := MustList(MustAtom("a"), MustList(MustAtom("b"), MustList(MustAtom("c"))), MustAtom("d"))

	visited := []string{}
	Walk(tree, func(n *Node) bool {
		if n.IsAtom() {
			visited = append(visited, n.Text())
		} else {
			visited = append(visited, n.String())
		}
		return true
	})
	assert.Equal(t, []string{"(a (b (c)) d)", "a", "(b (c))", "b", "(c)", "c", "d"}, visited)

	visited = visited[:0]
	Walk(tree, func(n *Node) bool {
		visited = append(visited, n.String())
		return n == tree
	})
	assert.Equal(t, []string{"(a (b (c)) d)", "a", "(b (c))", "d"}, visited)

	Walk(nil, func(*Node) bool {
		t.Fatal("unexpected call")
		return false
	})
}

func TestMarshalJSON(t *testing.T) {
	tree := MustList(MustAtom("a"), MustList(MustAtom("\"b\""), MustList()), MustAtom("12"))

	out, err := json.Marshal(tree)
	require.NoError(t, err)
	assert.JSONEq(t, `["a", ["\"b\"", []], "12"]`, string(out))

	_, err = json.Marshal(&Node{})
	assert.Error(t, err)
}
