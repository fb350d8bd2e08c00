package ast

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n *Node) {
	_ = Fprint(os.Stdout, n)
}

// Fprint writes a human-readable, indented representation of a node to w.
func Fprint(w io.Writer, n *Node) error {
	p := &printer{w: w}
	p.printLevel(n, 0)
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) printLevel(n *Node, level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		p.printf("%s:nil\n", indent)
		return
	}
	p.printf("%s(%s): ", indent, n.Type())
	switch n.Type() {

	case NodeTypeList:
		p.printf("[%d]%s\n", n.Len(), posSuffix(n))
		for i := range n.children {
			p.printLevel(n.children[i], level+1)
		}

	case NodeTypeAtom:
		p.printf("%q (%v)%s\n", n.text, n.Kind(), posSuffix(n))

	default:
		p.printf("\n")
	}
}

func posSuffix(n *Node) string {
	if pos, ok := n.Pos(); ok {
		return " @" + pos.String()
	}
	return ""
}

// Encode transforms a node into its canonical text: atoms are written
// verbatim and the children of a list are separated by a single space.
func Encode(n *Node) []byte {
	return AppendEncode(nil, n)
}

// AppendEncode appends the canonical text of n to dst and returns the
// extended buffer.
func AppendEncode(dst []byte, n *Node) []byte {
	if n == nil {
		return dst
	}
	switch n.nt {
	case NodeTypeAtom:
		return append(dst, n.text...)

	case NodeTypeList:
		dst = append(dst, '(')
		for i := range n.children {
			if i > 0 {
				dst = append(dst, ' ')
			}
			dst = AppendEncode(dst, n.children[i])
		}
		return append(dst, ')')
	}
	return dst
}
