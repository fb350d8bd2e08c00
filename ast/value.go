package ast

import (
	"strconv"
	"strings"
)

// AtomKind classifies the text of an atom. Classification never changes the
// stored text; it only tells how the text may be read.
type AtomKind uint8

// Atom kinds
const (
	AtomNone AtomKind = iota
	AtomSymbol
	AtomInteger
	AtomFloat
)

var atomKindName = map[AtomKind]string{
	AtomNone:    "none",
	AtomSymbol:  "symbol",
	AtomInteger: "integer",
	AtomFloat:   "float",
}

func (k AtomKind) String() string {
	return atomKindName[k]
}

const numberChars = "+-.eE0123456789"

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// looksNumeric reports whether s starts like a number (a digit, or a sign
// followed by a digit) and only uses characters that may appear in one.
func looksNumeric(s string) bool {
	switch {
	case s == "":
		return false
	case isDigit(s[0]):
	case (s[0] == '+' || s[0] == '-') && len(s) > 1 && isDigit(s[1]):
	default:
		return false
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(numberChars, s[i]) < 0 {
			return false
		}
	}
	return true
}

// Kind classifies an atom as an integer, a float or a symbol. Lists have
// kind AtomNone.
func (n *Node) Kind() AtomKind {
	if n.Type() != NodeTypeAtom {
		return AtomNone
	}
	if !looksNumeric(n.text) {
		return AtomSymbol
	}
	if _, err := strconv.ParseInt(n.text, 10, 64); err == nil {
		return AtomInteger
	}
	if _, err := strconv.ParseFloat(n.text, 64); err == nil {
		return AtomFloat
	}
	return AtomSymbol
}

// Int64 returns the value of an integer atom.
func (n *Node) Int64() (int64, bool) {
	if n.Kind() != AtomInteger {
		return 0, false
	}
	i, _ := strconv.ParseInt(n.text, 10, 64)
	return i, true
}

// Float64 returns the value of an integer or float atom.
func (n *Node) Float64() (float64, bool) {
	switch n.Kind() {
	case AtomInteger, AtomFloat:
		f, _ := strconv.ParseFloat(n.text, 64)
		return f, true
	}
	return 0, false
}

// Value returns the value of the node: an int64, float64 or string for
// atoms depending on their kind, or the children of a list.
func (n *Node) Value() interface{} {
	switch n.Kind() {
	case AtomInteger:
		v, _ := n.Int64()
		return v
	case AtomFloat:
		v, _ := n.Float64()
		return v
	case AtomSymbol:
		return n.text
	}
	if n.IsList() {
		return n.Children()
	}
	return nil
}
