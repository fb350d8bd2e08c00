// Package census counts how often each atom occurs in a set of expressions.
package census

import (
	"iter"

	"github.com/tidwall/btree"

	"github.com/xiam/sexpr/ast"
)

// Census is an ordered table of atom frequencies.
//
// A zero value is ready to use. A Census is not safe for concurrent use.
type Census struct {
	atoms btree.Map[string, int]
	total int
}

// New creates an empty census.
func New() *Census {
	return &Census{}
}

// Add counts every atom in the tree rooted at n.
func (c *Census) Add(n *ast.Node) {
	ast.Walk(n, func(n *ast.Node) bool {
		if n.IsAtom() {
			count, _ := c.atoms.Get(n.Text())
			c.atoms.Set(n.Text(), count+1)
			c.total++
		}
		return true
	})
}

// Merge adds the counts of other to c.
func (c *Census) Merge(other *Census) {
	other.atoms.Scan(func(atom string, n int) bool {
		count, _ := c.atoms.Get(atom)
		c.atoms.Set(atom, count+n)
		return true
	})
	c.total += other.total
}

// Count returns the number of times atom was seen.
func (c *Census) Count(atom string) int {
	count, _ := c.atoms.Get(atom)
	return count
}

// Len returns the number of distinct atoms.
func (c *Census) Len() int {
	return c.atoms.Len()
}

// Total returns the number of atoms seen, counting repetitions.
func (c *Census) Total() int {
	return c.total
}

// All returns an iterator over the atoms and their counts, in byte order of
// the atom text.
func (c *Census) All() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		c.atoms.Scan(yield)
	}
}
