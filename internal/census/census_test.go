package census

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/sexpr/parser"
)

func collect(c *Census) ([]string, []int) {
	atoms, counts := []string{}, []int{}
	for atom, n := range c.All() {
		atoms = append(atoms, atom)
		counts = append(counts, n)
	}
	return atoms, counts
}

func TestCensus(t *testing.T) {
	nodes, err := parser.ParseAll([]byte("(b a (c a)) a ()"))
	require.NoError(t, err)

	c := New()
	for _, n := range nodes {
		c.Add(n)
	}

	atoms, counts := collect(c)
	assert.Equal(t, []string{"a", "b", "c"}, atoms)
	assert.Equal(t, []int{3, 1, 1}, counts)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 5, c.Total())
	assert.Equal(t, 3, c.Count("a"))
	assert.Equal(t, 0, c.Count("z"))
}

func TestMerge(t *testing.T) {
	a, err := parser.Parse([]byte("(x y)"))
	require.NoError(t, err)
	b, err := parser.Parse([]byte("(y z y)"))
	require.NoError(t, err)

	var c1, c2 Census
	c1.Add(a)
	c2.Add(b)
	c1.Merge(&c2)

	atoms, counts := collect(&c1)
	assert.Equal(t, []string{"x", "y", "z"}, atoms)
	assert.Equal(t, []int{1, 3, 1}, counts)
	assert.Equal(t, 5, c1.Total())
}

func TestEmpty(t *testing.T) {
	c := New()
	c.Add(nil)

	atoms, _ := collect(c)
	assert.Empty(t, atoms)
	assert.Equal(t, 0, c.Total())
}
