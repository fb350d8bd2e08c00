package ast

// Walk traverses the tree rooted at n in depth-first order, calling fn for
// each node before its children. If fn returns false the children of that
// node are skipped.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	stack := []*Node{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(top) || top.nt != NodeTypeList {
			continue
		}
		for i := len(top.children) - 1; i >= 0; i-- {
			stack = append(stack, top.children[i])
		}
	}
}
