package btree

import "iter"

// NodeInfo is a read-only snapshot of a single tree node, as handed out by
// the traversal functions.
type NodeInfo[K any] struct {
	Depth int  // distance from the root, which has depth 0
	Leaf  bool // true for leaves
	Keys  []K  // keys of the node in ascending order, copied
}

// Walk visits the nodes of the tree depth-first in pre-order.
//
// Iteration stops early if fn returns false. An empty tree has no nodes.
func (t *Tree[K]) Walk(fn func(NodeInfo[K]) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	t.each(t.root, 0, func(n *node[K], depth int) bool {
		return fn(NodeInfo[K]{
			Depth: depth,
			Leaf:  n.leaf,
			Keys:  append([]K(nil), n.keys...),
		})
	})
}

// Nodes returns an iterator over the nodes of the tree, depth-first in
// pre-order. See Walk.
func (t *Tree[K]) Nodes() iter.Seq[NodeInfo[K]] {
	return func(yield func(NodeInfo[K]) bool) {
		t.Walk(yield)
	}
}

// each calls fn for n and all of its descendants in pre-order.
func (t *Tree[K]) each(n *node[K], depth int, fn func(*node[K], int) bool) bool {
	assert(n != nil, "each called with nil node")
	if !fn(n, depth) {
		return false
	}
	for _, child := range n.children {
		if !t.each(child, depth+1, fn) {
			return false
		}
	}
	return true
}
