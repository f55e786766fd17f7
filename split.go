package btree

// splitRoot replaces a full root by a new root holding the old root's median
// key, with two fresh children taking the lower and upper halves of the old
// root. This is the only place where the tree grows in height.
func (t *Tree[K]) splitRoot() {
	old := t.root
	assert(old != nil && old.isFull(), "splitRoot called on non-full root")
	order := t.cfg.Order
	mid := order - 1
	median := old.keys[mid]

	left := newNode[K](order, old.leaf)
	right := newNode[K](order, old.leaf)
	left.keys = append(left.keys, old.keys[:mid]...)
	right.keys = append(right.keys, old.keys[mid+1:]...)
	if !old.leaf {
		// subtrees are moved, the old root gives up its links
		left.children = append(left.children, old.children[:order]...)
		right.children = append(right.children, old.children[order:]...)
		clear(old.children)
		old.children = nil
	}
	clear(old.keys)
	old.keys = nil

	root := newNode[K](order, false)
	root.keys = append(root.keys, median)
	root.children = append(root.children, left, right)
	t.root = root
	t.height++
	T().P("btree", "split").Debugf("root split: median=%v, height=%d", median, t.height)
	t.publish(Event[K]{
		Kind:   RootSplit,
		Median: median,
		Depth:  0,
		Height: t.height,
	})
}

// splitChild splits the full child at position i of parent. The child keeps
// its lower half, a new right sibling receives the upper half and the
// child's median key moves up into parent at position i.
//
// parent must not be full; depth is the depth of parent.
func (t *Tree[K]) splitChild(parent *node[K], i int, depth int) {
	assert(!parent.leaf, "splitChild called on leaf parent")
	assert(!parent.isFull(), "splitChild called on full parent")
	child := parent.children[i]
	assert(child != nil && child.isFull(), "splitChild called on non-full child")
	order := t.cfg.Order
	mid := order - 1
	median := child.keys[mid]

	sibling := newNode[K](order, child.leaf)
	sibling.keys = append(sibling.keys, child.keys[mid+1:]...)
	if !child.leaf {
		sibling.children = append(sibling.children, child.children[order:]...)
	}
	child.truncate(mid)

	parent.insertKeyAt(i, median)
	parent.insertChildAt(i+1, sibling)
	T().P("btree", "split").Debugf("child split at depth %d: median=%v", depth+1, median)
	t.publish(Event[K]{
		Kind:   ChildSplit,
		Median: median,
		Depth:  depth + 1,
		Height: t.height,
	})
}
