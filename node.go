package btree

// node is a single position in a B-tree.
//
// keys is a view over a backing array of capacity 2t-1; len(keys) is the
// number of keys in use. children is nil for leaves and otherwise a view over
// a backing array of capacity 2t with len(children) == len(keys)+1.
type node[K any] struct {
	keys     []K
	children []*node[K]
	leaf     bool
}

// newNode allocates an empty node with full capacity for a tree of the given order.
func newNode[K any](order int, leaf bool) *node[K] {
	n := &node[K]{
		keys: make([]K, 0, 2*order-1),
		leaf: leaf,
	}
	if !leaf {
		n.children = make([]*node[K], 0, 2*order)
	}
	return n
}

func (n *node[K]) isFull() bool {
	return len(n.keys) == cap(n.keys)
}

// insertKeyAt shifts keys at positions >= i one slot right and places key at i.
func (n *node[K]) insertKeyAt(i int, key K) {
	assert(len(n.keys) < cap(n.keys), "insertKeyAt on full node")
	assert(i >= 0 && i <= len(n.keys), "insertKeyAt index out of range")
	n.keys = n.keys[:len(n.keys)+1]
	copy(n.keys[i+1:], n.keys[i:])
	n.keys[i] = key
}

// insertChildAt shifts children at positions >= i one slot right and links child at i.
func (n *node[K]) insertChildAt(i int, child *node[K]) {
	assert(!n.leaf, "insertChildAt on leaf node")
	assert(len(n.children) < cap(n.children), "insertChildAt on node with full child storage")
	assert(i >= 0 && i <= len(n.children), "insertChildAt index out of range")
	n.children = n.children[:len(n.children)+1]
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
}

// truncate drops keys from position i on and, for internal nodes, children
// from position i+1 on. Dropped slots are cleared, so the node no longer
// holds references to moved keys or subtrees.
func (n *node[K]) truncate(i int) {
	clear(n.keys[i:])
	n.keys = n.keys[:i]
	if !n.leaf {
		clear(n.children[i+1:])
		n.children = n.children[:i+1]
	}
}
