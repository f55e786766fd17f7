package btree

import (
	"cmp"
	"fmt"

	"github.com/guiguan/caster"
)

// Tree is an in-memory B-tree of keys of type K.
//
// The zero value is not usable; create trees with New, NewFunc or
// NewWithConfig. A tree owns its nodes exclusively, and every node owns its
// children exclusively.
type Tree[K any] struct {
	cfg    Config[K]
	root   *node[K] // nil for an empty tree
	height int      // 0 means empty tree
	count  int
	cast   *caster.Caster // nil if events are disabled

	castClosed bool
	done       chan struct{} // closed by Close
}

// New creates an empty tree of the given order, ordering keys by their
// natural order.
func New[K cmp.Ordered](order int) (*Tree[K], error) {
	return NewWithConfig(OrderedConfig[K](order))
}

// NewFunc creates an empty tree of the given order, ordering keys with compare.
func NewFunc[K any](order int, compare func(a, b K) int) (*Tree[K], error) {
	return NewWithConfig(Config[K]{
		Order:   order,
		Compare: compare,
	})
}

// NewWithConfig creates an empty tree with validated configuration.
func NewWithConfig[K any](cfg Config[K]) (*Tree[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Tree[K]{cfg: cfg}
	if cfg.Events {
		t.cast = caster.New(nil)
		t.done = make(chan struct{})
	}
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K]) Config() Config[K] {
	return t.cfg
}

// Order returns the order t of the tree.
func (t *Tree[K]) Order() int {
	return t.cfg.Order
}

// IsEmpty reports whether the tree has no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of keys stored in the tree, counting duplicates.
func (t *Tree[K]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Tree[K]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

func (t *Tree[K]) String() string {
	if t == nil {
		return "btree(nil)"
	}
	if t.root == nil {
		return fmt.Sprintf("btree(empty, order %d)", t.cfg.Order)
	}
	return fmt.Sprintf("btree(order %d, %d keys, height %d)", t.cfg.Order, t.count, t.height)
}

// Set inserts key into the tree.
//
// Set never fails. It does not look for an equal key already present: a key
// inserted twice is stored twice.
func (t *Tree[K]) Set(key K) {
	if t.root == nil {
		t.root = newNode[K](t.cfg.Order, true)
		t.root.keys = append(t.root.keys, key)
		t.height = 1
		t.count = 1
		return
	}
	if t.root.isFull() {
		t.splitRoot()
	}
	t.insert(t.root, key, 0)
	t.count++
}

// insert places key into the subtree rooted at n, which must not be full.
// Full children on the way down are split before being entered.
func (t *Tree[K]) insert(n *node[K], key K, depth int) {
	assert(!n.isFull(), "insert descended into full node")
	i := len(n.keys)
	for i > 0 && t.cfg.Compare(key, n.keys[i-1]) < 0 {
		i--
	}
	if n.leaf {
		n.insertKeyAt(i, key)
		return
	}
	if n.children[i].isFull() {
		t.splitChild(n, i, depth)
		// the promoted median now separates children i and i+1
		if t.cfg.Compare(key, n.keys[i]) > 0 {
			i++
		}
	}
	t.insert(n.children[i], key, depth+1)
}

// Get looks up key and returns the stored key equal to it.
//
// If the tree holds more than one equal key, the one closest to the root on
// the search path is returned, leftmost within its node.
func (t *Tree[K]) Get(key K) (K, bool) {
	var zero K
	if t == nil {
		return zero, false
	}
	n := t.search(t.root, key)
	if n == nil {
		return zero, false
	}
	for i := range n.keys {
		if t.cfg.Compare(n.keys[i], key) == 0 {
			return n.keys[i], true
		}
	}
	return zero, false
}

// Has reports whether a key equal to key is stored in the tree.
func (t *Tree[K]) Has(key K) bool {
	_, found := t.Get(key)
	return found
}

// search returns the first node on the path from n downwards which holds a
// key equal to key, or nil.
func (t *Tree[K]) search(n *node[K], key K) *node[K] {
	if n == nil {
		return nil
	}
	i, found := t.find(n, key)
	if found {
		return n
	}
	if n.leaf {
		return nil
	}
	return t.search(n.children[i], key)
}

// find returns the index of the first key in n which is >= key, and whether
// that key is equal to key.
func (t *Tree[K]) find(n *node[K], key K) (int, bool) {
	i := 0
	for i < len(n.keys) && t.cfg.Compare(n.keys[i], key) < 0 {
		i++
	}
	return i, i < len(n.keys) && t.cfg.Compare(n.keys[i], key) == 0
}
