package btree

import "fmt"

// Check validates the structural invariants of the tree:
//
//   - every internal node has one more child than keys,
//   - non-root nodes hold between t-1 and 2t-1 keys, the root between 1 and 2t-1,
//   - keys within a node are in ascending order,
//   - the keys of a child lie between the separating keys of its parent,
//   - all leaves are at the same depth, which equals the tree's height.
//
// As Set admits equal keys, order and separator bounds are checked
// non-strictly. Check is intended for tests and debugging.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		if t.height != 0 || t.count != 0 {
			return fmt.Errorf("%w: empty tree must have height=0 and no keys", ErrInvariantViolation)
		}
		return nil
	}
	if t.height <= 0 {
		return fmt.Errorf("%w: non-empty tree must have height > 0", ErrInvariantViolation)
	}
	keys, height, err := t.checkNode(t.root, true, nil, nil)
	if err != nil {
		return err
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvariantViolation, height, t.height)
	}
	if keys != t.count {
		return fmt.Errorf("%w: key count mismatch (%d != %d)", ErrInvariantViolation, keys, t.count)
	}
	return nil
}

// checkNode validates the subtree at n, whose keys must lie within [lo, hi].
// A nil bound is open.
func (t *Tree[K]) checkNode(n *node[K], isRoot bool, lo, hi *K) (keys int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrInvariantViolation)
	}
	if err := t.checkStorage(n); err != nil {
		return 0, 0, err
	}
	k := len(n.keys)
	if isRoot && k < 1 {
		return 0, 0, fmt.Errorf("%w: root has no keys", ErrInvariantViolation)
	}
	if !isRoot && k < t.cfg.minKeys() {
		return 0, 0, fmt.Errorf("%w: node underflow (%d < %d keys)", ErrInvariantViolation, k, t.cfg.minKeys())
	}
	for i := range n.keys {
		if i > 0 && t.cfg.Compare(n.keys[i-1], n.keys[i]) > 0 {
			return 0, 0, fmt.Errorf("%w: keys out of order at index %d: %v > %v",
				ErrInvariantViolation, i, n.keys[i-1], n.keys[i])
		}
		if lo != nil && t.cfg.Compare(n.keys[i], *lo) < 0 {
			return 0, 0, fmt.Errorf("%w: key %v below separator %v", ErrInvariantViolation, n.keys[i], *lo)
		}
		if hi != nil && t.cfg.Compare(n.keys[i], *hi) > 0 {
			return 0, 0, fmt.Errorf("%w: key %v above separator %v", ErrInvariantViolation, n.keys[i], *hi)
		}
	}
	if n.leaf {
		if len(n.children) != 0 {
			return 0, 0, fmt.Errorf("%w: leaf has %d children", ErrInvariantViolation, len(n.children))
		}
		return k, 1, nil
	}
	if len(n.children) != k+1 {
		return 0, 0, fmt.Errorf("%w: internal node has %d keys but %d children",
			ErrInvariantViolation, k, len(n.children))
	}
	total := k
	var childHeight int
	for i, child := range n.children {
		if child == nil {
			return 0, 0, fmt.Errorf("%w: nil child at index %d", ErrInvariantViolation, i)
		}
		clo, chi := lo, hi
		if i > 0 {
			clo = &n.keys[i-1]
		}
		if i < k {
			chi = &n.keys[i]
		}
		cKeys, cHeight, cErr := t.checkNode(child, false, clo, chi)
		if cErr != nil {
			return 0, 0, cErr
		}
		total += cKeys
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: non-uniform subtree heights", ErrInvariantViolation)
		}
	}
	return total, childHeight + 1, nil
}

// checkStorage validates that the key and child views of n are backed by
// storage of the capacity the tree's order prescribes.
func (t *Tree[K]) checkStorage(n *node[K]) error {
	if cap(n.keys) != t.cfg.maxKeys() {
		return fmt.Errorf("%w: key view cap mismatch (%d != %d)", ErrInvariantViolation, cap(n.keys), t.cfg.maxKeys())
	}
	if n.leaf {
		return nil
	}
	if cap(n.children) != t.cfg.maxChildren() {
		return fmt.Errorf("%w: child view cap mismatch (%d != %d)",
			ErrInvariantViolation, cap(n.children), t.cfg.maxChildren())
	}
	return nil
}
