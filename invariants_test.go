package btree

import (
	"errors"
	"strings"
	"testing"
)

func expectViolation(t *testing.T, tree *Tree[int], fragment string) {
	t.Helper()
	err := tree.Check()
	if err == nil {
		t.Fatalf("expected invariant error containing %q", fragment)
	}
	if !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("expected ErrInvariantViolation, got %v", err)
	}
	if !strings.Contains(err.Error(), fragment) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckDetectsKeyDisorder(t *testing.T) {
	tree := makeIntTree(t, 3, 1, 2, 3, 4, 5, 6, 7)
	leaf := tree.root.children[1]
	leaf.keys[0], leaf.keys[1] = leaf.keys[1], leaf.keys[0] // corrupt on purpose
	expectViolation(t, tree, "keys out of order")
}

func TestCheckDetectsSeparatorViolation(t *testing.T) {
	tree := makeIntTree(t, 3, 1, 2, 3, 4, 5, 6, 7)
	tree.root.children[0].keys[1] = 99
	expectViolation(t, tree, "above separator")
}

func TestCheckDetectsUnderflow(t *testing.T) {
	tree := makeIntTree(t, 3, 1, 2, 3, 4, 5, 6)
	tree.root.children[0].truncate(1)
	tree.count--
	expectViolation(t, tree, "node underflow")
}

func TestCheckDetectsMissingChild(t *testing.T) {
	tree := makeIntTree(t, 3, 1, 2, 3, 4, 5, 6)
	tree.root.children = tree.root.children[:1]
	expectViolation(t, tree, "children")
}

func TestCheckDetectsHeightDrift(t *testing.T) {
	tree := makeIntTree(t, 3, 1, 2, 3, 4, 5, 6)
	tree.height = 3
	expectViolation(t, tree, "height mismatch")
}

func TestCheckDetectsCountDrift(t *testing.T) {
	tree := makeIntTree(t, 3, 1, 2, 3)
	tree.count = 2
	expectViolation(t, tree, "key count mismatch")
}

func TestCheckDetectsUnevenLeaves(t *testing.T) {
	tree := makeIntTree(t, 2, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	if tree.Height() < 3 {
		t.Fatalf("expected height >= 3, got %d", tree.Height())
	}
	// replace an internal subtree by a single leaf holding the same keys
	sub := tree.root.children[0]
	var keys []int
	tree.each(sub, 0, func(n *node[int], _ int) bool {
		keys = append(keys, n.keys...)
		return true
	})
	leaf := newNode[int](2, true)
	leaf.keys = append(leaf.keys, sub.keys...)
	tree.root.children[0] = leaf
	tree.count -= len(keys) - len(sub.keys)
	expectViolation(t, tree, "non-uniform subtree heights")
}

func TestCheckDetectsKeyViewDrift(t *testing.T) {
	tree := makeIntTree(t, 3, 1, 2)
	tree.root.keys = append([]int(nil), tree.root.keys...)
	expectViolation(t, tree, "key view cap mismatch")
}

func TestNodeOverflowPanics(t *testing.T) {
	n := newNode[int](2, true)
	n.insertKeyAt(0, 1)
	n.insertKeyAt(1, 2)
	n.insertKeyAt(2, 3)
	if !n.isFull() {
		t.Fatalf("expected node to be full")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on key overflow")
		}
	}()
	n.insertKeyAt(0, 0)
}

func TestSplitChildRejectsNonFullChild(t *testing.T) {
	tree := makeIntTree(t, 3, 1, 2, 3, 4, 5, 6)
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic when splitting a non-full child")
		}
	}()
	tree.splitChild(tree.root, 0, 0)
}
