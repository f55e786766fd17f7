package btree

import (
	"cmp"
	"fmt"
)

// MinOrder is the smallest admissible order of a B-tree.
const MinOrder = 2

// Config configures a B-tree.
type Config[K any] struct {
	// Order is the minimum number of children of a non-root internal node.
	// Nodes hold at most 2*Order-1 keys and 2*Order children.
	Order int
	// Compare defines the total order of keys. It returns a negative number
	// for a < b, zero for a == b and a positive number for a > b.
	Compare func(a, b K) int
	// Events enables broadcasting of structural changes (see Tree.Watch).
	Events bool
}

// OrderedConfig returns a configuration using the natural ordering of K.
func OrderedConfig[K cmp.Ordered](order int) Config[K] {
	return Config[K]{
		Order:   order,
		Compare: cmp.Compare[K],
	}
}

func (cfg Config[K]) normalized() Config[K] {
	return cfg
}

func (cfg Config[K]) validate() error {
	cfg = cfg.normalized()
	if cfg.Order < MinOrder {
		return fmt.Errorf("%w: order must be >= %d, is %d", ErrInvalidOrder, MinOrder, cfg.Order)
	}
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	return nil
}

func (cfg Config[K]) maxKeys() int {
	return 2*cfg.Order - 1
}

func (cfg Config[K]) maxChildren() int {
	return 2 * cfg.Order
}

func (cfg Config[K]) minKeys() int {
	return cfg.Order - 1
}
