package btree

import "errors"

var (
	// ErrInvalidOrder signals a tree order below the minimum of 2.
	ErrInvalidOrder = errors.New("btree: invalid order")
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrInvariantViolation is reported by Check for a structurally broken tree.
	ErrInvariantViolation = errors.New("btree: invariant violated")
	// ErrEventsDisabled signals that Watch has been called on a tree
	// configured without structural events.
	ErrEventsDisabled = errors.New("btree: events disabled")
	// ErrEventsClosed signals that the tree's event broadcaster has been closed.
	ErrEventsClosed = errors.New("btree: events closed")
)
