package btree

import (
	"context"
	"fmt"
)

// EventKind classifies structural changes of a tree.
type EventKind int

const (
	// RootSplit signals that the root has been split and the tree grew by one level.
	RootSplit EventKind = iota
	// ChildSplit signals that a non-root node has been split.
	ChildSplit
)

func (k EventKind) String() string {
	switch k {
	case RootSplit:
		return "root-split"
	case ChildSplit:
		return "child-split"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event describes a split which happened during Set.
type Event[K any] struct {
	Kind   EventKind
	Median K   // key promoted into the parent
	Depth  int // depth of the node which has been split, 0 for the root
	Height int // tree height after the split
}

// Watch subscribes to structural events of the tree. The tree must have been
// created with Config.Events set.
//
// Events are delivered in the order the splits happen. A subscriber not
// draining its channel stalls Set as soon as capacity events are pending,
// until ctx is done. The returned channel is closed when ctx is done or the
// tree is closed.
func (t *Tree[K]) Watch(ctx context.Context, capacity uint) (<-chan Event[K], error) {
	if t.cast == nil {
		return nil, ErrEventsDisabled
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if t.castClosed {
		return nil, ErrEventsClosed
	}
	sub, ok := t.cast.Sub(ctx, capacity)
	if !ok {
		return nil, ErrEventsClosed
	}
	events := make(chan Event[K], capacity)
	go t.forward(ctx, sub, events)
	return events, nil
}

// forward copies events from a caster subscription to a typed channel.
func (t *Tree[K]) forward(ctx context.Context, sub chan interface{}, events chan<- Event[K]) {
	send := func(msg any) bool {
		ev, ok := msg.(Event[K])
		if !ok {
			return true
		}
		select {
		case events <- ev:
			return true
		case <-ctx.Done():
			return false
		}
	}
	for {
		select {
		case msg, ok := <-sub:
			if !ok {
				close(events)
				return
			}
			if !send(msg) {
				close(events)
				t.release(sub)
				return
			}
		case <-ctx.Done():
			close(events)
			t.release(sub)
			return
		case <-t.done:
			for { // hand out what has already been delivered
				select {
				case msg, ok := <-sub:
					if ok && send(msg) {
						continue
					}
				default:
				}
				close(events)
				return
			}
		}
	}
}

// release unsubscribes sub. The caster delivers to sub synchronously, so sub
// is drained until it is closed or the tree is closed, which keeps Set from
// blocking on an abandoned subscription.
func (t *Tree[K]) release(sub chan interface{}) {
	go t.cast.Unsub(sub)
	for {
		select {
		case _, ok := <-sub:
			if !ok {
				return
			}
		case <-t.done:
			return
		}
	}
}

// Close ends all subscriptions to structural events. Closing a tree without
// events is a no-op. The tree itself remains usable.
func (t *Tree[K]) Close() {
	if t.cast == nil || t.castClosed {
		return
	}
	t.cast.Close()
	t.castClosed = true
	close(t.done)
}

func (t *Tree[K]) publish(ev Event[K]) {
	if t.cast == nil || t.castClosed {
		return
	}
	if !t.cast.Pub(ev) {
		T().Errorf("btree: could not publish %s event", ev.Kind)
	}
}
