package btree

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWatchRequiresEvents(t *testing.T) {
	tree := makeIntTree(t, 3)
	if _, err := tree.Watch(context.Background(), 4); !errors.Is(err, ErrEventsDisabled) {
		t.Fatalf("expected ErrEventsDisabled, got %v", err)
	}
	tree.Close() // no-op
}

func TestWatchReportsSplits(t *testing.T) {
	cfg := OrderedConfig[int](2)
	cfg.Events = true
	tree, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer tree.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, err := tree.Watch(ctx, 256)
	if err != nil {
		t.Fatal(err)
	}
	for k := 1; k <= 40; k++ {
		tree.Set(k)
	}
	// every root split adds two nodes, every child split adds one
	nodes := 0
	tree.Walk(func(NodeInfo[int]) bool {
		nodes++
		return true
	})
	rootSplits := tree.Height() - 1
	childSplits := nodes - 1 - 2*rootSplits
	var gotRoot, gotChild int
	height := 1
	for range rootSplits + childSplits {
		select {
		case ev := <-events:
			switch ev.Kind {
			case RootSplit:
				gotRoot++
				if ev.Height != height+1 || ev.Depth != 0 {
					t.Errorf("unexpected root split event %+v at height %d", ev, height)
				}
				height = ev.Height
			case ChildSplit:
				gotChild++
				if ev.Depth < 1 || ev.Depth >= ev.Height {
					t.Errorf("unexpected depth in child split event %+v", ev)
				}
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for events, got %d root and %d child splits", gotRoot, gotChild)
		}
	}
	if gotRoot != rootSplits || gotChild != childSplits {
		t.Fatalf("expected %d/%d splits, got %d/%d", rootSplits, childSplits, gotRoot, gotChild)
	}
	if height != tree.Height() {
		t.Fatalf("expected last root split to report height %d, got %d", tree.Height(), height)
	}
}

func TestWatchAfterClose(t *testing.T) {
	cfg := OrderedConfig[int](3)
	cfg.Events = true
	tree, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	tree.Close()
	if _, err := tree.Watch(context.Background(), 1); !errors.Is(err, ErrEventsClosed) {
		t.Fatalf("expected ErrEventsClosed, got %v", err)
	}
	for k := range 20 { // must not block without subscribers
		tree.Set(k)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestEventKindString(t *testing.T) {
	if RootSplit.String() != "root-split" || ChildSplit.String() != "child-split" {
		t.Fatalf("unexpected event kind names %s, %s", RootSplit, ChildSplit)
	}
	if EventKind(7).String() != "EventKind(7)" {
		t.Fatalf("unexpected name for unknown kind: %s", EventKind(7))
	}
}

func makeEventTree(t *testing.T, order int) *Tree[int] {
	t.Helper()
	cfg := OrderedConfig[int](order)
	cfg.Events = true
	tree, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return tree
}

func TestCancelledWatchDoesNotStallSet(t *testing.T) {
	tree := makeEventTree(t, 2)
	defer tree.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if _, err := tree.Watch(ctx, 1); err != nil { // never read from
		t.Fatal(err)
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for k := 1; k <= 200; k++ {
			tree.Set(k)
		}
	}()
	time.Sleep(100 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Set still blocked 2s after the subscription has been cancelled")
	}
	if tree.Len() != 200 {
		t.Fatalf("expected 200 keys, got %d", tree.Len())
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestCancelledWatchClosesChannel(t *testing.T) {
	tree := makeEventTree(t, 3)
	defer tree.Close()
	ctx, cancel := context.WithCancel(context.Background())
	events, err := tree.Watch(ctx, 4)
	if err != nil {
		t.Fatal(err)
	}
	cancel()
	select {
	case _, ok := <-events:
		if ok {
			t.Fatalf("expected no events on an unchanged tree")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("event channel not closed after cancellation")
	}
}
