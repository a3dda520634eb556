package broadcast

import (
	"context"
	"testing"
	"time"
)

func recv[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		if !ok {
			t.Fatal("channel closed unexpectedly")
		}
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for value")
	}
	panic("unreachable")
}

func waitClosed[T any](t *testing.T, ch <-chan T) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for channel close")
		}
	}
}

func TestPublishWithZeroSubscribersIsNoOp(t *testing.T) {
	broker := NewBroker[int]()
	broker.Publish(1)
	broker.Publish(2)

	// A later subscriber must not see values published before it existed.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := broker.Subscribe(ctx)

	broker.Publish(3)
	if got := recv(t, ch); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
}

func TestPublishReachesAllCurrentSubscribers(t *testing.T) {
	broker := NewBroker[string]()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch1 := broker.Subscribe(ctx)
	ch2 := broker.Subscribe(ctx)

	broker.Publish("x")

	if got := recv(t, ch1); got != "x" {
		t.Errorf("subscriber 1 got %q, want %q", got, "x")
	}
	if got := recv(t, ch2); got != "x" {
		t.Errorf("subscriber 2 got %q, want %q", got, "x")
	}

	// A third subscriber arriving after the publish does not receive "x".
	ch3 := broker.Subscribe(ctx)
	broker.Publish("y")
	if got := recv(t, ch3); got != "y" {
		t.Errorf("late subscriber got %q, want %q", got, "y")
	}
}

func TestAbandonedSubscriberIsRemoved(t *testing.T) {
	broker := NewBroker[int]()

	keepCtx, keepCancel := context.WithCancel(context.Background())
	defer keepCancel()
	dropCtx, dropCancel := context.WithCancel(context.Background())

	kept := broker.Subscribe(keepCtx)
	dropped := broker.Subscribe(dropCtx)

	if n := broker.SubscriberCount(); n != 2 {
		t.Fatalf("subscriber count = %d, want 2", n)
	}

	dropCancel()
	// Channel close is ordered after registry removal.
	waitClosed(t, dropped)

	if n := broker.SubscriberCount(); n != 1 {
		t.Fatalf("subscriber count after abandon = %d, want 1", n)
	}

	broker.Publish(7)
	if got := recv(t, kept); got != 7 {
		t.Errorf("remaining subscriber got %d, want 7", got)
	}
}

func TestPerSubscriberOrderPreserved(t *testing.T) {
	broker := NewBroker[int]()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := broker.Subscribe(ctx)

	const n = 100
	for i := 0; i < n; i++ {
		broker.Publish(i)
	}
	for i := 0; i < n; i++ {
		if got := recv(t, ch); got != i {
			t.Fatalf("position %d: got %d", i, got)
		}
	}
}

func TestPublishNeverBlocksOnSlowSubscriber(t *testing.T) {
	broker := NewBroker[int]()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := broker.Subscribe(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		// Nobody is reading ch yet; every publish must return immediately.
		for i := 0; i < 1000; i++ {
			broker.Publish(i)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on an idle subscriber")
	}

	for i := 0; i < 1000; i++ {
		if got := recv(t, ch); got != i {
			t.Fatalf("position %d: got %d", i, got)
		}
	}
}

func TestConcurrentPublishAndUnsubscribe(t *testing.T) {
	broker := NewBroker[int]()

	stop := make(chan struct{})
	go func() {
		for {
			select {
			case <-stop:
				return
			default:
				broker.Publish(1)
			}
		}
	}()

	for i := 0; i < 50; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		ch := broker.Subscribe(ctx)
		recv(t, ch)
		cancel()
		waitClosed(t, ch)
	}
	close(stop)

	if n := broker.SubscriberCount(); n != 0 {
		t.Errorf("subscriber count = %d, want 0", n)
	}
}
