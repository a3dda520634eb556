package broadcast

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/kbukum/streamkit/logger"
)

// Broker is a fan-out coordination point for values of type T. Each published
// value is delivered to every subscription registered at the time of the
// publish; a publish with zero subscribers drops the value.
//
// Pending values are buffered without bound per subscription, which trades
// memory growth under a permanently stalled subscriber for non-blocking
// publish semantics. This is a deliberate tradeoff, not an oversight: the
// producer side of an HTTP exchange must never stall on observers.
type Broker[T any] struct {
	mu   sync.Mutex
	subs map[string]*subscription[T]
	log  *logger.Logger
}

type subscription[T any] struct {
	id    string
	mu    sync.Mutex
	queue []T
	wake  chan struct{}
	out   chan T
}

// NewBroker returns a new broker for values of type T.
func NewBroker[T any]() *Broker[T] {
	return &Broker[T]{
		subs: make(map[string]*subscription[T]),
		log:  logger.WithComponent("broadcast"),
	}
}

// Subscribe registers a new subscription and returns its private channel.
// Values published after this call are delivered in publish order; values
// published before it are not replayed.
//
// When ctx is canceled the subscription is removed from the broker and the
// channel is closed. The close happens after removal completes, so once the
// channel is observed closed no further deliveries can occur.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan T {
	s := &subscription[T]{
		id:   uuid.NewString(),
		wake: make(chan struct{}, 1),
		out:  make(chan T),
	}

	b.mu.Lock()
	b.subs[s.id] = s
	total := len(b.subs)
	b.mu.Unlock()

	b.log.Debug("subscriber added", logger.Fields("subscription_id", s.id, "total", total))

	go b.pump(ctx, s)
	return s.out
}

// Publish delivers v to every currently registered subscription. It never
// blocks on consumers.
func (b *Broker[T]) Publish(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, s := range b.subs {
		s.mu.Lock()
		s.queue = append(s.queue, v)
		s.mu.Unlock()

		select {
		case s.wake <- struct{}{}:
		default:
		}
	}
}

// SubscriberCount returns the number of active subscriptions.
func (b *Broker[T]) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// pump drains the subscription's queue into its output channel, preserving
// publish order. It is the only goroutine that sends on s.out, so closing
// the channel on exit cannot race with a send.
func (b *Broker[T]) pump(ctx context.Context, s *subscription[T]) {
	defer close(s.out)

	for {
		s.mu.Lock()
		var (
			v  T
			ok bool
		)
		if len(s.queue) > 0 {
			v, ok = s.queue[0], true
			s.queue = s.queue[1:]
		} else if cap(s.queue) > 0 {
			s.queue = nil
		}
		s.mu.Unlock()

		if !ok {
			select {
			case <-s.wake:
				continue
			case <-ctx.Done():
				b.remove(s.id)
				return
			}
		}

		select {
		case s.out <- v:
		case <-ctx.Done():
			b.remove(s.id)
			return
		}
	}
}

func (b *Broker[T]) remove(id string) {
	b.mu.Lock()
	delete(b.subs, id)
	total := len(b.subs)
	b.mu.Unlock()

	b.log.Debug("subscriber removed", logger.Fields("subscription_id", id, "total", total))
}
