package broadcast

import (
	"context"
	"sync"
)

// Subscriber receives values from a Broadcaster.
// Implementations must be safe for concurrent use.
type Subscriber[T any] interface {
	// Receive returns the channel on which broadcast values arrive.
	// The channel is closed when the subscriber is closed.
	Receive() <-chan T

	// Close closes the subscriber and releases its resources.
	// Close is idempotent.
	Close() error
}

// Broadcaster fans values out to multiple subscribers. There is no replay:
// a value is only seen by subscribers that existed when it was published.
// Implementations must handle slow consumers by dropping values rather
// than blocking the publisher.
type Broadcaster[T any] interface {
	// Subscribe registers a new subscriber. The subscription is removed
	// automatically when ctx is cancelled.
	Subscribe(ctx context.Context) Subscriber[T]

	// Publish delivers v to all current subscribers, never blocking.
	Publish(ctx context.Context, v T) error

	// Close shuts down the broadcaster and closes all subscribers.
	Close() error
}

type subscriber[T any] struct {
	ch     chan T
	closed bool
	mu     sync.RWMutex
}

func newSubscriber[T any](bufferSize int) *subscriber[T] {
	return &subscriber[T]{ch: make(chan T, bufferSize)}
}

func (s *subscriber[T]) Receive() <-chan T {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

// send attempts a non-blocking delivery; false means the subscriber is
// closed or its buffer is full.
func (s *subscriber[T]) send(v T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- v:
		return true
	default:
		return false
	}
}
