package async

import (
	"context"
	"sync"
	"time"
)

// Future represents the eventual result of an asynchronous computation.
// A Future is completed exactly once; all waiters observe the same result.
type Future[T any] struct {
	result T
	err    error
	once   sync.Once
	done   chan struct{}
}

// NewFuture creates a pending future together with its completion function.
// The completion function is idempotent: only the first call settles the
// future, subsequent calls are ignored. This promise-style constructor is
// used when the producer of the result is not a single function call, e.g.
// a shared in-flight request slot that several callers attach to.
func NewFuture[T any]() (*Future[T], func(T, error)) {
	f := &Future[T]{done: make(chan struct{})}
	return f, f.complete
}

// Resolved returns a future that is already settled with the given result.
func Resolved[T any](result T, err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	f.complete(result, err)
	return f
}

func (f *Future[T]) complete(result T, err error) {
	f.once.Do(func() {
		f.result = result
		f.err = err
		close(f.done)
	})
}

// Await blocks until the future settles or the context is cancelled.
// On cancellation the context error is returned and the underlying
// computation keeps running; the caller merely detaches from it.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// AwaitWithTimeout blocks until the future settles or the timeout elapses,
// in which case ErrTimeout is returned.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero T
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the future has settled, without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async runs fn in its own goroutine and returns a future for its result.
// If the context is already cancelled the future settles immediately with
// the context error and fn is never invoked.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		select {
		case <-ctx.Done():
			var zero U
			f.complete(zero, ctx.Err())
			return
		default:
		}

		res, err := fn(ctx, param)
		f.complete(res, err)
	}()

	return f
}

// WaitAll waits for every future to settle and returns their results in
// order. The first non-nil error encountered is returned alongside the
// partially filled result slice; remaining futures are still awaited so
// none of the underlying work is abandoned mid-flight.
func WaitAll[U any](ctx context.Context, futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))

	var firstErr error
	for i, future := range futures {
		result, err := future.Await(ctx)
		results[i] = result
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return results, firstErr
}
