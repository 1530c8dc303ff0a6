// Package async provides a small, generic future primitive for coordinating
// asynchronous work.
//
// The package is centred around the generic type Future that represents the
// eventual result of an asynchronous operation. A Future is obtained either
// from Async, which starts the supplied function in its own goroutine, or
// from NewFuture, which returns a pending future plus its completion
// function for producer-driven settlement. Resolved wraps an already known
// result for uniform handling of fast paths.
//
// A single Future may be awaited by any number of goroutines; all of them
// observe the identical result. This makes the type suitable for in-flight
// request de-duplication: the first caller creates and stores a future,
// concurrent callers attach to the stored one, and the slot is cleared once
// the future settles.
//
// Await is context-aware: cancelling the context detaches the waiter without
// aborting the underlying computation.
package async
