// Package broadcast provides type-safe one-to-many value fan-out with
// subscriber management.
//
// Semantics are fire-and-forget: values are delivered to the subscribers
// that exist at publish time, late subscribers see nothing, and slow
// subscribers are dropped rather than allowed to block the publisher.
//
// Basic usage:
//
//	b := broadcast.NewMemoryBroadcaster[string](10)
//	defer b.Close()
//
//	sub := b.Subscribe(ctx)
//	defer sub.Close()
//
//	b.Publish(ctx, "hello")
//
//	for v := range sub.Receive() {
//		fmt.Println(v)
//	}
//
// Subscriptions are cleaned up automatically when the subscriber's context
// is cancelled, when its buffer overflows, or when the broadcaster closes.
package broadcast
