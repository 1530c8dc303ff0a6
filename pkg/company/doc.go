// Package company resolves and caches the session's active company.
//
// Every document operation is scoped by a company id, but the company
// itself is fetched only once per session. Loader implements that shared
// resource: lazy fetch, in-flight request de-duplication via a shared
// future slot, and safe retry after failure.
//
//	loader := company.NewLoader(client)
//
//	// Concurrent callers share one GET /companies/ request.
//	current, _ := loader.EnsureLoaded(ctx).Await(ctx)
//	if current == nil {
//		// not provisioned or backend unavailable
//	}
//
// Load bypasses the cache (fresh login), Invalidate clears it (logout),
// and Cached gives a synchronous, side-effect-free read.
package company
