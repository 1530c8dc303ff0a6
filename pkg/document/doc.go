// Package document manages a company's signable documents: a locally
// cached mirror of the backend's document list, one method per backend
// operation, change events, and a reconciliation loop that keeps
// asynchronously-signed documents' statuses fresh.
//
// # Cache semantics
//
// Service keeps an ordered in-memory cache mirroring the most recently
// listed page. Mutations apply optimistically on the success path only:
// Create prepends, Delete removes by id, Cancel/SendToSignature/
// CheckStatus replace the entry in place, and a failed request never
// modifies the cache. List replaces the cache wholesale. Update is the
// deliberate exception and does not patch the cache (see Update's doc
// comment).
//
// Change signals are delivered over three payload-free broadcast
// channels (created, updated, deleted) with fire-and-forget semantics;
// subscribers re-query Documents when an event arrives.
//
// # Reconciliation
//
// Monitor re-checks every cached document still awaiting signature on a
// fixed interval, fanning the per-document checks out concurrently and
// surfacing "document signed" notifications when a document completes:
//
//	monitor := document.NewMonitor(service, companyLoader,
//		document.WithCheckInterval(cfg.PollInterval),
//		document.WithNotifier(center),
//	)
//	go monitor.Run(ctx)
//
// Ordering across operations is last-write-wins: if List races Create,
// whichever response lands last determines the cache content. Callers
// needing stricter ordering serialize their calls.
package document
