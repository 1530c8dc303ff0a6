package company

import (
	"context"
	"log/slog"
	"sync"

	"github.com/docsignal/signkit/pkg/apiclient"
	"github.com/docsignal/signkit/pkg/async"
)

// Loader provides the session's active company, fetched lazily from the
// backend at most once under concurrency. The first company the backend
// returns is the active one.
//
// Concurrency contract: any number of EnsureLoaded callers racing an
// in-flight fetch share a single network request and observe the
// identical outcome. The in-flight slot is cleared when the fetch
// settles, so a failed fetch is retried by the next caller.
type Loader struct {
	client *apiclient.Client
	logger *slog.Logger

	mu       sync.Mutex
	current  *Company
	inflight *async.Future[*Company]
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used for swallowed load failures.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a Loader on top of the given API client.
func NewLoader(client *apiclient.Client, opts ...Option) *Loader {
	l := &Loader{
		client: client,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Cached returns the company loaded by a previous fetch, if any.
// It never blocks and has no side effects.
func (l *Loader) Cached() (*Company, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current, l.current != nil
}

// EnsureLoaded returns a future for the active company.
//
// If the company is already cached the future is resolved immediately.
// If a fetch is in flight the caller attaches to it; no second request
// is issued. Otherwise a fetch is started. Fetch failures of any kind
// (transport error, HTTP error, empty company list) settle the future
// with a nil company and a nil error: at this layer failure is
// normalized to absence, and deciding how to react belongs to the
// caller. Use Load to observe the concrete error.
func (l *Loader) EnsureLoaded(ctx context.Context) *async.Future[*Company] {
	l.mu.Lock()
	if l.current != nil {
		current := l.current
		l.mu.Unlock()
		return async.Resolved(current, nil)
	}
	if l.inflight != nil {
		inflight := l.inflight
		l.mu.Unlock()
		return inflight
	}

	future, complete := async.NewFuture[*Company]()
	l.inflight = future
	l.mu.Unlock()

	go func() {
		company, err := l.fetch(ctx)

		l.mu.Lock()
		if err == nil {
			l.current = company
		}
		if l.inflight == future {
			l.inflight = nil
		}
		l.mu.Unlock()

		if err != nil {
			l.logger.LogAttrs(ctx, slog.LevelWarn, "company load failed",
				slog.String("error", err.Error()),
			)
			complete(nil, nil)
			return
		}
		complete(company, nil)
	}()

	return future
}

// Load fetches the active company unconditionally, bypassing the cache.
// On success the cache is replaced and any in-flight EnsureLoaded marker
// is cleared. On failure the cache is left untouched and the error is
// returned: ErrNoCompanyFound for an empty result set, the transport or
// API error otherwise.
func (l *Loader) Load(ctx context.Context) (*Company, error) {
	company, err := l.fetch(ctx)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.current = company
	l.inflight = nil
	l.mu.Unlock()

	return company, nil
}

// Invalidate drops the cached company. The next EnsureLoaded or Load
// fetches again. Hosts call this on logout.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	l.current = nil
	l.mu.Unlock()
}

func (l *Loader) fetch(ctx context.Context) (*Company, error) {
	var page apiclient.Page[Company]
	if err := l.client.Get(ctx, "/companies/", &page); err != nil {
		return nil, err
	}
	if len(page.Results) == 0 {
		return nil, ErrNoCompanyFound
	}
	return &page.Results[0], nil
}
