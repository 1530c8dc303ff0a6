package document

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/docsignal/signkit/pkg/async"
	"github.com/docsignal/signkit/pkg/company"
)

// DefaultCheckInterval is the reconciliation period used when the
// Monitor is not configured otherwise.
const DefaultCheckInterval = 30 * time.Second

// Notifier receives the user-facing notifications the Monitor produces.
// notifications.Center satisfies it.
type Notifier interface {
	Success(ctx context.Context, title, message string) error
}

// CompanySource supplies the company whose documents are being watched.
// company.Loader satisfies it.
type CompanySource interface {
	Cached() (*company.Company, bool)
}

// Monitor periodically reconciles cached document statuses with the
// backend. Signing happens asynchronously on the provider's side, so the
// local cache goes stale without it: each pass re-checks every cached
// document still awaiting signature and lets CheckStatus merge fresher
// state back in. A document that just transitioned to completed produces
// a "document signed" notification.
//
// Per-document check failures are swallowed: one unreachable document
// must not abort its siblings or the loop.
type Monitor struct {
	service   *Service
	companies CompanySource
	notifier  Notifier
	interval  time.Duration
	logger    *slog.Logger
}

// MonitorOption configures a Monitor.
type MonitorOption func(*Monitor)

// WithCheckInterval overrides the reconciliation period.
func WithCheckInterval(interval time.Duration) MonitorOption {
	return func(m *Monitor) {
		if interval > 0 {
			m.interval = interval
		}
	}
}

// WithNotifier sets the sink for completion notifications. Without one
// transitions are merged silently.
func WithNotifier(notifier Notifier) MonitorOption {
	return func(m *Monitor) {
		m.notifier = notifier
	}
}

// WithMonitorLogger sets the logger for the Monitor.
func WithMonitorLogger(logger *slog.Logger) MonitorOption {
	return func(m *Monitor) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewMonitor creates a Monitor over the given service and company
// source. Call Run to start it.
func NewMonitor(service *Service, companies CompanySource, opts ...MonitorOption) *Monitor {
	m := &Monitor{
		service:   service,
		companies: companies,
		interval:  DefaultCheckInterval,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run drives the reconciliation loop until ctx is cancelled, returning
// the context's error. The caller owns the loop's lifetime; there is no
// implicit teardown.
func (m *Monitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.CheckNow(ctx)
		}
	}
}

// CheckNow performs a single reconciliation pass. Checks for individual
// documents fan out concurrently; a slow document does not delay the
// others' results, and the pass issues zero requests when no cached
// document is awaiting signature or no company is loaded yet.
func (m *Monitor) CheckNow(ctx context.Context) {
	current, ok := m.companies.Cached()
	if !ok {
		return
	}

	type check struct {
		prev Status
		fut  *async.Future[*Document]
	}

	var checks []check
	for _, doc := range m.service.Documents() {
		if !doc.Status.AwaitingSignature() {
			continue
		}
		checks = append(checks, check{
			prev: doc.Status,
			fut: async.Async(ctx, doc.ID, func(ctx context.Context, id int64) (*Document, error) {
				return m.service.CheckStatus(ctx, current.ID, id)
			}),
		})
	}

	for _, c := range checks {
		refreshed, err := c.fut.Await(ctx)
		if err != nil {
			// Treated as "no change"; the next pass retries.
			m.logger.LogAttrs(ctx, slog.LevelDebug, "document status check failed",
				slog.String("error", err.Error()),
			)
			continue
		}

		if refreshed.Status != c.prev && refreshed.Status == StatusCompleted && m.notifier != nil {
			msg := fmt.Sprintf("%q was signed by all parties", refreshed.Name)
			if err := m.notifier.Success(ctx, "Document signed", msg); err != nil {
				m.logger.LogAttrs(ctx, slog.LevelDebug, "completion notification failed",
					slog.Int64("document_id", refreshed.ID),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}
