package document

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/docsignal/signkit/pkg/apiclient"
	"github.com/docsignal/signkit/pkg/broadcast"
)

// Event is the payload-free change signal published on the service's
// created/updated/deleted channels. Subscribers re-read Documents or
// re-fetch as needed; the event only says that something changed.
type Event struct{}

// eventBuffer is the per-subscriber buffer of the change channels.
// Events are coalescing by nature (subscribers re-query the cache), so a
// small buffer is enough.
const eventBuffer = 8

// Service maintains a local mirror of a company's documents and wraps
// one backend call per operation. The cache always reflects the most
// recently fetched page, mutated optimistically by Create, Delete and
// the status-refreshing operations; a failed request never touches it.
//
// The service is the single writer of its cache; any number of readers
// may call Documents concurrently.
type Service struct {
	client *apiclient.Client
	logger *slog.Logger

	mu    sync.RWMutex
	cache []Document

	created *broadcast.MemoryBroadcaster[Event]
	updated *broadcast.MemoryBroadcaster[Event]
	deleted *broadcast.MemoryBroadcaster[Event]
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithServiceLogger sets the logger for the Service.
func WithServiceLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService creates a document service on top of the given API client.
func NewService(client *apiclient.Client, opts ...ServiceOption) *Service {
	s := &Service{
		client:  client,
		logger:  slog.Default(),
		created: broadcast.NewMemoryBroadcaster[Event](eventBuffer),
		updated: broadcast.NewMemoryBroadcaster[Event](eventBuffer),
		deleted: broadcast.NewMemoryBroadcaster[Event](eventBuffer),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close shuts down the event channels. The service must not be used
// afterwards.
func (s *Service) Close() error {
	return errors.Join(s.created.Close(), s.updated.Close(), s.deleted.Close())
}

// Documents returns a snapshot of the current cache.
func (s *Service) Documents() []Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.cache)
}

// Created subscribes to successful create operations.
func (s *Service) Created(ctx context.Context) broadcast.Subscriber[Event] {
	return s.created.Subscribe(ctx)
}

// Updated subscribes to successful update and status-change operations.
func (s *Service) Updated(ctx context.Context) broadcast.Subscriber[Event] {
	return s.updated.Subscribe(ctx)
}

// Deleted subscribes to successful delete operations.
func (s *Service) Deleted(ctx context.Context) broadcast.Subscriber[Event] {
	return s.deleted.Subscribe(ctx)
}

// List fetches one page of documents and replaces the whole cache with
// the page's results. The cache mirrors the latest page, never a union
// of pages. No event is published.
func (s *Service) List(ctx context.Context, companyID int64, page, pageSize int) (*apiclient.Page[Document], error) {
	path := fmt.Sprintf("%s?page=%d&page_size=%d", documentsPath(companyID), page, pageSize)

	var result apiclient.Page[Document]
	if err := s.client.Get(ctx, path, &result); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache = slices.Clone(result.Results)
	s.mu.Unlock()

	return &result, nil
}

// Create creates a document. On success the new document is prepended to
// the cache and a created event is published.
func (s *Service) Create(ctx context.Context, companyID int64, req CreateRequest) (*Document, error) {
	var doc Document
	if err := s.client.Post(ctx, documentsPath(companyID), req, &doc); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache = append([]Document{doc}, s.cache...)
	s.mu.Unlock()

	_ = s.created.Publish(ctx, Event{})
	return &doc, nil
}

// Update partially updates a document and publishes an updated event.
// The cache entry is deliberately not patched: consumers of the updated
// event re-list, and the status monitor corrects cached state on its
// next pass.
func (s *Service) Update(ctx context.Context, companyID, documentID int64, req UpdateRequest) (*Document, error) {
	var doc Document
	if err := s.client.Patch(ctx, documentPath(companyID, documentID), req, &doc); err != nil {
		return nil, err
	}

	_ = s.updated.Publish(ctx, Event{})
	return &doc, nil
}

// Delete removes a document. On success the matching cache entry, if
// any, is dropped and a deleted event is published. Deleting an id that
// is not cached is not an error.
func (s *Service) Delete(ctx context.Context, companyID, documentID int64) error {
	if err := s.client.Delete(ctx, documentPath(companyID, documentID)); err != nil {
		return err
	}

	s.mu.Lock()
	s.cache = slices.DeleteFunc(s.cache, func(d Document) bool { return d.ID == documentID })
	s.mu.Unlock()

	_ = s.deleted.Publish(ctx, Event{})
	return nil
}

// Get fetches a single document without touching the cache.
func (s *Service) Get(ctx context.Context, companyID, documentID int64) (*Document, error) {
	var doc Document
	if err := s.client.Get(ctx, documentPath(companyID, documentID), &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// RefreshStatus asks the backend to re-derive the provider status of a
// document and returns the refreshed document. The cache is untouched;
// see CheckStatus for the cache-merging variant.
func (s *Service) RefreshStatus(ctx context.Context, companyID, documentID int64) (*Document, error) {
	var doc Document
	if err := s.client.Post(ctx, documentPath(companyID, documentID)+"refresh_status/", nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// CheckStatus refreshes a document's status and, when the document is
// present in the cache, replaces the cached entry in place and publishes
// an updated event.
func (s *Service) CheckStatus(ctx context.Context, companyID, documentID int64) (*Document, error) {
	doc, err := s.RefreshStatus(ctx, companyID, documentID)
	if err != nil {
		return nil, err
	}

	if s.replace(*doc) {
		_ = s.updated.Publish(ctx, Event{})
	}
	return doc, nil
}

// AddSigner attaches a new signer to a document and returns the signer
// with its provider-generated signing link.
func (s *Service) AddSigner(ctx context.Context, companyID, documentID int64, signer SignerInput) (*Signer, error) {
	var result Signer
	if err := s.client.Post(ctx, documentPath(companyID, documentID)+"add_signer/", signer, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Cancel cancels a document. The cached entry, if present, is replaced
// with the cancelled document and an updated event is published.
func (s *Service) Cancel(ctx context.Context, companyID, documentID int64) (*Document, error) {
	var doc Document
	if err := s.client.Post(ctx, documentPath(companyID, documentID)+"cancel/", nil, &doc); err != nil {
		return nil, err
	}

	if s.replace(doc) {
		_ = s.updated.Publish(ctx, Event{})
	}
	return &doc, nil
}

// SendToSignature transitions a draft document into the signing flow.
// The cached entry, if present, is replaced and an updated event is
// published.
func (s *Service) SendToSignature(ctx context.Context, companyID, documentID int64) (*Document, error) {
	var doc Document
	if err := s.client.Post(ctx, documentPath(companyID, documentID)+"send_to_signature/", nil, &doc); err != nil {
		return nil, err
	}

	if s.replace(doc) {
		_ = s.updated.Publish(ctx, Event{})
	}
	return &doc, nil
}

// replace swaps the cached entry with the same id, reporting whether an
// entry was found.
func (s *Service) replace(doc Document) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cache {
		if s.cache[i].ID == doc.ID {
			s.cache[i] = doc
			return true
		}
	}
	return false
}

func documentsPath(companyID int64) string {
	return fmt.Sprintf("/companies/%d/documents/", companyID)
}

func documentPath(companyID, documentID int64) string {
	return fmt.Sprintf("/companies/%d/documents/%d/", companyID, documentID)
}
