package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docsignal/signkit/pkg/broadcast"
)

// subscriberBuffer is the per-subscriber buffer of the live stream.
const subscriberBuffer = 16

// Center stores notifications and streams them live to subscribers.
// Storage happens first, so a notification survives even when no one is
// listening; delivery over the broadcast channel is best effort.
type Center struct {
	storage     Storage
	broadcaster *broadcast.MemoryBroadcaster[Notification]
	logger      *slog.Logger
}

// CenterOption configures a Center.
type CenterOption func(*Center)

// WithCenterLogger sets the logger for the Center.
func WithCenterLogger(logger *slog.Logger) CenterOption {
	return func(c *Center) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCenter creates a notification center. A nil storage falls back to
// the in-memory implementation.
func NewCenter(storage Storage, opts ...CenterOption) *Center {
	if storage == nil {
		storage = NewMemoryStorage()
	}

	c := &Center{
		storage:     storage,
		broadcaster: broadcast.NewMemoryBroadcaster[Notification](subscriberBuffer),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close shuts down the live stream. Stored notifications remain
// readable through the storage.
func (c *Center) Close() error {
	return c.broadcaster.Close()
}

// Subscribe attaches to the live notification stream. Only
// notifications sent after this call are received.
func (c *Center) Subscribe(ctx context.Context) broadcast.Subscriber[Notification] {
	return c.broadcaster.Subscribe(ctx)
}

// Send stores the notification and publishes it to live subscribers.
// A missing id and creation time are filled in.
func (c *Center) Send(ctx context.Context, notif Notification) error {
	if notif.ID == "" {
		notif.ID = uuid.New().String()
	}
	if notif.CreatedAt.IsZero() {
		notif.CreatedAt = time.Now()
	}

	if err := c.storage.Create(ctx, notif); err != nil {
		return fmt.Errorf("notifications: store failed: %w", err)
	}

	if err := c.broadcaster.Publish(ctx, notif); err != nil {
		// Stored successfully; a delivery hiccup is not the caller's
		// problem.
		c.logger.LogAttrs(ctx, slog.LevelWarn, "notification delivery failed",
			slog.String("notification_id", notif.ID),
			slog.String("error", err.Error()),
		)
	}
	return nil
}

// Success sends a success notification.
func (c *Center) Success(ctx context.Context, title, message string) error {
	return c.Send(ctx, Notification{Type: TypeSuccess, Title: title, Message: message})
}

// Error sends an error notification.
func (c *Center) Error(ctx context.Context, title, message string) error {
	return c.Send(ctx, Notification{Type: TypeError, Title: title, Message: message})
}

// Info sends an informational notification.
func (c *Center) Info(ctx context.Context, title, message string) error {
	return c.Send(ctx, Notification{Type: TypeInfo, Title: title, Message: message})
}

// List returns stored notifications, most recent first.
func (c *Center) List(ctx context.Context, opts ListOptions) ([]Notification, error) {
	return c.storage.List(ctx, opts)
}

// MarkRead marks notifications as read.
func (c *Center) MarkRead(ctx context.Context, ids ...string) error {
	return c.storage.MarkRead(ctx, ids...)
}

// CountUnread returns the unread notification count.
func (c *Center) CountUnread(ctx context.Context) (int, error) {
	return c.storage.CountUnread(ctx)
}
