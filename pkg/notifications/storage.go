package notifications

import "context"

// Storage persists notifications for the current session so a host can
// re-render them after a reload. Implementations must be safe for
// concurrent use.
type Storage interface {
	// Create stores a new notification.
	Create(ctx context.Context, notif Notification) error

	// List returns notifications, most recent first.
	List(ctx context.Context, opts ListOptions) ([]Notification, error)

	// MarkRead marks the given notifications as read. Unknown ids are
	// ignored.
	MarkRead(ctx context.Context, ids ...string) error

	// CountUnread returns the number of unread notifications.
	CountUnread(ctx context.Context) (int, error)
}

// ListOptions filters a List call.
type ListOptions struct {
	Limit      int  // maximum number to return (0 = no limit)
	OnlyUnread bool // when true, only unread notifications
}
