package notifications

import (
	"context"
	"sync"
)

// defaultMemoryCapacity bounds the in-memory store; the oldest
// notifications are evicted first. Toasts are ephemeral, so a small
// ring is plenty.
const defaultMemoryCapacity = 100

// MemoryStorage is the default in-process Storage implementation.
type MemoryStorage struct {
	mu       sync.RWMutex
	items    []Notification // oldest first
	capacity int
}

// NewMemoryStorage creates an in-memory storage with the default
// capacity.
func NewMemoryStorage() *MemoryStorage {
	return NewMemoryStorageWithCapacity(defaultMemoryCapacity)
}

// NewMemoryStorageWithCapacity creates an in-memory storage keeping at
// most capacity notifications.
func NewMemoryStorageWithCapacity(capacity int) *MemoryStorage {
	if capacity <= 0 {
		capacity = defaultMemoryCapacity
	}
	return &MemoryStorage{capacity: capacity}
}

func (s *MemoryStorage) Create(ctx context.Context, notif Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, notif)
	if len(s.items) > s.capacity {
		s.items = s.items[len(s.items)-s.capacity:]
	}
	return nil
}

func (s *MemoryStorage) List(ctx context.Context, opts ListOptions) ([]Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Notification, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		notif := s.items[i]
		if opts.OnlyUnread && notif.Read {
			continue
		}
		result = append(result, notif)
		if opts.Limit > 0 && len(result) == opts.Limit {
			break
		}
	}
	return result, nil
}

func (s *MemoryStorage) MarkRead(ctx context.Context, ids ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		for i := range s.items {
			if s.items[i].ID == id {
				s.items[i].Read = true
				break
			}
		}
	}
	return nil
}

func (s *MemoryStorage) CountUnread(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for i := range s.items {
		if !s.items[i].Read {
			count++
		}
	}
	return count, nil
}
