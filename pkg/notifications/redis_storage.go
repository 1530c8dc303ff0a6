package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisHashKey  = "signkit:notifications"
	redisIndexKey = "signkit:notifications:index"

	// defaultRedisTTL expires the whole notification set; toasts older
	// than a day are noise.
	defaultRedisTTL = 24 * time.Hour
)

// RedisStorage persists notifications in Redis so they survive client
// reloads. Notifications live in a hash keyed by id with a sorted-set
// index ordered by creation time; both keys share a TTL refreshed on
// every write.
type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisStorageOption configures a RedisStorage.
type RedisStorageOption func(*RedisStorage)

// WithTTL overrides the retention period.
func WithTTL(ttl time.Duration) RedisStorageOption {
	return func(s *RedisStorage) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// NewRedisStorage creates a Redis-backed storage on top of an existing
// client connection.
func NewRedisStorage(client *redis.Client, opts ...RedisStorageOption) *RedisStorage {
	s := &RedisStorage{client: client, ttl: defaultRedisTTL}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStorage) Create(ctx context.Context, notif Notification) error {
	payload, err := json.Marshal(notif)
	if err != nil {
		return fmt.Errorf("notifications: marshal notification: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, redisHashKey, notif.ID, payload)
	pipe.ZAdd(ctx, redisIndexKey, redis.Z{
		Score:  float64(notif.CreatedAt.UnixNano()),
		Member: notif.ID,
	})
	pipe.Expire(ctx, redisHashKey, s.ttl)
	pipe.Expire(ctx, redisIndexKey, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("notifications: store notification: %w", err)
	}
	return nil
}

func (s *RedisStorage) List(ctx context.Context, opts ListOptions) ([]Notification, error) {
	ids, err := s.client.ZRevRange(ctx, redisIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("notifications: read index: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	values, err := s.client.HMGet(ctx, redisHashKey, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("notifications: read notifications: %w", err)
	}

	result := make([]Notification, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue // index entry without a hash record
		}
		var notif Notification
		if err := json.Unmarshal([]byte(raw), &notif); err != nil {
			continue
		}
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

func (s *RedisStorage) MarkRead(ctx context.Context, ids ...string) error {
	for _, id := range ids {
		raw, err := s.client.HGet(ctx, redisHashKey, id).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return fmt.Errorf("notifications: read notification %s: %w", id, err)
		}

		var notif Notification
		if err := json.Unmarshal([]byte(raw), &notif); err != nil {
			continue
		}
		notif.Read = true

		payload, err := json.Marshal(notif)
		if err != nil {
			return fmt.Errorf("notifications: marshal notification %s: %w", id, err)
		}
		if err := s.client.HSet(ctx, redisHashKey, id, payload).Err(); err != nil {
			return fmt.Errorf("notifications: update notification %s: %w", id, err)
		}
	}
	return nil
}

func (s *RedisStorage) CountUnread(ctx context.Context) (int, error) {
	all, err := s.List(ctx, ListOptions{OnlyUnread: true})
	if err != nil {
		return 0, err
	}
	return len(all), nil
}
