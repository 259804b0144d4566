package history

import (
	"context"
	"fmt"

	go_json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

var _ Store = (*RedisStore)(nil)

const DefaultRedisKey = "cogdash:history"

// RedisStore keeps entries as JSON in a capped list, newest at the tail.
type RedisStore struct {
	client   *redis.Client
	key      string
	capacity int
}

func NewRedisStore(client *redis.Client, key string, capacity int) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &RedisStore{client: client, key: key, capacity: capacity}
}

func (r *RedisStore) Append(ctx context.Context, e Entry) error {
	data, err := go_json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshaling history entry: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, r.key, data)
		pipe.LTrim(ctx, r.key, int64(-r.capacity), -1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("appending history entry: %w", err)
	}
	return nil
}

func (r *RedisStore) Recent(ctx context.Context, limit int) ([]Entry, error) {
	start := int64(0)
	if limit > 0 {
		start = int64(-limit)
	}

	raw, err := r.client.LRange(ctx, r.key, start, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	out := make([]Entry, 0, len(raw))
	for _, item := range raw {
		var e Entry
		if err := go_json.Unmarshal([]byte(item), &e); err != nil {
			return nil, fmt.Errorf("decoding history entry: %w", err)
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
