package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const replayTTL = 24 * time.Hour

// ReplayStore maps idempotency keys to the id of the record they created,
// backed by Redis. Key format: idem:<key>. Entries expire after replayTTL;
// an expired entry simply allows the create to run again.
type ReplayStore struct {
	client *redis.Client
}

// NewReplayStore creates a ReplayStore wrapping the given Redis client.
func NewReplayStore(client *redis.Client) *ReplayStore {
	return &ReplayStore{client: client}
}

// Lookup returns the record id previously remembered for key, if any.
func (s *ReplayStore) Lookup(ctx context.Context, key string) (string, bool, error) {
	id, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("replay lookup: %w", err)
	}
	return id, true, nil
}

// Remember records that key produced the record with the given id.
func (s *ReplayStore) Remember(ctx context.Context, key, id string) error {
	return s.client.Set(ctx, s.key(key), id, replayTTL).Err()
}

func (s *ReplayStore) key(key string) string {
	return "idem:" + key
}
