// Package session resolves cookie sessions from a key-value store.
package session

import (
	"context"
	"sync"
	"time"

	"offerfeed/internal/errors"

	"github.com/redis/go-redis/v9"
)

// errKeyNotFound is returned by kvStore.Get for missing or expired keys.
var errKeyNotFound = errors.New("key not found")

// kvStore is the read side of the session store. The account service owns writes.
type kvStore interface {
	Get(ctx context.Context, key string) (string, error)
}

// redisStore adapts a go-redis client to kvStore.
type redisStore struct {
	client redis.Cmdable
}

func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", errKeyNotFound
	}

	return val, err
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// memoryStore backs runs without Redis. Nothing writes to it in process,
// so every cookie resolves as unknown and requests continue anonymously.
type memoryStore struct {
	mu   sync.Mutex
	data map[string]memoryEntry
	now  func() time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string]memoryEntry), now: time.Now}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.data[key]
	if !ok {
		return "", errKeyNotFound
	}
	if !entry.expiresAt.IsZero() && !s.now().Before(entry.expiresAt) {
		delete(s.data, key)

		return "", errKeyNotFound
	}

	return entry.value, nil
}
