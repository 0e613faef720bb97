package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"offerfeed/config"
	"offerfeed/internal/domain/service"
	"offerfeed/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrefix = "test:session:"

type failingStore struct {
	err error
}

func (f *failingStore) Get(context.Context, string) (string, error) { return "", f.err }

// put stands in for the account service writing a session.
func (s *memoryStore) put(key, value string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = memoryEntry{value: value, expiresAt: s.now().Add(ttl)}
}

func sessionPayload(t *testing.T, userID uuid.UUID, roles []string, expiresAt time.Time) string {
	t.Helper()

	payload, err := json.Marshal(record{UserID: userID, Roles: roles, ExpiresAt: expiresAt})
	require.NoError(t, err)

	return string(payload)
}

func newTestSessionService() (*sessionService, *memoryStore) {
	store := newMemoryStore()
	svc := newSessionService(store, &config.SessionConfig{KeyPrefix: testPrefix})

	return svc, store
}

func TestSessionService_Validate(t *testing.T) {
	svc, store := newTestSessionService()
	userID := uuid.New()
	store.put(testPrefix+"abc", sessionPayload(t, userID, []string{"user"}, time.Now().Add(time.Hour)), time.Hour)

	got, err := svc.ValidateSession(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", got.ID)
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, []string{"user"}, got.Roles)
}

func TestSessionService_UnknownSession(t *testing.T) {
	svc, _ := newTestSessionService()

	_, err := svc.ValidateSession(context.Background(), "nope")
	assert.True(t, errors.Is(err, service.ErrSessionNotFound))

	_, err = svc.ValidateSession(context.Background(), "  ")
	assert.True(t, errors.Is(err, service.ErrSessionNotFound))
}

func TestSessionService_ExpiredRecord(t *testing.T) {
	svc, store := newTestSessionService()
	store.put(testPrefix+"old", sessionPayload(t, uuid.New(), nil, time.Now().Add(time.Hour)), 3*time.Hour)

	later := time.Now().Add(2 * time.Hour)
	svc.now = func() time.Time { return later }

	_, err := svc.ValidateSession(context.Background(), "old")
	assert.True(t, errors.Is(err, service.ErrSessionNotFound))
}

func TestSessionService_ExpiredKey(t *testing.T) {
	svc, store := newTestSessionService()
	store.put(testPrefix+"gone", sessionPayload(t, uuid.New(), nil, time.Now().Add(24*time.Hour)), time.Minute)

	later := time.Now().Add(time.Hour)
	store.now = func() time.Time { return later }

	_, err := svc.ValidateSession(context.Background(), "gone")
	assert.True(t, errors.Is(err, service.ErrSessionNotFound))
}

func TestSessionService_MalformedSession(t *testing.T) {
	svc, store := newTestSessionService()
	store.put(testPrefix+"bad", "not-json", time.Hour)
	store.put(testPrefix+"nil-user", sessionPayload(t, uuid.Nil, nil, time.Now().Add(time.Hour)), time.Hour)

	_, err := svc.ValidateSession(context.Background(), "bad")
	assert.True(t, errors.Is(err, service.ErrSessionNotFound))

	_, err = svc.ValidateSession(context.Background(), "nil-user")
	assert.True(t, errors.Is(err, service.ErrSessionNotFound))
}

func TestSessionService_StoreFailureIsNotNotFound(t *testing.T) {
	svc := newSessionService(&failingStore{err: errors.New("connection refused")}, &config.SessionConfig{})

	_, err := svc.ValidateSession(context.Background(), "abc")
	require.Error(t, err)
	assert.False(t, errors.Is(err, service.ErrSessionNotFound))
}
