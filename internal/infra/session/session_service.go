package session

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"offerfeed/config"
	"offerfeed/internal/domain/service"
	"offerfeed/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// record is the stored session value.
type record struct {
	UserID    uuid.UUID `json:"user_id"`
	Roles     []string  `json:"roles,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

type sessionService struct {
	store  kvStore
	prefix string
	now    func() time.Time
}

// Params holds dependencies for the session service, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Redis  *redis.Client `optional:"true"`
}

// NewSessionService returns a Redis-backed session service, or an in-process one when Redis is absent.
func NewSessionService(params Params) service.SessionService {
	var store kvStore
	if params.Redis != nil {
		store = &redisStore{client: params.Redis}
	} else {
		store = newMemoryStore()
	}

	return newSessionService(store, params.Config.Session)
}

func newSessionService(store kvStore, cfg *config.SessionConfig) *sessionService {
	return &sessionService{
		store:  store,
		prefix: cfg.KeyPrefix,
		now:    time.Now,
	}
}

func (s *sessionService) key(sessionID string) string {
	return s.prefix + sessionID
}

// ValidateSession loads the session and rejects expired or malformed entries.
func (s *sessionService) ValidateSession(ctx context.Context, sessionID string) (*service.Session, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, service.ErrSessionNotFound
	}

	payload, err := s.store.Get(ctx, s.key(sessionID))
	if err != nil {
		if errors.Is(err, errKeyNotFound) {
			return nil, service.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	var rec record
	if err := json.Unmarshal([]byte(payload), &rec); err != nil || rec.UserID == uuid.Nil {
		return nil, errors.Wrap(service.ErrSessionNotFound, "malformed session")
	}

	if !s.now().Before(rec.ExpiresAt) {
		return nil, service.ErrSessionNotFound
	}

	return &service.Session{
		ID:        sessionID,
		UserID:    rec.UserID,
		Roles:     rec.Roles,
		ExpiresAt: rec.ExpiresAt,
	}, nil
}
