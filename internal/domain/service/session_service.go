package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Session is the server-side state behind a session cookie.
type Session struct {
	ID        string
	UserID    uuid.UUID
	Roles     []string
	ExpiresAt time.Time
}

// SessionService resolves session cookies to the user that owns them.
// Sessions are written and revoked by the account service.
type SessionService interface {
	// ValidateSession returns the live session for the cookie value.
	// Returns ErrSessionNotFound when it is unknown or expired.
	ValidateSession(ctx context.Context, sessionID string) (*Session, error)
}
