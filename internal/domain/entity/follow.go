package entity

import (
	"time"

	"github.com/google/uuid"
)

// Follow links a user to a commerce they want offers from.
// There is at most one follow per (UserID, CommerceID).
type Follow struct {
	ID                   uuid.UUID `json:"id"`
	UserID               uuid.UUID `json:"user_id"`
	CommerceID           uuid.UUID `json:"commerce_id"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	CreatedAt            time.Time `json:"created_at"`
}
