package model

import (
	"time"

	"github.com/google/uuid"
)

// FollowModel is the GORM-specific struct for the 'follows' table.
// Edges are hard-deleted so the (user_id, commerce_id) unique index stays meaningful.
type FollowModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID               uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follows_user_commerce"`
	CommerceID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follows_user_commerce;index"`
	NotificationsEnabled bool      `gorm:"not null"` // Column default is true; set explicitly so false survives the insert.
	CreatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (FollowModel) TableName() string {
	return "follows"
}
