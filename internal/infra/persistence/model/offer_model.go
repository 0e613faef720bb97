package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OfferModel is the GORM-specific struct for the 'offers' table.
// An offer is active while starts_at <= now <= ends_at.
type OfferModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CommerceID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	ImageURL     string    `gorm:"type:text"`
	StartsAt     time.Time `gorm:"not null"`
	EndsAt       time.Time `gorm:"not null"`
	RequiredTier string    `gorm:"type:varchar(50)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}
