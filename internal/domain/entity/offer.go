package entity

import (
	"time"

	"github.com/google/uuid"
)

// CommerceSummary is the slice of a commerce joined into offer rows.
type CommerceSummary struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Location   GeoPoint  `json:"location"`
	Categories []string  `json:"categories"`
}

// Offer is a time-boxed promotion owned by exactly one commerce.
type Offer struct {
	ID           uuid.UUID        `json:"id"`
	CommerceID   uuid.UUID        `json:"commerce_id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	ImageURL     string           `json:"image_url"`
	StartsAt     time.Time        `json:"starts_at"`
	EndsAt       time.Time        `json:"ends_at"`
	RequiredTier string           `json:"required_tier"` // Minimum membership tier able to redeem.
	CreatedAt    time.Time        `json:"created_at"`
	Commerce     *CommerceSummary `json:"commerce,omitempty"`
}

// IsActiveAt reports whether now falls inside [StartsAt, EndsAt].
func (o *Offer) IsActiveAt(now time.Time) bool {
	return !now.Before(o.StartsAt) && !now.After(o.EndsAt)
}
