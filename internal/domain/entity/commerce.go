// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsValid reports whether both components are finite and inside the WGS84 ranges.
func (p GeoPoint) IsValid() bool {
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) || math.IsNaN(p.Lng) || math.IsInf(p.Lng, 0) {
		return false
	}

	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Point converts the coordinate to an orb point (lng, lat order).
func (p GeoPoint) Point() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// Commerce is a store listed in the directory.
// Only approved commerces are visible to discovery.
type Commerce struct {
	ID           uuid.UUID `json:"id"`            // The Global Unique Identifier (GUID) for the commerce.
	OwnerID      uuid.UUID `json:"owner_id"`      // The user who created the commerce.
	Name         string    `json:"name"`          // Display name, also used by free-text search.
	Address      string    `json:"address"`       // Human-readable street address.
	Phone        string    `json:"phone"`         // Contact phone.
	OpeningHours string    `json:"opening_hours"` // Free-form operating hours.
	ImageURL     string    `json:"image_url"`     // Reference to the stored image.
	Location     GeoPoint  `json:"location"`      // Geographic point used for ranking.
	Categories   []string  `json:"categories"`    // Category tags, matched by containment.
	IsApproved   bool      `json:"is_approved"`   // Discovery visibility flag.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasCategory reports whether the commerce is tagged with the given category.
func (c *Commerce) HasCategory(category string) bool {
	return slices.Contains(c.Categories, category)
}
