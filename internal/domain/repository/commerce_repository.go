// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"math"
	"time"

	"offerfeed/internal/domain/entity"
	"offerfeed/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for commerce persistence.
var (
	// ErrCommerceNotFound is returned when a commerce is not found or not visible.
	ErrCommerceNotFound = errors.New("commerce not found")
)

// NearbyQuery describes one distance-ranked page of approved commerces.
type NearbyQuery struct {
	Center   entity.GeoPoint
	Page     int // 1-based.
	PageSize int
	// Category restricts to commerces tagged with it. Empty means no restriction.
	Category string
	// WithActiveOffers restricts to commerces with at least one offer active at Now.
	WithActiveOffers bool
	Now              time.Time
}

// Offset returns the zero-based row offset of the page.
// It saturates at math.MaxInt instead of overflowing for very large pages.
func (q NearbyQuery) Offset() int {
	if q.Page <= 1 || q.PageSize <= 0 {
		return 0
	}
	if q.Page-1 > math.MaxInt/q.PageSize {
		return math.MaxInt
	}

	return (q.Page - 1) * q.PageSize
}

// BeyondAnyRow reports whether the page starts past the last row any store can hold.
func (q NearbyQuery) BeyondAnyRow() bool {
	return q.Offset() == math.MaxInt
}

// CommerceRepository defines the read contract discovery needs from commerce storage.
type CommerceRepository interface {
	// RankNearby returns one page of approved commerces ordered by distance to the center
	// ascending, ties broken by ID ascending. Every row carries the total matching count,
	// computed in the same statement as the page.
	RankNearby(ctx context.Context, query NearbyQuery) ([]entity.RankedResult[*entity.Commerce], error)

	// FindCommerceIDsByName returns the IDs of approved commerces whose name contains
	// the term, case-insensitively.
	FindCommerceIDsByName(ctx context.Context, term string) ([]uuid.UUID, error)

	// FindCommerceByID retrieves an approved commerce by ID.
	// Returns ErrCommerceNotFound when it does not exist or is not approved.
	FindCommerceByID(ctx context.Context, id uuid.UUID) (*entity.Commerce, error)
}
