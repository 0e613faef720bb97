package repository

import (
	"context"

	"offerfeed/internal/domain/entity"
	"offerfeed/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for follow persistence.
var (
	// ErrFollowNotFound is returned when a follow edge does not exist.
	ErrFollowNotFound = errors.New("follow not found")
	// ErrDuplicateFollow is returned when the (user, commerce) edge already exists.
	ErrDuplicateFollow = errors.New("follow already exists")
)

// FollowRepository defines the interface for follow edges between users and commerces.
type FollowRepository interface {
	// CreateFollow persists a new follow edge. Returns ErrDuplicateFollow on a unique violation.
	CreateFollow(ctx context.Context, follow *entity.Follow) error

	// FindFollow retrieves the edge for a user and commerce.
	FindFollow(ctx context.Context, userID, commerceID uuid.UUID) (*entity.Follow, error)

	// DeleteFollow removes the edge for a user and commerce.
	// Returns ErrFollowNotFound when there was nothing to remove.
	DeleteFollow(ctx context.Context, userID, commerceID uuid.UUID) error

	// FindFollowedCommerceIDs returns the IDs of all commerces the user follows.
	FindFollowedCommerceIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
