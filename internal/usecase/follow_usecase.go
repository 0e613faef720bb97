package usecase

import (
	"context"

	"github.com/google/uuid"
)

// FollowResult describes the outcome of a follow request.
type FollowResult struct {
	CommerceID       uuid.UUID
	AlreadyFollowing bool
}

// FollowUsecase defines follow edge management between users and commerces.
type FollowUsecase interface {
	// Follow creates the edge if absent. Following twice succeeds both times and leaves one edge.
	Follow(ctx context.Context, userID, commerceID uuid.UUID) (*FollowResult, error)

	// Unfollow removes the edge. Removing a missing edge is not an error.
	Unfollow(ctx context.Context, userID, commerceID uuid.UUID) error

	// ListFollowed returns the IDs of the commerces the user follows.
	ListFollowed(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// GenerateFollowQR returns a PNG QR code that follows the commerce when scanned.
	GenerateFollowQR(ctx context.Context, commerceID uuid.UUID) ([]byte, error)

	// FollowByQR follows the commerce encoded in scanned QR data.
	FollowByQR(ctx context.Context, userID uuid.UUID, qrData string) (*FollowResult, error)
}
