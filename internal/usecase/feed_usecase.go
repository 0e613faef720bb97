package usecase

import (
	"context"

	"offerfeed/internal/domain/entity"
)

// FeedInput is the request for a composed offer feed.
type FeedInput struct {
	Category string
	Search   string
	Center   *entity.GeoPoint
	Limit    int
	Offset   int
}

// FeedUsecase composes the general and subscribed offer lists for a principal.
type FeedUsecase interface {
	// Compose returns the general list, the subscribed list and offset meta for the general list.
	// A failed general query returns ErrUpstreamQuery; a failed subscribed branch degrades to an
	// empty list.
	Compose(ctx context.Context, principal *entity.Principal, input FeedInput) (*entity.Feed, error)
}
