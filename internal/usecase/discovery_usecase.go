package usecase

import (
	"context"

	"offerfeed/internal/domain/entity"
)

// NearbyInput is the validated request for a nearby commerce page.
type NearbyInput struct {
	Center   entity.GeoPoint
	Page     int
	PageSize int
	Category string
}

// DiscoveryUsecase defines distance-ranked discovery of approved commerces.
type DiscoveryUsecase interface {
	// NearbyCommerces returns one page of approved commerces ordered by distance.
	NearbyCommerces(ctx context.Context, input NearbyInput) (*entity.RankedPage[*entity.Commerce], error)

	// NearbyCommercesWithOffers is NearbyCommerces restricted to commerces with an active offer.
	NearbyCommercesWithOffers(ctx context.Context, input NearbyInput) (*entity.RankedPage[*entity.Commerce], error)
}
