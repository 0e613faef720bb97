package repository

import (
	"context"
	"time"

	"offerfeed/internal/domain/entity"

	"github.com/google/uuid"
)

// OfferFilter is the refined predicate built from category and search input.
// Its zero value filters nothing.
type OfferFilter struct {
	// Category restricts to offers whose commerce is tagged with it.
	Category string
	// TitleTerm matches offer titles containing it, case-insensitively.
	TitleTerm string
	// MatchedCommerceIDs widens the title match: an offer also matches when its
	// commerce is in this set. Only meaningful together with TitleTerm.
	MatchedCommerceIDs []uuid.UUID
}

// HasSearch reports whether the filter carries a search predicate.
func (f OfferFilter) HasSearch() bool {
	return f.TitleTerm != ""
}

// OfferQuery describes one page of active offers joined to their approved commerce.
type OfferQuery struct {
	Filter OfferFilter
	// Center, when set, ranks offers by their commerce distance; otherwise by recency.
	Center *entity.GeoPoint
	// CommerceIDs, when non-nil, restricts to offers of these commerces.
	CommerceIDs []uuid.UUID
	Limit       int
	Offset      int
	Now         time.Time
}

// OfferRepository defines the read contract the feed needs from offer storage.
type OfferRepository interface {
	// ListOffers returns offers active at query.Now whose commerce is approved, filtered
	// by query.Filter. With a center the order is distance ascending then offer ID
	// ascending; without it, creation time descending then offer ID ascending. DistanceKm
	// is zero when no center is given. Every row carries the total matching count.
	ListOffers(ctx context.Context, query OfferQuery) ([]entity.RankedResult[*entity.Offer], error)
}
