package memory

import (
	"context"
	"slices"
	"strings"

	"offerfeed/internal/domain/entity"
	"offerfeed/internal/domain/repository"
)

type rankedOffer struct {
	offer    *entity.Offer
	commerce *entity.Commerce
	distance float64
}

// ListOffers lists active offers of approved commerces with the same predicates as the SQL listing.
func (s *Store) ListOffers(_ context.Context, query repository.OfferQuery) ([]entity.RankedResult[*entity.Offer], error) {
	if query.CommerceIDs != nil && len(query.CommerceIDs) == 0 {
		return []entity.RankedResult[*entity.Offer]{}, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	candidates := make([]rankedOffer, 0, len(s.offers))
	for _, offer := range s.offers {
		if !offer.IsActiveAt(query.Now) {
			continue
		}

		commerce, ok := s.visibleCommerce(offer.CommerceID)
		if !ok || !matchesOffer(offer, commerce, query) {
			continue
		}

		row := rankedOffer{offer: offer, commerce: commerce}
		if query.Center != nil {
			row.distance = distanceKm(*query.Center, commerce.Location)
		}
		candidates = append(candidates, row)
	}

	slices.SortFunc(candidates, offerOrder(query.Center != nil))

	total := int64(len(candidates))
	rows := page(candidates, query.Offset, query.Limit)

	results := make([]entity.RankedResult[*entity.Offer], 0, len(rows))
	for _, row := range rows {
		results = append(results, entity.RankedResult[*entity.Offer]{
			Item:       withCommerceSummary(row.offer, row.commerce),
			DistanceKm: row.distance,
			TotalCount: total,
		})
	}

	return results, nil
}

func matchesOffer(offer *entity.Offer, commerce *entity.Commerce, query repository.OfferQuery) bool {
	filter := query.Filter

	if filter.Category != "" && !commerce.HasCategory(filter.Category) {
		return false
	}

	if filter.HasSearch() {
		titleMatch := strings.Contains(strings.ToLower(offer.Title), strings.ToLower(filter.TitleTerm))
		if !titleMatch && !slices.Contains(filter.MatchedCommerceIDs, offer.CommerceID) {
			return false
		}
	}

	if len(query.CommerceIDs) > 0 && !slices.Contains(query.CommerceIDs, offer.CommerceID) {
		return false
	}

	return true
}

// offerOrder sorts by distance when a center is given, otherwise by recency. Ties break on ID.
func offerOrder(byDistance bool) func(a, b rankedOffer) int {
	return func(a, b rankedOffer) int {
		if byDistance {
			if a.distance < b.distance {
				return -1
			}
			if a.distance > b.distance {
				return 1
			}
		} else if c := b.offer.CreatedAt.Compare(a.offer.CreatedAt); c != 0 {
			return c
		}

		return compareIDs(a.offer.ID, b.offer.ID)
	}
}

func withCommerceSummary(offer *entity.Offer, commerce *entity.Commerce) *entity.Offer {
	result := *offer
	result.Commerce = &entity.CommerceSummary{
		ID:         commerce.ID,
		Name:       commerce.Name,
		Location:   commerce.Location,
		Categories: slices.Clone(commerce.Categories),
	}

	return &result
}
