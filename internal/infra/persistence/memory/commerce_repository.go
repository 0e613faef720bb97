package memory

import (
	"context"
	"slices"
	"strings"

	"offerfeed/internal/domain/entity"
	"offerfeed/internal/domain/repository"

	"github.com/google/uuid"
)

type rankedCommerce struct {
	commerce *entity.Commerce
	distance float64
}

// RankNearby ranks approved commerces by distance to the center, ties broken by ID.
func (s *Store) RankNearby(_ context.Context, query repository.NearbyQuery) ([]entity.RankedResult[*entity.Commerce], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	candidates := make([]rankedCommerce, 0, len(s.commerces))
	for _, commerce := range s.commerces {
		if !commerce.IsApproved {
			continue
		}
		if query.Category != "" && !commerce.HasCategory(query.Category) {
			continue
		}
		if query.WithActiveOffers && !s.hasActiveOffer(commerce.ID, query) {
			continue
		}

		candidates = append(candidates, rankedCommerce{
			commerce: commerce,
			distance: distanceKm(query.Center, commerce.Location),
		})
	}

	slices.SortFunc(candidates, func(a, b rankedCommerce) int {
		if a.distance < b.distance {
			return -1
		}
		if a.distance > b.distance {
			return 1
		}

		return compareIDs(a.commerce.ID, b.commerce.ID)
	})

	total := int64(len(candidates))
	rows := page(candidates, query.Offset(), query.PageSize)

	results := make([]entity.RankedResult[*entity.Commerce], 0, len(rows))
	for _, row := range rows {
		results = append(results, entity.RankedResult[*entity.Commerce]{
			Item:       cloneCommerce(row.commerce),
			DistanceKm: row.distance,
			TotalCount: total,
		})
	}

	return results, nil
}

func (s *Store) hasActiveOffer(commerceID uuid.UUID, query repository.NearbyQuery) bool {
	for _, offer := range s.offers {
		if offer.CommerceID == commerceID && offer.IsActiveAt(query.Now) {
			return true
		}
	}

	return false
}

// FindCommerceIDsByName matches approved commerce names case-insensitively.
func (s *Store) FindCommerceIDsByName(_ context.Context, term string) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(term)
	ids := make([]uuid.UUID, 0)
	for _, commerce := range s.commerces {
		if commerce.IsApproved && strings.Contains(strings.ToLower(commerce.Name), needle) {
			ids = append(ids, commerce.ID)
		}
	}

	slices.SortFunc(ids, compareIDs)

	return ids, nil
}

// FindCommerceByID retrieves an approved commerce by its unique ID.
func (s *Store) FindCommerceByID(_ context.Context, id uuid.UUID) (*entity.Commerce, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	commerce, ok := s.visibleCommerce(id)
	if !ok {
		return nil, repository.ErrCommerceNotFound
	}

	return cloneCommerce(commerce), nil
}
