// Package memory is an in-process implementation of the persistence layer.
// It ranks with the same ordering and filters as the PostgreSQL repositories.
package memory

import (
	"bytes"
	"slices"
	"sync"
	"time"

	"offerfeed/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geo"
)

type followKey struct {
	userID     uuid.UUID
	commerceID uuid.UUID
}

// Store keeps commerces, offers and follows in memory.
type Store struct {
	mu        sync.RWMutex
	txMu      sync.Mutex
	commerces map[uuid.UUID]*entity.Commerce
	offers    map[uuid.UUID]*entity.Offer
	follows   map[followKey]*entity.Follow
	now       func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		commerces: make(map[uuid.UUID]*entity.Commerce),
		offers:    make(map[uuid.UUID]*entity.Offer),
		follows:   make(map[followKey]*entity.Follow),
		now:       time.Now,
	}
}

// AddCommerce inserts or replaces a commerce.
func (s *Store) AddCommerce(commerce *entity.Commerce) {
	stored := cloneCommerce(commerce)
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
		commerce.ID = stored.ID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.commerces[stored.ID] = stored
}

// AddOffer inserts or replaces an offer. The commerce summary is derived at read time.
func (s *Store) AddOffer(offer *entity.Offer) {
	stored := *offer
	stored.Commerce = nil
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
		offer.ID = stored.ID
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = s.now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.offers[stored.ID] = &stored
}

// visibleCommerce returns the commerce when discovery may show it. Callers hold the read lock.
func (s *Store) visibleCommerce(id uuid.UUID) (*entity.Commerce, bool) {
	commerce, ok := s.commerces[id]
	if !ok || !commerce.IsApproved {
		return nil, false
	}

	return commerce, true
}

// distanceKm is the great-circle distance between two points in kilometers.
func distanceKm(a, b entity.GeoPoint) float64 {
	return geo.DistanceHaversine(a.Point(), b.Point()) / 1000
}

// compareIDs orders UUIDs bytewise, matching PostgreSQL's uuid ordering.
func compareIDs(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

// page slices a sorted result set by offset and limit.
func page[T any](rows []T, offset, limit int) []T {
	if offset < 0 || offset >= len(rows) || limit <= 0 {
		return rows[:0]
	}

	end := offset + min(limit, len(rows)-offset)

	return rows[offset:end]
}

func cloneCommerce(commerce *entity.Commerce) *entity.Commerce {
	cloned := *commerce
	cloned.Categories = slices.Clone(commerce.Categories)
	if cloned.Categories == nil {
		cloned.Categories = []string{}
	}

	return &cloned
}
