package memory

import (
	"context"
	"slices"

	"offerfeed/internal/domain/entity"
	domainerrors "offerfeed/internal/domain/errors"
	"offerfeed/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateFollow stores the edge, reporting ErrDuplicateFollow when it already exists.
func (s *Store) CreateFollow(_ context.Context, follow *entity.Follow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.commerces[follow.CommerceID]; !ok {
		return domainerrors.ErrCommerceNotFound.WrapMessage("invalid commerce reference")
	}

	key := followKey{userID: follow.UserID, commerceID: follow.CommerceID}
	if _, exists := s.follows[key]; exists {
		return repository.ErrDuplicateFollow
	}

	if follow.ID == uuid.Nil {
		follow.ID = uuid.New()
	}
	if follow.CreatedAt.IsZero() {
		follow.CreatedAt = s.now()
	}

	stored := *follow
	s.follows[key] = &stored

	return nil
}

// FindFollow retrieves the edge for a user and commerce.
func (s *Store) FindFollow(_ context.Context, userID, commerceID uuid.UUID) (*entity.Follow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	follow, ok := s.follows[followKey{userID: userID, commerceID: commerceID}]
	if !ok {
		return nil, repository.ErrFollowNotFound
	}

	found := *follow

	return &found, nil
}

// DeleteFollow removes the edge.
func (s *Store) DeleteFollow(_ context.Context, userID, commerceID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := followKey{userID: userID, commerceID: commerceID}
	if _, ok := s.follows[key]; !ok {
		return repository.ErrFollowNotFound
	}

	delete(s.follows, key)

	return nil
}

// FindFollowedCommerceIDs lists followed commerce IDs, most recent first.
func (s *Store) FindFollowedCommerceIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	follows := make([]*entity.Follow, 0)
	for key, follow := range s.follows {
		if key.userID == userID {
			follows = append(follows, follow)
		}
	}

	slices.SortFunc(follows, func(a, b *entity.Follow) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return compareIDs(a.CommerceID, b.CommerceID)
	})

	ids := make([]uuid.UUID, 0, len(follows))
	for _, follow := range follows {
		ids = append(ids, follow.CommerceID)
	}

	return ids, nil
}
