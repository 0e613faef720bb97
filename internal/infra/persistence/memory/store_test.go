package memory

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"offerfeed/internal/domain/entity"
	"offerfeed/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	madrid = entity.GeoPoint{Lat: 40.4168, Lng: -3.7038}
	now    = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
)

// kmNorth returns the point the given distance due north of madrid.
func kmNorth(km float64) entity.GeoPoint {
	return entity.GeoPoint{Lat: madrid.Lat + km/111.32, Lng: madrid.Lng}
}

func idFor(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", n))
}

func newTestStore() *Store {
	store := NewStore()
	store.now = func() time.Time { return now }

	return store
}

// seedMadrid adds 45 approved stores, with pairs sharing a location to exercise the ID tie-break.
func seedMadrid(store *Store) {
	for i := 1; i <= 45; i++ {
		store.AddCommerce(&entity.Commerce{
			ID:         idFor(100 - i),
			Name:       fmt.Sprintf("Tienda %02d", i),
			Location:   kmNorth(float64((i+1)/2) * 0.1),
			Categories: []string{"food"},
			IsApproved: true,
		})
	}
}

func TestStore_RankNearbyMadridPages(t *testing.T) {
	store := newTestStore()
	seedMadrid(store)
	ctx := context.Background()

	seen := make(map[uuid.UUID]bool)
	var previous *entity.RankedResult[*entity.Commerce]

	for _, tc := range []struct {
		page    int
		wantLen int
	}{
		{page: 1, wantLen: 20},
		{page: 2, wantLen: 20},
		{page: 3, wantLen: 5},
		{page: 4, wantLen: 0},
	} {
		rows, err := store.RankNearby(ctx, repository.NearbyQuery{Center: madrid, Page: tc.page, PageSize: 20, Now: now})
		require.NoError(t, err)
		require.Len(t, rows, tc.wantLen, "page %d", tc.page)

		for i := range rows {
			row := rows[i]
			assert.Equal(t, int64(45), row.TotalCount)
			assert.False(t, seen[row.Item.ID], "commerce %s repeated across pages", row.Item.ID)
			seen[row.Item.ID] = true

			if previous != nil {
				require.LessOrEqual(t, previous.DistanceKm, row.DistanceKm)
				if previous.DistanceKm == row.DistanceKm {
					assert.Negative(t, compareIDs(previous.Item.ID, row.Item.ID))
				}
			}
			previous = &row
		}
	}

	assert.Len(t, seen, 45)
}

func TestStore_RankNearbyHugePageIsEmpty(t *testing.T) {
	store := newTestStore()
	seedMadrid(store)

	for _, p := range []int{math.MaxInt/20 + 1, math.MaxInt/20 + 2, math.MaxInt} {
		rows, err := store.RankNearby(context.Background(), repository.NearbyQuery{Center: madrid, Page: p, PageSize: 20, Now: now})

		require.NoError(t, err)
		assert.Empty(t, rows, "page %d", p)
	}
}

func TestPageBounds(t *testing.T) {
	rows := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, page(rows, 0, 2))
	assert.Equal(t, []int{4, 5}, page(rows, 3, 20))
	assert.Equal(t, []int{5}, page(rows, 4, math.MaxInt))
	assert.Empty(t, page(rows, 5, 2))
	assert.Empty(t, page(rows, -20, 2))
	assert.Empty(t, page(rows, 0, 0))
}

func TestStore_RankNearbyNearestFirst(t *testing.T) {
	store := newTestStore()
	far := &entity.Commerce{Name: "Lejos", Location: kmNorth(1.2), IsApproved: true}
	near := &entity.Commerce{Name: "Cerca", Location: kmNorth(0.5), IsApproved: true}
	store.AddCommerce(far)
	store.AddCommerce(near)
	store.AddCommerce(&entity.Commerce{Name: "Pendiente", Location: kmNorth(0.1), IsApproved: false})

	rows, err := store.RankNearby(context.Background(), repository.NearbyQuery{Center: madrid, Page: 1, PageSize: 20, Now: now})

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, near.ID, rows[0].Item.ID)
	assert.InDelta(t, 0.5, rows[0].DistanceKm, 0.01)
	assert.Equal(t, far.ID, rows[1].Item.ID)
	assert.InDelta(t, 1.2, rows[1].DistanceKm, 0.01)
	assert.Equal(t, int64(2), rows[0].TotalCount)
}

func TestStore_RankNearbyFilters(t *testing.T) {
	store := newTestStore()
	bakery := &entity.Commerce{Name: "Horno", Location: kmNorth(0.3), Categories: []string{"food", "bakery"}, IsApproved: true}
	books := &entity.Commerce{Name: "Libros", Location: kmNorth(0.4), Categories: []string{"books"}, IsApproved: true}
	store.AddCommerce(bakery)
	store.AddCommerce(books)
	store.AddOffer(&entity.Offer{CommerceID: books.ID, Title: "3x2", StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour)})
	store.AddOffer(&entity.Offer{CommerceID: bakery.ID, Title: "Expired", StartsAt: now.Add(-48 * time.Hour), EndsAt: now.Add(-24 * time.Hour)})

	ctx := context.Background()

	rows, err := store.RankNearby(ctx, repository.NearbyQuery{Center: madrid, Page: 1, PageSize: 20, Category: "bakery", Now: now})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, bakery.ID, rows[0].Item.ID)

	rows, err = store.RankNearby(ctx, repository.NearbyQuery{Center: madrid, Page: 1, PageSize: 20, WithActiveOffers: true, Now: now})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, books.ID, rows[0].Item.ID)
}

func TestStore_ListOffers(t *testing.T) {
	store := newTestStore()
	sol := &entity.Commerce{Name: "Panaderia Sol", Location: kmNorth(0.5), Categories: []string{"food"}, IsApproved: true}
	luna := &entity.Commerce{Name: "Libreria Luna", Location: kmNorth(0.2), Categories: []string{"books"}, IsApproved: true}
	hidden := &entity.Commerce{Name: "Oculta", Location: kmNorth(0.1), Categories: []string{"food"}, IsApproved: false}
	store.AddCommerce(sol)
	store.AddCommerce(luna)
	store.AddCommerce(hidden)

	active := func(commerceID uuid.UUID, title string, created time.Time) *entity.Offer {
		offer := &entity.Offer{
			CommerceID: commerceID,
			Title:      title,
			StartsAt:   now.Add(-time.Hour),
			EndsAt:     now.Add(time.Hour),
			CreatedAt:  created,
		}
		store.AddOffer(offer)

		return offer
	}

	croissant := active(sol.ID, "Croissant 2x1", now.Add(-3*time.Hour))
	novel := active(luna.ID, "Novela -20%", now.Add(-time.Hour))
	active(hidden.ID, "Pan gratis", now)
	store.AddOffer(&entity.Offer{CommerceID: sol.ID, Title: "Pan de ayer", StartsAt: now.Add(time.Hour), EndsAt: now.Add(2 * time.Hour)})

	ctx := context.Background()

	t.Run("recency without center", func(t *testing.T) {
		rows, err := store.ListOffers(ctx, repository.OfferQuery{Limit: 10, Now: now})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{novel.ID, croissant.ID}, offerIDs(rows))
		assert.Equal(t, int64(2), rows[0].TotalCount)
		require.NotNil(t, rows[0].Item.Commerce)
		assert.Equal(t, "Libreria Luna", rows[0].Item.Commerce.Name)
	})

	t.Run("distance with center", func(t *testing.T) {
		rows, err := store.ListOffers(ctx, repository.OfferQuery{Center: &madrid, Limit: 10, Now: now})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{novel.ID, croissant.ID}, offerIDs(rows))
		assert.InDelta(t, 0.2, rows[0].DistanceKm, 0.01)
	})

	t.Run("category", func(t *testing.T) {
		rows, err := store.ListOffers(ctx, repository.OfferQuery{Filter: repository.OfferFilter{Category: "food"}, Limit: 10, Now: now})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{croissant.ID}, offerIDs(rows))
	})

	t.Run("search by title or commerce", func(t *testing.T) {
		rows, err := store.ListOffers(ctx, repository.OfferQuery{
			Filter: repository.OfferFilter{TitleTerm: "novela"},
			Limit:  10,
			Now:    now,
		})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{novel.ID}, offerIDs(rows))

		rows, err = store.ListOffers(ctx, repository.OfferQuery{
			Filter: repository.OfferFilter{TitleTerm: "sol", MatchedCommerceIDs: []uuid.UUID{sol.ID}},
			Limit:  10,
			Now:    now,
		})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{croissant.ID}, offerIDs(rows))
	})

	t.Run("restricted to commerces", func(t *testing.T) {
		rows, err := store.ListOffers(ctx, repository.OfferQuery{CommerceIDs: []uuid.UUID{luna.ID}, Limit: 10, Now: now})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{novel.ID}, offerIDs(rows))

		rows, err = store.ListOffers(ctx, repository.OfferQuery{CommerceIDs: []uuid.UUID{}, Limit: 10, Now: now})
		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})

	t.Run("offset past the end", func(t *testing.T) {
		rows, err := store.ListOffers(ctx, repository.OfferQuery{Limit: 10, Offset: 10, Now: now})
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestStore_FollowIsUniquePerEdge(t *testing.T) {
	store := newTestStore()
	commerce := &entity.Commerce{Name: "Sol", Location: madrid, IsApproved: true}
	store.AddCommerce(commerce)
	userID := uuid.New()
	ctx := context.Background()

	require.NoError(t, store.CreateFollow(ctx, &entity.Follow{UserID: userID, CommerceID: commerce.ID}))
	err := store.CreateFollow(ctx, &entity.Follow{UserID: userID, CommerceID: commerce.ID})
	assert.ErrorIs(t, err, repository.ErrDuplicateFollow)

	ids, err := store.FindFollowedCommerceIDs(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{commerce.ID}, ids)

	require.NoError(t, store.DeleteFollow(ctx, userID, commerce.ID))
	assert.ErrorIs(t, store.DeleteFollow(ctx, userID, commerce.ID), repository.ErrFollowNotFound)

	_, err = store.FindFollow(ctx, userID, commerce.ID)
	assert.ErrorIs(t, err, repository.ErrFollowNotFound)
}

func TestStore_CreateFollowUnknownCommerce(t *testing.T) {
	store := newTestStore()

	err := store.CreateFollow(context.Background(), &entity.Follow{UserID: uuid.New(), CommerceID: uuid.New()})

	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrDuplicateFollow)
}

func TestTransactionManager_UsesStore(t *testing.T) {
	store := newTestStore()
	commerce := &entity.Commerce{Name: "Sol", Location: madrid, IsApproved: true}
	store.AddCommerce(commerce)
	tm := NewTransactionManager(store)
	userID := uuid.New()

	err := tm.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		if _, err := factory.NewCommerceRepository().FindCommerceByID(context.Background(), commerce.ID); err != nil {
			return err
		}

		return factory.NewFollowRepository().CreateFollow(context.Background(), &entity.Follow{UserID: userID, CommerceID: commerce.ID})
	})

	require.NoError(t, err)
	_, err = store.FindFollow(context.Background(), userID, commerce.ID)
	assert.NoError(t, err)
}

func TestLoadSeed(t *testing.T) {
	commerceID := "0196a1c2-0000-7000-8000-000000000001"
	userID := "0196a1c2-0000-7000-8000-0000000000aa"
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := `
commerces:
  - id: ` + commerceID + `
    name: Panaderia Sol
    lat: 40.4172
    lng: -3.7040
    categories: [food, bakery]
    approved: true
offers:
  - commerceId: ` + commerceID + `
    title: Croissant 2x1
    requiredTier: free
    startsAt: "2026-01-01T00:00:00Z"
    endsAt: "2026-12-31T23:59:59Z"
follows:
  - userId: ` + userID + `
    commerceId: ` + commerceID + `
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	seed, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, seed.Commerces, 1)
	assert.Equal(t, []string{"food", "bakery"}, seed.Commerces[0].Categories)
	require.Len(t, seed.Offers, 1)
	assert.Equal(t, 2026, seed.Offers[0].StartsAt.Year())

	store := newTestStore()
	require.NoError(t, store.Apply(seed))

	rows, err := store.ListOffers(context.Background(), repository.OfferQuery{Center: &madrid, Limit: 10, Now: now})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Panaderia Sol", rows[0].Item.Commerce.Name)

	ids, err := store.FindFollowedCommerceIDs(context.Background(), uuid.MustParse(userID))
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{uuid.MustParse(commerceID)}, ids)
}

func TestLoadSeedMissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

func offerIDs(rows []entity.RankedResult[*entity.Offer]) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.Item.ID)
	}

	return ids
}
