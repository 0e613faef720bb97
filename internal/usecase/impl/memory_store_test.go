package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"offerfeed/internal/domain/entity"
	"offerfeed/internal/infra/persistence/memory"
	mockSvc "offerfeed/internal/mocks/service"
	"offerfeed/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newMadridStore holds 45 approved stores north of Madrid, each with one active offer.
// Store 1 is 0.5 km away and store 2 is 1.2 km away; the rest are further.
func newMadridStore() (*memory.Store, []*entity.Commerce) {
	store := memory.NewStore()
	commerces := make([]*entity.Commerce, 0, 45)

	for i := 1; i <= 45; i++ {
		km := 1.2 + float64(i)*0.1
		switch i {
		case 1:
			km = 0.5
		case 2:
			km = 1.2
		}

		category := "food"
		if i%3 == 0 {
			category = "books"
		}

		commerce := &entity.Commerce{
			Name:       fmt.Sprintf("Tienda %02d", i),
			Location:   entity.GeoPoint{Lat: madrid.Lat + km/111.32, Lng: madrid.Lng},
			Categories: []string{category},
			IsApproved: true,
		}
		store.AddCommerce(commerce)
		store.AddOffer(&entity.Offer{
			CommerceID: commerce.ID,
			Title:      fmt.Sprintf("Oferta %02d", i),
			StartsAt:   fixedNow.Add(-time.Hour),
			EndsAt:     fixedNow.Add(time.Hour),
			CreatedAt:  fixedNow.Add(-time.Duration(i) * time.Minute),
		})
		commerces = append(commerces, commerce)
	}

	return store, commerces
}

func newMemoryMetrics(t *testing.T) *mockSvc.MockMetricsRecorder {
	metrics := mockSvc.NewMockMetricsRecorder(t)
	metrics.EXPECT().ObserveQuery(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	return metrics
}

func TestMemoryStore_MadridNearbyFirstPage(t *testing.T) {
	store, commerces := newMadridStore()
	srv := NewDiscoveryService(DiscoveryServiceParams{
		CommerceRepo: store,
		Metrics:      newMemoryMetrics(t),
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	}).(*discoveryService)
	srv.now = fixedClock

	page, err := srv.NearbyCommerces(context.Background(), usecase.NearbyInput{Center: madrid, Page: 1})

	require.NoError(t, err)
	require.Len(t, page.Items, 20)
	assert.Equal(t, commerces[0].ID, page.Items[0].Item.ID)
	assert.InDelta(t, 0.5, page.Items[0].DistanceKm, 0.01)
	assert.Equal(t, commerces[1].ID, page.Items[1].Item.ID)
	assert.InDelta(t, 1.2, page.Items[1].DistanceKm, 0.01)
	assert.Equal(t, entity.Pagination{Total: 45, PerPage: 20, CurrentPage: 1, TotalPages: 3}, page.Pagination)

	last, err := srv.NearbyCommerces(context.Background(), usecase.NearbyInput{Center: madrid, Page: 3})
	require.NoError(t, err)
	assert.Len(t, last.Items, 5)
}

func TestMemoryStore_AllCategoriesSentinelMatchesNoFilter(t *testing.T) {
	store, _ := newMadridStore()
	srv := NewFeedService(FeedServiceParams{
		OfferRepo:    store,
		FollowRepo:   store,
		CommerceRepo: store,
		Metrics:      newMemoryMetrics(t),
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	}).(*feedService)
	srv.now = fixedClock
	ctx := context.Background()

	unfiltered, err := srv.Compose(ctx, entity.AnonymousPrincipal(), feedInputFor("", &madrid))
	require.NoError(t, err)

	todas, err := srv.Compose(ctx, entity.AnonymousPrincipal(), feedInputFor("Todas", &madrid))
	require.NoError(t, err)

	assert.Equal(t, unfiltered.General, todas.General)
	assert.Equal(t, unfiltered.Meta, todas.Meta)
	assert.Equal(t, int64(45), todas.Meta.Total)

	books, err := srv.Compose(ctx, entity.AnonymousPrincipal(), feedInputFor("books", &madrid))
	require.NoError(t, err)
	assert.Equal(t, int64(15), books.Meta.Total)
}

func TestMemoryStore_FeedWithFollowsAndIdempotentFollow(t *testing.T) {
	store, commerces := newMadridStore()
	cfg := newTestConfig()
	ctx := context.Background()
	userID := uuid.New()

	follows := NewFollowService(FollowServiceParams{
		TxManager:    memory.NewTransactionManager(store),
		FollowRepo:   store,
		CommerceRepo: store,
		Logger:       newDiscardLogger(),
	})

	first, err := follows.Follow(ctx, userID, commerces[4].ID)
	require.NoError(t, err)
	assert.False(t, first.AlreadyFollowing)

	second, err := follows.Follow(ctx, userID, commerces[4].ID)
	require.NoError(t, err)
	assert.True(t, second.AlreadyFollowing)

	followed, err := follows.ListFollowed(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{commerces[4].ID}, followed)

	feed := NewFeedService(FeedServiceParams{
		OfferRepo:    store,
		FollowRepo:   store,
		CommerceRepo: store,
		Metrics:      newMemoryMetrics(t),
		Config:       cfg,
		Logger:       newDiscardLogger(),
	}).(*feedService)
	feed.now = fixedClock

	principal := entity.NewAuthenticatedPrincipal(userID, nil, entity.CredentialBearer)
	result, err := feed.Compose(ctx, principal, feedInputFor("", nil))

	require.NoError(t, err)
	require.Len(t, result.Subscribed, 1)
	assert.Equal(t, commerces[4].ID, result.Subscribed[0].CommerceID)
	assert.Len(t, result.General, 20)
}

func feedInputFor(category string, center *entity.GeoPoint) usecase.FeedInput {
	return usecase.FeedInput{Category: category, Center: center, Limit: 20}
}
