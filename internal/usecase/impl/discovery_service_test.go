package impl

import (
	"context"
	"math"
	"testing"

	"offerfeed/internal/domain/entity"
	domainerrors "offerfeed/internal/domain/errors"
	"offerfeed/internal/domain/repository"
	"offerfeed/internal/errors"
	mockRepo "offerfeed/internal/mocks/repository"
	mockSvc "offerfeed/internal/mocks/service"
	"offerfeed/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var madrid = entity.GeoPoint{Lat: 40.4168, Lng: -3.7038}

func newTestDiscoveryService(t *testing.T) (*discoveryService, *mockRepo.MockCommerceRepository) {
	commerceRepo := mockRepo.NewMockCommerceRepository(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)
	metrics.EXPECT().ObserveQuery(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	srv := NewDiscoveryService(DiscoveryServiceParams{
		CommerceRepo: commerceRepo,
		Metrics:      metrics,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	}).(*discoveryService)
	srv.now = fixedClock

	return srv, commerceRepo
}

func rankedCommerces(n int, total int64) []entity.RankedResult[*entity.Commerce] {
	rows := make([]entity.RankedResult[*entity.Commerce], 0, n)
	for i := range n {
		rows = append(rows, entity.RankedResult[*entity.Commerce]{
			Item:       &entity.Commerce{ID: uuid.New(), Name: "store", IsApproved: true},
			DistanceKm: 0.5 + float64(i)*0.1,
			TotalCount: total,
		})
	}

	return rows
}

func TestDiscoveryService_NearbyCommerces_MadridFirstPage(t *testing.T) {
	srv, commerceRepo := newTestDiscoveryService(t)
	ctx := context.Background()

	commerceRepo.EXPECT().
		RankNearby(ctx, repository.NearbyQuery{
			Center:   madrid,
			Page:     1,
			PageSize: 20,
			Now:      fixedNow,
		}).
		Return(rankedCommerces(20, 45), nil)

	page, err := srv.NearbyCommerces(ctx, usecase.NearbyInput{Center: madrid, Page: 1})
	require.NoError(t, err)
	assert.Len(t, page.Items, 20)
	assert.Equal(t, entity.Pagination{Total: 45, PerPage: 20, CurrentPage: 1, TotalPages: 3}, page.Pagination)
}

func TestDiscoveryService_NearbyCommerces_EmptyPage(t *testing.T) {
	srv, commerceRepo := newTestDiscoveryService(t)
	ctx := context.Background()

	commerceRepo.EXPECT().RankNearby(ctx, mock.Anything).Return(nil, nil)

	page, err := srv.NearbyCommerces(ctx, usecase.NearbyInput{Center: madrid, Page: 9})
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.Pagination.Total)
	assert.Equal(t, 0, page.Pagination.TotalPages)
}

func TestDiscoveryService_NearbyCommerces_HugePageSkipsQuery(t *testing.T) {
	// The repository mock fails the test if RankNearby is called.
	srv, _ := newTestDiscoveryService(t)

	for _, p := range []int{math.MaxInt/20 + 2, math.MaxInt} {
		page, err := srv.NearbyCommerces(context.Background(), usecase.NearbyInput{Center: madrid, Page: p})

		require.NoError(t, err)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
		assert.Equal(t, entity.Pagination{Total: 0, PerPage: 20, CurrentPage: p, TotalPages: 0}, page.Pagination)
	}
}

func TestDiscoveryService_NearbyCommerces_LastRepresentablePageQueries(t *testing.T) {
	srv, commerceRepo := newTestDiscoveryService(t)
	ctx := context.Background()
	p := math.MaxInt/20 + 1

	commerceRepo.EXPECT().
		RankNearby(ctx, mock.MatchedBy(func(q repository.NearbyQuery) bool {
			return q.Page == p && q.Offset() == (math.MaxInt/20)*20
		})).
		Return(nil, nil)

	page, err := srv.NearbyCommerces(ctx, usecase.NearbyInput{Center: madrid, Page: p})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.Pagination.Total)
}

func TestDiscoveryService_NearbyCommercesWithOffers_SetsFlagAndCategory(t *testing.T) {
	srv, commerceRepo := newTestDiscoveryService(t)
	ctx := context.Background()

	commerceRepo.EXPECT().
		RankNearby(ctx, mock.MatchedBy(func(q repository.NearbyQuery) bool {
			return q.WithActiveOffers && q.Category == "Moda" && q.Page == 2 && q.PageSize == 20
		})).
		Return(rankedCommerces(3, 23), nil)

	page, err := srv.NearbyCommercesWithOffers(ctx, usecase.NearbyInput{Center: madrid, Page: 2, Category: "Moda"})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Pagination.TotalPages)
}

func TestDiscoveryService_NearbyCommerces_AllCategoriesSentinel(t *testing.T) {
	srv, commerceRepo := newTestDiscoveryService(t)
	ctx := context.Background()

	commerceRepo.EXPECT().
		RankNearby(ctx, mock.MatchedBy(func(q repository.NearbyQuery) bool { return q.Category == "" })).
		Return(rankedCommerces(1, 1), nil)

	_, err := srv.NearbyCommerces(ctx, usecase.NearbyInput{Center: madrid, Page: 1, Category: "Todas"})
	require.NoError(t, err)
}

func TestDiscoveryService_NearbyCommerces_ValidationBeforeQuery(t *testing.T) {
	srv, _ := newTestDiscoveryService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input usecase.NearbyInput
	}{
		{"page zero", usecase.NearbyInput{Center: madrid, Page: 0}},
		{"negative page", usecase.NearbyInput{Center: madrid, Page: -1}},
		{"latitude out of range", usecase.NearbyInput{Center: entity.GeoPoint{Lat: 91, Lng: 0}, Page: 1}},
		{"longitude out of range", usecase.NearbyInput{Center: entity.GeoPoint{Lat: 0, Lng: -181}, Page: 1}},
		{"NaN latitude", usecase.NearbyInput{Center: entity.GeoPoint{Lat: math.NaN(), Lng: 0}, Page: 1}},
		{"page size too large", usecase.NearbyInput{Center: madrid, Page: 1, PageSize: 101}},
		{"negative page size", usecase.NearbyInput{Center: madrid, Page: 1, PageSize: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := srv.NearbyCommerces(ctx, tt.input)
			assert.Nil(t, page)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestDiscoveryService_NearbyCommerces_StoreFailure(t *testing.T) {
	srv, commerceRepo := newTestDiscoveryService(t)
	ctx := context.Background()

	commerceRepo.EXPECT().RankNearby(ctx, mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := srv.NearbyCommerces(ctx, usecase.NearbyInput{Center: madrid, Page: 1})
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamQuery))
	assert.NotContains(t, err.Error(), "connection reset")
}
