package impl

import (
	"context"
	"testing"
	"time"

	"offerfeed/internal/domain/constants"
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

type feedMocks struct {
	offers    *mockRepo.MockOfferRepository
	follows   *mockRepo.MockFollowRepository
	commerces *mockRepo.MockCommerceRepository
	metrics   *mockSvc.MockMetricsRecorder
}

func newTestFeedService(t *testing.T) (*feedService, feedMocks) {
	m := feedMocks{
		offers:    mockRepo.NewMockOfferRepository(t),
		follows:   mockRepo.NewMockFollowRepository(t),
		commerces: mockRepo.NewMockCommerceRepository(t),
		metrics:   mockSvc.NewMockMetricsRecorder(t),
	}
	m.metrics.EXPECT().ObserveQuery(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	srv := NewFeedService(FeedServiceParams{
		OfferRepo:    m.offers,
		FollowRepo:   m.follows,
		CommerceRepo: m.commerces,
		Metrics:      m.metrics,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	}).(*feedService)
	srv.now = fixedClock

	return srv, m
}

func rankedOffers(n int, total int64) []entity.RankedResult[*entity.Offer] {
	rows := make([]entity.RankedResult[*entity.Offer], 0, n)
	for range n {
		rows = append(rows, entity.RankedResult[*entity.Offer]{
			Item:       &entity.Offer{ID: uuid.New(), CommerceID: uuid.New(), Title: "2x1"},
			TotalCount: total,
		})
	}

	return rows
}

func isGeneral(q repository.OfferQuery) bool    { return q.CommerceIDs == nil }
func isSubscribed(q repository.OfferQuery) bool { return q.CommerceIDs != nil }

func TestFeedService_Compose_Anonymous(t *testing.T) {
	srv, m := newTestFeedService(t)

	m.offers.EXPECT().
		ListOffers(mock.Anything, repository.OfferQuery{Limit: 20, Offset: 40, Now: fixedNow}).
		Return(rankedOffers(5, 45), nil).
		Once()

	feed, err := srv.Compose(context.Background(), entity.AnonymousPrincipal(), usecase.FeedInput{Offset: 40})
	require.NoError(t, err)
	assert.Len(t, feed.General, 5)
	assert.NotNil(t, feed.Subscribed)
	assert.Empty(t, feed.Subscribed)
	assert.Equal(t, entity.OffsetMeta{Page: 3, Limit: 20, Offset: 40, Total: 45, TotalPages: 3}, feed.Meta)
}

func TestFeedService_Compose_EmptySubscriptionsIssueNoQuery(t *testing.T) {
	srv, m := newTestFeedService(t)
	principal := entity.NewAuthenticatedPrincipal(uuid.New(), nil, entity.CredentialBearer)

	m.follows.EXPECT().FindFollowedCommerceIDs(mock.Anything, principal.UserID).Return([]uuid.UUID{}, nil)
	m.offers.EXPECT().ListOffers(mock.Anything, mock.MatchedBy(isGeneral)).Return(rankedOffers(2, 2), nil).Once()

	feed, err := srv.Compose(context.Background(), principal, usecase.FeedInput{})
	require.NoError(t, err)
	assert.Empty(t, feed.Subscribed)
	m.offers.AssertNumberOfCalls(t, "ListOffers", 1)

	ids, loaded := principal.Subscriptions()
	assert.True(t, loaded)
	assert.Empty(t, ids)
}

func TestFeedService_Compose_SubscribedListSharesFilter(t *testing.T) {
	srv, m := newTestFeedService(t)
	principal := entity.NewAuthenticatedPrincipal(uuid.New(), nil, entity.CredentialCookie)
	followed := []uuid.UUID{uuid.New(), uuid.New()}
	nameMatches := []uuid.UUID{uuid.New()}
	center := &entity.GeoPoint{Lat: 40.4168, Lng: -3.7038}

	m.commerces.EXPECT().FindCommerceIDsByName(mock.Anything, "pizza").Return(nameMatches, nil).Once()
	m.follows.EXPECT().FindFollowedCommerceIDs(mock.Anything, principal.UserID).Return(followed, nil)

	wantFilter := repository.OfferFilter{Category: "Comida", TitleTerm: "pizza", MatchedCommerceIDs: nameMatches}
	m.offers.EXPECT().
		ListOffers(mock.Anything, repository.OfferQuery{Filter: wantFilter, Center: center, Limit: 20, Now: fixedNow}).
		Return(rankedOffers(3, 3), nil).
		Once()
	m.offers.EXPECT().
		ListOffers(mock.Anything, repository.OfferQuery{Filter: wantFilter, Center: center, CommerceIDs: followed, Limit: 10, Now: fixedNow}).
		Return(rankedOffers(2, 2), nil).
		Once()

	feed, err := srv.Compose(context.Background(), principal, usecase.FeedInput{
		Category: "Comida",
		Search:   "pizza",
		Center:   center,
	})
	require.NoError(t, err)
	assert.Len(t, feed.General, 3)
	assert.Len(t, feed.Subscribed, 2)
	assert.Equal(t, int64(3), feed.Meta.Total)
}

func TestFeedService_Compose_SubscriptionsLoadAlongsideNameLookup(t *testing.T) {
	srv, m := newTestFeedService(t)
	principal := entity.NewAuthenticatedPrincipal(uuid.New(), nil, entity.CredentialBearer)
	followed := []uuid.UUID{uuid.New()}
	followStarted := make(chan struct{})

	m.follows.EXPECT().FindFollowedCommerceIDs(mock.Anything, principal.UserID).
		RunAndReturn(func(context.Context, uuid.UUID) ([]uuid.UUID, error) {
			close(followStarted)

			return followed, nil
		})
	// The name lookup only succeeds if the subscription load is already in flight.
	m.commerces.EXPECT().FindCommerceIDsByName(mock.Anything, "pizza").
		RunAndReturn(func(context.Context, string) ([]uuid.UUID, error) {
			select {
			case <-followStarted:
				return nil, nil
			case <-time.After(2 * time.Second):
				return nil, errors.New("subscription load did not start before the filter resolved")
			}
		})
	m.offers.EXPECT().ListOffers(mock.Anything, mock.MatchedBy(isGeneral)).Return(rankedOffers(1, 1), nil).Once()
	m.offers.EXPECT().ListOffers(mock.Anything, mock.MatchedBy(isSubscribed)).Return(rankedOffers(1, 1), nil).Once()

	feed, err := srv.Compose(context.Background(), principal, usecase.FeedInput{Search: "pizza"})
	require.NoError(t, err)
	assert.Len(t, feed.General, 1)
	assert.Len(t, feed.Subscribed, 1)

	ids, loaded := principal.Subscriptions()
	assert.True(t, loaded)
	assert.Equal(t, followed, ids)
}

func TestFeedService_Compose_CachedSubscriptionsAreReused(t *testing.T) {
	srv, m := newTestFeedService(t)
	principal := entity.NewAuthenticatedPrincipal(uuid.New(), nil, entity.CredentialBearer)
	principal.SetSubscriptions([]uuid.UUID{uuid.New()})

	m.offers.EXPECT().ListOffers(mock.Anything, mock.MatchedBy(isGeneral)).Return(rankedOffers(1, 1), nil)
	m.offers.EXPECT().ListOffers(mock.Anything, mock.MatchedBy(isSubscribed)).Return(rankedOffers(1, 1), nil)

	feed, err := srv.Compose(context.Background(), principal, usecase.FeedInput{})
	require.NoError(t, err)
	assert.Len(t, feed.Subscribed, 1)
}

func TestFeedService_Compose_SubscriptionLookupFailureDegrades(t *testing.T) {
	srv, m := newTestFeedService(t)
	principal := entity.NewAuthenticatedPrincipal(uuid.New(), nil, entity.CredentialBearer)

	m.follows.EXPECT().FindFollowedCommerceIDs(mock.Anything, principal.UserID).Return(nil, errors.New("timeout"))
	m.metrics.EXPECT().IncFeedDegraded(constants.DegradedSubscriptions).Return().Once()
	m.offers.EXPECT().ListOffers(mock.Anything, mock.MatchedBy(isGeneral)).Return(rankedOffers(4, 4), nil)

	feed, err := srv.Compose(context.Background(), principal, usecase.FeedInput{})
	require.NoError(t, err)
	assert.Len(t, feed.General, 4)
	assert.Empty(t, feed.Subscribed)
}

func TestFeedService_Compose_SubscribedQueryFailureDegrades(t *testing.T) {
	srv, m := newTestFeedService(t)
	principal := entity.NewAuthenticatedPrincipal(uuid.New(), nil, entity.CredentialBearer)

	m.follows.EXPECT().FindFollowedCommerceIDs(mock.Anything, principal.UserID).Return([]uuid.UUID{uuid.New()}, nil)
	m.metrics.EXPECT().IncFeedDegraded(constants.DegradedSubscribedList).Return().Once()
	m.offers.EXPECT().ListOffers(mock.Anything, mock.MatchedBy(isGeneral)).Return(rankedOffers(1, 1), nil)
	m.offers.EXPECT().ListOffers(mock.Anything, mock.MatchedBy(isSubscribed)).Return(nil, errors.New("statement timeout"))

	feed, err := srv.Compose(context.Background(), principal, usecase.FeedInput{})
	require.NoError(t, err)
	assert.Len(t, feed.General, 1)
	assert.Empty(t, feed.Subscribed)
}

func TestFeedService_Compose_GeneralFailureIsFatal(t *testing.T) {
	srv, m := newTestFeedService(t)
	principal := entity.NewAuthenticatedPrincipal(uuid.New(), nil, entity.CredentialBearer)

	m.follows.EXPECT().FindFollowedCommerceIDs(mock.Anything, principal.UserID).Return([]uuid.UUID{}, nil).Maybe()
	m.offers.EXPECT().ListOffers(mock.Anything, mock.MatchedBy(isGeneral)).Return(nil, errors.New("boom"))

	feed, err := srv.Compose(context.Background(), principal, usecase.FeedInput{})
	assert.Nil(t, feed)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamQuery))
}

func TestFeedService_Compose_FilterFailureIsFatal(t *testing.T) {
	srv, m := newTestFeedService(t)

	m.commerces.EXPECT().FindCommerceIDsByName(mock.Anything, "cafe").Return(nil, errors.New("boom"))

	_, err := srv.Compose(context.Background(), entity.AnonymousPrincipal(), usecase.FeedInput{Search: "cafe"})
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamQuery))
}

func TestFeedService_Compose_BranchesIgnoreCallerCancellation(t *testing.T) {
	srv, m := newTestFeedService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m.offers.EXPECT().
		ListOffers(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ repository.OfferQuery) ([]entity.RankedResult[*entity.Offer], error) {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			return rankedOffers(1, 1), nil
		})

	feed, err := srv.Compose(ctx, entity.AnonymousPrincipal(), usecase.FeedInput{})
	require.NoError(t, err)
	assert.Len(t, feed.General, 1)
}

func TestFeedService_Compose_Validation(t *testing.T) {
	srv, _ := newTestFeedService(t)

	tests := []struct {
		name  string
		input usecase.FeedInput
	}{
		{"limit too large", usecase.FeedInput{Limit: 101}},
		{"negative limit", usecase.FeedInput{Limit: -1}},
		{"negative offset", usecase.FeedInput{Offset: -20}},
		{"invalid center", usecase.FeedInput{Center: &entity.GeoPoint{Lat: 100}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := srv.Compose(context.Background(), entity.AnonymousPrincipal(), tt.input)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}
