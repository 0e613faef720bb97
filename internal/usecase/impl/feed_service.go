package impl

import (
	"context"
	"log/slog"
	"time"

	"offerfeed/config"
	deliverycontext "offerfeed/internal/delivery/context"
	"offerfeed/internal/domain/constants"
	"offerfeed/internal/domain/entity"
	domainerrors "offerfeed/internal/domain/errors"
	"offerfeed/internal/domain/repository"
	"offerfeed/internal/domain/service"
	"offerfeed/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type feedService struct {
	offerRepo  repository.OfferRepository
	followRepo repository.FollowRepository
	filters    *OfferFilterBuilder
	metrics    service.MetricsRecorder
	cfg        *config.DiscoveryConfig
	logger     *slog.Logger
	now        func() time.Time
}

// FeedServiceParams holds dependencies for FeedService, injected by Fx.
type FeedServiceParams struct {
	fx.In

	OfferRepo    repository.OfferRepository
	FollowRepo   repository.FollowRepository
	CommerceRepo repository.CommerceRepository
	Metrics      service.MetricsRecorder
	Config       *config.Config
	Logger       *slog.Logger
}

// NewFeedService creates a new feed service instance
func NewFeedService(params FeedServiceParams) usecase.FeedUsecase {
	return &feedService{
		offerRepo:  params.OfferRepo,
		followRepo: params.FollowRepo,
		filters:    NewOfferFilterBuilder(params.CommerceRepo, params.Config.Discovery.AllCategories),
		metrics:    params.Metrics,
		cfg:        params.Config.Discovery,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (s *feedService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, s.logger)
}

// Compose runs the general and subscribed lists concurrently on one shared filter.
// Both branches run detached from the caller's cancellation; the caller discards late results.
func (s *feedService) Compose(ctx context.Context, principal *entity.Principal, input usecase.FeedInput) (*entity.Feed, error) {
	limit, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	detached := context.WithoutCancel(ctx)

	// The subscription set does not depend on the filter, so it loads while the filter resolves.
	var subscriptions <-chan subscriptionLoad
	if principal.IsAuthenticated() {
		subscriptions = s.loadSubscriptions(detached, principal)
	}

	start := time.Now()
	filter, err := s.filters.Build(ctx, input.Category, input.Search)
	s.metrics.ObserveQuery(constants.QueryFeedFilter, time.Since(start), err)
	if err != nil {
		s.log(ctx).Error("Feed filter failed", slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamQuery.WrapMessage("feed filter failed")
	}

	now := s.now()

	var (
		g          errgroup.Group
		general    []entity.RankedResult[*entity.Offer]
		subscribed = []*entity.Offer{}
	)

	g.Go(func() error {
		rows, err := s.listOffers(detached, constants.QueryFeedGeneral, repository.OfferQuery{
			Filter: filter,
			Center: input.Center,
			Limit:  limit,
			Offset: input.Offset,
			Now:    now,
		})
		if err != nil {
			return err
		}
		general = rows

		return nil
	})

	if subscriptions != nil {
		g.Go(func() error {
			subscribed = s.subscribedOffers(detached, <-subscriptions, filter, input.Center, now)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.log(ctx).Error("General feed query failed", slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamQuery.WrapMessage("general feed query failed")
	}

	if general == nil {
		general = []entity.RankedResult[*entity.Offer]{}
	}

	return &entity.Feed{
		General:    general,
		Subscribed: subscribed,
		Meta:       entity.NewOffsetMeta(entity.TotalCountOf(general), limit, input.Offset),
	}, nil
}

type subscriptionLoad struct {
	ids []uuid.UUID
	err error
}

// loadSubscriptions resolves the principal's followed commerces once per request.
// The result is delivered on a buffered channel so an abandoned load never blocks.
func (s *feedService) loadSubscriptions(ctx context.Context, principal *entity.Principal) <-chan subscriptionLoad {
	out := make(chan subscriptionLoad, 1)

	if ids, loaded := principal.Subscriptions(); loaded {
		out <- subscriptionLoad{ids: ids}

		return out
	}

	go func() {
		ids, err := s.followRepo.FindFollowedCommerceIDs(ctx, principal.UserID)
		if err == nil {
			principal.SetSubscriptions(ids)
		}
		out <- subscriptionLoad{ids: ids, err: err}
	}()

	return out
}

// subscribedOffers never fails the feed. Any error degrades to an empty list.
func (s *feedService) subscribedOffers(ctx context.Context, load subscriptionLoad, filter repository.OfferFilter, center *entity.GeoPoint, now time.Time) []*entity.Offer {
	if load.err != nil {
		return s.degrade(ctx, constants.DegradedSubscriptions, load.err)
	}

	ids := load.ids
	if len(ids) == 0 {
		return []*entity.Offer{}
	}

	rows, err := s.listOffers(ctx, constants.QueryFeedSubscribed, repository.OfferQuery{
		Filter:      filter,
		Center:      center,
		CommerceIDs: ids,
		Limit:       s.cfg.SubscribedLimit,
		Now:         now,
	})
	if err != nil {
		return s.degrade(ctx, constants.DegradedSubscribedList, err)
	}

	offers := make([]*entity.Offer, 0, len(rows))
	for _, row := range rows {
		offers = append(offers, row.Item)
	}

	return offers
}

func (s *feedService) degrade(ctx context.Context, reason string, err error) []*entity.Offer {
	s.metrics.IncFeedDegraded(reason)
	s.log(ctx).Warn("Subscribed feed degraded",
		slog.String("reason", reason),
		slog.Any("error", err),
	)

	return []*entity.Offer{}
}

func (s *feedService) listOffers(ctx context.Context, queryName string, query repository.OfferQuery) ([]entity.RankedResult[*entity.Offer], error) {
	start := time.Now()
	rows, err := s.offerRepo.ListOffers(ctx, query)
	s.metrics.ObserveQuery(queryName, time.Since(start), err)

	return rows, err
}

func (s *feedService) validate(input usecase.FeedInput) (int, error) {
	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.DefaultFeedLimit
	}
	if limit < 1 || limit > s.cfg.MaxPageSize {
		return 0, domainerrors.ErrValidationFailed.WithDetails("limit out of range")
	}
	if input.Offset < 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("offset must be >= 0")
	}
	if input.Center != nil && !input.Center.IsValid() {
		return 0, domainerrors.ErrValidationFailed.WithDetails("lat must be within [-90, 90] and long within [-180, 180]")
	}

	return limit, nil
}
