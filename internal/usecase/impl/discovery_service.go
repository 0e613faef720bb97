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

	"go.uber.org/fx"
)

type discoveryService struct {
	commerceRepo repository.CommerceRepository
	metrics      service.MetricsRecorder
	cfg          *config.DiscoveryConfig
	logger       *slog.Logger
	now          func() time.Time
}

// DiscoveryServiceParams holds dependencies for DiscoveryService, injected by Fx.
type DiscoveryServiceParams struct {
	fx.In

	CommerceRepo repository.CommerceRepository
	Metrics      service.MetricsRecorder
	Config       *config.Config
	Logger       *slog.Logger
}

// NewDiscoveryService creates a new discovery service instance
func NewDiscoveryService(params DiscoveryServiceParams) usecase.DiscoveryUsecase {
	return &discoveryService{
		commerceRepo: params.CommerceRepo,
		metrics:      params.Metrics,
		cfg:          params.Config.Discovery,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (s *discoveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, s.logger)
}

// NearbyCommerces returns approved commerces ranked by distance
func (s *discoveryService) NearbyCommerces(ctx context.Context, input usecase.NearbyInput) (*entity.RankedPage[*entity.Commerce], error) {
	return s.rank(ctx, input, false, constants.QueryNearby)
}

// NearbyCommercesWithOffers returns approved commerces with an active offer ranked by distance
func (s *discoveryService) NearbyCommercesWithOffers(ctx context.Context, input usecase.NearbyInput) (*entity.RankedPage[*entity.Commerce], error) {
	return s.rank(ctx, input, true, constants.QueryNearbyWithOffers)
}

func (s *discoveryService) rank(ctx context.Context, input usecase.NearbyInput, withOffers bool, queryName string) (*entity.RankedPage[*entity.Commerce], error) {
	pageSize, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	query := repository.NearbyQuery{
		Center:           input.Center,
		Page:             input.Page,
		PageSize:         pageSize,
		Category:         normalizeCategory(input.Category, s.cfg.AllCategories),
		WithActiveOffers: withOffers,
		Now:              s.now(),
	}

	if query.BeyondAnyRow() {
		return &entity.RankedPage[*entity.Commerce]{
			Items:      []entity.RankedResult[*entity.Commerce]{},
			Pagination: entity.NewPagination(0, pageSize, input.Page),
		}, nil
	}

	start := time.Now()
	rows, err := s.commerceRepo.RankNearby(ctx, query)
	s.metrics.ObserveQuery(queryName, time.Since(start), err)
	if err != nil {
		s.log(ctx).Error("Nearby ranking failed",
			slog.String("query", queryName),
			slog.Int("page", input.Page),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrUpstreamQuery.WrapMessage("nearby ranking failed")
	}

	if rows == nil {
		rows = []entity.RankedResult[*entity.Commerce]{}
	}

	return &entity.RankedPage[*entity.Commerce]{
		Items:      rows,
		Pagination: entity.NewPagination(entity.TotalCountOf(rows), pageSize, input.Page),
	}, nil
}

// validate rejects bad input before any query runs and resolves the page size.
func (s *discoveryService) validate(input usecase.NearbyInput) (int, error) {
	if !input.Center.IsValid() {
		return 0, domainerrors.ErrValidationFailed.WithDetails("lat must be within [-90, 90] and long within [-180, 180]")
	}
	if input.Page < 1 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("page must be an integer >= 1")
	}

	pageSize := input.PageSize
	if pageSize == 0 {
		pageSize = s.cfg.PageSize
	}
	if pageSize < 1 || pageSize > s.cfg.MaxPageSize {
		return 0, domainerrors.ErrValidationFailed.WithDetails("page size out of range")
	}

	return pageSize, nil
}
