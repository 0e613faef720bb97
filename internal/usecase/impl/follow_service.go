package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "offerfeed/internal/delivery/context"
	"offerfeed/internal/domain/entity"
	domainerrors "offerfeed/internal/domain/errors"
	"offerfeed/internal/domain/repository"
	"offerfeed/internal/domain/service"
	"offerfeed/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type followService struct {
	txManager     repository.TransactionManager
	followRepo    repository.FollowRepository
	commerceRepo  repository.CommerceRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// FollowServiceParams holds dependencies for FollowService, injected by Fx.
type FollowServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	FollowRepo    repository.FollowRepository
	CommerceRepo  repository.CommerceRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewFollowService creates a new follow service instance
func NewFollowService(params FollowServiceParams) usecase.FollowUsecase {
	return &followService{
		txManager:     params.TxManager,
		followRepo:    params.FollowRepo,
		commerceRepo:  params.CommerceRepo,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

func (s *followService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, s.logger)
}

// Follow creates the edge unless it already exists
func (s *followService) Follow(ctx context.Context, userID, commerceID uuid.UUID) (*usecase.FollowResult, error) {
	result := &usecase.FollowResult{CommerceID: commerceID}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. Only approved commerces can be followed
		if _, err := repoFactory.NewCommerceRepository().FindCommerceByID(ctx, commerceID); err != nil {
			if errors.Is(err, repository.ErrCommerceNotFound) {
				return domainerrors.ErrCommerceNotFound
			}

			return errors.Wrap(err, "failed to find commerce")
		}

		followRepo := repoFactory.NewFollowRepository()

		// 2. Existing edge means nothing to do
		existing, err := followRepo.FindFollow(ctx, userID, commerceID)
		if err != nil && !errors.Is(err, repository.ErrFollowNotFound) {
			return errors.Wrap(err, "failed to find follow")
		}
		if existing != nil {
			result.AlreadyFollowing = true

			return nil
		}

		// 3. Create; a concurrent follow may win the unique index
		follow := &entity.Follow{
			ID:                   uuid.New(),
			UserID:               userID,
			CommerceID:           commerceID,
			NotificationsEnabled: true,
			CreatedAt:            time.Now(),
		}
		if err := followRepo.CreateFollow(ctx, follow); err != nil {
			if errors.Is(err, repository.ErrDuplicateFollow) {
				result.AlreadyFollowing = true

				return nil
			}

			return errors.Wrap(err, "failed to create follow")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Debug("Follow recorded",
		slog.Any("user_id", userID),
		slog.Any("commerce_id", commerceID),
		slog.Bool("already_following", result.AlreadyFollowing),
	)

	return result, nil
}

// Unfollow removes the edge; a missing edge is already the desired state
func (s *followService) Unfollow(ctx context.Context, userID, commerceID uuid.UUID) error {
	if err := s.followRepo.DeleteFollow(ctx, userID, commerceID); err != nil {
		if errors.Is(err, repository.ErrFollowNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to delete follow")
	}

	return nil
}

// ListFollowed returns the followed commerce IDs
func (s *followService) ListFollowed(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.followRepo.FindFollowedCommerceIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find followed commerces")
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}

	return ids, nil
}

// GenerateFollowQR generates a QR code for an approved commerce
func (s *followService) GenerateFollowQR(ctx context.Context, commerceID uuid.UUID) ([]byte, error) {
	if _, err := s.commerceRepo.FindCommerceByID(ctx, commerceID); err != nil {
		if errors.Is(err, repository.ErrCommerceNotFound) {
			return nil, domainerrors.ErrCommerceNotFound
		}

		return nil, errors.Wrap(err, "failed to find commerce")
	}

	qrCode, err := s.qrcodeService.GenerateFollowQR(commerceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate follow QR")
	}

	return qrCode, nil
}

// FollowByQR follows the commerce encoded in the scanned QR data
func (s *followService) FollowByQR(ctx context.Context, userID uuid.UUID, qrData string) (*usecase.FollowResult, error) {
	commerceID, err := s.qrcodeService.ParseFollowQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrInvalidQRCode.WithDetails(err.Error())
	}

	return s.Follow(ctx, userID, commerceID)
}
