package postgres

import (
	"context"

	"offerfeed/internal/domain/entity"
	domainerrors "offerfeed/internal/domain/errors"
	"offerfeed/internal/domain/repository"
	"offerfeed/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// followRepository implements the repository.FollowRepository interface.
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository is the constructor for followRepository.
func NewFollowRepository(db *gorm.DB) repository.FollowRepository {
	return &followRepository{
		db: db,
	}
}

// CreateFollow inserts the edge. A conflicting edge leaves the row untouched and reports ErrDuplicateFollow.
func (repo *followRepository) CreateFollow(ctx context.Context, follow *entity.Follow) error {
	followM := fromFollowDomain(follow)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "commerce_id"}},
			DoNothing: true,
		}).
		Create(followM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateFollow
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCommerceNotFound.WrapMessage("invalid commerce reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to create follow")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDuplicateFollow
	}

	follow.CreatedAt = followM.CreatedAt

	return nil
}

// FindFollow retrieves the edge for a user and commerce.
func (repo *followRepository) FindFollow(ctx context.Context, userID, commerceID uuid.UUID) (*entity.Follow, error) {
	var followM model.FollowModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND commerce_id = ?", userID, commerceID).
		First(&followM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFollowNotFound
		}

		return nil, errors.Wrap(err, "failed to find follow")
	}

	return toFollowDomain(&followM), nil
}

// DeleteFollow hard-deletes the edge.
func (repo *followRepository) DeleteFollow(ctx context.Context, userID, commerceID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND commerce_id = ?", userID, commerceID).
		Delete(&model.FollowModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete follow")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFollowNotFound
	}

	return nil
}

// FindFollowedCommerceIDs lists followed commerce IDs, most recent first.
func (repo *followRepository) FindFollowedCommerceIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.FollowModel{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("commerce_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find followed commerces")
	}

	return ids, nil
}

// --- Mapper Functions ---

// toFollowDomain converts a GORM FollowModel to a domain Follow entity.
func toFollowDomain(data *model.FollowModel) *entity.Follow {
	if data == nil {
		return nil
	}

	return &entity.Follow{
		ID:                   data.ID,
		UserID:               data.UserID,
		CommerceID:           data.CommerceID,
		NotificationsEnabled: data.NotificationsEnabled,
		CreatedAt:            data.CreatedAt,
	}
}

// fromFollowDomain converts a domain Follow entity to a GORM FollowModel.
func fromFollowDomain(data *entity.Follow) *model.FollowModel {
	if data == nil {
		return nil
	}

	id := data.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &model.FollowModel{
		ID:                   id,
		UserID:               data.UserID,
		CommerceID:           data.CommerceID,
		NotificationsEnabled: data.NotificationsEnabled,
		CreatedAt:            data.CreatedAt,
	}
}
