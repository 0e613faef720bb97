// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"offerfeed/internal/domain/entity"
	"offerfeed/internal/domain/repository"
	"offerfeed/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// commerceColumns is the commerce projection shared by ranked queries.
const commerceColumns = `c.id, c.owner_id, c.name, c.address, c.phone, c.opening_hours, c.image_url,
	c.latitude, c.longitude, c.categories, c.is_approved, c.created_at, c.updated_at`

// rankedCommerceRow is one row of the nearby ranking query.
type rankedCommerceRow struct {
	model.CommerceModel
	DistanceKm float64
	TotalCount int64
}

// commerceRepository implements the repository.CommerceRepository interface.
type commerceRepository struct {
	db *gorm.DB
}

// NewCommerceRepository is the constructor for commerceRepository.
func NewCommerceRepository(db *gorm.DB) repository.CommerceRepository {
	return &commerceRepository{
		db: db,
	}
}

// RankNearby ranks approved commerces by geodesic distance in a single statement.
// The window count is evaluated over the filtered set before LIMIT/OFFSET apply.
func (repo *commerceRepository) RankNearby(ctx context.Context, query repository.NearbyQuery) ([]entity.RankedResult[*entity.Commerce], error) {
	var sql strings.Builder
	args := []any{query.Center.Lng, query.Center.Lat}

	sql.WriteString(`SELECT ` + commerceColumns + `,
	ST_Distance(c.location, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography) / 1000.0 AS distance_km,
	COUNT(*) OVER() AS total_count
FROM commerces c
WHERE c.is_approved = TRUE AND c.deleted_at IS NULL`)

	if query.Category != "" {
		sql.WriteString(` AND c.categories @> ?`)
		args = append(args, pq.Array([]string{query.Category}))
	}

	if query.WithActiveOffers {
		sql.WriteString(` AND EXISTS (
		SELECT 1 FROM offers o
		WHERE o.commerce_id = c.id AND o.deleted_at IS NULL AND o.starts_at <= ? AND o.ends_at >= ?
	)`)
		args = append(args, query.Now, query.Now)
	}

	sql.WriteString(`
ORDER BY distance_km ASC, c.id ASC
LIMIT ? OFFSET ?`)
	args = append(args, query.PageSize, query.Offset())

	var rows []rankedCommerceRow
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Raw(sql.String(), args...).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to rank nearby commerces")
	}

	results := make([]entity.RankedResult[*entity.Commerce], 0, len(rows))
	for i := range rows {
		results = append(results, entity.RankedResult[*entity.Commerce]{
			Item:       toCommerceDomain(&rows[i].CommerceModel),
			DistanceKm: max(rows[i].DistanceKm, 0),
			TotalCount: rows[i].TotalCount,
		})
	}

	return results, nil
}

// FindCommerceIDsByName matches approved commerce names case-insensitively.
func (repo *commerceRepository) FindCommerceIDsByName(ctx context.Context, term string) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.CommerceModel{}).
		Where("is_approved = ? AND name ILIKE ?", true, containsPattern(term)).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find commerce ids by name")
	}

	return ids, nil
}

// FindCommerceByID retrieves an approved commerce by its unique ID.
func (repo *commerceRepository) FindCommerceByID(ctx context.Context, id uuid.UUID) (*entity.Commerce, error) {
	var commerceM model.CommerceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND is_approved = ?", id, true).
		First(&commerceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommerceNotFound
		}

		return nil, errors.Wrap(err, "failed to find commerce by ID")
	}

	return toCommerceDomain(&commerceM), nil
}

// containsPattern escapes LIKE wildcards so user input only matches literally.
func containsPattern(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return "%" + replacer.Replace(term) + "%"
}

// --- Mapper Functions ---

// toCommerceDomain converts a GORM CommerceModel to a domain Commerce entity.
func toCommerceDomain(data *model.CommerceModel) *entity.Commerce {
	if data == nil {
		return nil
	}

	categories := []string(data.Categories)
	if categories == nil {
		categories = []string{}
	}

	return &entity.Commerce{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		Name:         data.Name,
		Address:      data.Address,
		Phone:        data.Phone,
		OpeningHours: data.OpeningHours,
		ImageURL:     data.ImageURL,
		Location:     entity.GeoPoint{Lat: data.Latitude, Lng: data.Longitude},
		Categories:   categories,
		IsApproved:   data.IsApproved,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
