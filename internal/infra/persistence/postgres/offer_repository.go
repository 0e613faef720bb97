package postgres

import (
	"context"
	"strings"

	"offerfeed/internal/domain/entity"
	"offerfeed/internal/domain/repository"
	"offerfeed/internal/infra/persistence/model"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// offerRow is one row of the offer listing query, joined to its commerce.
type offerRow struct {
	model.OfferModel
	CommerceName       string
	CommerceLatitude   float64
	CommerceLongitude  float64
	CommerceCategories pq.StringArray
	DistanceKm         float64
	TotalCount         int64
}

// offerRepository implements the repository.OfferRepository interface.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{
		db: db,
	}
}

// ListOffers lists active offers of approved commerces in one statement with a window total.
func (repo *offerRepository) ListOffers(ctx context.Context, query repository.OfferQuery) ([]entity.RankedResult[*entity.Offer], error) {
	if query.CommerceIDs != nil && len(query.CommerceIDs) == 0 {
		return []entity.RankedResult[*entity.Offer]{}, nil
	}

	var sql strings.Builder
	var args []any

	sql.WriteString(`SELECT o.id, o.commerce_id, o.title, o.description, o.image_url, o.starts_at, o.ends_at,
	o.required_tier, o.created_at,
	c.name AS commerce_name, c.latitude AS commerce_latitude, c.longitude AS commerce_longitude,
	c.categories AS commerce_categories,
	`)
	if query.Center != nil {
		sql.WriteString(`ST_Distance(c.location, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography) / 1000.0`)
		args = append(args, query.Center.Lng, query.Center.Lat)
	} else {
		sql.WriteString(`0`)
	}
	sql.WriteString(` AS distance_km,
	COUNT(*) OVER() AS total_count
FROM offers o
JOIN commerces c ON c.id = o.commerce_id
WHERE o.deleted_at IS NULL AND c.deleted_at IS NULL AND c.is_approved = TRUE
	AND o.starts_at <= ? AND o.ends_at >= ?`)
	args = append(args, query.Now, query.Now)

	if query.Filter.Category != "" {
		sql.WriteString(` AND c.categories @> ?`)
		args = append(args, pq.Array([]string{query.Filter.Category}))
	}

	if query.Filter.HasSearch() {
		if len(query.Filter.MatchedCommerceIDs) > 0 {
			sql.WriteString(` AND (o.title ILIKE ? OR o.commerce_id IN ?)`)
			args = append(args, containsPattern(query.Filter.TitleTerm), query.Filter.MatchedCommerceIDs)
		} else {
			sql.WriteString(` AND o.title ILIKE ?`)
			args = append(args, containsPattern(query.Filter.TitleTerm))
		}
	}

	if len(query.CommerceIDs) > 0 {
		sql.WriteString(` AND o.commerce_id IN ?`)
		args = append(args, query.CommerceIDs)
	}

	if query.Center != nil {
		sql.WriteString(`
ORDER BY distance_km ASC, o.id ASC`)
	} else {
		sql.WriteString(`
ORDER BY o.created_at DESC, o.id ASC`)
	}

	sql.WriteString(`
LIMIT ? OFFSET ?`)
	args = append(args, query.Limit, query.Offset)

	var rows []offerRow
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Raw(sql.String(), args...).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	results := make([]entity.RankedResult[*entity.Offer], 0, len(rows))
	for i := range rows {
		results = append(results, entity.RankedResult[*entity.Offer]{
			Item:       toOfferDomain(&rows[i]),
			DistanceKm: max(rows[i].DistanceKm, 0),
			TotalCount: rows[i].TotalCount,
		})
	}

	return results, nil
}

// --- Mapper Functions ---

// toOfferDomain converts a joined offer row to a domain Offer entity.
func toOfferDomain(data *offerRow) *entity.Offer {
	if data == nil {
		return nil
	}

	categories := []string(data.CommerceCategories)
	if categories == nil {
		categories = []string{}
	}

	return &entity.Offer{
		ID:           data.ID,
		CommerceID:   data.CommerceID,
		Title:        data.Title,
		Description:  data.Description,
		ImageURL:     data.ImageURL,
		StartsAt:     data.StartsAt,
		EndsAt:       data.EndsAt,
		RequiredTier: data.RequiredTier,
		CreatedAt:    data.CreatedAt,
		Commerce: &entity.CommerceSummary{
			ID:         data.CommerceID,
			Name:       data.CommerceName,
			Location:   entity.GeoPoint{Lat: data.CommerceLatitude, Lng: data.CommerceLongitude},
			Categories: categories,
		},
	}
}
