package impl

import (
	"context"
	"strings"

	"offerfeed/internal/domain/repository"
	"offerfeed/internal/errors"
)

// OfferFilterBuilder turns raw category and search input into an OfferFilter.
type OfferFilterBuilder struct {
	commerceRepo  repository.CommerceRepository
	allCategories string
}

// NewOfferFilterBuilder creates a builder. allCategories is the sentinel meaning no category filter.
func NewOfferFilterBuilder(commerceRepo repository.CommerceRepository, allCategories string) *OfferFilterBuilder {
	return &OfferFilterBuilder{
		commerceRepo:  commerceRepo,
		allCategories: allCategories,
	}
}

// Build resolves the search term against commerce names once, so both feed lists
// share the same predicate. Without a name match the search falls back to titles only.
func (b *OfferFilterBuilder) Build(ctx context.Context, category, search string) (repository.OfferFilter, error) {
	filter := repository.OfferFilter{
		Category: normalizeCategory(category, b.allCategories),
	}

	term := strings.TrimSpace(search)
	if term == "" {
		return filter, nil
	}

	ids, err := b.commerceRepo.FindCommerceIDsByName(ctx, term)
	if err != nil {
		return repository.OfferFilter{}, errors.Wrap(err, "failed to match commerce names")
	}

	filter.TitleTerm = term
	if len(ids) > 0 {
		filter.MatchedCommerceIDs = ids
	}

	return filter, nil
}

// normalizeCategory maps the empty value and the all-categories sentinel to no filter.
func normalizeCategory(category, allCategories string) string {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, allCategories) {
		return ""
	}

	return category
}
