package handler

import (
	"log/slog"

	deliverycontext "offerfeed/internal/delivery/context"
	"offerfeed/internal/delivery/http/response"
	"offerfeed/internal/domain/entity"
	domainerrors "offerfeed/internal/domain/errors"
	"offerfeed/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FeedHandlerParams holds dependencies for FeedHandler, injected by Fx.
type FeedHandlerParams struct {
	fx.In

	FeedUC usecase.FeedUsecase
	Logger *slog.Logger
}

// FeedHandler serves the composed offers feed.
type FeedHandler struct {
	feedUC usecase.FeedUsecase
	logger *slog.Logger
}

// NewFeedHandler is the constructor for FeedHandler
func NewFeedHandler(params FeedHandlerParams) *FeedHandler {
	return &FeedHandler{
		feedUC: params.FeedUC,
		logger: params.Logger,
	}
}

// FeedRequest is the query of GET /offers.
type FeedRequest struct {
	Category string   `query:"category"`
	Search   string   `query:"search" validate:"max=200"`
	Limit    int      `query:"limit" validate:"min=0"`
	Offset   int      `query:"offset" validate:"min=0"`
	Lat      *float64 `query:"lat" validate:"omitempty,min=-90,max=90"`
	Long     *float64 `query:"long" validate:"omitempty,min=-180,max=180"`
}

// RankedOffer is an offer annotated with the distance of its commerce.
// DistanceKm is omitted when the feed is ordered by recency.
type RankedOffer struct {
	*entity.Offer
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// FeedData is the data payload of GET /offers.
type FeedData struct {
	General    []RankedOffer   `json:"general"`
	Subscribed []*entity.Offer `json:"subscribed"`
}

// ListOffers handles GET /offers
func (h *FeedHandler) ListOffers(c echo.Context) error {
	req, err := bindFeedRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if err := c.Validate(req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := usecase.FeedInput{
		Category: req.Category,
		Search:   req.Search,
		Limit:    req.Limit,
		Offset:   req.Offset,
	}
	switch {
	case req.Lat != nil && req.Long != nil:
		input.Center = &entity.GeoPoint{Lat: *req.Lat, Lng: *req.Long}
	case req.Lat != nil || req.Long != nil:
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("lat and long must be given together"))
	}

	feed, err := h.feedUC.Compose(c.Request().Context(), deliverycontext.GetPrincipal(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	data := FeedData{
		General:    make([]RankedOffer, 0, len(feed.General)),
		Subscribed: feed.Subscribed,
	}
	if data.Subscribed == nil {
		data.Subscribed = []*entity.Offer{}
	}
	for _, row := range feed.General {
		item := RankedOffer{Offer: row.Item}
		if input.Center != nil {
			distance := row.DistanceKm
			item.DistanceKm = &distance
		}
		data.General = append(data.General, item)
	}

	return response.WithMeta(c, data, feed.Meta)
}

func bindFeedRequest(c echo.Context) (*FeedRequest, error) {
	req := &FeedRequest{}

	if err := echo.QueryParamsBinder(c).
		Int("limit", &req.Limit).
		Int("offset", &req.Offset).
		BindError(); err != nil {
		return nil, bindingError(err)
	}

	var err error
	if req.Lat, err = queryFloat(c, "lat", "latitud"); err != nil {
		return nil, err
	}
	if req.Long, err = queryFloat(c, "long", "longitud"); err != nil {
		return nil, err
	}
	req.Category = queryString(c, "category", "categoria")
	req.Search = c.QueryParam("search")

	return req, nil
}
