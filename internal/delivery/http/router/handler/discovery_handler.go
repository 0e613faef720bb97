package handler

import (
	"context"
	"log/slog"

	"offerfeed/config"
	"offerfeed/internal/delivery/http/response"
	"offerfeed/internal/domain/entity"
	"offerfeed/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DiscoveryHandlerParams holds dependencies for DiscoveryHandler, injected by Fx.
type DiscoveryHandlerParams struct {
	fx.In

	DiscoveryUC usecase.DiscoveryUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// DiscoveryHandler serves the distance-ranked commerce endpoints.
type DiscoveryHandler struct {
	discoveryUC  usecase.DiscoveryUsecase
	cacheControl string
	logger       *slog.Logger
}

// NewDiscoveryHandler is the constructor for DiscoveryHandler
func NewDiscoveryHandler(params DiscoveryHandlerParams) *DiscoveryHandler {
	cacheControl := ""
	if params.Config.Discovery != nil {
		cacheControl = params.Config.Discovery.CacheControl
	}

	return &DiscoveryHandler{
		discoveryUC:  params.DiscoveryUC,
		cacheControl: cacheControl,
		logger:       params.Logger,
	}
}

// NearbyRequest is the query of the nearby endpoints.
// lat/long also accept the latitud/longitud aliases.
type NearbyRequest struct {
	Lat      *float64 `query:"lat" validate:"required,min=-90,max=90"`
	Long     *float64 `query:"long" validate:"required,min=-180,max=180"`
	Page     int      `query:"page" validate:"min=1"`
	PageSize int      `query:"page_size" validate:"min=0"`
	Category string   `query:"category"`
}

// RankedCommerce is a commerce annotated with its distance to the query center.
type RankedCommerce struct {
	*entity.Commerce
	DistanceKm float64 `json:"distance_km"`
}

// NearbyCommerces handles GET /commerces/nearby
func (h *DiscoveryHandler) NearbyCommerces(c echo.Context) error {
	return h.nearby(c, h.discoveryUC.NearbyCommerces)
}

// NearbyCommercesWithOffers handles GET /commerces/nearby-with-offers
func (h *DiscoveryHandler) NearbyCommercesWithOffers(c echo.Context) error {
	return h.nearby(c, h.discoveryUC.NearbyCommercesWithOffers)
}

type rankFunc func(ctx context.Context, input usecase.NearbyInput) (*entity.RankedPage[*entity.Commerce], error)

func (h *DiscoveryHandler) nearby(c echo.Context, rank rankFunc) error {
	req, err := bindNearbyRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if err := c.Validate(req); err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := rank(c.Request().Context(), usecase.NearbyInput{
		Center:   entity.GeoPoint{Lat: *req.Lat, Lng: *req.Long},
		Page:     req.Page,
		PageSize: req.PageSize,
		Category: req.Category,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]RankedCommerce, 0, len(page.Items))
	for _, row := range page.Items {
		items = append(items, RankedCommerce{Commerce: row.Item, DistanceKm: row.DistanceKm})
	}

	if h.cacheControl != "" {
		c.Response().Header().Set(echo.HeaderCacheControl, h.cacheControl)
	}

	return response.Paginated(c, items, page.Pagination)
}

func bindNearbyRequest(c echo.Context) (*NearbyRequest, error) {
	req := &NearbyRequest{Page: 1}

	if err := echo.QueryParamsBinder(c).
		Int("page", &req.Page).
		Int("page_size", &req.PageSize).
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

	return req, nil
}
