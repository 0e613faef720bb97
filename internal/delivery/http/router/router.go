// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"offerfeed/config"
	"offerfeed/internal/delivery/http/middleware"
	"offerfeed/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const defaultMetricsPath = "/metrics"

type RouterParams struct {
	fx.In

	DiscoveryHandler *handler.DiscoveryHandler
	FeedHandler      *handler.FeedHandler
	FollowHandler    *handler.FollowHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Registry         *prometheus.Registry
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	discoveryHandler *handler.DiscoveryHandler
	feedHandler      *handler.FeedHandler
	followHandler    *handler.FollowHandler
	authMiddleware   *middleware.AuthMiddleware
	registry         *prometheus.Registry
	metrics          *config.MetricsConfig
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		discoveryHandler: params.DiscoveryHandler,
		feedHandler:      params.FeedHandler,
		followHandler:    params.FollowHandler,
		authMiddleware:   params.AuthMiddleware,
		registry:         params.Registry,
		metrics:          params.Config.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && r.metrics.Enabled && r.registry != nil {
		path := r.metrics.Path
		if path == "" {
			path = defaultMetricsPath
		}
		e.GET(path, echo.WrapHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})))
	}

	// QR images are public so they can be printed and shared
	e.GET("/commerces/:id/follow-qr", r.followHandler.FollowQR)

	// Read endpoints: any caller, personalised when a credential resolves
	readGroup := e.Group("", r.authMiddleware.Identify)
	{
		readGroup.GET("/commerces/nearby", r.discoveryHandler.NearbyCommerces)
		readGroup.GET("/commerces/nearby-with-offers", r.discoveryHandler.NearbyCommercesWithOffers)
		readGroup.GET("/offers", r.feedHandler.ListOffers)
	}

	// Follow edges require a verified user
	followGroup := e.Group("", r.authMiddleware.Authenticate)
	{
		followGroup.POST("/commerces/:id/follow", r.followHandler.Follow)
		followGroup.DELETE("/commerces/:id/follow", r.followHandler.Unfollow)
		followGroup.GET("/me/follows", r.followHandler.ListFollowed)
		followGroup.POST("/me/follows/qr", r.followHandler.FollowByQR)
	}
}
