package main

import (
	"context"
	"log/slog"
	"os"

	"offerfeed/config"
	"offerfeed/internal/delivery"
	"offerfeed/internal/delivery/http"
	"offerfeed/internal/delivery/http/middleware"
	"offerfeed/internal/delivery/http/router/handler"
	"offerfeed/internal/domain/service"
	"offerfeed/internal/infra/auth"
	"offerfeed/internal/infra/cache"
	logs "offerfeed/internal/infra/log"
	"offerfeed/internal/infra/metrics"
	"offerfeed/internal/infra/persistence"
	"offerfeed/internal/infra/persistence/postgres"
	"offerfeed/internal/infra/qrcode"
	"offerfeed/internal/infra/session"
	"offerfeed/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.New,
		metrics.NewRegistry,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			session.NewSessionService,
			metrics.NewServiceRecorder,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service from the defaulted config
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewDiscoveryService,
			impl.NewFeedService,
			impl.NewFollowService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDiscoveryHandler,
			handler.NewFeedHandler,
			handler.NewFollowHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
