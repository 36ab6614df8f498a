package main

import (
	"context"
	"log/slog"
	"os"

	"beautymarket/config"
	"beautymarket/internal/delivery"
	"beautymarket/internal/delivery/api"
	"beautymarket/internal/delivery/api/middleware"
	"beautymarket/internal/delivery/api/router/handler"
	"beautymarket/internal/domain/service"
	"beautymarket/internal/infra/auth"
	"beautymarket/internal/infra/auth/google"
	"beautymarket/internal/infra/cache"
	logs "beautymarket/internal/infra/log"
	"beautymarket/internal/infra/metrics"
	"beautymarket/internal/infra/notification"
	"beautymarket/internal/infra/persistence/postgres"
	"beautymarket/internal/infra/pubsub"
	"beautymarket/internal/infra/qrcode"
	"beautymarket/internal/infra/storage"
	"beautymarket/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			cache.New,
			storage.New,
			fx.Annotate(
				metrics.Handler,
				fx.ResultTags(`name:"metrics"`),
			),
		),
		metrics.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewRepositoryFactory,
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewProfileRepository,
			postgres.NewKYCRepository,
			postgres.NewDeviceRepository,
			postgres.NewCategoryRepository,
			postgres.NewProductRepository,
			postgres.NewReviewRepository,
			postgres.NewCartRepository,
			postgres.NewOrderRepository,
			postgres.NewCommunityRepository,
			postgres.NewPrivateMessageRepository,
			postgres.NewAdvertisementRepository,
			postgres.NewAnalyticsRepository,
			postgres.NewAdminActionRepository,
			postgres.NewReportRepository,
			postgres.NewSettingRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewAuthService,
			notification.NewNotificationService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewAccountService,
			impl.NewDeviceService,
			impl.NewUserNotifier,
			impl.NewProductService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewCommunityService,
			impl.NewMessagingService,
			impl.NewAnalyticsTracker,
			// Used by the in-process publisher when no broker is configured.
			impl.NewAnalyticsRecorder,
			impl.NewAnalyticsService,
			impl.NewAdvertisementService,
			impl.NewAdminService,
			impl.NewModerationService,
			impl.NewSettingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewSecurityMiddleware,
			middleware.NewRateLimiter,
			middleware.NewMetricsMiddleware,
			func(r *metrics.Recorder) middleware.RequestObserver { return r },
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewAccountHandler,
			handler.NewDeviceHandler,
			handler.NewProductHandler,
			handler.NewOrderHandler,
			handler.NewCommunityHandler,
			handler.NewAdvertisementHandler,
			handler.NewAdminHandler,
			handler.NewAnalyticsHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
