package main

import (
	"context"
	"log/slog"
	"os"

	"beautymarket/config"
	"beautymarket/internal/delivery"
	"beautymarket/internal/delivery/worker"
	"beautymarket/internal/delivery/worker/handler"
	logs "beautymarket/internal/infra/log"
	"beautymarket/internal/infra/metrics"
	"beautymarket/internal/infra/persistence/postgres"
	"beautymarket/internal/infra/scheduler"
	"beautymarket/internal/infra/storage"
	"beautymarket/internal/usecase"
	"beautymarket/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type scheduleJobsParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Scheduler   *scheduler.Scheduler
	AnalyticsUC usecase.AnalyticsUsecase
	AdUC        usecase.AdvertisementUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			scheduleJobs,
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
			storage.New,
			newScheduler,
			fx.Annotate(
				metrics.Handler,
				fx.ResultTags(`name:"metrics"`),
			),
		),
		metrics.Module,
	)
}

func newScheduler(cfg *config.Config, logger *slog.Logger) (*scheduler.Scheduler, error) {
	return scheduler.New(cfg.Analytics.Timezone, logger)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewAnalyticsRepository,
			postgres.NewAdvertisementRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAnalyticsRecorder,
			impl.NewAnalyticsService,
			impl.NewAdvertisementService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
			func(r *metrics.Recorder) handler.EventCounter { return r },
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// scheduleJobs registers the nightly rollup and ad expiry jobs.
func scheduleJobs(params scheduleJobsParams) error {
	jobs := []scheduler.Job{
		{
			Name:     "analytics_rollup",
			Schedule: params.Cfg.Analytics.RollupSchedule,
			Run: func(ctx context.Context) error {
				return params.AnalyticsUC.RollupDay(ctx, params.Scheduler.Yesterday())
			},
		},
		{
			Name:     "ad_expiry",
			Schedule: params.Cfg.Analytics.AdExpirySchedule,
			Run: func(ctx context.Context) error {
				expired, err := params.AdUC.ExpireEnded(ctx)
				if err != nil {
					return err
				}
				params.Logger.Info("Expired advertisements", slog.Int64("count", expired))

				return nil
			},
		},
	}
	for _, job := range jobs {
		if err := params.Scheduler.Add(job); err != nil {
			return err
		}
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			params.Scheduler.Start()
			params.Logger.Info("Scheduler started", slog.Int("jobs", params.Scheduler.Entries()))

			return nil
		},
		OnStop: params.Scheduler.Stop,
	})

	return nil
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
