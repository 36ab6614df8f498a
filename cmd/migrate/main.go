// Command migrate brings the PostgreSQL schema up to date with the persistence models.
package main

import (
	"context"
	"log/slog"
	"time"

	"beautymarket/config"
	logs "beautymarket/internal/infra/log"
	"beautymarket/internal/infra/persistence/model"
	"beautymarket/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	DB     *gorm.DB
	Logger *slog.Logger
}

func main() {
	fx.New(
		fx.NopLogger,
		fx.StartTimeout(5*time.Minute),
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(migrate),
	).Run()
}

// migrate runs after the database hook has verified connectivity.
func migrate(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			models := model.All()
			if err := params.DB.WithContext(ctx).AutoMigrate(models...); err != nil {
				return errors.Wrap(err, "failed to migrate schema")
			}
			params.Logger.Info("Schema migrated", slog.Int("tables", len(models)))

			return errors.WithStack(params.Shutdown())
		},
	})
}
