package bootstrap

import (
	"context"
	"log/slog"

	"hotel-kiosk/internal/infra/db"
	"hotel-kiosk/internal/infra/memstore"
	"hotel-kiosk/internal/infra/seed"
	"hotel-kiosk/internal/infra/sqlstore"
	"hotel-kiosk/internal/infra/uow"
	"hotel-kiosk/internal/pkg/config"
	"hotel-kiosk/internal/usecase/shared"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewUnitOfWork,
	),
	fx.Invoke(SeedRooms),
)

// NewUnitOfWork picks the store named by STORE_DRIVER.
func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.UnitOfWork, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		logger.Warn("using in-memory store, data is lost on restart")
		return memstore.New(logger), nil
	}

	pool, cleanup, err := db.Connect(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return uow.NewPostgresUoW(pool, sqlstore.New(), logger), nil
}

func SeedRooms(lc fx.Lifecycle, cfg config.Config, u shared.UnitOfWork, logger *slog.Logger) {
	if !cfg.Store.SeedRooms {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			rooms, err := seed.DefaultRooms()
			if err != nil {
				return err
			}
			_, err = seed.Rooms(ctx, u, rooms, logger)
			return err
		},
	})
}
