package components

import (
	"context"
	"log/slog"

	"hotel-kiosk/internal/infra/notify"
	"hotel-kiosk/internal/pkg/config"
	"hotel-kiosk/internal/pkg/errs"
	"hotel-kiosk/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewOptionalPublisher,
		NewAvailabilityNotifier,
	),
)

// OptionalPublisher carries the Redis listener, nil when Redis is disabled.
type OptionalPublisher struct {
	Listener shared.AvailabilityListener
}

func NewOptionalPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*OptionalPublisher, error) {
	if !cfg.Redis.Enabled {
		return &OptionalPublisher{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errs.Wrapf(err, "connect to redis at %s", cfg.Redis.Addr)
			}
			logger.Info("redis connected", slog.String("addr", cfg.Redis.Addr))
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return &OptionalPublisher{Listener: notify.NewRedisPublisher(client, cfg.Redis.Channel, logger)}, nil
}

// NewAvailabilityNotifier always logs changes and also publishes them when
// a Redis publisher is configured.
func NewAvailabilityNotifier(logger *slog.Logger, publisher *OptionalPublisher) *shared.AvailabilityNotifier {
	n := shared.NewAvailabilityNotifier(logger, shared.NewLogListener(logger))
	if publisher.Listener != nil {
		n.Register(publisher.Listener)
	}
	return n
}
