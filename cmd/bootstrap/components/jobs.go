package components

import (
	"context"
	"log/slog"

	"hotel-kiosk/internal/infra/jobs"
	"hotel-kiosk/internal/pkg/config"
	"hotel-kiosk/internal/usecase/commands"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		func(cmds commands.LoyaltyCommands, logger *slog.Logger) *jobs.Scheduler {
			return jobs.NewScheduler(cmds, logger)
		},
	),
	fx.Invoke(startScheduler),
)

func startScheduler(lc fx.Lifecycle, s *jobs.Scheduler, cfg config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return s.Start(cfg.Jobs.LoyaltyExpiryCron)
		},
		OnStop: func(ctx context.Context) error {
			s.Stop(ctx)
			return nil
		},
	})
}
