package bootstrap

import (
	"hotel-kiosk/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.NotifyModule,
	components.UseCaseModule,
	components.JobsModule,
	components.HandlerModule,
)
