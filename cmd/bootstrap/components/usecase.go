package components

import (
	"hotel-kiosk/internal/domain/pricing"
	"hotel-kiosk/internal/domain/reservation"
	"hotel-kiosk/internal/pkg/clock"
	"hotel-kiosk/internal/usecase/commands"
	"hotel-kiosk/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	pricing.NewEngine,
	fx.Annotate(
		reservation.NewRandomConfirmationGenerator,
		fx.As(new(reservation.ConfirmationGenerator)),
	),
	reservation.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewLoyaltyUseCase,
		commands.NewRoomUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewHotelQueries,
	),
)
