package components

import (
	"hotel-kiosk/internal/handler"
	"hotel-kiosk/internal/handler/api"
	"hotel-kiosk/internal/handler/middleware"
	"hotel-kiosk/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewCatalogHandler,
		api.NewLoyaltyHandler,
		api.NewRoomHandler,
		func(s *jwt.Service) middleware.TokenValidator { return s },
		middleware.NewAuthMiddleware,
		func(
			reservation *api.ReservationHandler,
			catalog *api.CatalogHandler,
			loyalty *api.LoyaltyHandler,
			room *api.RoomHandler,
		) handler.Handlers {
			return handler.Handlers{Reservation: reservation, Catalog: catalog, Loyalty: loyalty, Room: room}
		},
	),
	fx.Invoke(handler.NewRouter),
)
