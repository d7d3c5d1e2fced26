package handler

import (
	"net/http"

	"hotel-kiosk/internal/handler/api"
	"hotel-kiosk/internal/handler/middleware"
	"hotel-kiosk/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Reservation *api.ReservationHandler
	Catalog     *api.CatalogHandler
	Loyalty     *api.LoyaltyHandler
	Room        *api.RoomHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, requestLogger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, requestLogger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, requestLogger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(requestLogger.Recovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, requestLogger.GetSlogLogger()))
	engine.Use(requestLogger.LoggingMiddleware())
	engine.Use(requestLogger.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	staffOnly := []gin.HandlerFunc{authMiddleware.RequireStaff()}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/catalog", Handler: h.Catalog.Catalog},
			{Method: http.MethodGet, Path: "/availability", Handler: h.Catalog.Availability},
			{Method: http.MethodPost, Path: "/quotes", Handler: h.Catalog.Quote},
		})

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create, Mw: []gin.HandlerFunc{authMiddleware.OptionalStaff()}},
				{Method: http.MethodGet, Path: "/:confirmation", Handler: h.Reservation.Get},
				{Method: http.MethodPost, Path: "/:confirmation/check-in", Handler: h.Reservation.CheckIn},
				{Method: http.MethodPost, Path: "/:confirmation/check-out", Handler: h.Reservation.CheckOut},
				{Method: http.MethodPost, Path: "/:confirmation/cancel", Handler: h.Reservation.Cancel},
				{Method: http.MethodPost, Path: "/:confirmation/payments", Handler: h.Reservation.RecordPayment},
				{Method: http.MethodPost, Path: "/:confirmation/discount", Handler: h.Reservation.ApplyDiscount, Mw: staffOnly},
				{Method: http.MethodPost, Path: "/:confirmation/no-show", Handler: h.Reservation.MarkNoShow, Mw: staffOnly},
			})
		}

		accounts := apiGroup.Group("/loyalty/accounts")
		{
			addRoutes(accounts, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Loyalty.Enroll},
				{Method: http.MethodGet, Path: "/:number", Handler: h.Loyalty.Get},
				{Method: http.MethodGet, Path: "/:number/transactions", Handler: h.Loyalty.Transactions},
				{Method: http.MethodPost, Path: "/:number/adjustments", Handler: h.Loyalty.Adjust, Mw: staffOnly},
				{Method: http.MethodPost, Path: "/:number/redemptions", Handler: h.Loyalty.Redeem, Mw: staffOnly},
			})
		}

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Room.List},
				{Method: http.MethodPost, Path: "", Handler: h.Room.Create, Mw: staffOnly},
				{Method: http.MethodPatch, Path: "/:number/status", Handler: h.Room.ChangeStatus, Mw: staffOnly},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
