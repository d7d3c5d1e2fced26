package middleware

import (
	"log/slog"
	"slices"
	"strings"
	"time"

	"hotel-kiosk/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// kioskHeaders are sent by every terminal and must survive any operator
// override of CORS_ALLOW_HEADERS.
var kioskHeaders = []string{"Authorization", "Content-Type", HeaderKioskID, HeaderRequestID}

func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     mergeHeaders(cfg.AllowHeaders, kioskHeaders),
		ExposeHeaders:    mergeHeaders(cfg.ExposeHeaders, []string{HeaderRequestID}),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	// A lone "*" opens the API to any kiosk origin. Browsers refuse
	// credentials with a wildcard, so they are switched off in that case.
	if slices.Equal(cfg.AllowOrigins, []string{"*"}) {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	if corsCfg.MaxAge == 0 {
		corsCfg.MaxAge = time.Hour
	}

	logger.Info("CORS middleware initialized",
		slog.Any("allow_origins", cfg.AllowOrigins),
		slog.Bool("allow_all_origins", corsCfg.AllowAllOrigins))
	return cors.New(corsCfg)
}

func mergeHeaders(configured, required []string) []string {
	out := slices.Clone(configured)
	for _, h := range required {
		if !slices.ContainsFunc(out, func(v string) bool { return strings.EqualFold(v, h) }) {
			out = append(out, h)
		}
	}
	return out
}
