package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"hotel-kiosk/internal/domain/staff"
	"hotel-kiosk/internal/handler/httperr"
	"hotel-kiosk/internal/pkg/errs"
	"hotel-kiosk/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
	logger         *slog.Logger
}

const ctxStaffActorKey = "staff_actor"

func NewAuthMiddleware(tokenValidator TokenValidator, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		logger:         logger,
	}
}

// RequireStaff rejects requests without a valid staff bearer token.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrStaffRequired, "Access token required", nil)
			return
		}

		actor, err := m.authenticate(token)
		if err != nil {
			m.logger.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		setActor(c, actor)
		c.Next()
	}
}

// OptionalStaff authenticates the request if a token is present, but does not abort on failure.
func (m *AuthMiddleware) OptionalStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		actor, err := m.authenticate(token)
		if err != nil {
			m.logger.Debug("ignoring invalid optional token", "error", err.Error())
			c.Next()
			return
		}

		setActor(c, actor)
		c.Next()
	}
}

func (m *AuthMiddleware) authenticate(token string) (staff.Actor, error) {
	claims, err := m.tokenValidator.ValidateToken(token)
	if err != nil {
		return staff.Actor{}, err
	}
	return claims.Actor()
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setActor(c *gin.Context, actor staff.Actor) {
	c.Set(ctxStaffActorKey, actor)
}

// GetActor returns the authenticated staff member, if any.
func GetActor(c *gin.Context) (staff.Actor, bool) {
	v, exists := c.Get(ctxStaffActorKey)
	if !exists {
		return staff.Actor{}, false
	}
	actor, ok := v.(staff.Actor)
	return actor, ok
}
