//go:build unit

package api_test

import (
	"testing"
	"time"

	"hotel-kiosk/internal/domain/staff"
	"hotel-kiosk/internal/handler/middleware"
	"hotel-kiosk/internal/pkg/jwt"
	"hotel-kiosk/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testSecret = "handler-test-secret"

type staffAuth struct {
	jwt        *jwt.Service
	middleware *middleware.AuthMiddleware
}

func newStaffAuth() staffAuth {
	svc := jwt.NewService(testSecret, time.Hour)
	return staffAuth{jwt: svc, middleware: middleware.NewAuthMiddleware(svc, testutil.DiscardLogger())}
}

// token mints a bearer token and returns the actor it carries.
func (a staffAuth) token(t *testing.T, role staff.Role) (string, staff.Actor) {
	t.Helper()
	actor := staff.Actor{ID: uuid.New(), Role: role}
	tok, err := a.jwt.GenerateToken(actor)
	require.NoError(t, err)
	return tok, actor
}
