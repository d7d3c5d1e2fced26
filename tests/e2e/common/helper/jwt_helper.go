//go:build e2e

package helper

import (
	"testing"
	"time"

	"hotel-kiosk/internal/domain/staff"
	"hotel-kiosk/internal/pkg/config"
	"hotel-kiosk/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// StaffTokens mints bearer tokens signed with the application's secret.
type StaffTokens struct {
	cfg config.JWTConfig
}

func NewStaffTokens(cfg config.JWTConfig) *StaffTokens {
	return &StaffTokens{cfg: cfg}
}

func (h *StaffTokens) Token(t *testing.T, role staff.Role) (string, staff.Actor) {
	t.Helper()

	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)

	actor := staff.Actor{ID: uuid.New(), Role: role}
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(actor)
	require.NoError(t, err)
	return token, actor
}

func (h *StaffTokens) ExpiredToken(t *testing.T, role staff.Role) string {
	t.Helper()

	token, err := jwt.NewService(h.cfg.Secret, -time.Hour).GenerateToken(staff.Actor{ID: uuid.New(), Role: role})
	require.NoError(t, err)
	return token
}
