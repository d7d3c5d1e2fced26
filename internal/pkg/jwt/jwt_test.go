//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"hotel-kiosk/internal/domain/staff"
	"hotel-kiosk/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	actor := staff.Actor{ID: uuid.New(), Role: staff.RoleManager}

	token, err := svc.GenerateToken(actor)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	got, err := claims.Actor()
	require.NoError(t, err)
	assert.Equal(t, actor, got)
}

func TestService_Rejects(t *testing.T) {
	actor := staff.Actor{ID: uuid.New(), Role: staff.RoleAdmin}

	t.Run("unknown role is never signed", func(t *testing.T) {
		_, err := jwt.NewService("secret", time.Hour).GenerateToken(staff.Actor{ID: uuid.New(), Role: "front_desk"})
		require.ErrorIs(t, err, staff.ErrInvalidRole)
	})

	t.Run("expired", func(t *testing.T) {
		svc := jwt.NewService("secret", -time.Minute)
		token, err := svc.GenerateToken(actor)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("other secret", func(t *testing.T) {
		token, err := jwt.NewService("secret", time.Hour).GenerateToken(actor)
		require.NoError(t, err)

		_, err = jwt.NewService("different", time.Hour).ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwt.NewService("secret", time.Hour).ValidateToken("not-a-token")
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
