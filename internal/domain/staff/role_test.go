//go:build unit

package staff_test

import (
	"testing"

	"hotel-kiosk/internal/domain/staff"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole(t *testing.T) {
	t.Run("parses known roles", func(t *testing.T) {
		r, err := staff.NewRole("manager")
		require.NoError(t, err)
		assert.Equal(t, staff.RoleManager, r)

		_, err = staff.NewRole("clerk")
		require.ErrorIs(t, err, staff.ErrInvalidRole)
	})

	t.Run("discount caps by role", func(t *testing.T) {
		cases := []struct {
			name  string
			role  staff.Role
			pct   int64
			errIs error
		}{
			{name: "admin at cap", role: staff.RoleAdmin, pct: 15},
			{name: "admin over cap", role: staff.RoleAdmin, pct: 16, errIs: staff.ErrDiscountExceedsCap},
			{name: "manager at cap", role: staff.RoleManager, pct: 30},
			{name: "manager over cap", role: staff.RoleManager, pct: 31, errIs: staff.ErrDiscountExceedsCap},
			{name: "negative", role: staff.RoleManager, pct: -1, errIs: staff.ErrNegativeDiscountRate},
			{name: "unknown role", role: "guest", pct: 1, errIs: staff.ErrInvalidRole},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				err := staff.CheckDiscount(c.role, decimal.NewFromInt(c.pct))
				if c.errIs != nil {
					require.ErrorIs(t, err, c.errIs)
					return
				}
				require.NoError(t, err)
			})
		}
	})
}
