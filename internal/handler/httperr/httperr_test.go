//go:build unit

package httperr_test

import (
	"net/http"
	"testing"

	"hotel-kiosk/internal/domain/catalog"
	"hotel-kiosk/internal/domain/loyalty"
	"hotel-kiosk/internal/domain/reservation"
	"hotel-kiosk/internal/domain/staff"
	"hotel-kiosk/internal/handler/httperr"
	"hotel-kiosk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "not found",
			err:        errs.Wrap(errs.ErrReservationNotFound, "check in"),
			wantStatus: http.StatusNotFound,
			wantMsg:    "reservation not found",
		},
		{
			name:       "capacity race lost",
			err:        errs.Mark(errs.New("exclusion violated"), reservation.ErrInsufficientCapacity),
			wantStatus: http.StatusConflict,
			wantMsg:    "insufficient capacity",
		},
		{
			name:       "discount over cap",
			err:        staff.ErrDiscountExceedsCap,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "outstanding balance",
			err:        reservation.ErrOutstandingBalance,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "occupancy",
			err:        reservation.ErrOccupancyExceeded,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "redemption below minimum",
			err:        loyalty.ErrRedemptionBelowMinimum,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "unknown room type",
			err:        catalog.ErrUnknownRoomType,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "storage failure hides detail",
			err:        errs.Mark(errs.New("connection reset by peer"), errs.ErrDatabaseOperationFailed),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := httperr.Classify(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			if tc.wantMsg != "" {
				assert.Equal(t, tc.wantMsg, msg)
			}
		})
	}
}
