package httperr

import (
	"errors"
	"net/http"

	"hotel-kiosk/internal/domain/catalog"
	"hotel-kiosk/internal/domain/guest"
	"hotel-kiosk/internal/domain/loyalty"
	"hotel-kiosk/internal/domain/pricing"
	"hotel-kiosk/internal/domain/reservation"
	"hotel-kiosk/internal/domain/room"
	"hotel-kiosk/internal/domain/staff"
	"hotel-kiosk/internal/pkg/errs"
	"hotel-kiosk/internal/pkg/money"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target error
	status int
}

// First match wins, so more specific errors come before the ones they are
// marked with.
var statusTable = []mapping{
	{errs.ErrReservationNotFound, http.StatusNotFound},
	{errs.ErrRoomNotFound, http.StatusNotFound},
	{errs.ErrLoyaltyAccountNotFound, http.StatusNotFound},
	{errs.ErrGuestNotFound, http.StatusNotFound},

	{errs.ErrStaffRequired, http.StatusUnauthorized},
	{staff.ErrDiscountExceedsCap, http.StatusForbidden},
	{staff.ErrInsufficientRole, http.StatusForbidden},

	{reservation.ErrInsufficientCapacity, http.StatusConflict},
	{reservation.ErrIllegalStatusTransition, http.StatusConflict},
	{reservation.ErrOutstandingBalance, http.StatusConflict},
	{reservation.ErrPaymentNotAccepted, http.StatusConflict},
	{reservation.ErrDuplicateConfirmationNumber, http.StatusConflict},
	{room.ErrIllegalStatusTransition, http.StatusConflict},
	{loyalty.ErrAlreadyEnrolled, http.StatusConflict},
	{errs.ErrRoomNumberTaken, http.StatusConflict},

	{reservation.ErrOccupancyExceeded, http.StatusUnprocessableEntity},
	{reservation.ErrGuestCountMismatch, http.StatusUnprocessableEntity},
	{reservation.ErrNoAdults, http.StatusUnprocessableEntity},
	{loyalty.ErrInsufficientLoyaltyPoints, http.StatusUnprocessableEntity},
	{loyalty.ErrRedemptionBelowMinimum, http.StatusUnprocessableEntity},
	{loyalty.ErrNegativeBalance, http.StatusUnprocessableEntity},
	{errs.ErrLoyaltyAccountRequired, http.StatusUnprocessableEntity},
	{errs.ErrLoyaltyAccountMismatch, http.StatusUnprocessableEntity},

	{reservation.ErrInvalidDateRange, http.StatusBadRequest},
	{reservation.ErrInvalidConfirmationNumber, http.StatusBadRequest},
	{reservation.ErrInvalidPaymentMethod, http.StatusBadRequest},
	{reservation.ErrInvalidPaymentAmount, http.StatusBadRequest},
	{reservation.ErrInvalidStatus, http.StatusBadRequest},
	{room.ErrInvalidStatus, http.StatusBadRequest},
	{room.ErrInvalidRoomNumber, http.StatusBadRequest},
	{room.ErrNegativePriceOverride, http.StatusBadRequest},
	{catalog.ErrUnknownRoomType, http.StatusBadRequest},
	{catalog.ErrUnknownAddOnType, http.StatusBadRequest},
	{catalog.ErrInvalidQuantity, http.StatusBadRequest},
	{catalog.ErrInvalidNightsCount, http.StatusBadRequest},
	{pricing.ErrNoRoomsSelected, http.StatusBadRequest},
	{pricing.ErrInvalidNights, http.StatusBadRequest},
	{pricing.ErrInvalidRoomQuantity, http.StatusBadRequest},
	{guest.ErrInvalidEmail, http.StatusBadRequest},
	{guest.ErrInvalidName, http.StatusBadRequest},
	{guest.ErrInvalidPhone, http.StatusBadRequest},
	{loyalty.ErrInvalidLoyaltyNumber, http.StatusBadRequest},
	{loyalty.ErrInvalidPoints, http.StatusBadRequest},
	{staff.ErrNegativeDiscountRate, http.StatusBadRequest},
	{staff.ErrInvalidRole, http.StatusBadRequest},
	{money.ErrNegativeAmount, http.StatusBadRequest},

	{errs.ErrConfirmationNumbersExhausted, http.StatusServiceUnavailable},
	{errs.ErrLoyaltyNumbersExhausted, http.StatusServiceUnavailable},
}

// Classify maps a use case error to a status and a client-safe message.
// Anything unrecognised is an internal error and its text is not exposed.
func Classify(err error) (int, string) {
	for _, m := range statusTable {
		if errors.Is(err, m.target) {
			return m.status, m.target.Error()
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// AbortWithDomainError aborts with the status Classify picks for err.
func AbortWithDomainError(c *gin.Context, err error) {
	status, msg := Classify(err)
	AbortWithError(c, status, err, msg, nil)
}
