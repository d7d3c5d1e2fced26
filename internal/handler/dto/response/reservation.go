package response

import (
	"hotel-kiosk/internal/pkg/money"
	"hotel-kiosk/internal/usecase/commands"
	"hotel-kiosk/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	PaymentID    uuid.UUID                `json:"payment_id"`
	Amount       money.Money              `json:"amount"`
	Method       string                   `json:"method"`
	Outstanding  money.Money              `json:"outstanding_balance"`
	PointsEarned int64                    `json:"points_earned"`
	Reservation  *queries.ReservationView `json:"reservation"`
}

func FromPaymentResult(r *commands.PaymentResult) *PaymentResponse {
	return &PaymentResponse{
		PaymentID:    r.Payment.ID,
		Amount:       r.Payment.Amount,
		Method:       r.Payment.Method.String(),
		Outstanding:  r.Outstanding,
		PointsEarned: r.PointsEarned,
		Reservation:  r.Reservation,
	}
}

type AvailabilityResponse struct {
	RoomType  string             `json:"room_type"`
	CheckIn   string             `json:"check_in"`
	CheckOut  string             `json:"check_out"`
	Available int                `json:"available"`
	Rooms     []queries.RoomView `json:"rooms"`
}

func FromAvailableRooms(roomType, checkIn, checkOut string, rooms []queries.RoomView) *AvailabilityResponse {
	if rooms == nil {
		rooms = []queries.RoomView{}
	}
	return &AvailabilityResponse{
		RoomType:  roomType,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Available: len(rooms),
		Rooms:     rooms,
	}
}
