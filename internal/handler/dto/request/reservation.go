package request

import (
	"strings"
	"time"

	"hotel-kiosk/internal/domain/catalog"
	"hotel-kiosk/internal/domain/guest"
	"hotel-kiosk/internal/domain/reservation"
	"hotel-kiosk/internal/domain/staff"
	"hotel-kiosk/internal/pkg/errs"
	"hotel-kiosk/internal/pkg/money"
	"hotel-kiosk/internal/pkg/patch"
	"hotel-kiosk/internal/usecase/commands"
	"hotel-kiosk/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type GuestRequest struct {
	Name  string `json:"name" binding:"required,max=200"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"omitempty,max=32"`
}

func (g GuestRequest) ToDetails() guest.Details {
	return guest.Details{
		Name:  strings.TrimSpace(g.Name),
		Email: strings.TrimSpace(g.Email),
		Phone: strings.TrimSpace(g.Phone),
	}
}

type RoomRequest struct {
	RoomType string `json:"room_type" binding:"required"`
	Guests   int    `json:"guests" binding:"required,min=1"`
}

type AddOnRequest struct {
	AddOn    string `json:"add_on" binding:"required"`
	Quantity *int   `json:"quantity" binding:"omitempty,min=1"`
}

// StayRequest is shared by quotes and bookings.
type StayRequest struct {
	CheckIn       string         `json:"check_in" binding:"required"`
	CheckOut      string         `json:"check_out" binding:"required"`
	Adults        int            `json:"adults" binding:"required,min=1"`
	Children      *int           `json:"children" binding:"omitempty,min=0"`
	Rooms         []RoomRequest  `json:"rooms" binding:"required,min=1,dive"`
	AddOns        []AddOnRequest `json:"add_ons" binding:"omitempty,dive"`
	LoyaltyNumber string         `json:"loyalty_number" binding:"omitempty"`
	RedeemPoints  *int64         `json:"redeem_points" binding:"omitempty,min=0"`
}

type parsedStay struct {
	checkIn, checkOut time.Time
	rooms             []reservation.RoomRequest
	addOns            []reservation.AddOnRequest
}

func (s StayRequest) parse() (parsedStay, error) {
	checkIn, err := ParseDate(s.CheckIn)
	if err != nil {
		return parsedStay{}, err
	}
	checkOut, err := ParseDate(s.CheckOut)
	if err != nil {
		return parsedStay{}, err
	}

	out := parsedStay{checkIn: checkIn, checkOut: checkOut}
	for _, r := range s.Rooms {
		out.rooms = append(out.rooms, reservation.RoomRequest{
			RoomType: catalog.RoomTypeCode(strings.ToUpper(r.RoomType)),
			Guests:   r.Guests,
		})
	}
	for _, a := range s.AddOns {
		out.addOns = append(out.addOns, reservation.AddOnRequest{
			AddOn:    catalog.AddOnCode(strings.ToUpper(a.AddOn)),
			Quantity: patch.Coalesce(a.Quantity, 0),
		})
	}
	return out, nil
}

func (s StayRequest) ToQuery() (queries.QuoteRequest, error) {
	p, err := s.parse()
	if err != nil {
		return queries.QuoteRequest{}, err
	}
	return queries.QuoteRequest{
		CheckIn:       p.checkIn,
		CheckOut:      p.checkOut,
		Adults:        s.Adults,
		Children:      patch.Coalesce(s.Children, 0),
		Rooms:         p.rooms,
		AddOns:        p.addOns,
		LoyaltyNumber: strings.TrimSpace(s.LoyaltyNumber),
		RedeemPoints:  patch.Coalesce(s.RedeemPoints, 0),
	}, nil
}

type CreateReservationRequest struct {
	StayRequest
	Guest GuestRequest `json:"guest" binding:"required"`
	// DiscountPercentage is honoured only for authenticated staff.
	DiscountPercentage *decimal.Decimal `json:"discount_percentage"`
}

// ToCommand builds the booking command. actor is nil for guest self-service.
func (r CreateReservationRequest) ToCommand(actor *staff.Actor) (commands.CreateReservationRequest, error) {
	p, err := r.parse()
	if err != nil {
		return commands.CreateReservationRequest{}, err
	}

	cmd := commands.CreateReservationRequest{
		Guest:         r.Guest.ToDetails(),
		LoyaltyNumber: strings.TrimSpace(r.LoyaltyNumber),
		CheckIn:       p.checkIn,
		CheckOut:      p.checkOut,
		Adults:        r.Adults,
		Children:      patch.Coalesce(r.Children, 0),
		Rooms:         p.rooms,
		AddOns:        p.addOns,
		RedeemPoints:  patch.Coalesce(r.RedeemPoints, 0),
	}
	if r.DiscountPercentage != nil {
		if actor == nil {
			return commands.CreateReservationRequest{}, errs.ErrStaffRequired
		}
		cmd.Discount = &commands.StaffDiscount{Percentage: *r.DiscountPercentage, Actor: *actor}
	}
	return cmd, nil
}

type RecordPaymentRequest struct {
	Amount *money.Money `json:"amount" binding:"required"`
	Method string       `json:"method" binding:"required,oneof=CASH CREDIT_CARD DEBIT_CARD"`
}

func (r RecordPaymentRequest) ToCommand() commands.RecordPaymentRequest {
	return commands.RecordPaymentRequest{Amount: *r.Amount, Method: r.Method}
}

type ApplyDiscountRequest struct {
	Percentage *decimal.Decimal `json:"percentage" binding:"required"`
}

// ParseDate reads a calendar date (YYYY-MM-DD) as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errs.Mark(err, reservation.ErrInvalidDateRange)
	}
	return t, nil
}
