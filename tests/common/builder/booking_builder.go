//go:build unit || e2e

package builder

import (
	"time"

	"hotel-kiosk/internal/domain/catalog"
	"hotel-kiosk/internal/domain/guest"
	"hotel-kiosk/internal/domain/reservation"
	reqdto "hotel-kiosk/internal/handler/dto/request"
	"hotel-kiosk/internal/usecase/commands"

	"github.com/google/uuid"
)

var DefaultToday = time.Date(2026, 1, 5, 9, 30, 0, 0, time.UTC)

type BookingBuilder struct {
	GuestID          uuid.UUID
	CheckIn          time.Time
	CheckOut         time.Time
	Adults           int
	Children         int
	Rooms            []reservation.RoomRequest
	AddOns           []reservation.AddOnRequest
	LoyaltyAccountID *uuid.UUID
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		GuestID:  uuid.New(),
		CheckIn:  time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		Adults:   1,
		Rooms:    []reservation.RoomRequest{{RoomType: catalog.RoomTypeSingle, Guests: 1}},
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (reservation.Booking, error) {
	stay, err := reservation.NewDateRange(b.CheckIn, b.CheckOut)
	if err != nil {
		return reservation.Booking{}, err
	}
	return reservation.Booking{
		GuestID:          b.GuestID,
		LoyaltyAccountID: b.LoyaltyAccountID,
		Stay:             stay,
		Adults:           b.Adults,
		Children:         b.Children,
		Rooms:            b.Rooms,
		AddOns:           b.AddOns,
	}, nil
}

// Fluent builder methods
func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithParty(adults, children int) *BookingBuilder {
	b.Adults = adults
	b.Children = children
	return b
}

func (b *BookingBuilder) WithRooms(rooms ...reservation.RoomRequest) *BookingBuilder {
	b.Rooms = rooms
	return b
}

func (b *BookingBuilder) WithAddOn(code catalog.AddOnCode, quantity int) *BookingBuilder {
	b.AddOns = append(b.AddOns, reservation.AddOnRequest{AddOn: code, Quantity: quantity})
	return b
}

func (b *BookingBuilder) WithLoyaltyAccount(id uuid.UUID) *BookingBuilder {
	b.LoyaltyAccountID = &id
	return b
}

// BuildRequest turns the booking into a kiosk request for the given guest.
func (b *BookingBuilder) BuildRequest(details guest.Details) commands.CreateReservationRequest {
	return commands.CreateReservationRequest{
		Guest:    details,
		CheckIn:  b.CheckIn,
		CheckOut: b.CheckOut,
		Adults:   b.Adults,
		Children: b.Children,
		Rooms:    b.Rooms,
		AddOns:   b.AddOns,
	}
}

// BuildCreateRequestDTO renders the booking as the kiosk's JSON body.
func (b *BookingBuilder) BuildCreateRequestDTO(details guest.Details) reqdto.CreateReservationRequest {
	rooms := make([]reqdto.RoomRequest, 0, len(b.Rooms))
	for _, r := range b.Rooms {
		rooms = append(rooms, reqdto.RoomRequest{RoomType: string(r.RoomType), Guests: r.Guests})
	}
	addOns := make([]reqdto.AddOnRequest, 0, len(b.AddOns))
	for _, a := range b.AddOns {
		dto := reqdto.AddOnRequest{AddOn: string(a.AddOn)}
		if a.Quantity > 0 {
			q := a.Quantity
			dto.Quantity = &q
		}
		addOns = append(addOns, dto)
	}
	children := b.Children
	return reqdto.CreateReservationRequest{
		StayRequest: reqdto.StayRequest{
			CheckIn:  b.CheckIn.Format(time.DateOnly),
			CheckOut: b.CheckOut.Format(time.DateOnly),
			Adults:   b.Adults,
			Children: &children,
			Rooms:    rooms,
			AddOns:   addOns,
		},
		Guest: reqdto.GuestRequest{Name: details.Name, Email: details.Email, Phone: details.Phone},
	}
}
