package reservation

import (
	"time"

	"hotel-kiosk/internal/domain/catalog"
	"hotel-kiosk/internal/domain/pricing"
	"hotel-kiosk/internal/domain/room"
	"hotel-kiosk/internal/pkg/clock"

	"github.com/google/uuid"
)

type RoomRequest struct {
	RoomType catalog.RoomTypeCode
	Guests   int
}

type AddOnRequest struct {
	AddOn catalog.AddOnCode
	// Quantity defaults to the party size for per-person add-ons and to one
	// otherwise.
	Quantity int
}

type Booking struct {
	GuestID          uuid.UUID
	LoyaltyAccountID *uuid.UUID
	Stay             DateRange
	Adults           int
	Children         int
	Rooms            []RoomRequest
	AddOns           []AddOnRequest
	Loyalty          *pricing.LoyaltyRedemption
	Discount         *pricing.Discount
	DiscountedBy     *uuid.UUID
}

func (b Booking) PartySize() int {
	return b.Adults + b.Children
}

// Validate runs the checks that need no inventory: dates, per-room
// occupancy and aggregate capacity.
func (b Booking) Validate(today time.Time) error {
	if err := b.Stay.ValidateFrom(today); err != nil {
		return err
	}
	if b.Adults < 1 || b.Children < 0 {
		return ErrNoAdults
	}
	if len(b.Rooms) == 0 {
		return pricing.ErrNoRoomsSelected
	}

	capacity, guests := 0, 0
	for _, req := range b.Rooms {
		rt, err := catalog.LookupRoomType(req.RoomType)
		if err != nil {
			return err
		}
		if !catalog.FitsOccupancy(rt, req.Guests) {
			return ErrOccupancyExceeded
		}
		capacity += rt.MaxOccupancy
		guests += req.Guests
	}
	if capacity < b.PartySize() {
		return ErrOccupancyExceeded
	}
	if guests != b.PartySize() {
		return ErrGuestCountMismatch
	}
	return nil
}

func (b Booking) RoomsByType() map[catalog.RoomTypeCode]int {
	out := make(map[catalog.RoomTypeCode]int)
	for _, r := range b.Rooms {
		out[r.RoomType]++
	}
	return out
}

type Factory struct {
	Clock         clock.Clock
	Engine        *pricing.Engine
	Confirmations ConfirmationGenerator
}

func NewFactory(clock clock.Clock, engine *pricing.Engine, confirmations ConfirmationGenerator) *Factory {
	return &Factory{
		Clock:         clock,
		Engine:        engine,
		Confirmations: confirmations,
	}
}

// Quote is a priced room assignment that has not become a reservation.
type Quote struct {
	Assignments []RoomAssignment
	AddOns      []AddOnLineItem
	Breakdown   pricing.Breakdown
}

// Quote validates the booking, assigns rooms from free and prices the stay.
// Nothing is generated or stored.
func (f *Factory) Quote(b Booking, free []*room.Room) (Quote, error) {
	if err := b.Validate(f.Clock.Now()); err != nil {
		return Quote{}, err
	}

	assignments, err := assignRooms(b.Rooms, free)
	if err != nil {
		return Quote{}, err
	}
	addOns, err := addOnSelections(b.AddOns, b.PartySize())
	if err != nil {
		return Quote{}, err
	}

	groups := groupAssignments(assignments)
	breakdown, err := f.Engine.Price(pricing.Request{
		Rooms:    groups.selections(),
		AddOns:   addOns,
		CheckIn:  b.Stay.CheckIn(),
		Nights:   b.Stay.Nights(),
		Discount: b.Discount,
		Loyalty:  b.Loyalty,
	})
	if err != nil {
		return Quote{}, err
	}
	groups.applyMultipliers(assignments, breakdown.Rooms)

	return Quote{
		Assignments: assignments,
		AddOns:      lineItems(breakdown.AddOns),
		Breakdown:   breakdown,
	}, nil
}

// CreateReservation assigns the given free rooms to the booking, prices it
// and returns a CONFIRMED reservation that has not been stored yet.
func (f *Factory) CreateReservation(b Booking, free []*room.Room) (*Reservation, pricing.Breakdown, error) {
	now := f.Clock.Now()
	q, err := f.Quote(b, free)
	if err != nil {
		return nil, pricing.Breakdown{}, err
	}

	confirmation, err := f.Confirmations.Next()
	if err != nil {
		return nil, pricing.Breakdown{}, err
	}

	var discountedBy *uuid.UUID
	if b.Discount != nil && !b.Discount.Percentage.IsZero() {
		discountedBy = b.DiscountedBy
	}

	r := newPending(
		confirmation,
		b.GuestID,
		b.LoyaltyAccountID,
		b.Stay,
		b.Adults,
		b.Children,
		q.Assignments,
		q.AddOns,
		ChargesFrom(q.Breakdown),
		discountedBy,
		now,
	)
	if err := r.Confirm(now); err != nil {
		return nil, pricing.Breakdown{}, err
	}
	return r, q.Breakdown, nil
}

func assignRooms(requests []RoomRequest, free []*room.Room) ([]RoomAssignment, error) {
	pool := make(map[catalog.RoomTypeCode][]*room.Room)
	for _, r := range free {
		if r.Bookable() {
			pool[r.RoomType()] = append(pool[r.RoomType()], r)
		}
	}

	out := make([]RoomAssignment, 0, len(requests))
	for _, req := range requests {
		candidates := pool[req.RoomType]
		if len(candidates) == 0 {
			return nil, ErrInsufficientCapacity
		}
		r := candidates[0]
		pool[req.RoomType] = candidates[1:]
		out = append(out, RoomAssignment{
			RoomID:      r.ID(),
			RoomNumber:  r.Number(),
			RoomType:    r.RoomType(),
			Guests:      req.Guests,
			NightlyRate: r.NightlyRate(),
		})
	}
	return out, nil
}

func addOnSelections(requests []AddOnRequest, partySize int) ([]pricing.AddOnSelection, error) {
	out := make([]pricing.AddOnSelection, 0, len(requests))
	for _, req := range requests {
		qty := req.Quantity
		if qty == 0 {
			a, err := catalog.LookupAddOnType(req.AddOn)
			if err != nil {
				return nil, err
			}
			qty = 1
			if a.Model != catalog.PerNight {
				qty = partySize
			}
		}
		sel, err := pricing.NewAddOnSelection(req.AddOn, qty)
		if err != nil {
			return nil, err
		}
		out = append(out, sel)
	}
	return out, nil
}

func lineItems(lines []pricing.AddOnLine) []AddOnLineItem {
	out := make([]AddOnLineItem, 0, len(lines))
	for _, l := range lines {
		out = append(out, AddOnLineItem{
			AddOn:     l.Selection.AddOn,
			Model:     l.Selection.Model,
			Quantity:  l.Selection.Quantity,
			UnitPrice: l.Selection.UnitPrice,
			Total:     l.Total,
		})
	}
	return out
}
