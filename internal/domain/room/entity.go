package room

import (
	"errors"
	"time"

	"hotel-kiosk/internal/domain/catalog"
	"hotel-kiosk/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus           = errors.New("invalid room status")
	ErrIllegalStatusTransition = errors.New("illegal room status transition")
	ErrInvalidRoomNumber       = errors.New("invalid room number")
	ErrNegativePriceOverride   = errors.New("price override cannot be negative")
)

type Room struct {
	id            uuid.UUID
	number        string
	roomType      catalog.RoomTypeCode
	floor         int
	status        Status
	priceOverride *money.Money
	updatedAt     time.Time
}

func NewRoom(number string, roomType catalog.RoomTypeCode, floor int, priceOverride *money.Money) (*Room, error) {
	if number == "" {
		return nil, ErrInvalidRoomNumber
	}
	if _, err := catalog.LookupRoomType(roomType); err != nil {
		return nil, err
	}
	if priceOverride != nil && priceOverride.IsNegative() {
		return nil, ErrNegativePriceOverride
	}
	return &Room{
		id:            uuid.New(),
		number:        number,
		roomType:      roomType,
		floor:         floor,
		status:        StatusAvailable,
		priceOverride: priceOverride,
	}, nil
}

func ReconstructRoom(
	id uuid.UUID,
	number string,
	roomType catalog.RoomTypeCode,
	floor int,
	status Status,
	priceOverride *money.Money,
	updatedAt time.Time,
) *Room {
	return &Room{
		id:            id,
		number:        number,
		roomType:      roomType,
		floor:         floor,
		status:        status,
		priceOverride: priceOverride,
		updatedAt:     updatedAt,
	}
}

func (r *Room) ID() uuid.UUID                  { return r.id }
func (r *Room) Number() string                 { return r.number }
func (r *Room) RoomType() catalog.RoomTypeCode { return r.roomType }
func (r *Room) Floor() int                     { return r.floor }
func (r *Room) Status() Status                 { return r.status }
func (r *Room) PriceOverride() *money.Money    { return r.priceOverride }
func (r *Room) UpdatedAt() time.Time           { return r.updatedAt }

// NightlyRate is the override when set, otherwise the room type's base price.
func (r *Room) NightlyRate() money.Money {
	if r.priceOverride != nil {
		return *r.priceOverride
	}
	rt, err := catalog.LookupRoomType(r.roomType)
	if err != nil {
		return money.Zero
	}
	return rt.BasePrice
}

// Bookable reports whether the room may be handed out for a stay. Rooms
// under maintenance never are.
func (r *Room) Bookable() bool {
	return r.status != StatusMaintenance
}

// Reserve holds an available room for a stay starting today.
func (r *Room) Reserve(now time.Time) (bool, error) {
	switch r.status {
	case StatusAvailable:
		return r.set(StatusReserved, now), nil
	case StatusMaintenance:
		return false, ErrIllegalStatusTransition
	default:
		return false, nil
	}
}

func (r *Room) Occupy(now time.Time) (bool, error) {
	switch r.status {
	case StatusAvailable, StatusReserved, StatusCleaning:
		return r.set(StatusOccupied, now), nil
	case StatusOccupied:
		return false, nil
	default:
		return false, ErrIllegalStatusTransition
	}
}

func (r *Room) StartCleaning(now time.Time) (bool, error) {
	switch r.status {
	case StatusOccupied, StatusAvailable, StatusReserved:
		return r.set(StatusCleaning, now), nil
	case StatusCleaning:
		return false, nil
	default:
		return false, ErrIllegalStatusTransition
	}
}

// ReleaseHold returns a RESERVED room to AVAILABLE. Rooms in any other
// state are left alone.
func (r *Room) ReleaseHold(now time.Time) bool {
	if r.status != StatusReserved {
		return false
	}
	return r.set(StatusAvailable, now)
}

// ChangeStatus is the housekeeping transition: CLEANING or MAINTENANCE back
// to AVAILABLE, and anything but OCCUPIED into MAINTENANCE.
func (r *Room) ChangeStatus(to Status, now time.Time) (bool, error) {
	if !to.IsValid() {
		return false, ErrInvalidStatus
	}
	if to == r.status {
		return false, nil
	}
	switch to {
	case StatusAvailable:
		if r.status != StatusCleaning && r.status != StatusMaintenance {
			return false, ErrIllegalStatusTransition
		}
	case StatusMaintenance:
		if r.status == StatusOccupied {
			return false, ErrIllegalStatusTransition
		}
	case StatusCleaning:
		if r.status != StatusOccupied {
			return false, ErrIllegalStatusTransition
		}
	default:
		return false, ErrIllegalStatusTransition
	}
	return r.set(to, now), nil
}

func (r *Room) set(s Status, now time.Time) bool {
	r.status = s
	r.updatedAt = now
	return true
}
