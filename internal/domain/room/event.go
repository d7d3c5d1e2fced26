package room

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityChanged is emitted after a committed room status change.
type AvailabilityChanged struct {
	RoomID     uuid.UUID `json:"room_id"`
	RoomNumber string    `json:"room_number"`
	Status     Status    `json:"status"`
	At         time.Time `json:"at"`
}

func ChangedEvent(r *Room) AvailabilityChanged {
	return AvailabilityChanged{
		RoomID:     r.id,
		RoomNumber: r.number,
		Status:     r.status,
		At:         r.updatedAt,
	}
}
