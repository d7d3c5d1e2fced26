package shared

import (
	"context"
)

type UnitOfWork interface {
	// Within: Serializable transaction for write operations with retry logic.
	// fn may run more than once and must not leak side effects outside tx.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Rooms() RoomRepository
	Reservations() ReservationRepository
	Loyalty() LoyaltyRepository
	Guests() GuestRepository
}
