package shared

import (
	"context"
	"time"

	"hotel-kiosk/internal/domain/catalog"
	"hotel-kiosk/internal/domain/guest"
	"hotel-kiosk/internal/domain/loyalty"
	"hotel-kiosk/internal/domain/reservation"
	"hotel-kiosk/internal/domain/room"

	"github.com/google/uuid"
)

// Lookups that find nothing return an infra.RepositoryError of kind NOT_FOUND.
// forUpdate locks the returned rows until the transaction ends.

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) error
	List(ctx context.Context) ([]*room.Room, error)
	FindByNumber(ctx context.Context, number string, forUpdate bool) (*room.Room, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID, forUpdate bool) ([]*room.Room, error)
	// FindAvailable returns rooms of the type that are not under maintenance
	// and have no inventory-holding reservation overlapping stay, ordered by
	// room number.
	FindAvailable(ctx context.Context, roomType catalog.RoomTypeCode, stay reservation.DateRange, forUpdate bool) ([]*room.Room, error)
	UpdateStatus(ctx context.Context, r *room.Room) error
}

type ReservationRepository interface {
	// Create stores the reservation with its assignments and add-on lines.
	// A taken confirmation number is reported as
	// reservation.ErrDuplicateConfirmationNumber.
	Create(ctx context.Context, r *reservation.Reservation) error
	ConfirmationExists(ctx context.Context, c reservation.ConfirmationNumber) (bool, error)
	FindByConfirmation(ctx context.Context, c reservation.ConfirmationNumber, forUpdate bool) (*reservation.Reservation, error)
	// Update persists status, timestamps and charges.
	Update(ctx context.Context, r *reservation.Reservation) error
	AddPayment(ctx context.Context, reservationID uuid.UUID, p reservation.Payment) error
}

type LoyaltyRepository interface {
	Create(ctx context.Context, a *loyalty.Account) error
	FindByNumber(ctx context.Context, n loyalty.Number, forUpdate bool) (*loyalty.Account, error)
	FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*loyalty.Account, error)
	FindByGuestID(ctx context.Context, guestID uuid.UUID) (*loyalty.Account, error)
	Update(ctx context.Context, a *loyalty.Account) error
	AppendTransaction(ctx context.Context, t *loyalty.Transaction) error
	// Transactions lists newest first.
	Transactions(ctx context.Context, accountID uuid.UUID, limit int) ([]*loyalty.Transaction, error)
	TransactionsForReservation(ctx context.Context, reservationID uuid.UUID) ([]*loyalty.Transaction, error)
	// ListExpirable returns accounts holding points whose last activity is
	// before the cutoff.
	ListExpirable(ctx context.Context, before time.Time) ([]*loyalty.Account, error)
}

type GuestRepository interface {
	Create(ctx context.Context, g *guest.Guest) error
	FindByID(ctx context.Context, id uuid.UUID) (*guest.Guest, error)
	FindByEmail(ctx context.Context, email guest.Email) (*guest.Guest, error)
}
