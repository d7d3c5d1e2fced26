package memstore

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"hotel-kiosk/internal/domain/guest"
	"hotel-kiosk/internal/domain/loyalty"
	"hotel-kiosk/internal/domain/reservation"
	"hotel-kiosk/internal/domain/room"
	"hotel-kiosk/internal/usecase/shared"

	"github.com/google/uuid"
)

var errReadOnly = errors.New("write attempted in read-only transaction")

// Store is a process-local unit of work. Write transactions are serialized
// and work on a copy of the state that replaces it only on success, so a
// failed command leaves nothing behind.
type Store struct {
	mu     sync.RWMutex
	state  *state
	logger *slog.Logger
}

type state struct {
	rooms        map[uuid.UUID]*room.Room
	guests       map[uuid.UUID]*guest.Guest
	reservations map[uuid.UUID]reservation.Snapshot
	accounts     map[uuid.UUID]*loyalty.Account
	transactions []*loyalty.Transaction
}

func New(logger *slog.Logger) *Store {
	return &Store{
		state: &state{
			rooms:        make(map[uuid.UUID]*room.Room),
			guests:       make(map[uuid.UUID]*guest.Guest),
			reservations: make(map[uuid.UUID]reservation.Snapshot),
			accounts:     make(map[uuid.UUID]*loyalty.Account),
		},
		logger: logger,
	}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	work := s.state.clone()
	if err := fn(ctx, &memTx{state: work}); err != nil {
		s.logger.Debug("memory transaction rolled back", slog.String("error", err.Error()))
		return err
	}
	s.state = work
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, &memTx{state: s.state, readOnly: true})
}

// Map values are never mutated in place: entities are copied on the way in
// and out, so a shallow copy of each map is a full snapshot.
func (st *state) clone() *state {
	out := &state{
		rooms:        make(map[uuid.UUID]*room.Room, len(st.rooms)),
		guests:       make(map[uuid.UUID]*guest.Guest, len(st.guests)),
		reservations: make(map[uuid.UUID]reservation.Snapshot, len(st.reservations)),
		accounts:     make(map[uuid.UUID]*loyalty.Account, len(st.accounts)),
		transactions: append([]*loyalty.Transaction(nil), st.transactions...),
	}
	for k, v := range st.rooms {
		out.rooms[k] = v
	}
	for k, v := range st.guests {
		out.guests[k] = v
	}
	for k, v := range st.reservations {
		out.reservations[k] = v
	}
	for k, v := range st.accounts {
		out.accounts[k] = v
	}
	return out
}

type memTx struct {
	state    *state
	readOnly bool
}

func (t *memTx) Rooms() shared.RoomRepository               { return &roomRepo{tx: t} }
func (t *memTx) Reservations() shared.ReservationRepository { return &reservationRepo{tx: t} }
func (t *memTx) Loyalty() shared.LoyaltyRepository          { return &loyaltyRepo{tx: t} }
func (t *memTx) Guests() shared.GuestRepository             { return &guestRepo{tx: t} }

func (t *memTx) writable() error {
	if t.readOnly {
		return errReadOnly
	}
	return nil
}
