//go:build unit

package repository

import (
	"context"
	"time"

	"hotel-kiosk/internal/infra/sqlstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

// mockQueries stands in for sqlstore.Queries across every repository.
type mockQueries struct {
	mock.Mock
}

func (m *mockQueries) CreateRoom(ctx context.Context, db sqlstore.DBTX, arg sqlstore.CreateRoomParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *mockQueries) ListRooms(ctx context.Context, db sqlstore.DBTX) ([]sqlstore.Room, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlstore.Room), args.Error(1)
}

func (m *mockQueries) GetRoomByNumber(ctx context.Context, db sqlstore.DBTX, number string, forUpdate bool) (sqlstore.Room, error) {
	args := m.Called(ctx, db, number, forUpdate)
	return args.Get(0).(sqlstore.Room), args.Error(1)
}

func (m *mockQueries) GetRoomsByIDs(ctx context.Context, db sqlstore.DBTX, ids []uuid.UUID, forUpdate bool) ([]sqlstore.Room, error) {
	args := m.Called(ctx, db, ids, forUpdate)
	return args.Get(0).([]sqlstore.Room), args.Error(1)
}

func (m *mockQueries) FindAvailableRooms(ctx context.Context, db sqlstore.DBTX, arg sqlstore.FindAvailableRoomsParams, forUpdate bool) ([]sqlstore.Room, error) {
	args := m.Called(ctx, db, arg, forUpdate)
	return args.Get(0).([]sqlstore.Room), args.Error(1)
}

func (m *mockQueries) UpdateRoomStatus(ctx context.Context, db sqlstore.DBTX, arg sqlstore.UpdateRoomStatusParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockQueries) CreateGuest(ctx context.Context, db sqlstore.DBTX, arg sqlstore.Guest) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *mockQueries) GetGuestByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Guest, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlstore.Guest), args.Error(1)
}

func (m *mockQueries) GetGuestByEmail(ctx context.Context, db sqlstore.DBTX, email string) (sqlstore.Guest, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlstore.Guest), args.Error(1)
}

func (m *mockQueries) CreateReservation(ctx context.Context, db sqlstore.DBTX, arg sqlstore.Reservation) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *mockQueries) CreateRoomAssignment(ctx context.Context, db sqlstore.DBTX, arg sqlstore.RoomAssignment) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *mockQueries) CreateReservationAddOn(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ReservationAddOn) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *mockQueries) CreatePayment(ctx context.Context, db sqlstore.DBTX, arg sqlstore.Payment) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *mockQueries) ConfirmationExists(ctx context.Context, db sqlstore.DBTX, confirmation string) (bool, error) {
	args := m.Called(ctx, db, confirmation)
	return args.Bool(0), args.Error(1)
}

func (m *mockQueries) GetReservationByConfirmation(ctx context.Context, db sqlstore.DBTX, confirmation string, forUpdate bool) (sqlstore.Reservation, error) {
	args := m.Called(ctx, db, confirmation, forUpdate)
	return args.Get(0).(sqlstore.Reservation), args.Error(1)
}

func (m *mockQueries) ListRoomAssignments(ctx context.Context, db sqlstore.DBTX, reservationID uuid.UUID) ([]sqlstore.RoomAssignment, error) {
	args := m.Called(ctx, db, reservationID)
	return args.Get(0).([]sqlstore.RoomAssignment), args.Error(1)
}

func (m *mockQueries) ListReservationAddOns(ctx context.Context, db sqlstore.DBTX, reservationID uuid.UUID) ([]sqlstore.ReservationAddOn, error) {
	args := m.Called(ctx, db, reservationID)
	return args.Get(0).([]sqlstore.ReservationAddOn), args.Error(1)
}

func (m *mockQueries) ListPayments(ctx context.Context, db sqlstore.DBTX, reservationID uuid.UUID) ([]sqlstore.Payment, error) {
	args := m.Called(ctx, db, reservationID)
	return args.Get(0).([]sqlstore.Payment), args.Error(1)
}

func (m *mockQueries) UpdateReservation(ctx context.Context, db sqlstore.DBTX, arg sqlstore.Reservation) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockQueries) SetAssignmentsActive(ctx context.Context, db sqlstore.DBTX, reservationID uuid.UUID, active bool) error {
	return m.Called(ctx, db, reservationID, active).Error(0)
}

func (m *mockQueries) CreateLoyaltyAccount(ctx context.Context, db sqlstore.DBTX, arg sqlstore.LoyaltyAccount) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *mockQueries) GetLoyaltyAccountByNumber(ctx context.Context, db sqlstore.DBTX, number string, forUpdate bool) (sqlstore.LoyaltyAccount, error) {
	args := m.Called(ctx, db, number, forUpdate)
	return args.Get(0).(sqlstore.LoyaltyAccount), args.Error(1)
}

func (m *mockQueries) GetLoyaltyAccountByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID, forUpdate bool) (sqlstore.LoyaltyAccount, error) {
	args := m.Called(ctx, db, id, forUpdate)
	return args.Get(0).(sqlstore.LoyaltyAccount), args.Error(1)
}

func (m *mockQueries) GetLoyaltyAccountByGuestID(ctx context.Context, db sqlstore.DBTX, guestID uuid.UUID) (sqlstore.LoyaltyAccount, error) {
	args := m.Called(ctx, db, guestID)
	return args.Get(0).(sqlstore.LoyaltyAccount), args.Error(1)
}

func (m *mockQueries) UpdateLoyaltyAccount(ctx context.Context, db sqlstore.DBTX, arg sqlstore.LoyaltyAccount) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockQueries) ListExpirableLoyaltyAccounts(ctx context.Context, db sqlstore.DBTX, before time.Time) ([]sqlstore.LoyaltyAccount, error) {
	args := m.Called(ctx, db, before)
	return args.Get(0).([]sqlstore.LoyaltyAccount), args.Error(1)
}

func (m *mockQueries) CreateLoyaltyTransaction(ctx context.Context, db sqlstore.DBTX, arg sqlstore.LoyaltyTransaction) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *mockQueries) ListLoyaltyTransactions(ctx context.Context, db sqlstore.DBTX, accountID uuid.UUID, limit int32) ([]sqlstore.LoyaltyTransaction, error) {
	args := m.Called(ctx, db, accountID, limit)
	return args.Get(0).([]sqlstore.LoyaltyTransaction), args.Error(1)
}

func (m *mockQueries) ListLoyaltyTransactionsForReservation(ctx context.Context, db sqlstore.DBTX, reservationID uuid.UUID) ([]sqlstore.LoyaltyTransaction, error) {
	args := m.Called(ctx, db, reservationID)
	return args.Get(0).([]sqlstore.LoyaltyTransaction), args.Error(1)
}

// mockDBTX is never reached because every query is mocked; it only has to
// satisfy sqlstore.DBTX.
type mockDBTX struct{}

func (mockDBTX) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (mockDBTX) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, pgx.ErrNoRows
}

func (mockDBTX) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}
