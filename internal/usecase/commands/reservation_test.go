//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-kiosk/internal/domain/catalog"
	"hotel-kiosk/internal/domain/loyalty"
	"hotel-kiosk/internal/domain/reservation"
	"hotel-kiosk/internal/domain/room"
	"hotel-kiosk/internal/domain/staff"
	"hotel-kiosk/internal/pkg/errs"
	"hotel-kiosk/internal/pkg/money"
	"hotel-kiosk/internal/usecase/commands"
	"hotel-kiosk/internal/usecase/shared"
	"hotel-kiosk/tests/common/builder"
	"hotel-kiosk/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("future stay is confirmed and leaves rooms available", func(t *testing.T) {
		k := newKiosk(t)
		k.seedSingles(t, "101")

		view := k.book(t, builder.NewBookingBuilder(), builder.NewGuestBuilder())

		assert.Equal(t, reservation.StatusConfirmed.String(), view.Status)
		assert.Equal(t, "226.00", view.Charges.Total.String())
		require.Len(t, view.Rooms, 1)
		assert.Equal(t, "101", view.Rooms[0].RoomNumber)
		assert.Equal(t, room.StatusAvailable, testutil.RoomStatus(t, k.store, "101"))
		assert.Empty(t, k.listener.Events())

		stored, err := k.queries.GetReservation(ctx, view.ConfirmationNumber)
		require.NoError(t, err)
		assert.Equal(t, view.ID, stored.ID)
	})

	t.Run("same-day stay reserves its rooms", func(t *testing.T) {
		k := newKiosk(t)
		k.seedSingles(t, "101")

		k.book(t, builder.NewBookingBuilder().WithStay(day(5), day(6)), builder.NewGuestBuilder())

		assert.Equal(t, room.StatusReserved, testutil.RoomStatus(t, k.store, "101"))
		events := k.listener.Events()
		require.Len(t, events, 1)
		assert.Equal(t, "101", events[0].RoomNumber)
		assert.Equal(t, room.StatusReserved, events[0].Status)
	})

	t.Run("overlapping stays compete for inventory", func(t *testing.T) {
		k := newKiosk(t)
		k.seedSingles(t, "101")
		k.book(t, builder.NewBookingBuilder().WithStay(day(10), day(15)), builder.NewGuestBuilder())

		req := builder.NewBookingBuilder().WithStay(day(12), day(14)).
			BuildRequest(builder.NewGuestBuilder().WithEmail("second@example.com").BuildDetails())
		_, err := k.reservations.CreateReservation(ctx, req)
		require.ErrorIs(t, err, reservation.ErrInsufficientCapacity)
		assert.False(t, k.guestExists(t, "second@example.com"))

		// Checkout day is free for the next arrival.
		k.book(t, builder.NewBookingBuilder().WithStay(day(15), day(17)), builder.NewGuestBuilder())
	})

	t.Run("maintenance rooms are never booked", func(t *testing.T) {
		k := newKiosk(t)
		testutil.SeedRooms(t, k.store, builder.NewRoomBuilder().WithStatus(room.StatusMaintenance).BuildDomain())

		_, err := k.reservations.CreateReservation(ctx, builder.NewBookingBuilder().BuildRequest(builder.NewGuestBuilder().BuildDetails()))
		require.ErrorIs(t, err, reservation.ErrInsufficientCapacity)
	})

	t.Run("confirmation collisions are reissued", func(t *testing.T) {
		k := newKiosk(t, withConfirmations("HK0000AAAA", "HK0000AAAA", "HK0000BBBB"))
		k.seedSingles(t, "101", "102")

		first := k.book(t, builder.NewBookingBuilder(), builder.NewGuestBuilder())
		second := k.book(t, builder.NewBookingBuilder(), builder.NewGuestBuilder())

		assert.Equal(t, "HK0000AAAA", first.ConfirmationNumber)
		assert.Equal(t, "HK0000BBBB", second.ConfirmationNumber)
	})

	t.Run("exhausted confirmations persist nothing", func(t *testing.T) {
		k := newKiosk(t, withConfirmations("HK0000AAAA"))
		k.seedSingles(t, "101", "102")
		k.book(t, builder.NewBookingBuilder(), builder.NewGuestBuilder())

		req := builder.NewBookingBuilder().
			WithStay(day(5), day(6)).
			BuildRequest(builder.NewGuestBuilder().WithEmail("late@example.com").BuildDetails())
		_, err := k.reservations.CreateReservation(ctx, req)
		require.ErrorIs(t, err, errs.ErrConfirmationNumbersExhausted)

		assert.False(t, k.guestExists(t, "late@example.com"))
		assert.Equal(t, room.StatusAvailable, testutil.RoomStatus(t, k.store, "102"))
		assert.Empty(t, k.listener.Events())
	})

	t.Run("staff discount is capped by role", func(t *testing.T) {
		k := newKiosk(t)
		k.seedSingles(t, "101", "102")
		manager := staff.Actor{ID: uuid.New(), Role: staff.RoleManager}

		req := builder.NewBookingBuilder().BuildRequest(builder.NewGuestBuilder().BuildDetails())
		req.Discount = &commands.StaffDiscount{Percentage: decimal.NewFromInt(10), Actor: manager}
		view, err := k.reservations.CreateReservation(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "203.40", view.Charges.Total.String())
		assert.Equal(t, manager.ID, *view.DiscountedBy)

		admin := staff.Actor{ID: uuid.New(), Role: staff.RoleAdmin}
		req.Discount = &commands.StaffDiscount{Percentage: decimal.NewFromInt(20), Actor: admin}
		_, err = k.reservations.CreateReservation(ctx, req)
		require.ErrorIs(t, err, staff.ErrDiscountExceedsCap)
	})

	t.Run("redeeming points requires an account", func(t *testing.T) {
		k := newKiosk(t)
		k.seedSingles(t, "101")

		req := builder.NewBookingBuilder().BuildRequest(builder.NewGuestBuilder().BuildDetails())
		req.RedeemPoints = 200
		_, err := k.reservations.CreateReservation(ctx, req)
		require.ErrorIs(t, err, errs.ErrLoyaltyAccountRequired)
	})

	t.Run("loyalty number must belong to the guest", func(t *testing.T) {
		k := newKiosk(t)
		k.seedSingles(t, "101")
		account, err := k.loyalty.Enroll(ctx, builder.NewGuestBuilder().BuildDetails())
		require.NoError(t, err)

		req := builder.NewBookingBuilder().
			BuildRequest(builder.NewGuestBuilder().WithEmail("other@example.com").BuildDetails())
		req.LoyaltyNumber = account.Number
		_, err = k.reservations.CreateReservation(ctx, req)
		require.ErrorIs(t, err, errs.ErrLoyaltyAccountMismatch)
	})
}

func TestReservationLifecycle(t *testing.T) {
	ctx := context.Background()
	k := newKiosk(t)
	k.seedSingles(t, "101")

	view := k.book(t, builder.NewBookingBuilder().WithStay(day(5), day(7)), builder.NewGuestBuilder())
	conf := view.ConfirmationNumber

	checkedIn, err := k.reservations.CheckIn(ctx, conf)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusCheckedIn.String(), checkedIn.Status)
	assert.Equal(t, room.StatusOccupied, testutil.RoomStatus(t, k.store, "101"))

	_, err = k.reservations.Cancel(ctx, conf)
	require.ErrorIs(t, err, reservation.ErrIllegalStatusTransition)

	_, err = k.reservations.CheckOut(ctx, conf)
	require.ErrorIs(t, err, reservation.ErrOutstandingBalance)
	assert.Equal(t, room.StatusOccupied, testutil.RoomStatus(t, k.store, "101"))

	paid, err := k.reservations.RecordPayment(ctx, conf, commands.RecordPaymentRequest{Amount: money.FromDollars(100), Method: "CASH"})
	require.NoError(t, err)
	assert.Equal(t, "126.00", paid.Outstanding.String())
	assert.Zero(t, paid.PointsEarned)

	paid, err = k.reservations.RecordPayment(ctx, conf, commands.RecordPaymentRequest{Amount: paid.Outstanding, Method: "CREDIT_CARD"})
	require.NoError(t, err)
	assert.True(t, paid.Outstanding.IsZero())
	assert.Len(t, paid.Reservation.Payments, 2)

	checkedOut, err := k.reservations.CheckOut(ctx, conf)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusCheckedOut.String(), checkedOut.Status)
	assert.Equal(t, room.StatusCleaning, testutil.RoomStatus(t, k.store, "101"))

	statuses := make([]room.Status, 0)
	for _, evt := range k.listener.Events() {
		statuses = append(statuses, evt.Status)
	}
	assert.Equal(t, []room.Status{room.StatusReserved, room.StatusOccupied, room.StatusCleaning}, statuses)

	_, err = k.reservations.CheckIn(ctx, "HK0000ZZZZ")
	require.ErrorIs(t, err, errs.ErrReservationNotFound)
}

func TestCancelAndNoShow(t *testing.T) {
	ctx := context.Background()
	admin := staff.Actor{ID: uuid.New(), Role: staff.RoleAdmin}

	t.Run("cancel releases the hold", func(t *testing.T) {
		k := newKiosk(t)
		k.seedSingles(t, "101")
		view := k.book(t, builder.NewBookingBuilder().WithStay(day(5), day(6)), builder.NewGuestBuilder())

		cancelled, err := k.reservations.Cancel(ctx, view.ConfirmationNumber)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCancelled.String(), cancelled.Status)
		assert.NotNil(t, cancelled.CancelledAt)
		assert.Equal(t, room.StatusAvailable, testutil.RoomStatus(t, k.store, "101"))

		k.book(t, builder.NewBookingBuilder().WithStay(day(5), day(6)), builder.NewGuestBuilder())
	})

	t.Run("no-show frees the room for new bookings", func(t *testing.T) {
		k := newKiosk(t)
		k.seedSingles(t, "101")
		view := k.book(t, builder.NewBookingBuilder().WithStay(day(5), day(8)), builder.NewGuestBuilder())

		noShow, err := k.reservations.MarkNoShow(ctx, view.ConfirmationNumber, admin)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusNoShow.String(), noShow.Status)

		available, err := k.queries.FindAvailableRooms(ctx, catalog.RoomTypeSingle, day(6), day(7))
		require.NoError(t, err)
		require.Len(t, available, 1)

		_, err = k.reservations.RecordPayment(ctx, view.ConfirmationNumber, commands.RecordPaymentRequest{Amount: money.FromDollars(1), Method: "CASH"})
		require.ErrorIs(t, err, reservation.ErrPaymentNotAccepted)
	})
}

func TestApplyDiscount(t *testing.T) {
	ctx := context.Background()
	k := newKiosk(t)
	k.seedSingles(t, "101")
	view := k.book(t, builder.NewBookingBuilder(), builder.NewGuestBuilder())

	admin := staff.Actor{ID: uuid.New(), Role: staff.RoleAdmin}
	_, err := k.reservations.ApplyDiscount(ctx, view.ConfirmationNumber, decimal.NewFromInt(16), admin)
	require.ErrorIs(t, err, staff.ErrDiscountExceedsCap)

	discounted, err := k.reservations.ApplyDiscount(ctx, view.ConfirmationNumber, decimal.NewFromInt(5), admin)
	require.NoError(t, err)
	assert.Equal(t, "10.00", discounted.Charges.DiscountAmount.String())
	assert.Equal(t, "214.70", discounted.Charges.Total.String())

	stored, err := k.queries.GetReservation(ctx, view.ConfirmationNumber)
	require.NoError(t, err)
	assert.Equal(t, discounted.Charges, stored.Charges)
}

func TestApplyDiscountAfterRedemption(t *testing.T) {
	ctx := context.Background()
	manager := staff.Actor{ID: uuid.New(), Role: staff.RoleManager}
	k := newKiosk(t)
	k.seedSingles(t, "101")
	g := builder.NewGuestBuilder()
	account, err := k.loyalty.Enroll(ctx, g.BuildDetails())
	require.NoError(t, err)
	_, err = k.loyalty.Adjust(ctx, account.Number, 20_000, "status match", manager)
	require.NoError(t, err)

	balance := func() int64 {
		a, err := k.queries.GetLoyaltyAccount(ctx, account.Number)
		require.NoError(t, err)
		return a.Balance
	}

	req := builder.NewBookingBuilder().WithStay(day(10), day(11)).BuildRequest(g.BuildDetails())
	req.LoyaltyNumber = account.Number
	req.RedeemPoints = 10_000
	view, err := k.reservations.CreateReservation(ctx, req)
	require.NoError(t, err)
	require.Equal(t, "100.00", view.Charges.LoyaltyDiscount.String())
	require.True(t, view.Charges.Total.IsZero())
	require.Equal(t, int64(10_500), balance())

	discounted, err := k.reservations.ApplyDiscount(ctx, view.ConfirmationNumber, decimal.NewFromInt(30), manager)
	require.NoError(t, err)

	c := discounted.Charges
	assert.Equal(t, "30.00", c.DiscountAmount.String())
	assert.Equal(t, int64(7_000), c.LoyaltyPointsRedeemed)
	assert.Equal(t, "70.00", c.LoyaltyDiscount.String())
	assert.True(t, c.Total.IsZero())
	assert.Equal(t, int64(13_500), balance())

	history, err := k.queries.LoyaltyHistory(ctx, account.Number, 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, loyalty.TransactionRefund.String(), history[0].Type)
	assert.Equal(t, int64(3_000), history[0].Points)

	t.Run("cancel refunds only what is still redeemed", func(t *testing.T) {
		_, err := k.reservations.Cancel(ctx, view.ConfirmationNumber)
		require.NoError(t, err)
		assert.Equal(t, int64(20_500), balance())
	})
}

func TestApplyDiscountDropsRedemptionBelowMinimum(t *testing.T) {
	ctx := context.Background()
	manager := staff.Actor{ID: uuid.New(), Role: staff.RoleManager}
	k := newKiosk(t, withLoyaltyConfig(func(c *loyalty.Config) {
		c.RedemptionValue = decimal.NewFromInt(1)
		c.MinRedemption = 150
	}))
	k.seedSingles(t, "101")
	g := builder.NewGuestBuilder()
	account, err := k.loyalty.Enroll(ctx, g.BuildDetails())
	require.NoError(t, err)

	req := builder.NewBookingBuilder().BuildRequest(g.BuildDetails())
	req.LoyaltyNumber = account.Number
	req.RedeemPoints = 200
	view, err := k.reservations.CreateReservation(ctx, req)
	require.NoError(t, err)
	require.Equal(t, int64(200), view.Charges.LoyaltyPointsRedeemed)

	// 30% off $200 leaves $140, worth fewer points than the minimum.
	discounted, err := k.reservations.ApplyDiscount(ctx, view.ConfirmationNumber, decimal.NewFromInt(30), manager)
	require.NoError(t, err)
	assert.Zero(t, discounted.Charges.LoyaltyPointsRedeemed)
	assert.True(t, discounted.Charges.LoyaltyDiscount.IsZero())
	assert.Equal(t, "158.20", discounted.Charges.Total.String())

	a, err := k.queries.GetLoyaltyAccount(ctx, account.Number)
	require.NoError(t, err)
	assert.Equal(t, int64(500), a.Balance)
}

// racingUoW makes the next n reservation inserts lose to a concurrent
// booking that took the same confirmation number.
type racingUoW struct {
	shared.UnitOfWork
	n        int
	attempts int
}

func (u *racingUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.UnitOfWork.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, racingTx{Tx: tx, u: u})
	})
}

type racingTx struct {
	shared.Tx
	u *racingUoW
}

func (t racingTx) Reservations() shared.ReservationRepository {
	return racingReservations{ReservationRepository: t.Tx.Reservations(), u: t.u}
}

type racingReservations struct {
	shared.ReservationRepository
	u *racingUoW
}

func (r racingReservations) Create(ctx context.Context, res *reservation.Reservation) error {
	r.u.attempts++
	if r.u.n > 0 {
		r.u.n--
		return errs.Mark(errs.New("duplicate key value violates unique constraint"), reservation.ErrDuplicateConfirmationNumber)
	}
	return r.ReservationRepository.Create(ctx, res)
}

func TestCreateReservation_ConcurrentConfirmationCollision(t *testing.T) {
	ctx := context.Background()

	t.Run("booking is retried under a fresh number", func(t *testing.T) {
		race := &racingUoW{n: 2}
		k := newKiosk(t,
			withConfirmations("HK0000AAAA", "HK0000BBBB", "HK0000CCCC"),
			withUnitOfWork(func(u shared.UnitOfWork) shared.UnitOfWork { race.UnitOfWork = u; return race }),
		)
		k.seedSingles(t, "101")

		view := k.book(t, builder.NewBookingBuilder(), builder.NewGuestBuilder())

		assert.Equal(t, "HK0000CCCC", view.ConfirmationNumber)
		assert.Equal(t, 3, race.attempts)
		_, err := k.queries.GetReservation(ctx, "HK0000AAAA")
		require.ErrorIs(t, err, errs.ErrReservationNotFound)
	})

	t.Run("persistent collisions report exhaustion", func(t *testing.T) {
		race := &racingUoW{n: 100}
		k := newKiosk(t, withUnitOfWork(func(u shared.UnitOfWork) shared.UnitOfWork { race.UnitOfWork = u; return race }))
		k.seedSingles(t, "101")

		req := builder.NewBookingBuilder().BuildRequest(builder.NewGuestBuilder().WithEmail("unlucky@example.com").BuildDetails())
		_, err := k.reservations.CreateReservation(ctx, req)
		require.ErrorIs(t, err, errs.ErrConfirmationNumbersExhausted)
		assert.NotErrorIs(t, err, reservation.ErrDuplicateConfirmationNumber)
		assert.False(t, k.guestExists(t, "unlucky@example.com"))
	})
}
