package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-kiosk/internal/domain/guest"
	"hotel-kiosk/internal/domain/loyalty"
	"hotel-kiosk/internal/domain/pricing"
	"hotel-kiosk/internal/domain/reservation"
	"hotel-kiosk/internal/domain/room"
	"hotel-kiosk/internal/domain/staff"
	"hotel-kiosk/internal/infra"
	"hotel-kiosk/internal/pkg/clock"
	"hotel-kiosk/internal/pkg/errs"
	"hotel-kiosk/internal/pkg/money"
	"hotel-kiosk/internal/usecase/queries"
	"hotel-kiosk/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxConfirmationAttempts = 5

type CreateReservationRequest struct {
	Guest         guest.Details
	LoyaltyNumber string
	CheckIn       time.Time
	CheckOut      time.Time
	Adults        int
	Children      int
	Rooms         []reservation.RoomRequest
	AddOns        []reservation.AddOnRequest
	RedeemPoints  int64
	// Discount is only honoured for an authenticated staff member.
	Discount *StaffDiscount
}

type StaffDiscount struct {
	Percentage decimal.Decimal
	Actor      staff.Actor
}

type RecordPaymentRequest struct {
	Amount money.Money
	Method string
}

type PaymentResult struct {
	Reservation  *queries.ReservationView
	Payment      reservation.Payment
	Outstanding  money.Money
	PointsEarned int64
}

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/mock_reservation.go -package=commandsmock

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req CreateReservationRequest) (*queries.ReservationView, error)
	CheckIn(ctx context.Context, confirmation string) (*queries.ReservationView, error)
	CheckOut(ctx context.Context, confirmation string) (*queries.ReservationView, error)
	Cancel(ctx context.Context, confirmation string) (*queries.ReservationView, error)
	RecordPayment(ctx context.Context, confirmation string, req RecordPaymentRequest) (*PaymentResult, error)
	ApplyDiscount(ctx context.Context, confirmation string, pct decimal.Decimal, actor staff.Actor) (*queries.ReservationView, error)
	MarkNoShow(ctx context.Context, confirmation string, actor staff.Actor) (*queries.ReservationView, error)
}

type reservationUseCaseImpl struct {
	uow      shared.UnitOfWork
	factory  *reservation.Factory
	notifier *shared.AvailabilityNotifier
	clock    clock.Clock
	logger   *slog.Logger
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	notifier *shared.AvailabilityNotifier,
	clk clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:      uow,
		factory:  factory,
		notifier: notifier,
		clock:    clk,
		logger:   logger,
	}
}

func (uc *reservationUseCaseImpl) CreateReservation(ctx context.Context, req CreateReservationRequest) (*queries.ReservationView, error) {
	now := uc.clock.Now()
	candidate, err := req.Guest.Parse(now)
	if err != nil {
		return nil, err
	}
	stay, err := reservation.NewDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	var number *loyalty.Number
	if req.LoyaltyNumber != "" {
		n, nerr := loyalty.NewNumber(req.LoyaltyNumber)
		if nerr != nil {
			return nil, nerr
		}
		number = &n
	}
	if req.RedeemPoints > 0 && number == nil {
		return nil, errs.ErrLoyaltyAccountRequired
	}

	var (
		created *reservation.Reservation
		events  []room.AvailabilityChanged
	)
	book := func(ctx context.Context, tx shared.Tx) error {
		events = nil

		g, derr := findOrCreateGuest(ctx, tx, candidate)
		if derr != nil {
			return derr
		}
		account, derr := uc.linkedAccount(ctx, tx, number, g.ID())
		if derr != nil {
			return derr
		}

		booking := reservation.Booking{
			GuestID:  g.ID(),
			Stay:     stay,
			Adults:   req.Adults,
			Children: req.Children,
			Rooms:    req.Rooms,
			AddOns:   req.AddOns,
		}
		if account != nil {
			id := account.ID()
			booking.LoyaltyAccountID = &id
			if req.RedeemPoints > 0 {
				booking.Loyalty = &pricing.LoyaltyRedemption{RequestedPoints: req.RedeemPoints, Balance: account.Balance()}
			}
		}
		if req.Discount != nil {
			booking.Discount = &pricing.Discount{Percentage: req.Discount.Percentage, Role: req.Discount.Actor.Role}
			booking.DiscountedBy = &req.Discount.Actor.ID
		}
		if derr := booking.Validate(now); derr != nil {
			return derr
		}

		free, derr := lockFreeRooms(ctx, tx, booking)
		if derr != nil {
			return derr
		}
		res, _, derr := uc.factory.CreateReservation(booking, free)
		if derr != nil {
			return derr
		}
		if derr := uc.ensureUniqueConfirmation(ctx, tx, res); derr != nil {
			return derr
		}
		if derr := tx.Reservations().Create(ctx, res); derr != nil {
			// A concurrent booking won the room between the availability
			// check and the insert.
			if infra.IsKind(derr, infra.KindConflict) {
				return errs.Mark(derr, reservation.ErrInsufficientCapacity)
			}
			return storageErr(derr, nil)
		}

		if points := res.Charges().LoyaltyPointsRedeemed; points > 0 {
			id := res.ID()
			txn, derr := account.RedeemExactly(points, &id, now)
			if derr != nil {
				return derr
			}
			if derr := saveLedger(ctx, tx, account, txn); derr != nil {
				return derr
			}
		}

		// Same-day stays hold their rooms right away. Future stays are kept
		// out of other bookings by the overlap check alone.
		if stay.StartsOn(now) {
			events, derr = updateRooms(ctx, tx, res.RoomIDs(), func(r *room.Room) (bool, error) {
				return r.Reserve(now)
			})
			if derr != nil {
				return derr
			}
		}

		created = res
		return nil
	}

	// A concurrent booking can take the same confirmation number between the
	// uniqueness check and the insert. The failed insert aborts the
	// transaction, so the whole booking runs again under a fresh number.
	for attempt := 1; ; attempt++ {
		err = uc.uow.Within(ctx, book)
		if !errs.Is(err, reservation.ErrDuplicateConfirmationNumber) {
			break
		}
		if attempt >= maxConfirmationAttempts {
			return nil, errs.Wrapf(errs.ErrConfirmationNumbersExhausted, "%d concurrent collisions", attempt)
		}
		uc.logger.Warn("confirmation number taken by a concurrent booking, retrying",
			slog.Int("attempt", attempt))
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("reservation confirmed",
		slog.String("confirmation_number", created.Confirmation().Value()),
		slog.String("reservation_id", created.ID().String()),
		slog.String("stay", created.Stay().String()),
		slog.String("total", created.Charges().Total.String()))
	uc.notifier.Notify(ctx, events)
	return queries.NewReservationView(created), nil
}

func (uc *reservationUseCaseImpl) CheckIn(ctx context.Context, confirmation string) (*queries.ReservationView, error) {
	return uc.transition(ctx, confirmation, "reservation checked in", func(ctx context.Context, tx shared.Tx, r *reservation.Reservation, now time.Time) ([]room.AvailabilityChanged, error) {
		if err := r.CheckIn(now); err != nil {
			return nil, err
		}
		return updateRooms(ctx, tx, r.RoomIDs(), func(rm *room.Room) (bool, error) {
			return rm.Occupy(now)
		})
	})
}

func (uc *reservationUseCaseImpl) CheckOut(ctx context.Context, confirmation string) (*queries.ReservationView, error) {
	return uc.transition(ctx, confirmation, "reservation checked out", func(ctx context.Context, tx shared.Tx, r *reservation.Reservation, now time.Time) ([]room.AvailabilityChanged, error) {
		if err := r.CheckOut(now); err != nil {
			return nil, err
		}
		return updateRooms(ctx, tx, r.RoomIDs(), func(rm *room.Room) (bool, error) {
			return rm.StartCleaning(now)
		})
	})
}

// Cancel frees held rooms and refunds any points redeemed for the stay.
func (uc *reservationUseCaseImpl) Cancel(ctx context.Context, confirmation string) (*queries.ReservationView, error) {
	return uc.transition(ctx, confirmation, "reservation cancelled", func(ctx context.Context, tx shared.Tx, r *reservation.Reservation, now time.Time) ([]room.AvailabilityChanged, error) {
		if err := r.Cancel(now); err != nil {
			return nil, err
		}
		if err := uc.refundRedemptions(ctx, tx, r, now); err != nil {
			return nil, err
		}
		return updateRooms(ctx, tx, r.RoomIDs(), func(rm *room.Room) (bool, error) {
			return rm.ReleaseHold(now), nil
		})
	})
}

func (uc *reservationUseCaseImpl) MarkNoShow(ctx context.Context, confirmation string, actor staff.Actor) (*queries.ReservationView, error) {
	view, err := uc.transition(ctx, confirmation, "reservation marked no-show", func(ctx context.Context, tx shared.Tx, r *reservation.Reservation, now time.Time) ([]room.AvailabilityChanged, error) {
		if err := r.MarkNoShow(now); err != nil {
			return nil, err
		}
		return updateRooms(ctx, tx, r.RoomIDs(), func(rm *room.Room) (bool, error) {
			return rm.ReleaseHold(now), nil
		})
	})
	if err == nil {
		uc.logger.Info("no-show recorded by staff",
			slog.String("confirmation_number", view.ConfirmationNumber),
			slog.String("staff_id", actor.ID.String()))
	}
	return view, err
}

// ApplyDiscount refunds, in the same transaction, any redeemed points the
// smaller amount due can no longer absorb.
func (uc *reservationUseCaseImpl) ApplyDiscount(ctx context.Context, confirmation string, pct decimal.Decimal, actor staff.Actor) (*queries.ReservationView, error) {
	return uc.transition(ctx, confirmation, "reservation discounted", func(ctx context.Context, tx shared.Tx, r *reservation.Reservation, now time.Time) ([]room.AvailabilityChanged, error) {
		d := pricing.Discount{Percentage: pct, Role: actor.Role}
		released, err := r.ApplyDiscount(uc.factory.Engine, d, actor, now)
		if err != nil {
			return nil, err
		}
		if released > 0 {
			if err := uc.refundPoints(ctx, tx, r, released, now); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
}

func (uc *reservationUseCaseImpl) RecordPayment(ctx context.Context, confirmation string, req RecordPaymentRequest) (*PaymentResult, error) {
	c, err := reservation.NewConfirmationNumber(confirmation)
	if err != nil {
		return nil, err
	}
	method, err := reservation.NewPaymentMethod(req.Method)
	if err != nil {
		return nil, err
	}

	var result *PaymentResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		r, derr := tx.Reservations().FindByConfirmation(ctx, c, true)
		if derr != nil {
			return storageErr(derr, errs.ErrReservationNotFound)
		}
		payment, outstanding, derr := r.RecordPayment(req.Amount, method, now)
		if derr != nil {
			return derr
		}
		if derr := tx.Reservations().AddPayment(ctx, r.ID(), payment); derr != nil {
			return storageErr(derr, errs.ErrReservationNotFound)
		}
		if derr := tx.Reservations().Update(ctx, r); derr != nil {
			return storageErr(derr, errs.ErrReservationNotFound)
		}

		earned, derr := uc.earnForPayment(ctx, tx, r, payment.Amount, now)
		if derr != nil {
			return derr
		}
		result = &PaymentResult{
			Reservation:  queries.NewReservationView(r),
			Payment:      payment,
			Outstanding:  outstanding,
			PointsEarned: earned,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("payment recorded",
		slog.String("confirmation_number", c.Value()),
		slog.String("amount", result.Payment.Amount.String()),
		slog.String("method", method.String()),
		slog.String("outstanding", result.Outstanding.String()),
		slog.Int64("points_earned", result.PointsEarned))
	return result, nil
}

type transitionFunc func(ctx context.Context, tx shared.Tx, r *reservation.Reservation, now time.Time) ([]room.AvailabilityChanged, error)

// transition loads the reservation under lock, applies fn and stores the
// result. Room events are published only once the transaction commits.
func (uc *reservationUseCaseImpl) transition(ctx context.Context, confirmation, logMsg string, fn transitionFunc) (*queries.ReservationView, error) {
	c, err := reservation.NewConfirmationNumber(confirmation)
	if err != nil {
		return nil, err
	}

	var (
		updated *reservation.Reservation
		events  []room.AvailabilityChanged
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, derr := tx.Reservations().FindByConfirmation(ctx, c, true)
		if derr != nil {
			return storageErr(derr, errs.ErrReservationNotFound)
		}
		events, derr = fn(ctx, tx, r, uc.clock.Now())
		if derr != nil {
			return derr
		}
		if derr := tx.Reservations().Update(ctx, r); derr != nil {
			return storageErr(derr, errs.ErrReservationNotFound)
		}
		updated = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info(logMsg,
		slog.String("confirmation_number", updated.Confirmation().Value()),
		slog.String("reservation_id", updated.ID().String()),
		slog.String("status", updated.Status().String()))
	uc.notifier.Notify(ctx, events)
	return queries.NewReservationView(updated), nil
}

func (uc *reservationUseCaseImpl) linkedAccount(ctx context.Context, tx shared.Tx, number *loyalty.Number, guestID uuid.UUID) (*loyalty.Account, error) {
	if number == nil {
		return nil, nil
	}
	account, err := tx.Loyalty().FindByNumber(ctx, *number, true)
	if err != nil {
		return nil, storageErr(err, errs.ErrLoyaltyAccountNotFound)
	}
	if account.GuestID() != guestID {
		return nil, errs.ErrLoyaltyAccountMismatch
	}
	return account, nil
}

// ensureUniqueConfirmation reissues the confirmation number while it
// collides with a stored one.
func (uc *reservationUseCaseImpl) ensureUniqueConfirmation(ctx context.Context, tx shared.Tx, r *reservation.Reservation) error {
	for attempt := 0; attempt < maxConfirmationAttempts; attempt++ {
		taken, err := tx.Reservations().ConfirmationExists(ctx, r.Confirmation())
		if err != nil {
			return storageErr(err, nil)
		}
		if !taken {
			return nil
		}
		uc.logger.Warn("confirmation number collision, reissuing",
			slog.String("confirmation_number", r.Confirmation().Value()),
			slog.Int("attempt", attempt+1))
		next, err := uc.factory.Confirmations.Next()
		if err != nil {
			return err
		}
		r.Reissue(next)
	}
	return errs.ErrConfirmationNumbersExhausted
}

func (uc *reservationUseCaseImpl) refundRedemptions(ctx context.Context, tx shared.Tx, r *reservation.Reservation, now time.Time) error {
	if r.LoyaltyAccountID() == nil {
		return nil
	}
	txns, err := tx.Loyalty().TransactionsForReservation(ctx, r.ID())
	if err != nil {
		return storageErr(err, nil)
	}
	net := loyalty.RedeemedFor(txns, r.ID())
	if net <= 0 {
		return nil
	}
	return uc.refundPoints(ctx, tx, r, net, now)
}

func (uc *reservationUseCaseImpl) refundPoints(ctx context.Context, tx shared.Tx, r *reservation.Reservation, points int64, now time.Time) error {
	if r.LoyaltyAccountID() == nil {
		return nil
	}
	account, err := tx.Loyalty().FindByID(ctx, *r.LoyaltyAccountID(), true)
	if err != nil {
		return storageErr(err, errs.ErrLoyaltyAccountNotFound)
	}
	id := r.ID()
	txn, err := account.Refund(points, &id, now)
	if err != nil {
		return err
	}
	uc.logger.Info("redeemed points refunded",
		slog.String("confirmation_number", r.Confirmation().Value()),
		slog.Int64("points", points))
	return saveLedger(ctx, tx, account, txn)
}

func (uc *reservationUseCaseImpl) earnForPayment(ctx context.Context, tx shared.Tx, r *reservation.Reservation, amount money.Money, now time.Time) (int64, error) {
	if r.LoyaltyAccountID() == nil {
		return 0, nil
	}
	account, err := tx.Loyalty().FindByID(ctx, *r.LoyaltyAccountID(), true)
	if err != nil {
		return 0, storageErr(err, errs.ErrLoyaltyAccountNotFound)
	}
	id := r.ID()
	earned, txn := account.Earn(amount, uc.factory.Engine.LoyaltyConfig(), &id, now)
	if txn == nil {
		return 0, nil
	}
	return earned, saveLedger(ctx, tx, account, txn)
}

func lockFreeRooms(ctx context.Context, tx shared.Tx, b reservation.Booking) ([]*room.Room, error) {
	var free []*room.Room
	for roomType := range b.RoomsByType() {
		rooms, err := tx.Rooms().FindAvailable(ctx, roomType, b.Stay, true)
		if err != nil {
			return nil, storageErr(err, nil)
		}
		free = append(free, rooms...)
	}
	return free, nil
}

func saveLedger(ctx context.Context, tx shared.Tx, account *loyalty.Account, txn *loyalty.Transaction) error {
	if err := tx.Loyalty().Update(ctx, account); err != nil {
		return storageErr(err, errs.ErrLoyaltyAccountNotFound)
	}
	if err := tx.Loyalty().AppendTransaction(ctx, txn); err != nil {
		return storageErr(err, nil)
	}
	return nil
}
