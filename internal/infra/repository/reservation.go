package repository

import (
	"context"
	"log/slog"

	"hotel-kiosk/internal/domain/reservation"
	"hotel-kiosk/internal/infra"
	"hotel-kiosk/internal/infra/repository/converter"
	"hotel-kiosk/internal/infra/sqlstore"
	"hotel-kiosk/internal/pkg/errs"

	"github.com/google/uuid"
)

const confirmationNumberConstraint = "reservations_confirmation_number_key"

type ReservationQueries interface {
	CreateReservation(ctx context.Context, db sqlstore.DBTX, arg sqlstore.Reservation) error
	CreateRoomAssignment(ctx context.Context, db sqlstore.DBTX, arg sqlstore.RoomAssignment) error
	CreateReservationAddOn(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ReservationAddOn) error
	CreatePayment(ctx context.Context, db sqlstore.DBTX, arg sqlstore.Payment) error
	ConfirmationExists(ctx context.Context, db sqlstore.DBTX, confirmation string) (bool, error)
	GetReservationByConfirmation(ctx context.Context, db sqlstore.DBTX, confirmation string, forUpdate bool) (sqlstore.Reservation, error)
	ListRoomAssignments(ctx context.Context, db sqlstore.DBTX, reservationID uuid.UUID) ([]sqlstore.RoomAssignment, error)
	ListReservationAddOns(ctx context.Context, db sqlstore.DBTX, reservationID uuid.UUID) ([]sqlstore.ReservationAddOn, error)
	ListPayments(ctx context.Context, db sqlstore.DBTX, reservationID uuid.UUID) ([]sqlstore.Payment, error)
	UpdateReservation(ctx context.Context, db sqlstore.DBTX, arg sqlstore.Reservation) (int64, error)
	SetAssignmentsActive(ctx context.Context, db sqlstore.DBTX, reservationID uuid.UUID, active bool) error
}

type ReservationRepository struct {
	queries ReservationQueries
	db      sqlstore.DBTX
	logger  *slog.Logger
}

func NewReservationRepository(queries ReservationQueries, db sqlstore.DBTX, logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToRow(res)); err != nil {
		wrapped := infra.WrapDBErr(r.logger, "failed to create reservation", err)
		if infra.ConstraintName(err) == confirmationNumberConstraint {
			return errs.Mark(wrapped, reservation.ErrDuplicateConfirmationNumber)
		}
		return wrapped
	}
	for _, a := range converter.AssignmentRows(res) {
		if err := r.queries.CreateRoomAssignment(ctx, r.db, a); err != nil {
			return infra.WrapDBErr(r.logger, "failed to assign room", err)
		}
	}
	for _, l := range converter.AddOnRows(res) {
		if err := r.queries.CreateReservationAddOn(ctx, r.db, l); err != nil {
			return infra.WrapDBErr(r.logger, "failed to store add-on", err)
		}
	}
	for _, p := range res.Payments() {
		if err := r.queries.CreatePayment(ctx, r.db, converter.PaymentToRow(res.ID(), p)); err != nil {
			return infra.WrapDBErr(r.logger, "failed to store payment", err)
		}
	}
	return nil
}

func (r *ReservationRepository) ConfirmationExists(ctx context.Context, c reservation.ConfirmationNumber) (bool, error) {
	exists, err := r.queries.ConfirmationExists(ctx, r.db, c.Value())
	if err != nil {
		return false, infra.WrapDBErr(r.logger, "failed to check confirmation number", err)
	}
	return exists, nil
}

func (r *ReservationRepository) FindByConfirmation(ctx context.Context, c reservation.ConfirmationNumber, forUpdate bool) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByConfirmation(ctx, r.db, c.Value(), forUpdate)
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to find reservation", err)
	}
	assignments, err := r.queries.ListRoomAssignments(ctx, r.db, row.ID)
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to load room assignments", err)
	}
	addOns, err := r.queries.ListReservationAddOns(ctx, r.db, row.ID)
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to load add-ons", err)
	}
	payments, err := r.queries.ListPayments(ctx, r.db, row.ID)
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to load payments", err)
	}

	res, err := converter.ReservationFromRows(row, assignments, addOns, payments)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored reservation is invalid", err)
	}
	return res, nil
}

// Update persists the mutable columns and keeps the rooms' overlap rows in
// step with whether the status still holds inventory.
func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	affected, err := r.queries.UpdateReservation(ctx, r.db, converter.ReservationToRow(res))
	if err != nil {
		return infra.WrapDBErr(r.logger, "failed to update reservation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "reservation not found", nil)
	}
	if err := r.queries.SetAssignmentsActive(ctx, r.db, res.ID(), res.Status().HoldsInventory()); err != nil {
		return infra.WrapDBErr(r.logger, "failed to update room assignments", err)
	}
	return nil
}

func (r *ReservationRepository) AddPayment(ctx context.Context, reservationID uuid.UUID, p reservation.Payment) error {
	if err := r.queries.CreatePayment(ctx, r.db, converter.PaymentToRow(reservationID, p)); err != nil {
		return infra.WrapDBErr(r.logger, "failed to record payment", err)
	}
	return nil
}
