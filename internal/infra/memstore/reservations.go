package memstore

import (
	"context"

	"hotel-kiosk/internal/domain/reservation"
	"hotel-kiosk/internal/infra"

	"github.com/google/uuid"
)

type reservationRepo struct {
	tx *memTx
}

func (r *reservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	if r.exists(res.Confirmation()) {
		return reservation.ErrDuplicateConfirmationNumber
	}
	if _, ok := r.tx.state.guests[res.GuestID()]; !ok {
		return infra.RepositoryError{Kind: infra.KindForeignKeyViolated}
	}
	r.tx.state.reservations[res.ID()] = res.Snapshot()
	return nil
}

func (r *reservationRepo) ConfirmationExists(_ context.Context, c reservation.ConfirmationNumber) (bool, error) {
	return r.exists(c), nil
}

func (r *reservationRepo) exists(c reservation.ConfirmationNumber) bool {
	for _, snap := range r.tx.state.reservations {
		if snap.Confirmation == c {
			return true
		}
	}
	return false
}

func (r *reservationRepo) FindByConfirmation(_ context.Context, c reservation.ConfirmationNumber, _ bool) (*reservation.Reservation, error) {
	for _, snap := range r.tx.state.reservations {
		if snap.Confirmation == c {
			return reconstruct(snap), nil
		}
	}
	return nil, infra.NotFound("reservation not found")
}

func (r *reservationRepo) Update(_ context.Context, res *reservation.Reservation) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	stored, ok := r.tx.state.reservations[res.ID()]
	if !ok {
		return infra.NotFound("reservation not found")
	}
	snap := res.Snapshot()
	// Payments are only written through AddPayment.
	snap.Payments = stored.Payments
	r.tx.state.reservations[res.ID()] = snap
	return nil
}

func (r *reservationRepo) AddPayment(_ context.Context, reservationID uuid.UUID, p reservation.Payment) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	stored, ok := r.tx.state.reservations[reservationID]
	if !ok {
		return infra.RepositoryError{Kind: infra.KindForeignKeyViolated}
	}
	stored.Payments = append(append([]reservation.Payment(nil), stored.Payments...), p)
	r.tx.state.reservations[reservationID] = stored
	return nil
}

// reconstruct hands out an aggregate that shares no slices with the state.
func reconstruct(s reservation.Snapshot) *reservation.Reservation {
	s.Assignments = append([]reservation.RoomAssignment(nil), s.Assignments...)
	s.AddOns = append([]reservation.AddOnLineItem(nil), s.AddOns...)
	s.Payments = append([]reservation.Payment(nil), s.Payments...)
	return reservation.ReconstructReservation(s)
}
