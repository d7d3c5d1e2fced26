package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reservationColumns = `id, confirmation_number, guest_id, loyalty_account_id, check_in, check_out,
    adults, children, status, room_subtotal_cents, add_ons_total_cents, subtotal_cents,
    discount_percentage, discount_cents, loyalty_points_redeemed, loyalty_discount_cents,
    tax_cents, total_cents, discounted_by, checked_in_at, checked_out_at, cancelled_at,
    created_at, updated_at`

func scanReservation(row pgx.Row) (Reservation, error) {
	var i Reservation
	err := row.Scan(
		&i.ID,
		&i.ConfirmationNumber,
		&i.GuestID,
		&i.LoyaltyAccountID,
		&i.CheckIn,
		&i.CheckOut,
		&i.Adults,
		&i.Children,
		&i.Status,
		&i.RoomSubtotalCents,
		&i.AddOnsTotalCents,
		&i.SubtotalCents,
		&i.DiscountPercentage,
		&i.DiscountCents,
		&i.LoyaltyPointsRedeemed,
		&i.LoyaltyDiscountCents,
		&i.TaxCents,
		&i.TotalCents,
		&i.DiscountedBy,
		&i.CheckedInAt,
		&i.CheckedOutAt,
		&i.CancelledAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createReservation = `INSERT INTO reservations (` + reservationColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
        $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg Reservation) error {
	_, err := db.Exec(ctx, createReservation,
		arg.ID,
		arg.ConfirmationNumber,
		arg.GuestID,
		arg.LoyaltyAccountID,
		arg.CheckIn,
		arg.CheckOut,
		arg.Adults,
		arg.Children,
		arg.Status,
		arg.RoomSubtotalCents,
		arg.AddOnsTotalCents,
		arg.SubtotalCents,
		arg.DiscountPercentage,
		arg.DiscountCents,
		arg.LoyaltyPointsRedeemed,
		arg.LoyaltyDiscountCents,
		arg.TaxCents,
		arg.TotalCents,
		arg.DiscountedBy,
		arg.CheckedInAt,
		arg.CheckedOutAt,
		arg.CancelledAt,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const confirmationExists = `SELECT EXISTS (SELECT 1 FROM reservations WHERE confirmation_number = $1)`

func (q *Queries) ConfirmationExists(ctx context.Context, db DBTX, confirmation string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, confirmationExists, confirmation).Scan(&exists)
	return exists, err
}

const getReservationByConfirmation = `SELECT ` + reservationColumns + ` FROM reservations WHERE confirmation_number = $1`

func (q *Queries) GetReservationByConfirmation(ctx context.Context, db DBTX, confirmation string, forUpdate bool) (Reservation, error) {
	return scanReservation(db.QueryRow(ctx, getReservationByConfirmation+lockClause(forUpdate), confirmation))
}

const updateReservation = `
UPDATE reservations
SET status = $2,
    room_subtotal_cents = $3,
    add_ons_total_cents = $4,
    subtotal_cents = $5,
    discount_percentage = $6,
    discount_cents = $7,
    loyalty_points_redeemed = $8,
    loyalty_discount_cents = $9,
    tax_cents = $10,
    total_cents = $11,
    discounted_by = $12,
    checked_in_at = $13,
    checked_out_at = $14,
    cancelled_at = $15,
    updated_at = $16
WHERE id = $1`

func (q *Queries) UpdateReservation(ctx context.Context, db DBTX, arg Reservation) (int64, error) {
	tag, err := db.Exec(ctx, updateReservation,
		arg.ID,
		arg.Status,
		arg.RoomSubtotalCents,
		arg.AddOnsTotalCents,
		arg.SubtotalCents,
		arg.DiscountPercentage,
		arg.DiscountCents,
		arg.LoyaltyPointsRedeemed,
		arg.LoyaltyDiscountCents,
		arg.TaxCents,
		arg.TotalCents,
		arg.DiscountedBy,
		arg.CheckedInAt,
		arg.CheckedOutAt,
		arg.CancelledAt,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const createRoomAssignment = `
INSERT INTO room_assignments (reservation_id, room_id, position, room_number, room_type, guests,
                              nightly_rate_cents, multiplier, check_in, check_out, active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

func (q *Queries) CreateRoomAssignment(ctx context.Context, db DBTX, arg RoomAssignment) error {
	_, err := db.Exec(ctx, createRoomAssignment,
		arg.ReservationID,
		arg.RoomID,
		arg.Position,
		arg.RoomNumber,
		arg.RoomType,
		arg.Guests,
		arg.NightlyRateCents,
		arg.Multiplier,
		arg.CheckIn,
		arg.CheckOut,
		arg.Active,
	)
	return err
}

const listRoomAssignments = `
SELECT reservation_id, room_id, position, room_number, room_type, guests,
       nightly_rate_cents, multiplier, check_in, check_out, active
FROM room_assignments
WHERE reservation_id = $1
ORDER BY position`

func (q *Queries) ListRoomAssignments(ctx context.Context, db DBTX, reservationID uuid.UUID) ([]RoomAssignment, error) {
	rows, err := db.Query(ctx, listRoomAssignments, reservationID)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.Row) (RoomAssignment, error) {
		var i RoomAssignment
		err := row.Scan(
			&i.ReservationID,
			&i.RoomID,
			&i.Position,
			&i.RoomNumber,
			&i.RoomType,
			&i.Guests,
			&i.NightlyRateCents,
			&i.Multiplier,
			&i.CheckIn,
			&i.CheckOut,
			&i.Active,
		)
		return i, err
	})
}

const setAssignmentsActive = `UPDATE room_assignments SET active = $2 WHERE reservation_id = $1`

// SetAssignmentsActive toggles whether the reservation's rooms take part in
// the overlap constraint.
func (q *Queries) SetAssignmentsActive(ctx context.Context, db DBTX, reservationID uuid.UUID, active bool) error {
	_, err := db.Exec(ctx, setAssignmentsActive, reservationID, active)
	return err
}

const createReservationAddOn = `
INSERT INTO reservation_add_ons (reservation_id, position, add_on, pricing_model, quantity, unit_price_cents, total_cents)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (q *Queries) CreateReservationAddOn(ctx context.Context, db DBTX, arg ReservationAddOn) error {
	_, err := db.Exec(ctx, createReservationAddOn,
		arg.ReservationID,
		arg.Position,
		arg.AddOn,
		arg.PricingModel,
		arg.Quantity,
		arg.UnitPriceCents,
		arg.TotalCents,
	)
	return err
}

const listReservationAddOns = `
SELECT reservation_id, position, add_on, pricing_model, quantity, unit_price_cents, total_cents
FROM reservation_add_ons
WHERE reservation_id = $1
ORDER BY position`

func (q *Queries) ListReservationAddOns(ctx context.Context, db DBTX, reservationID uuid.UUID) ([]ReservationAddOn, error) {
	rows, err := db.Query(ctx, listReservationAddOns, reservationID)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.Row) (ReservationAddOn, error) {
		var i ReservationAddOn
		err := row.Scan(
			&i.ReservationID,
			&i.Position,
			&i.AddOn,
			&i.PricingModel,
			&i.Quantity,
			&i.UnitPriceCents,
			&i.TotalCents,
		)
		return i, err
	})
}

const createPayment = `
INSERT INTO payments (id, reservation_id, amount_cents, method, paid_at)
VALUES ($1, $2, $3, $4, $5)`

func (q *Queries) CreatePayment(ctx context.Context, db DBTX, arg Payment) error {
	_, err := db.Exec(ctx, createPayment, arg.ID, arg.ReservationID, arg.AmountCents, arg.Method, arg.PaidAt)
	return err
}

const listPayments = `
SELECT id, reservation_id, amount_cents, method, paid_at
FROM payments
WHERE reservation_id = $1
ORDER BY paid_at, id`

func (q *Queries) ListPayments(ctx context.Context, db DBTX, reservationID uuid.UUID) ([]Payment, error) {
	rows, err := db.Query(ctx, listPayments, reservationID)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.Row) (Payment, error) {
		var i Payment
		err := row.Scan(&i.ID, &i.ReservationID, &i.AmountCents, &i.Method, &i.PaidAt)
		return i, err
	})
}
