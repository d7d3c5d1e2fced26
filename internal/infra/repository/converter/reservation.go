package converter

import (
	"hotel-kiosk/internal/domain/catalog"
	"hotel-kiosk/internal/domain/reservation"
	"hotel-kiosk/internal/infra/sqlstore"
	"hotel-kiosk/internal/pkg/money"

	"github.com/google/uuid"
)

func ReservationToRow(r *reservation.Reservation) sqlstore.Reservation {
	c := r.Charges()
	return sqlstore.Reservation{
		ID:                    r.ID(),
		ConfirmationNumber:    r.Confirmation().Value(),
		GuestID:               r.GuestID(),
		LoyaltyAccountID:      r.LoyaltyAccountID(),
		CheckIn:               r.Stay().CheckIn(),
		CheckOut:              r.Stay().CheckOut(),
		Adults:                int32(r.Adults()),
		Children:              int32(r.Children()),
		Status:                r.Status().String(),
		RoomSubtotalCents:     c.RoomSubtotal.Cents(),
		AddOnsTotalCents:      c.AddOnsTotal.Cents(),
		SubtotalCents:         c.Subtotal.Cents(),
		DiscountPercentage:    c.DiscountPercentage,
		DiscountCents:         c.DiscountAmount.Cents(),
		LoyaltyPointsRedeemed: c.LoyaltyPointsRedeemed,
		LoyaltyDiscountCents:  c.LoyaltyDiscount.Cents(),
		TaxCents:              c.TaxAmount.Cents(),
		TotalCents:            c.Total.Cents(),
		DiscountedBy:          r.DiscountedBy(),
		CheckedInAt:           r.CheckedInAt(),
		CheckedOutAt:          r.CheckedOutAt(),
		CancelledAt:           r.CancelledAt(),
		CreatedAt:             r.CreatedAt(),
		UpdatedAt:             r.UpdatedAt(),
	}
}

// AssignmentRows copies the stay dates onto every room row so the overlap
// constraint can see them.
func AssignmentRows(r *reservation.Reservation) []sqlstore.RoomAssignment {
	out := make([]sqlstore.RoomAssignment, 0, len(r.Assignments()))
	for i, a := range r.Assignments() {
		out = append(out, sqlstore.RoomAssignment{
			ReservationID:    r.ID(),
			RoomID:           a.RoomID,
			Position:         int32(i),
			RoomNumber:       a.RoomNumber,
			RoomType:         a.RoomType.String(),
			Guests:           int32(a.Guests),
			NightlyRateCents: a.NightlyRate.Cents(),
			Multiplier:       a.Multiplier,
			CheckIn:          r.Stay().CheckIn(),
			CheckOut:         r.Stay().CheckOut(),
			Active:           r.Status().HoldsInventory(),
		})
	}
	return out
}

func AddOnRows(r *reservation.Reservation) []sqlstore.ReservationAddOn {
	out := make([]sqlstore.ReservationAddOn, 0, len(r.AddOns()))
	for i, l := range r.AddOns() {
		out = append(out, sqlstore.ReservationAddOn{
			ReservationID:  r.ID(),
			Position:       int32(i),
			AddOn:          l.AddOn.String(),
			PricingModel:   l.Model.String(),
			Quantity:       int32(l.Quantity),
			UnitPriceCents: l.UnitPrice.Cents(),
			TotalCents:     l.Total.Cents(),
		})
	}
	return out
}

func PaymentToRow(reservationID uuid.UUID, p reservation.Payment) sqlstore.Payment {
	return sqlstore.Payment{
		ID:            p.ID,
		ReservationID: reservationID,
		AmountCents:   p.Amount.Cents(),
		Method:        p.Method.String(),
		PaidAt:        p.PaidAt,
	}
}

func ReservationFromRows(
	row sqlstore.Reservation,
	assignments []sqlstore.RoomAssignment,
	addOns []sqlstore.ReservationAddOn,
	payments []sqlstore.Payment,
) (*reservation.Reservation, error) {
	confirmation, err := reservation.NewConfirmationNumber(row.ConfirmationNumber)
	if err != nil {
		return nil, err
	}
	stay, err := reservation.NewDateRange(row.CheckIn, row.CheckOut)
	if err != nil {
		return nil, err
	}

	snap := reservation.Snapshot{
		ID:               row.ID,
		Confirmation:     confirmation,
		GuestID:          row.GuestID,
		LoyaltyAccountID: row.LoyaltyAccountID,
		Stay:             stay,
		Adults:           int(row.Adults),
		Children:         int(row.Children),
		Status:           reservation.Status(row.Status),
		Charges: reservation.Charges{
			RoomSubtotal:          money.FromCents(row.RoomSubtotalCents),
			AddOnsTotal:           money.FromCents(row.AddOnsTotalCents),
			Subtotal:              money.FromCents(row.SubtotalCents),
			DiscountPercentage:    row.DiscountPercentage,
			DiscountAmount:        money.FromCents(row.DiscountCents),
			LoyaltyPointsRedeemed: row.LoyaltyPointsRedeemed,
			LoyaltyDiscount:       money.FromCents(row.LoyaltyDiscountCents),
			TaxAmount:             money.FromCents(row.TaxCents),
			Total:                 money.FromCents(row.TotalCents),
		},
		DiscountedBy: row.DiscountedBy,
		CheckedInAt:  row.CheckedInAt,
		CheckedOutAt: row.CheckedOutAt,
		CancelledAt:  row.CancelledAt,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	for _, a := range assignments {
		snap.Assignments = append(snap.Assignments, reservation.RoomAssignment{
			RoomID:      a.RoomID,
			RoomNumber:  a.RoomNumber,
			RoomType:    catalog.RoomTypeCode(a.RoomType),
			Guests:      int(a.Guests),
			NightlyRate: money.FromCents(a.NightlyRateCents),
			Multiplier:  a.Multiplier,
		})
	}
	for _, l := range addOns {
		snap.AddOns = append(snap.AddOns, reservation.AddOnLineItem{
			AddOn:     catalog.AddOnCode(l.AddOn),
			Model:     catalog.PricingModel(l.PricingModel),
			Quantity:  int(l.Quantity),
			UnitPrice: money.FromCents(l.UnitPriceCents),
			Total:     money.FromCents(l.TotalCents),
		})
	}
	for _, p := range payments {
		snap.Payments = append(snap.Payments, reservation.Payment{
			ID:     p.ID,
			Amount: money.FromCents(p.AmountCents),
			Method: reservation.PaymentMethod(p.Method),
			PaidAt: p.PaidAt,
		})
	}
	return reservation.ReconstructReservation(snap), nil
}
