package reservation

import (
	"errors"
	"time"

	"hotel-kiosk/internal/domain/catalog"
	"hotel-kiosk/internal/domain/pricing"
	"hotel-kiosk/internal/domain/staff"
	"hotel-kiosk/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDateRange            = errors.New("invalid date range")
	ErrOccupancyExceeded           = errors.New("occupancy exceeded")
	ErrInsufficientCapacity        = errors.New("insufficient capacity")
	ErrIllegalStatusTransition     = errors.New("illegal status transition")
	ErrOutstandingBalance          = errors.New("outstanding balance")
	ErrDuplicateConfirmationNumber = errors.New("duplicate confirmation number")
	ErrInvalidConfirmationNumber   = errors.New("invalid confirmation number")
	ErrInvalidStatus               = errors.New("invalid reservation status")
	ErrInvalidPaymentMethod        = errors.New("invalid payment method")
	ErrInvalidPaymentAmount        = errors.New("payment amount must be positive")
	ErrPaymentNotAccepted          = errors.New("reservation does not accept payments")
	ErrGuestCountMismatch          = errors.New("room guest counts do not match party size")
	ErrNoAdults                    = errors.New("at least one adult is required")
)

type RoomAssignment struct {
	RoomID     uuid.UUID
	RoomNumber string
	RoomType   catalog.RoomTypeCode
	Guests     int
	// NightlyRate is the price captured at booking time.
	NightlyRate money.Money
	Multiplier  decimal.Decimal
}

type AddOnLineItem struct {
	AddOn     catalog.AddOnCode
	Model     catalog.PricingModel
	Quantity  int
	UnitPrice money.Money
	Total     money.Money
}

type Payment struct {
	ID     uuid.UUID
	Amount money.Money
	Method PaymentMethod
	PaidAt time.Time
}

// Charges are the priced totals of a reservation.
type Charges struct {
	RoomSubtotal          money.Money
	AddOnsTotal           money.Money
	Subtotal              money.Money
	DiscountPercentage    decimal.Decimal
	DiscountAmount        money.Money
	LoyaltyPointsRedeemed int64
	LoyaltyDiscount       money.Money
	TaxAmount             money.Money
	Total                 money.Money
}

func ChargesFrom(b pricing.Breakdown) Charges {
	return Charges{
		RoomSubtotal:          b.RoomSubtotal,
		AddOnsTotal:           b.AddOnsSubtotal,
		Subtotal:              b.Subtotal,
		DiscountPercentage:    b.DiscountPercentage,
		DiscountAmount:        b.DiscountAmount,
		LoyaltyPointsRedeemed: b.LoyaltyPointsRedeemed,
		LoyaltyDiscount:       b.LoyaltyDiscount,
		TaxAmount:             b.TaxAmount,
		Total:                 b.Total,
	}
}

type Reservation struct {
	id               uuid.UUID
	confirmation     ConfirmationNumber
	guestID          uuid.UUID
	loyaltyAccountID *uuid.UUID
	stay             DateRange
	adults           int
	children         int
	status           Status
	assignments      []RoomAssignment
	addOns           []AddOnLineItem
	payments         []Payment
	charges          Charges
	discountedBy     *uuid.UUID
	amountPaid       money.Money
	checkedInAt      *time.Time
	checkedOutAt     *time.Time
	cancelledAt      *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

func newPending(
	confirmation ConfirmationNumber,
	guestID uuid.UUID,
	loyaltyAccountID *uuid.UUID,
	stay DateRange,
	adults, children int,
	assignments []RoomAssignment,
	addOns []AddOnLineItem,
	charges Charges,
	discountedBy *uuid.UUID,
	now time.Time,
) *Reservation {
	return &Reservation{
		id:               uuid.New(),
		confirmation:     confirmation,
		guestID:          guestID,
		loyaltyAccountID: loyaltyAccountID,
		stay:             stay,
		adults:           adults,
		children:         children,
		status:           StatusPending,
		assignments:      assignments,
		addOns:           addOns,
		charges:          charges,
		discountedBy:     discountedBy,
		createdAt:        now,
		updatedAt:        now,
	}
}

type Snapshot struct {
	ID               uuid.UUID
	Confirmation     ConfirmationNumber
	GuestID          uuid.UUID
	LoyaltyAccountID *uuid.UUID
	Stay             DateRange
	Adults           int
	Children         int
	Status           Status
	Assignments      []RoomAssignment
	AddOns           []AddOnLineItem
	Payments         []Payment
	Charges          Charges
	DiscountedBy     *uuid.UUID
	CheckedInAt      *time.Time
	CheckedOutAt     *time.Time
	CancelledAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ReconstructReservation rebuilds the aggregate from storage. amountPaid is
// always derived from the payments.
func ReconstructReservation(s Snapshot) *Reservation {
	r := &Reservation{
		id:               s.ID,
		confirmation:     s.Confirmation,
		guestID:          s.GuestID,
		loyaltyAccountID: s.LoyaltyAccountID,
		stay:             s.Stay,
		adults:           s.Adults,
		children:         s.Children,
		status:           s.Status,
		assignments:      s.Assignments,
		addOns:           s.AddOns,
		payments:         s.Payments,
		charges:          s.Charges,
		discountedBy:     s.DiscountedBy,
		checkedInAt:      s.CheckedInAt,
		checkedOutAt:     s.CheckedOutAt,
		cancelledAt:      s.CancelledAt,
		createdAt:        s.CreatedAt,
		updatedAt:        s.UpdatedAt,
	}
	r.amountPaid = r.sumPayments()
	return r
}

func (r *Reservation) Snapshot() Snapshot {
	return Snapshot{
		ID:               r.id,
		Confirmation:     r.confirmation,
		GuestID:          r.guestID,
		LoyaltyAccountID: r.loyaltyAccountID,
		Stay:             r.stay,
		Adults:           r.adults,
		Children:         r.children,
		Status:           r.status,
		Assignments:      append([]RoomAssignment(nil), r.assignments...),
		AddOns:           append([]AddOnLineItem(nil), r.addOns...),
		Payments:         append([]Payment(nil), r.payments...),
		Charges:          r.charges,
		DiscountedBy:     r.discountedBy,
		CheckedInAt:      r.checkedInAt,
		CheckedOutAt:     r.checkedOutAt,
		CancelledAt:      r.cancelledAt,
		CreatedAt:        r.createdAt,
		UpdatedAt:        r.updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID                    { return r.id }
func (r *Reservation) Confirmation() ConfirmationNumber { return r.confirmation }
func (r *Reservation) GuestID() uuid.UUID               { return r.guestID }
func (r *Reservation) LoyaltyAccountID() *uuid.UUID     { return r.loyaltyAccountID }
func (r *Reservation) Stay() DateRange                  { return r.stay }
func (r *Reservation) Adults() int                      { return r.adults }
func (r *Reservation) Children() int                    { return r.children }
func (r *Reservation) Status() Status                   { return r.status }
func (r *Reservation) Assignments() []RoomAssignment    { return r.assignments }
func (r *Reservation) AddOns() []AddOnLineItem          { return r.addOns }
func (r *Reservation) Payments() []Payment              { return r.payments }
func (r *Reservation) Charges() Charges                 { return r.charges }
func (r *Reservation) DiscountedBy() *uuid.UUID         { return r.discountedBy }
func (r *Reservation) AmountPaid() money.Money          { return r.amountPaid }
func (r *Reservation) CheckedInAt() *time.Time          { return r.checkedInAt }
func (r *Reservation) CheckedOutAt() *time.Time         { return r.checkedOutAt }
func (r *Reservation) CancelledAt() *time.Time          { return r.cancelledAt }
func (r *Reservation) CreatedAt() time.Time             { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time             { return r.updatedAt }

// OutstandingBalance is total minus amount paid. It is negative when overpaid.
func (r *Reservation) OutstandingBalance() money.Money {
	return r.charges.Total.Sub(r.amountPaid)
}

// Reissue replaces the confirmation number of a reservation that has not
// been stored yet.
func (r *Reservation) Reissue(c ConfirmationNumber) {
	r.confirmation = c
}

func (r *Reservation) RoomIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(r.assignments))
	for _, a := range r.assignments {
		ids = append(ids, a.RoomID)
	}
	return ids
}

func (r *Reservation) Confirm(now time.Time) error {
	return r.transition(StatusConfirmed, now)
}

func (r *Reservation) CheckIn(now time.Time) error {
	if err := r.transition(StatusCheckedIn, now); err != nil {
		return err
	}
	r.checkedInAt = &now
	return nil
}

func (r *Reservation) CheckOut(now time.Time) error {
	if !r.status.CanTransitionTo(StatusCheckedOut) {
		return ErrIllegalStatusTransition
	}
	if r.amountPaid.LessThan(r.charges.Total) {
		return ErrOutstandingBalance
	}
	r.status = StatusCheckedOut
	r.checkedOutAt = &now
	r.updatedAt = now
	return nil
}

func (r *Reservation) Cancel(now time.Time) error {
	if err := r.transition(StatusCancelled, now); err != nil {
		return err
	}
	r.cancelledAt = &now
	return nil
}

func (r *Reservation) MarkNoShow(now time.Time) error {
	return r.transition(StatusNoShow, now)
}

// RecordPayment appends a payment and recomputes amountPaid from every
// payment on file. It returns the outstanding balance.
func (r *Reservation) RecordPayment(amount money.Money, method PaymentMethod, now time.Time) (Payment, money.Money, error) {
	if !amount.IsPositive() {
		return Payment{}, money.Zero, ErrInvalidPaymentAmount
	}
	if _, err := NewPaymentMethod(method.String()); err != nil {
		return Payment{}, money.Zero, err
	}
	if r.status == StatusCancelled || r.status == StatusNoShow {
		return Payment{}, money.Zero, ErrPaymentNotAccepted
	}

	p := Payment{ID: uuid.New(), Amount: amount, Method: method, PaidAt: now}
	r.payments = append(r.payments, p)
	r.amountPaid = r.sumPayments()
	r.updatedAt = now
	return p, r.OutstandingBalance(), nil
}

// ApplyDiscount re-settles the totals with a new percentage. When the
// discounted amount can no longer absorb the loyalty discount, the redeemed
// points shrink to what still applies, or to zero below the redemption
// minimum. It returns the points released for refund.
func (r *Reservation) ApplyDiscount(engine *pricing.Engine, d pricing.Discount, actor staff.Actor, now time.Time) (int64, error) {
	switch r.status {
	case StatusPending, StatusConfirmed, StatusCheckedIn:
	default:
		return 0, ErrIllegalStatusTransition
	}
	if err := staff.CheckDiscount(d.Role, d.Percentage); err != nil {
		return 0, err
	}

	cfg := engine.LoyaltyConfig()
	points := r.charges.LoyaltyPointsRedeemed
	granted := cfg.PointsValue(points)
	s := engine.Settle(r.charges.Subtotal, d.Percentage, granted)
	if s.LoyaltyDiscount.LessThan(granted) {
		points = cfg.PointsFor(s.LoyaltyDiscount)
		if points < cfg.MinRedemption {
			points = 0
		}
		s = engine.Settle(r.charges.Subtotal, d.Percentage, cfg.PointsValue(points))
	}
	released := r.charges.LoyaltyPointsRedeemed - points

	r.charges.DiscountPercentage = d.Percentage
	r.charges.DiscountAmount = s.DiscountAmount
	r.charges.LoyaltyPointsRedeemed = points
	r.charges.LoyaltyDiscount = s.LoyaltyDiscount
	r.charges.TaxAmount = s.TaxAmount
	r.charges.Total = s.Total
	id := actor.ID
	r.discountedBy = &id
	r.updatedAt = now
	return released, nil
}

func (r *Reservation) transition(to Status, now time.Time) error {
	if !r.status.CanTransitionTo(to) {
		return ErrIllegalStatusTransition
	}
	r.status = to
	r.updatedAt = now
	return nil
}

func (r *Reservation) sumPayments() money.Money {
	total := money.Zero
	for _, p := range r.payments {
		total = total.Add(p.Amount)
	}
	return total
}
