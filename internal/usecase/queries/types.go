package queries

import (
	"time"

	"hotel-kiosk/internal/domain/catalog"
	"hotel-kiosk/internal/domain/loyalty"
	"hotel-kiosk/internal/domain/pricing"
	"hotel-kiosk/internal/domain/reservation"
	"hotel-kiosk/internal/domain/room"
	"hotel-kiosk/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// ReservationView represents read-optimized reservation data
type ReservationView struct {
	ID                 uuid.UUID            `json:"id"`
	ConfirmationNumber string               `json:"confirmation_number"`
	GuestID            uuid.UUID            `json:"guest_id"`
	LoyaltyAccountID   *uuid.UUID           `json:"loyalty_account_id,omitempty"`
	CheckIn            string               `json:"check_in"`
	CheckOut           string               `json:"check_out"`
	Nights             int                  `json:"nights"`
	Adults             int                  `json:"adults"`
	Children           int                  `json:"children"`
	Status             string               `json:"status"`
	Rooms              []RoomAssignmentView `json:"rooms"`
	AddOns             []AddOnLineView      `json:"add_ons"`
	Payments           []PaymentView        `json:"payments"`
	Charges            ChargesView          `json:"charges"`
	AmountPaid         money.Money          `json:"amount_paid"`
	OutstandingBalance money.Money          `json:"outstanding_balance"`
	DiscountedBy       *uuid.UUID           `json:"discounted_by,omitempty"`
	CheckedInAt        *time.Time           `json:"checked_in_at,omitempty"`
	CheckedOutAt       *time.Time           `json:"checked_out_at,omitempty"`
	CancelledAt        *time.Time           `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

type RoomAssignmentView struct {
	RoomID      uuid.UUID       `json:"room_id"`
	RoomNumber  string          `json:"room_number"`
	RoomType    string          `json:"room_type"`
	Guests      int             `json:"guests"`
	NightlyRate money.Money     `json:"nightly_rate"`
	Multiplier  decimal.Decimal `json:"multiplier"`
}

type AddOnLineView struct {
	AddOn     string      `json:"add_on"`
	Model     string      `json:"pricing_model"`
	Quantity  int         `json:"quantity"`
	UnitPrice money.Money `json:"unit_price"`
	Total     money.Money `json:"total"`
}

type PaymentView struct {
	ID     uuid.UUID   `json:"id"`
	Amount money.Money `json:"amount"`
	Method string      `json:"method"`
	PaidAt time.Time   `json:"paid_at"`
}

type ChargesView struct {
	RoomSubtotal          money.Money     `json:"room_subtotal"`
	AddOnsTotal           money.Money     `json:"add_ons_total"`
	Subtotal              money.Money     `json:"subtotal"`
	DiscountPercentage    decimal.Decimal `json:"discount_percentage"`
	DiscountAmount        money.Money     `json:"discount_amount"`
	LoyaltyPointsRedeemed int64           `json:"loyalty_points_redeemed"`
	LoyaltyDiscount       money.Money     `json:"loyalty_discount"`
	TaxAmount             money.Money     `json:"tax_amount"`
	Total                 money.Money     `json:"total"`
}

type RoomView struct {
	ID          uuid.UUID   `json:"id"`
	Number      string      `json:"number"`
	RoomType    string      `json:"room_type"`
	Floor       int         `json:"floor"`
	Status      string      `json:"status"`
	NightlyRate money.Money `json:"nightly_rate"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type LoyaltyAccountView struct {
	ID               uuid.UUID   `json:"id"`
	Number           string      `json:"loyalty_number"`
	GuestID          uuid.UUID   `json:"guest_id"`
	Balance          int64       `json:"balance"`
	BalanceValue     money.Money `json:"balance_value"`
	LifetimePoints   int64       `json:"lifetime_points"`
	Tier             string      `json:"tier"`
	NextTier         string      `json:"next_tier,omitempty"`
	PointsToNextTier int64       `json:"points_to_next_tier,omitempty"`
	EnrolledAt       time.Time   `json:"enrolled_at"`
	LastActivityAt   time.Time   `json:"last_activity_at"`
}

type LoyaltyTransactionView struct {
	ID            uuid.UUID  `json:"id"`
	Type          string     `json:"type"`
	Points        int64      `json:"points"`
	BalanceAfter  int64      `json:"balance_after"`
	ReservationID *uuid.UUID `json:"reservation_id,omitempty"`
	Description   string     `json:"description,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type QuoteView struct {
	CheckIn  string          `json:"check_in"`
	CheckOut string          `json:"check_out"`
	Nights   int             `json:"nights"`
	Rooms    []QuoteRoomView `json:"rooms"`
	AddOns   []AddOnLineView `json:"add_ons"`
	Charges  ChargesView     `json:"charges"`
}

type QuoteRoomView struct {
	RoomType    string          `json:"room_type"`
	NightlyRate money.Money     `json:"nightly_rate"`
	Quantity    int             `json:"quantity"`
	Multiplier  decimal.Decimal `json:"multiplier"`
	Total       money.Money     `json:"total"`
}

type CatalogView struct {
	RoomTypes  []RoomTypeView  `json:"room_types"`
	AddOnTypes []AddOnTypeView `json:"add_on_types"`
}

type RoomTypeView struct {
	Code         string      `json:"code"`
	Name         string      `json:"name"`
	MaxOccupancy int         `json:"max_occupancy"`
	BasePrice    money.Money `json:"base_price"`
}

type AddOnTypeView struct {
	Code      string      `json:"code"`
	Name      string      `json:"name"`
	BasePrice money.Money `json:"base_price"`
	Model     string      `json:"pricing_model"`
}

func NewReservationView(r *reservation.Reservation) *ReservationView {
	v := &ReservationView{
		ID:                 r.ID(),
		ConfirmationNumber: r.Confirmation().Value(),
		GuestID:            r.GuestID(),
		LoyaltyAccountID:   r.LoyaltyAccountID(),
		CheckIn:            r.Stay().CheckIn().Format(dateLayout),
		CheckOut:           r.Stay().CheckOut().Format(dateLayout),
		Nights:             r.Stay().Nights(),
		Adults:             r.Adults(),
		Children:           r.Children(),
		Status:             r.Status().String(),
		Rooms:              make([]RoomAssignmentView, 0, len(r.Assignments())),
		AddOns:             make([]AddOnLineView, 0, len(r.AddOns())),
		Payments:           make([]PaymentView, 0, len(r.Payments())),
		Charges:            chargesView(r.Charges()),
		AmountPaid:         r.AmountPaid(),
		OutstandingBalance: r.OutstandingBalance(),
		DiscountedBy:       r.DiscountedBy(),
		CheckedInAt:        r.CheckedInAt(),
		CheckedOutAt:       r.CheckedOutAt(),
		CancelledAt:        r.CancelledAt(),
		CreatedAt:          r.CreatedAt(),
		UpdatedAt:          r.UpdatedAt(),
	}
	for _, a := range r.Assignments() {
		v.Rooms = append(v.Rooms, RoomAssignmentView{
			RoomID:      a.RoomID,
			RoomNumber:  a.RoomNumber,
			RoomType:    a.RoomType.String(),
			Guests:      a.Guests,
			NightlyRate: a.NightlyRate,
			Multiplier:  a.Multiplier,
		})
	}
	for _, l := range r.AddOns() {
		v.AddOns = append(v.AddOns, addOnLineView(l))
	}
	for _, p := range r.Payments() {
		v.Payments = append(v.Payments, PaymentView{
			ID:     p.ID,
			Amount: p.Amount,
			Method: p.Method.String(),
			PaidAt: p.PaidAt,
		})
	}
	return v
}

func NewQuoteView(stay reservation.DateRange, q reservation.Quote) *QuoteView {
	v := &QuoteView{
		CheckIn:  stay.CheckIn().Format(dateLayout),
		CheckOut: stay.CheckOut().Format(dateLayout),
		Nights:   stay.Nights(),
		Rooms:    make([]QuoteRoomView, 0, len(q.Breakdown.Rooms)),
		AddOns:   make([]AddOnLineView, 0, len(q.AddOns)),
		Charges:  chargesView(reservation.ChargesFrom(q.Breakdown)),
	}
	for _, line := range q.Breakdown.Rooms {
		v.Rooms = append(v.Rooms, quoteRoomView(line))
	}
	for _, l := range q.AddOns {
		v.AddOns = append(v.AddOns, addOnLineView(l))
	}
	return v
}

func NewRoomView(r *room.Room) RoomView {
	return RoomView{
		ID:          r.ID(),
		Number:      r.Number(),
		RoomType:    r.RoomType().String(),
		Floor:       r.Floor(),
		Status:      r.Status().String(),
		NightlyRate: r.NightlyRate(),
		UpdatedAt:   r.UpdatedAt(),
	}
}

func NewLoyaltyAccountView(a *loyalty.Account, cfg loyalty.Config) *LoyaltyAccountView {
	v := &LoyaltyAccountView{
		ID:             a.ID(),
		Number:         a.Number().Value(),
		GuestID:        a.GuestID(),
		Balance:        a.Balance(),
		BalanceValue:   cfg.PointsValue(a.Balance()),
		LifetimePoints: a.LifetimePoints(),
		Tier:           a.Tier().String(),
		EnrolledAt:     a.EnrolledAt(),
		LastActivityAt: a.LastActivityAt(),
	}
	if next, threshold, ok := loyalty.NextTier(a.Tier()); ok {
		v.NextTier = next.String()
		v.PointsToNextTier = threshold - a.LifetimePoints()
	}
	return v
}

func NewLoyaltyTransactionView(t *loyalty.Transaction) LoyaltyTransactionView {
	return LoyaltyTransactionView{
		ID:            t.ID(),
		Type:          t.Type().String(),
		Points:        t.Points(),
		BalanceAfter:  t.BalanceAfter(),
		ReservationID: t.ReservationID(),
		Description:   t.Description(),
		CreatedAt:     t.CreatedAt(),
	}
}

func chargesView(c reservation.Charges) ChargesView {
	return ChargesView{
		RoomSubtotal:          c.RoomSubtotal,
		AddOnsTotal:           c.AddOnsTotal,
		Subtotal:              c.Subtotal,
		DiscountPercentage:    c.DiscountPercentage,
		DiscountAmount:        c.DiscountAmount,
		LoyaltyPointsRedeemed: c.LoyaltyPointsRedeemed,
		LoyaltyDiscount:       c.LoyaltyDiscount,
		TaxAmount:             c.TaxAmount,
		Total:                 c.Total,
	}
}

func addOnLineView(l reservation.AddOnLineItem) AddOnLineView {
	return AddOnLineView{
		AddOn:     l.AddOn.String(),
		Model:     l.Model.String(),
		Quantity:  l.Quantity,
		UnitPrice: l.UnitPrice,
		Total:     l.Total,
	}
}

func quoteRoomView(l pricing.RoomLine) QuoteRoomView {
	return QuoteRoomView{
		RoomType:    l.Selection.RoomType.String(),
		NightlyRate: l.Selection.NightlyRate,
		Quantity:    l.Selection.Quantity,
		Multiplier:  l.Multiplier,
		Total:       l.Total,
	}
}

func newCatalogView() CatalogView {
	v := CatalogView{}
	for _, rt := range catalog.RoomTypes() {
		v.RoomTypes = append(v.RoomTypes, RoomTypeView{
			Code:         rt.Code.String(),
			Name:         rt.Name,
			MaxOccupancy: rt.MaxOccupancy,
			BasePrice:    rt.BasePrice,
		})
	}
	for _, a := range catalog.AddOnTypes() {
		v.AddOnTypes = append(v.AddOnTypes, AddOnTypeView{
			Code:      a.Code.String(),
			Name:      a.Name,
			BasePrice: a.BasePrice,
			Model:     a.Model.String(),
		})
	}
	return v
}
