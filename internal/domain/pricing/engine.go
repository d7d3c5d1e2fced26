package pricing

import (
	"errors"
	"time"

	"hotel-kiosk/internal/domain/catalog"
	"hotel-kiosk/internal/domain/loyalty"
	"hotel-kiosk/internal/domain/staff"
	"hotel-kiosk/internal/pkg/money"

	"github.com/shopspring/decimal"
)

var (
	ErrNoRoomsSelected        = errors.New("at least one room must be selected")
	ErrInvalidNights          = errors.New("nights must be positive")
	ErrInvalidRoomQuantity    = errors.New("room quantity must be positive")
	ErrDiscountExceedsRoleCap = staff.ErrDiscountExceedsCap
)

type RoomSelection struct {
	RoomType    catalog.RoomTypeCode
	NightlyRate money.Money
	Quantity    int
}

// CalculateTotal is the flat charge: nightly rate × quantity × nights.
func (s RoomSelection) CalculateTotal(nights int) money.Money {
	return s.NightlyRate.Times(int64(s.Quantity) * int64(nights))
}

type AddOnSelection struct {
	AddOn     catalog.AddOnCode
	Model     catalog.PricingModel
	UnitPrice money.Money
	// Quantity is guests for per-person models and units for PER_NIGHT.
	Quantity int
}

func NewAddOnSelection(code catalog.AddOnCode, quantity int) (AddOnSelection, error) {
	a, err := catalog.LookupAddOnType(code)
	if err != nil {
		return AddOnSelection{}, err
	}
	if quantity <= 0 {
		return AddOnSelection{}, catalog.ErrInvalidQuantity
	}
	return AddOnSelection{AddOn: a.Code, Model: a.Model, UnitPrice: a.BasePrice, Quantity: quantity}, nil
}

type Discount struct {
	Percentage decimal.Decimal
	Role       staff.Role
}

type LoyaltyRedemption struct {
	RequestedPoints int64
	Balance         int64
}

type Request struct {
	Rooms    []RoomSelection
	AddOns   []AddOnSelection
	CheckIn  time.Time
	Nights   int
	Discount *Discount
	Loyalty  *LoyaltyRedemption
}

type RoomLine struct {
	Selection  RoomSelection
	Multiplier decimal.Decimal
	Total      money.Money
}

type AddOnLine struct {
	Selection AddOnSelection
	Total     money.Money
}

type Breakdown struct {
	Rooms  []RoomLine
	AddOns []AddOnLine

	RoomSubtotal   money.Money
	AddOnsSubtotal money.Money
	Subtotal       money.Money

	DiscountPercentage    decimal.Decimal
	DiscountAmount        money.Money
	LoyaltyPointsRedeemed int64
	LoyaltyDiscount       money.Money

	TaxableAmount money.Money
	TaxAmount     money.Money
	Total         money.Money
}

// Settlement is the part of a breakdown derived from the subtotal.
type Settlement struct {
	DiscountAmount  money.Money
	LoyaltyDiscount money.Money
	TaxableAmount   money.Money
	TaxAmount       money.Money
	Total           money.Money
}

type Engine struct {
	cfg     Configuration
	loyalty loyalty.Config
}

func NewEngine(cfg Configuration, loyaltyCfg loyalty.Config) *Engine {
	return &Engine{cfg: cfg, loyalty: loyaltyCfg}
}

func (e *Engine) Configuration() Configuration  { return e.cfg }
func (e *Engine) LoyaltyConfig() loyalty.Config { return e.loyalty }

func (e *Engine) Price(req Request) (Breakdown, error) {
	if req.Nights <= 0 {
		return Breakdown{}, ErrInvalidNights
	}
	if len(req.Rooms) == 0 {
		return Breakdown{}, ErrNoRoomsSelected
	}

	var b Breakdown
	for _, sel := range req.Rooms {
		if sel.Quantity <= 0 {
			return Breakdown{}, ErrInvalidRoomQuantity
		}
		line := e.priceRoom(sel, req.CheckIn, req.Nights)
		b.Rooms = append(b.Rooms, line)
		b.RoomSubtotal = b.RoomSubtotal.Add(line.Total)
	}

	for _, sel := range req.AddOns {
		total, err := catalog.AddOnCharge(sel.Model, sel.UnitPrice, sel.Quantity, req.Nights)
		if err != nil {
			return Breakdown{}, err
		}
		b.AddOns = append(b.AddOns, AddOnLine{Selection: sel, Total: total})
		b.AddOnsSubtotal = b.AddOnsSubtotal.Add(total)
	}
	b.Subtotal = b.RoomSubtotal.Add(b.AddOnsSubtotal)

	b.DiscountPercentage = decimal.Zero
	if req.Discount != nil && !req.Discount.Percentage.IsZero() {
		if err := staff.CheckDiscount(req.Discount.Role, req.Discount.Percentage); err != nil {
			return Breakdown{}, err
		}
		b.DiscountPercentage = req.Discount.Percentage
	}
	discount := b.Subtotal.Percent(b.DiscountPercentage)

	if req.Loyalty != nil {
		points, err := e.planLoyalty(*req.Loyalty, b.Subtotal.Sub(discount))
		if err != nil {
			return Breakdown{}, err
		}
		b.LoyaltyPointsRedeemed = points
	}

	s := e.Settle(b.Subtotal, b.DiscountPercentage, e.loyalty.PointsValue(b.LoyaltyPointsRedeemed))
	b.DiscountAmount = s.DiscountAmount
	b.LoyaltyDiscount = s.LoyaltyDiscount
	b.TaxableAmount = s.TaxableAmount
	b.TaxAmount = s.TaxAmount
	b.Total = s.Total
	return b, nil
}

// Settle applies the percentage discount, then the loyalty discount, then
// tax. The loyalty discount never takes the taxable amount below zero.
func (e *Engine) Settle(subtotal money.Money, pct decimal.Decimal, loyaltyDiscount money.Money) Settlement {
	discount := subtotal.Percent(pct)
	remaining := subtotal.Sub(discount)
	loyaltyDiscount = loyaltyDiscount.Min(remaining)
	taxable := remaining.Sub(loyaltyDiscount)
	tax := taxable.MulRate(e.cfg.TaxRate)
	return Settlement{
		DiscountAmount:  discount,
		LoyaltyDiscount: loyaltyDiscount,
		TaxableAmount:   taxable,
		TaxAmount:       tax,
		Total:           taxable.Add(tax),
	}
}

func (e *Engine) priceRoom(sel RoomSelection, checkIn time.Time, nights int) RoomLine {
	if !e.cfg.Dynamic {
		return RoomLine{Selection: sel, Multiplier: decimal.NewFromInt(1), Total: sel.CalculateTotal(nights)}
	}

	var perUnit money.Money
	sum := decimal.Zero
	for i := 0; i < nights; i++ {
		m := e.cfg.MultiplierFor(checkIn.AddDate(0, 0, i))
		sum = sum.Add(m)
		perUnit = perUnit.Add(sel.NightlyRate.MulRate(m))
	}
	return RoomLine{
		Selection:  sel,
		Multiplier: sum.DivRound(decimal.NewFromInt(int64(nights)), 4),
		Total:      perUnit.Times(int64(sel.Quantity)),
	}
}

// planLoyalty settles the points to redeem. Points whose value would exceed
// the amount left to pay are not redeemed, and what remains must still meet
// the redemption minimum.
func (e *Engine) planLoyalty(r LoyaltyRedemption, payable money.Money) (int64, error) {
	points, err := loyalty.PlanRedemption(r.RequestedPoints, r.Balance, e.loyalty)
	if err != nil {
		return 0, err
	}
	if e.loyalty.PointsValue(points).GreaterThanOrEqual(payable) {
		points = min(points, e.loyalty.PointsFor(payable))
	}
	if points < e.loyalty.MinRedemption {
		return 0, loyalty.ErrRedemptionBelowMinimum
	}
	return points, nil
}
