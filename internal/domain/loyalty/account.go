package loyalty

import (
	"errors"
	"time"

	"hotel-kiosk/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrInsufficientLoyaltyPoints = errors.New("insufficient loyalty points")
	ErrRedemptionBelowMinimum    = errors.New("redemption below minimum")
	ErrInvalidPoints             = errors.New("points must be positive")
	ErrNegativeBalance           = errors.New("loyalty balance cannot go negative")
	ErrAlreadyEnrolled           = errors.New("guest already has a loyalty account")
)

type Account struct {
	id             uuid.UUID
	guestID        uuid.UUID
	number         Number
	balance        int64
	lifetimePoints int64
	tier           Tier
	enrolledAt     time.Time
	lastActivityAt time.Time
	updatedAt      time.Time
}

func NewAccount(guestID uuid.UUID, number Number, now time.Time) *Account {
	return &Account{
		id:             uuid.New(),
		guestID:        guestID,
		number:         number,
		tier:           TierBronze,
		enrolledAt:     now,
		lastActivityAt: now,
		updatedAt:      now,
	}
}

func ReconstructAccount(
	id, guestID uuid.UUID,
	number Number,
	balance, lifetimePoints int64,
	enrolledAt, lastActivityAt, updatedAt time.Time,
) *Account {
	return &Account{
		id:             id,
		guestID:        guestID,
		number:         number,
		balance:        balance,
		lifetimePoints: lifetimePoints,
		tier:           TierFor(lifetimePoints),
		enrolledAt:     enrolledAt,
		lastActivityAt: lastActivityAt,
		updatedAt:      updatedAt,
	}
}

func (a *Account) ID() uuid.UUID             { return a.id }
func (a *Account) GuestID() uuid.UUID        { return a.guestID }
func (a *Account) Number() Number            { return a.number }
func (a *Account) Balance() int64            { return a.balance }
func (a *Account) LifetimePoints() int64     { return a.lifetimePoints }
func (a *Account) Tier() Tier                { return a.tier }
func (a *Account) EnrolledAt() time.Time     { return a.enrolledAt }
func (a *Account) LastActivityAt() time.Time { return a.lastActivityAt }
func (a *Account) UpdatedAt() time.Time      { return a.updatedAt }

// PointsForPayment is floor(amount × rate × bonus) for the current tier.
func (a *Account) PointsForPayment(amount money.Money, cfg Config) int64 {
	if !amount.IsPositive() {
		return 0
	}
	return amount.Decimal().
		Mul(cfg.EarningRate).
		Mul(BonusMultiplier(a.tier)).
		Floor().
		IntPart()
}

// Earn credits points for a payment. The tier bonus is taken before the
// credit and the tier is recomputed after it. A zero-point earn returns a
// nil transaction.
func (a *Account) Earn(amount money.Money, cfg Config, reservationID *uuid.UUID, now time.Time) (int64, *Transaction) {
	points := a.PointsForPayment(amount, cfg)
	if points == 0 {
		return 0, nil
	}
	a.credit(points, true, now)
	a.lastActivityAt = now
	return points, a.record(TransactionEarn, points, reservationID, "points earned on payment", now)
}

func (a *Account) Bonus(points int64, description string, now time.Time) (*Transaction, error) {
	if points <= 0 {
		return nil, ErrInvalidPoints
	}
	a.credit(points, true, now)
	a.lastActivityAt = now
	return a.record(TransactionBonus, points, nil, description, now), nil
}

// PlanRedemption returns min(requested, balance, cap) or an error when the
// request cannot be honoured.
func PlanRedemption(requested, balance int64, cfg Config) (int64, error) {
	if requested <= 0 {
		return 0, ErrInvalidPoints
	}
	if requested < cfg.MinRedemption {
		return 0, ErrRedemptionBelowMinimum
	}
	actual := min(requested, balance)
	if cfg.MaxRedemptionPerReservation > 0 {
		actual = min(actual, cfg.MaxRedemptionPerReservation)
	}
	if actual <= 0 || actual < cfg.MinRedemption {
		return 0, ErrInsufficientLoyaltyPoints
	}
	return actual, nil
}

// Redeem debits min(requested, balance, cap). Lifetime points and tier are untouched.
func (a *Account) Redeem(requested int64, cfg Config, reservationID *uuid.UUID, now time.Time) (int64, *Transaction, error) {
	actual, err := PlanRedemption(requested, a.balance, cfg)
	if err != nil {
		return 0, nil, err
	}
	return actual, a.debit(actual, reservationID, now), nil
}

// RedeemExactly debits a pre-planned amount. Used when pricing already
// settled the number of points.
func (a *Account) RedeemExactly(points int64, reservationID *uuid.UUID, now time.Time) (*Transaction, error) {
	if points <= 0 {
		return nil, ErrInvalidPoints
	}
	if points > a.balance {
		return nil, ErrInsufficientLoyaltyPoints
	}
	return a.debit(points, reservationID, now), nil
}

func (a *Account) Refund(points int64, reservationID *uuid.UUID, now time.Time) (*Transaction, error) {
	if points <= 0 {
		return nil, ErrInvalidPoints
	}
	a.credit(points, false, now)
	return a.record(TransactionRefund, points, reservationID, "redeemed points refunded", now), nil
}

// Adjust applies a manual correction. Positive corrections count toward
// lifetime points.
func (a *Account) Adjust(delta int64, reason string, now time.Time) (*Transaction, error) {
	if delta == 0 {
		return nil, ErrInvalidPoints
	}
	if a.balance+delta < 0 {
		return nil, ErrNegativeBalance
	}
	if delta > 0 {
		a.credit(delta, true, now)
	} else {
		a.balance += delta
		a.updatedAt = now
	}
	return a.record(TransactionAdjustment, delta, nil, reason, now), nil
}

// IsExpired reports whether the balance is due to expire at now.
func (a *Account) IsExpired(cfg Config, now time.Time) bool {
	if cfg.ExpirationMonths <= 0 || a.balance == 0 {
		return false
	}
	return !now.Before(a.lastActivityAt.AddDate(0, cfg.ExpirationMonths, 0))
}

// Expire zeroes the balance when the inactivity period has passed.
func (a *Account) Expire(cfg Config, now time.Time) *Transaction {
	if !a.IsExpired(cfg, now) {
		return nil
	}
	expired := a.balance
	a.balance = 0
	a.updatedAt = now
	return a.record(TransactionExpire, -expired, nil, "points expired after inactivity", now)
}

func (a *Account) credit(points int64, lifetime bool, now time.Time) {
	a.balance += points
	if lifetime {
		a.lifetimePoints += points
		a.tier = TierFor(a.lifetimePoints)
	}
	a.updatedAt = now
}

func (a *Account) debit(points int64, reservationID *uuid.UUID, now time.Time) *Transaction {
	a.balance -= points
	a.updatedAt = now
	return a.record(TransactionRedeem, -points, reservationID, "points redeemed", now)
}

func (a *Account) record(typ TransactionType, points int64, reservationID *uuid.UUID, description string, now time.Time) *Transaction {
	return &Transaction{
		id:            uuid.New(),
		accountID:     a.id,
		typ:           typ,
		points:        points,
		balanceAfter:  a.balance,
		reservationID: reservationID,
		description:   description,
		createdAt:     now,
	}
}

// Transaction is an append-only ledger entry.
type Transaction struct {
	id            uuid.UUID
	accountID     uuid.UUID
	typ           TransactionType
	points        int64
	balanceAfter  int64
	reservationID *uuid.UUID
	description   string
	createdAt     time.Time
}

func ReconstructTransaction(
	id, accountID uuid.UUID,
	typ TransactionType,
	points, balanceAfter int64,
	reservationID *uuid.UUID,
	description string,
	createdAt time.Time,
) *Transaction {
	return &Transaction{
		id:            id,
		accountID:     accountID,
		typ:           typ,
		points:        points,
		balanceAfter:  balanceAfter,
		reservationID: reservationID,
		description:   description,
		createdAt:     createdAt,
	}
}

func (t *Transaction) ID() uuid.UUID             { return t.id }
func (t *Transaction) AccountID() uuid.UUID      { return t.accountID }
func (t *Transaction) Type() TransactionType     { return t.typ }
func (t *Transaction) Points() int64             { return t.points }
func (t *Transaction) BalanceAfter() int64       { return t.balanceAfter }
func (t *Transaction) ReservationID() *uuid.UUID { return t.reservationID }
func (t *Transaction) Description() string       { return t.description }
func (t *Transaction) CreatedAt() time.Time      { return t.createdAt }

// RedeemedFor sums the net points redeemed against a reservation, net of refunds.
func RedeemedFor(txns []*Transaction, reservationID uuid.UUID) int64 {
	var net int64
	for _, t := range txns {
		if t.reservationID == nil || *t.reservationID != reservationID {
			continue
		}
		if t.typ == TransactionRedeem || t.typ == TransactionRefund {
			net -= t.points
		}
	}
	return net
}
