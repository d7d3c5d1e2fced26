package loyalty

import (
	"github.com/shopspring/decimal"

	"hotel-kiosk/internal/pkg/money"
)

type Config struct {
	// EarningRate is points earned per currency unit paid.
	EarningRate decimal.Decimal
	// RedemptionValue is the currency value of a single point.
	RedemptionValue             decimal.Decimal
	MaxRedemptionPerReservation int64
	MinRedemption               int64
	WelcomeBonus                int64
	// ExpirationMonths of inactivity before a balance expires. Zero disables expiry.
	ExpirationMonths int
}

func DefaultConfig() Config {
	return Config{
		EarningRate:                 decimal.NewFromInt(1),
		RedemptionValue:             decimal.RequireFromString("0.01"),
		MaxRedemptionPerReservation: 10_000,
		MinRedemption:               100,
		WelcomeBonus:                500,
		ExpirationMonths:            0,
	}
}

// PointsValue converts points to a currency amount.
func (c Config) PointsValue(points int64) money.Money {
	return money.FromDecimal(decimal.NewFromInt(points).Mul(c.RedemptionValue))
}

// PointsFor returns the whole number of points whose value does not exceed amount.
func (c Config) PointsFor(amount money.Money) int64 {
	if c.RedemptionValue.IsZero() || !amount.IsPositive() {
		return 0
	}
	return amount.Decimal().Div(c.RedemptionValue).Floor().IntPart()
}
