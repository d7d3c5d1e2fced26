package loyalty

import (
	"github.com/shopspring/decimal"
)

type Tier string

const (
	TierBronze   Tier = "BRONZE"
	TierSilver   Tier = "SILVER"
	TierGold     Tier = "GOLD"
	TierPlatinum Tier = "PLATINUM"
)

const (
	SilverThreshold   int64 = 10_000
	GoldThreshold     int64 = 25_000
	PlatinumThreshold int64 = 50_000
)

func (t Tier) String() string {
	return string(t)
}

func (t Tier) IsValid() bool {
	switch t {
	case TierBronze, TierSilver, TierGold, TierPlatinum:
		return true
	default:
		return false
	}
}

// TierFor derives the tier from lifetime points.
func TierFor(lifetimePoints int64) Tier {
	switch {
	case lifetimePoints >= PlatinumThreshold:
		return TierPlatinum
	case lifetimePoints >= GoldThreshold:
		return TierGold
	case lifetimePoints >= SilverThreshold:
		return TierSilver
	default:
		return TierBronze
	}
}

// NextTier returns the tier above t and the lifetime points it needs. ok is
// false at the top tier.
func NextTier(t Tier) (next Tier, threshold int64, ok bool) {
	switch t {
	case TierBronze:
		return TierSilver, SilverThreshold, true
	case TierSilver:
		return TierGold, GoldThreshold, true
	case TierGold:
		return TierPlatinum, PlatinumThreshold, true
	default:
		return "", 0, false
	}
}

func BonusMultiplier(t Tier) decimal.Decimal {
	switch t {
	case TierSilver:
		return decimal.RequireFromString("1.25")
	case TierGold:
		return decimal.RequireFromString("1.5")
	case TierPlatinum:
		return decimal.NewFromInt(2)
	default:
		return decimal.NewFromInt(1)
	}
}

type TransactionType string

const (
	TransactionEarn       TransactionType = "EARN"
	TransactionRedeem     TransactionType = "REDEEM"
	TransactionBonus      TransactionType = "BONUS"
	TransactionAdjustment TransactionType = "ADJUSTMENT"
	TransactionExpire     TransactionType = "EXPIRE"
	TransactionRefund     TransactionType = "REFUND"
)

func (t TransactionType) String() string {
	return string(t)
}

func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionEarn, TransactionRedeem, TransactionBonus,
		TransactionAdjustment, TransactionExpire, TransactionRefund:
		return true
	default:
		return false
	}
}
