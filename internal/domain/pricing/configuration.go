package pricing

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidSeasonalPeriod = errors.New("seasonal period end must not precede start")

// SeasonalPeriod covers the nights from Start through End, both inclusive.
type SeasonalPeriod struct {
	Name  string
	Start time.Time
	End   time.Time
}

func NewSeasonalPeriod(name string, start, end time.Time) (SeasonalPeriod, error) {
	start, end = dateOf(start), dateOf(end)
	if end.Before(start) {
		return SeasonalPeriod{}, ErrInvalidSeasonalPeriod
	}
	return SeasonalPeriod{Name: name, Start: start, End: end}, nil
}

func (p SeasonalPeriod) Contains(night time.Time) bool {
	d := dateOf(night)
	return !d.Before(p.Start) && !d.After(p.End)
}

type Configuration struct {
	WeekdayMultiplier  decimal.Decimal
	WeekendMultiplier  decimal.Decimal
	SeasonalMultiplier decimal.Decimal
	SeasonalPeriods    []SeasonalPeriod
	TaxRate            decimal.Decimal
	// Dynamic turns on per-night multipliers. When off every night is
	// charged the flat nightly rate.
	Dynamic bool
}

func DefaultConfiguration() Configuration {
	return Configuration{
		WeekdayMultiplier:  decimal.NewFromInt(1),
		WeekendMultiplier:  decimal.RequireFromString("1.2"),
		SeasonalMultiplier: decimal.RequireFromString("1.5"),
		TaxRate:            decimal.RequireFromString("0.13"),
	}
}

// MultiplierFor returns the multiplier for the night beginning on date.
// Seasonal takes precedence over weekend. Friday, Saturday and Sunday
// nights are weekend nights.
func (c Configuration) MultiplierFor(night time.Time) decimal.Decimal {
	if !c.Dynamic {
		return decimal.NewFromInt(1)
	}
	for _, p := range c.SeasonalPeriods {
		if p.Contains(night) {
			return c.SeasonalMultiplier
		}
	}
	switch night.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return c.WeekendMultiplier
	default:
		return c.WeekdayMultiplier
	}
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
