package reservation

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"time"

	"hotel-kiosk/internal/pkg/clock"
)

// DateRange is a half-open stay [checkIn, checkOut) in whole days.
type DateRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	in, out := DateOf(checkIn), DateOf(checkOut)
	if !out.After(in) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{checkIn: in, checkOut: out}, nil
}

func (d DateRange) CheckIn() time.Time  { return d.checkIn }
func (d DateRange) CheckOut() time.Time { return d.checkOut }

func (d DateRange) Nights() int {
	return int(d.checkOut.Sub(d.checkIn).Hours() / 24)
}

// Overlaps uses half-open semantics so back-to-back stays do not conflict.
func (d DateRange) Overlaps(other DateRange) bool {
	return d.checkIn.Before(other.checkOut) && d.checkOut.After(other.checkIn)
}

func (d DateRange) StartsOn(day time.Time) bool {
	return d.checkIn.Equal(DateOf(day))
}

// ValidateFrom rejects stays that start before today.
func (d DateRange) ValidateFrom(today time.Time) error {
	if d.checkIn.Before(DateOf(today)) {
		return ErrInvalidDateRange
	}
	return nil
}

func (d DateRange) String() string {
	return fmt.Sprintf("[%s,%s)", d.checkIn.Format(time.DateOnly), d.checkOut.Format(time.DateOnly))
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	return clock.Date(t)
}

const confirmationAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

var confirmationRegex = regexp.MustCompile(`^HK[0-9A-HJKMNP-TV-Z]{8}$`)

type ConfirmationNumber struct {
	value string
}

func NewConfirmationNumber(s string) (ConfirmationNumber, error) {
	if !confirmationRegex.MatchString(s) {
		return ConfirmationNumber{}, ErrInvalidConfirmationNumber
	}
	return ConfirmationNumber{value: s}, nil
}

func (c ConfirmationNumber) Value() string  { return c.value }
func (c ConfirmationNumber) String() string { return c.value }

type ConfirmationGenerator interface {
	Next() (ConfirmationNumber, error)
}

type RandomConfirmationGenerator struct{}

func NewRandomConfirmationGenerator() *RandomConfirmationGenerator {
	return &RandomConfirmationGenerator{}
}

func (g *RandomConfirmationGenerator) Next() (ConfirmationNumber, error) {
	buf := make([]byte, 8)
	limit := big.NewInt(int64(len(confirmationAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return ConfirmationNumber{}, err
		}
		buf[i] = confirmationAlphabet[n.Int64()]
	}
	return ConfirmationNumber{value: "HK" + string(buf)}, nil
}
