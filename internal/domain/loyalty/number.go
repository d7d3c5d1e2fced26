package loyalty

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
)

var ErrInvalidLoyaltyNumber = errors.New("invalid loyalty number")

var numberRegex = regexp.MustCompile(`^LY[0-9]{8}$`)

type Number struct {
	value string
}

func NewNumber(s string) (Number, error) {
	if !numberRegex.MatchString(s) {
		return Number{}, ErrInvalidLoyaltyNumber
	}
	return Number{value: s}, nil
}

func (n Number) Value() string {
	return n.value
}

func (n Number) String() string {
	return n.value
}

var numberSpace = big.NewInt(100_000_000)

func GenerateNumber() (Number, error) {
	v, err := rand.Int(rand.Reader, numberSpace)
	if err != nil {
		return Number{}, err
	}
	return Number{value: fmt.Sprintf("LY%08d", v.Int64())}, nil
}
