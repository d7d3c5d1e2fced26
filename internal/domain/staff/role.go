package staff

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRole          = errors.New("invalid role")
	ErrInsufficientRole     = errors.New("insufficient role")
	ErrDiscountExceedsCap   = errors.New("discount exceeds role cap")
	ErrNegativeDiscountRate = errors.New("discount percentage cannot be negative")
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

var discountCaps = map[Role]decimal.Decimal{
	RoleAdmin:   decimal.NewFromInt(15),
	RoleManager: decimal.NewFromInt(30),
}

// DiscountCap is the largest percentage discount the role may apply.
func DiscountCap(r Role) decimal.Decimal {
	return discountCaps[r]
}

func CheckDiscount(r Role, pct decimal.Decimal) error {
	if !r.IsValid() {
		return ErrInvalidRole
	}
	if pct.IsNegative() {
		return ErrNegativeDiscountRate
	}
	if pct.GreaterThan(DiscountCap(r)) {
		return ErrDiscountExceedsCap
	}
	return nil
}

// Actor identifies the staff member stamping an administrative action.
type Actor struct {
	ID   uuid.UUID
	Role Role
}
