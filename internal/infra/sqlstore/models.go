package sqlstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Room struct {
	ID                 uuid.UUID
	Number             string
	RoomType           string
	Floor              int32
	Status             string
	PriceOverrideCents *int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type Guest struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     *string
	CreatedAt time.Time
}

type LoyaltyAccount struct {
	ID             uuid.UUID
	GuestID        uuid.UUID
	Number         string
	Balance        int64
	LifetimePoints int64
	Tier           string
	EnrolledAt     time.Time
	LastActivityAt time.Time
	UpdatedAt      time.Time
}

type LoyaltyTransaction struct {
	ID            uuid.UUID
	AccountID     uuid.UUID
	Type          string
	Points        int64
	BalanceAfter  int64
	ReservationID *uuid.UUID
	Description   string
	CreatedAt     time.Time
}

type Reservation struct {
	ID                    uuid.UUID
	ConfirmationNumber    string
	GuestID               uuid.UUID
	LoyaltyAccountID      *uuid.UUID
	CheckIn               time.Time
	CheckOut              time.Time
	Adults                int32
	Children              int32
	Status                string
	RoomSubtotalCents     int64
	AddOnsTotalCents      int64
	SubtotalCents         int64
	DiscountPercentage    decimal.Decimal
	DiscountCents         int64
	LoyaltyPointsRedeemed int64
	LoyaltyDiscountCents  int64
	TaxCents              int64
	TotalCents            int64
	DiscountedBy          *uuid.UUID
	CheckedInAt           *time.Time
	CheckedOutAt          *time.Time
	CancelledAt           *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type RoomAssignment struct {
	ReservationID    uuid.UUID
	RoomID           uuid.UUID
	Position         int32
	RoomNumber       string
	RoomType         string
	Guests           int32
	NightlyRateCents int64
	Multiplier       decimal.Decimal
	CheckIn          time.Time
	CheckOut         time.Time
	Active           bool
}

type ReservationAddOn struct {
	ReservationID  uuid.UUID
	Position       int32
	AddOn          string
	PricingModel   string
	Quantity       int32
	UnitPriceCents int64
	TotalCents     int64
}

type Payment struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	AmountCents   int64
	Method        string
	PaidAt        time.Time
}
