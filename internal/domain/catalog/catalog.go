package catalog

import (
	"errors"

	"hotel-kiosk/internal/pkg/money"
)

var (
	ErrUnknownRoomType    = errors.New("unknown room type")
	ErrUnknownAddOnType   = errors.New("unknown add-on type")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrInvalidNightsCount = errors.New("nights must be positive")
)

type RoomTypeCode string

const (
	RoomTypeSingle    RoomTypeCode = "SINGLE"
	RoomTypeDouble    RoomTypeCode = "DOUBLE"
	RoomTypeDeluxe    RoomTypeCode = "DELUXE"
	RoomTypePenthouse RoomTypeCode = "PENTHOUSE"
)

func (c RoomTypeCode) String() string { return string(c) }

type RoomType struct {
	Code         RoomTypeCode
	Name         string
	MaxOccupancy int
	BasePrice    money.Money
}

type PricingModel string

const (
	PerNight          PricingModel = "PER_NIGHT"
	PerPerson         PricingModel = "PER_PERSON"
	PerPersonPerNight PricingModel = "PER_PERSON_PER_NIGHT"
)

func (m PricingModel) String() string { return string(m) }

type AddOnCode string

const (
	AddOnWiFi      AddOnCode = "WIFI"
	AddOnBreakfast AddOnCode = "BREAKFAST"
	AddOnParking   AddOnCode = "PARKING"
	AddOnSpa       AddOnCode = "SPA"
)

func (c AddOnCode) String() string { return string(c) }

type AddOnType struct {
	Code      AddOnCode
	Name      string
	BasePrice money.Money
	Model     PricingModel
}

var roomTypes = []RoomType{
	{Code: RoomTypeSingle, Name: "Single", MaxOccupancy: 2, BasePrice: money.FromDollars(100)},
	{Code: RoomTypeDouble, Name: "Double", MaxOccupancy: 4, BasePrice: money.FromDollars(150)},
	{Code: RoomTypeDeluxe, Name: "Deluxe", MaxOccupancy: 2, BasePrice: money.FromDollars(250)},
	{Code: RoomTypePenthouse, Name: "Penthouse", MaxOccupancy: 2, BasePrice: money.FromDollars(500)},
}

var addOnTypes = []AddOnType{
	{Code: AddOnWiFi, Name: "Wi-Fi", BasePrice: money.FromDollars(15), Model: PerNight},
	{Code: AddOnBreakfast, Name: "Breakfast", BasePrice: money.FromDollars(25), Model: PerPersonPerNight},
	{Code: AddOnParking, Name: "Parking", BasePrice: money.FromDollars(20), Model: PerNight},
	{Code: AddOnSpa, Name: "Spa", BasePrice: money.FromDollars(75), Model: PerPerson},
}

// RoomTypes returns a copy of the room type catalog.
func RoomTypes() []RoomType {
	out := make([]RoomType, len(roomTypes))
	copy(out, roomTypes)
	return out
}

// AddOnTypes returns a copy of the add-on catalog.
func AddOnTypes() []AddOnType {
	out := make([]AddOnType, len(addOnTypes))
	copy(out, addOnTypes)
	return out
}

func LookupRoomType(code RoomTypeCode) (RoomType, error) {
	for _, rt := range roomTypes {
		if rt.Code == code {
			return rt, nil
		}
	}
	return RoomType{}, ErrUnknownRoomType
}

func LookupAddOnType(code AddOnCode) (AddOnType, error) {
	for _, a := range addOnTypes {
		if a.Code == code {
			return a, nil
		}
	}
	return AddOnType{}, ErrUnknownAddOnType
}

func FitsOccupancy(rt RoomType, guests int) bool {
	return guests > 0 && guests <= rt.MaxOccupancy
}

// AddOnCharge computes a line total. quantity is the number of guests for
// the per-person models and the number of units for PER_NIGHT.
func AddOnCharge(model PricingModel, unitPrice money.Money, quantity, nights int) (money.Money, error) {
	if quantity <= 0 {
		return money.Zero, ErrInvalidQuantity
	}
	if nights <= 0 {
		return money.Zero, ErrInvalidNightsCount
	}

	switch model {
	case PerNight, PerPersonPerNight:
		return unitPrice.Times(int64(quantity) * int64(nights)), nil
	case PerPerson:
		return unitPrice.Times(int64(quantity)), nil
	default:
		return money.Zero, ErrUnknownAddOnType
	}
}
