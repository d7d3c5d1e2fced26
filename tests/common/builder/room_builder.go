//go:build unit || e2e

package builder

import (
	"hotel-kiosk/internal/domain/catalog"
	"hotel-kiosk/internal/domain/room"
	"hotel-kiosk/internal/pkg/money"
)

type RoomBuilder struct {
	Number        string
	RoomType      catalog.RoomTypeCode
	Floor         int
	Status        room.Status
	PriceOverride *money.Money
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		Number:   "101",
		RoomType: catalog.RoomTypeSingle,
		Floor:    1,
		Status:   room.StatusAvailable,
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) BuildDomain() *room.Room {
	r, err := room.NewRoom(b.Number, b.RoomType, b.Floor, b.PriceOverride)
	if err != nil {
		panic(err)
	}
	return room.ReconstructRoom(r.ID(), r.Number(), r.RoomType(), r.Floor(), b.Status, b.PriceOverride, DefaultToday)
}

func (b *RoomBuilder) WithNumber(number string) *RoomBuilder {
	b.Number = number
	return b
}

func (b *RoomBuilder) WithType(code catalog.RoomTypeCode) *RoomBuilder {
	b.RoomType = code
	return b
}

func (b *RoomBuilder) WithStatus(s room.Status) *RoomBuilder {
	b.Status = s
	return b
}

func (b *RoomBuilder) WithPriceOverride(m money.Money) *RoomBuilder {
	b.PriceOverride = &m
	return b
}

// Inventory builds one available room per number, all of the given type.
func Inventory(code catalog.RoomTypeCode, numbers ...string) []*room.Room {
	out := make([]*room.Room, 0, len(numbers))
	for _, n := range numbers {
		out = append(out, NewRoomBuilder().WithNumber(n).WithType(code).BuildDomain())
	}
	return out
}
