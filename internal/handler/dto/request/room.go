package request

import (
	"strings"

	"hotel-kiosk/internal/domain/catalog"
	"hotel-kiosk/internal/domain/room"
	"hotel-kiosk/internal/pkg/money"
	"hotel-kiosk/internal/usecase/commands"
)

type CreateRoomRequest struct {
	Number        string       `json:"number" binding:"required,max=10"`
	RoomType      string       `json:"room_type" binding:"required"`
	Floor         int          `json:"floor" binding:"min=0"`
	PriceOverride *money.Money `json:"price_override"`
}

func (r CreateRoomRequest) ToCommand() commands.CreateRoomRequest {
	return commands.CreateRoomRequest{
		Number:        strings.TrimSpace(r.Number),
		RoomType:      catalog.RoomTypeCode(strings.ToUpper(r.RoomType)),
		Floor:         r.Floor,
		PriceOverride: r.PriceOverride,
	}
}

type ChangeRoomStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r ChangeRoomStatusRequest) ToStatus() room.Status {
	return room.Status(strings.ToUpper(strings.TrimSpace(r.Status)))
}
