package converter

import (
	"hotel-kiosk/internal/domain/catalog"
	"hotel-kiosk/internal/domain/room"
	"hotel-kiosk/internal/infra/sqlstore"
	"hotel-kiosk/internal/pkg/money"
)

func RoomToCreateParams(r *room.Room) sqlstore.CreateRoomParams {
	return sqlstore.CreateRoomParams{
		ID:                 r.ID(),
		Number:             r.Number(),
		RoomType:           r.RoomType().String(),
		Floor:              int32(r.Floor()),
		Status:             r.Status().String(),
		PriceOverrideCents: centsPtr(r.PriceOverride()),
		UpdatedAt:          r.UpdatedAt(),
	}
}

func RoomToStatusParams(r *room.Room) sqlstore.UpdateRoomStatusParams {
	return sqlstore.UpdateRoomStatusParams{
		ID:        r.ID(),
		Status:    r.Status().String(),
		UpdatedAt: r.UpdatedAt(),
	}
}

func RoomFromRow(row sqlstore.Room) *room.Room {
	var override *money.Money
	if row.PriceOverrideCents != nil {
		m := money.FromCents(*row.PriceOverrideCents)
		override = &m
	}
	return room.ReconstructRoom(
		row.ID,
		row.Number,
		catalog.RoomTypeCode(row.RoomType),
		int(row.Floor),
		room.Status(row.Status),
		override,
		row.UpdatedAt,
	)
}

func RoomsFromRows(rows []sqlstore.Room) []*room.Room {
	out := make([]*room.Room, 0, len(rows))
	for _, row := range rows {
		out = append(out, RoomFromRow(row))
	}
	return out
}

func centsPtr(m *money.Money) *int64 {
	if m == nil {
		return nil
	}
	c := m.Cents()
	return &c
}
