package seed

import (
	"context"
	"fmt"
	"log/slog"

	"hotel-kiosk/internal/domain/catalog"
	"hotel-kiosk/internal/domain/room"
	"hotel-kiosk/internal/pkg/errs"
	"hotel-kiosk/internal/usecase/shared"
)

type floorPlan struct {
	floor    int
	roomType catalog.RoomTypeCode
	count    int
}

// Four singles and four doubles on the lower floors, deluxe rooms above,
// one penthouse on top.
var defaultPlan = []floorPlan{
	{floor: 1, roomType: catalog.RoomTypeSingle, count: 4},
	{floor: 2, roomType: catalog.RoomTypeDouble, count: 4},
	{floor: 3, roomType: catalog.RoomTypeDeluxe, count: 2},
	{floor: 4, roomType: catalog.RoomTypePenthouse, count: 1},
}

func DefaultRooms() ([]*room.Room, error) {
	var out []*room.Room
	for _, p := range defaultPlan {
		for i := 1; i <= p.count; i++ {
			r, err := room.NewRoom(fmt.Sprintf("%d%02d", p.floor, i), p.roomType, p.floor, nil)
			if err != nil {
				return nil, err
			}
			out = append(out, r)
		}
	}
	return out, nil
}

// Rooms stores every room whose number is not taken yet and reports how
// many were added. Running it twice is a no-op.
func Rooms(ctx context.Context, uow shared.UnitOfWork, rooms []*room.Room, logger *slog.Logger) (int, error) {
	added := 0
	err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		added = 0
		existing, err := tx.Rooms().List(ctx)
		if err != nil {
			return err
		}
		taken := make(map[string]struct{}, len(existing))
		for _, r := range existing {
			taken[r.Number()] = struct{}{}
		}
		for _, r := range rooms {
			if _, ok := taken[r.Number()]; ok {
				continue
			}
			if err := tx.Rooms().Create(ctx, r); err != nil {
				return err
			}
			added++
		}
		return nil
	})
	if err != nil {
		return 0, errs.Wrap(err, "seed rooms")
	}
	if added > 0 {
		logger.InfoContext(ctx, "seeded room inventory", slog.Int("rooms_added", added))
	}
	return added, nil
}
