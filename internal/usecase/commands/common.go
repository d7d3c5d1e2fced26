package commands

import (
	"context"

	"hotel-kiosk/internal/domain/guest"
	"hotel-kiosk/internal/domain/room"
	"hotel-kiosk/internal/infra"
	"hotel-kiosk/internal/pkg/errs"
	"hotel-kiosk/internal/usecase/shared"

	"github.com/google/uuid"
)

func storageErr(err error, notFound error) error {
	return shared.StorageErr(err, notFound)
}

// findOrCreateGuest returns the stored guest with g's email, storing g when
// there is none.
func findOrCreateGuest(ctx context.Context, tx shared.Tx, g *guest.Guest) (*guest.Guest, error) {
	existing, err := tx.Guests().FindByEmail(ctx, g.Email())
	switch {
	case err == nil:
		return existing, nil
	case !infra.IsKind(err, infra.KindNotFound):
		return nil, storageErr(err, nil)
	}
	if err := tx.Guests().Create(ctx, g); err != nil {
		return nil, storageErr(err, nil)
	}
	return g, nil
}

// updateRooms loads the rooms, applies change to each and stores the ones
// that actually changed, returning their availability events.
func updateRooms(
	ctx context.Context,
	tx shared.Tx,
	ids []uuid.UUID,
	change func(*room.Room) (bool, error),
) ([]room.AvailabilityChanged, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rooms, err := tx.Rooms().FindByIDs(ctx, ids, true)
	if err != nil {
		return nil, storageErr(err, errs.ErrRoomNotFound)
	}
	var events []room.AvailabilityChanged
	for _, r := range rooms {
		changed, err := change(r)
		if err != nil {
			return nil, err
		}
		if !changed {
			continue
		}
		if err := tx.Rooms().UpdateStatus(ctx, r); err != nil {
			return nil, storageErr(err, errs.ErrRoomNotFound)
		}
		events = append(events, room.ChangedEvent(r))
	}
	return events, nil
}
