package memstore

import (
	"context"
	"sort"

	"hotel-kiosk/internal/domain/catalog"
	"hotel-kiosk/internal/domain/reservation"
	"hotel-kiosk/internal/domain/room"
	"hotel-kiosk/internal/infra"

	"github.com/google/uuid"
)

type roomRepo struct {
	tx *memTx
}

func copyRoom(r *room.Room) *room.Room {
	return room.ReconstructRoom(r.ID(), r.Number(), r.RoomType(), r.Floor(), r.Status(), r.PriceOverride(), r.UpdatedAt())
}

func (r *roomRepo) Create(_ context.Context, rm *room.Room) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	for _, existing := range r.tx.state.rooms {
		if existing.Number() == rm.Number() {
			return infra.RepositoryError{Kind: infra.KindDuplicateKey}
		}
	}
	r.tx.state.rooms[rm.ID()] = copyRoom(rm)
	return nil
}

func (r *roomRepo) List(_ context.Context) ([]*room.Room, error) {
	out := make([]*room.Room, 0, len(r.tx.state.rooms))
	for _, rm := range r.tx.state.rooms {
		out = append(out, copyRoom(rm))
	}
	sortRooms(out)
	return out, nil
}

func (r *roomRepo) FindByNumber(_ context.Context, number string, _ bool) (*room.Room, error) {
	for _, rm := range r.tx.state.rooms {
		if rm.Number() == number {
			return copyRoom(rm), nil
		}
	}
	return nil, infra.NotFound("room not found")
}

func (r *roomRepo) FindByIDs(_ context.Context, ids []uuid.UUID, _ bool) ([]*room.Room, error) {
	out := make([]*room.Room, 0, len(ids))
	for _, id := range ids {
		rm, ok := r.tx.state.rooms[id]
		if !ok {
			return nil, infra.NotFound("room not found")
		}
		out = append(out, copyRoom(rm))
	}
	return out, nil
}

func (r *roomRepo) FindAvailable(_ context.Context, roomType catalog.RoomTypeCode, stay reservation.DateRange, _ bool) ([]*room.Room, error) {
	booked := make(map[uuid.UUID]struct{})
	for _, snap := range r.tx.state.reservations {
		if !snap.Status.HoldsInventory() || !snap.Stay.Overlaps(stay) {
			continue
		}
		for _, a := range snap.Assignments {
			booked[a.RoomID] = struct{}{}
		}
	}

	var out []*room.Room
	for id, rm := range r.tx.state.rooms {
		if rm.RoomType() != roomType || rm.Status() == room.StatusMaintenance {
			continue
		}
		if _, taken := booked[id]; taken {
			continue
		}
		out = append(out, copyRoom(rm))
	}
	sortRooms(out)
	return out, nil
}

func (r *roomRepo) UpdateStatus(_ context.Context, rm *room.Room) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	if _, ok := r.tx.state.rooms[rm.ID()]; !ok {
		return infra.NotFound("room not found")
	}
	r.tx.state.rooms[rm.ID()] = copyRoom(rm)
	return nil
}

func sortRooms(rooms []*room.Room) {
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].Number() < rooms[j].Number() })
}
