package repository

import (
	"context"
	"log/slog"

	"hotel-kiosk/internal/domain/catalog"
	"hotel-kiosk/internal/domain/reservation"
	"hotel-kiosk/internal/domain/room"
	"hotel-kiosk/internal/infra"
	"hotel-kiosk/internal/infra/repository/converter"
	"hotel-kiosk/internal/infra/sqlstore"

	"github.com/google/uuid"
)

type RoomQueries interface {
	CreateRoom(ctx context.Context, db sqlstore.DBTX, arg sqlstore.CreateRoomParams) error
	ListRooms(ctx context.Context, db sqlstore.DBTX) ([]sqlstore.Room, error)
	GetRoomByNumber(ctx context.Context, db sqlstore.DBTX, number string, forUpdate bool) (sqlstore.Room, error)
	GetRoomsByIDs(ctx context.Context, db sqlstore.DBTX, ids []uuid.UUID, forUpdate bool) ([]sqlstore.Room, error)
	FindAvailableRooms(ctx context.Context, db sqlstore.DBTX, arg sqlstore.FindAvailableRoomsParams, forUpdate bool) ([]sqlstore.Room, error)
	UpdateRoomStatus(ctx context.Context, db sqlstore.DBTX, arg sqlstore.UpdateRoomStatusParams) (int64, error)
}

type RoomRepository struct {
	queries RoomQueries
	db      sqlstore.DBTX
	logger  *slog.Logger
}

func NewRoomRepository(queries RoomQueries, db sqlstore.DBTX, logger *slog.Logger) *RoomRepository {
	return &RoomRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) error {
	if err := r.queries.CreateRoom(ctx, r.db, converter.RoomToCreateParams(rm)); err != nil {
		return infra.WrapDBErr(r.logger, "failed to create room", err)
	}
	return nil
}

func (r *RoomRepository) List(ctx context.Context) ([]*room.Room, error) {
	rows, err := r.queries.ListRooms(ctx, r.db)
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to list rooms", err)
	}
	return converter.RoomsFromRows(rows), nil
}

func (r *RoomRepository) FindByNumber(ctx context.Context, number string, forUpdate bool) (*room.Room, error) {
	row, err := r.queries.GetRoomByNumber(ctx, r.db, number, forUpdate)
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to find room by number", err)
	}
	return converter.RoomFromRow(row), nil
}

func (r *RoomRepository) FindByIDs(ctx context.Context, ids []uuid.UUID, forUpdate bool) ([]*room.Room, error) {
	rows, err := r.queries.GetRoomsByIDs(ctx, r.db, ids, forUpdate)
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to find rooms by id", err)
	}
	if len(rows) != len(uniqueIDs(ids)) {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "room not found", nil)
	}
	return converter.RoomsFromRows(rows), nil
}

func (r *RoomRepository) FindAvailable(ctx context.Context, roomType catalog.RoomTypeCode, stay reservation.DateRange, forUpdate bool) ([]*room.Room, error) {
	rows, err := r.queries.FindAvailableRooms(ctx, r.db, sqlstore.FindAvailableRoomsParams{
		RoomType: roomType.String(),
		CheckIn:  stay.CheckIn(),
		CheckOut: stay.CheckOut(),
	}, forUpdate)
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to find available rooms", err)
	}
	return converter.RoomsFromRows(rows), nil
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, rm *room.Room) error {
	affected, err := r.queries.UpdateRoomStatus(ctx, r.db, converter.RoomToStatusParams(rm))
	if err != nil {
		return infra.WrapDBErr(r.logger, "failed to update room status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "room not found", nil)
	}
	return nil
}

func uniqueIDs(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
