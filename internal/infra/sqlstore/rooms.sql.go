package sqlstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const roomColumns = `r.id, r.number, r.room_type, r.floor, r.status, r.price_override_cents, r.created_at, r.updated_at`

func scanRoom(row pgx.Row) (Room, error) {
	var i Room
	err := row.Scan(
		&i.ID,
		&i.Number,
		&i.RoomType,
		&i.Floor,
		&i.Status,
		&i.PriceOverrideCents,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createRoom = `
INSERT INTO rooms (id, number, room_type, floor, status, price_override_cents, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

type CreateRoomParams struct {
	ID                 uuid.UUID
	Number             string
	RoomType           string
	Floor              int32
	Status             string
	PriceOverrideCents *int64
	UpdatedAt          time.Time
}

func (q *Queries) CreateRoom(ctx context.Context, db DBTX, arg CreateRoomParams) error {
	_, err := db.Exec(ctx, createRoom,
		arg.ID,
		arg.Number,
		arg.RoomType,
		arg.Floor,
		arg.Status,
		arg.PriceOverrideCents,
		arg.UpdatedAt,
	)
	return err
}

const listRooms = `SELECT ` + roomColumns + ` FROM rooms r ORDER BY r.number`

func (q *Queries) ListRooms(ctx context.Context, db DBTX) ([]Room, error) {
	rows, err := db.Query(ctx, listRooms)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanRoom)
}

const getRoomByNumber = `SELECT ` + roomColumns + ` FROM rooms r WHERE r.number = $1`

func (q *Queries) GetRoomByNumber(ctx context.Context, db DBTX, number string, forUpdate bool) (Room, error) {
	return scanRoom(db.QueryRow(ctx, getRoomByNumber+lockClause(forUpdate), number))
}

// Locks are taken in room-number order to keep concurrent bookings from
// deadlocking on each other.
const getRoomsByIDs = `SELECT ` + roomColumns + ` FROM rooms r WHERE r.id = ANY($1::uuid[]) ORDER BY r.number`

func (q *Queries) GetRoomsByIDs(ctx context.Context, db DBTX, ids []uuid.UUID, forUpdate bool) ([]Room, error) {
	rows, err := db.Query(ctx, getRoomsByIDs+lockClause(forUpdate), ids)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanRoom)
}

// findAvailableRooms is the half-open overlap check: a stay ending on the
// day another begins does not conflict.
const findAvailableRooms = `
SELECT ` + roomColumns + `
FROM rooms r
WHERE r.room_type = $1
  AND r.status <> 'MAINTENANCE'
  AND NOT EXISTS (
      SELECT 1
      FROM room_assignments ra
      WHERE ra.room_id = r.id
        AND ra.active
        AND daterange(ra.check_in, ra.check_out, '[)') && daterange($2::date, $3::date, '[)')
  )
ORDER BY r.number`

type FindAvailableRoomsParams struct {
	RoomType string
	CheckIn  time.Time
	CheckOut time.Time
}

func (q *Queries) FindAvailableRooms(ctx context.Context, db DBTX, arg FindAvailableRoomsParams, forUpdate bool) ([]Room, error) {
	sql := findAvailableRooms
	if forUpdate {
		sql += " FOR UPDATE OF r"
	}
	rows, err := db.Query(ctx, sql, arg.RoomType, arg.CheckIn, arg.CheckOut)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanRoom)
}

const updateRoomStatus = `UPDATE rooms SET status = $2, updated_at = $3 WHERE id = $1`

type UpdateRoomStatusParams struct {
	ID        uuid.UUID
	Status    string
	UpdatedAt time.Time
}

func (q *Queries) UpdateRoomStatus(ctx context.Context, db DBTX, arg UpdateRoomStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updateRoomStatus, arg.ID, arg.Status, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
