package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const guestColumns = `id, name, email, phone, created_at`

func scanGuest(row pgx.Row) (Guest, error) {
	var i Guest
	err := row.Scan(&i.ID, &i.Name, &i.Email, &i.Phone, &i.CreatedAt)
	return i, err
}

const createGuest = `INSERT INTO guests (id, name, email, phone, created_at) VALUES ($1, $2, $3, $4, $5)`

func (q *Queries) CreateGuest(ctx context.Context, db DBTX, arg Guest) error {
	_, err := db.Exec(ctx, createGuest, arg.ID, arg.Name, arg.Email, arg.Phone, arg.CreatedAt)
	return err
}

const getGuestByID = `SELECT ` + guestColumns + ` FROM guests WHERE id = $1`

func (q *Queries) GetGuestByID(ctx context.Context, db DBTX, id uuid.UUID) (Guest, error) {
	return scanGuest(db.QueryRow(ctx, getGuestByID, id))
}

const getGuestByEmail = `SELECT ` + guestColumns + ` FROM guests WHERE email = $1`

func (q *Queries) GetGuestByEmail(ctx context.Context, db DBTX, email string) (Guest, error) {
	return scanGuest(db.QueryRow(ctx, getGuestByEmail, email))
}
