package repository

import (
	"context"
	"log/slog"

	"hotel-kiosk/internal/domain/guest"
	"hotel-kiosk/internal/infra"
	"hotel-kiosk/internal/infra/repository/converter"
	"hotel-kiosk/internal/infra/sqlstore"

	"github.com/google/uuid"
)

type GuestQueries interface {
	CreateGuest(ctx context.Context, db sqlstore.DBTX, arg sqlstore.Guest) error
	GetGuestByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Guest, error)
	GetGuestByEmail(ctx context.Context, db sqlstore.DBTX, email string) (sqlstore.Guest, error)
}

type GuestRepository struct {
	queries GuestQueries
	db      sqlstore.DBTX
	logger  *slog.Logger
}

func NewGuestRepository(queries GuestQueries, db sqlstore.DBTX, logger *slog.Logger) *GuestRepository {
	return &GuestRepository{queries: queries, db: db, logger: logger}
}

func (r *GuestRepository) Create(ctx context.Context, g *guest.Guest) error {
	if err := r.queries.CreateGuest(ctx, r.db, converter.GuestToRow(g)); err != nil {
		return infra.WrapDBErr(r.logger, "failed to create guest", err)
	}
	return nil
}

func (r *GuestRepository) FindByID(ctx context.Context, id uuid.UUID) (*guest.Guest, error) {
	row, err := r.queries.GetGuestByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to find guest", err)
	}
	return r.toDomain(row)
}

func (r *GuestRepository) FindByEmail(ctx context.Context, email guest.Email) (*guest.Guest, error) {
	row, err := r.queries.GetGuestByEmail(ctx, r.db, email.Value())
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to find guest by email", err)
	}
	return r.toDomain(row)
}

func (r *GuestRepository) toDomain(row sqlstore.Guest) (*guest.Guest, error) {
	g, err := converter.GuestFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored guest is invalid", err)
	}
	return g, nil
}
