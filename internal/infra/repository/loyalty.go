package repository

import (
	"context"
	"log/slog"
	"time"

	"hotel-kiosk/internal/domain/loyalty"
	"hotel-kiosk/internal/infra"
	"hotel-kiosk/internal/infra/repository/converter"
	"hotel-kiosk/internal/infra/sqlstore"

	"github.com/google/uuid"
)

type LoyaltyQueries interface {
	CreateLoyaltyAccount(ctx context.Context, db sqlstore.DBTX, arg sqlstore.LoyaltyAccount) error
	GetLoyaltyAccountByNumber(ctx context.Context, db sqlstore.DBTX, number string, forUpdate bool) (sqlstore.LoyaltyAccount, error)
	GetLoyaltyAccountByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID, forUpdate bool) (sqlstore.LoyaltyAccount, error)
	GetLoyaltyAccountByGuestID(ctx context.Context, db sqlstore.DBTX, guestID uuid.UUID) (sqlstore.LoyaltyAccount, error)
	UpdateLoyaltyAccount(ctx context.Context, db sqlstore.DBTX, arg sqlstore.LoyaltyAccount) (int64, error)
	ListExpirableLoyaltyAccounts(ctx context.Context, db sqlstore.DBTX, before time.Time) ([]sqlstore.LoyaltyAccount, error)
	CreateLoyaltyTransaction(ctx context.Context, db sqlstore.DBTX, arg sqlstore.LoyaltyTransaction) error
	ListLoyaltyTransactions(ctx context.Context, db sqlstore.DBTX, accountID uuid.UUID, limit int32) ([]sqlstore.LoyaltyTransaction, error)
	ListLoyaltyTransactionsForReservation(ctx context.Context, db sqlstore.DBTX, reservationID uuid.UUID) ([]sqlstore.LoyaltyTransaction, error)
}

type LoyaltyRepository struct {
	queries LoyaltyQueries
	db      sqlstore.DBTX
	logger  *slog.Logger
}

func NewLoyaltyRepository(queries LoyaltyQueries, db sqlstore.DBTX, logger *slog.Logger) *LoyaltyRepository {
	return &LoyaltyRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *LoyaltyRepository) Create(ctx context.Context, a *loyalty.Account) error {
	if err := r.queries.CreateLoyaltyAccount(ctx, r.db, converter.LoyaltyAccountToRow(a)); err != nil {
		return infra.WrapDBErr(r.logger, "failed to create loyalty account", err)
	}
	return nil
}

func (r *LoyaltyRepository) FindByNumber(ctx context.Context, n loyalty.Number, forUpdate bool) (*loyalty.Account, error) {
	row, err := r.queries.GetLoyaltyAccountByNumber(ctx, r.db, n.Value(), forUpdate)
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to find loyalty account", err)
	}
	return r.toDomain(row)
}

func (r *LoyaltyRepository) FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*loyalty.Account, error) {
	row, err := r.queries.GetLoyaltyAccountByID(ctx, r.db, id, forUpdate)
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to find loyalty account", err)
	}
	return r.toDomain(row)
}

func (r *LoyaltyRepository) FindByGuestID(ctx context.Context, guestID uuid.UUID) (*loyalty.Account, error) {
	row, err := r.queries.GetLoyaltyAccountByGuestID(ctx, r.db, guestID)
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to find loyalty account for guest", err)
	}
	return r.toDomain(row)
}

func (r *LoyaltyRepository) Update(ctx context.Context, a *loyalty.Account) error {
	affected, err := r.queries.UpdateLoyaltyAccount(ctx, r.db, converter.LoyaltyAccountToRow(a))
	if err != nil {
		return infra.WrapDBErr(r.logger, "failed to update loyalty account", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "loyalty account not found", nil)
	}
	return nil
}

func (r *LoyaltyRepository) AppendTransaction(ctx context.Context, t *loyalty.Transaction) error {
	if err := r.queries.CreateLoyaltyTransaction(ctx, r.db, converter.LoyaltyTransactionToRow(t)); err != nil {
		return infra.WrapDBErr(r.logger, "failed to append loyalty transaction", err)
	}
	return nil
}

func (r *LoyaltyRepository) Transactions(ctx context.Context, accountID uuid.UUID, limit int) ([]*loyalty.Transaction, error) {
	rows, err := r.queries.ListLoyaltyTransactions(ctx, r.db, accountID, int32(limit)) // #nosec G115 -- callers cap the limit
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to list loyalty transactions", err)
	}
	return converter.LoyaltyTransactionsFromRows(rows), nil
}

func (r *LoyaltyRepository) TransactionsForReservation(ctx context.Context, reservationID uuid.UUID) ([]*loyalty.Transaction, error) {
	rows, err := r.queries.ListLoyaltyTransactionsForReservation(ctx, r.db, reservationID)
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to list reservation loyalty transactions", err)
	}
	return converter.LoyaltyTransactionsFromRows(rows), nil
}

func (r *LoyaltyRepository) ListExpirable(ctx context.Context, before time.Time) ([]*loyalty.Account, error) {
	rows, err := r.queries.ListExpirableLoyaltyAccounts(ctx, r.db, before)
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to list expirable loyalty accounts", err)
	}
	out := make([]*loyalty.Account, 0, len(rows))
	for _, row := range rows {
		a, err := r.toDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *LoyaltyRepository) toDomain(row sqlstore.LoyaltyAccount) (*loyalty.Account, error) {
	a, err := converter.LoyaltyAccountFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored loyalty account is invalid", err)
	}
	return a, nil
}
