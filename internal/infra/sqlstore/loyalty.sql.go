package sqlstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const loyaltyAccountColumns = `id, guest_id, number, balance, lifetime_points, tier, enrolled_at, last_activity_at, updated_at`

func scanLoyaltyAccount(row pgx.Row) (LoyaltyAccount, error) {
	var i LoyaltyAccount
	err := row.Scan(
		&i.ID,
		&i.GuestID,
		&i.Number,
		&i.Balance,
		&i.LifetimePoints,
		&i.Tier,
		&i.EnrolledAt,
		&i.LastActivityAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createLoyaltyAccount = `INSERT INTO loyalty_accounts (` + loyaltyAccountColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (q *Queries) CreateLoyaltyAccount(ctx context.Context, db DBTX, arg LoyaltyAccount) error {
	_, err := db.Exec(ctx, createLoyaltyAccount,
		arg.ID,
		arg.GuestID,
		arg.Number,
		arg.Balance,
		arg.LifetimePoints,
		arg.Tier,
		arg.EnrolledAt,
		arg.LastActivityAt,
		arg.UpdatedAt,
	)
	return err
}

const getLoyaltyAccountByNumber = `SELECT ` + loyaltyAccountColumns + ` FROM loyalty_accounts WHERE number = $1`

func (q *Queries) GetLoyaltyAccountByNumber(ctx context.Context, db DBTX, number string, forUpdate bool) (LoyaltyAccount, error) {
	return scanLoyaltyAccount(db.QueryRow(ctx, getLoyaltyAccountByNumber+lockClause(forUpdate), number))
}

const getLoyaltyAccountByID = `SELECT ` + loyaltyAccountColumns + ` FROM loyalty_accounts WHERE id = $1`

func (q *Queries) GetLoyaltyAccountByID(ctx context.Context, db DBTX, id uuid.UUID, forUpdate bool) (LoyaltyAccount, error) {
	return scanLoyaltyAccount(db.QueryRow(ctx, getLoyaltyAccountByID+lockClause(forUpdate), id))
}

const getLoyaltyAccountByGuestID = `SELECT ` + loyaltyAccountColumns + ` FROM loyalty_accounts WHERE guest_id = $1`

func (q *Queries) GetLoyaltyAccountByGuestID(ctx context.Context, db DBTX, guestID uuid.UUID) (LoyaltyAccount, error) {
	return scanLoyaltyAccount(db.QueryRow(ctx, getLoyaltyAccountByGuestID, guestID))
}

const updateLoyaltyAccount = `
UPDATE loyalty_accounts
SET balance = $2,
    lifetime_points = $3,
    tier = $4,
    last_activity_at = $5,
    updated_at = $6
WHERE id = $1`

func (q *Queries) UpdateLoyaltyAccount(ctx context.Context, db DBTX, arg LoyaltyAccount) (int64, error) {
	tag, err := db.Exec(ctx, updateLoyaltyAccount,
		arg.ID,
		arg.Balance,
		arg.LifetimePoints,
		arg.Tier,
		arg.LastActivityAt,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listExpirableLoyaltyAccounts = `
SELECT ` + loyaltyAccountColumns + `
FROM loyalty_accounts
WHERE balance > 0 AND last_activity_at < $1
ORDER BY number`

func (q *Queries) ListExpirableLoyaltyAccounts(ctx context.Context, db DBTX, before time.Time) ([]LoyaltyAccount, error) {
	rows, err := db.Query(ctx, listExpirableLoyaltyAccounts, before)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanLoyaltyAccount)
}

const loyaltyTransactionColumns = `id, account_id, type, points, balance_after, reservation_id, description, created_at`

func scanLoyaltyTransaction(row pgx.Row) (LoyaltyTransaction, error) {
	var i LoyaltyTransaction
	err := row.Scan(
		&i.ID,
		&i.AccountID,
		&i.Type,
		&i.Points,
		&i.BalanceAfter,
		&i.ReservationID,
		&i.Description,
		&i.CreatedAt,
	)
	return i, err
}

const createLoyaltyTransaction = `INSERT INTO loyalty_transactions (` + loyaltyTransactionColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (q *Queries) CreateLoyaltyTransaction(ctx context.Context, db DBTX, arg LoyaltyTransaction) error {
	_, err := db.Exec(ctx, createLoyaltyTransaction,
		arg.ID,
		arg.AccountID,
		arg.Type,
		arg.Points,
		arg.BalanceAfter,
		arg.ReservationID,
		arg.Description,
		arg.CreatedAt,
	)
	return err
}

const listLoyaltyTransactions = `
SELECT ` + loyaltyTransactionColumns + `
FROM loyalty_transactions
WHERE account_id = $1
ORDER BY seq DESC
LIMIT $2`

func (q *Queries) ListLoyaltyTransactions(ctx context.Context, db DBTX, accountID uuid.UUID, limit int32) ([]LoyaltyTransaction, error) {
	rows, err := db.Query(ctx, listLoyaltyTransactions, accountID, limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanLoyaltyTransaction)
}

const listLoyaltyTransactionsForReservation = `
SELECT ` + loyaltyTransactionColumns + `
FROM loyalty_transactions
WHERE reservation_id = $1
ORDER BY seq`

func (q *Queries) ListLoyaltyTransactionsForReservation(ctx context.Context, db DBTX, reservationID uuid.UUID) ([]LoyaltyTransaction, error) {
	rows, err := db.Query(ctx, listLoyaltyTransactionsForReservation, reservationID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanLoyaltyTransaction)
}
