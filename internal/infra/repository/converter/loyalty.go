package converter

import (
	"hotel-kiosk/internal/domain/loyalty"
	"hotel-kiosk/internal/infra/sqlstore"
)

func LoyaltyAccountToRow(a *loyalty.Account) sqlstore.LoyaltyAccount {
	return sqlstore.LoyaltyAccount{
		ID:             a.ID(),
		GuestID:        a.GuestID(),
		Number:         a.Number().Value(),
		Balance:        a.Balance(),
		LifetimePoints: a.LifetimePoints(),
		Tier:           a.Tier().String(),
		EnrolledAt:     a.EnrolledAt(),
		LastActivityAt: a.LastActivityAt(),
		UpdatedAt:      a.UpdatedAt(),
	}
}

// LoyaltyAccountFromRow derives the tier from lifetime points rather than
// trusting the stored column.
func LoyaltyAccountFromRow(row sqlstore.LoyaltyAccount) (*loyalty.Account, error) {
	number, err := loyalty.NewNumber(row.Number)
	if err != nil {
		return nil, err
	}
	return loyalty.ReconstructAccount(
		row.ID, row.GuestID,
		number,
		row.Balance, row.LifetimePoints,
		row.EnrolledAt, row.LastActivityAt, row.UpdatedAt,
	), nil
}

func LoyaltyTransactionToRow(t *loyalty.Transaction) sqlstore.LoyaltyTransaction {
	return sqlstore.LoyaltyTransaction{
		ID:            t.ID(),
		AccountID:     t.AccountID(),
		Type:          t.Type().String(),
		Points:        t.Points(),
		BalanceAfter:  t.BalanceAfter(),
		ReservationID: t.ReservationID(),
		Description:   t.Description(),
		CreatedAt:     t.CreatedAt(),
	}
}

func LoyaltyTransactionsFromRows(rows []sqlstore.LoyaltyTransaction) []*loyalty.Transaction {
	out := make([]*loyalty.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, loyalty.ReconstructTransaction(
			row.ID, row.AccountID,
			loyalty.TransactionType(row.Type),
			row.Points, row.BalanceAfter,
			row.ReservationID,
			row.Description,
			row.CreatedAt,
		))
	}
	return out
}
