package memstore

import (
	"context"
	"sort"
	"time"

	"hotel-kiosk/internal/domain/loyalty"
	"hotel-kiosk/internal/infra"

	"github.com/google/uuid"
)

type loyaltyRepo struct {
	tx *memTx
}

func copyAccount(a *loyalty.Account) *loyalty.Account {
	return loyalty.ReconstructAccount(
		a.ID(), a.GuestID(), a.Number(),
		a.Balance(), a.LifetimePoints(),
		a.EnrolledAt(), a.LastActivityAt(), a.UpdatedAt(),
	)
}

func (r *loyaltyRepo) Create(_ context.Context, a *loyalty.Account) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	for _, existing := range r.tx.state.accounts {
		if existing.Number() == a.Number() || existing.GuestID() == a.GuestID() {
			return infra.RepositoryError{Kind: infra.KindDuplicateKey}
		}
	}
	if _, ok := r.tx.state.guests[a.GuestID()]; !ok {
		return infra.RepositoryError{Kind: infra.KindForeignKeyViolated}
	}
	r.tx.state.accounts[a.ID()] = copyAccount(a)
	return nil
}

func (r *loyaltyRepo) FindByNumber(_ context.Context, n loyalty.Number, _ bool) (*loyalty.Account, error) {
	for _, a := range r.tx.state.accounts {
		if a.Number() == n {
			return copyAccount(a), nil
		}
	}
	return nil, infra.NotFound("loyalty account not found")
}

func (r *loyaltyRepo) FindByID(_ context.Context, id uuid.UUID, _ bool) (*loyalty.Account, error) {
	a, ok := r.tx.state.accounts[id]
	if !ok {
		return nil, infra.NotFound("loyalty account not found")
	}
	return copyAccount(a), nil
}

func (r *loyaltyRepo) FindByGuestID(_ context.Context, guestID uuid.UUID) (*loyalty.Account, error) {
	for _, a := range r.tx.state.accounts {
		if a.GuestID() == guestID {
			return copyAccount(a), nil
		}
	}
	return nil, infra.NotFound("loyalty account not found")
}

func (r *loyaltyRepo) Update(_ context.Context, a *loyalty.Account) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	if _, ok := r.tx.state.accounts[a.ID()]; !ok {
		return infra.NotFound("loyalty account not found")
	}
	r.tx.state.accounts[a.ID()] = copyAccount(a)
	return nil
}

func (r *loyaltyRepo) AppendTransaction(_ context.Context, t *loyalty.Transaction) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	if _, ok := r.tx.state.accounts[t.AccountID()]; !ok {
		return infra.RepositoryError{Kind: infra.KindForeignKeyViolated}
	}
	r.tx.state.transactions = append(r.tx.state.transactions, t)
	return nil
}

func (r *loyaltyRepo) Transactions(_ context.Context, accountID uuid.UUID, limit int) ([]*loyalty.Transaction, error) {
	var out []*loyalty.Transaction
	// Appended in commit order, so walking backwards is newest first.
	for i := len(r.tx.state.transactions) - 1; i >= 0; i-- {
		t := r.tx.state.transactions[i]
		if t.AccountID() != accountID {
			continue
		}
		out = append(out, t)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *loyaltyRepo) TransactionsForReservation(_ context.Context, reservationID uuid.UUID) ([]*loyalty.Transaction, error) {
	var out []*loyalty.Transaction
	for _, t := range r.tx.state.transactions {
		if id := t.ReservationID(); id != nil && *id == reservationID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *loyaltyRepo) ListExpirable(_ context.Context, before time.Time) ([]*loyalty.Account, error) {
	var out []*loyalty.Account
	for _, a := range r.tx.state.accounts {
		if a.Balance() > 0 && a.LastActivityAt().Before(before) {
			out = append(out, copyAccount(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number().Value() < out[j].Number().Value() })
	return out, nil
}
