package memstore

import (
	"context"

	"hotel-kiosk/internal/domain/guest"
	"hotel-kiosk/internal/infra"

	"github.com/google/uuid"
)

// Guests are immutable once stored, so they are shared rather than copied.
type guestRepo struct {
	tx *memTx
}

func (r *guestRepo) Create(_ context.Context, g *guest.Guest) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	for _, existing := range r.tx.state.guests {
		if existing.Email() == g.Email() {
			return infra.RepositoryError{Kind: infra.KindDuplicateKey}
		}
	}
	r.tx.state.guests[g.ID()] = g
	return nil
}

func (r *guestRepo) FindByID(_ context.Context, id uuid.UUID) (*guest.Guest, error) {
	g, ok := r.tx.state.guests[id]
	if !ok {
		return nil, infra.NotFound("guest not found")
	}
	return g, nil
}

func (r *guestRepo) FindByEmail(_ context.Context, email guest.Email) (*guest.Guest, error) {
	for _, g := range r.tx.state.guests {
		if g.Email() == email {
			return g, nil
		}
	}
	return nil, infra.NotFound("guest not found")
}
