package converter

import (
	"hotel-kiosk/internal/domain/guest"
	"hotel-kiosk/internal/infra/sqlstore"
)

func GuestToRow(g *guest.Guest) sqlstore.Guest {
	row := sqlstore.Guest{
		ID:        g.ID(),
		Name:      g.Name().Value(),
		Email:     g.Email().Value(),
		CreatedAt: g.CreatedAt(),
	}
	if p := g.Phone().Value(); p != "" {
		row.Phone = &p
	}
	return row
}

func GuestFromRow(row sqlstore.Guest) (*guest.Guest, error) {
	name, err := guest.NewName(row.Name)
	if err != nil {
		return nil, err
	}
	email, err := guest.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	var phone guest.Phone
	if row.Phone != nil {
		if phone, err = guest.NewPhone(*row.Phone); err != nil {
			return nil, err
		}
	}
	return guest.ReconstructGuest(row.ID, name, email, phone, row.CreatedAt), nil
}
