package guest

import (
	"time"

	"github.com/google/uuid"
)

// Guest is the identity a reservation or loyalty account points at.
type Guest struct {
	id        uuid.UUID
	name      Name
	email     Email
	phone     Phone
	createdAt time.Time
}

func NewGuest(name Name, email Email, phone Phone, now time.Time) *Guest {
	return &Guest{
		id:        uuid.New(),
		name:      name,
		email:     email,
		phone:     phone,
		createdAt: now,
	}
}

func ReconstructGuest(id uuid.UUID, name Name, email Email, phone Phone, createdAt time.Time) *Guest {
	return &Guest{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		createdAt: createdAt,
	}
}

func (g *Guest) ID() uuid.UUID        { return g.id }
func (g *Guest) Name() Name           { return g.name }
func (g *Guest) Email() Email         { return g.email }
func (g *Guest) Phone() Phone         { return g.phone }
func (g *Guest) CreatedAt() time.Time { return g.createdAt }

// Details is the unvalidated contact data a kiosk form submits.
type Details struct {
	Name  string
	Email string
	Phone string
}

// Parse validates the details into a new guest.
func (d Details) Parse(now time.Time) (*Guest, error) {
	name, err := NewName(d.Name)
	if err != nil {
		return nil, err
	}
	email, err := NewEmail(d.Email)
	if err != nil {
		return nil, err
	}
	phone, err := NewPhone(d.Phone)
	if err != nil {
		return nil, err
	}
	return NewGuest(name, email, phone, now), nil
}
