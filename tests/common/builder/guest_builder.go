//go:build unit || e2e

package builder

import (
	"hotel-kiosk/internal/domain/guest"
)

type GuestBuilder struct {
	Name  string
	Email string
	Phone string
}

func NewGuestBuilder() *GuestBuilder {
	return &GuestBuilder{
		Name:  "Ada Guest",
		Email: "ada@example.com",
		Phone: "+1 555 0100",
	}
}

func (g *GuestBuilder) With(mutate func(*GuestBuilder)) *GuestBuilder {
	mutate(g)
	return g
}

func (g *GuestBuilder) BuildDetails() guest.Details {
	return guest.Details{Name: g.Name, Email: g.Email, Phone: g.Phone}
}

func (g *GuestBuilder) BuildDomain() (*guest.Guest, error) {
	return g.BuildDetails().Parse(DefaultToday)
}

func (g *GuestBuilder) WithName(name string) *GuestBuilder {
	g.Name = name
	return g
}

func (g *GuestBuilder) WithEmail(email string) *GuestBuilder {
	g.Email = email
	return g
}

func (g *GuestBuilder) WithPhone(phone string) *GuestBuilder {
	g.Phone = phone
	return g
}
