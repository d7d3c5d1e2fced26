//go:build unit

package guest_test

import (
	"testing"

	"hotel-kiosk/internal/domain/guest"
	"hotel-kiosk/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(guest.Guest{}),
}

type testCase struct {
	name   string
	mutate func(*builder.GuestBuilder)
	errIs  error
}

func TestGuest(t *testing.T) {
	t.Run("valid details", func(t *testing.T) {
		actual, err := builder.NewGuestBuilder().BuildDomain()
		require.NoError(t, err)

		name, _ := guest.NewName("Ada Guest")
		email, _ := guest.NewEmail("ada@example.com")
		phone, _ := guest.NewPhone("+1 555 0100")
		expected := guest.NewGuest(name, email, phone, builder.DefaultToday)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("Guest mismatch (-want +got):\n%s", diff)
		}
		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "ada@example.com", actual.Email().Value())
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "mixed case is accepted", mutate: func(b *builder.GuestBuilder) { b.WithEmail("  Ada@Example.COM ") }},
			{name: "empty", mutate: func(b *builder.GuestBuilder) { b.WithEmail("") }, errIs: guest.ErrInvalidEmail},
			{name: "missing at", mutate: func(b *builder.GuestBuilder) { b.WithEmail("ada.example.com") }, errIs: guest.ErrInvalidEmail},
		})
	})

	t.Run("name and phone", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "blank name", mutate: func(b *builder.GuestBuilder) { b.WithName("   ") }, errIs: guest.ErrInvalidName},
			{name: "phone is optional", mutate: func(b *builder.GuestBuilder) { b.WithPhone("") }},
			{name: "letters in phone", mutate: func(b *builder.GuestBuilder) { b.WithPhone("call me") }, errIs: guest.ErrInvalidPhone},
		})
	})
}

func TestEmail_Normalized(t *testing.T) {
	e, err := guest.NewEmail("  Ada@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", e.Value())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewGuestBuilder()
			if c.mutate != nil {
				b.With(c.mutate)
			}
			g, err := b.BuildDomain()
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, g)
		})
	}
}
