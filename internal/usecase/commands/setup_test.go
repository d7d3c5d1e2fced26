//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotel-kiosk/internal/domain/catalog"
	"hotel-kiosk/internal/domain/guest"
	"hotel-kiosk/internal/domain/loyalty"
	"hotel-kiosk/internal/domain/pricing"
	"hotel-kiosk/internal/domain/reservation"
	"hotel-kiosk/internal/infra/memstore"
	"hotel-kiosk/internal/pkg/clock"
	"hotel-kiosk/internal/usecase/commands"
	"hotel-kiosk/internal/usecase/queries"
	"hotel-kiosk/internal/usecase/shared"
	"hotel-kiosk/tests/common/builder"
	"hotel-kiosk/tests/common/testutil"

	"github.com/stretchr/testify/require"
)

type kiosk struct {
	store        *memstore.Store
	clock        *clock.MockClock
	listener     *testutil.RecordingListener
	reservations commands.ReservationCommands
	loyalty      commands.LoyaltyCommands
	rooms        commands.RoomCommands
	queries      queries.HotelQueries
}

type kioskOption func(*kioskOptions)

type kioskOptions struct {
	confirmations reservation.ConfirmationGenerator
	loyalty       loyalty.Config
	wrap          func(shared.UnitOfWork) shared.UnitOfWork
}

func withConfirmations(values ...string) kioskOption {
	return func(o *kioskOptions) { o.confirmations = &testutil.SequenceConfirmations{Values: values} }
}

func withLoyaltyConfig(mutate func(*loyalty.Config)) kioskOption {
	return func(o *kioskOptions) { mutate(&o.loyalty) }
}

// withUnitOfWork routes reservation commands through wrap(store).
func withUnitOfWork(wrap func(shared.UnitOfWork) shared.UnitOfWork) kioskOption {
	return func(o *kioskOptions) { o.wrap = wrap }
}

func newKiosk(t *testing.T, opts ...kioskOption) *kiosk {
	t.Helper()
	o := kioskOptions{
		confirmations: reservation.NewRandomConfirmationGenerator(),
		loyalty:       loyalty.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	logger := testutil.DiscardLogger()
	store := memstore.New(logger)
	var uow shared.UnitOfWork = store
	if o.wrap != nil {
		uow = o.wrap(store)
	}
	clk := clock.NewMockClock(builder.DefaultToday)
	listener := &testutil.RecordingListener{}
	notifier := shared.NewAvailabilityNotifier(logger, listener)
	factory := reservation.NewFactory(clk, pricing.NewEngine(pricing.DefaultConfiguration(), o.loyalty), o.confirmations)

	return &kiosk{
		store:        store,
		clock:        clk,
		listener:     listener,
		reservations: commands.NewReservationUseCase(uow, factory, notifier, clk, logger),
		loyalty:      commands.NewLoyaltyUseCase(store, o.loyalty, clk, logger),
		rooms:        commands.NewRoomUseCase(store, notifier, clk, logger),
		queries:      queries.NewHotelQueries(store, factory, clk, logger),
	}
}

func (k *kiosk) seedSingles(t *testing.T, numbers ...string) {
	t.Helper()
	testutil.SeedRooms(t, k.store, builder.Inventory(catalog.RoomTypeSingle, numbers...)...)
}

func (k *kiosk) book(t *testing.T, b *builder.BookingBuilder, g *builder.GuestBuilder) *queries.ReservationView {
	t.Helper()
	view, err := k.reservations.CreateReservation(context.Background(), b.BuildRequest(g.BuildDetails()))
	require.NoError(t, err)
	return view
}

func (k *kiosk) guestExists(t *testing.T, email string) bool {
	t.Helper()
	e, err := guest.NewEmail(email)
	require.NoError(t, err)
	found := false
	err = k.store.WithinReadOnly(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		_, ferr := tx.Guests().FindByEmail(ctx, e)
		found = ferr == nil
		return nil
	})
	require.NoError(t, err)
	return found
}
