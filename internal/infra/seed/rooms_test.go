//go:build unit

package seed_test

import (
	"context"
	"testing"

	"hotel-kiosk/internal/domain/catalog"
	"hotel-kiosk/internal/infra/memstore"
	"hotel-kiosk/internal/infra/seed"
	"hotel-kiosk/internal/usecase/shared"
	"hotel-kiosk/tests/common/builder"
	"hotel-kiosk/tests/common/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRooms(t *testing.T) {
	rooms, err := seed.DefaultRooms()
	require.NoError(t, err)

	byType := map[catalog.RoomTypeCode][]string{}
	for _, r := range rooms {
		byType[r.RoomType()] = append(byType[r.RoomType()], r.Number())
	}
	assert.Equal(t, []string{"101", "102", "103", "104"}, byType[catalog.RoomTypeSingle])
	assert.Equal(t, []string{"201", "202", "203", "204"}, byType[catalog.RoomTypeDouble])
	assert.Equal(t, []string{"301", "302"}, byType[catalog.RoomTypeDeluxe])
	assert.Equal(t, []string{"401"}, byType[catalog.RoomTypePenthouse])
}

func TestRooms(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(testutil.DiscardLogger())
	testutil.SeedRooms(t, store, builder.NewRoomBuilder().WithNumber("101").BuildDomain())

	rooms, err := seed.DefaultRooms()
	require.NoError(t, err)

	added, err := seed.Rooms(ctx, store, rooms, testutil.DiscardLogger())
	require.NoError(t, err)
	assert.Equal(t, len(rooms)-1, added)

	added, err = seed.Rooms(ctx, store, rooms, testutil.DiscardLogger())
	require.NoError(t, err)
	assert.Zero(t, added)

	err = store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		all, err := tx.Rooms().List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, len(rooms))
		return nil
	})
	require.NoError(t, err)
}
