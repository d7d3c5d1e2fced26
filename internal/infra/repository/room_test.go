//go:build unit

package repository

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"hotel-kiosk/internal/domain/catalog"
	"hotel-kiosk/internal/domain/reservation"
	"hotel-kiosk/internal/domain/room"
	"hotel-kiosk/internal/infra"
	"hotel-kiosk/internal/infra/sqlstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func roomRow(number string) sqlstore.Room {
	return sqlstore.Room{
		ID:        uuid.New(),
		Number:    number,
		RoomType:  catalog.RoomTypeSingle.String(),
		Floor:     1,
		Status:    room.StatusAvailable.String(),
		UpdatedAt: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
	}
}

func TestRoomRepository_Create(t *testing.T) {
	tests := []struct {
		name       string
		mockError  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "number taken", mockError: &pgconn.PgError{Code: "23505"}, expectKind: infra.KindDuplicateKey},
		{name: "database error", mockError: assert.AnError, expectKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(mockQueries)
			q.On("CreateRoom", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlstore.CreateRoomParams) bool {
				return p.Number == "305" && p.RoomType == "DELUXE"
			})).Return(tt.mockError)

			rm, err := room.NewRoom("305", catalog.RoomTypeDeluxe, 3, nil)
			require.NoError(t, err)

			err = NewRoomRepository(q, mockDBTX{}, discardLogger()).Create(context.Background(), rm)
			if tt.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.expectKind))
			} else {
				require.NoError(t, err)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestRoomRepository_FindByNumber(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		q := new(mockQueries)
		row := roomRow("101")
		q.On("GetRoomByNumber", mock.Anything, mock.Anything, "101", true).Return(row, nil)

		rm, err := NewRoomRepository(q, mockDBTX{}, discardLogger()).FindByNumber(context.Background(), "101", true)
		require.NoError(t, err)
		assert.Equal(t, row.ID, rm.ID())
		assert.Equal(t, room.StatusAvailable, rm.Status())
		assert.Nil(t, rm.PriceOverride())
	})

	t.Run("missing", func(t *testing.T) {
		q := new(mockQueries)
		q.On("GetRoomByNumber", mock.Anything, mock.Anything, "999", false).Return(sqlstore.Room{}, pgx.ErrNoRows)

		_, err := NewRoomRepository(q, mockDBTX{}, discardLogger()).FindByNumber(context.Background(), "999", false)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestRoomRepository_FindByIDs(t *testing.T) {
	a, b := roomRow("101"), roomRow("102")

	t.Run("all present, duplicates collapse", func(t *testing.T) {
		q := new(mockQueries)
		ids := []uuid.UUID{a.ID, b.ID, a.ID}
		q.On("GetRoomsByIDs", mock.Anything, mock.Anything, ids, true).Return([]sqlstore.Room{a, b}, nil)

		rooms, err := NewRoomRepository(q, mockDBTX{}, discardLogger()).FindByIDs(context.Background(), ids, true)
		require.NoError(t, err)
		assert.Len(t, rooms, 2)
	})

	t.Run("one missing", func(t *testing.T) {
		q := new(mockQueries)
		ids := []uuid.UUID{a.ID, uuid.New()}
		q.On("GetRoomsByIDs", mock.Anything, mock.Anything, ids, false).Return([]sqlstore.Room{a}, nil)

		_, err := NewRoomRepository(q, mockDBTX{}, discardLogger()).FindByIDs(context.Background(), ids, false)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestRoomRepository_FindAvailable(t *testing.T) {
	checkIn := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	stay, err := reservation.NewDateRange(checkIn, checkIn.AddDate(0, 0, 2))
	require.NoError(t, err)

	q := new(mockQueries)
	q.On("FindAvailableRooms", mock.Anything, mock.Anything, sqlstore.FindAvailableRoomsParams{
		RoomType: "SINGLE",
		CheckIn:  stay.CheckIn(),
		CheckOut: stay.CheckOut(),
	}, true).Return([]sqlstore.Room{roomRow("101"), roomRow("102")}, nil)

	rooms, err := NewRoomRepository(q, mockDBTX{}, discardLogger()).FindAvailable(context.Background(), catalog.RoomTypeSingle, stay, true)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "101", rooms[0].Number())
	q.AssertExpectations(t)
}

func TestRoomRepository_UpdateStatus(t *testing.T) {
	tests := []struct {
		name       string
		affected   int64
		mockError  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "room vanished", affected: 0, expectKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, expectKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := room.ReconstructRoom(uuid.New(), "101", catalog.RoomTypeSingle, 1, room.StatusCleaning, nil, time.Now())
			q := new(mockQueries)
			q.On("UpdateRoomStatus", mock.Anything, mock.Anything, sqlstore.UpdateRoomStatusParams{
				ID:        rm.ID(),
				Status:    "CLEANING",
				UpdatedAt: rm.UpdatedAt(),
			}).Return(tt.affected, tt.mockError)

			err := NewRoomRepository(q, mockDBTX{}, discardLogger()).UpdateStatus(context.Background(), rm)
			if tt.expectKind != "" {
				assert.True(t, infra.IsKind(err, tt.expectKind))
			} else {
				require.NoError(t, err)
			}
		})
	}
}
