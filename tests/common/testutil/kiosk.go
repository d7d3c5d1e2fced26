//go:build unit || e2e

package testutil

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"hotel-kiosk/internal/domain/reservation"
	"hotel-kiosk/internal/domain/room"
	"hotel-kiosk/internal/usecase/shared"

	"github.com/stretchr/testify/require"
)

func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SeedRooms stores the rooms in one transaction.
func SeedRooms(t *testing.T, uow shared.UnitOfWork, rooms ...*room.Room) {
	t.Helper()
	err := uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		for _, r := range rooms {
			if err := tx.Rooms().Create(ctx, r); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}

// RoomStatus reads the stored status of a room.
func RoomStatus(t *testing.T, uow shared.UnitOfWork, number string) room.Status {
	t.Helper()
	var status room.Status
	err := uow.WithinReadOnly(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Rooms().FindByNumber(ctx, number, false)
		if err != nil {
			return err
		}
		status = r.Status()
		return nil
	})
	require.NoError(t, err)
	return status
}

// RecordingListener keeps every availability event it receives.
type RecordingListener struct {
	mu     sync.Mutex
	events []room.AvailabilityChanged
}

func (l *RecordingListener) AvailabilityChanged(_ context.Context, evt room.AvailabilityChanged) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, evt)
	return nil
}

func (l *RecordingListener) Events() []room.AvailabilityChanged {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]room.AvailabilityChanged(nil), l.events...)
}

// SequenceConfirmations hands out the given confirmation numbers in order
// and repeats the last one once exhausted.
type SequenceConfirmations struct {
	mu     sync.Mutex
	Values []string
	next   int
}

func (s *SequenceConfirmations) Next() (reservation.ConfirmationNumber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.next
	if i >= len(s.Values) {
		i = len(s.Values) - 1
	}
	s.next++
	return reservation.NewConfirmationNumber(s.Values[i])
}
