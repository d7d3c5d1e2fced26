package shared

import (
	"context"
	"log/slog"

	"hotel-kiosk/internal/domain/room"
)

type AvailabilityListener interface {
	AvailabilityChanged(ctx context.Context, evt room.AvailabilityChanged) error
}

// AvailabilityNotifier fans committed room status changes out to its
// listeners in registration order. A failing listener is logged and does
// not stop the others.
type AvailabilityNotifier struct {
	listeners []AvailabilityListener
	logger    *slog.Logger
}

func NewAvailabilityNotifier(logger *slog.Logger, listeners ...AvailabilityListener) *AvailabilityNotifier {
	return &AvailabilityNotifier{listeners: listeners, logger: logger}
}

func (n *AvailabilityNotifier) Register(l AvailabilityListener) {
	n.listeners = append(n.listeners, l)
}

func (n *AvailabilityNotifier) Notify(ctx context.Context, events []room.AvailabilityChanged) {
	if n == nil {
		return
	}
	for _, evt := range events {
		for _, l := range n.listeners {
			if err := l.AvailabilityChanged(ctx, evt); err != nil {
				n.logger.Warn("availability listener failed",
					slog.String("room_number", evt.RoomNumber),
					slog.String("status", evt.Status.String()),
					slog.String("error", err.Error()))
			}
		}
	}
}

// LogListener writes every availability change to the structured log.
type LogListener struct {
	logger *slog.Logger
}

func NewLogListener(logger *slog.Logger) *LogListener {
	return &LogListener{logger: logger}
}

func (l *LogListener) AvailabilityChanged(ctx context.Context, evt room.AvailabilityChanged) error {
	l.logger.InfoContext(ctx, "room availability changed",
		slog.String("room_id", evt.RoomID.String()),
		slog.String("room_number", evt.RoomNumber),
		slog.String("status", evt.Status.String()))
	return nil
}
