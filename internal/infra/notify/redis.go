package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"hotel-kiosk/internal/domain/room"
	"hotel-kiosk/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher pushes availability changes to a pub/sub channel and keeps
// a number -> status hash that kiosk screens read on startup.
type RedisPublisher struct {
	client  redis.UniversalClient
	channel string
	logger  *slog.Logger
}

func NewRedisPublisher(client redis.UniversalClient, channel string, logger *slog.Logger) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel, logger: logger}
}

// StatusBoardKey is the hash holding the latest status per room number.
func (p *RedisPublisher) StatusBoardKey() string {
	return p.channel + ":rooms"
}

func (p *RedisPublisher) AvailabilityChanged(ctx context.Context, evt room.AvailabilityChanged) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return errs.Wrap(err, "encode availability event")
	}

	if err := p.client.HSet(ctx, p.StatusBoardKey(), evt.RoomNumber, evt.Status.String()).Err(); err != nil {
		return errs.Wrapf(err, "update status board for room %s", evt.RoomNumber)
	}

	receivers, err := p.client.Publish(ctx, p.channel, payload).Result()
	if err != nil {
		return errs.Wrapf(err, "publish availability for room %s", evt.RoomNumber)
	}
	p.logger.DebugContext(ctx, "availability published",
		slog.String("channel", p.channel),
		slog.String("room_number", evt.RoomNumber),
		slog.Int64("receivers", receivers))
	return nil
}
