package commands

import (
	"context"
	"log/slog"

	"hotel-kiosk/internal/domain/catalog"
	"hotel-kiosk/internal/domain/room"
	"hotel-kiosk/internal/domain/staff"
	"hotel-kiosk/internal/infra"
	"hotel-kiosk/internal/pkg/clock"
	"hotel-kiosk/internal/pkg/errs"
	"hotel-kiosk/internal/pkg/money"
	"hotel-kiosk/internal/usecase/queries"
	"hotel-kiosk/internal/usecase/shared"
)

type CreateRoomRequest struct {
	Number        string
	RoomType      catalog.RoomTypeCode
	Floor         int
	PriceOverride *money.Money
}

//go:generate mockgen -source=room.go -destination=../../../tests/mock/commands/mock_room.go -package=commandsmock

type RoomCommands interface {
	CreateRoom(ctx context.Context, req CreateRoomRequest, actor staff.Actor) (*queries.RoomView, error)
	ChangeRoomStatus(ctx context.Context, number string, status room.Status, actor staff.Actor) (*queries.RoomView, error)
}

type roomUseCaseImpl struct {
	uow      shared.UnitOfWork
	notifier *shared.AvailabilityNotifier
	clock    clock.Clock
	logger   *slog.Logger
}

func NewRoomUseCase(uow shared.UnitOfWork, notifier *shared.AvailabilityNotifier, clk clock.Clock, logger *slog.Logger) RoomCommands {
	return &roomUseCaseImpl{uow: uow, notifier: notifier, clock: clk, logger: logger}
}

func (uc *roomUseCaseImpl) CreateRoom(ctx context.Context, req CreateRoomRequest, actor staff.Actor) (*queries.RoomView, error) {
	r, err := room.NewRoom(req.Number, req.RoomType, req.Floor, req.PriceOverride)
	if err != nil {
		return nil, err
	}
	r = room.ReconstructRoom(r.ID(), r.Number(), r.RoomType(), r.Floor(), r.Status(), r.PriceOverride(), uc.clock.Now())

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Rooms().Create(ctx, r); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, errs.ErrRoomNumberTaken)
			}
			return storageErr(derr, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("room created",
		slog.String("room_number", r.Number()),
		slog.String("room_type", r.RoomType().String()),
		slog.String("staff_id", actor.ID.String()))
	uc.notifier.Notify(ctx, []room.AvailabilityChanged{room.ChangedEvent(r)})
	view := queries.NewRoomView(r)
	return &view, nil
}

// ChangeRoomStatus is the housekeeping entry point. Unchanged rooms emit no
// event.
func (uc *roomUseCaseImpl) ChangeRoomStatus(ctx context.Context, number string, status room.Status, actor staff.Actor) (*queries.RoomView, error) {
	if !status.IsValid() {
		return nil, room.ErrInvalidStatus
	}

	var (
		updated *room.Room
		events  []room.AvailabilityChanged
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		events = nil
		r, derr := tx.Rooms().FindByNumber(ctx, number, true)
		if derr != nil {
			return storageErr(derr, errs.ErrRoomNotFound)
		}
		changed, derr := r.ChangeStatus(status, uc.clock.Now())
		if derr != nil {
			return derr
		}
		if changed {
			if derr := tx.Rooms().UpdateStatus(ctx, r); derr != nil {
				return storageErr(derr, errs.ErrRoomNotFound)
			}
			events = append(events, room.ChangedEvent(r))
		}
		updated = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(events) > 0 {
		uc.logger.Info("room status changed",
			slog.String("room_number", updated.Number()),
			slog.String("status", updated.Status().String()),
			slog.String("staff_id", actor.ID.String()))
	}
	uc.notifier.Notify(ctx, events)
	view := queries.NewRoomView(updated)
	return &view, nil
}
