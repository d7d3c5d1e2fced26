package queries

import (
	"context"
	"log/slog"
	"time"

	"hotel-kiosk/internal/domain/catalog"
	"hotel-kiosk/internal/domain/loyalty"
	"hotel-kiosk/internal/domain/pricing"
	"hotel-kiosk/internal/domain/reservation"
	"hotel-kiosk/internal/domain/room"
	"hotel-kiosk/internal/pkg/clock"
	"hotel-kiosk/internal/pkg/errs"
	"hotel-kiosk/internal/usecase/shared"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

type QuoteRequest struct {
	CheckIn       time.Time
	CheckOut      time.Time
	Adults        int
	Children      int
	Rooms         []reservation.RoomRequest
	AddOns        []reservation.AddOnRequest
	LoyaltyNumber string
	RedeemPoints  int64
}

//go:generate mockgen -source=hotel.go -destination=../../../tests/mock/queries/mock_hotel.go -package=queriesmock

type HotelQueries interface {
	Catalog(ctx context.Context) CatalogView
	FindAvailableRooms(ctx context.Context, roomType catalog.RoomTypeCode, checkIn, checkOut time.Time) ([]RoomView, error)
	Quote(ctx context.Context, req QuoteRequest) (*QuoteView, error)
	GetReservation(ctx context.Context, confirmation string) (*ReservationView, error)
	GetLoyaltyAccount(ctx context.Context, number string) (*LoyaltyAccountView, error)
	LoyaltyHistory(ctx context.Context, number string, limit int) ([]LoyaltyTransactionView, error)
	ListRooms(ctx context.Context) ([]RoomView, error)
}

type hotelQueriesImpl struct {
	uow     shared.UnitOfWork
	factory *reservation.Factory
	clock   clock.Clock
	logger  *slog.Logger
}

func NewHotelQueries(uow shared.UnitOfWork, factory *reservation.Factory, clk clock.Clock, logger *slog.Logger) HotelQueries {
	return &hotelQueriesImpl{uow: uow, factory: factory, clock: clk, logger: logger}
}

func (q *hotelQueriesImpl) Catalog(_ context.Context) CatalogView {
	return newCatalogView()
}

// FindAvailableRooms lists rooms of the type that are bookable for the whole
// stay, ordered by room number.
func (q *hotelQueriesImpl) FindAvailableRooms(ctx context.Context, roomType catalog.RoomTypeCode, checkIn, checkOut time.Time) ([]RoomView, error) {
	if _, err := catalog.LookupRoomType(roomType); err != nil {
		return nil, err
	}
	stay, err := reservation.NewDateRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	var views []RoomView
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		rooms, derr := tx.Rooms().FindAvailable(ctx, roomType, stay, false)
		if derr != nil {
			return lookupErr(derr, nil)
		}
		views = roomViews(rooms)
		return nil
	})
	return views, err
}

// Quote prices a prospective booking against current inventory without
// storing anything.
func (q *hotelQueriesImpl) Quote(ctx context.Context, req QuoteRequest) (*QuoteView, error) {
	now := q.clock.Now()
	stay, err := reservation.NewDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	var number *loyalty.Number
	if req.LoyaltyNumber != "" {
		n, nerr := loyalty.NewNumber(req.LoyaltyNumber)
		if nerr != nil {
			return nil, nerr
		}
		number = &n
	}
	if req.RedeemPoints > 0 && number == nil {
		return nil, errs.ErrLoyaltyAccountRequired
	}

	booking := reservation.Booking{
		Stay:     stay,
		Adults:   req.Adults,
		Children: req.Children,
		Rooms:    req.Rooms,
		AddOns:   req.AddOns,
	}
	if err := booking.Validate(now); err != nil {
		return nil, err
	}

	var view *QuoteView
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		if number != nil && req.RedeemPoints > 0 {
			a, derr := tx.Loyalty().FindByNumber(ctx, *number, false)
			if derr != nil {
				return lookupErr(derr, errs.ErrLoyaltyAccountNotFound)
			}
			booking.Loyalty = &pricing.LoyaltyRedemption{RequestedPoints: req.RedeemPoints, Balance: a.Balance()}
		}

		var free []*room.Room
		for roomType := range booking.RoomsByType() {
			rooms, derr := tx.Rooms().FindAvailable(ctx, roomType, stay, false)
			if derr != nil {
				return lookupErr(derr, nil)
			}
			free = append(free, rooms...)
		}
		quote, derr := q.factory.Quote(booking, free)
		if derr != nil {
			return derr
		}
		view = NewQuoteView(stay, quote)
		return nil
	})
	return view, err
}

func (q *hotelQueriesImpl) GetReservation(ctx context.Context, confirmation string) (*ReservationView, error) {
	c, err := reservation.NewConfirmationNumber(confirmation)
	if err != nil {
		return nil, err
	}
	var view *ReservationView
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, derr := tx.Reservations().FindByConfirmation(ctx, c, false)
		if derr != nil {
			return lookupErr(derr, errs.ErrReservationNotFound)
		}
		view = NewReservationView(r)
		return nil
	})
	return view, err
}

func (q *hotelQueriesImpl) GetLoyaltyAccount(ctx context.Context, number string) (*LoyaltyAccountView, error) {
	n, err := loyalty.NewNumber(number)
	if err != nil {
		return nil, err
	}
	var view *LoyaltyAccountView
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, derr := tx.Loyalty().FindByNumber(ctx, n, false)
		if derr != nil {
			return lookupErr(derr, errs.ErrLoyaltyAccountNotFound)
		}
		view = NewLoyaltyAccountView(a, q.factory.Engine.LoyaltyConfig())
		return nil
	})
	return view, err
}

// LoyaltyHistory returns the newest transactions first.
func (q *hotelQueriesImpl) LoyaltyHistory(ctx context.Context, number string, limit int) ([]LoyaltyTransactionView, error) {
	n, err := loyalty.NewNumber(number)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	var views []LoyaltyTransactionView
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, derr := tx.Loyalty().FindByNumber(ctx, n, false)
		if derr != nil {
			return lookupErr(derr, errs.ErrLoyaltyAccountNotFound)
		}
		txns, derr := tx.Loyalty().Transactions(ctx, a.ID(), limit)
		if derr != nil {
			return lookupErr(derr, nil)
		}
		views = make([]LoyaltyTransactionView, 0, len(txns))
		for _, t := range txns {
			views = append(views, NewLoyaltyTransactionView(t))
		}
		return nil
	})
	return views, err
}

func (q *hotelQueriesImpl) ListRooms(ctx context.Context) ([]RoomView, error) {
	var views []RoomView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		rooms, derr := tx.Rooms().List(ctx)
		if derr != nil {
			return lookupErr(derr, nil)
		}
		views = roomViews(rooms)
		return nil
	})
	return views, err
}

func roomViews(rooms []*room.Room) []RoomView {
	out := make([]RoomView, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, NewRoomView(r))
	}
	return out
}

func lookupErr(err error, notFound error) error {
	return shared.StorageErr(err, notFound)
}
