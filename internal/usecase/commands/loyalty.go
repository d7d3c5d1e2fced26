package commands

import (
	"context"
	"log/slog"

	"hotel-kiosk/internal/domain/guest"
	"hotel-kiosk/internal/domain/loyalty"
	"hotel-kiosk/internal/domain/staff"
	"hotel-kiosk/internal/infra"
	"hotel-kiosk/internal/pkg/clock"
	"hotel-kiosk/internal/pkg/errs"
	"hotel-kiosk/internal/usecase/queries"
	"hotel-kiosk/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxNumberAttempts = 5

type RedeemResult struct {
	Account        *queries.LoyaltyAccountView
	PointsRedeemed int64
}

//go:generate mockgen -source=loyalty.go -destination=../../../tests/mock/commands/mock_loyalty.go -package=commandsmock

type LoyaltyCommands interface {
	Enroll(ctx context.Context, details guest.Details) (*queries.LoyaltyAccountView, error)
	Redeem(ctx context.Context, number string, points int64, actor staff.Actor) (*RedeemResult, error)
	Adjust(ctx context.Context, number string, delta int64, reason string, actor staff.Actor) (*queries.LoyaltyAccountView, error)
	ExpireInactive(ctx context.Context) (int, error)
}

type loyaltyUseCaseImpl struct {
	uow    shared.UnitOfWork
	cfg    loyalty.Config
	clock  clock.Clock
	logger *slog.Logger
	// numbers is swapped in tests to force collisions.
	numbers func() (loyalty.Number, error)
}

func NewLoyaltyUseCase(uow shared.UnitOfWork, cfg loyalty.Config, clk clock.Clock, logger *slog.Logger) LoyaltyCommands {
	return NewLoyaltyUseCaseWithNumbers(uow, cfg, clk, logger, loyalty.GenerateNumber)
}

func NewLoyaltyUseCaseWithNumbers(
	uow shared.UnitOfWork,
	cfg loyalty.Config,
	clk clock.Clock,
	logger *slog.Logger,
	numbers func() (loyalty.Number, error),
) LoyaltyCommands {
	return &loyaltyUseCaseImpl{uow: uow, cfg: cfg, clock: clk, logger: logger, numbers: numbers}
}

// Enroll opens an account for the guest and credits the welcome bonus.
func (uc *loyaltyUseCaseImpl) Enroll(ctx context.Context, details guest.Details) (*queries.LoyaltyAccountView, error) {
	now := uc.clock.Now()
	candidate, err := details.Parse(now)
	if err != nil {
		return nil, err
	}

	var account *loyalty.Account
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		g, derr := findOrCreateGuest(ctx, tx, candidate)
		if derr != nil {
			return derr
		}
		_, derr = tx.Loyalty().FindByGuestID(ctx, g.ID())
		switch {
		case derr == nil:
			return loyalty.ErrAlreadyEnrolled
		case !infra.IsKind(derr, infra.KindNotFound):
			return storageErr(derr, nil)
		}

		number, derr := uc.uniqueNumber(ctx, tx)
		if derr != nil {
			return derr
		}
		a := loyalty.NewAccount(g.ID(), number, now)
		var welcome *loyalty.Transaction
		if uc.cfg.WelcomeBonus > 0 {
			welcome, derr = a.Bonus(uc.cfg.WelcomeBonus, "welcome bonus", now)
			if derr != nil {
				return derr
			}
		}
		if derr := tx.Loyalty().Create(ctx, a); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, loyalty.ErrAlreadyEnrolled)
			}
			return storageErr(derr, nil)
		}
		if welcome != nil {
			if derr := tx.Loyalty().AppendTransaction(ctx, welcome); derr != nil {
				return storageErr(derr, nil)
			}
		}
		account = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("loyalty account enrolled",
		slog.String("loyalty_number", account.Number().Value()),
		slog.String("guest_id", account.GuestID().String()),
		slog.Int64("welcome_bonus", account.Balance()))
	return queries.NewLoyaltyAccountView(account, uc.cfg), nil
}

// Redeem spends points at the front desk outside of a booking.
func (uc *loyaltyUseCaseImpl) Redeem(ctx context.Context, number string, points int64, actor staff.Actor) (*RedeemResult, error) {
	var redeemed int64
	account, err := uc.withAccount(ctx, number, func(a *loyalty.Account) (*loyalty.Transaction, error) {
		actual, txn, derr := a.Redeem(points, uc.cfg, nil, uc.clock.Now())
		redeemed = actual
		return txn, derr
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("loyalty points redeemed",
		slog.String("loyalty_number", account.Number),
		slog.Int64("points", redeemed),
		slog.String("staff_id", actor.ID.String()))
	return &RedeemResult{Account: account, PointsRedeemed: redeemed}, nil
}

// Adjust applies a staff correction to the balance.
func (uc *loyaltyUseCaseImpl) Adjust(ctx context.Context, number string, delta int64, reason string, actor staff.Actor) (*queries.LoyaltyAccountView, error) {
	account, err := uc.withAccount(ctx, number, func(a *loyalty.Account) (*loyalty.Transaction, error) {
		return a.Adjust(delta, reason+" (by "+actor.ID.String()+")", uc.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("loyalty balance adjusted",
		slog.String("loyalty_number", account.Number),
		slog.Int64("delta", delta),
		slog.String("reason", reason),
		slog.String("staff_id", actor.ID.String()))
	return account, nil
}

// ExpireInactive zeroes the balance of every account idle for longer than
// the configured expiration period. It is a no-op when expiry is disabled.
func (uc *loyaltyUseCaseImpl) ExpireInactive(ctx context.Context) (int, error) {
	if uc.cfg.ExpirationMonths <= 0 {
		return 0, nil
	}
	now := uc.clock.Now()
	cutoff := now.AddDate(0, -uc.cfg.ExpirationMonths, 0)

	var candidates []uuid.UUID
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		accounts, derr := tx.Loyalty().ListExpirable(ctx, cutoff)
		if derr != nil {
			return storageErr(derr, nil)
		}
		candidates = make([]uuid.UUID, 0, len(accounts))
		for _, a := range accounts {
			candidates = append(candidates, a.ID())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	// One transaction per account keeps a single failure from rolling back
	// the whole sweep.
	expired := 0
	for _, id := range candidates {
		var done bool
		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			done = false
			a, derr := tx.Loyalty().FindByID(ctx, id, true)
			if derr != nil {
				return storageErr(derr, errs.ErrLoyaltyAccountNotFound)
			}
			txn := a.Expire(uc.cfg, uc.clock.Now())
			if txn == nil {
				return nil
			}
			done = true
			return saveLedger(ctx, tx, a, txn)
		})
		if err != nil {
			uc.logger.Error("failed to expire loyalty points",
				slog.String("account_id", id.String()),
				slog.String("error", err.Error()))
			continue
		}
		if done {
			expired++
		}
	}
	return expired, nil
}

func (uc *loyaltyUseCaseImpl) withAccount(
	ctx context.Context,
	number string,
	apply func(a *loyalty.Account) (*loyalty.Transaction, error),
) (*queries.LoyaltyAccountView, error) {
	n, err := loyalty.NewNumber(number)
	if err != nil {
		return nil, err
	}

	var view *queries.LoyaltyAccountView
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, derr := tx.Loyalty().FindByNumber(ctx, n, true)
		if derr != nil {
			return storageErr(derr, errs.ErrLoyaltyAccountNotFound)
		}
		txn, derr := apply(a)
		if derr != nil {
			return derr
		}
		if derr := saveLedger(ctx, tx, a, txn); derr != nil {
			return derr
		}
		view = queries.NewLoyaltyAccountView(a, uc.cfg)
		return nil
	})
	return view, err
}

func (uc *loyaltyUseCaseImpl) uniqueNumber(ctx context.Context, tx shared.Tx) (loyalty.Number, error) {
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		n, err := uc.numbers()
		if err != nil {
			return loyalty.Number{}, err
		}
		_, err = tx.Loyalty().FindByNumber(ctx, n, false)
		if infra.IsKind(err, infra.KindNotFound) {
			return n, nil
		}
		if err != nil {
			return loyalty.Number{}, storageErr(err, nil)
		}
	}
	return loyalty.Number{}, errs.ErrLoyaltyNumbersExhausted
}
