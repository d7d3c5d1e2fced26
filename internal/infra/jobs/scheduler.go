package jobs

import (
	"context"
	"log/slog"
	"time"

	"hotel-kiosk/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

type LoyaltyExpirer interface {
	ExpireInactive(ctx context.Context) (int, error)
}

// Scheduler runs the periodic maintenance sweeps.
type Scheduler struct {
	cron    *cron.Cron
	expirer LoyaltyExpirer
	logger  *slog.Logger
	timeout time.Duration
}

const defaultJobTimeout = 5 * time.Minute

func NewScheduler(expirer LoyaltyExpirer, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(time.UTC)),
		expirer: expirer,
		logger:  logger,
		timeout: defaultJobTimeout,
	}
}

// Start registers the loyalty expiry sweep on spec and starts the scheduler.
// An empty spec leaves the sweep disabled.
func (s *Scheduler) Start(loyaltyExpirySpec string) error {
	if loyaltyExpirySpec == "" {
		s.logger.Info("loyalty expiry job disabled")
		return nil
	}
	if _, err := s.cron.AddFunc(loyaltyExpirySpec, s.loyaltyExpiryJob); err != nil {
		return errs.Wrapf(err, "schedule loyalty expiry %q", loyaltyExpirySpec)
	}
	s.logger.Info("scheduled loyalty expiry job", slog.String("spec", loyaltyExpirySpec))

	s.cron.Start()
	return nil
}

// Stop waits for running jobs or until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("scheduler stop timed out with jobs still running")
	}
}

// RunLoyaltyExpiryNow runs the sweep synchronously.
func (s *Scheduler) RunLoyaltyExpiryNow(ctx context.Context) (int, error) {
	return s.expirer.ExpireInactive(ctx)
}

func (s *Scheduler) loyaltyExpiryJob() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	expired, err := s.RunLoyaltyExpiryNow(ctx)
	if err != nil {
		s.logger.Error("loyalty expiry job failed", slog.String("error", err.Error()))
		return
	}
	s.logger.Info("loyalty expiry job finished",
		slog.Int("accounts_expired", expired),
		slog.Duration("took", time.Since(start)))
}
