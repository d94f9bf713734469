package jobs

import (
	"context"
	"fmt"
	"shells-ledger/internal/service"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler runs the stale pending-payment sweep on a cron spec
type Scheduler struct {
	cron     *cron.Cron
	payments service.PaymentService
	spec     string
	logger   zerolog.Logger
}

func NewScheduler(payments service.PaymentService, spec string, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		payments: payments,
		spec:     spec,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.sweep(ctx) }); err != nil {
		return fmt.Errorf("schedule pending sweep %q: %w", s.spec, err)
	}

	s.cron.Start()
	s.logger.Info().Str("spec", s.spec).Msg("Scheduler started")
	return nil
}

func (s *Scheduler) sweep(ctx context.Context) {
	s.logger.Debug().Msg("[CRON] sweeping stale pending payments")
	if _, err := s.payments.SweepStalePending(ctx, time.Now()); err != nil {
		s.logger.Error().Err(err).Msg("[CRON] pending payment sweep failed")
	}
}

// Stop waits for a running sweep to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info().Msg("Scheduler stopped")
}
