package worker

import (
	"context"
	"shells-ledger/internal/service"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ExpiryWorker periodically moves overdue SCHEDULED events to EXPIRED
type ExpiryWorker struct {
	service  service.EventService
	interval time.Duration
	now      func() time.Time
	logger   zerolog.Logger
	stopChan chan struct{}
	wg       *sync.WaitGroup
}

func NewExpiryWorker(svc service.EventService, interval time.Duration, logger zerolog.Logger) *ExpiryWorker {
	return &ExpiryWorker{
		service:  svc,
		interval: interval,
		now:      time.Now,
		logger:   logger,
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
	}
}

func (w *ExpiryWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("Expiry worker started")

		for {
			select {
			case <-ticker.C:
				w.logger.Debug().Msg("Running event expiry task")
				if _, err := w.service.ExpireOverdue(ctx, w.now()); err != nil {
					w.logger.Error().Err(err).Msg("Failed to run event expiry task")
				}
			case <-w.stopChan:
				w.logger.Info().Msg("Expiry worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Expiry worker stopping (context done)")
				return
			}
		}
	}()
}

func (w *ExpiryWorker) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}
