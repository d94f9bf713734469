package service

import (
	"context"
	"fmt"
	"shells-ledger/internal/metrics"
	"shells-ledger/internal/model"
	"shells-ledger/internal/repository"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type EventServiceImpl struct {
	eventRepo repository.EventRepository
	logger    zerolog.Logger
}

func NewEventService(eventRepo repository.EventRepository, logger zerolog.Logger) EventService {
	return &EventServiceImpl{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

func (s *EventServiceImpl) CreateEvent(ctx context.Context, req *model.CreateEventRequest) (*model.Event, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", model.ErrInvalidInput)
	}
	if req.FightDate.IsZero() {
		return nil, fmt.Errorf("%w: fight_date is required", model.ErrInvalidInput)
	}

	event := &model.Event{Title: title, FightDate: req.FightDate}
	if err := s.eventRepo.CreateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info().Int64("event_id", event.ID).Time("fight_date", event.FightDate).Msg("event scheduled")
	return event, nil
}

func (s *EventServiceImpl) GetEvent(ctx context.Context, id int64) (*model.Event, error) {
	event, err := s.eventRepo.GetEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// ResolveEvent moves a SCHEDULED event to an administrative terminal state. COMPLETED needs a winner.
func (s *EventServiceImpl) ResolveEvent(ctx context.Context, id int64, req *model.ResolveEventRequest) (*model.Event, error) {
	status, err := model.ParseResolution(req.Status)
	if err != nil {
		return nil, err
	}

	winnerID := req.WinnerID
	switch {
	case status == model.EventCompleted && winnerID == nil:
		return nil, fmt.Errorf("%w: winner_id is required for COMPLETED", model.ErrInvalidInput)
	case status != model.EventCompleted && winnerID != nil:
		return nil, fmt.Errorf("%w: winner_id is only allowed for COMPLETED", model.ErrInvalidInput)
	}

	resolved, err := s.eventRepo.ResolveEvent(ctx, id, status, winnerID)
	if err != nil {
		return nil, fmt.Errorf("resolve event: %w", err)
	}

	event, err := s.eventRepo.GetEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !resolved {
		return nil, fmt.Errorf("%w: event %d is %s", model.ErrEventTerminal, id, event.Status)
	}

	s.logger.Info().Int64("event_id", id).Str("status", status.String()).Msg("event resolved")
	return event, nil
}

// ExpireOverdue is safe to run concurrently and repeatedly; an event is counted by exactly one sweep.
func (s *EventServiceImpl) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	count, err := s.eventRepo.ExpireOverdue(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("expire overdue events: %w", err)
	}

	if count > 0 {
		metrics.EventsExpired.Add(float64(count))
		s.logger.Info().Int64("expired", count).Msg("overdue events expired")
	}
	return count, nil
}
