package postgres

import (
	"context"
	"errors"
	"fmt"
	"shells-ledger/internal/model"
	"shells-ledger/internal/repository"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

var _ repository.EventRepository = (*EventRepositoryImpl)(nil)

const eventColumns = `id, title, status, fight_date, winner_id, resolved_at, created_at, updated_at`

type EventRepositoryImpl struct {
	*TransactionManager
}

func NewEventRepository(pool *pgxpool.Pool) repository.EventRepository {
	return &EventRepositoryImpl{
		TransactionManager: NewTransactionManager(pool, 1, zerolog.Nop()),
	}
}

func scanEvent(row pgx.Row) (*model.Event, error) {
	event := &model.Event{}
	err := row.Scan(&event.ID, &event.Title, &event.Status, &event.FightDate, &event.WinnerID, &event.ResolvedAt, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) CreateEvent(ctx context.Context, event *model.Event, tx ...pgx.Tx) error {
	query := `
        INSERT INTO events (title, status, fight_date)
        VALUES ($1, $2, $3)
        RETURNING ` + eventColumns

	created, err := scanEvent(r.getExecutor(tx...).QueryRow(ctx, query, event.Title, model.EventScheduled, event.FightDate))
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	*event = *created
	return nil
}

func (r *EventRepositoryImpl) GetEvent(ctx context.Context, id int64, tx ...pgx.Tx) (*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(r.getExecutor(tx...).QueryRow(ctx, query, id))
	if err != nil && !errors.Is(err, model.ErrEventNotFound) {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, err
}

// GetEventForShare blocks ExpireOverdue and ResolveEvent on this row until tx ends
func (r *EventRepositoryImpl) GetEventForShare(ctx context.Context, id int64, tx pgx.Tx) (*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 FOR SHARE`

	event, err := scanEvent(tx.QueryRow(ctx, query, id))
	if err != nil && !errors.Is(err, model.ErrEventNotFound) {
		return nil, fmt.Errorf("failed to get event for share: %w", err)
	}
	return event, err
}

// ExpireOverdue is a single conditional update, so concurrent sweeps never double count
func (r *EventRepositoryImpl) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	query := `
        UPDATE events
        SET status = $1, updated_at = NOW()
        WHERE status = $2 AND fight_date < $3`

	result, err := r.pool.Exec(ctx, query, model.EventExpired, model.EventScheduled, now)
	if err != nil {
		return 0, fmt.Errorf("failed to expire events: %w", err)
	}
	return result.RowsAffected(), nil
}

func (r *EventRepositoryImpl) ResolveEvent(ctx context.Context, id int64, status model.EventStatus, winnerID *int64, tx ...pgx.Tx) (bool, error) {
	query := `
        UPDATE events
        SET status = $2, winner_id = $3, resolved_at = NOW(), updated_at = NOW()
        WHERE id = $1 AND status = $4`

	result, err := r.getExecutor(tx...).Exec(ctx, query, id, status, winnerID, model.EventScheduled)
	if err != nil {
		return false, fmt.Errorf("failed to resolve event: %w", err)
	}
	return result.RowsAffected() == 1, nil
}
