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

var _ repository.TicketRepository = (*TicketRepositoryImpl)(nil)

const ticketColumns = `id, ticket_id, user_id, ticket_type, quantity, payment_method, total_cost, status, payment_charge_id, created_at, updated_at`

type TicketRepositoryImpl struct {
	*TransactionManager
}

func NewTicketRepository(pool *pgxpool.Pool) repository.TicketRepository {
	return &TicketRepositoryImpl{
		TransactionManager: NewTransactionManager(pool, 1, zerolog.Nop()),
	}
}

func scanTicket(row pgx.Row) (*model.Ticket, error) {
	t := &model.Ticket{}
	err := row.Scan(&t.ID, &t.TicketID, &t.UserID, &t.TicketType, &t.Quantity, &t.PaymentMethod, &t.TotalCost, &t.Status, &t.PaymentChargeID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// InsertTicket returns ErrDuplicateTicketID when the generated id collides
func (r *TicketRepositoryImpl) InsertTicket(ctx context.Context, ticket *model.Ticket, tx pgx.Tx) error {
	query := `
        INSERT INTO tickets (ticket_id, user_id, ticket_type, quantity, payment_method, total_cost, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	err := tx.QueryRow(ctx, query, ticket.TicketID, ticket.UserID.Int64(), ticket.TicketType, ticket.Quantity,
		ticket.PaymentMethod, ticket.TotalCost, ticket.Status).
		Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrDuplicateTicketID
		}
		if isForeignKeyViolation(err) {
			return model.ErrUserNotFound
		}
		return fmt.Errorf("failed to insert ticket: %w", err)
	}
	return nil
}

func (r *TicketRepositoryImpl) GetTicket(ctx context.Context, ticketID string, tx ...pgx.Tx) (*model.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE ticket_id = $1`

	t, err := scanTicket(r.getExecutor(tx...).QueryRow(ctx, query, ticketID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return t, nil
}

// ListByUser returns the user's tickets, most recent first
func (r *TicketRepositoryImpl) ListByUser(ctx context.Context, userID model.TelegramID) ([]*model.Ticket, error) {
	query := `
        SELECT ` + ticketColumns + `
        FROM tickets WHERE user_id = $1
        ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, userID.Int64())
	if err != nil {
		return nil, fmt.Errorf("failed to query tickets: %w", err)
	}
	defer rows.Close()

	tickets := make([]*model.Ticket, 0)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func (r *TicketRepositoryImpl) TransitionTicket(ctx context.Context, ticketID string, from, to model.TicketStatus, chargeID *string, tx ...pgx.Tx) (bool, error) {
	query := `
        UPDATE tickets
        SET status = $3, payment_charge_id = COALESCE($4::text, payment_charge_id), updated_at = NOW()
        WHERE ticket_id = $1 AND status = $2`

	result, err := r.getExecutor(tx...).Exec(ctx, query, ticketID, from, to, chargeID)
	if err != nil {
		return false, fmt.Errorf("failed to transition ticket: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

func (r *TicketRepositoryImpl) RejectStalePending(ctx context.Context, before time.Time) (int64, error) {
	query := `
        UPDATE tickets
        SET status = $1, updated_at = NOW()
        WHERE status = $2 AND created_at < $3`

	result, err := r.pool.Exec(ctx, query, model.TicketRejected, model.TicketPending, before)
	if err != nil {
		return 0, fmt.Errorf("failed to reject stale tickets: %w", err)
	}
	return result.RowsAffected(), nil
}
