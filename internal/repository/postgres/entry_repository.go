package postgres

import (
	"context"
	"fmt"
	"shells-ledger/internal/model"
	"shells-ledger/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

var _ repository.EntryRepository = (*EntryRepositoryImpl)(nil)

type EntryRepositoryImpl struct {
	*TransactionManager
}

func NewEntryRepository(pool *pgxpool.Pool) repository.EntryRepository {
	return &EntryRepositoryImpl{
		TransactionManager: NewTransactionManager(pool, 1, zerolog.Nop()),
	}
}

func (r *EntryRepositoryImpl) InsertEntry(ctx context.Context, entry *model.BalanceEntry, tx pgx.Tx) error {
	query := `
        INSERT INTO balance_entries (user_id, delta, balance_after, reason, reference)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	err := tx.QueryRow(ctx, query, entry.UserID.Int64(), entry.Delta, entry.BalanceAfter, entry.Reason, entry.Reference).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert balance entry: %w", err)
	}
	return nil
}

// ListEntries returns the user's entries newest first
func (r *EntryRepositoryImpl) ListEntries(ctx context.Context, userID model.TelegramID, limit, offset int) ([]*model.BalanceEntry, error) {
	query := `
        SELECT id, user_id, delta, balance_after, reason, reference, created_at
        FROM balance_entries WHERE user_id = $1
        ORDER BY id DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID.Int64(), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query balance entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*model.BalanceEntry, 0)
	for rows.Next() {
		entry := &model.BalanceEntry{}
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Delta, &entry.BalanceAfter, &entry.Reason, &entry.Reference, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan balance entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
