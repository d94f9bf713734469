package postgres

import (
	"context"
	"errors"
	"fmt"
	"shells-ledger/internal/model"
	"shells-ledger/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

var _ repository.ReferralRepository = (*ReferralRepositoryImpl)(nil)

// ReferralRepositoryImpl keeps one row per referred user, so the first referrer wins
type ReferralRepositoryImpl struct {
	*TransactionManager
}

func NewReferralRepository(pool *pgxpool.Pool) repository.ReferralRepository {
	return &ReferralRepositoryImpl{
		TransactionManager: NewTransactionManager(pool, 1, zerolog.Nop()),
	}
}

func (r *ReferralRepositoryImpl) InsertReferral(ctx context.Context, referredID, referrerID model.TelegramID, tx pgx.Tx) (bool, error) {
	query := `
        INSERT INTO referrals (referred_id, referrer_id)
        VALUES ($1, $2)
        ON CONFLICT (referred_id) DO NOTHING`

	result, err := tx.Exec(ctx, query, referredID.Int64(), referrerID.Int64())
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, model.ErrUserNotFound
		}
		if isCheckViolation(err) {
			return false, model.ErrSelfReferral
		}
		return false, fmt.Errorf("failed to insert referral: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

// ListReferrals returns referred users in the order they were recorded
func (r *ReferralRepositoryImpl) ListReferrals(ctx context.Context, referrerID model.TelegramID) ([]model.TelegramID, error) {
	query := `
        SELECT referred_id FROM referrals
        WHERE referrer_id = $1
        ORDER BY created_at, referred_id`

	rows, err := r.pool.Query(ctx, query, referrerID.Int64())
	if err != nil {
		return nil, fmt.Errorf("failed to query referrals: %w", err)
	}
	defer rows.Close()

	referred := make([]model.TelegramID, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan referral: %w", err)
		}
		referred = append(referred, model.TelegramID(id))
	}
	return referred, rows.Err()
}

func (r *ReferralRepositoryImpl) ReferrerOf(ctx context.Context, referredID model.TelegramID) (*model.TelegramID, error) {
	query := `SELECT referrer_id FROM referrals WHERE referred_id = $1`

	var id int64
	err := r.pool.QueryRow(ctx, query, referredID.Int64()).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get referrer: %w", err)
	}
	referrer := model.TelegramID(id)
	return &referrer, nil
}
