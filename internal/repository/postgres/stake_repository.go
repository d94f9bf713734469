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
	"github.com/shopspring/decimal"
)

var _ repository.StakeRepository = (*StakeRepositoryImpl)(nil)

type StakeRepositoryImpl struct {
	*TransactionManager
}

func NewStakeRepository(pool *pgxpool.Pool) repository.StakeRepository {
	return &StakeRepositoryImpl{
		TransactionManager: NewTransactionManager(pool, 1, zerolog.Nop()),
	}
}

func (r *StakeRepositoryImpl) InsertStake(ctx context.Context, stake *model.Stake, tx pgx.Tx) error {
	query := `
        INSERT INTO stakes (user_id, event_id, participant_id, stake_amount, stake_type, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	err := tx.QueryRow(ctx, query, stake.UserID.Int64(), stake.EventID, stake.ParticipantID, stake.Amount, stake.StakeType, stake.Status).
		Scan(&stake.ID, &stake.CreatedAt, &stake.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return model.ErrUserNotFound
		}
		return fmt.Errorf("failed to insert stake: %w", err)
	}
	return nil
}

func (r *StakeRepositoryImpl) GetStake(ctx context.Context, id int64, tx ...pgx.Tx) (*model.Stake, error) {
	query := `
        SELECT id, user_id, event_id, participant_id, stake_amount, stake_type, status, payment_charge_id, created_at, updated_at
        FROM stakes WHERE id = $1`

	stake := &model.Stake{}
	err := r.getExecutor(tx...).QueryRow(ctx, query, id).
		Scan(&stake.ID, &stake.UserID, &stake.EventID, &stake.ParticipantID, &stake.Amount, &stake.StakeType, &stake.Status, &stake.PaymentChargeID, &stake.CreatedAt, &stake.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrStakeNotFound
		}
		return nil, fmt.Errorf("failed to get stake: %w", err)
	}
	return stake, nil
}

// TotalStaked sums every stake row that has not been cancelled
func (r *StakeRepositoryImpl) TotalStaked(ctx context.Context, eventID, participantID int64, stakeType model.StakeType) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(stake_amount), 0)
        FROM stakes
        WHERE event_id = $1 AND participant_id = $2 AND stake_type = $3 AND status <> $4`

	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, query, eventID, participantID, stakeType, model.StakeCancelled).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum stakes: %w", err)
	}
	return total, nil
}

func (r *StakeRepositoryImpl) ConfirmStake(ctx context.Context, id int64, chargeID string, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE stakes
        SET status = $2, payment_charge_id = $3, updated_at = NOW()
        WHERE id = $1 AND status = $4`

	result, err := tx.Exec(ctx, query, id, model.StakeActive, chargeID, model.StakePending)
	if err != nil {
		return false, fmt.Errorf("failed to confirm stake: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

func (r *StakeRepositoryImpl) CancelStalePending(ctx context.Context, before time.Time) (int64, error) {
	query := `
        UPDATE stakes
        SET status = $1, updated_at = NOW()
        WHERE status = $2 AND created_at < $3`

	result, err := r.pool.Exec(ctx, query, model.StakeCancelled, model.StakePending, before)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel stale stakes: %w", err)
	}
	return result.RowsAffected(), nil
}
