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
	"github.com/shopspring/decimal"
)

var _ repository.CodeRepository = (*CodeRepositoryImpl)(nil)

type CodeRepositoryImpl struct {
	*TransactionManager
}

func NewCodeRepository(pool *pgxpool.Pool) repository.CodeRepository {
	return &CodeRepositoryImpl{
		TransactionManager: NewTransactionManager(pool, 1, zerolog.Nop()),
	}
}

func (r *CodeRepositoryImpl) GetCode(ctx context.Context, code string, tx ...pgx.Tx) (*model.GeneratedCode, error) {
	query := `
        SELECT code, batch_id, book_id, is_redeemed, redeemed_by, redeemed_at, reward_amount, created_at
        FROM generated_codes WHERE code = $1`

	gc := &model.GeneratedCode{}
	var redeemedBy *int64
	err := r.getExecutor(tx...).QueryRow(ctx, query, code).
		Scan(&gc.Code, &gc.BatchID, &gc.BookID, &gc.IsRedeemed, &redeemedBy, &gc.RedeemedAt, &gc.RewardAmount, &gc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCodeNotFound
		}
		return nil, fmt.Errorf("failed to get code: %w", err)
	}
	if redeemedBy != nil {
		id := model.TelegramID(*redeemedBy)
		gc.RedeemedBy = &id
	}
	return gc, nil
}

// ClaimCode is the compare-and-set that makes redemption exactly-once
func (r *CodeRepositoryImpl) ClaimCode(ctx context.Context, code string, userID model.TelegramID, reward decimal.Decimal, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE generated_codes
        SET is_redeemed = TRUE, redeemed_by = $2, redeemed_at = NOW(), reward_amount = $3
        WHERE code = $1 AND is_redeemed = FALSE`

	result, err := tx.Exec(ctx, query, code, userID.Int64(), reward)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, model.ErrUserNotFound
		}
		return false, fmt.Errorf("failed to claim code: %w", err)
	}
	return result.RowsAffected() == 1, nil
}
