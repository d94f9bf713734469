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

// Ensure implementation satisfies interface at compile time
var _ repository.UserRepository = (*UserRepositoryImpl)(nil)

const userColumns = `telegram_id, points, tapping_rate, has_claimed_welcome, version, created_at, updated_at`

// UserRepositoryImpl is the PostgreSQL implementation of UserRepository
type UserRepositoryImpl struct {
	*TransactionManager
}

func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &UserRepositoryImpl{
		TransactionManager: NewTransactionManager(pool, 1, zerolog.Nop()),
	}
}

func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.TelegramID, &user.Points, &user.TappingRate, &user.HasClaimedWelcome, &user.Version, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// EnsureUser creates the user on first contact; an existing row is returned untouched
func (r *UserRepositoryImpl) EnsureUser(ctx context.Context, userID model.TelegramID, tx ...pgx.Tx) (*model.User, bool, error) {
	query := `
        INSERT INTO users (telegram_id) VALUES ($1)
        ON CONFLICT (telegram_id) DO NOTHING
        RETURNING ` + userColumns

	executor := r.getExecutor(tx...)
	user, err := scanUser(executor.QueryRow(ctx, query, userID.Int64()))
	if err == nil {
		return user, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to ensure user: %w", err)
	}

	user, err = r.GetUser(ctx, userID, tx...)
	if err != nil {
		return nil, false, err
	}
	return user, false, nil
}

func (r *UserRepositoryImpl) GetUser(ctx context.Context, userID model.TelegramID, tx ...pgx.Tx) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE telegram_id = $1`

	user, err := scanUser(r.getExecutor(tx...).QueryRow(ctx, query, userID.Int64()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetUserForUpdate retrieves a user with row-level lock. NO KEY UPDATE still serializes balance writers
// but does not conflict with the KEY SHARE lock that inserting a row referencing the user takes.
func (r *UserRepositoryImpl) GetUserForUpdate(ctx context.Context, userID model.TelegramID, tx pgx.Tx) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE telegram_id = $1 FOR NO KEY UPDATE`

	user, err := scanUser(tx.QueryRow(ctx, query, userID.Int64()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user for update: %w", err)
	}
	return user, nil
}

// UpdatePoints writes the new balance of a row locked by GetUserForUpdate
func (r *UserRepositoryImpl) UpdatePoints(ctx context.Context, userID model.TelegramID, points decimal.Decimal, tx pgx.Tx) error {
	query := `
        UPDATE users
        SET points = $1, version = version + 1, updated_at = NOW()
        WHERE telegram_id = $2`

	commandTag, err := tx.Exec(ctx, query, points, userID.Int64())
	if err != nil {
		// CONSTRAINT points_non_negative CHECK (points >= 0)
		if isCheckViolation(err) {
			return model.ErrInsufficientBalance
		}
		return fmt.Errorf("failed to update points: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) MarkWelcomeClaimed(ctx context.Context, userID model.TelegramID, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE users
        SET has_claimed_welcome = TRUE, updated_at = NOW()
        WHERE telegram_id = $1 AND has_claimed_welcome = FALSE`

	result, err := tx.Exec(ctx, query, userID.Int64())
	if err != nil {
		return false, fmt.Errorf("failed to mark welcome claimed: %w", err)
	}
	return result.RowsAffected() == 1, nil
}
