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

var _ repository.PurchaseRepository = (*PurchaseRepositoryImpl)(nil)

const purchaseColumns = `id, user_id, service_id, amount, type, payment_type, status, payment_charge_id, approved_at, created_at, updated_at`

// PurchaseRepositoryImpl stores purchases in point_transactions
type PurchaseRepositoryImpl struct {
	*TransactionManager
}

func NewPurchaseRepository(pool *pgxpool.Pool) repository.PurchaseRepository {
	return &PurchaseRepositoryImpl{
		TransactionManager: NewTransactionManager(pool, 1, zerolog.Nop()),
	}
}

func scanPurchase(row pgx.Row) (*model.Purchase, error) {
	p := &model.Purchase{}
	err := row.Scan(&p.ID, &p.UserID, &p.ServiceID, &p.Amount, &p.Type, &p.PaymentType, &p.Status, &p.PaymentChargeID, &p.ApprovedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PurchaseRepositoryImpl) InsertPurchase(ctx context.Context, purchase *model.Purchase, tx pgx.Tx) error {
	query := `
        INSERT INTO point_transactions (user_id, service_id, amount, type, payment_type, status, approved_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	err := tx.QueryRow(ctx, query, purchase.UserID.Int64(), purchase.ServiceID, purchase.Amount, purchase.Type,
		purchase.PaymentType, purchase.Status, purchase.ApprovedAt).
		Scan(&purchase.ID, &purchase.CreatedAt, &purchase.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return model.ErrUserNotFound
		}
		return fmt.Errorf("failed to insert purchase: %w", err)
	}
	return nil
}

func (r *PurchaseRepositoryImpl) GetPurchase(ctx context.Context, id int64, tx ...pgx.Tx) (*model.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM point_transactions WHERE id = $1`

	p, err := scanPurchase(r.getExecutor(tx...).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}
	return p, nil
}

// SetPurchaseStatus only leaves PENDING; approved_at is stamped on approval
func (r *PurchaseRepositoryImpl) SetPurchaseStatus(ctx context.Context, id int64, status model.PurchaseStatus, chargeID *string, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE point_transactions
        SET status = $2::text,
            payment_charge_id = COALESCE($3::text, payment_charge_id),
            approved_at = CASE WHEN $2::text = 'APPROVED' THEN NOW() ELSE approved_at END,
            updated_at = NOW()
        WHERE id = $1 AND status = $4`

	result, err := tx.Exec(ctx, query, id, status, chargeID, model.PurchasePending)
	if err != nil {
		return false, fmt.Errorf("failed to set purchase status: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

func (r *PurchaseRepositoryImpl) LatestApprovedSubscription(ctx context.Context, userID model.TelegramID) (*model.Purchase, *model.Service, error) {
	query := `
        SELECT pt.id, pt.user_id, pt.service_id, pt.amount, pt.type, pt.payment_type, pt.status,
               pt.payment_charge_id, pt.approved_at, pt.created_at, pt.updated_at,
               s.id, s.name, s.kind, s.price, s.duration_days
        FROM point_transactions pt
        JOIN services s ON s.id = pt.service_id
        WHERE pt.user_id = $1 AND pt.status = $2 AND s.kind = $3 AND pt.approved_at IS NOT NULL
        ORDER BY pt.approved_at DESC, pt.id DESC
        LIMIT 1`

	p := &model.Purchase{}
	svc := &model.Service{}
	err := r.pool.QueryRow(ctx, query, userID.Int64(), model.PurchaseApproved, model.ServiceSubscription).Scan(
		&p.ID, &p.UserID, &p.ServiceID, &p.Amount, &p.Type, &p.PaymentType, &p.Status,
		&p.PaymentChargeID, &p.ApprovedAt, &p.CreatedAt, &p.UpdatedAt,
		&svc.ID, &svc.Name, &svc.Kind, &svc.Price, &svc.DurationDays)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to get latest subscription: %w", err)
	}
	return p, svc, nil
}

func (r *PurchaseRepositoryImpl) RejectStalePending(ctx context.Context, before time.Time) (int64, error) {
	query := `
        UPDATE point_transactions
        SET status = $1, updated_at = NOW()
        WHERE status = $2 AND created_at < $3`

	result, err := r.pool.Exec(ctx, query, model.PurchaseRejected, model.PurchasePending, before)
	if err != nil {
		return 0, fmt.Errorf("failed to reject stale purchases: %w", err)
	}
	return result.RowsAffected(), nil
}
