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

var _ repository.CatalogRepository = (*CatalogRepositoryImpl)(nil)

// CatalogRepositoryImpl reads the services and ticket types users can buy
type CatalogRepositoryImpl struct {
	*TransactionManager
}

func NewCatalogRepository(pool *pgxpool.Pool) repository.CatalogRepository {
	return &CatalogRepositoryImpl{
		TransactionManager: NewTransactionManager(pool, 1, zerolog.Nop()),
	}
}

func (r *CatalogRepositoryImpl) GetService(ctx context.Context, id int64, tx ...pgx.Tx) (*model.Service, error) {
	query := `SELECT id, name, kind, price, duration_days FROM services WHERE id = $1`

	svc := &model.Service{}
	err := r.getExecutor(tx...).QueryRow(ctx, query, id).Scan(&svc.ID, &svc.Name, &svc.Kind, &svc.Price, &svc.DurationDays)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return svc, nil
}

func (r *CatalogRepositoryImpl) GetTicketType(ctx context.Context, code string, tx ...pgx.Tx) (*model.TicketType, error) {
	query := `SELECT code, name, price FROM ticket_types WHERE code = $1`

	tt := &model.TicketType{}
	err := r.getExecutor(tx...).QueryRow(ctx, query, code).Scan(&tt.Code, &tt.Name, &tt.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTicketTypeNotFound
		}
		return nil, fmt.Errorf("failed to get ticket type: %w", err)
	}
	return tt, nil
}
