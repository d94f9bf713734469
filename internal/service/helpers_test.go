package service

import (
	"context"
	mocks "shells-ledger/mocks/repository"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// runInTx makes the mocked DBManager execute the callback directly
func runInTx(db *mocks.DBManager, ctx context.Context) {
	db.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
}

func decEq(v int64) interface{} {
	want := decimal.NewFromInt(v)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}
