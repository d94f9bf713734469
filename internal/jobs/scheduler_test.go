package jobs

import (
	"context"
	"errors"
	"shells-ledger/internal/model"
	mocks "shells-ledger/mocks/service"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScheduler_InvalidSpec(t *testing.T) {
	s := NewScheduler(mocks.NewPaymentService(t), "every now and then", zerolog.Nop())

	err := s.Start(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "every now and then")
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler(mocks.NewPaymentService(t), "@every 1h", zerolog.Nop())

	require.NoError(t, s.Start(context.Background()))
	assert.Len(t, s.cron.Entries(), 1)
	s.Stop()
}

func TestScheduler_Sweep(t *testing.T) {
	payments := mocks.NewPaymentService(t)
	ctx := context.Background()

	payments.On("SweepStalePending", ctx, mock.AnythingOfType("time.Time")).Return(&model.SweepResult{StakesCancelled: 1}, nil).Once()
	payments.On("SweepStalePending", ctx, mock.AnythingOfType("time.Time")).Return(nil, errors.New("db down")).Once()

	s := NewScheduler(payments, "@every 1h", zerolog.Nop())
	s.sweep(ctx)
	s.sweep(ctx)
}
