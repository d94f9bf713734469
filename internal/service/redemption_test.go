package service

import (
	"context"
	"shells-ledger/internal/model"
	mocks "shells-ledger/mocks/repository"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRedeemCode_HappyPath(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	mockEntryRepo := mocks.NewEntryRepository(t)
	mockCodeRepo := mocks.NewCodeRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	runInTx(mockDBManager, ctx)
	mockCodeRepo.On("GetCode", ctx, "ABC123", mock.Anything).Return(&model.GeneratedCode{
		Code:    "ABC123",
		BatchID: "B1",
		BookID:  "book-1",
	}, nil)
	mockCodeRepo.On("ClaimCode", ctx, "ABC123", model.TelegramID(42), decEq(53120), mock.Anything).Return(true, nil)
	mockUserRepo.On("GetUserForUpdate", ctx, model.TelegramID(42), mock.Anything).Return(&model.User{
		TelegramID: 42,
		Points:     decimal.NewFromInt(500),
	}, nil)
	mockUserRepo.On("UpdatePoints", ctx, model.TelegramID(42), decEq(53620), mock.Anything).Return(nil)
	mockEntryRepo.On("InsertEntry", ctx, mock.MatchedBy(func(e *model.BalanceEntry) bool {
		return e.Reason == model.ReasonCodeRedeem && e.Reference == "ABC123"
	}), mock.Anything).Return(nil)

	service := NewRedemptionService(mockUserRepo, mockEntryRepo, mockCodeRepo, mockDBManager,
		FixedReward(decimal.NewFromInt(53120)), zerolog.Nop())

	resp, err := service.RedeemCode(ctx, &model.RedeemCodeRequest{Code: "ABC123", BatchID: "B1", UserID: 42})

	require.NoError(t, err)
	assert.Equal(t, "ABC123", resp.Code)
	assert.Equal(t, "53120", resp.Reward)
	assert.Equal(t, "53620", resp.Balance)
}

func TestRedeemCode_AlreadyRedeemed(t *testing.T) {
	ctx := context.Background()

	mockCodeRepo := mocks.NewCodeRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	redeemer := model.TelegramID(42)
	runInTx(mockDBManager, ctx)
	mockCodeRepo.On("GetCode", ctx, "ABC123", mock.Anything).Return(&model.GeneratedCode{
		Code:       "ABC123",
		BatchID:    "B1",
		IsRedeemed: true,
		RedeemedBy: &redeemer,
	}, nil)

	service := NewRedemptionService(mocks.NewUserRepository(t), mocks.NewEntryRepository(t), mockCodeRepo, mockDBManager,
		NewUniformReward(1000, 1000000), zerolog.Nop())

	resp, err := service.RedeemCode(ctx, &model.RedeemCodeRequest{Code: "ABC123", BatchID: "B1", UserID: 7})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrAlreadyRedeemed)
	assert.Equal(t, model.KindConflict, model.KindOf(err))
}

func TestRedeemCode_LostRace(t *testing.T) {
	ctx := context.Background()

	mockCodeRepo := mocks.NewCodeRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	runInTx(mockDBManager, ctx)
	mockCodeRepo.On("GetCode", ctx, "ABC123", mock.Anything).Return(&model.GeneratedCode{Code: "ABC123", BatchID: "B1"}, nil)
	// another transaction claimed the code between the read and the update
	mockCodeRepo.On("ClaimCode", ctx, "ABC123", model.TelegramID(7), mock.Anything, mock.Anything).Return(false, nil)

	service := NewRedemptionService(mocks.NewUserRepository(t), mocks.NewEntryRepository(t), mockCodeRepo, mockDBManager,
		NewUniformReward(1000, 1000000), zerolog.Nop())

	resp, err := service.RedeemCode(ctx, &model.RedeemCodeRequest{Code: "ABC123", BatchID: "B1", UserID: 7})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrAlreadyRedeemed)
}

func TestRedeemCode_BatchMismatch(t *testing.T) {
	ctx := context.Background()

	mockCodeRepo := mocks.NewCodeRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	runInTx(mockDBManager, ctx)
	mockCodeRepo.On("GetCode", ctx, "ABC123", mock.Anything).Return(&model.GeneratedCode{Code: "ABC123", BatchID: "B1"}, nil)

	service := NewRedemptionService(mocks.NewUserRepository(t), mocks.NewEntryRepository(t), mockCodeRepo, mockDBManager,
		NewUniformReward(1000, 1000000), zerolog.Nop())

	_, err := service.RedeemCode(ctx, &model.RedeemCodeRequest{Code: "ABC123", BatchID: "B2", UserID: 42})

	assert.ErrorIs(t, err, model.ErrBatchMismatch)
}

func TestRedeemCode_NotFound(t *testing.T) {
	ctx := context.Background()

	mockCodeRepo := mocks.NewCodeRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	runInTx(mockDBManager, ctx)
	mockCodeRepo.On("GetCode", ctx, "NOPE", mock.Anything).Return(nil, model.ErrCodeNotFound)

	service := NewRedemptionService(mocks.NewUserRepository(t), mocks.NewEntryRepository(t), mockCodeRepo, mockDBManager,
		NewUniformReward(1000, 1000000), zerolog.Nop())

	_, err := service.RedeemCode(ctx, &model.RedeemCodeRequest{Code: "NOPE", BatchID: "B1", UserID: 42})

	assert.ErrorIs(t, err, model.ErrCodeNotFound)
	assert.Equal(t, model.KindNotFound, model.KindOf(err))
}

func TestRedeemCode_UnknownUserRollsBack(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	mockCodeRepo := mocks.NewCodeRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	runInTx(mockDBManager, ctx)
	mockCodeRepo.On("GetCode", ctx, "ABC123", mock.Anything).Return(&model.GeneratedCode{Code: "ABC123", BatchID: "B1"}, nil)
	mockCodeRepo.On("ClaimCode", ctx, "ABC123", model.TelegramID(404), mock.Anything, mock.Anything).Return(true, nil)
	mockUserRepo.On("GetUserForUpdate", ctx, model.TelegramID(404), mock.Anything).Return(nil, model.ErrUserNotFound)

	service := NewRedemptionService(mockUserRepo, mocks.NewEntryRepository(t), mockCodeRepo, mockDBManager,
		NewUniformReward(1000, 1000000), zerolog.Nop())

	_, err := service.RedeemCode(ctx, &model.RedeemCodeRequest{Code: "ABC123", BatchID: "B1", UserID: 404})

	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestRedeemCode_InvalidInput(t *testing.T) {
	ctx := context.Background()

	service := NewRedemptionService(mocks.NewUserRepository(t), mocks.NewEntryRepository(t), mocks.NewCodeRepository(t),
		mocks.NewDBManager(t), NewUniformReward(1000, 1000000), zerolog.Nop())

	_, err := service.RedeemCode(ctx, &model.RedeemCodeRequest{Code: " ", BatchID: "B1", UserID: 42})
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = service.RedeemCode(ctx, &model.RedeemCodeRequest{Code: "ABC123", BatchID: "B1", UserID: 0})
	assert.ErrorIs(t, err, model.ErrInvalidTelegramID)
}

func TestUniformReward_Bounds(t *testing.T) {
	policy := NewUniformReward(1000, 1000000)
	lo, hi := decimal.NewFromInt(1000), decimal.NewFromInt(1000000)

	for i := 0; i < 1000; i++ {
		r := policy.Draw()
		assert.True(t, r.GreaterThanOrEqual(lo) && r.LessThanOrEqual(hi), r.String())
		assert.True(t, r.Equal(r.Truncate(0)))
	}

	single := NewUniformReward(5, 5)
	assert.True(t, single.Draw().Equal(decimal.NewFromInt(5)))
}
