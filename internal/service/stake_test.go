package service

import (
	"context"
	"shells-ledger/internal/model"
	mocks "shells-ledger/mocks/repository"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var stakeNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func newTestStakeService(t *testing.T, userRepo *mocks.UserRepository, entryRepo *mocks.EntryRepository,
	eventRepo *mocks.EventRepository, stakeRepo *mocks.StakeRepository, db *mocks.DBManager) *StakeServiceImpl {
	s := NewStakeService(userRepo, entryRepo, eventRepo, stakeRepo, db, zerolog.Nop()).(*StakeServiceImpl)
	s.now = func() time.Time { return stakeNow }
	return s
}

func TestPlaceStake_Points(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	mockEntryRepo := mocks.NewEntryRepository(t)
	mockEventRepo := mocks.NewEventRepository(t)
	mockStakeRepo := mocks.NewStakeRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	runInTx(mockDBManager, ctx)
	mockEventRepo.On("GetEventForShare", ctx, int64(1), mock.Anything).Return(&model.Event{
		ID:        1,
		Status:    model.EventScheduled,
		FightDate: stakeNow.Add(24 * time.Hour),
	}, nil)
	mockStakeRepo.On("InsertStake", ctx, mock.MatchedBy(func(s *model.Stake) bool {
		return s.UserID == 42 && s.ParticipantID == 7 && s.StakeType == model.StakePoints && s.Status == model.StakeActive
	}), mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Stake).ID = 11
	}).Return(nil)
	mockUserRepo.On("GetUserForUpdate", ctx, model.TelegramID(42), mock.Anything).Return(&model.User{
		TelegramID: 42,
		Points:     decimal.NewFromInt(1000),
	}, nil)
	mockUserRepo.On("UpdatePoints", ctx, model.TelegramID(42), decEq(700), mock.Anything).Return(nil)
	mockEntryRepo.On("InsertEntry", ctx, mock.MatchedBy(func(e *model.BalanceEntry) bool {
		return e.Reason == model.ReasonStake && e.Reference == "stake:11" && e.Delta.Equal(decimal.NewFromInt(-300))
	}), mock.Anything).Return(nil)

	service := newTestStakeService(t, mockUserRepo, mockEntryRepo, mockEventRepo, mockStakeRepo, mockDBManager)

	stake, err := service.PlaceStake(ctx, &model.PlaceStakeRequest{
		UserID: 42, EventID: 1, ParticipantID: 7, Amount: "300", StakeType: "POINTS",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), stake.ID)
	assert.Equal(t, model.StakeActive, stake.Status)
}

func TestPlaceStake_PointsInsufficient(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	mockEventRepo := mocks.NewEventRepository(t)
	mockStakeRepo := mocks.NewStakeRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	runInTx(mockDBManager, ctx)
	mockEventRepo.On("GetEventForShare", ctx, int64(1), mock.Anything).Return(&model.Event{
		ID: 1, Status: model.EventScheduled, FightDate: stakeNow.Add(time.Hour),
	}, nil)
	mockStakeRepo.On("InsertStake", ctx, mock.Anything, mock.Anything).Return(nil)
	mockUserRepo.On("GetUserForUpdate", ctx, model.TelegramID(42), mock.Anything).Return(&model.User{
		TelegramID: 42,
		Points:     decimal.NewFromInt(100),
	}, nil)

	service := newTestStakeService(t, mockUserRepo, mocks.NewEntryRepository(t), mockEventRepo, mockStakeRepo, mockDBManager)

	stake, err := service.PlaceStake(ctx, &model.PlaceStakeRequest{
		UserID: 42, EventID: 1, ParticipantID: 7, Amount: "300", StakeType: "points",
	})

	assert.Nil(t, stake)
	assert.ErrorIs(t, err, model.ErrInsufficientBalance)
}

func TestPlaceStake_StarsPendingWithoutDebit(t *testing.T) {
	ctx := context.Background()

	mockEventRepo := mocks.NewEventRepository(t)
	mockStakeRepo := mocks.NewStakeRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	runInTx(mockDBManager, ctx)
	mockEventRepo.On("GetEventForShare", ctx, int64(1), mock.Anything).Return(&model.Event{
		ID: 1, Status: model.EventScheduled, FightDate: stakeNow.Add(time.Hour),
	}, nil)
	mockStakeRepo.On("InsertStake", ctx, mock.MatchedBy(func(s *model.Stake) bool {
		return s.StakeType == model.StakeStars && s.Status == model.StakePending
	}), mock.Anything).Return(nil)

	// user and entry repos have no expectations: a stars stake never touches the balance
	service := newTestStakeService(t, mocks.NewUserRepository(t), mocks.NewEntryRepository(t), mockEventRepo, mockStakeRepo, mockDBManager)

	stake, err := service.PlaceStake(ctx, &model.PlaceStakeRequest{
		UserID: 42, EventID: 1, ParticipantID: 7, Amount: "50", StakeType: "STARS",
	})

	require.NoError(t, err)
	assert.Equal(t, model.StakePending, stake.Status)
}

func TestPlaceStake_EventClosed(t *testing.T) {
	tests := []struct {
		name  string
		event *model.Event
	}{
		{"expired", &model.Event{ID: 1, Status: model.EventExpired, FightDate: stakeNow.Add(-time.Hour)}},
		{"completed", &model.Event{ID: 1, Status: model.EventCompleted, FightDate: stakeNow.Add(time.Hour)}},
		{"overdue but not swept", &model.Event{ID: 1, Status: model.EventScheduled, FightDate: stakeNow.Add(-time.Second)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			mockEventRepo := mocks.NewEventRepository(t)
			mockDBManager := mocks.NewDBManager(t)

			runInTx(mockDBManager, ctx)
			mockEventRepo.On("GetEventForShare", ctx, int64(1), mock.Anything).Return(tt.event, nil)

			service := newTestStakeService(t, mocks.NewUserRepository(t), mocks.NewEntryRepository(t), mockEventRepo, mocks.NewStakeRepository(t), mockDBManager)

			_, err := service.PlaceStake(ctx, &model.PlaceStakeRequest{
				UserID: 42, EventID: 1, ParticipantID: 7, Amount: "10", StakeType: "POINTS",
			})

			assert.ErrorIs(t, err, model.ErrEventClosed)
			assert.Equal(t, model.KindConflict, model.KindOf(err))
		})
	}
}

func TestPlaceStake_InvalidInput(t *testing.T) {
	ctx := context.Background()
	service := newTestStakeService(t, mocks.NewUserRepository(t), mocks.NewEntryRepository(t), mocks.NewEventRepository(t),
		mocks.NewStakeRepository(t), mocks.NewDBManager(t))

	_, err := service.PlaceStake(ctx, &model.PlaceStakeRequest{UserID: 42, EventID: 1, ParticipantID: 7, Amount: "0", StakeType: "POINTS"})
	assert.ErrorIs(t, err, model.ErrInvalidAmount)

	_, err = service.PlaceStake(ctx, &model.PlaceStakeRequest{UserID: 42, EventID: 1, ParticipantID: 7, Amount: "10", StakeType: "TON"})
	assert.ErrorIs(t, err, model.ErrInvalidStakeType)

	_, err = service.PlaceStake(ctx, &model.PlaceStakeRequest{UserID: 42, EventID: 0, ParticipantID: 7, Amount: "10", StakeType: "POINTS"})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestTotalStaked(t *testing.T) {
	ctx := context.Background()

	mockEventRepo := mocks.NewEventRepository(t)
	mockStakeRepo := mocks.NewStakeRepository(t)

	mockEventRepo.On("GetEvent", ctx, int64(1)).Return(&model.Event{ID: 1}, nil)
	mockStakeRepo.On("TotalStaked", ctx, int64(1), int64(7), model.StakeStars).Return(decimal.NewFromInt(1500), nil)

	service := newTestStakeService(t, mocks.NewUserRepository(t), mocks.NewEntryRepository(t), mockEventRepo, mockStakeRepo, mocks.NewDBManager(t))

	resp, err := service.TotalStaked(ctx, 1, 7, "stars")

	require.NoError(t, err)
	assert.Equal(t, "1500", resp.Total)
	assert.Equal(t, "STARS", resp.StakeType)
}

func TestTotalStaked_UnknownEvent(t *testing.T) {
	ctx := context.Background()

	mockEventRepo := mocks.NewEventRepository(t)
	mockEventRepo.On("GetEvent", ctx, int64(9)).Return(nil, model.ErrEventNotFound)

	service := newTestStakeService(t, mocks.NewUserRepository(t), mocks.NewEntryRepository(t), mockEventRepo, mocks.NewStakeRepository(t), mocks.NewDBManager(t))

	_, err := service.TotalStaked(ctx, 9, 7, "POINTS")

	assert.ErrorIs(t, err, model.ErrEventNotFound)
}
