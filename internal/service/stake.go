package service

import (
	"context"
	"fmt"
	"shells-ledger/internal/model"
	"shells-ledger/internal/repository"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type StakeServiceImpl struct {
	balances  balanceWriter
	eventRepo repository.EventRepository
	stakeRepo repository.StakeRepository
	dbManager repository.DBManager
	now       func() time.Time
	logger    zerolog.Logger
}

func NewStakeService(
	userRepo repository.UserRepository,
	entryRepo repository.EntryRepository,
	eventRepo repository.EventRepository,
	stakeRepo repository.StakeRepository,
	dbManager repository.DBManager,
	logger zerolog.Logger,
) StakeService {
	return &StakeServiceImpl{
		balances:  balanceWriter{userRepo: userRepo, entryRepo: entryRepo},
		eventRepo: eventRepo,
		stakeRepo: stakeRepo,
		dbManager: dbManager,
		now:       time.Now,
		logger:    logger,
	}
}

// PlaceStake records a wager on a participant. POINTS stakes debit the balance in the same
// transaction and start ACTIVE; STARS stakes start PENDING until the provider confirms payment.
func (s *StakeServiceImpl) PlaceStake(ctx context.Context, req *model.PlaceStakeRequest) (*model.Stake, error) {
	userID, err := model.NewTelegramID(req.UserID)
	if err != nil {
		return nil, err
	}
	amount, err := model.ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	stakeType, err := model.ParseStakeType(req.StakeType)
	if err != nil {
		return nil, err
	}
	if req.EventID <= 0 || req.ParticipantID <= 0 {
		return nil, fmt.Errorf("%w: event_id and participant_id must be positive", model.ErrInvalidInput)
	}

	var stake *model.Stake
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		// Shared lock keeps the event SCHEDULED until this stake commits
		event, err := s.eventRepo.GetEventForShare(ctx, req.EventID, tx)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if !event.OpenForStaking(s.now()) {
			return fmt.Errorf("%w: event %d is %s", model.ErrEventClosed, event.ID, event.Status)
		}

		stake = &model.Stake{
			UserID:        userID,
			EventID:       req.EventID,
			ParticipantID: req.ParticipantID,
			Amount:        amount,
			StakeType:     stakeType,
			Status:        model.StakePending,
		}
		if stakeType == model.StakePoints {
			stake.Status = model.StakeActive
		}

		if err := s.stakeRepo.InsertStake(ctx, stake, tx); err != nil {
			return fmt.Errorf("insert stake: %w", err)
		}

		if stakeType == model.StakePoints {
			_, err = s.balances.apply(ctx, tx, userID, amount.Neg(), model.ReasonStake, fmt.Sprintf("stake:%d", stake.ID))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("stake_id", stake.ID).
		Int64("user_id", userID.Int64()).
		Int64("event_id", stake.EventID).
		Int64("participant_id", stake.ParticipantID).
		Str("stake_type", stakeType.String()).
		Str("amount", amount.String()).
		Msg("stake placed")

	return stake, nil
}

// TotalStaked sums the non-cancelled stakes at read time
func (s *StakeServiceImpl) TotalStaked(ctx context.Context, eventID, participantID int64, stakeType string) (*model.TotalStakedResponse, error) {
	st, err := model.ParseStakeType(stakeType)
	if err != nil {
		return nil, err
	}

	if _, err := s.eventRepo.GetEvent(ctx, eventID); err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	total, err := s.stakeRepo.TotalStaked(ctx, eventID, participantID, st)
	if err != nil {
		return nil, fmt.Errorf("total staked: %w", err)
	}

	return &model.TotalStakedResponse{
		EventID:       eventID,
		ParticipantID: participantID,
		StakeType:     st.String(),
		Total:         total.String(),
	}, nil
}
