package service

import (
	"context"
	"fmt"
	"shells-ledger/internal/model"
	"shells-ledger/internal/repository"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type RedemptionServiceImpl struct {
	balances  balanceWriter
	codeRepo  repository.CodeRepository
	dbManager repository.DBManager
	reward    RewardPolicy
	logger    zerolog.Logger
}

func NewRedemptionService(
	userRepo repository.UserRepository,
	entryRepo repository.EntryRepository,
	codeRepo repository.CodeRepository,
	dbManager repository.DBManager,
	reward RewardPolicy,
	logger zerolog.Logger,
) RedemptionService {
	return &RedemptionServiceImpl{
		balances:  balanceWriter{userRepo: userRepo, entryRepo: entryRepo},
		codeRepo:  codeRepo,
		dbManager: dbManager,
		reward:    reward,
		logger:    logger,
	}
}

// RedeemCode consumes a one-time code and credits the reward to the user in the same transaction.
// Of any number of racing redemptions exactly one wins; the rest get ErrAlreadyRedeemed.
func (s *RedemptionServiceImpl) RedeemCode(ctx context.Context, req *model.RedeemCodeRequest) (*model.RedeemCodeResponse, error) {
	userID, err := model.NewTelegramID(req.UserID)
	if err != nil {
		return nil, err
	}

	code := strings.TrimSpace(req.Code)
	batchID := strings.TrimSpace(req.BatchID)
	if code == "" || batchID == "" {
		return nil, fmt.Errorf("%w: code and batch_id are required", model.ErrInvalidInput)
	}

	var reward, newBalance decimal.Decimal
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		gc, err := s.codeRepo.GetCode(ctx, code, tx)
		if err != nil {
			return fmt.Errorf("get code: %w", err)
		}
		if gc.BatchID != batchID {
			return model.ErrBatchMismatch
		}
		if gc.IsRedeemed {
			return model.ErrAlreadyRedeemed
		}

		reward = s.reward.Draw()

		// Compare-and-set; a concurrent winner leaves zero rows to update
		claimed, err := s.codeRepo.ClaimCode(ctx, code, userID, reward, tx)
		if err != nil {
			return fmt.Errorf("claim code: %w", err)
		}
		if !claimed {
			return model.ErrAlreadyRedeemed
		}

		newBalance, err = s.balances.apply(ctx, tx, userID, reward, model.ReasonCodeRedeem, code)
		return err
	})
	if err != nil {
		s.logger.Debug().Err(err).Str("code", code).Int64("user_id", userID.Int64()).Msg("code redemption rejected")
		return nil, err
	}

	s.logger.Info().Str("code", code).Str("batch_id", batchID).Int64("user_id", userID.Int64()).
		Str("reward", reward.String()).
		Str("new_balance", newBalance.String()).
		Msg("code redeemed")

	return &model.RedeemCodeResponse{
		Code:    code,
		Reward:  reward.String(),
		Balance: newBalance.String(),
	}, nil
}
