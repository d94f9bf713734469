package service

import (
	"context"
	"fmt"
	"shells-ledger/internal/config"
	"shells-ledger/internal/model"
	"shells-ledger/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type ReferralServiceImpl struct {
	balances     balanceWriter
	userRepo     repository.UserRepository
	referralRepo repository.ReferralRepository
	dbManager    repository.DBManager
	policy       config.LedgerConfig
	logger       zerolog.Logger
}

func NewReferralService(
	userRepo repository.UserRepository,
	entryRepo repository.EntryRepository,
	referralRepo repository.ReferralRepository,
	dbManager repository.DBManager,
	policy config.LedgerConfig,
	logger zerolog.Logger,
) ReferralService {
	return &ReferralServiceImpl{
		balances:     balanceWriter{userRepo: userRepo, entryRepo: entryRepo},
		userRepo:     userRepo,
		referralRepo: referralRepo,
		dbManager:    dbManager,
		policy:       policy,
		logger:       logger,
	}
}

// RecordReferral stores who referred whom. The first referral wins; later ones get ErrAlreadyReferred.
func (s *ReferralServiceImpl) RecordReferral(ctx context.Context, req *model.ReferralRequest) error {
	referred, err := model.NewTelegramID(req.ReferredUserID)
	if err != nil {
		return err
	}
	referrer, err := model.NewTelegramID(req.ReferrerID)
	if err != nil {
		return err
	}
	if referred == referrer {
		return model.ErrSelfReferral
	}

	bonus := decimal.NewFromInt(s.policy.ReferralBonus)
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		inserted, err := s.referralRepo.InsertReferral(ctx, referred, referrer, tx)
		if err != nil {
			return fmt.Errorf("insert referral: %w", err)
		}
		if !inserted {
			return model.ErrAlreadyReferred
		}

		if bonus.IsPositive() {
			_, err = s.balances.apply(ctx, tx, referrer, bonus, model.ReasonReferralBonus, "referral:"+referred.String())
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().Int64("referred_id", referred.Int64()).Int64("referrer_id", referrer.Int64()).Msg("referral recorded")
	return nil
}

func (s *ReferralServiceImpl) GetReferrals(ctx context.Context, userID model.TelegramID) (*model.ReferralsResponse, error) {
	if _, err := s.userRepo.GetUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	referrals, err := s.referralRepo.ListReferrals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list referrals: %w", err)
	}

	referrer, err := s.referralRepo.ReferrerOf(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("referrer of: %w", err)
	}

	return &model.ReferralsResponse{
		UserID:     userID,
		ReferrerID: referrer,
		Referrals:  referrals,
	}, nil
}
