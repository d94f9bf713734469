package service

import (
	"context"
	"fmt"
	"shells-ledger/internal/config"
	"shells-ledger/internal/model"
	"shells-ledger/internal/repository"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// balanceWriter is the only code that changes users.points. Callers pass their own tx so the
// balance change commits together with the record that caused it.
type balanceWriter struct {
	userRepo  repository.UserRepository
	entryRepo repository.EntryRepository
}

func (w balanceWriter) apply(ctx context.Context, tx pgx.Tx, userID model.TelegramID, delta decimal.Decimal, reason model.EntryReason, reference string) (decimal.Decimal, error) {
	user, err := w.userRepo.GetUserForUpdate(ctx, userID, tx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get user for update: %w", err)
	}
	return w.applyLocked(ctx, tx, user, delta, reason, reference)
}

// applyLocked expects user to have been read with GetUserForUpdate in tx
func (w balanceWriter) applyLocked(ctx context.Context, tx pgx.Tx, user *model.User, delta decimal.Decimal, reason model.EntryReason, reference string) (decimal.Decimal, error) {
	newBalance := user.Points.Add(delta)

	// Negative balance is not allowed
	if newBalance.IsNegative() {
		return decimal.Zero, model.ErrInsufficientBalance
	}

	if err := w.userRepo.UpdatePoints(ctx, user.TelegramID, newBalance, tx); err != nil {
		return decimal.Zero, fmt.Errorf("update points: %w", err)
	}

	entry := &model.BalanceEntry{
		UserID:       user.TelegramID,
		Delta:        delta,
		BalanceAfter: newBalance,
		Reason:       reason,
		Reference:    reference,
	}
	if err := w.entryRepo.InsertEntry(ctx, entry, tx); err != nil {
		return decimal.Zero, fmt.Errorf("insert balance entry: %w", err)
	}

	user.Points = newBalance
	return newBalance, nil
}

type LedgerServiceImpl struct {
	balances  balanceWriter
	userRepo  repository.UserRepository
	entryRepo repository.EntryRepository
	dbManager repository.DBManager
	policy    config.LedgerConfig
	logger    zerolog.Logger
}

func NewLedgerService(
	userRepo repository.UserRepository,
	entryRepo repository.EntryRepository,
	dbManager repository.DBManager,
	policy config.LedgerConfig,
	logger zerolog.Logger,
) LedgerService {
	return &LedgerServiceImpl{
		balances:  balanceWriter{userRepo: userRepo, entryRepo: entryRepo},
		userRepo:  userRepo,
		entryRepo: entryRepo,
		dbManager: dbManager,
		policy:    policy,
		logger:    logger,
	}
}

func (s *LedgerServiceImpl) EnsureUser(ctx context.Context, userID model.TelegramID) (*model.User, error) {
	user, created, err := s.userRepo.EnsureUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ensure user: %w", err)
	}
	if created {
		s.logger.Info().Int64("user_id", userID.Int64()).Msg("user created")
	}
	return user, nil
}

func (s *LedgerServiceImpl) GetBalance(ctx context.Context, userID model.TelegramID) (*model.BalanceResponse, error) {
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &model.BalanceResponse{
		UserID:  userID,
		Balance: user.Points.String(),
	}, nil
}

// AdjustPoints applies a signed delta. A debit larger than the balance fails without mutation.
func (s *LedgerServiceImpl) AdjustPoints(ctx context.Context, userID model.TelegramID, req *model.AdjustPointsRequest) (*model.BalanceResponse, error) {
	delta, err := model.ParseDelta(req.Delta)
	if err != nil {
		return nil, err
	}

	reference := strings.TrimSpace(req.Reference)
	if reference == "" {
		reference = strings.TrimSpace(req.Reason)
	}

	var newBalance decimal.Decimal
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		newBalance, err = s.balances.apply(ctx, tx, userID, delta, model.ReasonAdjust, reference)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", userID.Int64()).
		Str("delta", delta.String()).
		Str("new_balance", newBalance.String()).
		Str("reason", req.Reason).
		Msg("points adjusted")

	return &model.BalanceResponse{UserID: userID, Balance: newBalance.String()}, nil
}

func (s *LedgerServiceImpl) ListEntries(ctx context.Context, userID model.TelegramID, limit, offset int) ([]*model.BalanceEntry, error) {
	if _, err := s.userRepo.GetUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	entries, err := s.entryRepo.ListEntries(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list balance entries: %w", err)
	}
	return entries, nil
}

// ClaimWelcome credits the welcome bonus once per user
func (s *LedgerServiceImpl) ClaimWelcome(ctx context.Context, userID model.TelegramID) (*model.BalanceResponse, error) {
	bonus := decimal.NewFromInt(s.policy.WelcomeBonus)

	var newBalance decimal.Decimal
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		claimed, err := s.userRepo.MarkWelcomeClaimed(ctx, userID, tx)
		if err != nil {
			return fmt.Errorf("mark welcome claimed: %w", err)
		}
		if !claimed {
			// either the user is missing or the flag was already set
			if _, err := s.userRepo.GetUser(ctx, userID, tx); err != nil {
				return fmt.Errorf("get user: %w", err)
			}
			return model.ErrWelcomeClaimed
		}

		newBalance, err = s.balances.apply(ctx, tx, userID, bonus, model.ReasonWelcome, "")
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", userID.Int64()).Str("bonus", bonus.String()).Msg("welcome bonus claimed")
	return &model.BalanceResponse{UserID: userID, Balance: newBalance.String()}, nil
}

// CreditTaps credits taps multiplied by the user's tapping rate
func (s *LedgerServiceImpl) CreditTaps(ctx context.Context, userID model.TelegramID, taps int) (*model.BalanceResponse, error) {
	if taps < 1 || taps > s.policy.TapMaxPerCall {
		return nil, fmt.Errorf("%w: taps must be between 1 and %d", model.ErrInvalidAmount, s.policy.TapMaxPerCall)
	}

	var newBalance decimal.Decimal
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		user, err := s.userRepo.GetUserForUpdate(ctx, userID, tx)
		if err != nil {
			return fmt.Errorf("get user for update: %w", err)
		}

		earned := user.TappingRate.Mul(decimal.NewFromInt(int64(taps))).Truncate(0)
		newBalance, err = s.balances.applyLocked(ctx, tx, user, earned, model.ReasonTaps, fmt.Sprintf("taps:%d", taps))
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Int64("user_id", userID.Int64()).Int("taps", taps).Str("new_balance", newBalance.String()).Msg("taps credited")
	return &model.BalanceResponse{UserID: userID, Balance: newBalance.String()}, nil
}
