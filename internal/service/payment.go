package service

import (
	"context"
	"fmt"
	"shells-ledger/internal/metrics"
	"shells-ledger/internal/model"
	"shells-ledger/internal/repository"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const (
	statusConfirmed        = "confirmed"
	statusAlreadyConfirmed = "already_confirmed"
)

type PaymentServiceImpl struct {
	stakeRepo    repository.StakeRepository
	purchaseRepo repository.PurchaseRepository
	ticketRepo   repository.TicketRepository
	dbManager    repository.DBManager
	pendingTTL   time.Duration
	logger       zerolog.Logger
}

func NewPaymentService(
	stakeRepo repository.StakeRepository,
	purchaseRepo repository.PurchaseRepository,
	ticketRepo repository.TicketRepository,
	dbManager repository.DBManager,
	pendingTTL time.Duration,
	logger zerolog.Logger,
) PaymentService {
	return &PaymentServiceImpl{
		stakeRepo:    stakeRepo,
		purchaseRepo: purchaseRepo,
		ticketRepo:   ticketRepo,
		dbManager:    dbManager,
		pendingTTL:   pendingTTL,
		logger:       logger,
	}
}

// ConfirmPayment settles a stars-paid record. Replaying the same confirmation is a no-op;
// a different charge for an already settled record is a conflict.
func (s *PaymentServiceImpl) ConfirmPayment(ctx context.Context, req *model.PaymentConfirmation) (*model.PaymentConfirmationResponse, error) {
	target, err := model.ParsePaymentTarget(req.Target)
	if err != nil {
		return nil, err
	}
	id := strings.TrimSpace(req.ID)
	chargeID := strings.TrimSpace(req.ChargeID)
	if id == "" || chargeID == "" {
		return nil, fmt.Errorf("%w: id and charge_id are required", model.ErrInvalidInput)
	}

	var status string
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		switch target {
		case model.TargetStake:
			status, err = s.confirmStake(ctx, id, chargeID, tx)
		case model.TargetPurchase:
			status, err = s.confirmPurchase(ctx, id, chargeID, tx)
		case model.TargetTicket:
			status, err = s.confirmTicket(ctx, id, chargeID, tx)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("target", string(target)).Str("id", id).Str("charge_id", chargeID).Str("status", status).Msg("payment confirmation handled")
	return &model.PaymentConfirmationResponse{Status: status, Target: string(target), ID: id}, nil
}

func (s *PaymentServiceImpl) confirmStake(ctx context.Context, rawID, chargeID string, tx pgx.Tx) (string, error) {
	id, err := parseRecordID(rawID)
	if err != nil {
		return "", err
	}

	confirmed, err := s.stakeRepo.ConfirmStake(ctx, id, chargeID, tx)
	if err != nil {
		return "", fmt.Errorf("confirm stake: %w", err)
	}
	if confirmed {
		return statusConfirmed, nil
	}

	stake, err := s.stakeRepo.GetStake(ctx, id, tx)
	if err != nil {
		return "", fmt.Errorf("get stake: %w", err)
	}
	if stake.StakeType != model.StakeStars {
		return "", fmt.Errorf("%w: stake %d is not paid in stars", model.ErrInvalidPaymentType, id)
	}
	return replayOutcome(chargeID, stake.PaymentChargeID, stake.Status == model.StakeActive)
}

func (s *PaymentServiceImpl) confirmPurchase(ctx context.Context, rawID, chargeID string, tx pgx.Tx) (string, error) {
	id, err := parseRecordID(rawID)
	if err != nil {
		return "", err
	}

	approved, err := s.purchaseRepo.SetPurchaseStatus(ctx, id, model.PurchaseApproved, &chargeID, tx)
	if err != nil {
		return "", fmt.Errorf("approve purchase: %w", err)
	}
	if approved {
		return statusConfirmed, nil
	}

	purchase, err := s.purchaseRepo.GetPurchase(ctx, id, tx)
	if err != nil {
		return "", fmt.Errorf("get purchase: %w", err)
	}
	if purchase.PaymentType != model.PaymentStars {
		return "", fmt.Errorf("%w: purchase %d is not paid in stars", model.ErrInvalidPaymentType, id)
	}
	return replayOutcome(chargeID, purchase.PaymentChargeID, purchase.Status == model.PurchaseApproved)
}

func (s *PaymentServiceImpl) confirmTicket(ctx context.Context, ticketID, chargeID string, tx pgx.Tx) (string, error) {
	purchased, err := s.ticketRepo.TransitionTicket(ctx, ticketID, model.TicketPending, model.TicketPurchased, &chargeID, tx)
	if err != nil {
		return "", fmt.Errorf("confirm ticket: %w", err)
	}
	if purchased {
		return statusConfirmed, nil
	}

	ticket, err := s.ticketRepo.GetTicket(ctx, ticketID, tx)
	if err != nil {
		return "", fmt.Errorf("get ticket: %w", err)
	}
	if ticket.PaymentMethod != model.PaymentStars {
		return "", fmt.Errorf("%w: ticket %s is not paid in stars", model.ErrInvalidPaymentType, ticketID)
	}
	paid := ticket.Status == model.TicketPurchased || ticket.Status == model.TicketApproved
	return replayOutcome(chargeID, ticket.PaymentChargeID, paid)
}

// replayOutcome classifies a confirmation for a record that already left its pending state
func replayOutcome(chargeID string, recorded *string, paid bool) (string, error) {
	if !paid {
		return "", model.ErrAlreadyProcessed
	}
	if recorded == nil || *recorded != chargeID {
		return "", model.ErrPaymentMismatch
	}
	return statusAlreadyConfirmed, nil
}

func parseRecordID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id must be a positive integer", model.ErrInvalidInput)
	}
	return id, nil
}

// SweepStalePending closes stars-paid records whose payment never arrived. Nothing is credited.
func (s *PaymentServiceImpl) SweepStalePending(ctx context.Context, now time.Time) (*model.SweepResult, error) {
	before := now.Add(-s.pendingTTL)
	result := &model.SweepResult{}

	var err error
	if result.StakesCancelled, err = s.stakeRepo.CancelStalePending(ctx, before); err != nil {
		return nil, fmt.Errorf("cancel stale stakes: %w", err)
	}
	if result.PurchasesRejected, err = s.purchaseRepo.RejectStalePending(ctx, before); err != nil {
		return nil, fmt.Errorf("reject stale purchases: %w", err)
	}
	if result.TicketsRejected, err = s.ticketRepo.RejectStalePending(ctx, before); err != nil {
		return nil, fmt.Errorf("reject stale tickets: %w", err)
	}

	metrics.StalePaymentsClosed.WithLabelValues(string(model.TargetStake)).Add(float64(result.StakesCancelled))
	metrics.StalePaymentsClosed.WithLabelValues(string(model.TargetPurchase)).Add(float64(result.PurchasesRejected))
	metrics.StalePaymentsClosed.WithLabelValues(string(model.TargetTicket)).Add(float64(result.TicketsRejected))

	s.logger.Info().
		Time("cutoff", before).
		Int64("stakes_cancelled", result.StakesCancelled).
		Int64("purchases_rejected", result.PurchasesRejected).
		Int64("tickets_rejected", result.TicketsRejected).
		Msg("stale pending payments swept")
	return result, nil
}
