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

type PurchaseServiceImpl struct {
	balances     balanceWriter
	userRepo     repository.UserRepository
	catalogRepo  repository.CatalogRepository
	purchaseRepo repository.PurchaseRepository
	dbManager    repository.DBManager
	notifier     Notifier
	now          func() time.Time
	logger       zerolog.Logger
}

func NewPurchaseService(
	userRepo repository.UserRepository,
	entryRepo repository.EntryRepository,
	catalogRepo repository.CatalogRepository,
	purchaseRepo repository.PurchaseRepository,
	dbManager repository.DBManager,
	notifier Notifier,
	logger zerolog.Logger,
) PurchaseService {
	return &PurchaseServiceImpl{
		balances:     balanceWriter{userRepo: userRepo, entryRepo: entryRepo},
		userRepo:     userRepo,
		catalogRepo:  catalogRepo,
		purchaseRepo: purchaseRepo,
		dbManager:    dbManager,
		notifier:     notifier,
		now:          time.Now,
		logger:       logger,
	}
}

// Purchase buys a service or subscription tier. Points purchases are debited and approved in one
// transaction; stars purchases are recorded PENDING and never touch the balance.
func (s *PurchaseServiceImpl) Purchase(ctx context.Context, req *model.PurchaseRequest) (*model.Purchase, error) {
	userID, err := model.NewTelegramID(req.UserID)
	if err != nil {
		return nil, err
	}
	paymentType, err := model.ParsePaymentType(req.PaymentType)
	if err != nil {
		return nil, err
	}
	if req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: service_id must be positive", model.ErrInvalidInput)
	}

	var purchase *model.Purchase
	var svc *model.Service
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		svc, err = s.catalogRepo.GetService(ctx, req.ServiceID, tx)
		if err != nil {
			return fmt.Errorf("get service: %w", err)
		}

		purchase = &model.Purchase{
			UserID:      userID,
			ServiceID:   svc.ID,
			Amount:      svc.Price,
			Type:        model.TransactionSpend,
			PaymentType: paymentType,
			Status:      model.PurchasePending,
		}
		if paymentType == model.PaymentPoints {
			approvedAt := s.now()
			purchase.Status = model.PurchaseApproved
			purchase.ApprovedAt = &approvedAt
		}

		if err := s.purchaseRepo.InsertPurchase(ctx, purchase, tx); err != nil {
			return fmt.Errorf("insert purchase: %w", err)
		}

		if paymentType == model.PaymentPoints {
			_, err = s.balances.apply(ctx, tx, userID, svc.Price.Neg(), model.ReasonPurchase, fmt.Sprintf("purchase:%d", purchase.ID))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("purchase_id", purchase.ID).
		Int64("user_id", userID.Int64()).
		Int64("service_id", svc.ID).
		Str("payment_type", paymentType.String()).
		Str("amount", purchase.Amount.String()).
		Str("status", string(purchase.Status)).
		Msg("purchase recorded")

	if purchase.Status == model.PurchasePending {
		notifyBestEffort(ctx, s.notifier, s.logger, model.Notification{
			Topic:   "purchase",
			UserID:  userID,
			Subject: fmt.Sprintf("purchase:%d", purchase.ID),
			Message: fmt.Sprintf("stars purchase of %q awaiting payment", svc.Name),
		})
	}
	return purchase, nil
}

// ReviewPurchase approves or rejects a PENDING purchase. Decisions are final.
func (s *PurchaseServiceImpl) ReviewPurchase(ctx context.Context, id int64, approve bool) (*model.Purchase, error) {
	status := model.PurchaseRejected
	if approve {
		status = model.PurchaseApproved
	}

	var purchase *model.Purchase
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		updated, err := s.purchaseRepo.SetPurchaseStatus(ctx, id, status, nil, tx)
		if err != nil {
			return fmt.Errorf("set purchase status: %w", err)
		}

		purchase, err = s.purchaseRepo.GetPurchase(ctx, id, tx)
		if err != nil {
			return fmt.Errorf("get purchase: %w", err)
		}
		if !updated {
			return fmt.Errorf("%w: purchase %d is %s", model.ErrAlreadyProcessed, id, purchase.Status)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("purchase_id", id).Str("status", string(status)).Msg("purchase reviewed")
	return purchase, nil
}

func (s *PurchaseServiceImpl) GetSubscriptionStatus(ctx context.Context, userID model.TelegramID) (*model.SubscriptionStatus, error) {
	if _, err := s.userRepo.GetUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	purchase, tier, err := s.purchaseRepo.LatestApprovedSubscription(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("latest subscription: %w", err)
	}
	return SubscriptionStatusAt(userID, purchase, tier, s.now()), nil
}

// SubscriptionStatusAt derives the subscription state from the latest approved subscription
// purchase and its tier. Nothing is stored, so the answer is always current.
func SubscriptionStatusAt(userID model.TelegramID, purchase *model.Purchase, tier *model.Service, now time.Time) *model.SubscriptionStatus {
	status := &model.SubscriptionStatus{UserID: userID}
	if purchase == nil || tier == nil || purchase.ApprovedAt == nil {
		return status
	}

	expiresAt := purchase.ApprovedAt.AddDate(0, 0, tier.DurationDays)
	serviceID := tier.ID
	status.ServiceID = &serviceID
	status.ExpiresAt = &expiresAt
	status.Active = now.Before(expiresAt)
	return status
}
