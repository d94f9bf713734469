package service

import (
	"context"
	"shells-ledger/internal/model"
	"time"
)

// LedgerService is the balance store. Every points mutation in the system goes through it or
// through the same balance writer inside another service's transaction.
type LedgerService interface {
	EnsureUser(ctx context.Context, userID model.TelegramID) (*model.User, error)
	GetBalance(ctx context.Context, userID model.TelegramID) (*model.BalanceResponse, error)
	AdjustPoints(ctx context.Context, userID model.TelegramID, req *model.AdjustPointsRequest) (*model.BalanceResponse, error)
	ListEntries(ctx context.Context, userID model.TelegramID, limit, offset int) ([]*model.BalanceEntry, error)
	ClaimWelcome(ctx context.Context, userID model.TelegramID) (*model.BalanceResponse, error)
	CreditTaps(ctx context.Context, userID model.TelegramID, taps int) (*model.BalanceResponse, error)
}

type RedemptionService interface {
	RedeemCode(ctx context.Context, req *model.RedeemCodeRequest) (*model.RedeemCodeResponse, error)
}

type EventService interface {
	CreateEvent(ctx context.Context, req *model.CreateEventRequest) (*model.Event, error)
	GetEvent(ctx context.Context, id int64) (*model.Event, error)
	ResolveEvent(ctx context.Context, id int64, req *model.ResolveEventRequest) (*model.Event, error)
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}

type StakeService interface {
	PlaceStake(ctx context.Context, req *model.PlaceStakeRequest) (*model.Stake, error)
	TotalStaked(ctx context.Context, eventID, participantID int64, stakeType string) (*model.TotalStakedResponse, error)
}

type PurchaseService interface {
	Purchase(ctx context.Context, req *model.PurchaseRequest) (*model.Purchase, error)
	ReviewPurchase(ctx context.Context, id int64, approve bool) (*model.Purchase, error)
	GetSubscriptionStatus(ctx context.Context, userID model.TelegramID) (*model.SubscriptionStatus, error)
}

type TicketService interface {
	PurchaseTicket(ctx context.Context, req *model.TicketRequest) (*model.Ticket, error)
	ListUserTickets(ctx context.Context, userID model.TelegramID) ([]*model.Ticket, error)
	ApproveTicket(ctx context.Context, ticketID string) (*model.Ticket, error)
}

type ReferralService interface {
	RecordReferral(ctx context.Context, req *model.ReferralRequest) error
	GetReferrals(ctx context.Context, userID model.TelegramID) (*model.ReferralsResponse, error)
}

// PaymentService reconciles records paid through the external stars provider. It never credits points.
type PaymentService interface {
	ConfirmPayment(ctx context.Context, req *model.PaymentConfirmation) (*model.PaymentConfirmationResponse, error)
	SweepStalePending(ctx context.Context, now time.Time) (*model.SweepResult, error)
}

// Notifier delivers best-effort admin alerts after a mutation has committed
type Notifier interface {
	Notify(ctx context.Context, n model.Notification) error
}
