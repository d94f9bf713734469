package repository

import (
	"context"
	"shells-ledger/internal/model"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes fn within a database transaction. Serialization failures and
	// deadlocks re-run fn on a fresh transaction a bounded number of times.
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// UserRepository owns the points column. Only the balance writer in the service layer calls UpdatePoints.
type UserRepository interface {
	// EnsureUser inserts the user if missing and reports whether a row was created
	EnsureUser(ctx context.Context, userID model.TelegramID, tx ...pgx.Tx) (*model.User, bool, error)

	GetUser(ctx context.Context, userID model.TelegramID, tx ...pgx.Tx) (*model.User, error)

	// GetUserForUpdate retrieves a user with row-level lock (must be in transaction)
	GetUserForUpdate(ctx context.Context, userID model.TelegramID, tx pgx.Tx) (*model.User, error)

	UpdatePoints(ctx context.Context, userID model.TelegramID, points decimal.Decimal, tx pgx.Tx) error

	// MarkWelcomeClaimed flips has_claimed_welcome if it is still false
	MarkWelcomeClaimed(ctx context.Context, userID model.TelegramID, tx pgx.Tx) (bool, error)
}

type EntryRepository interface {
	InsertEntry(ctx context.Context, entry *model.BalanceEntry, tx pgx.Tx) error
	ListEntries(ctx context.Context, userID model.TelegramID, limit, offset int) ([]*model.BalanceEntry, error)
}

type CodeRepository interface {
	GetCode(ctx context.Context, code string, tx ...pgx.Tx) (*model.GeneratedCode, error)

	// ClaimCode marks the code redeemed only if it is still unredeemed
	ClaimCode(ctx context.Context, code string, userID model.TelegramID, reward decimal.Decimal, tx pgx.Tx) (bool, error)
}

type EventRepository interface {
	CreateEvent(ctx context.Context, event *model.Event, tx ...pgx.Tx) error
	GetEvent(ctx context.Context, id int64, tx ...pgx.Tx) (*model.Event, error)

	// GetEventForShare locks the event against concurrent status changes while a stake is written
	GetEventForShare(ctx context.Context, id int64, tx pgx.Tx) (*model.Event, error)

	// ExpireOverdue moves SCHEDULED events with fight_date before now to EXPIRED
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)

	// ResolveEvent applies a terminal status if the event is still SCHEDULED
	ResolveEvent(ctx context.Context, id int64, status model.EventStatus, winnerID *int64, tx ...pgx.Tx) (bool, error)
}

type StakeRepository interface {
	InsertStake(ctx context.Context, stake *model.Stake, tx pgx.Tx) error
	GetStake(ctx context.Context, id int64, tx ...pgx.Tx) (*model.Stake, error)
	TotalStaked(ctx context.Context, eventID, participantID int64, stakeType model.StakeType) (decimal.Decimal, error)

	// ConfirmStake activates a PENDING stake and records the provider charge
	ConfirmStake(ctx context.Context, id int64, chargeID string, tx pgx.Tx) (bool, error)

	// CancelStalePending cancels PENDING stakes created before the cutoff
	CancelStalePending(ctx context.Context, before time.Time) (int64, error)
}

type CatalogRepository interface {
	GetService(ctx context.Context, id int64, tx ...pgx.Tx) (*model.Service, error)
	GetTicketType(ctx context.Context, code string, tx ...pgx.Tx) (*model.TicketType, error)
}

type PurchaseRepository interface {
	InsertPurchase(ctx context.Context, purchase *model.Purchase, tx pgx.Tx) error
	GetPurchase(ctx context.Context, id int64, tx ...pgx.Tx) (*model.Purchase, error)

	// SetPurchaseStatus moves a PENDING purchase to APPROVED or REJECTED
	SetPurchaseStatus(ctx context.Context, id int64, status model.PurchaseStatus, chargeID *string, tx pgx.Tx) (bool, error)

	// LatestApprovedSubscription returns the most recently approved subscription purchase and its tier, or nil
	LatestApprovedSubscription(ctx context.Context, userID model.TelegramID) (*model.Purchase, *model.Service, error)

	RejectStalePending(ctx context.Context, before time.Time) (int64, error)
}

type TicketRepository interface {
	InsertTicket(ctx context.Context, ticket *model.Ticket, tx pgx.Tx) error
	GetTicket(ctx context.Context, ticketID string, tx ...pgx.Tx) (*model.Ticket, error)
	ListByUser(ctx context.Context, userID model.TelegramID) ([]*model.Ticket, error)

	// TransitionTicket moves a ticket from one status to another, recording the charge when given
	TransitionTicket(ctx context.Context, ticketID string, from, to model.TicketStatus, chargeID *string, tx ...pgx.Tx) (bool, error)

	RejectStalePending(ctx context.Context, before time.Time) (int64, error)
}

type ReferralRepository interface {
	// InsertReferral records the edge unless the referred user already has a referrer
	InsertReferral(ctx context.Context, referredID, referrerID model.TelegramID, tx pgx.Tx) (bool, error)
	ListReferrals(ctx context.Context, referrerID model.TelegramID) ([]model.TelegramID, error)
	ReferrerOf(ctx context.Context, referredID model.TelegramID) (*model.TelegramID, error)
}
