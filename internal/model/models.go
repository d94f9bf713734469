package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	TelegramID        TelegramID      `json:"telegram_id"`
	Points            decimal.Decimal `json:"points"`
	TappingRate       decimal.Decimal `json:"tapping_rate"`
	HasClaimedWelcome bool            `json:"has_claimed_welcome"`
	Version           int             `json:"version"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// BalanceEntry is the audit row written in the same transaction as every points change.
type BalanceEntry struct {
	ID           int64           `json:"id"`
	UserID       TelegramID      `json:"user_id"`
	Delta        decimal.Decimal `json:"delta"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	Reason       EntryReason     `json:"reason"`
	Reference    string          `json:"reference,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

type GeneratedCode struct {
	Code         string              `json:"code"`
	BatchID      string              `json:"batch_id"`
	BookID       string              `json:"book_id"`
	IsRedeemed   bool                `json:"is_redeemed"`
	RedeemedBy   *TelegramID         `json:"redeemed_by,omitempty"`
	RedeemedAt   *time.Time          `json:"redeemed_at,omitempty"`
	RewardAmount decimal.NullDecimal `json:"reward_amount"`
	CreatedAt    time.Time           `json:"created_at"`
}

// Event is a scheduled fight that stakes are placed against.
type Event struct {
	ID         int64       `json:"id"`
	Title      string      `json:"title"`
	Status     EventStatus `json:"status"`
	FightDate  time.Time   `json:"fight_date"`
	WinnerID   *int64      `json:"winner_id,omitempty"`
	ResolvedAt *time.Time  `json:"resolved_at,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// OpenForStaking reports whether a stake placed at now may be accepted.
func (e *Event) OpenForStaking(now time.Time) bool {
	return e.Status == EventScheduled && e.FightDate.After(now)
}

type Stake struct {
	ID              int64           `json:"id"`
	UserID          TelegramID      `json:"user_id"`
	EventID         int64           `json:"event_id"`
	ParticipantID   int64           `json:"participant_id"`
	Amount          decimal.Decimal `json:"stake_amount"`
	StakeType       StakeType       `json:"stake_type"`
	Status          StakeStatus     `json:"status"`
	PaymentChargeID *string         `json:"payment_charge_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Service is a catalog entry that can be bought with points or stars.
type Service struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Kind         ServiceKind     `json:"kind"`
	Price        decimal.Decimal `json:"price"`
	DurationDays int             `json:"duration_days"`
}

// Purchase is the point transaction recorded for a service or subscription grant.
type Purchase struct {
	ID              int64           `json:"id"`
	UserID          TelegramID      `json:"user_id"`
	ServiceID       int64           `json:"service_id"`
	Amount          decimal.Decimal `json:"amount"`
	Type            TransactionType `json:"type"`
	PaymentType     PaymentType     `json:"payment_type"`
	Status          PurchaseStatus  `json:"status"`
	PaymentChargeID *string         `json:"payment_charge_id,omitempty"`
	ApprovedAt      *time.Time      `json:"approved_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type TicketType struct {
	Code  string          `json:"code"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type Ticket struct {
	ID              int64           `json:"-"`
	TicketID        string          `json:"ticket_id"`
	UserID          TelegramID      `json:"user_id"`
	TicketType      string          `json:"ticket_type"`
	Quantity        int             `json:"quantity"`
	PaymentMethod   PaymentType     `json:"payment_method"`
	TotalCost       decimal.Decimal `json:"total_cost"`
	Status          TicketStatus    `json:"status"`
	PaymentChargeID *string         `json:"payment_charge_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type Referral struct {
	ReferredID TelegramID `json:"referred_id"`
	ReferrerID TelegramID `json:"referrer_id"`
	CreatedAt  time.Time  `json:"created_at"`
}

type SubscriptionStatus struct {
	UserID    TelegramID `json:"user_id"`
	Active    bool       `json:"active"`
	ServiceID *int64     `json:"service_id,omitempty"`
	ExpiresAt *time.Time `json:"expires_at"`
}

type EnsureUserRequest struct {
	TelegramID int64 `json:"telegram_id" binding:"required" example:"42"`
}

type AdjustPointsRequest struct {
	Delta     string `json:"delta" binding:"required" example:"-250"`
	Reason    string `json:"reason" example:"support compensation"`
	Reference string `json:"reference,omitempty"`
}

type TapsRequest struct {
	Taps int `json:"taps" binding:"required" example:"25"`
}

type RedeemCodeRequest struct {
	Code    string `json:"code" binding:"required" example:"ABC123"`
	BatchID string `json:"batch_id" binding:"required" example:"B1"`
	UserID  int64  `json:"user_id" binding:"required" example:"42"`
}

type RedeemCodeResponse struct {
	Code    string `json:"code" example:"ABC123"`
	Reward  string `json:"reward" example:"53120"`
	Balance string `json:"balance" example:"53620"`
}

type CreateEventRequest struct {
	Title     string    `json:"title" binding:"required" example:"Main card"`
	FightDate time.Time `json:"fight_date" binding:"required"`
}

type ResolveEventRequest struct {
	Status   string `json:"status" binding:"required" enums:"COMPLETED,CANCELLED,DRAW" example:"COMPLETED"`
	WinnerID *int64 `json:"winner_id,omitempty" example:"7"`
}

type ExpireEventsRequest struct {
	Now *time.Time `json:"now,omitempty"`
}

type ExpireEventsResponse struct {
	Expired int64 `json:"expired" example:"3"`
}

type PlaceStakeRequest struct {
	UserID        int64  `json:"user_id" binding:"required" example:"42"`
	EventID       int64  `json:"event_id" binding:"required" example:"1"`
	ParticipantID int64  `json:"participant_id" binding:"required" example:"7"`
	Amount        string `json:"amount" binding:"required" example:"500"`
	StakeType     string `json:"stake_type" binding:"required" enums:"POINTS,STARS" example:"POINTS"`
}

type TotalStakedResponse struct {
	EventID       int64  `json:"event_id"`
	ParticipantID int64  `json:"participant_id"`
	StakeType     string `json:"stake_type"`
	Total         string `json:"total" example:"1500"`
}

type PurchaseRequest struct {
	UserID      int64  `json:"user_id" binding:"required" example:"42"`
	ServiceID   int64  `json:"service_id" binding:"required" example:"3"`
	PaymentType string `json:"payment_type" binding:"required" enums:"POINTS,STARS" example:"POINTS"`
}

type ReviewRequest struct {
	Approve bool `json:"approve"`
}

type TicketRequest struct {
	UserID        int64  `json:"user_id" binding:"required" example:"42"`
	TicketType    string `json:"ticket_type" binding:"required" example:"vip"`
	Quantity      int    `json:"quantity" binding:"required" example:"2"`
	PaymentMethod string `json:"payment_method" binding:"required" enums:"POINTS,STARS" example:"POINTS"`
}

type TicketListResponse struct {
	Tickets []*Ticket `json:"tickets"`
	Total   int       `json:"total"`
}

type ReferralRequest struct {
	ReferredUserID int64 `json:"referred_user_id" binding:"required" example:"42"`
	ReferrerID     int64 `json:"referrer_id" binding:"required" example:"7"`
}

type ReferralsResponse struct {
	UserID     TelegramID   `json:"user_id"`
	ReferrerID *TelegramID  `json:"referrer_id"`
	Referrals  []TelegramID `json:"referrals"`
}

// PaymentConfirmation is the provider callback that reconciles a stars-paid record.
type PaymentConfirmation struct {
	Target   string `json:"target" binding:"required" enums:"stake,purchase,ticket" example:"ticket"`
	ID       string `json:"id" binding:"required" example:"TKT-20261017-4F3A9C1B"`
	ChargeID string `json:"charge_id" binding:"required" example:"stxAbc123"`
}

type PaymentConfirmationResponse struct {
	Status string `json:"status" example:"confirmed"`
	Target string `json:"target"`
	ID     string `json:"id"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"insufficient balance"`
	Code    string `json:"code,omitempty" example:"INSUFFICIENT_BALANCE"`
	Kind    Kind   `json:"kind,omitempty" example:"INSUFFICIENT_FUNDS"`
	Details string `json:"details,omitempty"`
}

type BalanceResponse struct {
	UserID  TelegramID `json:"user_id" example:"42"`
	Balance string     `json:"balance" example:"500"`
}

type EntryListResponse struct {
	Entries []*BalanceEntry `json:"entries"`
	Total   int             `json:"total"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
}

// SweepResult counts the stale stars-paid records closed by one sweep.
type SweepResult struct {
	StakesCancelled   int64 `json:"stakes_cancelled"`
	PurchasesRejected int64 `json:"purchases_rejected"`
	TicketsRejected   int64 `json:"tickets_rejected"`
}

type Notification struct {
	Topic   string     `json:"topic"`
	UserID  TelegramID `json:"user_id"`
	Subject string     `json:"subject"`
	Message string     `json:"message"`
}
