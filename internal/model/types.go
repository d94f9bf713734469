package model

import (
	"strconv"
	"strings"
)

// TelegramID is the external identity of a user. It is the only user key in the ledger.
type TelegramID int64

// ParseTelegramID is the single string boundary for user identities.
func ParseTelegramID(s string) (TelegramID, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, ErrInvalidTelegramID
	}
	return NewTelegramID(id)
}

func NewTelegramID(id int64) (TelegramID, error) {
	if id <= 0 {
		return 0, ErrInvalidTelegramID
	}
	return TelegramID(id), nil
}

func (id TelegramID) Int64() int64 {
	return int64(id)
}

func (id TelegramID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// StakeType is the currency a stake draws from.
type StakeType string

const (
	StakePoints StakeType = "POINTS"
	StakeStars  StakeType = "STARS"
)

func ParseStakeType(s string) (StakeType, error) {
	switch StakeType(strings.ToUpper(s)) {
	case StakePoints:
		return StakePoints, nil
	case StakeStars:
		return StakeStars, nil
	default:
		return "", ErrInvalidStakeType
	}
}

func (s StakeType) String() string {
	return string(s)
}

type StakeStatus string

const (
	StakePending   StakeStatus = "PENDING"
	StakeActive    StakeStatus = "ACTIVE"
	StakeSettled   StakeStatus = "SETTLED"
	StakeRefunded  StakeStatus = "REFUNDED"
	StakeCancelled StakeStatus = "CANCELLED"
)

type EventStatus string

const (
	EventScheduled EventStatus = "SCHEDULED"
	EventCompleted EventStatus = "COMPLETED"
	EventCancelled EventStatus = "CANCELLED"
	EventDraw      EventStatus = "DRAW"
	EventExpired   EventStatus = "EXPIRED"
)

// IsTerminal reports whether no further transition is allowed.
func (s EventStatus) IsTerminal() bool {
	return s != EventScheduled
}

// ParseResolution accepts only the administrative terminal states.
func ParseResolution(s string) (EventStatus, error) {
	switch EventStatus(strings.ToUpper(s)) {
	case EventCompleted:
		return EventCompleted, nil
	case EventCancelled:
		return EventCancelled, nil
	case EventDraw:
		return EventDraw, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s EventStatus) String() string {
	return string(s)
}

// PaymentType selects between the internal balance and the external stars provider.
type PaymentType string

const (
	PaymentPoints PaymentType = "POINTS"
	PaymentStars  PaymentType = "STARS"
)

func ParsePaymentType(s string) (PaymentType, error) {
	switch PaymentType(strings.ToUpper(s)) {
	case PaymentPoints:
		return PaymentPoints, nil
	case PaymentStars:
		return PaymentStars, nil
	default:
		return "", ErrInvalidPaymentType
	}
}

func (p PaymentType) String() string {
	return string(p)
}

type PurchaseStatus string

const (
	PurchasePending  PurchaseStatus = "PENDING"
	PurchaseApproved PurchaseStatus = "APPROVED"
	PurchaseRejected PurchaseStatus = "REJECTED"
)

type TransactionType string

const (
	TransactionEarn  TransactionType = "EARN"
	TransactionSpend TransactionType = "SPEND"
)

type TicketStatus string

const (
	TicketPending   TicketStatus = "pending"
	TicketPurchased TicketStatus = "purchased"
	TicketApproved  TicketStatus = "approved"
	TicketRejected  TicketStatus = "rejected"
)

type ServiceKind string

const (
	ServiceOneOff       ServiceKind = "SERVICE"
	ServiceSubscription ServiceKind = "SUBSCRIPTION"
)

// EntryReason tags every balance entry with the operation that produced it.
type EntryReason string

const (
	ReasonAdjust        EntryReason = "adjust"
	ReasonCodeRedeem    EntryReason = "code_redeem"
	ReasonStake         EntryReason = "stake"
	ReasonPurchase      EntryReason = "purchase"
	ReasonTicket        EntryReason = "ticket"
	ReasonWelcome       EntryReason = "welcome"
	ReasonTaps          EntryReason = "taps"
	ReasonReferralBonus EntryReason = "referral_bonus"
)

// PaymentTarget is the kind of record a payment confirmation reconciles.
type PaymentTarget string

const (
	TargetStake    PaymentTarget = "stake"
	TargetPurchase PaymentTarget = "purchase"
	TargetTicket   PaymentTarget = "ticket"
)

func ParsePaymentTarget(s string) (PaymentTarget, error) {
	switch PaymentTarget(strings.ToLower(s)) {
	case TargetStake:
		return TargetStake, nil
	case TargetPurchase:
		return TargetPurchase, nil
	case TargetTicket:
		return TargetTicket, nil
	default:
		return "", ErrInvalidStatus
	}
}
