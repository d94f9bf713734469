package model

import "errors"

// Error kinds. Every ledger error unwraps to exactly one of these.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInvalidInput       = errors.New("invalid input")
	ErrExternalDependency = errors.New("external dependency failure")
	ErrInternal           = errors.New("internal error")
)

var (
	ErrUserNotFound       = newKindError(ErrNotFound, "user not found")
	ErrCodeNotFound       = newKindError(ErrNotFound, "code not found")
	ErrEventNotFound      = newKindError(ErrNotFound, "event not found")
	ErrServiceNotFound    = newKindError(ErrNotFound, "service not found")
	ErrTicketNotFound     = newKindError(ErrNotFound, "ticket not found")
	ErrTicketTypeNotFound = newKindError(ErrNotFound, "ticket type not found")
	ErrStakeNotFound      = newKindError(ErrNotFound, "stake not found")
	ErrPurchaseNotFound   = newKindError(ErrNotFound, "purchase not found")

	ErrAlreadyRedeemed   = newKindError(ErrConflict, "code already redeemed")
	ErrBatchMismatch     = newKindError(ErrConflict, "code does not belong to batch")
	ErrAlreadyReferred   = newKindError(ErrConflict, "user already has a referrer")
	ErrWelcomeClaimed    = newKindError(ErrConflict, "welcome bonus already claimed")
	ErrEventClosed       = newKindError(ErrConflict, "event is not open for staking")
	ErrEventTerminal     = newKindError(ErrConflict, "event already in a terminal state")
	ErrAlreadyProcessed  = newKindError(ErrConflict, "record already left pending state")
	ErrPaymentMismatch   = newKindError(ErrConflict, "payment confirmed with a different charge")
	ErrDuplicateTicketID = newKindError(ErrConflict, "ticket id already exists")

	ErrInsufficientBalance = newKindError(ErrInsufficientFunds, "insufficient balance")

	ErrInvalidAmount      = newKindError(ErrInvalidInput, "invalid amount")
	ErrInvalidTelegramID  = newKindError(ErrInvalidInput, "invalid telegram id")
	ErrInvalidStakeType   = newKindError(ErrInvalidInput, "invalid stake type")
	ErrInvalidPaymentType = newKindError(ErrInvalidInput, "invalid payment type")
	ErrInvalidQuantity    = newKindError(ErrInvalidInput, "invalid quantity")
	ErrInvalidStatus      = newKindError(ErrInvalidInput, "invalid status")
	ErrSelfReferral       = newKindError(ErrInvalidInput, "user cannot refer themselves")

	ErrNotifierUnavailable = newKindError(ErrExternalDependency, "notifier unavailable")

	ErrTxRetriesExhausted = newKindError(ErrInternal, "transaction retries exhausted")
)

type kindError struct {
	kind error
	msg  string
}

func newKindError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// Kind is the machine-readable error category returned to callers.
type Kind string

const (
	KindNotFound           Kind = "NOT_FOUND"
	KindConflict           Kind = "CONFLICT"
	KindInsufficientFunds  Kind = "INSUFFICIENT_FUNDS"
	KindInvalidInput       Kind = "INVALID_INPUT"
	KindExternalDependency Kind = "EXTERNAL_DEPENDENCY_FAILURE"
	KindInternal           Kind = "INTERNAL"
)

// KindOf classifies err. Anything unclassified is internal.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrInsufficientFunds):
		return KindInsufficientFunds
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrExternalDependency):
		return KindExternalDependency
	default:
		return KindInternal
	}
}
