package service

import (
	"context"
	"errors"
	"fmt"
	"shells-ledger/internal/config"
	"shells-ledger/internal/model"
	"shells-ledger/internal/repository"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const maxTicketIDAttempts = 3

// NewTicketID returns an identifier like TKT-20261017-4F3A9C1B
func NewTicketID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "TKT-" + now.UTC().Format("20060102") + "-" + suffix
}

type TicketServiceImpl struct {
	balances    balanceWriter
	userRepo    repository.UserRepository
	catalogRepo repository.CatalogRepository
	ticketRepo  repository.TicketRepository
	dbManager   repository.DBManager
	notifier    Notifier
	policy      config.LedgerConfig
	now         func() time.Time
	newID       func(time.Time) string
	logger      zerolog.Logger
}

func NewTicketService(
	userRepo repository.UserRepository,
	entryRepo repository.EntryRepository,
	catalogRepo repository.CatalogRepository,
	ticketRepo repository.TicketRepository,
	dbManager repository.DBManager,
	notifier Notifier,
	policy config.LedgerConfig,
	logger zerolog.Logger,
) TicketService {
	return &TicketServiceImpl{
		balances:    balanceWriter{userRepo: userRepo, entryRepo: entryRepo},
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
		ticketRepo:  ticketRepo,
		dbManager:   dbManager,
		notifier:    notifier,
		policy:      policy,
		now:         time.Now,
		newID:       NewTicketID,
		logger:      logger,
	}
}

// PurchaseTicket issues a ticket. Points tickets are debited and marked purchased atomically;
// stars tickets stay pending until the provider confirms.
func (s *TicketServiceImpl) PurchaseTicket(ctx context.Context, req *model.TicketRequest) (*model.Ticket, error) {
	userID, err := model.NewTelegramID(req.UserID)
	if err != nil {
		return nil, err
	}
	method, err := model.ParsePaymentType(req.PaymentMethod)
	if err != nil {
		return nil, err
	}
	if req.Quantity < 1 || req.Quantity > s.policy.TicketMaxQuantity {
		return nil, fmt.Errorf("%w: quantity must be between 1 and %d", model.ErrInvalidQuantity, s.policy.TicketMaxQuantity)
	}

	var ticket *model.Ticket
	for attempt := 1; attempt <= maxTicketIDAttempts; attempt++ {
		ticket, err = s.issue(ctx, userID, strings.TrimSpace(req.TicketType), req.Quantity, method)
		if !errors.Is(err, model.ErrDuplicateTicketID) {
			break
		}
		s.logger.Warn().Int("attempt", attempt).Msg("ticket id collision, regenerating")
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("ticket_id", ticket.TicketID).
		Int64("user_id", userID.Int64()).
		Str("ticket_type", ticket.TicketType).
		Int("quantity", ticket.Quantity).
		Str("total_cost", ticket.TotalCost.String()).
		Str("status", string(ticket.Status)).
		Msg("ticket issued")

	msg := "stars ticket awaiting payment"
	if ticket.Status == model.TicketPurchased {
		msg = "ticket awaiting approval"
	}
	notifyBestEffort(ctx, s.notifier, s.logger, model.Notification{
		Topic:   "ticket",
		UserID:  userID,
		Subject: ticket.TicketID,
		Message: msg,
	})
	return ticket, nil
}

func (s *TicketServiceImpl) issue(ctx context.Context, userID model.TelegramID, ticketType string, quantity int, method model.PaymentType) (*model.Ticket, error) {
	var ticket *model.Ticket
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		tt, err := s.catalogRepo.GetTicketType(ctx, ticketType, tx)
		if err != nil {
			return fmt.Errorf("get ticket type: %w", err)
		}

		ticket = &model.Ticket{
			TicketID:      s.newID(s.now()),
			UserID:        userID,
			TicketType:    tt.Code,
			Quantity:      quantity,
			PaymentMethod: method,
			TotalCost:     tt.Price.Mul(decimal.NewFromInt(int64(quantity))),
			Status:        model.TicketPending,
		}
		if method == model.PaymentPoints {
			ticket.Status = model.TicketPurchased
		}

		if err := s.ticketRepo.InsertTicket(ctx, ticket, tx); err != nil {
			return fmt.Errorf("insert ticket: %w", err)
		}

		if method == model.PaymentPoints {
			_, err = s.balances.apply(ctx, tx, userID, ticket.TotalCost.Neg(), model.ReasonTicket, ticket.TicketID)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ticket, nil
}

// ListUserTickets returns the user's tickets, most recent first
func (s *TicketServiceImpl) ListUserTickets(ctx context.Context, userID model.TelegramID) ([]*model.Ticket, error) {
	if _, err := s.userRepo.GetUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	tickets, err := s.ticketRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

// ApproveTicket moves a purchased ticket to approved
func (s *TicketServiceImpl) ApproveTicket(ctx context.Context, ticketID string) (*model.Ticket, error) {
	approved, err := s.ticketRepo.TransitionTicket(ctx, ticketID, model.TicketPurchased, model.TicketApproved, nil)
	if err != nil {
		return nil, fmt.Errorf("approve ticket: %w", err)
	}

	ticket, err := s.ticketRepo.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	if !approved {
		if ticket.Status == model.TicketApproved {
			return nil, fmt.Errorf("%w: ticket %s is already approved", model.ErrAlreadyProcessed, ticketID)
		}
		return nil, fmt.Errorf("%w: ticket %s is %s", model.ErrInvalidStatus, ticketID, ticket.Status)
	}

	s.logger.Info().Str("ticket_id", ticketID).Msg("ticket approved")
	return ticket, nil
}
