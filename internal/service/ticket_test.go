package service

import (
	"context"
	"regexp"
	"shells-ledger/internal/model"
	mocks "shells-ledger/mocks/repository"
	svcmocks "shells-ledger/mocks/service"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ticketMocks struct {
	user     *mocks.UserRepository
	entry    *mocks.EntryRepository
	catalog  *mocks.CatalogRepository
	ticket   *mocks.TicketRepository
	db       *mocks.DBManager
	notifier *svcmocks.Notifier
}

func newTestTicketService(t *testing.T, ids ...string) (*TicketServiceImpl, ticketMocks) {
	m := ticketMocks{
		user:     mocks.NewUserRepository(t),
		entry:    mocks.NewEntryRepository(t),
		catalog:  mocks.NewCatalogRepository(t),
		ticket:   mocks.NewTicketRepository(t),
		db:       mocks.NewDBManager(t),
		notifier: svcmocks.NewNotifier(t),
	}
	s := NewTicketService(m.user, m.entry, m.catalog, m.ticket, m.db, m.notifier, testPolicy, zerolog.Nop()).(*TicketServiceImpl)
	next := 0
	s.newID = func(time.Time) string {
		id := ids[next]
		next++
		return id
	}
	return s, m
}

func TestNewTicketID_Format(t *testing.T) {
	now := time.Date(2026, 10, 17, 23, 30, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^TKT-20261017-[0-9A-F]{8}$`)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewTicketID(now)
		assert.Regexp(t, pattern, id)
		seen[id] = true
	}
	assert.Len(t, seen, 100)
}

func TestPurchaseTicket_Points(t *testing.T) {
	ctx := context.Background()
	service, m := newTestTicketService(t, "TKT-20261017-AAAAAAAA")

	runInTx(m.db, ctx)
	m.catalog.On("GetTicketType", ctx, "vip", mock.Anything).Return(&model.TicketType{
		Code: "vip", Name: "VIP ringside", Price: decimal.NewFromInt(5000),
	}, nil)
	m.ticket.On("InsertTicket", ctx, mock.MatchedBy(func(tk *model.Ticket) bool {
		return tk.TicketID == "TKT-20261017-AAAAAAAA" && tk.Status == model.TicketPurchased &&
			tk.Quantity == 2 && tk.TotalCost.Equal(decimal.NewFromInt(10000))
	}), mock.Anything).Return(nil)
	m.user.On("GetUserForUpdate", ctx, model.TelegramID(42), mock.Anything).Return(&model.User{
		TelegramID: 42, Points: decimal.NewFromInt(12000),
	}, nil)
	m.user.On("UpdatePoints", ctx, model.TelegramID(42), decEq(2000), mock.Anything).Return(nil)
	m.entry.On("InsertEntry", ctx, mock.MatchedBy(func(e *model.BalanceEntry) bool {
		return e.Reason == model.ReasonTicket && e.Reference == "TKT-20261017-AAAAAAAA"
	}), mock.Anything).Return(nil)
	m.notifier.On("Notify", ctx, mock.Anything).Return(nil)

	ticket, err := service.PurchaseTicket(ctx, &model.TicketRequest{UserID: 42, TicketType: "vip", Quantity: 2, PaymentMethod: "POINTS"})

	require.NoError(t, err)
	assert.Equal(t, model.TicketPurchased, ticket.Status)
	assert.Equal(t, "10000", ticket.TotalCost.String())
}

func TestPurchaseTicket_StarsPending(t *testing.T) {
	ctx := context.Background()
	service, m := newTestTicketService(t, "TKT-20261017-BBBBBBBB")

	runInTx(m.db, ctx)
	m.catalog.On("GetTicketType", ctx, "standard", mock.Anything).Return(&model.TicketType{
		Code: "standard", Price: decimal.NewFromInt(1000),
	}, nil)
	m.ticket.On("InsertTicket", ctx, mock.MatchedBy(func(tk *model.Ticket) bool {
		return tk.Status == model.TicketPending && tk.PaymentMethod == model.PaymentStars
	}), mock.Anything).Return(nil)
	m.notifier.On("Notify", ctx, mock.MatchedBy(func(n model.Notification) bool {
		return n.Subject == "TKT-20261017-BBBBBBBB"
	})).Return(nil)

	ticket, err := service.PurchaseTicket(ctx, &model.TicketRequest{UserID: 42, TicketType: "standard", Quantity: 1, PaymentMethod: "STARS"})

	require.NoError(t, err)
	assert.Equal(t, model.TicketPending, ticket.Status)
}

func TestPurchaseTicket_RetriesOnIDCollision(t *testing.T) {
	ctx := context.Background()
	service, m := newTestTicketService(t, "TKT-20261017-DUPDUPDU", "TKT-20261017-FRESH000")

	runInTx(m.db, ctx)
	m.catalog.On("GetTicketType", ctx, "standard", mock.Anything).Return(&model.TicketType{
		Code: "standard", Price: decimal.NewFromInt(1000),
	}, nil)
	m.ticket.On("InsertTicket", ctx, mock.MatchedBy(func(tk *model.Ticket) bool {
		return tk.TicketID == "TKT-20261017-DUPDUPDU"
	}), mock.Anything).Return(model.ErrDuplicateTicketID).Once()
	m.ticket.On("InsertTicket", ctx, mock.MatchedBy(func(tk *model.Ticket) bool {
		return tk.TicketID == "TKT-20261017-FRESH000"
	}), mock.Anything).Return(nil).Once()
	m.notifier.On("Notify", ctx, mock.Anything).Return(nil)

	ticket, err := service.PurchaseTicket(ctx, &model.TicketRequest{UserID: 42, TicketType: "standard", Quantity: 1, PaymentMethod: "STARS"})

	require.NoError(t, err)
	assert.Equal(t, "TKT-20261017-FRESH000", ticket.TicketID)
}

func TestPurchaseTicket_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	service, m := newTestTicketService(t, "TKT-20261017-CCCCCCCC")

	runInTx(m.db, ctx)
	m.catalog.On("GetTicketType", ctx, "vip", mock.Anything).Return(&model.TicketType{
		Code: "vip", Price: decimal.NewFromInt(5000),
	}, nil)
	m.ticket.On("InsertTicket", ctx, mock.Anything, mock.Anything).Return(nil)
	m.user.On("GetUserForUpdate", ctx, model.TelegramID(42), mock.Anything).Return(&model.User{
		TelegramID: 42, Points: decimal.NewFromInt(4999),
	}, nil)

	ticket, err := service.PurchaseTicket(ctx, &model.TicketRequest{UserID: 42, TicketType: "vip", Quantity: 1, PaymentMethod: "POINTS"})

	assert.Nil(t, ticket)
	assert.ErrorIs(t, err, model.ErrInsufficientBalance)
}

func TestPurchaseTicket_InvalidQuantity(t *testing.T) {
	service, _ := newTestTicketService(t)

	for _, q := range []int{0, -1, 11} {
		_, err := service.PurchaseTicket(context.Background(), &model.TicketRequest{UserID: 42, TicketType: "vip", Quantity: q, PaymentMethod: "POINTS"})
		assert.ErrorIs(t, err, model.ErrInvalidQuantity)
	}
}

func TestListUserTickets(t *testing.T) {
	ctx := context.Background()
	service, m := newTestTicketService(t)

	m.user.On("GetUser", ctx, model.TelegramID(42)).Return(&model.User{TelegramID: 42}, nil)
	m.ticket.On("ListByUser", ctx, model.TelegramID(42)).Return([]*model.Ticket{
		{TicketID: "TKT-20261017-00000002"},
		{TicketID: "TKT-20261016-00000001"},
	}, nil)

	tickets, err := service.ListUserTickets(ctx, 42)

	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, "TKT-20261017-00000002", tickets[0].TicketID)
}

func TestApproveTicket(t *testing.T) {
	ctx := context.Background()
	service, m := newTestTicketService(t)

	m.ticket.On("TransitionTicket", ctx, "TKT-1", model.TicketPurchased, model.TicketApproved, (*string)(nil)).Return(true, nil)
	m.ticket.On("GetTicket", ctx, "TKT-1").Return(&model.Ticket{TicketID: "TKT-1", Status: model.TicketApproved}, nil)

	ticket, err := service.ApproveTicket(ctx, "TKT-1")

	require.NoError(t, err)
	assert.Equal(t, model.TicketApproved, ticket.Status)
}

func TestApproveTicket_Pending(t *testing.T) {
	ctx := context.Background()
	service, m := newTestTicketService(t)

	m.ticket.On("TransitionTicket", ctx, "TKT-2", model.TicketPurchased, model.TicketApproved, (*string)(nil)).Return(false, nil)
	m.ticket.On("GetTicket", ctx, "TKT-2").Return(&model.Ticket{TicketID: "TKT-2", Status: model.TicketPending}, nil)

	_, err := service.ApproveTicket(ctx, "TKT-2")

	assert.ErrorIs(t, err, model.ErrInvalidStatus)
}
