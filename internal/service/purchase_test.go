package service

import (
	"context"
	"errors"
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

var purchaseNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

type purchaseMocks struct {
	user     *mocks.UserRepository
	entry    *mocks.EntryRepository
	catalog  *mocks.CatalogRepository
	purchase *mocks.PurchaseRepository
	db       *mocks.DBManager
	notifier *svcmocks.Notifier
}

func newTestPurchaseService(t *testing.T) (*PurchaseServiceImpl, purchaseMocks) {
	m := purchaseMocks{
		user:     mocks.NewUserRepository(t),
		entry:    mocks.NewEntryRepository(t),
		catalog:  mocks.NewCatalogRepository(t),
		purchase: mocks.NewPurchaseRepository(t),
		db:       mocks.NewDBManager(t),
		notifier: svcmocks.NewNotifier(t),
	}
	s := NewPurchaseService(m.user, m.entry, m.catalog, m.purchase, m.db, m.notifier, zerolog.Nop()).(*PurchaseServiceImpl)
	s.now = func() time.Time { return purchaseNow }
	return s, m
}

func TestPurchase_PointsApprovedAndDebited(t *testing.T) {
	ctx := context.Background()
	service, m := newTestPurchaseService(t)

	runInTx(m.db, ctx)
	m.catalog.On("GetService", ctx, int64(2), mock.Anything).Return(&model.Service{
		ID: 2, Name: "Shell Club monthly", Kind: model.ServiceSubscription, Price: decimal.NewFromInt(1000), DurationDays: 30,
	}, nil)
	m.purchase.On("InsertPurchase", ctx, mock.MatchedBy(func(p *model.Purchase) bool {
		return p.Status == model.PurchaseApproved && p.ApprovedAt != nil && p.ApprovedAt.Equal(purchaseNow) &&
			p.Type == model.TransactionSpend && p.Amount.Equal(decimal.NewFromInt(1000))
	}), mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Purchase).ID = 5
	}).Return(nil)
	m.user.On("GetUserForUpdate", ctx, model.TelegramID(42), mock.Anything).Return(&model.User{
		TelegramID: 42, Points: decimal.NewFromInt(1500),
	}, nil)
	m.user.On("UpdatePoints", ctx, model.TelegramID(42), decEq(500), mock.Anything).Return(nil)
	m.entry.On("InsertEntry", ctx, mock.MatchedBy(func(e *model.BalanceEntry) bool {
		return e.Reason == model.ReasonPurchase && e.Reference == "purchase:5"
	}), mock.Anything).Return(nil)

	purchase, err := service.Purchase(ctx, &model.PurchaseRequest{UserID: 42, ServiceID: 2, PaymentType: "POINTS"})

	require.NoError(t, err)
	assert.Equal(t, int64(5), purchase.ID)
	assert.Equal(t, model.PurchaseApproved, purchase.Status)
}

func TestPurchase_InsufficientBalanceLeavesBalance(t *testing.T) {
	ctx := context.Background()
	service, m := newTestPurchaseService(t)

	runInTx(m.db, ctx)
	m.catalog.On("GetService", ctx, int64(2), mock.Anything).Return(&model.Service{
		ID: 2, Kind: model.ServiceOneOff, Price: decimal.NewFromInt(1000),
	}, nil)
	m.purchase.On("InsertPurchase", ctx, mock.Anything, mock.Anything).Return(nil)
	m.user.On("GetUserForUpdate", ctx, model.TelegramID(42), mock.Anything).Return(&model.User{
		TelegramID: 42, Points: decimal.NewFromInt(500),
	}, nil)

	purchase, err := service.Purchase(ctx, &model.PurchaseRequest{UserID: 42, ServiceID: 2, PaymentType: "POINTS"})

	assert.Nil(t, purchase)
	assert.ErrorIs(t, err, model.ErrInsufficientBalance)
	m.user.AssertNotCalled(t, "UpdatePoints", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchase_StarsPendingNotifies(t *testing.T) {
	ctx := context.Background()
	service, m := newTestPurchaseService(t)

	runInTx(m.db, ctx)
	m.catalog.On("GetService", ctx, int64(3), mock.Anything).Return(&model.Service{
		ID: 3, Name: "Profile boost", Kind: model.ServiceOneOff, Price: decimal.NewFromInt(2500),
	}, nil)
	m.purchase.On("InsertPurchase", ctx, mock.MatchedBy(func(p *model.Purchase) bool {
		return p.Status == model.PurchasePending && p.ApprovedAt == nil && p.PaymentType == model.PaymentStars
	}), mock.Anything).Return(nil)
	m.notifier.On("Notify", ctx, mock.MatchedBy(func(n model.Notification) bool {
		return n.Topic == "purchase" && n.UserID == 42
	})).Return(errors.New("telegram down"))

	purchase, err := service.Purchase(ctx, &model.PurchaseRequest{UserID: 42, ServiceID: 3, PaymentType: "stars"})

	// the notifier failure is logged, never returned
	require.NoError(t, err)
	assert.Equal(t, model.PurchasePending, purchase.Status)
}

func TestPurchase_ServiceNotFound(t *testing.T) {
	ctx := context.Background()
	service, m := newTestPurchaseService(t)

	runInTx(m.db, ctx)
	m.catalog.On("GetService", ctx, int64(99), mock.Anything).Return(nil, model.ErrServiceNotFound)

	_, err := service.Purchase(ctx, &model.PurchaseRequest{UserID: 42, ServiceID: 99, PaymentType: "POINTS"})

	assert.ErrorIs(t, err, model.ErrServiceNotFound)
}

func TestPurchase_InvalidPaymentType(t *testing.T) {
	service, _ := newTestPurchaseService(t)

	_, err := service.Purchase(context.Background(), &model.PurchaseRequest{UserID: 42, ServiceID: 1, PaymentType: "card"})

	assert.ErrorIs(t, err, model.ErrInvalidPaymentType)
}

func TestReviewPurchase(t *testing.T) {
	ctx := context.Background()
	service, m := newTestPurchaseService(t)

	runInTx(m.db, ctx)
	m.purchase.On("SetPurchaseStatus", ctx, int64(5), model.PurchaseRejected, (*string)(nil), mock.Anything).Return(true, nil)
	m.purchase.On("GetPurchase", ctx, int64(5), mock.Anything).Return(&model.Purchase{ID: 5, Status: model.PurchaseRejected}, nil)

	purchase, err := service.ReviewPurchase(ctx, 5, false)

	require.NoError(t, err)
	assert.Equal(t, model.PurchaseRejected, purchase.Status)
}

func TestReviewPurchase_AlreadyDecided(t *testing.T) {
	ctx := context.Background()
	service, m := newTestPurchaseService(t)

	runInTx(m.db, ctx)
	m.purchase.On("SetPurchaseStatus", ctx, int64(5), model.PurchaseApproved, (*string)(nil), mock.Anything).Return(false, nil)
	m.purchase.On("GetPurchase", ctx, int64(5), mock.Anything).Return(&model.Purchase{ID: 5, Status: model.PurchaseRejected}, nil)

	_, err := service.ReviewPurchase(ctx, 5, true)

	assert.ErrorIs(t, err, model.ErrAlreadyProcessed)
}

func TestGetSubscriptionStatus(t *testing.T) {
	ctx := context.Background()
	service, m := newTestPurchaseService(t)

	approvedAt := purchaseNow.AddDate(0, 0, -10)
	m.user.On("GetUser", ctx, model.TelegramID(42)).Return(&model.User{TelegramID: 42}, nil)
	m.purchase.On("LatestApprovedSubscription", ctx, model.TelegramID(42)).Return(
		&model.Purchase{ID: 5, ApprovedAt: &approvedAt},
		&model.Service{ID: 2, Kind: model.ServiceSubscription, DurationDays: 30},
		nil,
	)

	status, err := service.GetSubscriptionStatus(ctx, 42)

	require.NoError(t, err)
	assert.True(t, status.Active)
	require.NotNil(t, status.ExpiresAt)
	assert.Equal(t, approvedAt.AddDate(0, 0, 30), *status.ExpiresAt)
}

func TestSubscriptionStatusAt(t *testing.T) {
	approvedAt := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	purchase := &model.Purchase{ApprovedAt: &approvedAt}
	tier := &model.Service{ID: 2, DurationDays: 30}
	expires := approvedAt.AddDate(0, 0, 30)

	tests := []struct {
		name       string
		purchase   *model.Purchase
		tier       *model.Service
		now        time.Time
		wantActive bool
		wantExpiry *time.Time
	}{
		{"never subscribed", nil, nil, approvedAt, false, nil},
		{"within term", purchase, tier, approvedAt.AddDate(0, 0, 29), true, &expires},
		{"at expiry", purchase, tier, expires, false, &expires},
		{"lapsed", purchase, tier, expires.Add(time.Hour), false, &expires},
		{"not yet approved", &model.Purchase{}, tier, approvedAt, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := SubscriptionStatusAt(42, tt.purchase, tt.tier, tt.now)
			assert.Equal(t, tt.wantActive, status.Active)
			assert.Equal(t, tt.wantExpiry, status.ExpiresAt)
		})
	}
}
