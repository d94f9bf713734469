package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"shells-ledger/internal/auth"
	"shells-ledger/internal/config"
	"shells-ledger/internal/database"
	"shells-ledger/internal/handler"
	"shells-ledger/internal/model"
	"shells-ledger/internal/notifier"
	"shells-ledger/internal/repository/postgres"
	"shells-ledger/internal/service"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPool *pgxpool.Pool

const (
	// test users live in their own id range so runs never touch real data
	baseUserID    = int64(9_100_000_000)
	webhookSecret = "e2e-secret"
	adminPassword = "e2e-password"
)

// Runs as first function
func TestMain(m *testing.M) {
	if os.Getenv("SKIP_E2E") != "" {
		fmt.Println("Skipping E2E tests")
		os.Exit(0)
	}

	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if _, err := database.MigrateUp(cfg.Database); err != nil {
		fmt.Printf("failed to migrate database, skipping E2E tests: %v\n", err)
		os.Exit(0)
	}

	pool, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		fmt.Printf("failed to connect to database: %v\n", err)
		os.Exit(1)
	}

	testPool = pool
	code := m.Run()
	pool.Close()
	os.Exit(code)
}

type e2e struct {
	router *gin.Engine
	auth   *auth.Authenticator
	events service.EventService
	users  []model.TelegramID
}

func setupE2E(t *testing.T, userCount int, balance int64) *e2e {
	if testPool == nil {
		t.Skip("Database connection not available")
	}
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	users := make([]model.TelegramID, userCount)
	ids := make([]int64, userCount)
	for i := range users {
		ids[i] = baseUserID + int64(i)
		users[i] = model.TelegramID(ids[i])
	}
	cleanupUsers(t, ids)
	t.Cleanup(func() { cleanupUsers(t, ids) })

	for _, id := range ids {
		_, err := testPool.Exec(ctx, `INSERT INTO users (telegram_id, points) VALUES ($1, $2)`, id, balance)
		require.NoError(t, err)
	}

	logger := zerolog.Nop()
	policy := config.LedgerConfig{
		RewardMin: 1000, RewardMax: 1000000, WelcomeBonus: 500, TapMaxPerCall: 500, TicketMaxQuantity: 10,
	}

	userRepo := postgres.NewUserRepository(testPool)
	entryRepo := postgres.NewEntryRepository(testPool)
	eventRepo := postgres.NewEventRepository(testPool)
	stakeRepo := postgres.NewStakeRepository(testPool)
	catalogRepo := postgres.NewCatalogRepository(testPool)
	purchaseRepo := postgres.NewPurchaseRepository(testPool)
	ticketRepo := postgres.NewTicketRepository(testPool)
	txManager := postgres.NewTransactionManager(testPool, 5, logger)
	alerts := notifier.NewLogNotifier(logger)

	events := service.NewEventService(eventRepo, logger)
	svcs := handler.Services{
		Ledger:     service.NewLedgerService(userRepo, entryRepo, txManager, policy, logger),
		Redemption: service.NewRedemptionService(userRepo, entryRepo, postgres.NewCodeRepository(testPool), txManager, service.NewUniformReward(policy.RewardMin, policy.RewardMax), logger),
		Events:     events,
		Stakes:     service.NewStakeService(userRepo, entryRepo, eventRepo, stakeRepo, txManager, logger),
		Purchases:  service.NewPurchaseService(userRepo, entryRepo, catalogRepo, purchaseRepo, txManager, alerts, logger),
		Tickets:    service.NewTicketService(userRepo, entryRepo, catalogRepo, ticketRepo, txManager, alerts, policy, logger),
		Referrals:  service.NewReferralService(userRepo, entryRepo, postgres.NewReferralRepository(testPool), txManager, policy, logger),
		Payments:   service.NewPaymentService(stakeRepo, purchaseRepo, ticketRepo, txManager, 24*time.Hour, logger),
	}

	hash, err := auth.HashPassword(adminPassword)
	require.NoError(t, err)
	authenticator := auth.NewAuthenticator(config.AuthConfig{
		JWTSecret: "e2e-jwt", TokenTTL: time.Hour, AdminUsername: "admin", AdminPasswordHash: hash,
	})

	h := handler.NewHandler(svcs, authenticator, webhookSecret, handler.NewRateLimiter(nil, 0, time.Minute), logger)
	return &e2e{router: h.SetupRoutes(), auth: authenticator, events: events, users: users}
}

func cleanupUsers(t *testing.T, ids []int64) {
	ctx := context.Background()
	for _, q := range []string{
		`DELETE FROM referrals WHERE referred_id = ANY($1) OR referrer_id = ANY($1)`,
		`DELETE FROM balance_entries WHERE user_id = ANY($1)`,
		`DELETE FROM tickets WHERE user_id = ANY($1)`,
		`DELETE FROM point_transactions WHERE user_id = ANY($1)`,
		`DELETE FROM stakes WHERE user_id = ANY($1)`,
		`DELETE FROM generated_codes WHERE redeemed_by = ANY($1)`,
		`DELETE FROM users WHERE telegram_id = ANY($1)`,
	} {
		_, err := testPool.Exec(ctx, q, ids)
		require.NoError(t, err)
	}
}

func (e *e2e) do(method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *e2e) admin(t *testing.T) map[string]string {
	resp, err := e.auth.Login("admin", adminPassword)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + resp.Token}
}

func balanceOf(t *testing.T, id model.TelegramID) decimal.Decimal {
	var points decimal.Decimal
	err := testPool.QueryRow(context.Background(), `SELECT points FROM users WHERE telegram_id = $1`, id.Int64()).Scan(&points)
	require.NoError(t, err)
	return points
}

type response struct {
	status int
	body   []byte
}

// concurrently fires n requests built by mk, all released by one barrier
func (e *e2e) concurrently(n int, mk func(i int) *http.Request) []response {
	barrier := make(chan struct{})
	results := make(chan response, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		req := mk(i)
		go func() {
			defer wg.Done()
			<-barrier

			w := httptest.NewRecorder()
			e.router.ServeHTTP(w, req)
			results <- response{status: w.Code, body: w.Body.Bytes()}
		}()
	}

	close(barrier)
	wg.Wait()
	close(results)

	var out []response
	for r := range results {
		out = append(out, r)
	}
	return out
}

func jsonRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	raw, _ := json.Marshal(body)
	req, _ := http.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

func errorCode(body []byte) string {
	var resp model.ErrorResponse
	json.Unmarshal(body, &resp)
	return resp.Code
}

// Test_ConcurrentRedemption_SingleWinner verifies:
// - N users race to redeem the same code
// - Exactly one succeeds, the rest get ALREADY_REDEEMED
// - Only the winner's balance changes, by exactly the reward
func Test_ConcurrentRedemption_SingleWinner(t *testing.T) {
	const numUsers = 10
	e := setupE2E(t, numUsers, 500)
	ctx := context.Background()

	code := "E2E-" + uuid.NewString()[:8]
	_, err := testPool.Exec(ctx, `INSERT INTO generated_codes (code, batch_id, book_id) VALUES ($1, 'B1', 'BOOK1')`, code)
	require.NoError(t, err)
	t.Cleanup(func() { testPool.Exec(ctx, `DELETE FROM generated_codes WHERE code = $1`, code) })

	results := e.concurrently(numUsers, func(i int) *http.Request {
		return jsonRequest(http.MethodPost, "/api/v1/codes/redeem", model.RedeemCodeRequest{
			Code: code, BatchID: "B1", UserID: e.users[i].Int64(),
		}, nil)
	})

	var winners, losers int
	var reward decimal.Decimal
	for _, r := range results {
		switch r.status {
		case http.StatusOK:
			winners++
			var resp model.RedeemCodeResponse
			require.NoError(t, json.Unmarshal(r.body, &resp))
			reward = decimal.RequireFromString(resp.Reward)
		case http.StatusConflict:
			losers++
			assert.Equal(t, "ALREADY_REDEEMED", errorCode(r.body))
		default:
			t.Errorf("unexpected response: status=%d body=%s", r.status, r.body)
		}
	}

	assert.Equal(t, 1, winners)
	assert.Equal(t, numUsers-1, losers)
	assert.True(t, reward.GreaterThanOrEqual(decimal.NewFromInt(1000)) && reward.LessThanOrEqual(decimal.NewFromInt(1000000)))

	total := decimal.Zero
	changed := 0
	for _, u := range e.users {
		b := balanceOf(t, u)
		total = total.Add(b)
		if !b.Equal(decimal.NewFromInt(500)) {
			changed++
		}
	}
	assert.Equal(t, 1, changed, "only the winner's balance changes")
	assert.True(t, total.Equal(decimal.NewFromInt(500*numUsers).Add(reward)))
}

// Test_ConcurrentDebits_NeverNegative verifies:
// - 20 concurrent debits of 100 against a balance of 500
// - Exactly 5 succeed and the balance ends at 0
func Test_ConcurrentDebits_NeverNegative(t *testing.T) {
	e := setupE2E(t, 1, 500)
	user := e.users[0]
	headers := e.admin(t)

	results := e.concurrently(20, func(int) *http.Request {
		return jsonRequest(http.MethodPost, fmt.Sprintf("/api/v1/users/%d/points", user), model.AdjustPointsRequest{Delta: "-100", Reason: "e2e"}, headers)
	})

	var ok, insufficient int
	for _, r := range results {
		switch r.status {
		case http.StatusOK:
			ok++
		case http.StatusBadRequest:
			insufficient++
			assert.Equal(t, "INSUFFICIENT_BALANCE", errorCode(r.body))
		default:
			t.Errorf("unexpected response: status=%d body=%s", r.status, r.body)
		}
	}

	assert.Equal(t, 5, ok)
	assert.Equal(t, 15, insufficient)
	assert.True(t, balanceOf(t, user).IsZero())

	var entries int
	err := testPool.QueryRow(context.Background(), `SELECT COUNT(*) FROM balance_entries WHERE user_id = $1`, user.Int64()).Scan(&entries)
	require.NoError(t, err)
	assert.Equal(t, 5, entries, "one audit entry per applied debit")
}

// Test_Purchase_InsufficientBalance verifies a 1000-priced purchase against 500 fails and changes nothing
func Test_Purchase_InsufficientBalance(t *testing.T) {
	e := setupE2E(t, 1, 500)
	ctx := context.Background()
	user := e.users[0]

	var serviceID int64
	err := testPool.QueryRow(ctx, `INSERT INTO services (name, kind, price) VALUES ('E2E service', 'SERVICE', 1000) RETURNING id`).Scan(&serviceID)
	require.NoError(t, err)
	t.Cleanup(func() {
		testPool.Exec(ctx, `DELETE FROM point_transactions WHERE service_id = $1`, serviceID)
		testPool.Exec(ctx, `DELETE FROM services WHERE id = $1`, serviceID)
	})

	w := e.do(http.MethodPost, "/api/v1/purchases", model.PurchaseRequest{UserID: user.Int64(), ServiceID: serviceID, PaymentType: "POINTS"}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INSUFFICIENT_BALANCE", errorCode(w.Body.Bytes()))
	assert.True(t, balanceOf(t, user).Equal(decimal.NewFromInt(500)))

	var count int
	require.NoError(t, testPool.QueryRow(ctx, `SELECT COUNT(*) FROM point_transactions WHERE user_id = $1`, user.Int64()).Scan(&count))
	assert.Zero(t, count, "failed purchase leaves no record")
}

// Test_ConcurrentSameUserSpends_AllSucceed verifies:
// - one user fires POINTS stakes and POINTS purchases at the same time, with enough balance for all of them
// - every call succeeds, none is lost to a lock conflict
// - the balance ends exactly at zero with one entry per spend
func Test_ConcurrentSameUserSpends_AllSucceed(t *testing.T) {
	const (
		numStakes    = 15
		numPurchases = 15
	)
	e := setupE2E(t, 1, 50*(numStakes+numPurchases))
	ctx := context.Background()
	user := e.users[0]
	eventID := createEvent(t, time.Now().Add(24*time.Hour))

	var serviceID int64
	err := testPool.QueryRow(ctx, `INSERT INTO services (name, kind, price) VALUES ('E2E spend', 'SERVICE', 50) RETURNING id`).Scan(&serviceID)
	require.NoError(t, err)
	t.Cleanup(func() {
		testPool.Exec(ctx, `DELETE FROM point_transactions WHERE service_id = $1`, serviceID)
		testPool.Exec(ctx, `DELETE FROM services WHERE id = $1`, serviceID)
	})

	results := e.concurrently(numStakes+numPurchases, func(i int) *http.Request {
		if i%2 == 0 {
			return jsonRequest(http.MethodPost, "/api/v1/stakes", model.PlaceStakeRequest{
				UserID: user.Int64(), EventID: eventID, ParticipantID: 3, Amount: "50", StakeType: "POINTS",
			}, nil)
		}
		return jsonRequest(http.MethodPost, "/api/v1/purchases", model.PurchaseRequest{
			UserID: user.Int64(), ServiceID: serviceID, PaymentType: "POINTS",
		}, nil)
	})
	for _, r := range results {
		require.Equal(t, http.StatusCreated, r.status, string(r.body))
	}

	assert.True(t, balanceOf(t, user).IsZero())

	var entries int
	err = testPool.QueryRow(ctx, `SELECT COUNT(*) FROM balance_entries WHERE user_id = $1`, user.Int64()).Scan(&entries)
	require.NoError(t, err)
	assert.Equal(t, numStakes+numPurchases, entries)

	w := e.do(http.MethodGet, fmt.Sprintf("/api/v1/events/%d/participants/3/total?stake_type=POINTS", eventID), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp model.TotalStakedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, fmt.Sprint(50*numStakes), resp.Total)
}

func createEvent(t *testing.T, fightDate time.Time) int64 {
	ctx := context.Background()
	var id int64
	err := testPool.QueryRow(ctx, `INSERT INTO events (title, fight_date) VALUES ('E2E fight', $1) RETURNING id`, fightDate).Scan(&id)
	require.NoError(t, err)
	t.Cleanup(func() {
		testPool.Exec(ctx, `DELETE FROM stakes WHERE event_id = $1`, id)
		testPool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	})
	return id
}

// Test_ConcurrentStarsStakes_TotalIsExact verifies TotalStaked equals the sum of concurrent STARS stakes
func Test_ConcurrentStarsStakes_TotalIsExact(t *testing.T) {
	const numStakes = 20
	e := setupE2E(t, 4, 0)
	eventID := createEvent(t, time.Now().Add(24*time.Hour))

	results := e.concurrently(numStakes, func(i int) *http.Request {
		return jsonRequest(http.MethodPost, "/api/v1/stakes", model.PlaceStakeRequest{
			UserID: e.users[i%len(e.users)].Int64(), EventID: eventID, ParticipantID: 7, Amount: "10", StakeType: "STARS",
		}, nil)
	})
	for _, r := range results {
		require.Equal(t, http.StatusCreated, r.status, string(r.body))
	}

	w := e.do(http.MethodGet, fmt.Sprintf("/api/v1/events/%d/participants/7/total?stake_type=STARS", eventID), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp model.TotalStakedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "200", resp.Total)

	w = e.do(http.MethodGet, fmt.Sprintf("/api/v1/events/%d/participants/7/total?stake_type=POINTS", eventID), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "0", resp.Total)

	for _, u := range e.users {
		assert.True(t, balanceOf(t, u).IsZero(), "stars stakes never touch points")
	}
}

// Test_ExpireOverdueEvents verifies:
// - an overdue SCHEDULED event is expired by the sweep and a second sweep expires nothing
// - a future event is untouched
// - staking on the expired event fails with EVENT_CLOSED
func Test_ExpireOverdueEvents(t *testing.T) {
	e := setupE2E(t, 1, 1000)
	ctx := context.Background()

	overdue := createEvent(t, time.Now().Add(-time.Hour))
	future := createEvent(t, time.Now().Add(time.Hour))

	first, err := e.events.ExpireOverdue(ctx, time.Now())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, first, int64(1))

	second, err := e.events.ExpireOverdue(ctx, time.Now())
	require.NoError(t, err)
	assert.Zero(t, second)

	event, err := e.events.GetEvent(ctx, overdue)
	require.NoError(t, err)
	assert.Equal(t, model.EventExpired, event.Status)

	event, err = e.events.GetEvent(ctx, future)
	require.NoError(t, err)
	assert.Equal(t, model.EventScheduled, event.Status)

	w := e.do(http.MethodPost, "/api/v1/stakes", model.PlaceStakeRequest{
		UserID: e.users[0].Int64(), EventID: overdue, ParticipantID: 1, Amount: "100", StakeType: "POINTS",
	}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "EVENT_CLOSED", errorCode(w.Body.Bytes()))
	assert.True(t, balanceOf(t, e.users[0]).Equal(decimal.NewFromInt(1000)))
}

// Test_ConcurrentReferrals_FirstWins verifies only one referrer is ever recorded for a user
func Test_ConcurrentReferrals_FirstWins(t *testing.T) {
	const numReferrers = 8
	e := setupE2E(t, numReferrers+1, 0)
	referred := e.users[0]

	results := e.concurrently(numReferrers, func(i int) *http.Request {
		return jsonRequest(http.MethodPost, "/api/v1/referrals", model.ReferralRequest{
			ReferredUserID: referred.Int64(), ReferrerID: e.users[i+1].Int64(),
		}, nil)
	})

	var created, conflicts int
	for _, r := range results {
		switch r.status {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicts++
			assert.Equal(t, "ALREADY_REFERRED", errorCode(r.body))
		default:
			t.Errorf("unexpected response: status=%d body=%s", r.status, r.body)
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, numReferrers-1, conflicts)

	w := e.do(http.MethodGet, fmt.Sprintf("/api/v1/users/%d/referrals", referred), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp model.ReferralsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.ReferrerID)
}

// Test_TicketStarsPayment_Idempotent verifies replayed and conflicting payment confirmations
func Test_TicketStarsPayment_Idempotent(t *testing.T) {
	e := setupE2E(t, 1, 0)
	hook := map[string]string{"X-Webhook-Secret": webhookSecret}

	w := e.do(http.MethodPost, "/api/v1/tickets", model.TicketRequest{
		UserID: e.users[0].Int64(), TicketType: "standard", Quantity: 2, PaymentMethod: "STARS",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var ticket model.Ticket
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ticket))
	assert.Equal(t, model.TicketPending, ticket.Status)
	assert.Equal(t, "2000", ticket.TotalCost.String())

	confirm := model.PaymentConfirmation{Target: "ticket", ID: ticket.TicketID, ChargeID: "ch_" + uuid.NewString()}

	results := e.concurrently(5, func(int) *http.Request {
		return jsonRequest(http.MethodPost, "/api/v1/webhooks/payments", confirm, hook)
	})
	statuses := map[string]int{}
	for _, r := range results {
		require.Equal(t, http.StatusOK, r.status, string(r.body))
		var resp model.PaymentConfirmationResponse
		require.NoError(t, json.Unmarshal(r.body, &resp))
		statuses[resp.Status]++
	}
	assert.Equal(t, 1, statuses["confirmed"])
	assert.Equal(t, 4, statuses["already_confirmed"])

	confirm.ChargeID = "ch_other"
	w = e.do(http.MethodPost, "/api/v1/webhooks/payments", confirm, hook)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "PAYMENT_MISMATCH", errorCode(w.Body.Bytes()))

	w = e.do(http.MethodPost, "/api/v1/tickets/"+ticket.TicketID+"/approve", nil, e.admin(t))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = e.do(http.MethodGet, fmt.Sprintf("/api/v1/users/%d/tickets", e.users[0]), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list model.TicketListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, model.TicketApproved, list.Tickets[0].Status)
}
