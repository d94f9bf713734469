package handler

import (
	"errors"
	"net/http"
	"shells-ledger/internal/auth"
	"shells-ledger/internal/metrics"
	"shells-ledger/internal/model"
	"shells-ledger/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Services struct {
	Ledger     service.LedgerService
	Redemption service.RedemptionService
	Events     service.EventService
	Stakes     service.StakeService
	Purchases  service.PurchaseService
	Tickets    service.TicketService
	Referrals  service.ReferralService
	Payments   service.PaymentService
}

type Handler struct {
	ledgerService     service.LedgerService
	redemptionService service.RedemptionService
	eventService      service.EventService
	stakeService      service.StakeService
	purchaseService   service.PurchaseService
	ticketService     service.TicketService
	referralService   service.ReferralService
	paymentService    service.PaymentService
	authenticator     *auth.Authenticator
	webhookSecret     string
	limiter           *RateLimiter
	logger            zerolog.Logger
}

func NewHandler(svcs Services, authenticator *auth.Authenticator, webhookSecret string, limiter *RateLimiter, logger zerolog.Logger) *Handler {
	return &Handler{
		ledgerService:     svcs.Ledger,
		redemptionService: svcs.Redemption,
		eventService:      svcs.Events,
		stakeService:      svcs.Stakes,
		purchaseService:   svcs.Purchases,
		ticketService:     svcs.Tickets,
		referralService:   svcs.Referrals,
		paymentService:    svcs.Payments,
		authenticator:     authenticator,
		webhookSecret:     webhookSecret,
		limiter:           limiter,
		logger:            logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(),
		gin.Recovery(),
	)

	// Swagger, metrics and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	admin := AdminAuthMiddleware(h.authenticator)
	limited := h.limiter.Middleware()

	v1.POST("/admin/login", limited, h.Login)

	users := v1.Group("/users")
	users.POST("", limited, h.EnsureUser)
	users.GET("/:id/balance", h.GetBalance)
	users.POST("/:id/points", admin, h.AdjustPoints)
	users.GET("/:id/entries", h.ListEntries)
	users.POST("/:id/welcome", limited, h.ClaimWelcome)
	users.POST("/:id/taps", limited, h.CreditTaps)
	users.GET("/:id/subscription", h.GetSubscriptionStatus)
	users.GET("/:id/tickets", h.ListUserTickets)
	users.GET("/:id/referrals", h.GetReferrals)

	v1.POST("/codes/redeem", limited, h.RedeemCode)

	events := v1.Group("/events")
	events.POST("", admin, h.CreateEvent)
	events.POST("/expire", admin, h.ExpireEvents)
	events.GET("/:id", h.GetEvent)
	events.POST("/:id/resolve", admin, h.ResolveEvent)
	events.GET("/:id/participants/:pid/total", h.TotalStaked)

	v1.POST("/stakes", limited, h.PlaceStake)

	purchases := v1.Group("/purchases")
	purchases.POST("", limited, h.Purchase)
	purchases.POST("/:id/review", admin, h.ReviewPurchase)

	tickets := v1.Group("/tickets")
	tickets.POST("", limited, h.PurchaseTicket)
	tickets.POST("/:ticketId/approve", admin, h.ApproveTicket)

	v1.POST("/referrals", limited, h.RecordReferral)

	v1.POST("/webhooks/payments", WebhookSecretMiddleware(h.webhookSecret), h.ConfirmPayment)

	return router
}

var errorCodes = []struct {
	err  error
	code string
}{
	{model.ErrInsufficientBalance, "INSUFFICIENT_BALANCE"},
	{model.ErrInvalidAmount, "INVALID_AMOUNT"},
	{model.ErrInvalidTelegramID, "INVALID_TELEGRAM_ID"},
	{model.ErrInvalidStakeType, "INVALID_STAKE_TYPE"},
	{model.ErrInvalidPaymentType, "INVALID_PAYMENT_TYPE"},
	{model.ErrInvalidQuantity, "INVALID_QUANTITY"},
	{model.ErrInvalidStatus, "INVALID_STATUS"},
	{model.ErrSelfReferral, "SELF_REFERRAL"},
	{model.ErrUserNotFound, "USER_NOT_FOUND"},
	{model.ErrCodeNotFound, "CODE_NOT_FOUND"},
	{model.ErrEventNotFound, "EVENT_NOT_FOUND"},
	{model.ErrServiceNotFound, "SERVICE_NOT_FOUND"},
	{model.ErrTicketNotFound, "TICKET_NOT_FOUND"},
	{model.ErrTicketTypeNotFound, "TICKET_TYPE_NOT_FOUND"},
	{model.ErrStakeNotFound, "STAKE_NOT_FOUND"},
	{model.ErrPurchaseNotFound, "PURCHASE_NOT_FOUND"},
	{model.ErrAlreadyRedeemed, "ALREADY_REDEEMED"},
	{model.ErrBatchMismatch, "BATCH_MISMATCH"},
	{model.ErrAlreadyReferred, "ALREADY_REFERRED"},
	{model.ErrWelcomeClaimed, "WELCOME_CLAIMED"},
	{model.ErrEventClosed, "EVENT_CLOSED"},
	{model.ErrEventTerminal, "EVENT_TERMINAL"},
	{model.ErrAlreadyProcessed, "ALREADY_PROCESSED"},
	{model.ErrPaymentMismatch, "PAYMENT_MISMATCH"},
	{model.ErrDuplicateTicketID, "DUPLICATE_TICKET_ID"},
	{model.ErrTxRetriesExhausted, "TX_RETRIES_EXHAUSTED"},
}

var kindStatus = map[model.Kind]int{
	model.KindNotFound:           http.StatusNotFound,
	model.KindConflict:           http.StatusConflict,
	model.KindInsufficientFunds:  http.StatusBadRequest,
	model.KindInvalidInput:       http.StatusBadRequest,
	model.KindExternalDependency: http.StatusBadGateway,
	model.KindInternal:           http.StatusInternalServerError,
}

func (h *Handler) handleError(c *gin.Context, err error) {
	kind := model.KindOf(err)
	status := kindStatus[kind]
	code := string(kind)
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			code = ec.code
			break
		}
	}
	metrics.LedgerErrors.WithLabelValues(string(kind)).Inc()

	resp := model.ErrorResponse{Error: err.Error(), Code: code, Kind: kind}
	if kind == model.KindInternal {
		h.logger.Error().Err(err).Str("path", c.FullPath()).Msg("internal server error")
		resp.Error = "internal server error"
	}

	c.JSON(status, resp)
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, model.ErrorResponse{
		Error: msg,
		Code:  "INVALID_REQUEST",
		Kind:  model.KindInvalidInput,
	})
}

func (h *Handler) userIDParam(c *gin.Context) (model.TelegramID, bool) {
	userID, err := model.ParseTelegramID(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return 0, false
	}
	return userID, true
}

func int64Param(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || v <= 0 {
		badRequest(c, name+" must be a positive integer")
		return 0, false
	}
	return v, true
}
