package handler

import (
	"net/http"
	"shells-ledger/internal/model"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// EnsureUser
// @Summary Register a user on first contact
// @Description Creates the user with a zero balance if missing. Repeated calls return the existing user.
// @Tags users
// @Accept json
// @Produce json
// @Param user body model.EnsureUserRequest true "Telegram identity"
// @Success 200 {object} model.User
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /users [post]
func (h *Handler) EnsureUser(c *gin.Context) {
	var req model.EnsureUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	userID, err := model.NewTelegramID(req.TelegramID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	user, err := h.ledgerService.EnsureUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetBalance
// @Summary Get user balance
// @Description Returns the current points balance for a user
// @Tags users
// @Produce json
// @Param id path int true "Telegram ID"
// @Success 200 {object} model.BalanceResponse
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /users/{id}/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	userID, ok := h.userIDParam(c)
	if !ok {
		return
	}

	resp, err := h.ledgerService.GetBalance(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AdjustPoints
// @Summary Adjust a user's balance
// @Description Applies a signed whole-number delta. Debits beyond the balance fail and leave it unchanged.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Telegram ID"
// @Param adjustment body model.AdjustPointsRequest true "Signed delta"
// @Success 200 {object} model.BalanceResponse
// @Failure 400 {object} model.ErrorResponse "Invalid amount or insufficient balance"
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /users/{id}/points [post]
func (h *Handler) AdjustPoints(c *gin.Context) {
	userID, ok := h.userIDParam(c)
	if !ok {
		return
	}
	var req model.AdjustPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.ledgerService.AdjustPoints(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListEntries
// @Summary List balance entries
// @Description Returns a paginated audit trail of balance changes, most recent first
// @Tags users
// @Produce json
// @Param id path int true "Telegram ID"
// @Param limit query int false "Limit" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.EntryListResponse
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /users/{id}/entries [get]
func (h *Handler) ListEntries(c *gin.Context) {
	userID, ok := h.userIDParam(c)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if err != nil || limit <= 0 {
		limit = defaultPageSize
	}
	limit = min(limit, maxPageSize)
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	entries, err := h.ledgerService.ListEntries(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.EntryListResponse{
		Entries: entries,
		Total:   len(entries),
		Limit:   limit,
		Offset:  offset,
	})
}

// ClaimWelcome
// @Summary Claim the welcome bonus
// @Description Credits the welcome bonus once per user
// @Tags users
// @Produce json
// @Param id path int true "Telegram ID"
// @Success 200 {object} model.BalanceResponse
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Failure 409 {object} model.ErrorResponse "Already claimed"
// @Router /users/{id}/welcome [post]
func (h *Handler) ClaimWelcome(c *gin.Context) {
	userID, ok := h.userIDParam(c)
	if !ok {
		return
	}

	resp, err := h.ledgerService.ClaimWelcome(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreditTaps
// @Summary Credit tapping rewards
// @Description Credits taps multiplied by the user's tapping rate
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "Telegram ID"
// @Param taps body model.TapsRequest true "Tap count"
// @Success 200 {object} model.BalanceResponse
// @Failure 400 {object} model.ErrorResponse "Tap count out of range"
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /users/{id}/taps [post]
func (h *Handler) CreditTaps(c *gin.Context) {
	userID, ok := h.userIDParam(c)
	if !ok {
		return
	}
	var req model.TapsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.ledgerService.CreditTaps(c.Request.Context(), userID, req.Taps)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RedeemCode
// @Summary Redeem a promo code
// @Description Credits a random reward for an unredeemed code of the given batch. Each code pays out once.
// @Tags codes
// @Accept json
// @Produce json
// @Param redemption body model.RedeemCodeRequest true "Code, batch and user"
// @Success 200 {object} model.RedeemCodeResponse
// @Failure 404 {object} model.ErrorResponse "Code or user not found"
// @Failure 409 {object} model.ErrorResponse "Already redeemed or batch mismatch"
// @Router /codes/redeem [post]
func (h *Handler) RedeemCode(c *gin.Context) {
	var req model.RedeemCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.redemptionService.RedeemCode(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
