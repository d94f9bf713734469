package handler

import (
	"net/http"
	"shells-ledger/internal/model"

	"github.com/gin-gonic/gin"
)

// Purchase
// @Summary Buy a service or subscription
// @Description POINTS purchases are debited and approved at once; STARS purchases wait for payment confirmation
// @Tags purchases
// @Accept json
// @Produce json
// @Param purchase body model.PurchaseRequest true "Purchase details"
// @Success 201 {object} model.Purchase
// @Failure 400 {object} model.ErrorResponse "Invalid input or insufficient balance"
// @Failure 404 {object} model.ErrorResponse "Service or user not found"
// @Router /purchases [post]
func (h *Handler) Purchase(c *gin.Context) {
	var req model.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	purchase, err := h.purchaseService.Purchase(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, purchase)
}

// ReviewPurchase
// @Summary Approve or reject a pending purchase
// @Tags purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Purchase ID"
// @Param review body model.ReviewRequest true "Decision"
// @Success 200 {object} model.Purchase
// @Failure 404 {object} model.ErrorResponse "Purchase not found"
// @Failure 409 {object} model.ErrorResponse "Already decided"
// @Router /purchases/{id}/review [post]
func (h *Handler) ReviewPurchase(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req model.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	purchase, err := h.purchaseService.ReviewPurchase(c.Request.Context(), id, req.Approve)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, purchase)
}

// GetSubscriptionStatus
// @Summary Get subscription status
// @Description Reports whether the latest approved subscription is still running and when it ends
// @Tags purchases
// @Produce json
// @Param id path int true "Telegram ID"
// @Success 200 {object} model.SubscriptionStatus
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /users/{id}/subscription [get]
func (h *Handler) GetSubscriptionStatus(c *gin.Context) {
	userID, ok := h.userIDParam(c)
	if !ok {
		return
	}

	status, err := h.purchaseService.GetSubscriptionStatus(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// PurchaseTicket
// @Summary Buy event tickets
// @Tags tickets
// @Accept json
// @Produce json
// @Param ticket body model.TicketRequest true "Ticket order"
// @Success 201 {object} model.Ticket
// @Failure 400 {object} model.ErrorResponse "Invalid input or insufficient balance"
// @Failure 404 {object} model.ErrorResponse "Ticket type or user not found"
// @Router /tickets [post]
func (h *Handler) PurchaseTicket(c *gin.Context) {
	var req model.TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	ticket, err := h.ticketService.PurchaseTicket(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

// ListUserTickets
// @Summary List a user's tickets
// @Tags tickets
// @Produce json
// @Param id path int true "Telegram ID"
// @Success 200 {object} model.TicketListResponse
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /users/{id}/tickets [get]
func (h *Handler) ListUserTickets(c *gin.Context) {
	userID, ok := h.userIDParam(c)
	if !ok {
		return
	}

	tickets, err := h.ticketService.ListUserTickets(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if tickets == nil {
		tickets = []*model.Ticket{}
	}
	c.JSON(http.StatusOK, model.TicketListResponse{Tickets: tickets, Total: len(tickets)})
}

// ApproveTicket
// @Summary Approve a purchased ticket
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param ticketId path string true "Ticket ID"
// @Success 200 {object} model.Ticket
// @Failure 400 {object} model.ErrorResponse "Ticket not purchased yet"
// @Failure 404 {object} model.ErrorResponse "Ticket not found"
// @Failure 409 {object} model.ErrorResponse "Already approved"
// @Router /tickets/{ticketId}/approve [post]
func (h *Handler) ApproveTicket(c *gin.Context) {
	ticket, err := h.ticketService.ApproveTicket(c.Request.Context(), c.Param("ticketId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// ConfirmPayment
// @Summary Payment provider callback
// @Description Confirms a STARS stake, purchase or ticket. Replaying the same charge is accepted; a different charge is a conflict.
// @Tags payments
// @Accept json
// @Produce json
// @Param X-Webhook-Secret header string true "Shared webhook secret"
// @Param confirmation body model.PaymentConfirmation true "Confirmed charge"
// @Success 200 {object} model.PaymentConfirmationResponse
// @Failure 401 {object} model.ErrorResponse "Bad secret"
// @Failure 404 {object} model.ErrorResponse "Record not found"
// @Failure 409 {object} model.ErrorResponse "Already processed or charge mismatch"
// @Router /webhooks/payments [post]
func (h *Handler) ConfirmPayment(c *gin.Context) {
	var req model.PaymentConfirmation
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.paymentService.ConfirmPayment(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
