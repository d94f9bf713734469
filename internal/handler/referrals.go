package handler

import (
	"net/http"
	"shells-ledger/internal/model"

	"github.com/gin-gonic/gin"
)

// RecordReferral
// @Summary Record who referred a user
// @Description The first referral for a user wins; later attempts are rejected
// @Tags referrals
// @Accept json
// @Produce json
// @Param referral body model.ReferralRequest true "Referral edge"
// @Success 201 {object} model.ReferralRequest
// @Failure 400 {object} model.ErrorResponse "Self referral"
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Failure 409 {object} model.ErrorResponse "Already referred"
// @Router /referrals [post]
func (h *Handler) RecordReferral(c *gin.Context) {
	var req model.ReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	if err := h.referralService.RecordReferral(c.Request.Context(), &req); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

// GetReferrals
// @Summary List referrals
// @Description Returns the users this user referred and who referred them
// @Tags referrals
// @Produce json
// @Param id path int true "Telegram ID"
// @Success 200 {object} model.ReferralsResponse
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /users/{id}/referrals [get]
func (h *Handler) GetReferrals(c *gin.Context) {
	userID, ok := h.userIDParam(c)
	if !ok {
		return
	}

	resp, err := h.referralService.GetReferrals(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if resp.Referrals == nil {
		resp.Referrals = []model.TelegramID{}
	}
	c.JSON(http.StatusOK, resp)
}
