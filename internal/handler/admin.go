package handler

import (
	"errors"
	"net/http"
	"shells-ledger/internal/auth"
	"shells-ledger/internal/model"

	"github.com/gin-gonic/gin"
)

// Login
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param credentials body model.LoginRequest true "Admin credentials"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} model.ErrorResponse "Invalid credentials"
// @Router /admin/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.authenticator.Login(req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		h.logger.Warn().Str("username", req.Username).Str("ip", c.ClientIP()).Msg("admin login failed")
		unauthorized(c, err.Error())
		return
	}
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
