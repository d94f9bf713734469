package handler

import (
	"net/http"
	"shells-ledger/internal/model"
	"time"

	"github.com/gin-gonic/gin"
)

// CreateEvent
// @Summary Schedule an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body model.CreateEventRequest true "Title and fight date"
// @Success 201 {object} model.Event
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /events [post]
func (h *Handler) CreateEvent(c *gin.Context) {
	var req model.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// GetEvent
// @Summary Get an event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} model.Event
// @Failure 404 {object} model.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (h *Handler) GetEvent(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.GetEvent(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// ResolveEvent
// @Summary Resolve an event
// @Description Moves a SCHEDULED event to COMPLETED (winner required), CANCELLED or DRAW
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param resolution body model.ResolveEventRequest true "Outcome"
// @Success 200 {object} model.Event
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 404 {object} model.ErrorResponse "Event not found"
// @Failure 409 {object} model.ErrorResponse "Event already terminal"
// @Router /events/{id}/resolve [post]
func (h *Handler) ResolveEvent(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req model.ResolveEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	event, err := h.eventService.ResolveEvent(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// ExpireEvents
// @Summary Expire overdue events
// @Description Moves every SCHEDULED event whose fight date has passed to EXPIRED. The body is optional.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ExpireEventsRequest false "Optional now override"
// @Success 200 {object} model.ExpireEventsResponse
// @Router /events/expire [post]
func (h *Handler) ExpireEvents(c *gin.Context) {
	var req model.ExpireEventsRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request body")
			return
		}
	}

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	count, err := h.eventService.ExpireOverdue(c.Request.Context(), now)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.ExpireEventsResponse{Expired: count})
}

// TotalStaked
// @Summary Total staked on a participant
// @Tags stakes
// @Produce json
// @Param id path int true "Event ID"
// @Param pid path int true "Participant ID"
// @Param stake_type query string true "Stake type" Enums(POINTS, STARS)
// @Success 200 {object} model.TotalStakedResponse
// @Failure 404 {object} model.ErrorResponse "Event not found"
// @Router /events/{id}/participants/{pid}/total [get]
func (h *Handler) TotalStaked(c *gin.Context) {
	eventID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	participantID, ok := int64Param(c, "pid")
	if !ok {
		return
	}

	resp, err := h.stakeService.TotalStaked(c.Request.Context(), eventID, participantID, c.Query("stake_type"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PlaceStake
// @Summary Place a stake
// @Description POINTS stakes are debited immediately; STARS stakes stay PENDING until the payment is confirmed
// @Tags stakes
// @Accept json
// @Produce json
// @Param stake body model.PlaceStakeRequest true "Stake details"
// @Success 201 {object} model.Stake
// @Failure 400 {object} model.ErrorResponse "Invalid input or insufficient balance"
// @Failure 404 {object} model.ErrorResponse "Event or user not found"
// @Failure 409 {object} model.ErrorResponse "Event closed"
// @Router /stakes [post]
func (h *Handler) PlaceStake(c *gin.Context) {
	var req model.PlaceStakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	stake, err := h.stakeService.PlaceStake(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stake)
}
