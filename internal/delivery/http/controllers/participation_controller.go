package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "mentorhub/internal/delivery/http/helpers"
	"mentorhub/internal/delivery/http/middleware"
	"mentorhub/internal/domain"
)

// BookEventRequest is the request body for POST /v1/afisha/event-participants.
type BookEventRequest struct {
	EventID int64 `json:"event"`
}

// Validate implements Validator.
func (b BookEventRequest) Validate() []string {
	if b.EventID <= 0 {
		return []string{"event is required"}
	}
	return nil
}

type ParticipationController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewParticipationController(logger *slog.Logger, svc domain.BookingService) *ParticipationController {
	return &ParticipationController{
		Logger:  logger,
		Service: svc,
	}
}

// writeBookingError maps booking rule violations to their HTTP shapes.
// Rule violations are 400 with a stable machine code; not_found stays 404.
func (c *ParticipationController) writeBookingError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "event not found")
	case errors.Is(err, domain.ErrEventEnded):
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeEventEnded, "event has already ended")
	case errors.Is(err, domain.ErrEventFull):
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeEventFull, "no seats left")
	case errors.Is(err, domain.ErrEventCanceled):
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeEventCanceled, "event is canceled")
	case errors.Is(err, domain.ErrDuplicateParticipation):
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeDuplicateParticipation, "already booked")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
	}
}

// Book godoc
// @Summary Book a seat at an event
// @Description Books the authenticated user into the event. Rejected when the event has ended (event_ended), is at capacity (event_full), is canceled (event_canceled), or the user already holds a booking (duplicate_participation). The rules are checked in that order.
// @Tags afisha
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BookEventRequest true "Event to book"
// @Success 201 {object} helpers.APIResponse "data contains the participation"
// @Failure 400 {object} helpers.APIResponse "error.code: event_ended, event_full, event_canceled, or duplicate_participation"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /v1/afisha/event-participants [post]
func (c *ParticipationController) Book(w http.ResponseWriter, r *http.Request) {
	var req BookEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	participation, err := c.Service.Book(r.Context(), req.EventID, userID)
	if err != nil {
		c.writeBookingError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, participation)
}

// WithdrawResponse is the data payload for DELETE /v1/afisha/event-participants/{eventID} (200).
type WithdrawResponse struct {
	Status string `json:"status"`
}

// Withdraw godoc
// @Summary Withdraw from an event
// @Description Removes the authenticated user's booking, freeing the seat for others.
// @Tags afisha
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (no booking)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /v1/afisha/event-participants/{eventID} [delete]
func (c *ParticipationController) Withdraw(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(r, "eventID")
	if !ok {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid eventID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.Withdraw(r.Context(), eventID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "booking not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, WithdrawResponse{Status: "withdrawn"})
}

// ListMine godoc
// @Summary List my active bookings
// @Description Returns the authenticated user's bookings for events that have not yet ended, each with the event and seat info.
// @Tags afisha
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data is an array of participations with events"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /v1/afisha/event-participants [get]
func (c *ParticipationController) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	list, err := c.Service.ListMine(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	if list == nil {
		list = []*domain.ParticipationWithEvent{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, list)
}

// ListArchive godoc
// @Summary List my past bookings
// @Description Returns the authenticated user's bookings for events that have already ended.
// @Tags afisha
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data is an array of participations with events"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /v1/afisha/event-participants/archive [get]
func (c *ParticipationController) ListArchive(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	list, err := c.Service.ListArchive(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	if list == nil {
		list = []*domain.ParticipationWithEvent{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, list)
}
