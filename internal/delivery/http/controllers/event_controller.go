package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	h "mentorhub/internal/delivery/http/helpers"
	"mentorhub/internal/delivery/http/middleware"
	"mentorhub/internal/domain"
)

// CreateEventRequest is the request body for POST /v1/afisha/events.
type CreateEventRequest struct {
	Address     string    `json:"address"`
	Contact     string    `json:"contact"`
	Phone       string    `json:"phone"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	Seats       int       `json:"seats"`
	CityID      int64     `json:"city_id"`
	TagID       int64     `json:"tag_id"`
}

// Validate implements Validator.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, "title is required")
	}
	if c.StartAt.IsZero() || c.EndAt.IsZero() {
		errs = append(errs, "start_at and end_at are required")
	}
	if c.Seats < 1 {
		errs = append(errs, "seats must be at least 1")
	}
	if c.CityID <= 0 {
		errs = append(errs, "city_id is required")
	}
	return errs
}

// UpdateEventRequest is the request body for PATCH /v1/afisha/events/{eventID}.
// All fields optional; omitted fields are unchanged.
type UpdateEventRequest struct {
	Address     *string    `json:"address"`
	Contact     *string    `json:"contact"`
	Phone       *string    `json:"phone"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartAt     *time.Time `json:"start_at"`
	EndAt       *time.Time `json:"end_at"`
	Seats       *int       `json:"seats"`
}

// Validate implements Validator.
func (u UpdateEventRequest) Validate() []string {
	var errs []string
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		errs = append(errs, "title cannot be empty")
	}
	if u.Seats != nil && *u.Seats < 1 {
		errs = append(errs, "seats must be at least 1")
	}
	return errs
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// queryInts parses a repeatable integer query parameter, also accepting
// comma-separated values.
func queryInts(r *http.Request, name string) []int {
	var out []int
	for _, raw := range r.URL.Query()[name] {
		for _, s := range strings.Split(raw, ",") {
			if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
				out = append(out, v)
			}
		}
	}
	return out
}

// List godoc
// @Summary List upcoming events in the user's city
// @Description Returns future, non-canceled events in the authenticated user's home city, ordered by start time. Each event is annotated with whether the user has booked it and how many seats remain. Optional months and years query params filter on start time.
// @Tags afisha
// @Produce json
// @Security BearerAuth
// @Param months query []int false "Filter by start month (1-12), repeatable or comma-separated"
// @Param years query []int false "Filter by start year, repeatable or comma-separated"
// @Success 200 {object} helpers.APIResponse "data is an array of events with seat info"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /v1/afisha/events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	filter := domain.EventListFilter{
		Months: queryInts(r, "months"),
		Years:  queryInts(r, "years"),
	}
	events, err := c.Service.List(r.Context(), userID, filter)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	if events == nil {
		events = []*domain.EventWithSeats{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, events)
}

// Get godoc
// @Summary Get an event by ID
// @Tags afisha
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /v1/afisha/events/{eventID} [get]
func (c *EventController) Get(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(r, "eventID")
	if !ok {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid eventID")
		return
	}
	event, err := c.Service.Get(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, event)
}

// Create godoc
// @Summary Create a new event
// @Description Create an event with seats capacity, city, and time window. end_at must be after start_at and seats must be at least 1.
// @Tags afisha
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateEventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /v1/afisha/events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Create(r.Context(), &domain.Event{
		Address:     req.Address,
		Contact:     req.Contact,
		Phone:       req.Phone,
		Title:       req.Title,
		Description: req.Description,
		StartAt:     req.StartAt,
		EndAt:       req.EndAt,
		Seats:       req.Seats,
		CityID:      req.CityID,
		TagID:       req.TagID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, event)
}

// Update godoc
// @Summary Update event details
// @Description Updates event fields. Optional fields omitted from body are unchanged.
// @Tags afisha
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Param body body UpdateEventRequest true "Fields to update (all optional)"
// @Success 200 {object} helpers.APIResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /v1/afisha/events/{eventID} [patch]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(r, "eventID")
	if !ok {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid eventID")
		return
	}
	var req UpdateEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Update(r.Context(), eventID, domain.EventUpdate{
		Address:     req.Address,
		Contact:     req.Contact,
		Phone:       req.Phone,
		Title:       req.Title,
		Description: req.Description,
		StartAt:     req.StartAt,
		EndAt:       req.EndAt,
		Seats:       req.Seats,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "event not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, event)
}

// CancelEventResponse is the data payload for POST /v1/afisha/events/{eventID}/cancel (200).
type CancelEventResponse struct {
	Status string `json:"status"`
}

// Cancel godoc
// @Summary Cancel an event
// @Description Marks the event canceled and emails every booked participant. Canceling an already-canceled event is a no-op. Existing participations are kept; new bookings are rejected.
// @Tags afisha
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /v1/afisha/events/{eventID}/cancel [post]
func (c *EventController) Cancel(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(r, "eventID")
	if !ok {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid eventID")
		return
	}
	if err := c.Service.Cancel(r.Context(), eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, CancelEventResponse{Status: "canceled"})
}
