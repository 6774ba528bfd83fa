package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	h "mentorhub/internal/delivery/http/helpers"
	"mentorhub/internal/delivery/http/middleware"
	"mentorhub/internal/domain"
)

// CreateDiaryRequest is the request body for POST /v1/profile/diaries.
type CreateDiaryRequest struct {
	Place       string    `json:"place"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Mark        string    `json:"mark"`
}

// Validate implements Validator.
func (d CreateDiaryRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(d.Place) == "" {
		errs = append(errs, "place is required")
	}
	if d.Date.IsZero() {
		errs = append(errs, "date is required")
	}
	return errs
}

// UpdateDiaryRequest is the request body for PATCH /v1/profile/diaries/{diaryID}.
// All fields optional; omitted fields are unchanged.
type UpdateDiaryRequest struct {
	Place       *string    `json:"place"`
	Date        *time.Time `json:"date"`
	Description *string    `json:"description"`
	Mark        *string    `json:"mark"`
}

// Validate implements Validator.
func (d UpdateDiaryRequest) Validate() []string {
	if d.Place != nil && strings.TrimSpace(*d.Place) == "" {
		return []string{"place cannot be empty"}
	}
	return nil
}

type DiaryController struct {
	Logger  *slog.Logger
	Service domain.DiaryService
}

func NewDiaryController(logger *slog.Logger, svc domain.DiaryService) *DiaryController {
	return &DiaryController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *DiaryController) writeDiaryError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "diary not found")
	case errors.Is(err, domain.ErrForbidden):
		h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "forbidden")
	case errors.Is(err, domain.ErrInvalidInput):
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
	}
}

// Create godoc
// @Summary Create a diary entry
// @Description Records one outing with a mentee. A mentor can write at most one diary per place per date.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateDiaryRequest true "Diary data"
// @Success 201 {object} helpers.APIResponse "data contains the created diary"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (including duplicate place+date)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /v1/profile/diaries [post]
func (c *DiaryController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateDiaryRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	mentorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	diary, err := c.Service.Create(r.Context(), mentorID, &domain.Diary{
		Place:       req.Place,
		Date:        req.Date,
		Description: req.Description,
		Mark:        req.Mark,
	})
	if err != nil {
		c.writeDiaryError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, diary)
}

// ListMine godoc
// @Summary List my diary entries
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data is an array of diaries"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /v1/profile/diaries [get]
func (c *DiaryController) ListMine(w http.ResponseWriter, r *http.Request) {
	mentorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	diaries, err := c.Service.ListMine(r.Context(), mentorID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	if diaries == nil {
		diaries = []*domain.Diary{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, diaries)
}

// Update godoc
// @Summary Update a diary entry
// @Description Edits an entry. Only the owning mentor can edit.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param diaryID path int true "Diary ID"
// @Param body body UpdateDiaryRequest true "Fields to update (all optional)"
// @Success 200 {object} helpers.APIResponse "data contains the updated diary"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not owner)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /v1/profile/diaries/{diaryID} [patch]
func (c *DiaryController) Update(w http.ResponseWriter, r *http.Request) {
	diaryID, ok := pathID(r, "diaryID")
	if !ok {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid diaryID")
		return
	}
	var req UpdateDiaryRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	mentorID, authed := middleware.UserIDFromContext(r.Context())
	if !authed {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	diary, err := c.Service.Update(r.Context(), mentorID, diaryID, domain.DiaryUpdate{
		Place:       req.Place,
		Date:        req.Date,
		Description: req.Description,
		Mark:        req.Mark,
	})
	if err != nil {
		c.writeDiaryError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, diary)
}

// SendDiaryResponse is the data payload for POST /v1/profile/diaries/{diaryID}/send (200).
type SendDiaryResponse struct {
	Status string `json:"status"`
}

// SendToCurator godoc
// @Summary Send a diary entry to the curator
// @Description Marks the entry as shared with the mentor's curator. Only the owning mentor can send.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param diaryID path int true "Diary ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not owner)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /v1/profile/diaries/{diaryID}/send [post]
func (c *DiaryController) SendToCurator(w http.ResponseWriter, r *http.Request) {
	diaryID, ok := pathID(r, "diaryID")
	if !ok {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid diaryID")
		return
	}
	mentorID, authed := middleware.UserIDFromContext(r.Context())
	if !authed {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.SendToCurator(r.Context(), mentorID, diaryID); err != nil {
		c.writeDiaryError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, SendDiaryResponse{Status: "sent"})
}
