package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "mentorhub/internal/delivery/http/helpers"
	"mentorhub/internal/domain"
)

// HistoryController serves mentor-and-child success stories.
type HistoryController struct {
	Logger    *slog.Logger
	Histories domain.HistoryRepository
}

func NewHistoryController(logger *slog.Logger, histories domain.HistoryRepository) *HistoryController {
	return &HistoryController{
		Logger:    logger,
		Histories: histories,
	}
}

// List godoc
// @Summary List mentor stories
// @Description Returns story list items {id, pair}, newest first. The pair is the "<mentor> и <child>" display name.
// @Tags history
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains items and pagination"
// @Router /v1/history [get]
func (c *HistoryController) List(w http.ResponseWriter, r *http.Request) {
	params := h.ParsePagination(r)
	items, total, err := c.Histories.List(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	meta := h.NewPaginationMeta(params.Page, params.PageSize, total)
	h.WriteJSONSuccess(w, http.StatusOK, ListResponse{Items: items, Pagination: meta})
}

// Get godoc
// @Summary Get a mentor story by ID
// @Tags history
// @Produce json
// @Param historyID path int true "History ID"
// @Success 200 {object} helpers.APIResponse "data contains the story"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /v1/history/{historyID} [get]
func (c *HistoryController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "historyID")
	if !ok {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid historyID")
		return
	}
	story, err := c.Histories.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "history not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, story)
}
