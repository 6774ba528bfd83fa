package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	h "mentorhub/internal/delivery/http/helpers"
	"mentorhub/internal/domain"
)

// ContentController serves the rights reference and the Q&A catalog.
type ContentController struct {
	Logger    *slog.Logger
	Rights    domain.RightRepository
	Questions domain.QuestionRepository
	TagRepo   domain.TagRepository
}

func NewContentController(
	logger *slog.Logger,
	rights domain.RightRepository,
	questions domain.QuestionRepository,
	tags domain.TagRepository,
) *ContentController {
	return &ContentController{
		Logger:    logger,
		Rights:    rights,
		Questions: questions,
		TagRepo:   tags,
	}
}

// ListRights godoc
// @Summary List children's-rights articles
// @Tags content
// @Produce json
// @Param tags query string false "Comma-separated tag slugs"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains items and pagination"
// @Router /v1/rights [get]
func (c *ContentController) ListRights(w http.ResponseWriter, r *http.Request) {
	params := h.ParsePagination(r)
	rights, total, err := c.Rights.List(r.Context(), queryTags(r), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	meta := h.NewPaginationMeta(params.Page, params.PageSize, total)
	h.WriteJSONSuccess(w, http.StatusOK, ListResponse{Items: rights, Pagination: meta})
}

// GetRight godoc
// @Summary Get a rights article by ID
// @Tags content
// @Produce json
// @Param rightID path int true "Right ID"
// @Success 200 {object} helpers.APIResponse "data contains the article"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /v1/rights/{rightID} [get]
func (c *ContentController) GetRight(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "rightID")
	if !ok {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid rightID")
		return
	}
	right, err := c.Rights.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "right not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, right)
}

// RightTags godoc
// @Summary List rights tags in use
// @Tags content
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of tags"
// @Router /v1/rights/tags [get]
func (c *ContentController) RightTags(w http.ResponseWriter, r *http.Request) {
	tags, err := c.TagRepo.ListUsed(r.Context(), domain.TagCategoryRights)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	if tags == nil {
		tags = []*domain.Tag{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, tags)
}

// AskQuestionRequest is the request body for POST /v1/questions.
type AskQuestionRequest struct {
	Title string `json:"question"`
}

// Validate implements Validator.
func (q AskQuestionRequest) Validate() []string {
	if strings.TrimSpace(q.Title) == "" {
		return []string{"question is required"}
	}
	return nil
}

// ListQuestions godoc
// @Summary List answered questions
// @Description Returns answered questions only, newest first. Questions awaiting a curator's answer are hidden.
// @Tags content
// @Produce json
// @Param tags query string false "Comma-separated tag slugs"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains items and pagination"
// @Router /v1/questions [get]
func (c *ContentController) ListQuestions(w http.ResponseWriter, r *http.Request) {
	params := h.ParsePagination(r)
	questions, total, err := c.Questions.List(r.Context(), queryTags(r), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	meta := h.NewPaginationMeta(params.Page, params.PageSize, total)
	h.WriteJSONSuccess(w, http.StatusOK, ListResponse{Items: questions, Pagination: meta})
}

// AskQuestion godoc
// @Summary Submit a question
// @Description Submits a question for a curator to answer. The question stays hidden from listings and search until answered.
// @Tags content
// @Accept json
// @Produce json
// @Param body body AskQuestionRequest true "Question text"
// @Success 201 {object} helpers.APIResponse "data contains the submitted question"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /v1/questions [post]
func (c *ContentController) AskQuestion(w http.ResponseWriter, r *http.Request) {
	var req AskQuestionRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	question := &domain.Question{
		Title:     strings.TrimSpace(req.Title),
		CreatedAt: time.Now(),
	}
	if err := c.Questions.Create(r.Context(), question); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, question)
}

// QuestionTags godoc
// @Summary List question tags in use
// @Tags content
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of tags"
// @Router /v1/questions/tags [get]
func (c *ContentController) QuestionTags(w http.ResponseWriter, r *http.Request) {
	tags, err := c.TagRepo.ListUsed(r.Context(), domain.TagCategoryQuestions)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	if tags == nil {
		tags = []*domain.Tag{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, tags)
}
