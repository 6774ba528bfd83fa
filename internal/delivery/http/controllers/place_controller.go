package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "mentorhub/internal/delivery/http/helpers"
	"mentorhub/internal/delivery/http/middleware"
	"mentorhub/internal/domain"
)

// CreatePlaceRequest is the request body for POST /v1/places.
type CreatePlaceRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Link        string  `json:"link"`
	Address     string  `json:"address"`
	CityID      int64   `json:"city_id"`
	Gender      *string `json:"gender"`
	Age         *int    `json:"age"`
	TagIDs      []int64 `json:"tags"`
}

// Validate implements Validator.
func (p CreatePlaceRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(p.Title) == "" {
		errs = append(errs, "title is required")
	}
	if p.CityID <= 0 {
		errs = append(errs, "city_id is required")
	}
	if p.Age == nil {
		errs = append(errs, "age is required")
	} else if *p.Age < 8 || *p.Age > 25 {
		errs = append(errs, "age must be between 8 and 25")
	}
	return errs
}

// PlaceListResponse is the data payload for GET /v1/places (200).
type PlaceListResponse struct {
	Items      []*domain.Place  `json:"items"`
	Pagination h.PaginationMeta `json:"pagination"`
}

type PlaceController struct {
	Logger   *slog.Logger
	Service  domain.PlaceService
	TagRepo  domain.TagRepository
	UserRepo domain.UserRepository
}

func NewPlaceController(logger *slog.Logger, svc domain.PlaceService, tags domain.TagRepository, users domain.UserRepository) *PlaceController {
	return &PlaceController{
		Logger:   logger,
		Service:  svc,
		TagRepo:  tags,
		UserRepo: users,
	}
}

// List godoc
// @Summary List moderated places
// @Description Returns moderated places scoped to the requester's city (the authenticated user's home city, or ?city= for anonymous requests; no city means all cities). Optional ?tags= filters by tag slugs.
// @Tags places
// @Produce json
// @Param city query int false "City ID for anonymous requests"
// @Param tags query string false "Comma-separated tag slugs"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains items and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /v1/places [get]
func (c *PlaceController) List(w http.ResponseWriter, r *http.Request) {
	requester := resolveRequester(r, c.UserRepo)
	filter := domain.PlaceListFilter{
		TagSlugs: queryTags(r),
		Params:   h.ParsePagination(r),
	}
	places, total, err := c.Service.List(r.Context(), requester, filter)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	if places == nil {
		places = []*domain.Place{}
	}
	meta := h.NewPaginationMeta(filter.Params.Page, filter.Params.PageSize, total)
	h.WriteJSONSuccess(w, http.StatusOK, PlaceListResponse{Items: places, Pagination: meta})
}

// Get godoc
// @Summary Get a place by ID
// @Tags places
// @Produce json
// @Param placeID path int true "Place ID"
// @Success 200 {object} helpers.APIResponse "data contains the place"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /v1/places/{placeID} [get]
func (c *PlaceController) Get(w http.ResponseWriter, r *http.Request) {
	placeID, ok := pathID(r, "placeID")
	if !ok {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid placeID")
		return
	}
	place, err := c.Service.Get(r.Context(), placeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "place not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, place)
}

// First godoc
// @Summary Get the featured place
// @Description Returns the newest moderated place for the requester's city, mentor choices first, falling back to any city.
// @Tags places
// @Produce json
// @Param city query int false "City ID for anonymous requests"
// @Success 200 {object} helpers.APIResponse "data contains the place"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /v1/places/first [get]
func (c *PlaceController) First(w http.ResponseWriter, r *http.Request) {
	requester := resolveRequester(r, c.UserRepo)
	place, err := c.Service.First(r.Context(), requester)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "no places")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, place)
}

// Create godoc
// @Summary Submit a new place
// @Description Submits a place recommendation for moderation. The age restriction band is derived from the age; the place stays hidden until a moderator approves it.
// @Tags places
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreatePlaceRequest true "Place data"
// @Success 201 {object} helpers.APIResponse "data contains the submitted place"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /v1/places [post]
func (c *PlaceController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePlaceRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	place, err := c.Service.Create(r.Context(), userID, &domain.Place{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		Address:     req.Address,
		CityID:      req.CityID,
		Gender:      req.Gender,
		Age:         req.Age,
	}, req.TagIDs)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, place)
}

// Tags godoc
// @Summary List place tags in use
// @Tags places
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of tags"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /v1/places/tags [get]
func (c *PlaceController) Tags(w http.ResponseWriter, r *http.Request) {
	tags, err := c.TagRepo.ListUsed(r.Context(), domain.TagCategoryPlaces)
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
