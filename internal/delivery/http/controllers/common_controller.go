package controllers

import (
	"log/slog"
	"net/http"

	h "mentorhub/internal/delivery/http/helpers"
	"mentorhub/internal/domain"
)

// CommonController serves the shared reference data: cities, tags, and
// place activity types.
type CommonController struct {
	Logger     *slog.Logger
	Cities     domain.CityRepository
	TagRepo    domain.TagRepository
	Activities domain.ActivityTypeRepository
}

func NewCommonController(logger *slog.Logger, cities domain.CityRepository, tags domain.TagRepository, activities domain.ActivityTypeRepository) *CommonController {
	return &CommonController{
		Logger:     logger,
		Cities:     cities,
		TagRepo:    tags,
		Activities: activities,
	}
}

// ListCities godoc
// @Summary List cities
// @Description Returns all cities, primary cities first.
// @Tags common
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of cities"
// @Router /v1/cities [get]
func (c *CommonController) ListCities(w http.ResponseWriter, r *http.Request) {
	cities, err := c.Cities.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	if cities == nil {
		cities = []*domain.City{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, cities)
}

// ListTags godoc
// @Summary List all tags
// @Tags common
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of tags"
// @Router /v1/tags [get]
func (c *CommonController) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := c.TagRepo.List(r.Context())
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

// ListActivityTypes godoc
// @Summary List place activity types
// @Tags common
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of activity types"
// @Router /v1/places/activity-types [get]
func (c *CommonController) ListActivityTypes(w http.ResponseWriter, r *http.Request) {
	types, err := c.Activities.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	if types == nil {
		types = []*domain.ActivityType{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, types)
}
