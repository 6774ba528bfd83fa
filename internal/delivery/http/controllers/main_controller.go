package controllers

import (
	"log/slog"
	"net/http"

	h "mentorhub/internal/delivery/http/helpers"
	"mentorhub/internal/domain"
)

type MainPageController struct {
	Logger   *slog.Logger
	Service  domain.MainPageService
	UserRepo domain.UserRepository
}

func NewMainPageController(logger *slog.Logger, svc domain.MainPageService, users domain.UserRepository) *MainPageController {
	return &MainPageController{
		Logger:   logger,
		Service:  svc,
		UserRepo: users,
	}
}

// Get godoc
// @Summary Get the landing page aggregate
// @Description Returns the landing page sections in one payload: the next event in the requester's city (authenticated users only), a featured place and video, and the main-flagged articles, movies, and answered questions.
// @Tags main
// @Produce json
// @Param city query int false "City ID for anonymous requests"
// @Success 200 {object} helpers.APIResponse "data contains the main page sections"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /v1/main [get]
func (c *MainPageController) Get(w http.ResponseWriter, r *http.Request) {
	requester := resolveRequester(r, c.UserRepo)
	page, err := c.Service.Get(r.Context(), requester)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, page)
}
