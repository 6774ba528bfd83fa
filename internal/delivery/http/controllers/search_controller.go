package controllers

import (
	"log/slog"
	"net/http"

	h "mentorhub/internal/delivery/http/helpers"
	"mentorhub/internal/domain"
)

type SearchController struct {
	Logger   *slog.Logger
	Service  domain.SearchService
	UserRepo domain.UserRepository
}

func NewSearchController(logger *slog.Logger, svc domain.SearchService, users domain.UserRepository) *SearchController {
	return &SearchController{
		Logger:   logger,
		Service:  svc,
		UserRepo: users,
	}
}

// Search godoc
// @Summary Federated search across all catalogs
// @Description Fuzzy-matches the text against the titles of events, places, articles, books, movies, videos, rights, and questions, and returns a single ranked list. Each entry carries the entity type and the site page it lives on. Events are scoped to the requester's city; anonymous requests may pass ?city=. Visibility rules per catalog apply. Empty text returns an empty list.
// @Tags search
// @Produce json
// @Param text query string true "Search text"
// @Param city query int false "City ID for anonymous requests"
// @Success 200 {object} helpers.APIResponse "data is an array of ranked results"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /v1/search [get]
func (c *SearchController) Search(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	requester := resolveRequester(r, c.UserRepo)

	results, err := c.Service.Search(r.Context(), text, requester)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	if results == nil {
		results = []*domain.SearchResult{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, results)
}
