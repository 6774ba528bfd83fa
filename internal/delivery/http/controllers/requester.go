package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"mentorhub/internal/delivery/http/middleware"
	"mentorhub/internal/domain"
)

// resolveRequester builds the identity context for visibility-scoped reads.
// Authenticated requests resolve the user's home city; anonymous requests
// may pass ?city=<id>. A lookup failure degrades to an anonymous requester.
func resolveRequester(r *http.Request, users domain.UserRepository) domain.Requester {
	if userID, ok := middleware.UserIDFromContext(r.Context()); ok {
		requester := domain.Requester{Authenticated: true, UserID: userID}
		if user, err := users.GetByID(r.Context(), userID); err == nil {
			requester.CityID = user.CityID
		}
		return requester
	}

	requester := domain.Requester{}
	if s := r.URL.Query().Get("city"); s != "" {
		if id, err := strconv.ParseInt(s, 10, 64); err == nil && id > 0 {
			requester.CityID = &id
		}
	}
	return requester
}

// pathID parses the named path segment as a positive int64 id.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryTags splits the ?tags= parameter into slugs.
func queryTags(r *http.Request) []string {
	raw := r.URL.Query().Get("tags")
	if raw == "" {
		return nil
	}
	var slugs []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			slugs = append(slugs, s)
		}
	}
	return slugs
}
