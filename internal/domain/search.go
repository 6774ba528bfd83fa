package domain

import "context"

// Requester is the identity context a read request runs under. CityID is
// the resolved city: the authenticated user's home city, or the anonymous
// city query parameter when present.
type Requester struct {
	Authenticated bool
	UserID        int64
	CityID        *int64
}

// SearchCandidate is one row considered for fuzzy matching: the entity id
// and the title to score.
type SearchCandidate struct {
	ID    int64
	Title string
}

// SearchResult is one entry of the merged, ranked search output.
// swagger:model SearchResult
type SearchResult struct {
	Title     string  `json:"title"`
	ModelName string  `json:"model_name"`
	Page      string  `json:"page"`
	ID        int64   `json:"id"`
	Rank      float64 `json:"rank"`
}

// SearchRepository returns the visible candidates of each searchable
// collection. Visibility rules are applied here, before scoring:
//
//   - Events: not canceled, not ended, scoped to cityID. A nil cityID
//     returns no events (anonymous requests without a city see none).
//   - Places: moderated only; cityID nil means all cities.
//   - Videos: resource-group videos excluded unless includeRestricted.
//   - Questions: answered only.
//   - Articles, Books, Movies, Rights: unfiltered.
type SearchRepository interface {
	EventCandidates(ctx context.Context, cityID *int64) ([]*SearchCandidate, error)
	PlaceCandidates(ctx context.Context, cityID *int64) ([]*SearchCandidate, error)
	VideoCandidates(ctx context.Context, includeRestricted bool) ([]*SearchCandidate, error)
	ArticleCandidates(ctx context.Context) ([]*SearchCandidate, error)
	BookCandidates(ctx context.Context) ([]*SearchCandidate, error)
	MovieCandidates(ctx context.Context) ([]*SearchCandidate, error)
	RightCandidates(ctx context.Context) ([]*SearchCandidate, error)
	QuestionCandidates(ctx context.Context) ([]*SearchCandidate, error)
}

// SearchService computes the federated cross-entity search.
type SearchService interface {
	// Search scores every visible candidate's title against text and
	// returns survivors merged across all collections, ordered by rank
	// descending. Empty text yields an empty result.
	Search(ctx context.Context, text string, requester Requester) ([]*SearchResult, error)
}
