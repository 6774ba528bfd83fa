package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"mentorhub/internal/domain"
	"mentorhub/internal/search"
)

// searchSource binds one searchable collection to its type label, its
// destination page slug, and the visibility-filtered candidate query. The
// table is resolved once per request from the requester context.
type searchSource struct {
	modelName  string
	page       string
	candidates func(ctx context.Context) ([]*domain.SearchCandidate, error)
}

type searchService struct {
	repo domain.SearchRepository
}

// NewSearchService creates a SearchService over the given candidate repository.
func NewSearchService(repo domain.SearchRepository) domain.SearchService {
	return &searchService{repo: repo}
}

func (s *searchService) sources(requester domain.Requester) []searchSource {
	// City resolution: authenticated users search their home city;
	// anonymous users may pass an explicit city. Events require a
	// resolved city; requests without one get no events.
	eventCity := requester.CityID
	return []searchSource{
		{
			modelName: "articles",
			page:      "articles",
			candidates: func(ctx context.Context) ([]*domain.SearchCandidate, error) {
				return s.repo.ArticleCandidates(ctx)
			},
		},
		{
			modelName: "events",
			page:      "afisha",
			candidates: func(ctx context.Context) ([]*domain.SearchCandidate, error) {
				if eventCity == nil {
					return nil, nil
				}
				return s.repo.EventCandidates(ctx, eventCity)
			},
		},
		{
			modelName: "places",
			page:      "places",
			candidates: func(ctx context.Context) ([]*domain.SearchCandidate, error) {
				return s.repo.PlaceCandidates(ctx, requester.CityID)
			},
		},
		{
			modelName: "books",
			page:      "books",
			candidates: func(ctx context.Context) ([]*domain.SearchCandidate, error) {
				return s.repo.BookCandidates(ctx)
			},
		},
		{
			modelName: "movies",
			page:      "movies",
			candidates: func(ctx context.Context) ([]*domain.SearchCandidate, error) {
				return s.repo.MovieCandidates(ctx)
			},
		},
		{
			modelName: "videos",
			page:      "video",
			candidates: func(ctx context.Context) ([]*domain.SearchCandidate, error) {
				return s.repo.VideoCandidates(ctx, requester.Authenticated)
			},
		},
		{
			modelName: "rights",
			page:      "rights",
			candidates: func(ctx context.Context) ([]*domain.SearchCandidate, error) {
				return s.repo.RightCandidates(ctx)
			},
		},
		{
			modelName: "questions",
			page:      "questions",
			candidates: func(ctx context.Context) ([]*domain.SearchCandidate, error) {
				return s.repo.QuestionCandidates(ctx)
			},
		},
	}
}

func (s *searchService) Search(ctx context.Context, text string, requester domain.Requester) ([]*domain.SearchResult, error) {
	results := []*domain.SearchResult{}
	if strings.TrimSpace(text) == "" {
		return results, nil
	}

	for _, src := range s.sources(requester) {
		candidates, err := src.candidates(ctx)
		if err != nil {
			return nil, fmt.Errorf("search %s: %w", src.modelName, err)
		}
		for _, c := range candidates {
			rank := search.Similarity(c.Title, text)
			if rank <= search.RankThreshold {
				continue
			}
			results = append(results, &domain.SearchResult{
				Title:     c.Title,
				ModelName: src.modelName,
				Page:      src.page,
				ID:        c.ID,
				Rank:      rank,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Rank > results[j].Rank
	})
	return results, nil
}
