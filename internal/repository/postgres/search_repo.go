package postgres

import (
	"context"
	"database/sql"

	"mentorhub/internal/domain"
)

type searchRepository struct {
	DB *sql.DB
}

// NewSearchRepository returns the candidate queries behind the federated
// search. Each method applies its collection's visibility rules in SQL;
// scoring happens in the service.
func NewSearchRepository(db *sql.DB) domain.SearchRepository {
	return &searchRepository{
		DB: db,
	}
}

func (r *searchRepository) candidates(ctx context.Context, query string, args ...any) ([]*domain.SearchCandidate, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.SearchCandidate{}
	for rows.Next() {
		c := &domain.SearchCandidate{}
		if err := rows.Scan(&c.ID, &c.Title); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// EventCandidates returns future, non-canceled events in the given city.
// A nil cityID means no city resolved: no events are searchable.
func (r *searchRepository) EventCandidates(ctx context.Context, cityID *int64) ([]*domain.SearchCandidate, error) {
	if cityID == nil {
		return []*domain.SearchCandidate{}, nil
	}
	return r.candidates(ctx, `
		SELECT id, title
		FROM events
		WHERE canceled = false AND end_at > now() AND city_id = $1
	`, *cityID)
}

func (r *searchRepository) PlaceCandidates(ctx context.Context, cityID *int64) ([]*domain.SearchCandidate, error) {
	if cityID != nil {
		return r.candidates(ctx, `
			SELECT id, title
			FROM places
			WHERE moderation_flag = true AND city_id = $1
		`, *cityID)
	}
	return r.candidates(ctx, `
		SELECT id, title
		FROM places
		WHERE moderation_flag = true
	`)
}

func (r *searchRepository) VideoCandidates(ctx context.Context, includeRestricted bool) ([]*domain.SearchCandidate, error) {
	if includeRestricted {
		return r.candidates(ctx, `SELECT id, title FROM videos`)
	}
	return r.candidates(ctx, `
		SELECT id, title
		FROM videos
		WHERE resource_group = false
	`)
}

func (r *searchRepository) ArticleCandidates(ctx context.Context) ([]*domain.SearchCandidate, error) {
	return r.candidates(ctx, `SELECT id, title FROM articles`)
}

func (r *searchRepository) BookCandidates(ctx context.Context) ([]*domain.SearchCandidate, error) {
	return r.candidates(ctx, `SELECT id, title FROM books`)
}

func (r *searchRepository) MovieCandidates(ctx context.Context) ([]*domain.SearchCandidate, error) {
	return r.candidates(ctx, `SELECT id, title FROM movies`)
}

func (r *searchRepository) RightCandidates(ctx context.Context) ([]*domain.SearchCandidate, error) {
	return r.candidates(ctx, `SELECT id, title FROM rights`)
}

func (r *searchRepository) QuestionCandidates(ctx context.Context) ([]*domain.SearchCandidate, error) {
	return r.candidates(ctx, `
		SELECT id, title
		FROM questions
		WHERE answer IS NOT NULL AND answer <> ''
	`)
}
