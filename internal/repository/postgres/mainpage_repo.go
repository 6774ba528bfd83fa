package postgres

import (
	"context"
	"database/sql"
	"errors"

	"mentorhub/internal/domain"
)

type mainPageRepository struct {
	DB *sql.DB
}

func NewMainPageRepository(db *sql.DB) domain.MainPageRepository {
	return &mainPageRepository{
		DB: db,
	}
}

func (r *mainPageRepository) NextEvent(ctx context.Context, cityID int64) (*domain.Event, error) {
	event, err := scanEvent(r.DB.QueryRowContext(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE canceled = false AND end_at > now() AND city_id = $1
		ORDER BY start_at
		LIMIT 1
	`, cityID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *mainPageRepository) FirstPlace(ctx context.Context, cityID *int64) (*domain.Place, error) {
	if cityID != nil {
		place, err := scanPlace(r.DB.QueryRowContext(ctx, `
			SELECT `+placeColumns+`
			FROM places
			WHERE moderation_flag = true AND output_to_main = true AND city_id = $1
			ORDER BY id DESC
			LIMIT 1
		`, *cityID))
		if err == nil {
			return place, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
	}
	place, err := scanPlace(r.DB.QueryRowContext(ctx, `
		SELECT `+placeColumns+`
		FROM places
		WHERE moderation_flag = true AND output_to_main = true
		ORDER BY id DESC
		LIMIT 1
	`))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return place, nil
}

func (r *mainPageRepository) FirstVideo(ctx context.Context, includeRestricted bool) (*domain.Video, error) {
	cond := "output_to_main = true"
	if !includeRestricted {
		cond += " AND resource_group = false"
	}
	video, err := scanVideo(r.DB.QueryRowContext(ctx, `
		SELECT `+videoColumns+`
		FROM videos
		WHERE `+cond+`
		ORDER BY pinned_full_size DESC, id DESC
		LIMIT 1
	`))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return video, nil
}

// FirstHistory returns the oldest story flagged for the main page.
func (r *mainPageRepository) FirstHistory(ctx context.Context) (*domain.History, error) {
	s, err := scanHistory(r.DB.QueryRowContext(ctx, `
		SELECT `+historyColumns+`
		FROM histories h
		JOIN users u ON u.id = h.mentor_id
		WHERE h.output_to_main = true
		ORDER BY h.id
		LIMIT 1
	`))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *mainPageRepository) MainArticles(ctx context.Context, limit int) ([]*domain.Article, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE output_to_main = true
		ORDER BY pinned_full_size DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := []*domain.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func (r *mainPageRepository) MainMovies(ctx context.Context, limit int) ([]*domain.Movie, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+movieColumns+`
		FROM movies
		WHERE output_to_main = true
		ORDER BY id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []*domain.Movie{}
	for rows.Next() {
		m := &domain.Movie{}
		if err := rows.Scan(&m.ID, &m.Title, &m.Info, &m.Annotation, &m.Link, &m.OutputToMain); err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

func (r *mainPageRepository) MainQuestions(ctx context.Context, limit int) ([]*domain.Question, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, title, answer, output_to_main, created_at
		FROM questions
		WHERE output_to_main = true AND answer IS NOT NULL AND answer <> ''
		ORDER BY id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []*domain.Question{}
	for rows.Next() {
		q := &domain.Question{}
		if err := rows.Scan(&q.ID, &q.Title, &q.Answer, &q.OutputToMain, &q.CreatedAt); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}
