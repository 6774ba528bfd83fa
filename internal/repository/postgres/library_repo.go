package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"mentorhub/internal/domain"
)

// Repositories for the read-and-watch catalog: articles, books, movies,
// and videos.

type articleRepository struct {
	DB *sql.DB
}

func NewArticleRepository(db *sql.DB) domain.ArticleRepository {
	return &articleRepository{
		DB: db,
	}
}

const articleColumns = "id, title, info, annotation, article_url, output_to_main, pinned_full_size, created_at"

func scanArticle(row interface{ Scan(...any) error }) (*domain.Article, error) {
	a := &domain.Article{}
	err := row.Scan(&a.ID, &a.Title, &a.Info, &a.Annotation, &a.ArticleURL, &a.OutputToMain, &a.PinnedFullSize, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *articleRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Article, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		ORDER BY pinned_full_size DESC, id DESC
		LIMIT $1 OFFSET $2
	`, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	articles := []*domain.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, 0, err
		}
		articles = append(articles, a)
	}
	return articles, total, rows.Err()
}

func (r *articleRepository) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	a, err := scanArticle(r.DB.QueryRowContext(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

type bookRepository struct {
	DB *sql.DB
}

func NewBookRepository(db *sql.DB) domain.BookRepository {
	return &bookRepository{
		DB: db,
	}
}

const bookColumns = "id, title, author, year, annotation, type_id"

func scanBook(row interface{ Scan(...any) error }) (*domain.Book, error) {
	b := &domain.Book{}
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Year, &b.Annotation, &b.TypeID)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// List interleaves books round-robin across types so every type surfaces
// near the top of the catalog.
func (r *bookRepository) List(ctx context.Context, typeSlug string, params domain.PaginationParams) ([]*domain.Book, int, error) {
	cond := ""
	args := []any{}
	if typeSlug != "" {
		args = append(args, typeSlug)
		cond = `WHERE type_id IN (SELECT id FROM book_types WHERE slug = $1)`
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM books "+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, params.PageSize, params.Offset())
	query := fmt.Sprintf(`
		SELECT %s
		FROM (
			SELECT %s, RANK() OVER (PARTITION BY type_id ORDER BY id DESC) AS type_rank
			FROM books
			%s
		) ranked
		ORDER BY type_rank, id DESC
		LIMIT $%d OFFSET $%d
	`, bookColumns, bookColumns, cond, len(args)-1, len(args))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	books := []*domain.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, 0, err
		}
		books = append(books, b)
	}
	return books, total, rows.Err()
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	b, err := scanBook(r.DB.QueryRowContext(ctx, `
		SELECT `+bookColumns+`
		FROM books
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *bookRepository) ListUsedTypes(ctx context.Context) ([]*domain.BookType, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, slug, color
		FROM book_types
		WHERE id IN (SELECT DISTINCT type_id FROM books WHERE type_id IS NOT NULL)
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := []*domain.BookType{}
	for rows.Next() {
		t := &domain.BookType{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.Color); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

type movieRepository struct {
	DB *sql.DB
}

func NewMovieRepository(db *sql.DB) domain.MovieRepository {
	return &movieRepository{
		DB: db,
	}
}

const movieColumns = "id, title, info, annotation, link, output_to_main"

func (r *movieRepository) List(ctx context.Context, tagSlugs []string, params domain.PaginationParams) ([]*domain.Movie, int, error) {
	cond := ""
	args := []any{}
	if len(tagSlugs) > 0 {
		args = append(args, pq.Array(tagSlugs))
		cond = `WHERE EXISTS (
			SELECT 1 FROM movie_tags mt
			JOIN tags t ON t.id = mt.tag_id
			WHERE mt.movie_id = movies.id AND t.slug = ANY($1)
		)`
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM movies "+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, params.PageSize, params.Offset())
	query := fmt.Sprintf(`
		SELECT %s
		FROM movies
		%s
		ORDER BY id DESC
		LIMIT $%d OFFSET $%d
	`, movieColumns, cond, len(args)-1, len(args))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	movies := []*domain.Movie{}
	for rows.Next() {
		m := &domain.Movie{}
		if err := rows.Scan(&m.ID, &m.Title, &m.Info, &m.Annotation, &m.Link, &m.OutputToMain); err != nil {
			return nil, 0, err
		}
		movies = append(movies, m)
	}
	return movies, total, rows.Err()
}

func (r *movieRepository) GetByID(ctx context.Context, id int64) (*domain.Movie, error) {
	m := &domain.Movie{}
	err := r.DB.QueryRowContext(ctx, `
		SELECT `+movieColumns+`
		FROM movies
		WHERE id = $1
	`, id).Scan(&m.ID, &m.Title, &m.Info, &m.Annotation, &m.Link, &m.OutputToMain)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

type videoRepository struct {
	DB *sql.DB
}

func NewVideoRepository(db *sql.DB) domain.VideoRepository {
	return &videoRepository{
		DB: db,
	}
}

const videoColumns = "id, title, info, link, duration, output_to_main, pinned_full_size, resource_group"

func scanVideo(row interface{ Scan(...any) error }) (*domain.Video, error) {
	v := &domain.Video{}
	err := row.Scan(&v.ID, &v.Title, &v.Info, &v.Link, &v.Duration, &v.OutputToMain, &v.PinnedFullSize, &v.ResourceGroup)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *videoRepository) List(ctx context.Context, includeRestricted bool, tagSlugs []string, params domain.PaginationParams) ([]*domain.Video, int, error) {
	where := []string{"true"}
	args := []any{}
	if !includeRestricted {
		where[0] = "resource_group = false"
	}
	if len(tagSlugs) > 0 {
		args = append(args, pq.Array(tagSlugs))
		where = append(where, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM video_tags vt
			JOIN tags t ON t.id = vt.tag_id
			WHERE vt.video_id = videos.id AND t.slug = ANY($%d)
		)`, len(args)))
	}
	cond := where[0]
	if len(where) > 1 {
		cond = where[0] + " AND " + where[1]
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM videos WHERE "+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, params.PageSize, params.Offset())
	query := fmt.Sprintf(`
		SELECT %s
		FROM videos
		WHERE %s
		ORDER BY pinned_full_size DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, videoColumns, cond, len(args)-1, len(args))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	videos := []*domain.Video{}
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, 0, err
		}
		videos = append(videos, v)
	}
	return videos, total, rows.Err()
}

func (r *videoRepository) GetByID(ctx context.Context, id int64) (*domain.Video, error) {
	v, err := scanVideo(r.DB.QueryRowContext(ctx, `
		SELECT `+videoColumns+`
		FROM videos
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}
