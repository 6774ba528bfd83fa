package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"mentorhub/internal/domain"
)

// foreignKeyViolation is the Postgres error code for FK constraint violations.
const foreignKeyViolation = "23503"

type tagRepository struct {
	DB *sql.DB
}

func NewTagRepository(db *sql.DB) domain.TagRepository {
	return &tagRepository{
		DB: db,
	}
}

// tagLinkTables maps a tag category to its join table and link column.
var tagLinkTables = map[string]struct {
	table  string
	column string
}{
	domain.TagCategoryPlaces:    {"place_tags", "place_id"},
	domain.TagCategoryMovies:    {"movie_tags", "movie_id"},
	domain.TagCategoryVideos:    {"video_tags", "video_id"},
	domain.TagCategoryQuestions: {"question_tags", "question_id"},
	domain.TagCategoryRights:    {"right_tags", "right_id"},
}

func (r *tagRepository) List(ctx context.Context) ([]*domain.Tag, error) {
	return r.queryTags(ctx, `
		SELECT id, name, category, slug, tag_order
		FROM tags
		ORDER BY category, tag_order
	`)
}

func (r *tagRepository) ListUsed(ctx context.Context, category string) ([]*domain.Tag, error) {
	if category == domain.TagCategoryEvents {
		// Events reference their tag directly, not through a join table.
		return r.queryTags(ctx, `
			SELECT id, name, category, slug, tag_order
			FROM tags
			WHERE category = $1 AND id IN (SELECT DISTINCT tag_id FROM events)
			ORDER BY tag_order
		`, category)
	}
	link, ok := tagLinkTables[category]
	if !ok {
		return nil, fmt.Errorf("%w: unknown tag category %q", domain.ErrInvalidInput, category)
	}
	query := fmt.Sprintf(`
		SELECT id, name, category, slug, tag_order
		FROM tags
		WHERE category = $1 AND id IN (SELECT DISTINCT tag_id FROM %s)
		ORDER BY tag_order
	`, link.table)
	return r.queryTags(ctx, query, category)
}

func (r *tagRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tag, error) {
	t := &domain.Tag{}
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, category, slug, tag_order
		FROM tags
		WHERE slug = $1
	`, slug).Scan(&t.ID, &t.Name, &t.Category, &t.Slug, &t.Order)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// Delete removes the tag. Tags still linked to content are protected by
// FK constraints; the violation maps to ErrTagInUse.
func (r *tagRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return domain.ErrTagInUse
		}
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *tagRepository) queryTags(ctx context.Context, query string, args ...any) ([]*domain.Tag, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []*domain.Tag{}
	for rows.Next() {
		t := &domain.Tag{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.Slug, &t.Order); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}
