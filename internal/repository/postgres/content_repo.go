package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"mentorhub/internal/domain"
)

type rightRepository struct {
	DB *sql.DB
}

func NewRightRepository(db *sql.DB) domain.RightRepository {
	return &rightRepository{
		DB: db,
	}
}

func (r *rightRepository) List(ctx context.Context, tagSlugs []string, params domain.PaginationParams) ([]*domain.Right, int, error) {
	cond := ""
	args := []any{}
	if len(tagSlugs) > 0 {
		args = append(args, pq.Array(tagSlugs))
		cond = `WHERE EXISTS (
			SELECT 1 FROM right_tags rt
			JOIN tags t ON t.id = rt.tag_id
			WHERE rt.right_id = rights.id AND t.slug = ANY($1)
		)`
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM rights "+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, params.PageSize, params.Offset())
	query := fmt.Sprintf(`
		SELECT id, title, description, body
		FROM rights
		%s
		ORDER BY id DESC
		LIMIT $%d OFFSET $%d
	`, cond, len(args)-1, len(args))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	rights := []*domain.Right{}
	for rows.Next() {
		rt := &domain.Right{}
		if err := rows.Scan(&rt.ID, &rt.Title, &rt.Description, &rt.Body); err != nil {
			return nil, 0, err
		}
		rights = append(rights, rt)
	}
	return rights, total, rows.Err()
}

func (r *rightRepository) GetByID(ctx context.Context, id int64) (*domain.Right, error) {
	rt := &domain.Right{}
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, title, description, body
		FROM rights
		WHERE id = $1
	`, id).Scan(&rt.ID, &rt.Title, &rt.Description, &rt.Body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rt, nil
}

type questionRepository struct {
	DB *sql.DB
}

func NewQuestionRepository(db *sql.DB) domain.QuestionRepository {
	return &questionRepository{
		DB: db,
	}
}

func (r *questionRepository) Create(ctx context.Context, q *domain.Question) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO questions (title, output_to_main, created_at)
		VALUES ($1, false, $2)
		RETURNING id
	`, q.Title, q.CreatedAt).Scan(&q.ID)
}

// List only returns answered questions.
func (r *questionRepository) List(ctx context.Context, tagSlugs []string, params domain.PaginationParams) ([]*domain.Question, int, error) {
	where := "answer IS NOT NULL AND answer <> ''"
	args := []any{}
	if len(tagSlugs) > 0 {
		args = append(args, pq.Array(tagSlugs))
		where += fmt.Sprintf(` AND EXISTS (
			SELECT 1 FROM question_tags qt
			JOIN tags t ON t.id = qt.tag_id
			WHERE qt.question_id = questions.id AND t.slug = ANY($%d)
		)`, len(args))
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM questions WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, params.PageSize, params.Offset())
	query := fmt.Sprintf(`
		SELECT id, title, answer, output_to_main, created_at
		FROM questions
		WHERE %s
		ORDER BY id DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	questions := []*domain.Question{}
	for rows.Next() {
		q := &domain.Question{}
		if err := rows.Scan(&q.ID, &q.Title, &q.Answer, &q.OutputToMain, &q.CreatedAt); err != nil {
			return nil, 0, err
		}
		questions = append(questions, q)
	}
	return questions, total, rows.Err()
}
