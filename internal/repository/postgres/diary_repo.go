package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"mentorhub/internal/domain"
)

type diaryRepository struct {
	DB *sql.DB
}

func NewDiaryRepository(db *sql.DB) domain.DiaryRepository {
	return &diaryRepository{
		DB: db,
	}
}

const diaryColumns = "id, mentor_id, place, date, description, mark, sent_to_curator, created_at, updated_at"

func scanDiary(row interface{ Scan(...any) error }) (*domain.Diary, error) {
	d := &domain.Diary{}
	err := row.Scan(
		&d.ID, &d.MentorID, &d.Place, &d.Date, &d.Description, &d.Mark,
		&d.SentToCurator, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Create inserts the diary. The unique (mentor_id, place, date) constraint
// maps to ErrInvalidInput.
func (r *diaryRepository) Create(ctx context.Context, d *domain.Diary) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO diaries (mentor_id, place, date, description, mark, sent_to_curator, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`,
		d.MentorID, d.Place, d.Date, d.Description, d.Mark,
		d.SentToCurator, d.CreatedAt, d.UpdatedAt,
	).Scan(&d.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("%w: diary for this place and date already exists", domain.ErrInvalidInput)
		}
		return err
	}
	return nil
}

func (r *diaryRepository) GetByID(ctx context.Context, id int64) (*domain.Diary, error) {
	d, err := scanDiary(r.DB.QueryRowContext(ctx, `
		SELECT `+diaryColumns+`
		FROM diaries
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (r *diaryRepository) ListByMentorID(ctx context.Context, mentorID int64) ([]*domain.Diary, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+diaryColumns+`
		FROM diaries
		WHERE mentor_id = $1
		ORDER BY date DESC, id DESC
	`, mentorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	diaries := []*domain.Diary{}
	for rows.Next() {
		d, err := scanDiary(rows)
		if err != nil {
			return nil, err
		}
		diaries = append(diaries, d)
	}
	return diaries, rows.Err()
}

func (r *diaryRepository) Update(ctx context.Context, id int64, upd domain.DiaryUpdate) (*domain.Diary, error) {
	set := []string{"updated_at = $1"}
	args := []any{time.Now()}
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if upd.Place != nil {
		add("place", *upd.Place)
	}
	if upd.Date != nil {
		add("date", *upd.Date)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.Mark != nil {
		add("mark", *upd.Mark)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE diaries
		SET %s
		WHERE id = $%d
		RETURNING `+diaryColumns, strings.Join(set, ", "), len(args))

	d, err := scanDiary(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: diary for this place and date already exists", domain.ErrInvalidInput)
		}
		return nil, err
	}
	return d, nil
}

func (r *diaryRepository) MarkSent(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE diaries SET sent_to_curator = true, updated_at = now() WHERE id = $1
	`, id)
	if err != nil {
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
