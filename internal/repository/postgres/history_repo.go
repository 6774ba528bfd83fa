package postgres

import (
	"context"
	"database/sql"
	"errors"

	"mentorhub/internal/domain"
)

type historyRepository struct {
	DB *sql.DB
}

func NewHistoryRepository(db *sql.DB) domain.HistoryRepository {
	return &historyRepository{
		DB: db,
	}
}

const historyColumns = "h.id, h.title, h.mentor_id, h.child, h.together_since, h.description, h.upper_body, h.lower_body, h.output_to_main, u.first_name, u.email"

func scanHistory(row interface{ Scan(...any) error }) (*domain.History, error) {
	s := &domain.History{Mentor: &domain.HistoryMentor{}}
	err := row.Scan(&s.ID, &s.Title, &s.MentorID, &s.Child, &s.TogetherSince,
		&s.Description, &s.UpperBody, &s.LowerBody, &s.OutputToMain,
		&s.Mentor.FirstName, &s.Mentor.Email)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// List projects each story to its id and the "<mentor> и <child>" display
// pair, newest first.
func (r *historyRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.HistoryListItem, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM histories`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT h.id, u.first_name || ' и ' || h.child AS pair
		FROM histories h
		JOIN users u ON u.id = h.mentor_id
		ORDER BY h.id DESC
		LIMIT $1 OFFSET $2
	`, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := []*domain.HistoryListItem{}
	for rows.Next() {
		item := &domain.HistoryListItem{}
		if err := rows.Scan(&item.ID, &item.Pair); err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	return items, total, rows.Err()
}

func (r *historyRepository) GetByID(ctx context.Context, id int64) (*domain.History, error) {
	s, err := scanHistory(r.DB.QueryRowContext(ctx, `
		SELECT `+historyColumns+`
		FROM histories h
		JOIN users u ON u.id = h.mentor_id
		WHERE h.id = $1
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}
