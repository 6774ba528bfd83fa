package postgres

import (
	"context"
	"database/sql"

	"mentorhub/internal/domain"
)

type activityTypeRepository struct {
	DB *sql.DB
}

func NewActivityTypeRepository(db *sql.DB) domain.ActivityTypeRepository {
	return &activityTypeRepository{
		DB: db,
	}
}

func (r *activityTypeRepository) List(ctx context.Context) ([]*domain.ActivityType, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name
		FROM activity_types
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := []*domain.ActivityType{}
	for rows.Next() {
		t := &domain.ActivityType{}
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}
