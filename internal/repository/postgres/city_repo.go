package postgres

import (
	"context"
	"database/sql"
	"errors"

	"mentorhub/internal/domain"
)

type cityRepository struct {
	DB *sql.DB
}

func NewCityRepository(db *sql.DB) domain.CityRepository {
	return &cityRepository{
		DB: db,
	}
}

func (r *cityRepository) List(ctx context.Context) ([]*domain.City, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, region_id, is_primary
		FROM cities
		ORDER BY is_primary DESC, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := []*domain.City{}
	for rows.Next() {
		c := &domain.City{}
		if err := rows.Scan(&c.ID, &c.Name, &c.RegionID, &c.IsPrimary); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

func (r *cityRepository) GetByID(ctx context.Context, id int64) (*domain.City, error) {
	c := &domain.City{}
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, region_id, is_primary
		FROM cities
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.RegionID, &c.IsPrimary)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}
