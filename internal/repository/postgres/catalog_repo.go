package postgres

import (
	"context"
	"database/sql"
	"errors"

	"mentorhub/internal/domain"
)

type catalogRepository struct {
	DB *sql.DB
}

func NewCatalogRepository(db *sql.DB) domain.CatalogRepository {
	return &catalogRepository{
		DB: db,
	}
}

const catalogColumns = "id, title, description, image_caption, body"

func scanCatalog(row interface{ Scan(...any) error }) (*domain.Catalog, error) {
	c := &domain.Catalog{}
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.ImageCaption, &c.Body)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *catalogRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Catalog, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM catalogs`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+catalogColumns+`
		FROM catalogs
		ORDER BY id DESC
		LIMIT $1 OFFSET $2
	`, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	catalogs := []*domain.Catalog{}
	for rows.Next() {
		c, err := scanCatalog(rows)
		if err != nil {
			return nil, 0, err
		}
		catalogs = append(catalogs, c)
	}
	return catalogs, total, rows.Err()
}

func (r *catalogRepository) GetByID(ctx context.Context, id int64) (*domain.Catalog, error) {
	c, err := scanCatalog(r.DB.QueryRowContext(ctx, `
		SELECT `+catalogColumns+`
		FROM catalogs
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}
