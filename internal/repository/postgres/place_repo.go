package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"mentorhub/internal/domain"
)

type placeRepository struct {
	DB *sql.DB
}

func NewPlaceRepository(db *sql.DB) domain.PlaceRepository {
	return &placeRepository{
		DB: db,
	}
}

const placeColumns = "id, title, description, link, address, city_id, gender, age, age_restriction, chosen, output_to_main, moderation_flag, created_at, updated_at"

func scanPlace(row interface{ Scan(...any) error }) (*domain.Place, error) {
	p := &domain.Place{}
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Link, &p.Address, &p.CityID,
		&p.Gender, &p.Age, &p.AgeRestriction, &p.Chosen, &p.OutputToMain,
		&p.ModerationFlag, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *placeRepository) Create(ctx context.Context, place *domain.Place, tagIDs []int64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin place tx: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO places (title, description, link, address, city_id, gender, age, age_restriction, chosen, output_to_main, moderation_flag, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`,
		place.Title, place.Description, place.Link, place.Address, place.CityID,
		place.Gender, place.Age, place.AgeRestriction, place.Chosen,
		place.OutputToMain, place.ModerationFlag, place.CreatedAt, place.UpdatedAt,
	).Scan(&place.ID)
	if err != nil {
		return err
	}

	for _, tagID := range tagIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO place_tags (place_id, tag_id) VALUES ($1, $2)`,
			place.ID, tagID,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *placeRepository) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	query := `
		SELECT ` + placeColumns + `
		FROM places
		WHERE id = $1
	`
	place, err := scanPlace(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return place, nil
}

func (r *placeRepository) List(ctx context.Context, filter domain.PlaceListFilter) ([]*domain.Place, int, error) {
	where := []string{"moderation_flag = true"}
	args := []any{}
	if filter.CityID != nil {
		args = append(args, *filter.CityID)
		where = append(where, fmt.Sprintf("city_id = $%d", len(args)))
	}
	if len(filter.TagSlugs) > 0 {
		args = append(args, pq.Array(filter.TagSlugs))
		where = append(where, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM place_tags pt
			JOIN tags t ON t.id = pt.tag_id
			WHERE pt.place_id = places.id AND t.slug = ANY($%d)
		)`, len(args)))
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM places WHERE "+cond, args...,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Params.PageSize, filter.Params.Offset())
	query := fmt.Sprintf(`
		SELECT %s
		FROM places
		WHERE %s
		ORDER BY id DESC
		LIMIT $%d OFFSET $%d
	`, placeColumns, cond, len(args)-1, len(args))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	places := []*domain.Place{}
	for rows.Next() {
		place, err := scanPlace(rows)
		if err != nil {
			return nil, 0, err
		}
		places = append(places, place)
	}
	return places, total, rows.Err()
}

func (r *placeRepository) First(ctx context.Context, cityID *int64) (*domain.Place, error) {
	// Mentor choices first, then newest. Fall back to any city when the
	// requested city has no moderated places.
	if cityID != nil {
		place, err := scanPlace(r.DB.QueryRowContext(ctx, `
			SELECT `+placeColumns+`
			FROM places
			WHERE moderation_flag = true AND city_id = $1
			ORDER BY chosen DESC, id DESC
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
		WHERE moderation_flag = true
		ORDER BY chosen DESC, id DESC
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
