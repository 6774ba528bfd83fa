package postgres

import (
	"context"
	"database/sql"
	"errors"

	"mentorhub/internal/domain"
)

type roleRepository struct {
	DB *sql.DB
}

func NewRoleRepository(db *sql.DB) domain.RoleRepository {
	return &roleRepository{
		DB: db,
	}
}

func (r *roleRepository) GetByCode(ctx context.Context, code string) (*domain.Role, error) {
	role := &domain.Role{}
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, code
		FROM roles
		WHERE code = $1
	`, code).Scan(&role.ID, &role.Code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return role, nil
}

func (r *roleRepository) ListByUserID(ctx context.Context, userID int64) ([]*domain.Role, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT r.id, r.code
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1
		ORDER BY r.code
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := []*domain.Role{}
	for rows.Next() {
		role := &domain.Role{}
		if err := rows.Scan(&role.ID, &role.Code); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}
