package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"mentorhub/internal/domain"
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

type participationRepository struct {
	DB *sql.DB
}

func NewParticipationRepository(db *sql.DB) domain.ParticipationRepository {
	return &participationRepository{
		DB: db,
	}
}

// Create books the user into the event inside a single transaction. The
// event row is locked with SELECT ... FOR UPDATE and the lifetime,
// capacity, and cancellation rules are re-checked under the lock, so two
// concurrent bookings for the last seat serialize and the loser gets
// ErrEventFull instead of overbooking.
func (r *participationRepository) Create(ctx context.Context, p *domain.Participation) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin booking tx: %w", err)
	}
	defer tx.Rollback()

	var seats int
	var canceled, ended bool
	err = tx.QueryRowContext(ctx, `
		SELECT seats, canceled, end_at <= now()
		FROM events
		WHERE id = $1
		FOR UPDATE
	`, p.EventID).Scan(&seats, &canceled, &ended)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	if ended {
		return domain.ErrEventEnded
	}

	var taken int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM participations WHERE event_id = $1`, p.EventID,
	).Scan(&taken)
	if err != nil {
		return err
	}
	if taken >= seats {
		return domain.ErrEventFull
	}

	if canceled {
		return domain.ErrEventCanceled
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO participations (event_id, user_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, p.EventID, p.UserID, p.CreatedAt).Scan(&p.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrDuplicateParticipation
		}
		return err
	}

	return tx.Commit()
}

func (r *participationRepository) GetByEventAndUser(ctx context.Context, eventID, userID int64) (*domain.Participation, error) {
	query := `
		SELECT id, event_id, user_id, created_at
		FROM participations
		WHERE event_id = $1 AND user_id = $2
	`
	p := &domain.Participation{}
	err := r.DB.QueryRowContext(ctx, query, eventID, userID).
		Scan(&p.ID, &p.EventID, &p.UserID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *participationRepository) ListByUserID(ctx context.Context, userID int64) ([]*domain.Participation, error) {
	query := `
		SELECT id, event_id, user_id, created_at
		FROM participations
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := []*domain.Participation{}
	for rows.Next() {
		p := &domain.Participation{}
		if err := rows.Scan(&p.ID, &p.EventID, &p.UserID, &p.CreatedAt); err != nil {
			return nil, err
		}
		regs = append(regs, p)
	}
	return regs, rows.Err()
}

func (r *participationRepository) Delete(ctx context.Context, eventID, userID int64) error {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM participations WHERE event_id = $1 AND user_id = $2`, eventID, userID)
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

func (r *participationRepository) ListUserEmailsByEventID(ctx context.Context, eventID int64) ([]string, error) {
	query := `
		SELECT u.email
		FROM participations p
		JOIN users u ON u.id = p.user_id
		WHERE p.event_id = $1
		ORDER BY u.email
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	emails := []string{}
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}
