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

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventColumns = "id, address, contact, phone, title, description, start_at, end_at, seats, canceled, city_id, tag_id, created_at, updated_at"

func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(
		&e.ID, &e.Address, &e.Contact, &e.Phone, &e.Title, &e.Description,
		&e.StartAt, &e.EndAt, &e.Seats, &e.Canceled, &e.CityID, &e.TagID,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (address, contact, phone, title, description, start_at, end_at, seats, canceled, city_id, tag_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		event.Address, event.Contact, event.Phone, event.Title, event.Description,
		event.StartAt, event.EndAt, event.Seats, event.Canceled, event.CityID, event.TagID,
		event.CreatedAt, event.UpdatedAt,
	).Scan(&event.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`
	event, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *eventRepository) List(ctx context.Context, filter domain.EventListFilter) ([]*domain.Event, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT ` + eventColumns + `
		FROM events
		WHERE canceled = false AND end_at > now() AND city_id = $1
	`)
	args := []any{filter.CityID}
	if len(filter.Months) > 0 {
		args = append(args, pq.Array(filter.Months))
		fmt.Fprintf(&sb, " AND EXTRACT(MONTH FROM start_at) = ANY($%d)", len(args))
	}
	if len(filter.Years) > 0 {
		args = append(args, pq.Array(filter.Years))
		fmt.Fprintf(&sb, " AND EXTRACT(YEAR FROM start_at) = ANY($%d)", len(args))
	}
	sb.WriteString(" ORDER BY start_at")

	rows, err := r.DB.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []*domain.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, id int64, upd domain.EventUpdate) (*domain.Event, error) {
	set := []string{"updated_at = $1"}
	args := []any{time.Now()}
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if upd.Address != nil {
		add("address", *upd.Address)
	}
	if upd.Contact != nil {
		add("contact", *upd.Contact)
	}
	if upd.Phone != nil {
		add("phone", *upd.Phone)
	}
	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.StartAt != nil {
		add("start_at", *upd.StartAt)
	}
	if upd.EndAt != nil {
		add("end_at", *upd.EndAt)
	}
	if upd.Seats != nil {
		add("seats", *upd.Seats)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE events
		SET %s
		WHERE id = $%d
		RETURNING `+eventColumns, strings.Join(set, ", "), len(args))

	event, err := scanEvent(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *eventRepository) Cancel(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE events SET canceled = true, updated_at = now() WHERE id = $1`, id)
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

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
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

func (r *eventRepository) CountParticipants(ctx context.Context, eventID int64) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM participations WHERE event_id = $1`, eventID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
