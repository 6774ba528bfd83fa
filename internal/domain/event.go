package domain

import (
	"context"
	"time"
)

// Event is a calendar event mentors can book seats for.
// Seats is always >= 1. Canceled events reject new participations.
// swagger:model Event
type Event struct {
	ID          int64     `json:"id"`
	Address     string    `json:"address"`
	Contact     string    `json:"contact"`
	Phone       string    `json:"phone"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	Seats       int       `json:"seats"`
	Canceled    bool      `json:"canceled"`
	CityID      int64     `json:"city_id"`
	TagID       int64     `json:"tag_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Ended reports whether the event's end time is at or before now.
func (e *Event) Ended(now time.Time) bool {
	return !e.EndAt.After(now)
}

// EventWithSeats is an event annotated for a specific requester.
// swagger:model EventWithSeats
type EventWithSeats struct {
	*Event
	Booked      bool `json:"booked"`
	TakenSeats  int  `json:"taken_seats"`
	RemainSeats int  `json:"remain_seats"`
}

// EventListFilter narrows event listings. Months and Years filter on the
// start time; zero-length slices mean no filtering.
type EventListFilter struct {
	CityID int64
	Months []int
	Years  []int
}

// EventUpdate carries optional admin edits; nil fields are left unchanged.
type EventUpdate struct {
	Address     *string
	Contact     *string
	Phone       *string
	Title       *string
	Description *string
	StartAt     *time.Time
	EndAt       *time.Time
	Seats       *int
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	// List returns future, non-canceled events matching the filter,
	// ordered by start time ascending.
	List(ctx context.Context, filter EventListFilter) ([]*Event, error)
	Update(ctx context.Context, id int64, upd EventUpdate) (*Event, error)
	// Cancel sets the canceled flag. Returns ErrNotFound for unknown ids.
	Cancel(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	CountParticipants(ctx context.Context, eventID int64) (int, error)
}

// EventService defines event catalog operations.
type EventService interface {
	// List returns upcoming events in the user's city annotated with
	// booked and remaining-seat counts for that user.
	List(ctx context.Context, userID int64, filter EventListFilter) ([]*EventWithSeats, error)
	Get(ctx context.Context, id int64) (*Event, error)
	Create(ctx context.Context, event *Event) (*Event, error)
	Update(ctx context.Context, id int64, upd EventUpdate) (*Event, error)
	// Cancel marks the event canceled and notifies active participants.
	Cancel(ctx context.Context, id int64) error
}
