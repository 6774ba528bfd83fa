package domain

import (
	"context"
	"time"
)

// Participation is a confirmed booking of one user into one event's
// capacity-limited attendance list. Immutable once created; removed on
// withdrawal and cascade-deleted with its event.
// swagger:model Participation
type Participation struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"event_id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ParticipationWithEvent bundles a participation with its event, annotated
// with seat counts.
type ParticipationWithEvent struct {
	Participation *Participation  `json:"participation"`
	Event         *EventWithSeats `json:"event"`
}

// ParticipationRepository defines storage for event participations.
//
// Create must be atomic with respect to the event's seat count: the
// capacity, lifetime, and cancellation rules are re-checked under a row
// lock on the event so concurrent bookings cannot overshoot Seats.
type ParticipationRepository interface {
	// Create books the user into the event. Returns ErrNotFound,
	// ErrEventEnded, ErrEventFull, ErrEventCanceled, or
	// ErrDuplicateParticipation on rule violations.
	Create(ctx context.Context, p *Participation) error
	GetByEventAndUser(ctx context.Context, eventID, userID int64) (*Participation, error)
	ListByUserID(ctx context.Context, userID int64) ([]*Participation, error)
	Delete(ctx context.Context, eventID, userID int64) error
	ListUserEmailsByEventID(ctx context.Context, eventID int64) ([]string, error)
}

// BookingService enforces the booking invariants and manages withdrawals.
type BookingService interface {
	// Book validates the lifetime, capacity, and cancellation rules in
	// that order and creates the participation when all pass.
	Book(ctx context.Context, eventID, userID int64) (*Participation, error)
	Withdraw(ctx context.Context, eventID, userID int64) error
	// ListMine returns the user's bookings for events that have not ended.
	ListMine(ctx context.Context, userID int64) ([]*ParticipationWithEvent, error)
	// ListArchive returns the user's bookings for events already ended.
	ListArchive(ctx context.Context, userID int64) ([]*ParticipationWithEvent, error)
}
