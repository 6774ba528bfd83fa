package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
)

// Booking rule violations. Each maps to a distinct error code in the API
// so clients can tell the rule kinds apart.
var (
	ErrEventEnded             = errors.New("event already ended")
	ErrEventFull              = errors.New("no free seats left for event")
	ErrEventCanceled          = errors.New("event is canceled, booking unavailable")
	ErrDuplicateParticipation = errors.New("already booked for this event")
)

// ErrTagInUse is returned when deleting a tag still referenced by content.
var ErrTagInUse = errors.New("tag is in use")
