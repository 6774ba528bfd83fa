package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mentorhub/internal/domain"
)

type bookingService struct {
	eventRepo         domain.EventRepository
	participationRepo domain.ParticipationRepository
	now               func() time.Time
}

// NewBookingService creates a BookingService with the given repositories.
func NewBookingService(
	eventRepo domain.EventRepository,
	participationRepo domain.ParticipationRepository,
) domain.BookingService {
	return &bookingService{
		eventRepo:         eventRepo,
		participationRepo: participationRepo,
		now:               time.Now,
	}
}

// Book runs the booking validators in order (lifetime, capacity,
// cancellation) and creates the participation when all pass. The
// repository re-checks the same rules under a row lock on the event, so a
// concurrent booking for the last seat cannot overshoot capacity; the
// checks here decide which error surfaces first.
func (s *bookingService) Book(ctx context.Context, eventID, userID int64) (*domain.Participation, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	if event.Ended(s.now()) {
		return nil, domain.ErrEventEnded
	}

	taken, err := s.eventRepo.CountParticipants(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("count participants: %w", err)
	}
	if taken >= event.Seats {
		return nil, domain.ErrEventFull
	}

	if event.Canceled {
		return nil, domain.ErrEventCanceled
	}

	p := &domain.Participation{
		EventID:   eventID,
		UserID:    userID,
		CreatedAt: s.now(),
	}
	if err := s.participationRepo.Create(ctx, p); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateParticipation),
			errors.Is(err, domain.ErrEventEnded),
			errors.Is(err, domain.ErrEventFull),
			errors.Is(err, domain.ErrEventCanceled),
			errors.Is(err, domain.ErrNotFound):
			return nil, err
		}
		return nil, fmt.Errorf("create participation: %w", err)
	}
	return p, nil
}

func (s *bookingService) Withdraw(ctx context.Context, eventID, userID int64) error {
	if err := s.participationRepo.Delete(ctx, eventID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete participation: %w", err)
	}
	return nil
}

func (s *bookingService) ListMine(ctx context.Context, userID int64) ([]*domain.ParticipationWithEvent, error) {
	return s.listByUser(ctx, userID, false)
}

func (s *bookingService) ListArchive(ctx context.Context, userID int64) ([]*domain.ParticipationWithEvent, error) {
	return s.listByUser(ctx, userID, true)
}

func (s *bookingService) listByUser(ctx context.Context, userID int64, ended bool) ([]*domain.ParticipationWithEvent, error) {
	regs, err := s.participationRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list participations: %w", err)
	}

	now := s.now()
	result := []*domain.ParticipationWithEvent{}
	for _, reg := range regs {
		event, err := s.eventRepo.GetByID(ctx, reg.EventID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Event deleted but participation remains; skip.
				continue
			}
			return nil, fmt.Errorf("get event for participation: %w", err)
		}
		if event.Ended(now) != ended {
			continue
		}
		taken, err := s.eventRepo.CountParticipants(ctx, event.ID)
		if err != nil {
			return nil, fmt.Errorf("count participants: %w", err)
		}
		result = append(result, &domain.ParticipationWithEvent{
			Participation: reg,
			Event: &domain.EventWithSeats{
				Event:       event,
				Booked:      true,
				TakenSeats:  taken,
				RemainSeats: event.Seats - taken,
			},
		})
	}
	return result, nil
}
