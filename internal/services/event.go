package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mentorhub/internal/domain"
)

type eventService struct {
	eventRepo         domain.EventRepository
	participationRepo domain.ParticipationRepository
	userRepo          domain.UserRepository
	emails            domain.EmailService
	logger            *slog.Logger
	now               func() time.Time
}

// NewEventService creates an EventService with the given collaborators.
// emails may be nil; cancellation then skips participant notification.
func NewEventService(
	eventRepo domain.EventRepository,
	participationRepo domain.ParticipationRepository,
	userRepo domain.UserRepository,
	emails domain.EmailService,
	logger *slog.Logger,
) domain.EventService {
	return &eventService{
		eventRepo:         eventRepo,
		participationRepo: participationRepo,
		userRepo:          userRepo,
		emails:            emails,
		logger:            logger,
		now:               time.Now,
	}
}

func (s *eventService) List(ctx context.Context, userID int64, filter domain.EventListFilter) ([]*domain.EventWithSeats, error) {
	if filter.CityID == 0 {
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("get user: %w", err)
		}
		if user.CityID == nil {
			return []*domain.EventWithSeats{}, nil
		}
		filter.CityID = *user.CityID
	}

	events, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	result := make([]*domain.EventWithSeats, 0, len(events))
	for _, event := range events {
		taken, err := s.eventRepo.CountParticipants(ctx, event.ID)
		if err != nil {
			return nil, fmt.Errorf("count participants: %w", err)
		}
		booked := false
		if _, err := s.participationRepo.GetByEventAndUser(ctx, event.ID, userID); err == nil {
			booked = true
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get participation: %w", err)
		}
		result = append(result, &domain.EventWithSeats{
			Event:       event,
			Booked:      booked,
			TakenSeats:  taken,
			RemainSeats: event.Seats - taken,
		})
	}
	return result, nil
}

func (s *eventService) Get(ctx context.Context, id int64) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if event.Seats < 1 {
		return nil, fmt.Errorf("%w: seats must be at least 1", domain.ErrInvalidInput)
	}
	if !event.EndAt.After(event.StartAt) {
		return nil, fmt.Errorf("%w: end time must be after start time", domain.ErrInvalidInput)
	}
	now := s.now()
	event.CreatedAt = now
	event.UpdatedAt = now
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) Update(ctx context.Context, id int64, upd domain.EventUpdate) (*domain.Event, error) {
	if upd.Seats != nil && *upd.Seats < 1 {
		return nil, fmt.Errorf("%w: seats must be at least 1", domain.ErrInvalidInput)
	}
	event, err := s.eventRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

// Cancel marks the event canceled and mails every active participant.
// Mail failures are logged, not returned: cancellation must not be undone
// by a mailer outage.
func (s *eventService) Cancel(ctx context.Context, id int64) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	if event.Canceled {
		return nil
	}
	if err := s.eventRepo.Cancel(ctx, id); err != nil {
		return fmt.Errorf("cancel event: %w", err)
	}

	if s.emails == nil {
		return nil
	}
	emails, err := s.participationRepo.ListUserEmailsByEventID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "list participant emails", "event_id", id, "err", err)
		return nil
	}
	if len(emails) == 0 {
		return nil
	}
	data := &domain.EventCancellationEmailData{
		EventTitle: event.Title,
		StartAt:    event.StartAt.Format("02.01.2006 15:04"),
	}
	if err := s.emails.SendEventCancellation(ctx, emails, data); err != nil {
		s.logger.ErrorContext(ctx, "send cancellation mail", "event_id", id, "err", err)
	}
	return nil
}
