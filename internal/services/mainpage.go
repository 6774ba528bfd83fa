package services

import (
	"context"
	"errors"
	"fmt"

	"mentorhub/internal/domain"
)

// Main page section lengths.
const (
	mainArticlesLength  = 4
	mainMoviesLength    = 4
	mainQuestionsLength = 3
)

type mainPageService struct {
	repo              domain.MainPageRepository
	eventRepo         domain.EventRepository
	participationRepo domain.ParticipationRepository
	userRepo          domain.UserRepository
}

// NewMainPageService creates a MainPageService with the given repositories.
func NewMainPageService(
	repo domain.MainPageRepository,
	eventRepo domain.EventRepository,
	participationRepo domain.ParticipationRepository,
	userRepo domain.UserRepository,
) domain.MainPageService {
	return &mainPageService{
		repo:              repo,
		eventRepo:         eventRepo,
		participationRepo: participationRepo,
		userRepo:          userRepo,
	}
}

func (s *mainPageService) Get(ctx context.Context, requester domain.Requester) (*domain.MainPage, error) {
	page := &domain.MainPage{}

	// The next-event slot only renders for authenticated users with a city.
	if requester.Authenticated {
		event, err := s.nextEvent(ctx, requester)
		if err != nil {
			return nil, err
		}
		page.Event = event
	}

	place, err := s.repo.FirstPlace(ctx, requester.CityID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("main place: %w", err)
	}
	page.Place = place

	video, err := s.repo.FirstVideo(ctx, requester.Authenticated)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("main video: %w", err)
	}
	page.Video = video

	history, err := s.repo.FirstHistory(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("main history: %w", err)
	}
	page.History = history

	if page.Articles, err = s.repo.MainArticles(ctx, mainArticlesLength); err != nil {
		return nil, fmt.Errorf("main articles: %w", err)
	}
	if page.Movies, err = s.repo.MainMovies(ctx, mainMoviesLength); err != nil {
		return nil, fmt.Errorf("main movies: %w", err)
	}
	if page.Questions, err = s.repo.MainQuestions(ctx, mainQuestionsLength); err != nil {
		return nil, fmt.Errorf("main questions: %w", err)
	}
	return page, nil
}

func (s *mainPageService) nextEvent(ctx context.Context, requester domain.Requester) (*domain.EventWithSeats, error) {
	user, err := s.userRepo.GetByID(ctx, requester.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user.CityID == nil {
		return nil, nil
	}
	event, err := s.repo.NextEvent(ctx, *user.CityID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("next event: %w", err)
	}
	taken, err := s.eventRepo.CountParticipants(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("count participants: %w", err)
	}
	booked := false
	if _, err := s.participationRepo.GetByEventAndUser(ctx, event.ID, requester.UserID); err == nil {
		booked = true
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get participation: %w", err)
	}
	return &domain.EventWithSeats{
		Event:       event,
		Booked:      booked,
		TakenSeats:  taken,
		RemainSeats: event.Seats - taken,
	}, nil
}
