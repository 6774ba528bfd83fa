package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mentorhub/internal/domain"
)

type placeService struct {
	placeRepo domain.PlaceRepository
	userRepo  domain.UserRepository
	now       func() time.Time
}

// NewPlaceService creates a PlaceService with the given repositories.
func NewPlaceService(placeRepo domain.PlaceRepository, userRepo domain.UserRepository) domain.PlaceService {
	return &placeService{
		placeRepo: placeRepo,
		userRepo:  userRepo,
		now:       time.Now,
	}
}

func (s *placeService) List(ctx context.Context, requester domain.Requester, filter domain.PlaceListFilter) ([]*domain.Place, int, error) {
	filter.CityID = requester.CityID
	places, total, err := s.placeRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list places: %w", err)
	}
	return places, total, nil
}

func (s *placeService) Get(ctx context.Context, id int64) (*domain.Place, error) {
	place, err := s.placeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get place: %w", err)
	}
	return place, nil
}

// ageRestriction maps a child's age to its display band.
func ageRestriction(age int) string {
	switch {
	case age > 7 && age < 11:
		return domain.AgeRestriction8to10
	case age > 10 && age < 14:
		return domain.AgeRestriction11to13
	case age > 13 && age < 18:
		return domain.AgeRestriction14to17
	default:
		return domain.AgeRestriction18
	}
}

func (s *placeService) Create(ctx context.Context, userID int64, place *domain.Place, tagIDs []int64) (*domain.Place, error) {
	if place.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if place.Age == nil {
		return nil, fmt.Errorf("%w: age is required", domain.ErrInvalidInput)
	}
	if *place.Age < 8 || *place.Age > 25 {
		return nil, fmt.Errorf("%w: age must be between 8 and 25", domain.ErrInvalidInput)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	place.AgeRestriction = ageRestriction(*place.Age)
	place.Chosen = user.IsMentor
	// New places await moderation before showing up anywhere.
	place.ModerationFlag = false
	now := s.now()
	place.CreatedAt = now
	place.UpdatedAt = now

	if err := s.placeRepo.Create(ctx, place, tagIDs); err != nil {
		return nil, fmt.Errorf("create place: %w", err)
	}
	return place, nil
}

func (s *placeService) First(ctx context.Context, requester domain.Requester) (*domain.Place, error) {
	place, err := s.placeRepo.First(ctx, requester.CityID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("first place: %w", err)
	}
	return place, nil
}
