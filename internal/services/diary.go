package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mentorhub/internal/domain"
)

type diaryService struct {
	diaryRepo domain.DiaryRepository
	now       func() time.Time
}

// NewDiaryService creates a DiaryService with the given repository.
func NewDiaryService(diaryRepo domain.DiaryRepository) domain.DiaryService {
	return &diaryService{diaryRepo: diaryRepo, now: time.Now}
}

func (s *diaryService) Create(ctx context.Context, mentorID int64, d *domain.Diary) (*domain.Diary, error) {
	if d.Place == "" {
		return nil, fmt.Errorf("%w: place is required", domain.ErrInvalidInput)
	}
	if d.Date.IsZero() {
		d.Date = s.now()
	}
	d.MentorID = mentorID
	d.SentToCurator = false
	now := s.now()
	d.CreatedAt = now
	d.UpdatedAt = now
	if err := s.diaryRepo.Create(ctx, d); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: diary for this place and date already exists", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("create diary: %w", err)
	}
	return d, nil
}

func (s *diaryService) ListMine(ctx context.Context, mentorID int64) ([]*domain.Diary, error) {
	diaries, err := s.diaryRepo.ListByMentorID(ctx, mentorID)
	if err != nil {
		return nil, fmt.Errorf("list diaries: %w", err)
	}
	if diaries == nil {
		diaries = []*domain.Diary{}
	}
	return diaries, nil
}

func (s *diaryService) Update(ctx context.Context, mentorID, id int64, upd domain.DiaryUpdate) (*domain.Diary, error) {
	if err := s.authorize(ctx, mentorID, id); err != nil {
		return nil, err
	}
	diary, err := s.diaryRepo.Update(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("update diary: %w", err)
	}
	return diary, nil
}

func (s *diaryService) SendToCurator(ctx context.Context, mentorID, id int64) error {
	if err := s.authorize(ctx, mentorID, id); err != nil {
		return err
	}
	if err := s.diaryRepo.MarkSent(ctx, id); err != nil {
		return fmt.Errorf("mark diary sent: %w", err)
	}
	return nil
}

func (s *diaryService) authorize(ctx context.Context, mentorID, id int64) error {
	diary, err := s.diaryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get diary: %w", err)
	}
	if diary.MentorID != mentorID {
		return domain.ErrForbidden
	}
	return nil
}
