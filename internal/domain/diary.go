package domain

import (
	"context"
	"time"
)

// Diary is a mentor's record of one outing with a mentee. A mentor may
// write at most one diary per place per date.
// swagger:model Diary
type Diary struct {
	ID            int64     `json:"id"`
	MentorID      int64     `json:"mentor_id"`
	Place         string    `json:"place"`
	Date          time.Time `json:"date"`
	Description   string    `json:"description"`
	Mark          string    `json:"mark"`
	SentToCurator bool      `json:"sent_to_curator"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DiaryUpdate carries optional edits; nil fields are left unchanged.
type DiaryUpdate struct {
	Place       *string
	Date        *time.Time
	Description *string
	Mark        *string
}

// DiaryRepository defines storage for mentor diaries.
// Create returns ErrInvalidInput on a duplicate (mentor, place, date).
type DiaryRepository interface {
	Create(ctx context.Context, d *Diary) error
	GetByID(ctx context.Context, id int64) (*Diary, error)
	ListByMentorID(ctx context.Context, mentorID int64) ([]*Diary, error)
	Update(ctx context.Context, id int64, upd DiaryUpdate) (*Diary, error)
	MarkSent(ctx context.Context, id int64) error
}

// DiaryService defines mentor diary operations. All operations are scoped
// to the owning mentor; others get ErrForbidden.
type DiaryService interface {
	Create(ctx context.Context, mentorID int64, d *Diary) (*Diary, error)
	ListMine(ctx context.Context, mentorID int64) ([]*Diary, error)
	Update(ctx context.Context, mentorID, id int64, upd DiaryUpdate) (*Diary, error)
	SendToCurator(ctx context.Context, mentorID, id int64) error
}
