package domain

import (
	"context"
	"time"
)

// History is a mentor-and-child success story. Each mentor has at most one
// story per child.
// swagger:model History
type History struct {
	ID            int64          `json:"id"`
	Title         string         `json:"title"`
	MentorID      int64          `json:"-"`
	Mentor        *HistoryMentor `json:"mentor"`
	Child         string         `json:"child"`
	TogetherSince time.Time      `json:"together_since"`
	Description   string         `json:"description"`
	UpperBody     string         `json:"upper_body"`
	LowerBody     string         `json:"lower_body"`
	OutputToMain  bool           `json:"output_to_main"`
}

// HistoryMentor is the mentor projection embedded in a story.
// swagger:model HistoryMentor
type HistoryMentor struct {
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
}

// HistoryListItem is the list projection of a story: its id and the
// display pair "<mentor> и <child>".
// swagger:model HistoryListItem
type HistoryListItem struct {
	ID   int64  `json:"id"`
	Pair string `json:"pair"`
}

// HistoryRepository defines storage for mentor stories.
type HistoryRepository interface {
	// List returns story list items, newest first.
	List(ctx context.Context, params PaginationParams) ([]*HistoryListItem, int, error)
	GetByID(ctx context.Context, id int64) (*History, error)
}
