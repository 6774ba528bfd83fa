package domain

import (
	"context"
	"time"
)

// Right is a children's-rights reference article.
// swagger:model Right
type Right struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Body        string `json:"body"`
}

// Question is a user-submitted question. Answer stays nil until a curator
// replies; unanswered questions are hidden from listings and search.
// swagger:model Question
type Question struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Answer       *string   `json:"answer"`
	OutputToMain bool      `json:"output_to_main"`
	CreatedAt    time.Time `json:"created_at"`
}

// RightRepository defines storage for rights articles.
type RightRepository interface {
	List(ctx context.Context, tagSlugs []string, params PaginationParams) ([]*Right, int, error)
	GetByID(ctx context.Context, id int64) (*Right, error)
}

// QuestionRepository defines storage for questions.
type QuestionRepository interface {
	Create(ctx context.Context, q *Question) error
	// List returns answered questions only, newest first.
	List(ctx context.Context, tagSlugs []string, params PaginationParams) ([]*Question, int, error)
}
