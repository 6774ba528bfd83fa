package domain

import "context"

// MainPage is the aggregate payload of the landing page.
// swagger:model MainPage
type MainPage struct {
	Event     *EventWithSeats `json:"event"`
	Place     *Place          `json:"place"`
	Video     *Video          `json:"video"`
	History   *History        `json:"history"`
	Articles  []*Article      `json:"articles"`
	Movies    []*Movie        `json:"movies"`
	Questions []*Question     `json:"questions"`
}

// MainPageRepository returns the main-flagged selections of each section.
type MainPageRepository interface {
	// NextEvent returns the soonest upcoming event in the city.
	NextEvent(ctx context.Context, cityID int64) (*Event, error)
	// FirstPlace returns the newest moderated main-page place for the
	// city, falling back to any city when none matches.
	FirstPlace(ctx context.Context, cityID *int64) (*Place, error)
	FirstVideo(ctx context.Context, includeRestricted bool) (*Video, error)
	// FirstHistory returns the oldest main-flagged mentor story.
	FirstHistory(ctx context.Context) (*History, error)
	MainArticles(ctx context.Context, limit int) ([]*Article, error)
	MainMovies(ctx context.Context, limit int) ([]*Movie, error)
	MainQuestions(ctx context.Context, limit int) ([]*Question, error)
}

// MainPageService assembles the landing page for a requester.
type MainPageService interface {
	Get(ctx context.Context, requester Requester) (*MainPage, error)
}
