package domain

import (
	"context"
	"time"
)

// Age restriction bands for places.
const (
	AgeRestriction8to10  = "8-10"
	AgeRestriction11to13 = "11-13"
	AgeRestriction14to17 = "14-17"
	AgeRestriction18     = "18"
	AgeRestrictionAny    = "any"
)

// Place is a recommended spot to visit with a mentee. Places submitted by
// users stay hidden until a moderator sets ModerationFlag.
// swagger:model Place
type Place struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Link           string    `json:"link"`
	Address        string    `json:"address"`
	CityID         int64     `json:"city_id"`
	Gender         *string   `json:"gender"`
	Age            *int      `json:"age"`
	AgeRestriction string    `json:"age_restriction"`
	Chosen         bool      `json:"chosen"`
	OutputToMain   bool      `json:"output_to_main"`
	ModerationFlag bool      `json:"moderation_flag"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ActivityType labels the kind of activity a place offers. Unlike tags,
// activity types are flat reference data with no slug.
// swagger:model ActivityType
type ActivityType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ActivityTypeRepository defines storage for place activity types.
type ActivityTypeRepository interface {
	List(ctx context.Context) ([]*ActivityType, error)
}

// PlaceListFilter narrows place listings. CityID nil means all cities;
// TagSlugs empty means no tag filtering.
type PlaceListFilter struct {
	CityID   *int64
	TagSlugs []string
	Params   PaginationParams
}

// PlaceRepository defines storage for places. List and First only return
// moderated places.
type PlaceRepository interface {
	Create(ctx context.Context, place *Place, tagIDs []int64) error
	GetByID(ctx context.Context, id int64) (*Place, error)
	List(ctx context.Context, filter PlaceListFilter) ([]*Place, int, error)
	// First returns the newest moderated place for the filter, mentor
	// choices first. ErrNotFound when none match.
	First(ctx context.Context, cityID *int64) (*Place, error)
}

// PlaceService defines place catalog operations.
type PlaceService interface {
	List(ctx context.Context, requester Requester, filter PlaceListFilter) ([]*Place, int, error)
	Get(ctx context.Context, id int64) (*Place, error)
	// Create submits a new place for moderation. The age restriction band
	// is derived from age; chosen is set when the submitter is a mentor.
	Create(ctx context.Context, userID int64, place *Place, tagIDs []int64) (*Place, error)
	First(ctx context.Context, requester Requester) (*Place, error)
}
