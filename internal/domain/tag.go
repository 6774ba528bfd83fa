package domain

import "context"

// Tag categories. Each content type only accepts tags of its own category.
const (
	TagCategoryEvents    = "events"
	TagCategoryPlaces    = "places"
	TagCategoryMovies    = "movies"
	TagCategoryVideos    = "videos"
	TagCategoryQuestions = "questions"
	TagCategoryRights    = "rights"
)

// Tag is a named label shared across catalog entities. Tags with a lower
// Order value are listed first.
// swagger:model Tag
type Tag struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Slug     string `json:"slug"`
	Order    int    `json:"order"`
}

// TagRepository defines storage for tags and entity–tag links.
// Tags referenced by content are protected: Delete returns ErrTagInUse.
type TagRepository interface {
	List(ctx context.Context) ([]*Tag, error)
	// ListUsed returns tags of the given category that are linked to at
	// least one row of that category's content table.
	ListUsed(ctx context.Context, category string) ([]*Tag, error)
	GetBySlug(ctx context.Context, slug string) (*Tag, error)
	Delete(ctx context.Context, id int64) error
}
