package domain

import (
	"context"
	"time"
)

// Article is an external article recommended to mentors.
// swagger:model Article
type Article struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Info           string    `json:"info"`
	Annotation     string    `json:"annotation"`
	ArticleURL     string    `json:"article_url"`
	OutputToMain   bool      `json:"output_to_main"`
	PinnedFullSize bool      `json:"pinned_full_size"`
	CreatedAt      time.Time `json:"created_at"`
}

// BookType groups books (e.g. fiction, pedagogy) with a display color.
// swagger:model BookType
type BookType struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

// Book is a recommended book.
// swagger:model Book
type Book struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	Year       int    `json:"year"`
	Annotation string `json:"annotation"`
	TypeID     *int64 `json:"type_id"`
}

// Movie is a recommended movie.
// swagger:model Movie
type Movie struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Info         string `json:"info"`
	Annotation   string `json:"annotation"`
	Link         string `json:"link"`
	OutputToMain bool   `json:"output_to_main"`
}

// Video is a recommended video. Videos flagged as resource-group are
// hidden from unauthenticated requesters.
// swagger:model Video
type Video struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Info           string `json:"info"`
	Link           string `json:"link"`
	Duration       int    `json:"duration"`
	OutputToMain   bool   `json:"output_to_main"`
	PinnedFullSize bool   `json:"pinned_full_size"`
	ResourceGroup  bool   `json:"resource_group"`
}

// Catalog is a curated long-read collection page (selections of books,
// movies and articles around one theme).
// swagger:model Catalog
type Catalog struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	ImageCaption *string `json:"image_caption"`
	Body         string  `json:"body"`
}

// ArticleRepository defines storage for articles.
type ArticleRepository interface {
	// List returns articles, pinned first, newest first.
	List(ctx context.Context, params PaginationParams) ([]*Article, int, error)
	GetByID(ctx context.Context, id int64) (*Article, error)
}

// BookRepository defines storage for books and book types.
type BookRepository interface {
	// List returns books interleaved round-robin across types (window
	// rank partitioned by type), optionally filtered by type slug.
	List(ctx context.Context, typeSlug string, params PaginationParams) ([]*Book, int, error)
	GetByID(ctx context.Context, id int64) (*Book, error)
	// ListUsedTypes returns book types that have at least one book.
	ListUsedTypes(ctx context.Context) ([]*BookType, error)
}

// MovieRepository defines storage for movies.
type MovieRepository interface {
	List(ctx context.Context, tagSlugs []string, params PaginationParams) ([]*Movie, int, error)
	GetByID(ctx context.Context, id int64) (*Movie, error)
}

// CatalogRepository defines storage for catalogs.
type CatalogRepository interface {
	List(ctx context.Context, params PaginationParams) ([]*Catalog, int, error)
	GetByID(ctx context.Context, id int64) (*Catalog, error)
}

// VideoRepository defines storage for videos.
type VideoRepository interface {
	// List returns videos, pinned first. includeRestricted controls
	// whether resource-group videos appear.
	List(ctx context.Context, includeRestricted bool, tagSlugs []string, params PaginationParams) ([]*Video, int, error)
	GetByID(ctx context.Context, id int64) (*Video, error)
}
