package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "mentorhub/internal/delivery/http/helpers"
	"mentorhub/internal/delivery/http/middleware"
	"mentorhub/internal/domain"
)

// LibraryController serves the read-and-watch catalogs: articles, books,
// movies, and videos. Catalog reads have no business rules beyond
// visibility, so the controller talks to the repositories directly.
type LibraryController struct {
	Logger   *slog.Logger
	Articles domain.ArticleRepository
	Books    domain.BookRepository
	Movies   domain.MovieRepository
	Videos   domain.VideoRepository
	Catalogs domain.CatalogRepository
	TagRepo  domain.TagRepository
}

func NewLibraryController(
	logger *slog.Logger,
	articles domain.ArticleRepository,
	books domain.BookRepository,
	movies domain.MovieRepository,
	videos domain.VideoRepository,
	catalogs domain.CatalogRepository,
	tags domain.TagRepository,
) *LibraryController {
	return &LibraryController{
		Logger:   logger,
		Articles: articles,
		Books:    books,
		Movies:   movies,
		Videos:   videos,
		Catalogs: catalogs,
		TagRepo:  tags,
	}
}

// ListResponse is the generic paginated data payload for catalog listings.
type ListResponse struct {
	Items      any              `json:"items"`
	Pagination h.PaginationMeta `json:"pagination"`
}

func (c *LibraryController) writeList(w http.ResponseWriter, items any, params domain.PaginationParams, total int) {
	meta := h.NewPaginationMeta(params.Page, params.PageSize, total)
	h.WriteJSONSuccess(w, http.StatusOK, ListResponse{Items: items, Pagination: meta})
}

func (c *LibraryController) writeGetError(w http.ResponseWriter, r *http.Request, err error, what string) {
	if errors.Is(err, domain.ErrNotFound) {
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, what+" not found")
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
}

// ListArticles godoc
// @Summary List articles
// @Description Returns articles, pinned first, newest first.
// @Tags library
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains items and pagination"
// @Router /v1/articles [get]
func (c *LibraryController) ListArticles(w http.ResponseWriter, r *http.Request) {
	params := h.ParsePagination(r)
	articles, total, err := c.Articles.List(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	c.writeList(w, articles, params, total)
}

// GetArticle godoc
// @Summary Get an article by ID
// @Tags library
// @Produce json
// @Param articleID path int true "Article ID"
// @Success 200 {object} helpers.APIResponse "data contains the article"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /v1/articles/{articleID} [get]
func (c *LibraryController) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "articleID")
	if !ok {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid articleID")
		return
	}
	article, err := c.Articles.GetByID(r.Context(), id)
	if err != nil {
		c.writeGetError(w, r, err, "article")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, article)
}

// ListBooks godoc
// @Summary List books
// @Description Returns books interleaved across types so every type surfaces near the top. Optional ?type= filters by book type slug.
// @Tags library
// @Produce json
// @Param type query string false "Book type slug"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains items and pagination"
// @Router /v1/books [get]
func (c *LibraryController) ListBooks(w http.ResponseWriter, r *http.Request) {
	params := h.ParsePagination(r)
	books, total, err := c.Books.List(r.Context(), r.URL.Query().Get("type"), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	c.writeList(w, books, params, total)
}

// GetBook godoc
// @Summary Get a book by ID
// @Tags library
// @Produce json
// @Param bookID path int true "Book ID"
// @Success 200 {object} helpers.APIResponse "data contains the book"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /v1/books/{bookID} [get]
func (c *LibraryController) GetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "bookID")
	if !ok {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid bookID")
		return
	}
	book, err := c.Books.GetByID(r.Context(), id)
	if err != nil {
		c.writeGetError(w, r, err, "book")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, book)
}

// ListBookTypes godoc
// @Summary List book types in use
// @Tags library
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of book types"
// @Router /v1/books/types [get]
func (c *LibraryController) ListBookTypes(w http.ResponseWriter, r *http.Request) {
	types, err := c.Books.ListUsedTypes(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	if types == nil {
		types = []*domain.BookType{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, types)
}

// ListMovies godoc
// @Summary List movies
// @Tags library
// @Produce json
// @Param tags query string false "Comma-separated tag slugs"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains items and pagination"
// @Router /v1/movies [get]
func (c *LibraryController) ListMovies(w http.ResponseWriter, r *http.Request) {
	params := h.ParsePagination(r)
	movies, total, err := c.Movies.List(r.Context(), queryTags(r), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	c.writeList(w, movies, params, total)
}

// GetMovie godoc
// @Summary Get a movie by ID
// @Tags library
// @Produce json
// @Param movieID path int true "Movie ID"
// @Success 200 {object} helpers.APIResponse "data contains the movie"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /v1/movies/{movieID} [get]
func (c *LibraryController) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "movieID")
	if !ok {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid movieID")
		return
	}
	movie, err := c.Movies.GetByID(r.Context(), id)
	if err != nil {
		c.writeGetError(w, r, err, "movie")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, movie)
}

// MovieTags godoc
// @Summary List movie tags in use
// @Tags library
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of tags"
// @Router /v1/movies/tags [get]
func (c *LibraryController) MovieTags(w http.ResponseWriter, r *http.Request) {
	c.usedTags(w, r, domain.TagCategoryMovies)
}

// ListVideos godoc
// @Summary List videos
// @Description Returns videos, pinned first. Resource-group videos only appear for authenticated requesters.
// @Tags library
// @Produce json
// @Param tags query string false "Comma-separated tag slugs"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains items and pagination"
// @Router /v1/videos [get]
func (c *LibraryController) ListVideos(w http.ResponseWriter, r *http.Request) {
	_, authenticated := middleware.UserIDFromContext(r.Context())
	params := h.ParsePagination(r)
	videos, total, err := c.Videos.List(r.Context(), authenticated, queryTags(r), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	c.writeList(w, videos, params, total)
}

// GetVideo godoc
// @Summary Get a video by ID
// @Description Resource-group videos are hidden from unauthenticated requesters.
// @Tags library
// @Produce json
// @Param videoID path int true "Video ID"
// @Success 200 {object} helpers.APIResponse "data contains the video"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /v1/videos/{videoID} [get]
func (c *LibraryController) GetVideo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "videoID")
	if !ok {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid videoID")
		return
	}
	video, err := c.Videos.GetByID(r.Context(), id)
	if err != nil {
		c.writeGetError(w, r, err, "video")
		return
	}
	if video.ResourceGroup {
		if _, authenticated := middleware.UserIDFromContext(r.Context()); !authenticated {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "video not found")
			return
		}
	}
	h.WriteJSONSuccess(w, http.StatusOK, video)
}

// ListCatalogs godoc
// @Summary List catalogs
// @Description Returns curated collection pages, newest first.
// @Tags library
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains items and pagination"
// @Router /v1/catalog [get]
func (c *LibraryController) ListCatalogs(w http.ResponseWriter, r *http.Request) {
	params := h.ParsePagination(r)
	catalogs, total, err := c.Catalogs.List(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	c.writeList(w, catalogs, params, total)
}

// GetCatalog godoc
// @Summary Get a catalog by ID
// @Tags library
// @Produce json
// @Param catalogID path int true "Catalog ID"
// @Success 200 {object} helpers.APIResponse "data contains the catalog"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /v1/catalog/{catalogID} [get]
func (c *LibraryController) GetCatalog(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "catalogID")
	if !ok {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid catalogID")
		return
	}
	catalog, err := c.Catalogs.GetByID(r.Context(), id)
	if err != nil {
		c.writeGetError(w, r, err, "catalog")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, catalog)
}

// VideoTags godoc
// @Summary List video tags in use
// @Tags library
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of tags"
// @Router /v1/videos/tags [get]
func (c *LibraryController) VideoTags(w http.ResponseWriter, r *http.Request) {
	c.usedTags(w, r, domain.TagCategoryVideos)
}

func (c *LibraryController) usedTags(w http.ResponseWriter, r *http.Request, category string) {
	tags, err := c.TagRepo.ListUsed(r.Context(), category)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	if tags == nil {
		tags = []*domain.Tag{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, tags)
}
