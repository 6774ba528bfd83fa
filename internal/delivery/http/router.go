package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"mentorhub/internal/delivery/http/controllers"
	"mentorhub/internal/delivery/http/middleware"
	"mentorhub/internal/domain"
)

// Controllers bundles every controller the router mounts.
type Controllers struct {
	Auth          *controllers.AuthController
	Event         *controllers.EventController
	Participation *controllers.ParticipationController
	Search        *controllers.SearchController
	Place         *controllers.PlaceController
	Library       *controllers.LibraryController
	Content       *controllers.ContentController
	Common        *controllers.CommonController
	Main          *controllers.MainPageController
	History       *controllers.HistoryController
	Diary         *controllers.DiaryController
}

// NewRouter initializes the HTTP router with all application routes.
// Routes with per-user visibility rules take OptionalAuth; mentor-only
// routes take RequireAuth.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)
	optional := middleware.OptionalAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/signup", c.Auth.SignUp)
	mux.HandleFunc("POST /auth/login", c.Auth.Login)
	mux.HandleFunc("GET /v1/profile", auth(c.Auth.Profile))

	// Afisha: events and seat bookings
	mux.HandleFunc("GET /v1/afisha/events", auth(c.Event.List))
	mux.HandleFunc("POST /v1/afisha/events", auth(c.Event.Create))
	mux.HandleFunc("GET /v1/afisha/events/{eventID}", auth(c.Event.Get))
	mux.HandleFunc("PATCH /v1/afisha/events/{eventID}", auth(c.Event.Update))
	mux.HandleFunc("POST /v1/afisha/events/{eventID}/cancel", auth(c.Event.Cancel))
	mux.HandleFunc("POST /v1/afisha/event-participants", auth(c.Participation.Book))
	mux.HandleFunc("GET /v1/afisha/event-participants", auth(c.Participation.ListMine))
	mux.HandleFunc("GET /v1/afisha/event-participants/archive", auth(c.Participation.ListArchive))
	mux.HandleFunc("DELETE /v1/afisha/event-participants/{eventID}", auth(c.Participation.Withdraw))

	// Federated search
	mux.HandleFunc("GET /v1/search", optional(c.Search.Search))

	// Places
	mux.HandleFunc("GET /v1/places", optional(c.Place.List))
	mux.HandleFunc("POST /v1/places", auth(c.Place.Create))
	mux.HandleFunc("GET /v1/places/first", optional(c.Place.First))
	mux.HandleFunc("GET /v1/places/tags", c.Place.Tags)
	mux.HandleFunc("GET /v1/places/activity-types", c.Common.ListActivityTypes)
	mux.HandleFunc("GET /v1/places/{placeID}", c.Place.Get)

	// Read-and-watch catalogs
	mux.HandleFunc("GET /v1/articles", c.Library.ListArticles)
	mux.HandleFunc("GET /v1/articles/{articleID}", c.Library.GetArticle)
	mux.HandleFunc("GET /v1/books", c.Library.ListBooks)
	mux.HandleFunc("GET /v1/books/types", c.Library.ListBookTypes)
	mux.HandleFunc("GET /v1/books/{bookID}", c.Library.GetBook)
	mux.HandleFunc("GET /v1/movies", c.Library.ListMovies)
	mux.HandleFunc("GET /v1/movies/tags", c.Library.MovieTags)
	mux.HandleFunc("GET /v1/movies/{movieID}", c.Library.GetMovie)
	mux.HandleFunc("GET /v1/videos", optional(c.Library.ListVideos))
	mux.HandleFunc("GET /v1/videos/tags", c.Library.VideoTags)
	mux.HandleFunc("GET /v1/videos/{videoID}", optional(c.Library.GetVideo))
	mux.HandleFunc("GET /v1/catalog", c.Library.ListCatalogs)
	mux.HandleFunc("GET /v1/catalog/{catalogID}", c.Library.GetCatalog)

	// Rights and Q&A
	mux.HandleFunc("GET /v1/rights", c.Content.ListRights)
	mux.HandleFunc("GET /v1/rights/tags", c.Content.RightTags)
	mux.HandleFunc("GET /v1/rights/{rightID}", c.Content.GetRight)
	mux.HandleFunc("GET /v1/questions", c.Content.ListQuestions)
	mux.HandleFunc("POST /v1/questions", c.Content.AskQuestion)
	mux.HandleFunc("GET /v1/questions/tags", c.Content.QuestionTags)

	// Reference data
	mux.HandleFunc("GET /v1/cities", c.Common.ListCities)
	mux.HandleFunc("GET /v1/tags", c.Common.ListTags)

	// Landing page aggregate and mentor stories
	mux.HandleFunc("GET /v1/main", optional(c.Main.Get))
	mux.HandleFunc("GET /v1/history", c.History.List)
	mux.HandleFunc("GET /v1/history/{historyID}", c.History.Get)

	// Mentor diaries
	mux.HandleFunc("POST /v1/profile/diaries", auth(c.Diary.Create))
	mux.HandleFunc("GET /v1/profile/diaries", auth(c.Diary.ListMine))
	mux.HandleFunc("PATCH /v1/profile/diaries/{diaryID}", auth(c.Diary.Update))
	mux.HandleFunc("POST /v1/profile/diaries/{diaryID}/send", auth(c.Diary.SendToCurator))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
