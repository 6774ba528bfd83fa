package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"mentorhub/config"
	"mentorhub/internal/adapters/auth"
	"mentorhub/internal/adapters/email"
	delivery "mentorhub/internal/delivery/http"
	"mentorhub/internal/delivery/http/controllers"
	"mentorhub/internal/delivery/http/middleware"
	"mentorhub/internal/repository/postgres"
	"mentorhub/internal/services"
)

// @title MentorHub API
// @version 1.0
// @description Content management and event booking backend for a mentoring charity.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	cityRepo := postgres.NewCityRepository(db)
	tagRepo := postgres.NewTagRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	participationRepo := postgres.NewParticipationRepository(db)
	placeRepo := postgres.NewPlaceRepository(db)
	articleRepo := postgres.NewArticleRepository(db)
	bookRepo := postgres.NewBookRepository(db)
	movieRepo := postgres.NewMovieRepository(db)
	videoRepo := postgres.NewVideoRepository(db)
	rightRepo := postgres.NewRightRepository(db)
	questionRepo := postgres.NewQuestionRepository(db)
	catalogRepo := postgres.NewCatalogRepository(db)
	activityTypeRepo := postgres.NewActivityTypeRepository(db)
	historyRepo := postgres.NewHistoryRepository(db)
	diaryRepo := postgres.NewDiaryRepository(db)
	searchRepo := postgres.NewSearchRepository(db)
	mainPageRepo := postgres.NewMainPageRepository(db)

	// Adapters
	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	issuer := auth.NewJWTIssuer(cfg.JWTSecret)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.SESRegion,
			AccessKeyID:        cfg.SESAccessKeyID,
			SecretAccessKey:    cfg.SESSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureTLS,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "error", err)
		os.Exit(1)
	}
	renderer := email.NewTemplateRenderer()

	// Services
	emailService := services.NewEmailService(mailer, renderer)
	authService := services.NewAuthService(userRepo, roleRepo, hasher, issuer, cfg.JWTExpiry)
	bookingService := services.NewBookingService(eventRepo, participationRepo)
	eventService := services.NewEventService(eventRepo, participationRepo, userRepo, emailService, logger)
	placeService := services.NewPlaceService(placeRepo, userRepo)
	searchService := services.NewSearchService(searchRepo)
	mainPageService := services.NewMainPageService(mainPageRepo, eventRepo, participationRepo, userRepo)
	diaryService := services.NewDiaryService(diaryRepo)

	// HTTP layer
	router := delivery.NewRouter(delivery.Controllers{
		Auth:          controllers.NewAuthController(logger, authService, userRepo),
		Event:         controllers.NewEventController(logger, eventService),
		Participation: controllers.NewParticipationController(logger, bookingService),
		Search:        controllers.NewSearchController(logger, searchService, userRepo),
		Place:         controllers.NewPlaceController(logger, placeService, tagRepo, userRepo),
		Library:       controllers.NewLibraryController(logger, articleRepo, bookRepo, movieRepo, videoRepo, catalogRepo, tagRepo),
		Content:       controllers.NewContentController(logger, rightRepo, questionRepo, tagRepo),
		Common:        controllers.NewCommonController(logger, cityRepo, tagRepo, activityTypeRepo),
		Main:          controllers.NewMainPageController(logger, mainPageService, userRepo),
		History:       controllers.NewHistoryController(logger, historyRepo),
		Diary:         controllers.NewDiaryController(logger, diaryService),
	}, verifier, logger)

	var handler http.Handler = router
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	handler = middleware.RequestID(handler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
