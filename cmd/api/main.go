package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/mfurukawa/traineehub/docs"
	"github.com/mfurukawa/traineehub/internal/auth"
	"github.com/mfurukawa/traineehub/internal/certificate"
	"github.com/mfurukawa/traineehub/internal/config"
	"github.com/mfurukawa/traineehub/internal/database"
	"github.com/mfurukawa/traineehub/internal/evaluation"
	"github.com/mfurukawa/traineehub/internal/expiry"
	"github.com/mfurukawa/traineehub/internal/notification"
	"github.com/mfurukawa/traineehub/internal/organization"
	"github.com/mfurukawa/traineehub/internal/skill"
	"github.com/mfurukawa/traineehub/internal/trainee"
	"github.com/mfurukawa/traineehub/internal/user"
	"github.com/mfurukawa/traineehub/pkg/middleware"
)

// @title           TraineeHub API
// @version         1.0
// @description     HR management API for foreign technical trainees, with visa expiry alerting.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	validate := validator.New()

	// Repositories
	userRepo := user.NewRepository(db)
	orgRepo := organization.NewRepository(db)
	traineeRepo := trainee.NewRepository(db)
	certRepo := certificate.NewRepository(db)
	skillRepo := skill.NewRepository(db)
	evalRepo := evaluation.NewRepository(db)
	notifRepo := notification.NewRepository(db)

	// Services
	userService := user.NewService(userRepo, traineeRepo)
	orgService := organization.NewService(orgRepo)
	traineeService := trainee.NewService(traineeRepo)
	certService := certificate.NewService(certRepo)
	skillService := skill.NewService(skillRepo)
	evalService := evaluation.NewService(evalRepo)
	notifService := notification.NewService(notifRepo)
	authService := auth.NewService(userRepo, cfg.JWTSecret)
	expiryJob := expiry.NewJob(traineeRepo, userRepo, notifRepo, logger)

	// Handlers
	userHandler := user.NewHandler(userService, validate)
	orgHandler := organization.NewHandler(orgService, validate)
	traineeHandler := trainee.NewHandler(traineeService, validate)
	certHandler := certificate.NewHandler(certService, validate)
	skillHandler := skill.NewHandler(skillService, validate)
	evalHandler := evaluation.NewHandler(evalService, validate)
	notifHandler := notification.NewHandler(notifService)
	authHandler := auth.NewHandler(authService, validate)
	expiryHandler := expiry.NewHandler(expiryJob, cfg.CronSecret)

	authenticator := middleware.NewAuthenticator(cfg.JWTSecret, userService)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Mount("/auth", authHandler.Routes())
		r.Get("/notifications/check-visa-expiry", expiryHandler.Check)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authenticator.Authenticate)

			r.Get("/me/orgs", orgHandler.MyOrganizations)

			r.Mount("/trainees", traineeHandler.Routes())
			r.Get("/trainees/{traineeId}/certificates", certHandler.ListByTrainee)
			r.Get("/trainees/{traineeId}/evaluations", evalHandler.ListByTrainee)

			r.Mount("/certificates", certHandler.Routes())
			r.Mount("/skills", skillHandler.Routes())
			r.Mount("/evaluations", evalHandler.Routes())
			r.Mount("/notifications", notifHandler.Routes())

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRoles("ADMIN"))
				r.Mount("/admin/users", userHandler.Routes())
				r.Mount("/admin/organizations", orgHandler.Routes())
			})
		})
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.ExpiryCheckEnabled {
		scheduler := expiry.NewScheduler(expiryJob, cfg.ExpiryCheckInterval, logger)
		go scheduler.Start(ctx)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
