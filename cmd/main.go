// @title Wanderwise Backend API
// @version 1.0
// @description AI travel planner backend: authentication, AI-generated trip recommendations, and per-user saved trips
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"go.uber.org/zap"

	_ "wanderwise/docs" // swagger generated docs
	"wanderwise/internal/config"
	"wanderwise/internal/handlers"
	"wanderwise/internal/identity"
	"wanderwise/internal/recommend"
	"wanderwise/internal/routes"
	"wanderwise/internal/session"
	"wanderwise/internal/trips"
	"wanderwise/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := newLogger(cfg.Server.Environment)
	defer logger.Sync()

	// --- Database ---

	pgcfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		logger.Fatal("parse dsn", zap.Error(err))
	}
	pgcfg.ConnConfig.RuntimeParams["application_name"] = "wanderwise-backend"
	pgcfg.MaxConns = cfg.Database.MaxConns
	pgcfg.MinConns = cfg.Database.MinConns
	pgcfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), pgcfg)
	if err != nil {
		logger.Fatal("connect", zap.Error(err))
	}
	defer pool.Close()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			logger.Fatal("ping", zap.Error(err))
		}
	}

	// --- Core components ---

	provider := identity.NewPGProvider(pool, &cfg.AuthThrottle, logger)
	repo := trips.NewPGRepository(pool, logger)
	sessions := session.NewManager(repo, provider, recommend.FallbackTrips(), logger)

	generator := newGenerator(cfg, logger)
	recClient := recommend.NewClient(generator, &cfg.Recommender, logger)

	emailService := utils.NewEmailService(&cfg.Email)

	// --- HTTP Handlers ---

	authHandler := handlers.NewAuthHandler(provider, sessions, cfg, logger)
	googleAuthHandler := handlers.NewGoogleAuthHandler(provider, sessions, cfg, logger)
	forgotPasswordHandler := handlers.NewForgotPasswordHandler(provider, emailService, cfg, logger)
	tripsHandler := handlers.NewTripsHandler(sessions, logger)
	recsHandler := handlers.NewRecommendationsHandler(recClient, sessions, logger)
	healthHandler := handlers.NewHealthHandler(pool)

	routes.SetupRoutes(cfg, authHandler, googleAuthHandler, forgotPasswordHandler,
		tripsHandler, recsHandler, healthHandler)

	// --- HTTP Server + Graceful Shutdown ---

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})
	handler := c.Handler(http.DefaultServeMux)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("ListenAndServe", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func newLogger(environment string) *zap.Logger {
	if environment == "production" {
		logger, err := zap.NewProduction()
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		return logger
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return logger
}

// newGenerator picks the generation backend from config. A missing API key
// is not fatal: the recommendation client degrades to its fallback catalog.
func newGenerator(cfg *config.Config, logger *zap.Logger) recommend.Generator {
	switch cfg.Recommender.Provider {
	case "openai":
		gen, err := recommend.NewOpenAIGenerator(cfg.Recommender.OpenAIAPIKey, cfg.Recommender.OpenAIModel)
		if err != nil {
			logger.Warn("openai generator unavailable", zap.Error(err))
			return nil
		}
		return gen
	default:
		gen, err := recommend.NewGeminiGenerator(context.Background(), cfg.Recommender.GeminiAPIKey, cfg.Recommender.GeminiModel)
		if err != nil {
			logger.Warn("gemini generator unavailable", zap.Error(err))
			return nil
		}
		return gen
	}
}
