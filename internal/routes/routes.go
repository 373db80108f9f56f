package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"wanderwise/internal/config"
	"wanderwise/internal/handlers"
	"wanderwise/internal/middleware"
)

// SetupRoutes configures all application routes
func SetupRoutes(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	googleAuthHandler *handlers.GoogleAuthHandler,
	forgotPasswordHandler *handlers.ForgotPasswordHandler,
	tripsHandler *handlers.TripsHandler,
	recsHandler *handlers.RecommendationsHandler,
	healthHandler *handlers.HealthHandler,
) {
	// Health check routes
	http.HandleFunc("/healthz", healthHandler.HealthCheck)
	http.HandleFunc("/livez", healthHandler.LivenessCheck)
	http.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Authentication routes
	http.HandleFunc("/api/auth/register", authHandler.Register)
	http.HandleFunc("/api/auth/login", authHandler.Login)
	http.HandleFunc("/api/auth/logout", middleware.AuthMiddleware(authHandler.Logout, &cfg.JWT))
	http.HandleFunc("/api/auth/profile", middleware.AuthMiddleware(authHandler.GetProfile, &cfg.JWT))
	http.HandleFunc("/api/auth/forgot-password", forgotPasswordHandler.ForgotPassword)
	http.HandleFunc("/api/auth/reset-password", forgotPasswordHandler.ResetPassword)
	http.HandleFunc("/api/auth/google/login", googleAuthHandler.GoogleLogin)
	http.HandleFunc("/api/auth/google/callback", googleAuthHandler.GoogleCallback)

	// Trip routes
	http.HandleFunc("/api/trips", middleware.AuthMiddleware(tripsHandler.Trips, &cfg.JWT))
	http.HandleFunc("/api/trips/", middleware.AuthMiddleware(tripsHandler.Trips, &cfg.JWT))

	// Recommendation routes
	http.HandleFunc("/api/recommendations", middleware.AuthMiddleware(recsHandler.Recommendations, &cfg.JWT))
	http.HandleFunc("/api/attractions", middleware.AuthMiddleware(recsHandler.Attractions, &cfg.JWT))

	// Swagger documentation
	http.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Root route
	http.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Wanderwise backend is running."))
}
