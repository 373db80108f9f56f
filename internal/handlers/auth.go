package handlers

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"wanderwise/internal/config"
	"wanderwise/internal/dto"
	"wanderwise/internal/identity"
	"wanderwise/internal/middleware"
	"wanderwise/internal/models"
	"wanderwise/internal/session"
	"wanderwise/internal/utils"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	provider identity.Provider
	sessions *session.Manager
	config   *config.Config
	logger   *zap.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(provider identity.Provider, sessions *session.Manager, cfg *config.Config, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{provider: provider, sessions: sessions, config: cfg, logger: logger}
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new user account with email and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration data"
// @Success 201 {object} dto.AuthResponse "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.RegisterRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	if req.Email == "" || req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Email and password are required")
		return
	}
	if len(req.Password) < 6 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Weak password", "Password must be at least 6 characters")
		return
	}

	user, err := h.provider.Register(r.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrInvalidEmail):
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid email", "That is not a valid email address")
		case errors.Is(err, identity.ErrEmailTaken):
			utils.WriteErrorResponse(w, http.StatusConflict, "User already exists", "Email already registered")
		default:
			h.logger.Error("registration failed", zap.Error(err))
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create user", err.Error())
		}
		return
	}

	h.sessions.Establish(r.Context(), user)
	h.respondWithToken(w, http.StatusCreated, user)
}

// Login handles user login
// @Summary Login user
// @Description Authenticate user with email and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 429 {object} dto.ErrorResponse "Too many attempts"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.LoginRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	if req.Email == "" || req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Email and password are required")
		return
	}

	user, err := h.sessions.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrInvalidEmail):
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid email", "That is not a valid email address")
		case errors.Is(err, identity.ErrInvalidCredential), errors.Is(err, identity.ErrAccountNotFound):
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid credentials", "Email or password is incorrect")
		case errors.Is(err, identity.ErrRateLimited):
			utils.WriteErrorResponse(w, http.StatusTooManyRequests, "Too many attempts", "Try again later")
		default:
			h.logger.Error("login failed", zap.Error(err))
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Login failed", err.Error())
		}
		return
	}

	h.respondWithToken(w, http.StatusOK, user)
}

// Logout handles user logout
// @Summary Logout user
// @Description End the authenticated user's session
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MessageResponse "Logged out"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	h.sessions.SignOut(userID)
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// GetProfile returns the authenticated user's account
// @Summary Get profile
// @Description Return the authenticated user's account data
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse "Profile"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /api/auth/profile [get]
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	email, ok := utils.GetEmailFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	user, err := h.provider.FindByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, identity.ErrAccountNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Account not found")
			return
		}
		h.logger.Error("profile lookup failed", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, toUserResponse(user))
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, status int, user *models.User) {
	token, err := middleware.GenerateToken(user.ID, user.Email, &h.config.JWT)
	if err != nil {
		h.logger.Error("token generation failed", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate token", err.Error())
		return
	}

	utils.WriteJSONResponse(w, status, dto.AuthResponse{
		User:  toUserResponse(user),
		Token: token,
	})
}

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID.String(),
		Email:       user.Email,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   user.UpdatedAt.Format(time.RFC3339),
	}
}
