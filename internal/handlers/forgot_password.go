package handlers

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"math/big"
	"net/http"

	"go.uber.org/zap"

	"wanderwise/internal/config"
	"wanderwise/internal/dto"
	"wanderwise/internal/identity"
	"wanderwise/internal/middleware"
	"wanderwise/internal/utils"
)

// ForgotPasswordHandler handles the password reset flow
type ForgotPasswordHandler struct {
	provider identity.Provider
	email    *utils.EmailService
	config   *config.Config
	logger   *zap.Logger
}

// NewForgotPasswordHandler creates a new ForgotPasswordHandler instance
func NewForgotPasswordHandler(provider identity.Provider, email *utils.EmailService, cfg *config.Config, logger *zap.Logger) *ForgotPasswordHandler {
	return &ForgotPasswordHandler{provider: provider, email: email, config: cfg, logger: logger}
}

// ForgotPassword emails a verification code and issues a short-lived reset token
// @Summary Request password reset
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Account email"
// @Success 200 {object} dto.ForgotPasswordResponse "Reset token issued"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/forgot-password [post]
func (h *ForgotPasswordHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.ForgotPasswordRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.Email == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Email is required")
		return
	}

	user, err := h.provider.FindByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, identity.ErrAccountNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "No account with that email")
			return
		}
		h.logger.Error("forgot-password lookup failed", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	code, err := generateVerificationCode(6)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate code", err.Error())
		return
	}

	if err := h.email.SendVerificationCode(user.Email, code); err != nil {
		h.logger.Error("verification email failed", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to send email", err.Error())
		return
	}

	token, err := middleware.GenerateResetToken(user.ID, user.Email, code, &h.config.JWT)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate token", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ForgotPasswordResponse{
		Message:    "Verification code sent",
		ResetToken: token,
	})
}

// ResetPassword verifies the token and code, then updates the credential
// @Summary Reset password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Reset token, code and new password"
// @Success 200 {object} dto.MessageResponse "Password reset"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid token or code"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/reset-password [post]
func (h *ForgotPasswordHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.ResetPasswordRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.Token == "" || req.Code == "" || req.NewPassword == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Token, code, and new password are required")
		return
	}
	if len(req.NewPassword) < 6 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Weak password", "Password must be at least 6 characters")
		return
	}

	claims, err := middleware.ValidateResetToken(req.Token, &h.config.JWT)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid token", "Reset token is invalid or expired")
		return
	}

	if subtle.ConstantTimeCompare([]byte(claims.Code), []byte(req.Code)) != 1 {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid code", "Verification code does not match")
		return
	}

	if err := h.provider.UpdatePassword(r.Context(), claims.UserID, req.NewPassword); err != nil {
		h.logger.Error("password update failed", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to reset password", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Password has been reset successfully"})
}

// generateVerificationCode generates a random n-digit verification code
func generateVerificationCode(length int) (string, error) {
	const digits = "0123456789"
	code := make([]byte, length)

	for i := range code {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", err
		}
		code[i] = digits[num.Int64()]
	}

	return string(code), nil
}
