package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/reelboard/reelboard/internal/pkg/logger"
	"github.com/reelboard/reelboard/internal/pkg/models"
	"github.com/reelboard/reelboard/internal/utils"
	"github.com/reelboard/reelboard/services/board"
)

// AuthHandler handles HTTP requests for registration, login and password reset
type AuthHandler struct {
	authUC board.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC board.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Register handles account creation requests
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.authUC.Register(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account created successfully", user)
}

// Login handles authentication requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Login failed",
			logger.String("username", req.Username),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// CheckUsername reports whether a username is still available
func (h *AuthHandler) CheckUsername(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return utils.BadRequestResponse(c, "username query parameter is required")
	}

	available, err := h.authUC.UsernameAvailable(c.Request().Context(), username)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Username availability checked",
		map[string]bool{"available": available})
}

// CheckEmail reports whether an email is still available
func (h *AuthHandler) CheckEmail(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return utils.BadRequestResponse(c, "email query parameter is required")
	}

	available, err := h.authUC.EmailAvailable(c.Request().Context(), email)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Email availability checked",
		map[string]bool{"available": available})
}

// RequestOTP handles password reset initiation
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req models.OTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" {
		return utils.BadRequestResponse(c, "Email is required")
	}

	if err := h.authUC.RequestOTP(c.Request().Context(), req.Email); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent to your email", nil)
}

// VerifyOTP handles reset code verification
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.OTPVerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.Code == "" {
		return utils.BadRequestResponse(c, "Email and code are required")
	}

	if err := h.authUC.VerifyOTP(c.Request().Context(), req.Email, req.Code); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP verified", nil)
}

// ResetPassword completes the OTP-gated password reset
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.NewPassword == "" {
		return utils.BadRequestResponse(c, "Email and new password are required")
	}

	if err := h.authUC.ResetPassword(c.Request().Context(), req.Email, req.NewPassword); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password reset successfully", nil)
}
