package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/reelboard/reelboard/internal/pkg/middleware"
	"github.com/reelboard/reelboard/internal/pkg/models"
	"github.com/reelboard/reelboard/internal/utils"
	"github.com/reelboard/reelboard/services/board"
)

// UserHandler handles HTTP requests for profiles and admin user management
type UserHandler struct {
	userUC board.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC board.UserUC) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// Me returns the authenticated user's own profile
func (h *UserHandler) Me(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetUserByID(c.Request().Context(), userID.String())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", user)
}

// GetUser returns a user profile by id
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userUC.GetUserByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}

// ListUsers returns all users, admin only
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Users retrieved successfully", users)
}

// UpdateRole changes a user's role, admin only
func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req models.UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.UpdateUserRole(c.Request().Context(), c.Param("id"), req.Role)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Role updated successfully", user)
}
