package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/reelboard/reelboard/internal/pkg/middleware"
	"github.com/reelboard/reelboard/internal/pkg/models"
	"github.com/reelboard/reelboard/internal/utils"
	"github.com/reelboard/reelboard/services/board"
)

// CommentHandler handles HTTP requests for comments and likes
type CommentHandler struct {
	commentUC board.CommentUC
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentUC board.CommentUC) *CommentHandler {
	return &CommentHandler{commentUC: commentUC}
}

// Create adds a comment to an approved poster
func (h *CommentHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	comment, err := h.commentUC.CreateComment(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Comment added successfully", comment)
}

// Update edits a comment's body, author only
func (h *CommentHandler) Update(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	comment, err := h.commentUC.UpdateComment(c.Request().Context(), c.Param("id"),
		userID, req.Content)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Comment updated successfully", comment)
}

// Delete removes a comment, author or admin only
func (h *CommentHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	err := h.commentUC.DeleteComment(c.Request().Context(), c.Param("id"),
		userID, middleware.UserRole(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Comment deleted successfully", nil)
}

// ToggleLike flips the caller's like on a comment
func (h *CommentHandler) ToggleLike(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.commentUC.ToggleCommentLike(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Like toggled", result)
}
