package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/reelboard/reelboard/internal/pkg/middleware"
	"github.com/reelboard/reelboard/internal/pkg/models"
	"github.com/reelboard/reelboard/internal/utils"
	"github.com/reelboard/reelboard/services/board"
)

// PosterHandler handles HTTP requests for poster listing, submission and
// moderation
type PosterHandler struct {
	posterUC board.PosterUC
}

// NewPosterHandler creates a new poster handler
func NewPosterHandler(posterUC board.PosterUC) *PosterHandler {
	return &PosterHandler{posterUC: posterUC}
}

// List returns the public feed of approved posters
func (h *PosterHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.posterUC.ListApproved(c.Request().Context(), models.PosterFilter{
		Category: c.QueryParam("category"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Posters retrieved successfully", result)
}

// Categories returns the fixed category list
func (h *PosterHandler) Categories(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Categories retrieved successfully",
		models.PosterCategories)
}

// Get returns a single poster with its comments. Works for anonymous
// viewers too; identity, when present, widens visibility to own pending
// posters.
func (h *PosterHandler) Get(c echo.Context) error {
	viewerID := ""
	if id, ok := middleware.UserID(c); ok {
		viewerID = id.String()
	}

	poster, err := h.posterUC.GetPoster(c.Request().Context(), c.Param("id"),
		viewerID, middleware.UserRole(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Poster retrieved successfully", poster)
}

// ListMine returns the authenticated user's own posters in any state
func (h *PosterHandler) ListMine(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	posters, err := h.posterUC.ListMine(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Posters retrieved successfully", posters)
}

// Create submits a new poster for moderation
func (h *PosterHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreatePosterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	poster, err := h.posterUC.CreatePoster(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Poster submitted for review", poster)
}

// Delete removes a poster, author or admin only
func (h *PosterHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	err := h.posterUC.DeletePoster(c.Request().Context(), c.Param("id"),
		userID, middleware.UserRole(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Poster deleted successfully", nil)
}

// ListPending returns the moderation queue, admin only
func (h *PosterHandler) ListPending(c echo.Context) error {
	posters, err := h.posterUC.ListPending(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Pending posters retrieved successfully", posters)
}

// ListAll returns every poster regardless of state, admin only
func (h *PosterHandler) ListAll(c echo.Context) error {
	posters, err := h.posterUC.ListAll(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Posters retrieved successfully", posters)
}

// Approve marks a pending poster approved, admin only
func (h *PosterHandler) Approve(c echo.Context) error {
	adminID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	poster, err := h.posterUC.ApprovePoster(c.Request().Context(), c.Param("id"), adminID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Poster approved", poster)
}

// Reject removes a pending poster, admin only
func (h *PosterHandler) Reject(c echo.Context) error {
	adminID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.posterUC.RejectPoster(c.Request().Context(), c.Param("id"), adminID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Poster rejected", nil)
}
