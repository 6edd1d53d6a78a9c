package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/reelboard/reelboard/internal/pkg/middleware"
	"github.com/reelboard/reelboard/internal/pkg/models"
	"github.com/reelboard/reelboard/services/board/handler/http"
)

// Handler coordinates the HTTP handlers for the board service
type Handler struct {
	authHandler    *http.AuthHandler
	userHandler    *http.UserHandler
	posterHandler  *http.PosterHandler
	commentHandler *http.CommentHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	userHandler *http.UserHandler,
	posterHandler *http.PosterHandler,
	commentHandler *http.CommentHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:    authHandler,
		userHandler:    userHandler,
		posterHandler:  posterHandler,
		commentHandler: commentHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance. Three tiers:
// public, authenticated, and admin (authenticated plus role check).
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)
	optionalAuth := middleware.OptionalJWTAuthMiddleware(h.cfg.JWT)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	// Public auth endpoints
	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.GET("/check-username", h.authHandler.CheckUsername)
	authGroup.GET("/check-email", h.authHandler.CheckEmail)
	authGroup.POST("/otp/request", h.authHandler.RequestOTP)
	authGroup.POST("/otp/verify", h.authHandler.VerifyOTP)
	authGroup.POST("/reset-password", h.authHandler.ResetPassword)

	// Public poster feed; detail widens for authenticated viewers
	e.GET("/posters", h.posterHandler.List)
	e.GET("/posters/categories", h.posterHandler.Categories)
	e.GET("/posters/mine", h.posterHandler.ListMine, auth)
	e.GET("/posters/:id", h.posterHandler.Get, optionalAuth)

	// Authenticated content endpoints
	e.POST("/posters", h.posterHandler.Create, auth)
	e.DELETE("/posters/:id", h.posterHandler.Delete, auth)

	comments := e.Group("/comments", auth)
	comments.POST("", h.commentHandler.Create)
	comments.PUT("/:id", h.commentHandler.Update)
	comments.DELETE("/:id", h.commentHandler.Delete)
	comments.POST("/:id/like", h.commentHandler.ToggleLike)

	users := e.Group("/users", auth)
	users.GET("/me", h.userHandler.Me)
	users.GET("/:id", h.userHandler.GetUser)

	// Admin endpoints
	admin := e.Group("/admin", auth, adminOnly)
	admin.GET("/users", h.userHandler.ListUsers)
	admin.PUT("/users/:id/role", h.userHandler.UpdateRole)
	admin.GET("/posters", h.posterHandler.ListAll)
	admin.GET("/posters/pending", h.posterHandler.ListPending)
	admin.PUT("/posters/:id/approve", h.posterHandler.Approve)
	admin.DELETE("/posters/:id/reject", h.posterHandler.Reject)
}
