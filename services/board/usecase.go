package board

import (
	"context"

	"github.com/google/uuid"
	"github.com/reelboard/reelboard/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/reelboard/reelboard/services/board AuthUC,UserUC,PosterUC,CommentUC

// AuthUC covers registration, login and the OTP-gated password reset flow.
type AuthUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	UsernameAvailable(ctx context.Context, username string) (bool, error)
	EmailAvailable(ctx context.Context, email string) (bool, error)

	// OTP broker: absent -> pending -> verified -> consumed
	RequestOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, newPassword string) error
}

// UserUC covers profile access and admin role management.
type UserUC interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUserRole(ctx context.Context, id, role string) (*models.User, error)
	EnsureDefaultAdmin(ctx context.Context) error
}

// PosterUC covers poster submission, listing and moderation.
type PosterUC interface {
	ListApproved(ctx context.Context, filter models.PosterFilter) (*models.PosterPage, error)
	ListPending(ctx context.Context) ([]*models.Poster, error)
	ListAll(ctx context.Context) ([]*models.Poster, error)
	ListMine(ctx context.Context, authorID uuid.UUID) ([]*models.Poster, error)
	GetPoster(ctx context.Context, id string, viewerID, viewerRole string) (*models.Poster, error)
	CreatePoster(ctx context.Context, authorID uuid.UUID, req *models.CreatePosterRequest) (*models.Poster, error)
	ApprovePoster(ctx context.Context, id string, adminID uuid.UUID) (*models.Poster, error)
	RejectPoster(ctx context.Context, id string, adminID uuid.UUID) error
	DeletePoster(ctx context.Context, id string, requesterID uuid.UUID, requesterRole string) error
}

// CommentUC covers comments on approved posters and like toggling.
type CommentUC interface {
	CreateComment(ctx context.Context, authorID uuid.UUID, req *models.CreateCommentRequest) (*models.Comment, error)
	UpdateComment(ctx context.Context, id string, requesterID uuid.UUID, content string) (*models.Comment, error)
	DeleteComment(ctx context.Context, id string, requesterID uuid.UUID, requesterRole string) error
	ToggleCommentLike(ctx context.Context, id string, userID uuid.UUID) (*models.LikeResult, error)
}
