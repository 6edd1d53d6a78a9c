package board

import (
	"context"

	"github.com/google/uuid"
	"github.com/reelboard/reelboard/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/reelboard/reelboard/services/board UserRepo,OTPStore,PosterRepo,CommentRepo

// UserRepo is the credential store boundary. Uniqueness on username and
// email is enforced by the store and surfaces as a Conflict error on insert.
type UserRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateRole(ctx context.Context, id uuid.UUID, role string) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, email, passwordHash string) error
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*models.User, error)
}

// OTPStore holds at most one live OTP record per email. Put overwrites any
// existing record (last writer wins); Get returns nil for an absent key.
// Backends: process-local map or Redis with TTL.
type OTPStore interface {
	Put(ctx context.Context, otp *models.OTP) error
	Get(ctx context.Context, email string) (*models.OTP, error)
	Delete(ctx context.Context, email string) error
}

// PosterRepo persists poster reviews and their moderation state.
type PosterRepo interface {
	Create(ctx context.Context, poster *models.Poster) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Poster, error)
	ListApproved(ctx context.Context, filter models.PosterFilter) ([]*models.Poster, int, error)
	ListPending(ctx context.Context) ([]*models.Poster, error)
	ListAll(ctx context.Context) ([]*models.Poster, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*models.Poster, error)
	Approve(ctx context.Context, id, adminID uuid.UUID) (*models.Poster, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CommentRepo persists comments and their likes.
type CommentRepo interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	ListByPoster(ctx context.Context, posterID uuid.UUID) ([]*models.Comment, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (*models.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleLike(ctx context.Context, commentID, userID uuid.UUID) (*models.LikeResult, error)
}
