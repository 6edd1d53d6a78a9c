package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/reelboard/reelboard/internal/pkg/apperrors"
	"github.com/reelboard/reelboard/internal/pkg/logger"
	"github.com/reelboard/reelboard/internal/pkg/models"
	"github.com/reelboard/reelboard/internal/utils"
)

// GetUserByID returns the sanitized user for the given id.
func (u *BoardUC) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.New(apperrors.KindInvalid, "Invalid user ID")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Sanitize(), nil
}

// ListUsers returns all users, sanitized, newest first.
func (u *BoardUC) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	sanitized := make([]*models.User, 0, len(users))
	for _, user := range users {
		sanitized = append(sanitized, user.Sanitize())
	}
	return sanitized, nil
}

// UpdateUserRole changes a user's authorization tier. Tokens issued before
// the change keep their old role claim until they expire.
func (u *BoardUC) UpdateUserRole(ctx context.Context, id, role string) (*models.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.New(apperrors.KindInvalid, "Invalid user ID")
	}
	if !models.ValidRole(role) {
		return nil, apperrors.NewField(apperrors.KindInvalid, "role", "Invalid role")
	}

	user, err := u.userRepo.UpdateRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	logger.Info("User role updated",
		logger.String("user_id", user.ID.String()),
		logger.String("role", role))

	return user.Sanitize(), nil
}

// EnsureDefaultAdmin creates the bootstrap admin account if no account with
// the configured admin email exists. Called once at startup.
func (u *BoardUC) EnsureDefaultAdmin(ctx context.Context) error {
	admin := u.cfg.Admin

	exists, err := u.userRepo.EmailExists(ctx, admin.Email)
	if err != nil {
		return fmt.Errorf("failed to check for admin account: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := utils.HashPassword(admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	user := &models.User{
		Username:     admin.Username,
		FullName:     admin.FullName,
		Email:        admin.Email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		// A concurrent instance may have seeded it first
		if apperrors.KindOf(err) == apperrors.KindConflict {
			return nil
		}
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	logger.Info("Default admin account created",
		logger.String("email", admin.Email))
	return nil
}
