package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/reelboard/reelboard/internal/pkg/apperrors"
	"github.com/reelboard/reelboard/internal/pkg/models"
)

const uniqueViolation = "23505"

const userColumns = `id, username, full_name, email, password_hash, role, profile_photo, created_at, updated_at`

// getUserByField is a helper to get a user by a specific column
func (r *UserRepo) getUserByField(ctx context.Context, field, value string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1`, userColumns, field)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "User not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetByID retrieves a user by ID
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getUserByField(ctx, "id", id.String())
}

// GetByUsername retrieves a user by username
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getUserByField(ctx, "username", username)
}

// GetByEmail retrieves a user by lowercase-normalized email
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUserByField(ctx, "email", strings.ToLower(email))
}

// Create inserts a new user. Email is lowercased at write time; a duplicate
// username or email surfaces as a Conflict naming the offending field.
func (r *UserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	user.Email = strings.ToLower(user.Email)
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, username, full_name, email, password_hash, role,
			profile_photo, created_at, updated_at
		) VALUES (:id, :username, :full_name, :email, :password_hash, :role,
			:profile_photo, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		if field, ok := conflictField(err); ok {
			return apperrors.NewField(apperrors.KindConflict, field, field+" already exists")
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// conflictField maps a unique violation to the offending column.
func conflictField(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return "", false
	}
	switch pgErr.ConstraintName {
	case "users_username_key":
		return "username", true
	case "users_email_key":
		return "email", true
	default:
		return "value", true
	}
}

// UpdateRole changes a user's role and returns the updated record.
// Tokens already issued keep the old role until they expire.
func (r *UserRepo) UpdateRole(ctx context.Context, id uuid.UUID, role string) (*models.User, error) {
	query := `UPDATE users SET role = $1, updated_at = $2 WHERE id = $3`

	res, err := r.db.ExecContext(ctx, query, role, time.Now(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return nil, apperrors.New(apperrors.KindNotFound, "User not found")
	}

	return r.GetByID(ctx, id)
}

// UpdatePasswordHash replaces the stored password hash for an email.
func (r *UserRepo) UpdatePasswordHash(ctx context.Context, email, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1, updated_at = $2 WHERE email = $3`

	res, err := r.db.ExecContext(ctx, query, passwordHash, time.Now(), strings.ToLower(email))
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperrors.New(apperrors.KindNotFound, "User not found")
	}

	return nil
}

// UsernameExists reports whether a username is taken
func (r *UserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username)
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return exists, nil
}

// EmailExists reports whether an email is taken
func (r *UserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, strings.ToLower(email))
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

// List returns all users, newest first.
func (r *UserRepo) List(ctx context.Context) ([]*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY created_at DESC`, userColumns)

	var users []*models.User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
