package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/reelboard/reelboard/internal/pkg/apperrors"
	"github.com/reelboard/reelboard/internal/pkg/models"
)

const posterColumns = `
	p.id, p.title, p.movie_name, p.category, p.poster_image, p.review,
	p.rating, p.author_id, p.is_approved, p.approved_by, p.approved_at,
	p.created_at, p.updated_at,
	u.username AS "author.username",
	u.full_name AS "author.full_name",
	u.profile_photo AS "author.profile_photo"`

const posterFrom = ` FROM posters p JOIN users u ON u.id = p.author_id`

// Create inserts a new poster in unapproved state.
func (r *PosterRepo) Create(ctx context.Context, poster *models.Poster) error {
	poster.ID = uuid.New()
	poster.IsApproved = false
	now := time.Now()
	poster.CreatedAt = now
	poster.UpdatedAt = now

	query := `
		INSERT INTO posters (id, title, movie_name, category, poster_image,
			review, rating, author_id, is_approved, created_at, updated_at
		) VALUES (:id, :title, :movie_name, :category, :poster_image,
			:review, :rating, :author_id, :is_approved, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, poster); err != nil {
		return fmt.Errorf("failed to insert poster: %w", err)
	}
	return nil
}

// GetByID retrieves a poster with its author projection.
func (r *PosterRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Poster, error) {
	query := `SELECT ` + posterColumns + posterFrom + ` WHERE p.id = $1`

	var poster models.Poster
	if err := r.db.GetContext(ctx, &poster, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "Poster not found")
		}
		return nil, fmt.Errorf("failed to get poster: %w", err)
	}
	return &poster, nil
}

// ListApproved returns a page of approved posters, newest first, plus the
// total count matching the filter.
func (r *PosterRepo) ListApproved(ctx context.Context, filter models.PosterFilter) ([]*models.Poster, int, error) {
	where := ` WHERE p.is_approved = true`
	args := []interface{}{}
	if filter.Category != "" {
		args = append(args, filter.Category)
		where += fmt.Sprintf(" AND p.category = $%d", len(args))
	}

	var total int
	countQuery := `SELECT COUNT(*)` + posterFrom + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count posters: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)
	query := fmt.Sprintf(`SELECT %s %s %s ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d`,
		posterColumns, posterFrom, where, len(args)-1, len(args))

	posters := []*models.Poster{}
	if err := r.db.SelectContext(ctx, &posters, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list posters: %w", err)
	}
	return posters, total, nil
}

// ListPending returns unapproved posters, oldest first, for the moderation queue.
func (r *PosterRepo) ListPending(ctx context.Context) ([]*models.Poster, error) {
	query := `SELECT ` + posterColumns + posterFrom +
		` WHERE p.is_approved = false ORDER BY p.created_at ASC`

	posters := []*models.Poster{}
	if err := r.db.SelectContext(ctx, &posters, query); err != nil {
		return nil, fmt.Errorf("failed to list pending posters: %w", err)
	}
	return posters, nil
}

// ListAll returns every poster regardless of moderation state, newest first.
func (r *PosterRepo) ListAll(ctx context.Context) ([]*models.Poster, error) {
	query := `SELECT ` + posterColumns + posterFrom + ` ORDER BY p.created_at DESC`

	posters := []*models.Poster{}
	if err := r.db.SelectContext(ctx, &posters, query); err != nil {
		return nil, fmt.Errorf("failed to list posters: %w", err)
	}
	return posters, nil
}

// ListByAuthor returns the author's own posters in any state, newest first.
func (r *PosterRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*models.Poster, error) {
	query := `SELECT ` + posterColumns + posterFrom +
		` WHERE p.author_id = $1 ORDER BY p.created_at DESC`

	posters := []*models.Poster{}
	if err := r.db.SelectContext(ctx, &posters, query, authorID); err != nil {
		return nil, fmt.Errorf("failed to list posters by author: %w", err)
	}
	return posters, nil
}

// Approve marks the poster approved, recording who approved it and when,
// and returns the updated record.
func (r *PosterRepo) Approve(ctx context.Context, id, adminID uuid.UUID) (*models.Poster, error) {
	query := `
		UPDATE posters
		SET is_approved = true, approved_by = $1, approved_at = $2, updated_at = $2
		WHERE id = $3
	`
	res, err := r.db.ExecContext(ctx, query, adminID, time.Now(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to approve poster: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return nil, apperrors.New(apperrors.KindNotFound, "Poster not found")
	}
	return r.GetByID(ctx, id)
}

// Delete removes the poster. Comments and likes go with it via cascade.
func (r *PosterRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete poster: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperrors.New(apperrors.KindNotFound, "Poster not found")
	}
	return nil
}
