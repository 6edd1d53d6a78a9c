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

const commentColumns = `
	c.id, c.poster_id, c.author_id, c.content, c.created_at, c.updated_at,
	u.username AS "author.username",
	u.full_name AS "author.full_name",
	u.profile_photo AS "author.profile_photo",
	(SELECT COUNT(*) FROM comment_likes cl WHERE cl.comment_id = c.id) AS likes`

const commentFrom = ` FROM comments c JOIN users u ON u.id = c.author_id`

// Create inserts a new comment.
func (r *CommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	comment.ID = uuid.New()
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	query := `
		INSERT INTO comments (id, poster_id, author_id, content, created_at, updated_at)
		VALUES (:id, :poster_id, :author_id, :content, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, comment); err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

// GetByID retrieves a comment with its author projection and like count.
func (r *CommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	query := `SELECT ` + commentColumns + commentFrom + ` WHERE c.id = $1`

	var comment models.Comment
	if err := r.db.GetContext(ctx, &comment, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "Comment not found")
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &comment, nil
}

// ListByPoster returns a poster's comments, oldest first.
func (r *CommentRepo) ListByPoster(ctx context.Context, posterID uuid.UUID) ([]*models.Comment, error) {
	query := `SELECT ` + commentColumns + commentFrom +
		` WHERE c.poster_id = $1 ORDER BY c.created_at ASC`

	comments := []*models.Comment{}
	if err := r.db.SelectContext(ctx, &comments, query, posterID); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// UpdateContent replaces the comment body and returns the updated record.
func (r *CommentRepo) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*models.Comment, error) {
	query := `UPDATE comments SET content = $1, updated_at = $2 WHERE id = $3`

	res, err := r.db.ExecContext(ctx, query, content, time.Now(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return nil, apperrors.New(apperrors.KindNotFound, "Comment not found")
	}
	return r.GetByID(ctx, id)
}

// Delete removes the comment and, via cascade, its likes.
func (r *CommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperrors.New(apperrors.KindNotFound, "Comment not found")
	}
	return nil
}

// ToggleLike adds the user's like if absent, removes it if present, and
// returns the resulting like count and whether the user now likes the comment.
func (r *CommentRepo) ToggleLike(ctx context.Context, commentID, userID uuid.UUID) (*models.LikeResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2`,
		commentID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}

	liked := removed == 0
	if liked {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO comment_likes (comment_id, user_id, created_at) VALUES ($1, $2, $3)`,
			commentID, userID, time.Now())
		if err != nil {
			return nil, fmt.Errorf("failed to toggle like: %w", err)
		}
	}

	var likes int
	err = tx.GetContext(ctx, &likes,
		`SELECT COUNT(*) FROM comment_likes WHERE comment_id = $1`, commentID)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit like toggle: %w", err)
	}

	return &models.LikeResult{Likes: likes, IsLiked: liked}, nil
}
