package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/reelboard/reelboard/internal/pkg/apperrors"
	"github.com/reelboard/reelboard/internal/pkg/models"
)

const maxCommentLength = 500

func validateCommentContent(content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return apperrors.NewField(apperrors.KindInvalid, "content", "Content is required")
	}
	if len(trimmed) > maxCommentLength {
		return apperrors.NewField(apperrors.KindInvalid, "content", "Comment must be 1-500 characters")
	}
	return nil
}

// CreateComment adds a comment to an approved poster. Commenting on a
// pending or unknown poster yields NotFound either way.
func (u *BoardUC) CreateComment(ctx context.Context, authorID uuid.UUID, req *models.CreateCommentRequest) (*models.Comment, error) {
	posterID, err := uuid.Parse(req.PosterID)
	if err != nil {
		return nil, apperrors.New(apperrors.KindInvalid, "Invalid poster ID")
	}
	if err := validateCommentContent(req.Content); err != nil {
		return nil, err
	}

	poster, err := u.posterRepo.GetByID(ctx, posterID)
	if err != nil {
		return nil, err
	}
	if !poster.IsApproved {
		return nil, apperrors.New(apperrors.KindNotFound, "Poster not found")
	}

	comment := &models.Comment{
		PosterID: posterID,
		AuthorID: authorID,
		Content:  strings.TrimSpace(req.Content),
	}
	if err := u.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return u.commentRepo.GetByID(ctx, comment.ID)
}

// UpdateComment edits a comment's body. Only the comment's author may edit it.
func (u *BoardUC) UpdateComment(ctx context.Context, id string, requesterID uuid.UUID, content string) (*models.Comment, error) {
	commentID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.New(apperrors.KindInvalid, "Invalid comment ID")
	}
	if err := validateCommentContent(content); err != nil {
		return nil, err
	}

	comment, err := u.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != requesterID {
		return nil, apperrors.New(apperrors.KindForbidden, "You can only edit your own comments")
	}

	return u.commentRepo.UpdateContent(ctx, commentID, strings.TrimSpace(content))
}

// DeleteComment removes a comment. Authors may delete their own comments;
// admins may delete any.
func (u *BoardUC) DeleteComment(ctx context.Context, id string, requesterID uuid.UUID, requesterRole string) error {
	commentID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.New(apperrors.KindInvalid, "Invalid comment ID")
	}

	comment, err := u.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if requesterRole != models.RoleAdmin && comment.AuthorID != requesterID {
		return apperrors.New(apperrors.KindForbidden, "You can only delete your own comments")
	}

	return u.commentRepo.Delete(ctx, commentID)
}

// ToggleCommentLike flips the user's like on a comment and returns the new count.
func (u *BoardUC) ToggleCommentLike(ctx context.Context, id string, userID uuid.UUID) (*models.LikeResult, error) {
	commentID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.New(apperrors.KindInvalid, "Invalid comment ID")
	}

	// Toggling a like on a missing comment must 404, not silently count zero
	if _, err := u.commentRepo.GetByID(ctx, commentID); err != nil {
		return nil, err
	}

	return u.commentRepo.ToggleLike(ctx, commentID, userID)
}
