package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/reelboard/reelboard/internal/pkg/apperrors"
	"github.com/reelboard/reelboard/internal/pkg/logger"
	"github.com/reelboard/reelboard/internal/pkg/models"
)

const (
	defaultPageLimit = 12
	maxPageLimit     = 50
)

const (
	maxTitleLength  = 100
	minReviewLength = 10
	maxReviewLength = 1000
)

func validatePoster(req *models.CreatePosterRequest) error {
	title := strings.TrimSpace(req.Title)
	if title == "" || len(title) > maxTitleLength {
		return apperrors.NewField(apperrors.KindInvalid, "title", "Title is required (max 100 chars)")
	}
	movieName := strings.TrimSpace(req.MovieName)
	if movieName == "" || len(movieName) > maxTitleLength {
		return apperrors.NewField(apperrors.KindInvalid, "movie_name", "Movie name is required (max 100 chars)")
	}
	if !models.ValidCategory(req.Category) {
		return apperrors.NewField(apperrors.KindInvalid, "category", "Invalid category")
	}
	if strings.TrimSpace(req.PosterImage) == "" {
		return apperrors.NewField(apperrors.KindInvalid, "poster_image", "Poster image is required")
	}
	review := strings.TrimSpace(req.Review)
	if len(review) < minReviewLength || len(review) > maxReviewLength {
		return apperrors.NewField(apperrors.KindInvalid, "review", "Review must be 10-1000 characters")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return apperrors.NewField(apperrors.KindInvalid, "rating", "Rating must be between 1 and 5")
	}
	return nil
}

// ListApproved returns a page of approved posters for the public feed.
func (u *BoardUC) ListApproved(ctx context.Context, filter models.PosterFilter) (*models.PosterPage, error) {
	if filter.Category != "" && !models.ValidCategory(filter.Category) {
		return nil, apperrors.NewField(apperrors.KindInvalid, "category", "Invalid category")
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	posters, total, err := u.posterRepo.ListApproved(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := (total + filter.Limit - 1) / filter.Limit
	return &models.PosterPage{
		Posters: posters,
		Pagination: models.Pagination{
			CurrentPage: filter.Page,
			TotalPages:  totalPages,
			Total:       total,
			HasNext:     filter.Page < totalPages,
			HasPrev:     filter.Page > 1,
		},
	}, nil
}

// ListPending returns the moderation queue of unapproved posters.
func (u *BoardUC) ListPending(ctx context.Context) ([]*models.Poster, error) {
	return u.posterRepo.ListPending(ctx)
}

// ListAll returns every poster regardless of state, for the admin view.
func (u *BoardUC) ListAll(ctx context.Context) ([]*models.Poster, error) {
	return u.posterRepo.ListAll(ctx)
}

// ListMine returns the author's own posters, approved or not.
func (u *BoardUC) ListMine(ctx context.Context, authorID uuid.UUID) ([]*models.Poster, error) {
	return u.posterRepo.ListByAuthor(ctx, authorID)
}

// Get returns a poster with its comments. Unapproved posters are visible
// only to their author and admins; anyone else sees NotFound rather than
// Forbidden so the poster's existence leaks nothing.
func (u *BoardUC) GetPoster(ctx context.Context, id string, viewerID, viewerRole string) (*models.Poster, error) {
	posterID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.New(apperrors.KindInvalid, "Invalid poster ID")
	}

	poster, err := u.posterRepo.GetByID(ctx, posterID)
	if err != nil {
		return nil, err
	}

	if !poster.IsApproved && viewerRole != models.RoleAdmin && viewerID != poster.AuthorID.String() {
		return nil, apperrors.New(apperrors.KindNotFound, "Poster not found")
	}

	comments, err := u.commentRepo.ListByPoster(ctx, posterID)
	if err != nil {
		return nil, err
	}
	poster.Comments = comments

	return poster, nil
}

// CreatePoster submits a new poster into the moderation queue.
func (u *BoardUC) CreatePoster(ctx context.Context, authorID uuid.UUID, req *models.CreatePosterRequest) (*models.Poster, error) {
	if err := validatePoster(req); err != nil {
		return nil, err
	}

	poster := &models.Poster{
		Title:       strings.TrimSpace(req.Title),
		MovieName:   strings.TrimSpace(req.MovieName),
		Category:    req.Category,
		PosterImage: strings.TrimSpace(req.PosterImage),
		Review:      strings.TrimSpace(req.Review),
		Rating:      req.Rating,
		AuthorID:    authorID,
	}
	if err := u.posterRepo.Create(ctx, poster); err != nil {
		return nil, err
	}
	return poster, nil
}

// ApprovePoster marks a pending poster approved and notifies downstream consumers.
func (u *BoardUC) ApprovePoster(ctx context.Context, id string, adminID uuid.UUID) (*models.Poster, error) {
	posterID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.New(apperrors.KindInvalid, "Invalid poster ID")
	}

	poster, err := u.posterRepo.Approve(ctx, posterID, adminID)
	if err != nil {
		return nil, err
	}

	u.publishModerated(ctx, poster.ID, poster.AuthorID, adminID, true)
	return poster, nil
}

// RejectPoster removes a pending poster and notifies downstream consumers.
// Rejection is a hard delete, the submission does not linger.
func (u *BoardUC) RejectPoster(ctx context.Context, id string, adminID uuid.UUID) error {
	posterID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.New(apperrors.KindInvalid, "Invalid poster ID")
	}

	poster, err := u.posterRepo.GetByID(ctx, posterID)
	if err != nil {
		return err
	}
	if poster.IsApproved {
		return apperrors.New(apperrors.KindInvalid, "Poster is already approved")
	}

	if err := u.posterRepo.Delete(ctx, posterID); err != nil {
		return err
	}

	u.publishModerated(ctx, poster.ID, poster.AuthorID, adminID, false)
	return nil
}

// DeletePoster removes a poster. Authors may delete their own posters;
// admins may delete any.
func (u *BoardUC) DeletePoster(ctx context.Context, id string, requesterID uuid.UUID, requesterRole string) error {
	posterID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.New(apperrors.KindInvalid, "Invalid poster ID")
	}

	poster, err := u.posterRepo.GetByID(ctx, posterID)
	if err != nil {
		return err
	}
	if requesterRole != models.RoleAdmin && poster.AuthorID != requesterID {
		return apperrors.New(apperrors.KindForbidden, "You can only delete your own posters")
	}

	return u.posterRepo.Delete(ctx, posterID)
}

// publishModerated emits a moderation event, best effort.
func (u *BoardUC) publishModerated(ctx context.Context, posterID, authorID, adminID uuid.UUID, approved bool) {
	event := &models.PosterModeratedEvent{
		PosterID:  posterID.String(),
		AuthorID:  authorID.String(),
		AdminID:   adminID.String(),
		Approved:  approved,
		Timestamp: time.Now(),
	}
	if err := u.boardGW.PublishPosterModerated(ctx, event); err != nil {
		logger.Warn("Failed to publish poster moderated event",
			logger.String("poster_id", posterID.String()),
			logger.Bool("approved", approved),
			logger.Err(err))
	}
}
