package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelboard/reelboard/internal/pkg/apperrors"
	"github.com/reelboard/reelboard/internal/pkg/models"
)

func TestCreateComment(t *testing.T) {
	uc, m, ctrl := setupBoardUC(t)
	defer ctrl.Finish()

	posterID := uuid.New()
	authorID := uuid.New()
	commentID := uuid.New()

	m.posterRepo.EXPECT().
		GetByID(gomock.Any(), posterID).
		Return(&models.Poster{ID: posterID, IsApproved: true}, nil)
	m.commentRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, comment *models.Comment) error {
			assert.Equal(t, posterID, comment.PosterID)
			assert.Equal(t, authorID, comment.AuthorID)
			assert.Equal(t, "Great artwork!", comment.Content)
			comment.ID = commentID
			return nil
		})
	m.commentRepo.EXPECT().
		GetByID(gomock.Any(), commentID).
		Return(&models.Comment{ID: commentID, Content: "Great artwork!"}, nil)

	comment, err := uc.CreateComment(context.Background(), authorID, &models.CreateCommentRequest{
		PosterID: posterID.String(),
		Content:  "  Great artwork!  ",
	})
	assert.NoError(t, err)
	require.NotNil(t, comment)
	assert.Equal(t, commentID, comment.ID)
}

func TestCreateComment_PendingPosterHidden(t *testing.T) {
	uc, m, ctrl := setupBoardUC(t)
	defer ctrl.Finish()

	posterID := uuid.New()
	m.posterRepo.EXPECT().
		GetByID(gomock.Any(), posterID).
		Return(&models.Poster{ID: posterID, IsApproved: false}, nil)

	comment, err := uc.CreateComment(context.Background(), uuid.New(), &models.CreateCommentRequest{
		PosterID: posterID.String(),
		Content:  "First!",
	})
	assert.Error(t, err)
	assert.Nil(t, comment)
	// A pending poster looks exactly like a missing one
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestCreateComment_Validation(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "Empty", content: ""},
		{name: "Whitespace Only", content: "   "},
		{name: "Too Long", content: strings.Repeat("a", 501)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _, ctrl := setupBoardUC(t)
			defer ctrl.Finish()

			comment, err := uc.CreateComment(context.Background(), uuid.New(), &models.CreateCommentRequest{
				PosterID: uuid.New().String(),
				Content:  tc.content,
			})
			assert.Error(t, err)
			assert.Nil(t, comment)
			assert.Equal(t, apperrors.KindInvalid, apperrors.KindOf(err))
			assert.Equal(t, "content", apperrors.FieldOf(err))
		})
	}
}

func TestUpdateComment_OnlyAuthor(t *testing.T) {
	commentID := uuid.New()
	authorID := uuid.New()

	testCases := []struct {
		name        string
		requesterID uuid.UUID
		updates     bool
		wantKind    apperrors.Kind
	}{
		{name: "Author Edits Own", requesterID: authorID, updates: true},
		{name: "Stranger Forbidden", requesterID: uuid.New(), wantKind: apperrors.KindForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m, ctrl := setupBoardUC(t)
			defer ctrl.Finish()

			m.commentRepo.EXPECT().
				GetByID(gomock.Any(), commentID).
				Return(&models.Comment{ID: commentID, AuthorID: authorID}, nil)
			if tc.updates {
				m.commentRepo.EXPECT().
					UpdateContent(gomock.Any(), commentID, "Edited").
					Return(&models.Comment{ID: commentID, Content: "Edited"}, nil)
			}

			comment, err := uc.UpdateComment(context.Background(), commentID.String(), tc.requesterID, "Edited")
			if tc.wantKind == "" {
				assert.NoError(t, err)
				assert.NotNil(t, comment)
			} else {
				assert.Error(t, err)
				assert.Nil(t, comment)
				assert.Equal(t, tc.wantKind, apperrors.KindOf(err))
			}
		})
	}
}

func TestDeleteComment_Ownership(t *testing.T) {
	commentID := uuid.New()
	authorID := uuid.New()

	testCases := []struct {
		name        string
		requesterID uuid.UUID
		role        string
		deletes     bool
		wantKind    apperrors.Kind
	}{
		{name: "Author Deletes Own", requesterID: authorID, role: models.RoleUser, deletes: true},
		{name: "Admin Deletes Any", requesterID: uuid.New(), role: models.RoleAdmin, deletes: true},
		{name: "Stranger Forbidden", requesterID: uuid.New(), role: models.RoleUser, wantKind: apperrors.KindForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m, ctrl := setupBoardUC(t)
			defer ctrl.Finish()

			m.commentRepo.EXPECT().
				GetByID(gomock.Any(), commentID).
				Return(&models.Comment{ID: commentID, AuthorID: authorID}, nil)
			if tc.deletes {
				m.commentRepo.EXPECT().Delete(gomock.Any(), commentID).Return(nil)
			}

			err := uc.DeleteComment(context.Background(), commentID.String(), tc.requesterID, tc.role)
			if tc.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Equal(t, tc.wantKind, apperrors.KindOf(err))
			}
		})
	}
}

func TestToggleCommentLike(t *testing.T) {
	uc, m, ctrl := setupBoardUC(t)
	defer ctrl.Finish()

	commentID := uuid.New()
	userID := uuid.New()

	m.commentRepo.EXPECT().
		GetByID(gomock.Any(), commentID).
		Return(&models.Comment{ID: commentID}, nil)
	m.commentRepo.EXPECT().
		ToggleLike(gomock.Any(), commentID, userID).
		Return(&models.LikeResult{Likes: 1, IsLiked: true}, nil)

	result, err := uc.ToggleCommentLike(context.Background(), commentID.String(), userID)
	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsLiked)
	assert.Equal(t, 1, result.Likes)
}

func TestToggleCommentLike_MissingComment(t *testing.T) {
	uc, m, ctrl := setupBoardUC(t)
	defer ctrl.Finish()

	commentID := uuid.New()
	m.commentRepo.EXPECT().
		GetByID(gomock.Any(), commentID).
		Return(nil, apperrors.New(apperrors.KindNotFound, "Comment not found"))

	result, err := uc.ToggleCommentLike(context.Background(), commentID.String(), uuid.New())
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
