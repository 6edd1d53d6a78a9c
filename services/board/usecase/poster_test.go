package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelboard/reelboard/internal/pkg/apperrors"
	"github.com/reelboard/reelboard/internal/pkg/models"
)

func TestListApproved_Pagination(t *testing.T) {
	testCases := []struct {
		name     string
		filter   models.PosterFilter
		total    int
		wantPage models.Pagination
	}{
		{
			name:   "Defaults Applied",
			filter: models.PosterFilter{},
			total:  30,
			wantPage: models.Pagination{
				CurrentPage: 1, TotalPages: 3, Total: 30, HasNext: true, HasPrev: false,
			},
		},
		{
			name:   "Middle Page",
			filter: models.PosterFilter{Page: 2, Limit: 10},
			total:  30,
			wantPage: models.Pagination{
				CurrentPage: 2, TotalPages: 3, Total: 30, HasNext: true, HasPrev: true,
			},
		},
		{
			name:   "Last Page",
			filter: models.PosterFilter{Page: 3, Limit: 10},
			total:  25,
			wantPage: models.Pagination{
				CurrentPage: 3, TotalPages: 3, Total: 25, HasNext: false, HasPrev: true,
			},
		},
		{
			name:   "Empty Listing",
			filter: models.PosterFilter{Page: 1, Limit: 10},
			total:  0,
			wantPage: models.Pagination{
				CurrentPage: 1, TotalPages: 0, Total: 0, HasNext: false, HasPrev: false,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m, ctrl := setupBoardUC(t)
			defer ctrl.Finish()

			m.posterRepo.EXPECT().
				ListApproved(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, filter models.PosterFilter) ([]*models.Poster, int, error) {
					assert.GreaterOrEqual(t, filter.Page, 1)
					assert.GreaterOrEqual(t, filter.Limit, 1)
					return []*models.Poster{}, tc.total, nil
				})

			page, err := uc.ListApproved(context.Background(), tc.filter)
			assert.NoError(t, err)
			require.NotNil(t, page)
			assert.Equal(t, tc.wantPage, page.Pagination)
		})
	}
}

func TestListApproved_InvalidCategory(t *testing.T) {
	uc, _, ctrl := setupBoardUC(t)
	defer ctrl.Finish()

	page, err := uc.ListApproved(context.Background(), models.PosterFilter{Category: "Musical"})
	assert.Error(t, err)
	assert.Nil(t, page)
	assert.Equal(t, apperrors.KindInvalid, apperrors.KindOf(err))
}

func TestGetPoster_Visibility(t *testing.T) {
	posterID := uuid.New()
	authorID := uuid.New()
	pending := func() *models.Poster {
		return &models.Poster{ID: posterID, AuthorID: authorID, IsApproved: false}
	}

	testCases := []struct {
		name         string
		viewerID     string
		viewerRole   string
		listComments bool
		wantKind     apperrors.Kind
	}{
		{
			name:         "Author Sees Own Pending Poster",
			viewerID:     authorID.String(),
			viewerRole:   models.RoleUser,
			listComments: true,
		},
		{
			name:         "Admin Sees Pending Poster",
			viewerID:     uuid.New().String(),
			viewerRole:   models.RoleAdmin,
			listComments: true,
		},
		{
			name:       "Stranger Gets NotFound Not Forbidden",
			viewerID:   uuid.New().String(),
			viewerRole: models.RoleUser,
			wantKind:   apperrors.KindNotFound,
		},
		{
			name:       "Anonymous Gets NotFound",
			viewerID:   "",
			viewerRole: "",
			wantKind:   apperrors.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m, ctrl := setupBoardUC(t)
			defer ctrl.Finish()

			m.posterRepo.EXPECT().
				GetByID(gomock.Any(), posterID).
				Return(pending(), nil)
			if tc.listComments {
				m.commentRepo.EXPECT().
					ListByPoster(gomock.Any(), posterID).
					Return([]*models.Comment{}, nil)
			}

			poster, err := uc.GetPoster(context.Background(), posterID.String(), tc.viewerID, tc.viewerRole)
			if tc.wantKind == "" {
				assert.NoError(t, err)
				assert.NotNil(t, poster)
			} else {
				assert.Error(t, err)
				assert.Nil(t, poster)
				assert.Equal(t, tc.wantKind, apperrors.KindOf(err))
			}
		})
	}
}

func TestGetPoster_ApprovedIncludesComments(t *testing.T) {
	uc, m, ctrl := setupBoardUC(t)
	defer ctrl.Finish()

	posterID := uuid.New()
	m.posterRepo.EXPECT().
		GetByID(gomock.Any(), posterID).
		Return(&models.Poster{ID: posterID, AuthorID: uuid.New(), IsApproved: true}, nil)
	m.commentRepo.EXPECT().
		ListByPoster(gomock.Any(), posterID).
		Return([]*models.Comment{{ID: uuid.New(), Content: "Nice"}}, nil)

	poster, err := uc.GetPoster(context.Background(), posterID.String(), "", "")
	assert.NoError(t, err)
	require.NotNil(t, poster)
	assert.Len(t, poster.Comments, 1)
}

func TestCreatePoster(t *testing.T) {
	uc, m, ctrl := setupBoardUC(t)
	defer ctrl.Finish()

	authorID := uuid.New()
	m.posterRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, poster *models.Poster) error {
			assert.Equal(t, authorID, poster.AuthorID)
			assert.False(t, poster.IsApproved)
			return nil
		})

	poster, err := uc.CreatePoster(context.Background(), authorID, &models.CreatePosterRequest{
		Title:       "Great poster",
		MovieName:   "Inception",
		Category:    "Sci-Fi",
		PosterImage: "https://img/p.jpg",
		Review:      "A mind-bending classic",
		Rating:      5,
	})
	assert.NoError(t, err)
	assert.NotNil(t, poster)
}

func TestCreatePoster_Validation(t *testing.T) {
	valid := func() *models.CreatePosterRequest {
		return &models.CreatePosterRequest{
			Title:       "Great poster",
			MovieName:   "Inception",
			Category:    "Sci-Fi",
			PosterImage: "https://img/p.jpg",
			Review:      "A mind-bending classic",
			Rating:      5,
		}
	}

	testCases := []struct {
		name      string
		mutate    func(req *models.CreatePosterRequest)
		wantField string
	}{
		{name: "Missing Title", mutate: func(r *models.CreatePosterRequest) { r.Title = " " }, wantField: "title"},
		{name: "Missing Movie Name", mutate: func(r *models.CreatePosterRequest) { r.MovieName = "" }, wantField: "movie_name"},
		{name: "Bad Category", mutate: func(r *models.CreatePosterRequest) { r.Category = "Musical" }, wantField: "category"},
		{name: "Missing Image", mutate: func(r *models.CreatePosterRequest) { r.PosterImage = "" }, wantField: "poster_image"},
		{name: "Missing Review", mutate: func(r *models.CreatePosterRequest) { r.Review = "" }, wantField: "review"},
		{name: "Title Too Long", mutate: func(r *models.CreatePosterRequest) { r.Title = strings.Repeat("a", 101) }, wantField: "title"},
		{name: "Review Too Short", mutate: func(r *models.CreatePosterRequest) { r.Review = "Nice one" }, wantField: "review"},
		{name: "Review Too Long", mutate: func(r *models.CreatePosterRequest) { r.Review = strings.Repeat("a", 1001) }, wantField: "review"},
		{name: "Rating Too Low", mutate: func(r *models.CreatePosterRequest) { r.Rating = 0 }, wantField: "rating"},
		{name: "Rating Too High", mutate: func(r *models.CreatePosterRequest) { r.Rating = 6 }, wantField: "rating"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _, ctrl := setupBoardUC(t)
			defer ctrl.Finish()

			req := valid()
			tc.mutate(req)

			poster, err := uc.CreatePoster(context.Background(), uuid.New(), req)
			assert.Error(t, err)
			assert.Nil(t, poster)
			assert.Equal(t, apperrors.KindInvalid, apperrors.KindOf(err))
			assert.Equal(t, tc.wantField, apperrors.FieldOf(err))
		})
	}
}

func TestApprovePoster_PublishesEvent(t *testing.T) {
	uc, m, ctrl := setupBoardUC(t)
	defer ctrl.Finish()

	posterID := uuid.New()
	authorID := uuid.New()
	adminID := uuid.New()

	m.posterRepo.EXPECT().
		Approve(gomock.Any(), posterID, adminID).
		Return(&models.Poster{ID: posterID, AuthorID: authorID, IsApproved: true}, nil)
	m.boardGW.EXPECT().
		PublishPosterModerated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.PosterModeratedEvent) error {
			assert.Equal(t, posterID.String(), event.PosterID)
			assert.Equal(t, adminID.String(), event.AdminID)
			assert.True(t, event.Approved)
			return nil
		})

	poster, err := uc.ApprovePoster(context.Background(), posterID.String(), adminID)
	assert.NoError(t, err)
	assert.NotNil(t, poster)
}

func TestApprovePoster_PublishFailureDoesNotFail(t *testing.T) {
	uc, m, ctrl := setupBoardUC(t)
	defer ctrl.Finish()

	posterID := uuid.New()
	m.posterRepo.EXPECT().
		Approve(gomock.Any(), posterID, gomock.Any()).
		Return(&models.Poster{ID: posterID, AuthorID: uuid.New(), IsApproved: true}, nil)
	m.boardGW.EXPECT().
		PublishPosterModerated(gomock.Any(), gomock.Any()).
		Return(errors.New("broker down"))

	poster, err := uc.ApprovePoster(context.Background(), posterID.String(), uuid.New())
	assert.NoError(t, err)
	assert.NotNil(t, poster)
}

func TestRejectPoster(t *testing.T) {
	uc, m, ctrl := setupBoardUC(t)
	defer ctrl.Finish()

	posterID := uuid.New()
	authorID := uuid.New()
	adminID := uuid.New()

	m.posterRepo.EXPECT().
		GetByID(gomock.Any(), posterID).
		Return(&models.Poster{ID: posterID, AuthorID: authorID, IsApproved: false}, nil)
	m.posterRepo.EXPECT().Delete(gomock.Any(), posterID).Return(nil)
	m.boardGW.EXPECT().
		PublishPosterModerated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.PosterModeratedEvent) error {
			assert.False(t, event.Approved)
			return nil
		})

	assert.NoError(t, uc.RejectPoster(context.Background(), posterID.String(), adminID))
}

func TestRejectPoster_AlreadyApproved(t *testing.T) {
	uc, m, ctrl := setupBoardUC(t)
	defer ctrl.Finish()

	posterID := uuid.New()
	m.posterRepo.EXPECT().
		GetByID(gomock.Any(), posterID).
		Return(&models.Poster{ID: posterID, IsApproved: true}, nil)

	err := uc.RejectPoster(context.Background(), posterID.String(), uuid.New())
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindInvalid, apperrors.KindOf(err))
}

func TestDeletePoster_Ownership(t *testing.T) {
	posterID := uuid.New()
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

			m.posterRepo.EXPECT().
				GetByID(gomock.Any(), posterID).
				Return(&models.Poster{ID: posterID, AuthorID: authorID}, nil)
			if tc.deletes {
				m.posterRepo.EXPECT().Delete(gomock.Any(), posterID).Return(nil)
			}

			err := uc.DeletePoster(context.Background(), posterID.String(), tc.requesterID, tc.role)
			if tc.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Equal(t, tc.wantKind, apperrors.KindOf(err))
			}
		})
	}
}
