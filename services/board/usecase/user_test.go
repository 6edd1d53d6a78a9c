package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelboard/reelboard/internal/pkg/apperrors"
	"github.com/reelboard/reelboard/internal/pkg/models"
)

func TestGetUserByID(t *testing.T) {
	uc, m, ctrl := setupBoardUC(t)
	defer ctrl.Finish()

	userID := uuid.New()
	m.userRepo.EXPECT().
		GetByID(gomock.Any(), userID).
		Return(&models.User{
			ID:           userID,
			Username:     "johndoe",
			PasswordHash: "$2a$10$hash",
		}, nil)

	user, err := uc.GetUserByID(context.Background(), userID.String())
	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "johndoe", user.Username)
	assert.Empty(t, user.PasswordHash)
}

func TestGetUserByID_InvalidID(t *testing.T) {
	uc, _, ctrl := setupBoardUC(t)
	defer ctrl.Finish()

	user, err := uc.GetUserByID(context.Background(), "not-a-uuid")
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Equal(t, apperrors.KindInvalid, apperrors.KindOf(err))
}

func TestListUsers_Sanitized(t *testing.T) {
	uc, m, ctrl := setupBoardUC(t)
	defer ctrl.Finish()

	m.userRepo.EXPECT().
		List(gomock.Any()).
		Return([]*models.User{
			{ID: uuid.New(), Username: "johndoe", PasswordHash: "$2a$10$hash"},
			{ID: uuid.New(), Username: "janedoe", PasswordHash: "$2a$10$hash"},
		}, nil)

	users, err := uc.ListUsers(context.Background())
	assert.NoError(t, err)
	require.Len(t, users, 2)
	for _, user := range users {
		assert.Empty(t, user.PasswordHash)
	}
}

func TestUpdateUserRole(t *testing.T) {
	uc, m, ctrl := setupBoardUC(t)
	defer ctrl.Finish()

	userID := uuid.New()
	m.userRepo.EXPECT().
		UpdateRole(gomock.Any(), userID, models.RoleAdmin).
		Return(&models.User{ID: userID, Role: models.RoleAdmin}, nil)

	user, err := uc.UpdateUserRole(context.Background(), userID.String(), models.RoleAdmin)
	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestUpdateUserRole_InvalidRole(t *testing.T) {
	uc, _, ctrl := setupBoardUC(t)
	defer ctrl.Finish()

	user, err := uc.UpdateUserRole(context.Background(), uuid.New().String(), "superadmin")
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Equal(t, apperrors.KindInvalid, apperrors.KindOf(err))
	assert.Equal(t, "role", apperrors.FieldOf(err))
}

func TestEnsureDefaultAdmin_CreatesWhenMissing(t *testing.T) {
	uc, m, ctrl := setupBoardUC(t)
	defer ctrl.Finish()

	m.userRepo.EXPECT().
		EmailExists(gomock.Any(), "admin@gmail.com").
		Return(false, nil)
	m.userRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			assert.Equal(t, "admin@gmail.com", user.Email)
			assert.Equal(t, models.RoleAdmin, user.Role)
			assert.NotEmpty(t, user.PasswordHash)
			return nil
		})

	assert.NoError(t, uc.EnsureDefaultAdmin(context.Background()))
}

func TestEnsureDefaultAdmin_SkipsWhenPresent(t *testing.T) {
	uc, m, ctrl := setupBoardUC(t)
	defer ctrl.Finish()

	m.userRepo.EXPECT().
		EmailExists(gomock.Any(), "admin@gmail.com").
		Return(true, nil)

	assert.NoError(t, uc.EnsureDefaultAdmin(context.Background()))
}

func TestEnsureDefaultAdmin_ConcurrentSeedIsNotAnError(t *testing.T) {
	uc, m, ctrl := setupBoardUC(t)
	defer ctrl.Finish()

	m.userRepo.EXPECT().
		EmailExists(gomock.Any(), "admin@gmail.com").
		Return(false, nil)
	m.userRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(apperrors.NewField(apperrors.KindConflict, "email", "email already exists"))

	assert.NoError(t, uc.EnsureDefaultAdmin(context.Background()))
}
