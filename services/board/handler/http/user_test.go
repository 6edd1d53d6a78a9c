package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/reelboard/reelboard/internal/pkg/apperrors"
	"github.com/reelboard/reelboard/internal/pkg/models"
	"github.com/reelboard/reelboard/services/board/mocks"
)

func TestMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	handler := NewUserHandler(mockUserUC)

	userID := uuid.New()
	mockUserUC.EXPECT().
		GetUserByID(gomock.Any(), userID.String()).
		Return(&models.User{ID: userID, Username: "johndoe"}, nil)

	rec, c := authedContext(http.MethodGet, "/users/me", "", userID, models.RoleUser)

	assert.NoError(t, handler.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "johndoe", data["username"])
}

func TestGetUserHandler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	handler := NewUserHandler(mockUserUC)

	targetID := uuid.New()
	mockUserUC.EXPECT().
		GetUserByID(gomock.Any(), targetID.String()).
		Return(nil, apperrors.New(apperrors.KindNotFound, "User not found"))

	rec, c := authedContext(http.MethodGet, "/users/"+targetID.String(), "",
		uuid.New(), models.RoleUser)
	c.SetParamNames("id")
	c.SetParamValues(targetID.String())

	assert.NoError(t, handler.GetUser(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateRoleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	handler := NewUserHandler(mockUserUC)

	targetID := uuid.New()
	mockUserUC.EXPECT().
		UpdateUserRole(gomock.Any(), targetID.String(), models.RoleAdmin).
		Return(&models.User{ID: targetID, Role: models.RoleAdmin}, nil)

	rec, c := authedContext(http.MethodPut, "/admin/users/"+targetID.String()+"/role",
		`{"role":"admin"}`, uuid.New(), models.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues(targetID.String())

	assert.NoError(t, handler.UpdateRole(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, models.RoleAdmin, data["role"])
}

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	handler := NewUserHandler(mockUserUC)

	mockUserUC.EXPECT().
		ListUsers(gomock.Any()).
		Return([]*models.User{
			{ID: uuid.New(), Username: "johndoe"},
			{ID: uuid.New(), Username: "janedoe"},
		}, nil)

	rec, c := authedContext(http.MethodGet, "/admin/users", "", uuid.New(), models.RoleAdmin)

	assert.NoError(t, handler.ListUsers(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
