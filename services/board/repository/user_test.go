package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelboard/reelboard/internal/pkg/apperrors"
	"github.com/reelboard/reelboard/internal/pkg/models"
)

func setupUserRepoTest(t *testing.T) (*UserRepo, sqlmock.Sqlmock, func()) {
	// Create SQL mock
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	// Create sqlx DB with mock
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &UserRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func userRows(id uuid.UUID, username, email string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "username", "full_name", "email", "password_hash", "role",
		"profile_photo", "created_at", "updated_at",
	}).AddRow(id, username, "John Doe", email, "$2a$10$hash", "user",
		nil, time.Now(), time.Now())
}

func TestGetByUsername(t *testing.T) {
	testCases := []struct {
		name       string
		username   string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, user *models.User, err error)
	}{
		{
			name:     "Success",
			username: "johndoe",
			mockSetup: func(mock sqlmock.Sqlmock) {
				userID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
				mock.ExpectQuery("^SELECT (.+) FROM users WHERE username").
					WithArgs("johndoe").
					WillReturnRows(userRows(userID, "johndoe", "john@example.com"))
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, "johndoe", user.Username)
				assert.Equal(t, "john@example.com", user.Email)
				assert.Equal(t, models.RoleUser, user.Role)
			},
		},
		{
			name:     "User Not Found",
			username: "ghost",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM users WHERE username").
					WithArgs("ghost").
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.Error(t, err)
				assert.Nil(t, user)
				assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
			},
		},
		{
			name:     "Database Error",
			username: "johndoe",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM users WHERE username").
					WithArgs("johndoe").
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.Error(t, err)
				assert.Nil(t, user)
				assert.Contains(t, err.Error(), "failed to get user")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			user, err := repo.GetByUsername(context.Background(), tc.username)
			tc.assertFunc(t, user, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetByEmail_LowercasesInput(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	mock.ExpectQuery("^SELECT (.+) FROM users WHERE email").
		WithArgs("john@example.com").
		WillReturnRows(userRows(userID, "johndoe", "john@example.com"))

	user, err := repo.GetByEmail(context.Background(), "John@Example.COM")
	assert.NoError(t, err)
	assert.Equal(t, "john@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^INSERT INTO users").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Duplicate Username",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^INSERT INTO users").
					WillReturnError(&pgconn.PgError{
						Code:           "23505",
						ConstraintName: "users_username_key",
					})
			},
			assertFunc: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
				assert.Equal(t, "username", apperrors.FieldOf(err))
			},
		},
		{
			name: "Duplicate Email",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^INSERT INTO users").
					WillReturnError(&pgconn.PgError{
						Code:           "23505",
						ConstraintName: "users_email_key",
					})
			},
			assertFunc: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
				assert.Equal(t, "email", apperrors.FieldOf(err))
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^INSERT INTO users").
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to insert user")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			user := &models.User{
				Username:     "johndoe",
				FullName:     "John Doe",
				Email:        "John@Example.com",
				PasswordHash: "$2a$10$hash",
				Role:         models.RoleUser,
			}
			err := repo.Create(context.Background(), user)
			tc.assertFunc(t, err)

			if err == nil {
				assert.NotEqual(t, uuid.Nil, user.ID)
				assert.Equal(t, "john@example.com", user.Email)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateRole(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	mock.ExpectExec("^UPDATE users SET role").
		WithArgs(models.RoleAdmin, sqlmock.AnyArg(), userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	rows := userRows(userID, "johndoe", "john@example.com")
	mock.ExpectQuery("^SELECT (.+) FROM users WHERE id").
		WithArgs(userID.String()).
		WillReturnRows(rows)

	user, err := repo.UpdateRole(context.Background(), userID, models.RoleAdmin)
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRole_NotFound(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	mock.ExpectExec("^UPDATE users SET role").
		WithArgs(models.RoleAdmin, sqlmock.AnyArg(), userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	user, err := repo.UpdateRole(context.Background(), userID, models.RoleAdmin)
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestUpdatePasswordHash(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^UPDATE users SET password_hash").
		WithArgs("$2a$10$newhash", sqlmock.AnyArg(), "john@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdatePasswordHash(context.Background(), "John@Example.com", "$2a$10$newhash")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsernameExists(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT EXISTS").
		WithArgs("johndoe").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.UsernameExists(context.Background(), "johndoe")
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestListUsers(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	rows := userRows(uuid.New(), "johndoe", "john@example.com")
	rows.AddRow(uuid.New(), "janedoe", "Jane Doe", "jane@example.com",
		"$2a$10$hash", "admin", nil, time.Now(), time.Now())
	mock.ExpectQuery("^SELECT (.+) FROM users ORDER BY created_at DESC").
		WillReturnRows(rows)

	users, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, users, 2)
}
