package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/reelboard/reelboard/internal/pkg/models"
)

// UserRepo implements the credential store over Postgres.
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepo creates a new user repository instance
func NewUserRepo(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}

// PosterRepo implements poster persistence over Postgres.
type PosterRepo struct {
	db *sqlx.DB
}

// NewPosterRepo creates a new poster repository instance
func NewPosterRepo(db *sqlx.DB) *PosterRepo {
	return &PosterRepo{db: db}
}

// CommentRepo implements comment persistence over Postgres.
type CommentRepo struct {
	db *sqlx.DB
}

// NewCommentRepo creates a new comment repository instance
func NewCommentRepo(db *sqlx.DB) *CommentRepo {
	return &CommentRepo{db: db}
}
