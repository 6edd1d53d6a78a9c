package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment represents a comment on an approved poster.
type Comment struct {
	ID        uuid.UUID `json:"id" db:"id"`
	PosterID  uuid.UUID `json:"poster_id" db:"poster_id"`
	AuthorID  uuid.UUID `json:"author_id" db:"author_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	Author *Author `json:"author,omitempty" db:"author"`
	Likes  int     `json:"likes" db:"likes"`
}

// CreateCommentRequest represents a comment submission payload
type CreateCommentRequest struct {
	PosterID string `json:"poster_id"`
	Content  string `json:"content"`
}

// UpdateCommentRequest represents a comment edit payload
type UpdateCommentRequest struct {
	Content string `json:"content"`
}

// LikeResult is returned by the comment like toggle.
type LikeResult struct {
	Likes   int  `json:"likes"`
	IsLiked bool `json:"is_liked"`
}
