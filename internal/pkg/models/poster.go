package models

import (
	"time"

	"github.com/google/uuid"
)

// PosterCategories is the fixed set of accepted poster categories.
var PosterCategories = []string{
	"Action", "Comedy", "Drama", "Horror", "Sci-Fi",
	"Romance", "Thriller", "Documentary", "Animation", "Other",
}

// ValidCategory reports whether category is one of PosterCategories.
func ValidCategory(category string) bool {
	for _, c := range PosterCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Poster represents a submitted poster review. Unapproved posters are
// visible only to their author and admins.
type Poster struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	MovieName   string     `json:"movie_name" db:"movie_name"`
	Category    string     `json:"category" db:"category"`
	PosterImage string     `json:"poster_image" db:"poster_image"`
	Review      string     `json:"review" db:"review"`
	Rating      int        `json:"rating" db:"rating"`
	AuthorID    uuid.UUID  `json:"author_id" db:"author_id"`
	IsApproved  bool       `json:"is_approved" db:"is_approved"`
	ApprovedBy  *uuid.UUID `json:"approved_by,omitempty" db:"approved_by"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty" db:"approved_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`

	Author   *Author    `json:"author,omitempty" db:"author"`
	Comments []*Comment `json:"comments,omitempty" db:"-"`
}

// Author is the client-facing author projection embedded in posters
// and comments.
type Author struct {
	Username     string  `json:"username" db:"username"`
	FullName     string  `json:"full_name" db:"full_name"`
	ProfilePhoto *string `json:"profile_photo,omitempty" db:"profile_photo"`
}

// CreatePosterRequest represents a poster submission payload
type CreatePosterRequest struct {
	Title       string `json:"title"`
	MovieName   string `json:"movie_name"`
	Category    string `json:"category"`
	PosterImage string `json:"poster_image"`
	Review      string `json:"review"`
	Rating      int    `json:"rating"`
}

// PosterFilter narrows poster listings
type PosterFilter struct {
	Category string
	Page     int
	Limit    int
}

// Pagination describes a page of a listing
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	Total       int  `json:"total"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}

// PosterPage is a paginated poster listing
type PosterPage struct {
	Posters    []*Poster  `json:"posters"`
	Pagination Pagination `json:"pagination"`
}
