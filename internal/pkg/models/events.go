package models

import (
	"time"
)

// NSQ topics for board lifecycle events
const (
	TopicUserRegistered = "board.user.registered"
	TopicPosterApproved = "board.poster.approved"
	TopicPosterRejected = "board.poster.rejected"
)

// UserRegisteredEvent is published after a successful registration
type UserRegisteredEvent struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Timestamp time.Time `json:"timestamp"`
}

// PosterModeratedEvent is published when an admin approves or rejects a poster
type PosterModeratedEvent struct {
	PosterID  string    `json:"poster_id"`
	AuthorID  string    `json:"author_id"`
	AdminID   string    `json:"admin_id"`
	Approved  bool      `json:"approved"`
	Timestamp time.Time `json:"timestamp"`
}
