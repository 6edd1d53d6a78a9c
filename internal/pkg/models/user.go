package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an identity record. PasswordHash is never serialized
// to clients; handlers return the Sanitize() form.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	FullName     string    `json:"full_name" db:"full_name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	ProfilePhoto *string   `json:"profile_photo,omitempty" db:"profile_photo"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Sanitize returns a copy safe to send to clients.
func (u *User) Sanitize() *User {
	clone := *u
	clone.PasswordHash = ""
	return &clone
}

// ValidRole reports whether role is one of the known authorization tiers.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// RegisterRequest represents a registration payload
type RegisterRequest struct {
	Username     string  `json:"username"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	ProfilePhoto *string `json:"profile_photo,omitempty"`
}

// LoginRequest represents a login payload; username or email plus password
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateRoleRequest represents an admin role change payload
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	User      *User  `json:"user"`
}
