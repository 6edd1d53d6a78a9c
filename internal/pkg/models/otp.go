package models

import (
	"time"
)

// OTP represents a one-time password gating a password reset.
// Keyed by lowercase email; at most one live record per email.
type OTP struct {
	Email      string    `json:"email"`
	Code       string    `json:"code"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	IsVerified bool      `json:"is_verified"`
}

// Expired reports whether the record is past its expiry at the given instant.
func (o *OTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// OTPRequest represents a request to send a reset OTP
type OTPRequest struct {
	Email string `json:"email"`
}

// OTPVerifyRequest represents a request to verify a reset OTP
type OTPVerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// ResetPasswordRequest represents the final password reset payload
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"new_password"`
}
