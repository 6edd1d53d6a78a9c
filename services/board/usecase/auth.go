package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/reelboard/reelboard/internal/pkg/apperrors"
	jwtpkg "github.com/reelboard/reelboard/internal/pkg/jwt"
	"github.com/reelboard/reelboard/internal/pkg/logger"
	"github.com/reelboard/reelboard/internal/pkg/models"
	"github.com/reelboard/reelboard/internal/utils"
)

// otpTTL is how long a generated OTP stays valid.
const otpTTL = 5 * time.Minute

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,32}$`)
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func validateRegistration(req *models.RegisterRequest) error {
	if !usernameRegex.MatchString(req.Username) {
		return apperrors.NewField(apperrors.KindInvalid, "username",
			"Username must be 3-32 characters of letters, digits, dots, underscores or hyphens")
	}
	if l := len(strings.TrimSpace(req.FullName)); l < 3 || l > 80 {
		return apperrors.NewField(apperrors.KindInvalid, "full_name",
			"Full name must be between 3 and 80 characters")
	}
	if !emailRegex.MatchString(req.Email) {
		return apperrors.NewField(apperrors.KindInvalid, "email", "Invalid email address")
	}
	if len(req.Password) < 6 {
		return apperrors.NewField(apperrors.KindInvalid, "password",
			"Password must be at least 6 characters")
	}
	return nil
}

// Register creates a new user account with the default role. Uniqueness of
// username and email is enforced by the credential store on insert.
func (u *BoardUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		FullName:     strings.TrimSpace(req.FullName),
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleUser,
	}
	if req.ProfilePhoto != nil && *req.ProfilePhoto != "" {
		user.ProfilePhoto = req.ProfilePhoto
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Registration events are best effort, a broker outage must not fail signup
	event := &models.UserRegisteredEvent{
		UserID:    user.ID.String(),
		Username:  user.Username,
		Timestamp: time.Now(),
	}
	if err := u.boardGW.PublishUserRegistered(ctx, event); err != nil {
		logger.Warn("Failed to publish user registered event",
			logger.String("user_id", user.ID.String()),
			logger.Err(err))
	}

	return user.Sanitize(), nil
}

// Login authenticates by username or email and issues a JWT carrying the
// user's id and role at issuance time.
func (u *BoardUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	identifier := req.Username
	byEmail := false
	if identifier == "" {
		identifier = req.Email
		byEmail = true
	}
	if identifier == "" || req.Password == "" {
		return nil, apperrors.New(apperrors.KindInvalid, "Username or email and password are required")
	}

	var (
		user *models.User
		err  error
	)
	if byEmail || strings.Contains(identifier, "@") {
		user, err = u.userRepo.GetByEmail(ctx, identifier)
	} else {
		user, err = u.userRepo.GetByUsername(ctx, identifier)
	}
	if err != nil {
		// Hide whether the account exists
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return nil, apperrors.New(apperrors.KindUnauthenticated, "Invalid credentials")
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.New(apperrors.KindUnauthenticated, "Invalid credentials")
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Role, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user.Sanitize(),
	}, nil
}

// UsernameAvailable reports whether the username is free to register.
func (u *BoardUC) UsernameAvailable(ctx context.Context, username string) (bool, error) {
	exists, err := u.userRepo.UsernameExists(ctx, username)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// EmailAvailable reports whether the email is free to register.
func (u *BoardUC) EmailAvailable(ctx context.Context, email string) (bool, error) {
	exists, err := u.userRepo.EmailExists(ctx, email)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// generateOTPCode draws a uniform random 6-digit code.
func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// RequestOTP issues a fresh OTP for the account's email, replacing any
// pending one, and delivers it out of band. The record is stored before
// delivery is attempted; a delivery failure leaves the record in place and
// surfaces to the caller.
func (u *BoardUC) RequestOTP(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	code, err := generateOTPCode()
	if err != nil {
		return err
	}

	now := time.Now()
	otp := &models.OTP{
		Email:     user.Email,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(otpTTL),
	}
	if err := u.otpStore.Put(ctx, otp); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	if err := u.mailer.SendOTP(ctx, user.Email, code, otp.ExpiresAt); err != nil {
		logger.Error("Failed to deliver OTP email",
			logger.String("email", user.Email),
			logger.Err(err))
		return apperrors.Wrap(apperrors.KindUnavailable, "Failed to send OTP email", err)
	}

	return nil
}

// VerifyOTP checks the submitted code against the pending record. A correct
// code marks the record verified without consuming it; an expired record is
// removed.
func (u *BoardUC) VerifyOTP(ctx context.Context, email, code string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	otp, err := u.otpStore.Get(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to get OTP: %w", err)
	}
	if otp == nil {
		return apperrors.New(apperrors.KindNotFound, "OTP not found")
	}
	if otp.Expired(time.Now()) {
		if err := u.otpStore.Delete(ctx, email); err != nil {
			logger.Warn("Failed to delete expired OTP", logger.String("email", email), logger.Err(err))
		}
		return apperrors.New(apperrors.KindExpired, "OTP has expired")
	}
	if otp.Code != code {
		return apperrors.New(apperrors.KindInvalid, "Invalid OTP")
	}

	otp.IsVerified = true
	if err := u.otpStore.Put(ctx, otp); err != nil {
		return fmt.Errorf("failed to mark OTP verified: %w", err)
	}
	return nil
}

// ResetPassword replaces the account password once the pending OTP has been
// verified. The OTP record is removed whether or not the persist succeeds,
// so a reset attempt always consumes the verification.
func (u *BoardUC) ResetPassword(ctx context.Context, email, newPassword string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	otp, err := u.otpStore.Get(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to get OTP: %w", err)
	}
	if otp == nil || !otp.IsVerified {
		return apperrors.New(apperrors.KindNotVerified, "OTP not verified")
	}

	defer func() {
		if err := u.otpStore.Delete(ctx, email); err != nil {
			logger.Warn("Failed to delete OTP record", logger.String("email", email), logger.Err(err))
		}
	}()

	if len(newPassword) < 6 {
		return apperrors.NewField(apperrors.KindInvalid, "new_password",
			"Password must be at least 6 characters")
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := u.userRepo.UpdatePasswordHash(ctx, email, hash); err != nil {
		return err
	}
	return nil
}
