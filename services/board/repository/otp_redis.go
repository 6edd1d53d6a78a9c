package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/reelboard/reelboard/internal/pkg/database"
	"github.com/reelboard/reelboard/internal/pkg/models"
)

const otpKeyPrefix = "auth:otp:"

// RedisOTPStore keeps OTP records in Redis so pending resets survive process
// restarts and are shared across instances. Keys carry a TTL matching the
// record expiry; an expired-but-present record is still handled by the caller
// since the TTL and the record expiry are applied independently.
type RedisOTPStore struct {
	client *database.RedisClient
}

// NewRedisOTPStore creates a Redis-backed OTP store
func NewRedisOTPStore(client *database.RedisClient) *RedisOTPStore {
	return &RedisOTPStore{client: client}
}

func otpKey(email string) string {
	return otpKeyPrefix + strings.ToLower(email)
}

// Put stores the record under its email key with a TTL ending at ExpiresAt.
func (s *RedisOTPStore) Put(ctx context.Context, otp *models.OTP) error {
	data, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP record: %w", err)
	}

	ttl := time.Until(otp.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Second
	}

	if err := s.client.Set(ctx, otpKey(otp.Email), data, ttl); err != nil {
		return fmt.Errorf("failed to store OTP record: %w", err)
	}
	return nil
}

// Get returns the record for the email, or nil if absent.
func (s *RedisOTPStore) Get(ctx context.Context, email string) (*models.OTP, error) {
	data, err := s.client.Get(ctx, otpKey(email))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get OTP record: %w", err)
	}

	var otp models.OTP
	if err := json.Unmarshal([]byte(data), &otp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP record: %w", err)
	}
	return &otp, nil
}

// Delete removes the record for the email. Deleting an absent key is a no-op.
func (s *RedisOTPStore) Delete(ctx context.Context, email string) error {
	if err := s.client.Delete(ctx, otpKey(email)); err != nil {
		return fmt.Errorf("failed to delete OTP record: %w", err)
	}
	return nil
}
