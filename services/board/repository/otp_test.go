package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelboard/reelboard/internal/pkg/database"
	"github.com/reelboard/reelboard/internal/pkg/models"
)

func testOTP(email string) *models.OTP {
	now := time.Now()
	return &models.OTP{
		Email:     email,
		Code:      "123456",
		CreatedAt: now,
		ExpiresAt: now.Add(5 * time.Minute),
	}
}

func TestMemoryOTPStore_PutGetDelete(t *testing.T) {
	store := NewMemoryOTPStore()
	ctx := context.Background()

	// Absent key reads as nil, not an error
	got, err := store.Get(ctx, "john@example.com")
	assert.NoError(t, err)
	assert.Nil(t, got)

	otp := testOTP("john@example.com")
	require.NoError(t, store.Put(ctx, otp))

	got, err = store.Get(ctx, "john@example.com")
	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "123456", got.Code)
	assert.False(t, got.IsVerified)

	require.NoError(t, store.Delete(ctx, "john@example.com"))
	got, err = store.Get(ctx, "john@example.com")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryOTPStore_PutOverwrites(t *testing.T) {
	store := NewMemoryOTPStore()
	ctx := context.Background()

	first := testOTP("john@example.com")
	first.Code = "111111"
	require.NoError(t, store.Put(ctx, first))

	second := testOTP("john@example.com")
	second.Code = "222222"
	require.NoError(t, store.Put(ctx, second))

	got, err := store.Get(ctx, "john@example.com")
	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "222222", got.Code)
}

func TestMemoryOTPStore_EmailCaseInsensitive(t *testing.T) {
	store := NewMemoryOTPStore()
	ctx := context.Background()

	otp := testOTP("John@Example.COM")
	require.NoError(t, store.Put(ctx, otp))

	got, err := store.Get(ctx, "john@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, got)
}

func TestMemoryOTPStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryOTPStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, testOTP("john@example.com")))

	got, err := store.Get(ctx, "john@example.com")
	require.NoError(t, err)
	got.IsVerified = true

	// Mutating the returned record must not touch the stored one
	again, err := store.Get(ctx, "john@example.com")
	require.NoError(t, err)
	assert.False(t, again.IsVerified)
}

func TestMemoryOTPStore_DeleteAbsentIsNoop(t *testing.T) {
	store := NewMemoryOTPStore()
	assert.NoError(t, store.Delete(context.Background(), "ghost@example.com"))
}

// setupMiniredis creates a miniredis server and a Redis-backed OTP store
// connected to it.
func setupRedisOTPStore(t *testing.T) (*RedisOTPStore, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	store := NewRedisOTPStore(&database.RedisClient{Client: client})
	return store, mr
}

func TestRedisOTPStore_Put(t *testing.T) {
	store, mr := setupRedisOTPStore(t)
	defer mr.Close()

	otp := testOTP("john@example.com")
	err := store.Put(context.Background(), otp)
	assert.NoError(t, err)

	// Verify data was stored under the expected key
	val, err := mr.Get("auth:otp:john@example.com")
	assert.NoError(t, err)

	var stored models.OTP
	require.NoError(t, json.Unmarshal([]byte(val), &stored))
	assert.Equal(t, otp.Code, stored.Code)
	assert.Equal(t, otp.Email, stored.Email)

	// Verify TTL
	ttl := mr.TTL("auth:otp:john@example.com")
	assert.True(t, ttl > 0)
	assert.True(t, ttl <= 5*time.Minute)
}

func TestRedisOTPStore_GetAbsent(t *testing.T) {
	store, mr := setupRedisOTPStore(t)
	defer mr.Close()

	got, err := store.Get(context.Background(), "ghost@example.com")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisOTPStore_GetAfterExpiry(t *testing.T) {
	store, mr := setupRedisOTPStore(t)
	defer mr.Close()

	otp := testOTP("john@example.com")
	require.NoError(t, store.Put(context.Background(), otp))

	mr.FastForward(6 * time.Minute)

	got, err := store.Get(context.Background(), "john@example.com")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisOTPStore_Delete(t *testing.T) {
	store, mr := setupRedisOTPStore(t)
	defer mr.Close()

	otp := testOTP("john@example.com")
	require.NoError(t, store.Put(context.Background(), otp))
	require.NoError(t, store.Delete(context.Background(), "john@example.com"))

	got, err := store.Get(context.Background(), "john@example.com")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisOTPStore_RedisError(t *testing.T) {
	store, mr := setupRedisOTPStore(t)

	// Force Redis to fail by closing the connection
	mr.Close()

	err := store.Put(context.Background(), testOTP("john@example.com"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store OTP record")
}
