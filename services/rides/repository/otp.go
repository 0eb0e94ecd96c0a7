package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/helloauto/dispatch/internal/pkg/constants"
	"github.com/helloauto/dispatch/internal/pkg/database"
)

// OTPRepo stores ride verification codes in Redis. The TTL is the only
// expiry mechanism; an absent key reads back as an empty code.
type OTPRepo struct {
	redisClient *database.RedisClient
}

// NewOTPRepository creates a new OTP repository
func NewOTPRepository(redisClient *database.RedisClient) *OTPRepo {
	return &OTPRepo{redisClient: redisClient}
}

// StoreOTP saves a ride's verification code with a bounded lifetime
func (r *OTPRepo) StoreOTP(ctx context.Context, rideID, code string, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyRideOTP, rideID)
	if err := r.redisClient.Set(ctx, key, code, ttl); err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}
	return nil
}

// GetOTP returns a ride's verification code, or empty when the code
// never existed or already expired
func (r *OTPRepo) GetOTP(ctx context.Context, rideID string) (string, error) {
	key := fmt.Sprintf(constants.KeyRideOTP, rideID)
	code, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get otp: %w", err)
	}
	return code, nil
}

// DeleteOTP discards a ride's verification code after use
func (r *OTPRepo) DeleteOTP(ctx context.Context, rideID string) error {
	key := fmt.Sprintf(constants.KeyRideOTP, rideID)
	return r.redisClient.Delete(ctx, key)
}
