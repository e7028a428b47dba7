// Package redisotp backs the OTP store with Redis for deployments that
// run more than one instance of the service.
package redisotp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/datachef-lab/idsnap-portal/internal/auth/domain"
)

// OTPStore keeps one entry per email under a TTL. The TTL is set well
// past the verification window: it is housekeeping, not the expiry
// check, because a hard TTL would erase the expired-versus-invalid
// distinction the verify flow has to report.
type OTPStore struct {
	client    *redis.Client
	retention time.Duration
}

func NewOTPStore(client *redis.Client, retention time.Duration) *OTPStore {
	return &OTPStore{client: client, retention: retention}
}

type entry struct {
	ID        string    `json:"id"`
	Phone     string    `json:"phone"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

func key(email string) string {
	return "otp:" + email
}

func (s *OTPStore) Save(ctx context.Context, otp *domain.OneTimePassword) error {
	raw, err := json.Marshal(entry{
		ID:        otp.ID,
		Phone:     otp.Phone,
		Code:      otp.Code,
		CreatedAt: otp.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to encode otp: %w", err)
	}

	if err := s.client.Set(ctx, key(otp.Email), raw, s.retention).Err(); err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}

	return nil
}

func (s *OTPStore) LatestByEmail(ctx context.Context, email string) (*domain.OneTimePassword, error) {
	raw, err := s.client.Get(ctx, key(email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load otp: %w", err)
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, fmt.Errorf("failed to decode otp: %w", err)
	}

	return &domain.OneTimePassword{
		ID:        e.ID,
		Email:     email,
		Phone:     e.Phone,
		Code:      e.Code,
		CreatedAt: e.CreatedAt,
	}, nil
}

func (s *OTPStore) DeleteByEmail(ctx context.Context, email string) error {
	return s.client.Del(ctx, key(email)).Err()
}
