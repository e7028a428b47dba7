package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/datachef-lab/idsnap-portal/internal/auth/domain"
)

// OTPService issues and verifies challenge codes. Codes live for
// Window from creation; expiry is evaluated lazily at verification
// time by comparing wall-clock age, there is no active sweep here.
type OTPService struct {
	dir      domain.IdentityDirectory
	store    domain.OTPStore
	notifier domain.Notifier
	window   time.Duration
	log      *slog.Logger
}

func NewOTPService(dir domain.IdentityDirectory, store domain.OTPStore, notifier domain.Notifier,
	window time.Duration, log *slog.Logger) *OTPService {
	return &OTPService{
		dir:      dir,
		store:    store,
		notifier: notifier,
		window:   window,
		log:      log,
	}
}

func (s *OTPService) Window() time.Duration {
	return s.window
}

// RequestChallenge generates a fresh 6-digit code for the identity
// behind the identifier and dispatches it. Dispatch failure is logged
// but does not fail the request: the user always has a resend option,
// and the response must not leak delivery-channel health.
func (s *OTPService) RequestChallenge(ctx context.Context, identifier string) (time.Time, error) {
	identity, err := resolveIdentifier(ctx, s.dir, identifier)
	if err != nil {
		return time.Time{}, err
	}

	now := time.Now()
	otp := &domain.OneTimePassword{
		ID:        uuid.NewString(),
		Email:     identity.Email,
		Phone:     identity.Phone,
		Code:      generateCode(),
		CreatedAt: now,
	}

	if err := s.store.Save(ctx, otp); err != nil {
		return time.Time{}, fmt.Errorf("failed to store otp: %w", err)
	}

	if err := s.notifier.SendOTP(ctx, otp.Email, otp.Phone, otp.Code); err != nil {
		s.log.Warn("otp dispatch failed", "email", otp.Email, "error", err)
	}

	return now.Add(s.window), nil
}

// VerifyChallenge checks the supplied code against the most recent one
// issued for the identifier's email. Older outstanding codes are never
// consulted, so issuing a new code makes previous ones unusable without
// any explicit invalidation.
func (s *OTPService) VerifyChallenge(ctx context.Context, identifier, code string) (*domain.Identity, domain.ChallengeOutcome, error) {
	identity, err := resolveIdentifier(ctx, s.dir, identifier)
	if err != nil {
		return nil, domain.ChallengeInvalid, err
	}

	latest, err := s.store.LatestByEmail(ctx, identity.Email)
	if err != nil {
		return nil, domain.ChallengeInvalid, fmt.Errorf("failed to look up otp: %w", err)
	}
	if latest == nil || latest.Code != code {
		return nil, domain.ChallengeInvalid, nil
	}

	if time.Since(latest.CreatedAt) > s.window {
		s.discard(ctx, identity.Email)
		return nil, domain.ChallengeExpired, nil
	}

	s.discard(ctx, identity.Email)

	if err := s.dir.TouchCheckIn(ctx, identity.Email); err != nil {
		s.log.Warn("failed to stamp check-in", "email", identity.Email, "error", err)
	}

	return identity, domain.ChallengeVerified, nil
}

// discard enforces single-use: once a code has been matched, whether
// fresh or stale, it must not be replayable.
func (s *OTPService) discard(ctx context.Context, email string) {
	if err := s.store.DeleteByEmail(ctx, email); err != nil {
		s.log.Warn("failed to delete consumed otp", "email", email, "error", err)
	}
}

// generateCode returns a uniformly random code in [100000, 999999].
func generateCode() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}
