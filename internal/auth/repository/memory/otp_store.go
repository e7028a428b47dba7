// Package memory provides the fallback OTP store used when no shared
// store is configured. It is an explicitly-owned component: the caller
// starts and stops its cleanup task, nothing here is process-global.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/datachef-lab/idsnap-portal/internal/auth/domain"
)

// OTPStore keeps at most one code per email. Overwriting on Save is
// this store's natural most-recent-wins: the code written last is the
// only one verification can ever see.
type OTPStore struct {
	mu      sync.RWMutex
	entries map[string]domain.OneTimePassword

	retention time.Duration
	done      chan struct{}
	stopOnce  sync.Once
}

// NewOTPStore creates a store whose cleanup pass drops entries older
// than retention. Cleanup is housekeeping, not a correctness
// requirement; expiry is always re-checked at verification time.
func NewOTPStore(retention time.Duration) *OTPStore {
	return &OTPStore{
		entries:   make(map[string]domain.OneTimePassword),
		retention: retention,
		done:      make(chan struct{}),
	}
}

func (s *OTPStore) Save(_ context.Context, otp *domain.OneTimePassword) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[otp.Email] = *otp

	return nil
}

func (s *OTPStore) LatestByEmail(_ context.Context, email string) (*domain.OneTimePassword, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	otp, ok := s.entries[email]
	if !ok {
		return nil, nil
	}

	return &otp, nil
}

func (s *OTPStore) DeleteByEmail(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, email)

	return nil
}

// Start launches the periodic cleanup task. Call Stop to release it.
func (s *OTPStore) Start(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.cleanup(time.Now())
			case <-s.done:
				return
			}
		}
	}()
}

// Stop terminates the cleanup task. Safe to call more than once.
func (s *OTPStore) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
}

func (s *OTPStore) cleanup(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for email, otp := range s.entries {
		if now.Sub(otp.CreatedAt) > s.retention {
			delete(s.entries, email)
		}
	}
}
