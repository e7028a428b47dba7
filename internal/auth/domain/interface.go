package domain

import (
	"context"
)

//go:generate mockgen -destination=../../mocks/mock_domain.go -package=mocks github.com/datachef-lab/idsnap-portal/internal/auth/domain IdentityDirectory,OTPStore,Notifier

// IdentityDirectory resolves login identifiers to identities. Lookups
// return (nil, nil) on a miss. Records are owned elsewhere (bulk
// import); the auth core only reads them, plus the check-in stamp.
type IdentityDirectory interface {
	StudentByEmail(ctx context.Context, email string) (*Identity, error)
	StudentByUID(ctx context.Context, uid string) (*Identity, error)
	StudentByUIDAndDOB(ctx context.Context, uid, dob string) (*Identity, error)
	AdminByEmail(ctx context.Context, email string) (*Identity, error)
	TouchCheckIn(ctx context.Context, email string) error
}

// OTPStore persists challenge codes keyed by email. LatestByEmail
// returns the most recently created code, or (nil, nil) when none
// exists; older codes for the same email are shadowed, not deleted.
type OTPStore interface {
	Save(ctx context.Context, otp *OneTimePassword) error
	LatestByEmail(ctx context.Context, email string) (*OneTimePassword, error)
	DeleteByEmail(ctx context.Context, email string) error
}

// Notifier delivers a challenge code through the external channels.
// Delivery failure never blocks issuance; callers log and move on.
type Notifier interface {
	SendOTP(ctx context.Context, email, phone, code string) error
}
