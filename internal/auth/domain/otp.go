package domain

import "time"

// OneTimePassword is a challenge code bound to an email address. Codes
// are never updated in place; issuing again inserts a newer record and
// verification only ever consults the most recent one per email.
type OneTimePassword struct {
	ID        string
	Email     string
	Phone     string
	Code      string
	CreatedAt time.Time
}

// ChallengeOutcome classifies a verification attempt. The three values
// map to three different corrective actions in the UI, so they must
// stay distinguishable all the way up to the handler.
type ChallengeOutcome int

const (
	ChallengeInvalid ChallengeOutcome = iota
	ChallengeExpired
	ChallengeVerified
)

func (o ChallengeOutcome) String() string {
	switch o {
	case ChallengeExpired:
		return "expired"
	case ChallengeVerified:
		return "verified"
	default:
		return "invalid"
	}
}
