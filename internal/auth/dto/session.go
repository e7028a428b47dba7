package dto

import "github.com/datachef-lab/idsnap-portal/internal/auth/domain"

// IdentityOutput is the identity shape exposed to clients by /auth/me
// and /auth/refresh. DOB and phone are deliberately omitted.
type IdentityOutput struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	UID   string `json:"uid,omitempty"`
	Role  string `json:"role"`
}

func IdentityOutputFrom(identity *domain.Identity) IdentityOutput {
	return IdentityOutput{
		ID:    identity.ID,
		Name:  identity.Name,
		Email: identity.Email,
		UID:   identity.UID,
		Role:  string(identity.Role),
	}
}

// SessionOutput carries a freshly minted access token alongside the
// resolved identity.
type SessionOutput struct {
	AccessToken string         `json:"accessToken"`
	User        IdentityOutput `json:"user"`
}
