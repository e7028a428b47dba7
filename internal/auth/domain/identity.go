package domain

import (
	"strings"
	"time"

	"github.com/datachef-lab/idsnap-portal/pkg/constant"
)

type Role string

const (
	RoleStudent Role = constant.RoleStudent
	RoleAdmin   Role = constant.RoleAdmin
)

// Identity is the authenticated principal. Exactly one variant applies:
// the Role tag is resolved once at the directory boundary, downstream
// code switches on it instead of probing for field presence.
type Identity struct {
	Role  Role
	ID    int
	Name  string
	Email string
	Phone string

	// Student-only fields. UID may carry a two-letter institutional
	// prefix (e.g. "ST0123456789").
	UID string
	DOB time.Time
}

func (i *Identity) IsStudent() bool {
	return i.Role == RoleStudent
}

// SessionUID is the value stored in the uid cookie: the full UID for
// students, a non-path-colliding sentinel for admins.
func (i *Identity) SessionUID() string {
	if i.IsStudent() {
		return i.UID
	}
	return constant.AdminUIDSentinel
}

// RedirectURL is where the client should navigate after a successful
// login: the digits-only student path, or the admin home.
func (i *Identity) RedirectURL() string {
	if i.IsStudent() {
		return "/" + NormalizeUID(i.UID)
	}
	return constant.AdminHomePath
}

// NormalizeUID strips everything but digits, so "ST0123456789" and
// "0123456789" compare equal wherever UIDs are matched.
func NormalizeUID(uid string) string {
	var b strings.Builder
	for _, r := range uid {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
