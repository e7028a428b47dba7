package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/datachef-lab/idsnap-portal/internal/auth/domain"
	"github.com/datachef-lab/idsnap-portal/pkg/constant"
)

// SessionCookieManager writes and clears the three session cookies as
// a unit. Consumers treat partial state (refresh token without uid, or
// the reverse) as unauthenticated, so Set and Clear never touch a
// subset.
type SessionCookieManager struct {
	maxAge time.Duration
	secure bool
}

func NewSessionCookieManager(maxAge time.Duration, secure bool) *SessionCookieManager {
	return &SessionCookieManager{maxAge: maxAge, secure: secure}
}

// Set installs the session: the refresh token stays HttpOnly so it is
// never exposed to script; uid and userType are read server-side by
// the edge gatekeeper.
func (m *SessionCookieManager) Set(c *fiber.Ctx, refreshToken string, identity *domain.Identity) {
	m.write(c, constant.CookieRefreshToken, refreshToken)
	m.write(c, constant.CookieUID, identity.SessionUID())
	m.write(c, constant.CookieUserType, string(identity.Role))
}

// Clear expires all three cookies. Idempotent: clearing an absent
// session produces the same end state with no error.
func (m *SessionCookieManager) Clear(c *fiber.Ctx) {
	for _, name := range []string{constant.CookieRefreshToken, constant.CookieUID, constant.CookieUserType} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			HTTPOnly: true,
			Secure:   m.secure,
			SameSite: fiber.CookieSameSiteLaxMode,
			MaxAge:   -1,
			Expires:  time.Unix(0, 0),
		})
	}
}

func (m *SessionCookieManager) write(c *fiber.Ctx, name, value string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		MaxAge:   int(m.maxAge.Seconds()),
	})
}
