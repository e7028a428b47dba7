package handler

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/datachef-lab/idsnap-portal/internal/auth/domain"
	"github.com/datachef-lab/idsnap-portal/pkg/constant"
)

// Decision is the gatekeeper's verdict for a request path.
type Decision int

const (
	Allow Decision = iota
	RedirectToLogin
	Unauthorized
)

// CookieState is the session material the gatekeeper is allowed to
// look at. The refresh token's signature is deliberately not verified
// here: this layer is a cheap pre-filter ahead of the handlers, which
// independently verify signed tokens on every mutating operation.
type CookieState struct {
	RefreshToken string
	UID          string
	Role         string
}

func (cs CookieState) authenticated() bool {
	return cs.RefreshToken != "" && cs.UID != ""
}

// Student profile paths: an optional two-letter tag followed by
// digits, e.g. /0123456789 or /ST0123456789.
var studentPathPattern = regexp.MustCompile(`^/([A-Za-z]{2})?\d+$`)

// exemptPaths are reachable regardless of cookie state: the landing/
// login page, the logout page and the credential endpoints themselves.
var exemptPaths = map[string]struct{}{
	constant.LoginPath:     {},
	constant.LogoutPath:    {},
	"/auth/send-otp":       {},
	"/auth/verify-otp":     {},
	"/auth/login":          {},
	"/api/auth/send-otp":   {},
	"/api/auth/verify-otp": {},
	"/api/auth/login":      {},
}

// Decide classifies a request path against the cookie state. It is a
// pure function: no I/O, no cookie mutation, safe to run on every
// request including static assets.
func Decide(path string, cs CookieState) Decision {
	if _, ok := exemptPaths[path]; ok {
		return Allow
	}

	if studentPathPattern.MatchString(path) {
		pathUID := domain.NormalizeUID(strings.TrimPrefix(path, "/"))
		if cs.authenticated() && pathUID == domain.NormalizeUID(cs.UID) {
			return Allow
		}
		return RedirectToLogin
	}

	if path == constant.AdminHomePath || strings.HasPrefix(path, constant.AdminHomePath+"/") {
		if cs.authenticated() && cs.Role == constant.RoleAdmin {
			return Allow
		}
		return RedirectToLogin
	}

	// Data endpoints get a bare 401, not a redirect; they are consumed
	// by scripts, not navigated to.
	if strings.HasPrefix(path, "/api/") && !strings.HasPrefix(path, "/api/auth/") {
		if cs.authenticated() {
			return Allow
		}
		return Unauthorized
	}

	return Allow
}

// Gatekeeper adapts Decide into fiber middleware that runs ahead of
// every handler.
func Gatekeeper() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cs := CookieState{
			RefreshToken: c.Cookies(constant.CookieRefreshToken),
			UID:          c.Cookies(constant.CookieUID),
			Role:         c.Cookies(constant.CookieUserType),
		}

		switch Decide(c.Path(), cs) {
		case RedirectToLogin:
			return c.Redirect(constant.LoginPath, fiber.StatusFound)
		case Unauthorized:
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		default:
			return c.Next()
		}
	}
}
