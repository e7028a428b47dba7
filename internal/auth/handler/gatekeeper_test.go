package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func studentCookies(uid string) CookieState {
	return CookieState{RefreshToken: "present", UID: uid, Role: "student"}
}

func adminCookies() CookieState {
	return CookieState{RefreshToken: "present", UID: "admin-user", Role: "admin"}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		cookies CookieState
		want    Decision
	}{
		// Exempt paths pass regardless of cookie state.
		{"landing page without cookies", "/", CookieState{}, Allow},
		{"landing page with session", "/", studentCookies("0123456789"), Allow},
		{"logout page without cookies", "/logout", CookieState{}, Allow},
		{"send-otp endpoint", "/auth/send-otp", CookieState{}, Allow},
		{"verify-otp endpoint", "/auth/verify-otp", CookieState{}, Allow},
		{"login endpoint", "/auth/login", CookieState{}, Allow},

		// Student-scoped paths: identifier must match, prefix-insensitively.
		{"own profile", "/0123456789", studentCookies("0123456789"), Allow},
		{"someone else's profile", "/0123456789", studentCookies("9999999999"), RedirectToLogin},
		{"own profile with prefixed cookie", "/0123456789", studentCookies("ST0123456789"), Allow},
		{"prefixed path with bare cookie", "/ST0123456789", studentCookies("0123456789"), Allow},
		{"student path without cookies", "/0123456789", CookieState{}, RedirectToLogin},
		{"student path with refresh token only", "/0123456789", CookieState{RefreshToken: "present"}, RedirectToLogin},

		// Admin-scoped paths.
		{"home as admin", "/home", adminCookies(), Allow},
		{"home subpage as admin", "/home/upload", adminCookies(), Allow},
		{"home as student", "/home", studentCookies("0123456789"), RedirectToLogin},
		{"home without cookies", "/home", CookieState{}, RedirectToLogin},
		{"admin sentinel never matches a student path", "/0123456789", adminCookies(), RedirectToLogin},

		// Data API paths answer 401 instead of redirecting.
		{"api path authenticated", "/api/students", studentCookies("0123456789"), Allow},
		{"api path unauthenticated", "/api/students", CookieState{}, Unauthorized},
		{"nested api path unauthenticated", "/api/students/stats", CookieState{}, Unauthorized},

		// Everything else is allowed.
		{"static asset", "/favicon.ico", CookieState{}, Allow},
		{"unknown page", "/about", CookieState{}, Allow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.path, tt.cookies))
		})
	}
}

// Partial cookie state is unauthenticated: the three cookies only
// count as a session together.
func TestDecide_PartialSession(t *testing.T) {
	partials := []CookieState{
		{RefreshToken: "present"},
		{UID: "0123456789"},
		{UID: "0123456789", Role: "student"},
	}

	for _, cs := range partials {
		assert.Equal(t, RedirectToLogin, Decide("/0123456789", cs))
		assert.Equal(t, Unauthorized, Decide("/api/students", cs))
	}
}
