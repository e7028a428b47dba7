package authclient_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datachef-lab/idsnap-portal/pkg/authclient"
)

func writeSession(w http.ResponseWriter, token string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"accessToken": token,
		"user": map[string]any{
			"id":    42,
			"name":  "Asha Verma",
			"email": "asha@college.edu",
			"uid":   "ST0123456789",
			"role":  "student",
		},
	})
}

func TestIsProtectedRoute(t *testing.T) {
	tests := []struct {
		route string
		want  bool
	}{
		{"/", false},
		{"/logout", false},
		{"/about", false},
		{"/home", true},
		{"/home/upload", true},
		{"/0123456789", true},
		{"/ST0123456789", true},
		{"/ABC123", false},
		{"/homework", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, authclient.IsProtectedRoute(tt.route), tt.route)
	}
}

// Public routes settle without any network traffic.
func TestBootstrap_PublicRoute(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c, err := authclient.New(srv.URL)
	require.NoError(t, err)

	state := c.Bootstrap(context.Background(), "/")
	assert.Equal(t, authclient.StateUnauthenticated, state)
	assert.Equal(t, authclient.StateUnauthenticated, c.State())
	assert.Empty(t, c.AccessToken())
	assert.Zero(t, calls.Load())
}

func TestBootstrap_ProtectedRoute(t *testing.T) {
	t.Run("probe succeeds", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/auth/me", r.URL.Path)
			writeSession(w, "access-1")
		}))
		defer srv.Close()

		c, err := authclient.New(srv.URL)
		require.NoError(t, err)

		state := c.Bootstrap(context.Background(), "/0123456789")
		assert.Equal(t, authclient.StateAuthenticated, state)
		assert.Equal(t, "access-1", c.AccessToken())

		identity := c.Identity()
		require.NotNil(t, identity)
		assert.Equal(t, "ST0123456789", identity.UID)
	})

	t.Run("probe fails then refresh succeeds", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/auth/me":
				w.WriteHeader(http.StatusUnauthorized)
			case "/auth/refresh":
				writeSession(w, "access-2")
			default:
				t.Errorf("unexpected path %s", r.URL.Path)
			}
		}))
		defer srv.Close()

		c, err := authclient.New(srv.URL)
		require.NoError(t, err)

		state := c.Bootstrap(context.Background(), "/home")
		assert.Equal(t, authclient.StateAuthenticated, state)
		assert.Equal(t, "access-2", c.AccessToken())
	})

	t.Run("probe and refresh both fail", func(t *testing.T) {
		expired := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		c, err := authclient.New(srv.URL, authclient.WithSessionExpiredHandler(func() {
			expired = true
		}))
		require.NoError(t, err)

		state := c.Bootstrap(context.Background(), "/0123456789")
		assert.Equal(t, authclient.StateUnauthenticated, state)
		assert.True(t, expired)
		assert.Nil(t, c.Identity())
	})
}

func TestDo_AttachesBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/me" {
			writeSession(w, "access-1")
			return
		}
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, err := authclient.New(srv.URL)
	require.NoError(t, err)
	c.Bootstrap(context.Background(), "/0123456789")

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/students", nil)
	resp, err := c.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Bearer access-1", gotAuth)
}

// A 401 triggers exactly one refresh and one retry; the retried call
// carries the new token and a replayed body.
func TestDo_RefreshAndRetryOn401(t *testing.T) {
	var apiCalls, refreshCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh":
			refreshCalls.Add(1)
			writeSession(w, "access-new")
		case "/api/upload":
			n := apiCalls.Add(1)
			body, _ := json.Marshal(map[string]string{"ok": "true"})
			if n == 1 {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			assert.Equal(t, "Bearer access-new", r.Header.Get("Authorization"))
			replayed, _ := io.ReadAll(r.Body)
			assert.Equal(t, `{"note":"hi"}`, string(replayed))
			w.WriteHeader(http.StatusOK)
			w.Write(body)
		}
	}))
	defer srv.Close()

	c, err := authclient.New(srv.URL)
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/upload", strings.NewReader(`{"note":"hi"}`))
	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(2), apiCalls.Load())
	assert.Equal(t, int32(1), refreshCalls.Load())
	assert.Equal(t, "access-new", c.AccessToken())
}

// When the refresh itself fails, the caller gets the original 401 and
// no retry happens.
func TestDo_RefreshFailurePropagatesOriginal401(t *testing.T) {
	var apiCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		apiCalls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, err := authclient.New(srv.URL)
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/students", nil)
	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int32(1), apiCalls.Load())
	assert.Equal(t, authclient.StateUnauthenticated, c.State())
}

// A request that still gets 401 after the refreshed retry is returned
// as-is; there is never a third attempt.
func TestDo_SecondFailureStops(t *testing.T) {
	var apiCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			writeSession(w, "access-new")
			return
		}
		apiCalls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, err := authclient.New(srv.URL)
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/students", nil)
	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int32(2), apiCalls.Load())
}

func TestLogout(t *testing.T) {
	t.Run("clears state on success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/auth/me" {
				writeSession(w, "access-1")
				return
			}
			require.Equal(t, "/auth/logout", r.URL.Path)
			require.Equal(t, http.MethodPost, r.Method)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		c, err := authclient.New(srv.URL)
		require.NoError(t, err)
		c.Bootstrap(context.Background(), "/0123456789")
		require.Equal(t, authclient.StateAuthenticated, c.State())

		require.NoError(t, c.Logout(context.Background()))
		assert.Equal(t, authclient.StateUnauthenticated, c.State())
		assert.Empty(t, c.AccessToken())
		assert.Nil(t, c.Identity())
	})

	t.Run("clears state even when the server errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/auth/me" {
				writeSession(w, "access-1")
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c, err := authclient.New(srv.URL)
		require.NoError(t, err)
		c.Bootstrap(context.Background(), "/0123456789")

		assert.Error(t, c.Logout(context.Background()))
		assert.Equal(t, authclient.StateUnauthenticated, c.State())
		assert.Empty(t, c.AccessToken())
	})
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", authclient.StateIdle.String())
	assert.Equal(t, "checking", authclient.StateChecking.String())
	assert.Equal(t, "authenticated", authclient.StateAuthenticated.String())
	assert.Equal(t, "unauthenticated", authclient.StateUnauthenticated.String())
}
