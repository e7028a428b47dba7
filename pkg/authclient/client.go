// Package authclient is the client-side session orchestrator for the
// portal's auth API. The access token is held in memory only, while
// the long-lived refresh token stays in an HttpOnly cookie carried by
// the jar. The client attaches bearer headers to outgoing calls and
// refreshes an expired access token exactly once per failed request.
package authclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"regexp"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// State is the orchestrator's lifecycle position.
type State int

const (
	StateIdle State = iota
	StateChecking
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "idle"
	}
}

// Identity mirrors the user object returned by /auth/me and
// /auth/refresh.
type Identity struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	UID   string `json:"uid,omitempty"`
	Role  string `json:"role"`
}

type sessionResponse struct {
	AccessToken string   `json:"accessToken"`
	User        Identity `json:"user"`
}

type Client struct {
	baseURL string
	http    *http.Client

	mu       sync.RWMutex
	state    State
	token    string
	identity *Identity

	// refreshGroup collapses concurrent refresh attempts into one
	// in-flight request, so N simultaneous 401s cost one network call.
	refreshGroup singleflight.Group

	onSessionExpired func()
}

type Option func(*Client)

// WithHTTPClient substitutes the underlying transport. A cookie jar is
// installed if the client does not carry one, because the refresh
// cookie is the whole session.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithSessionExpiredHandler registers the hook invoked when a refresh
// attempt fails terminally, typically to navigate to the login page.
func WithSessionExpiredHandler(fn func()) Option {
	return func(c *Client) { c.onSessionExpired = fn }
}

func New(baseURL string, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		state:   StateIdle,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		c.http = &http.Client{Timeout: 15 * time.Second}
	}
	if c.http.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}
		c.http.Jar = jar
	}

	return c, nil
}

var protectedStudentPath = regexp.MustCompile(`^/([A-Za-z]{2})?\d+$`)

// IsProtectedRoute reports whether a route requires a session: the
// admin home tree and per-student pages.
func IsProtectedRoute(route string) bool {
	if route == "/home" || strings.HasPrefix(route, "/home/") {
		return true
	}
	return protectedStudentPath.MatchString(route)
}

// Bootstrap establishes session state for the given route. On a public
// route it settles on Unauthenticated without touching the network. On
// a protected route it probes /auth/me using only the refresh cookie,
// falling back to exactly one refresh attempt.
func (c *Client) Bootstrap(ctx context.Context, route string) State {
	if !IsProtectedRoute(route) {
		c.clearSession()
		return StateUnauthenticated
	}

	c.setState(StateChecking)

	if err := c.probe(ctx); err == nil {
		return StateAuthenticated
	}

	if _, err := c.refresh(ctx); err != nil {
		return StateUnauthenticated
	}

	return StateAuthenticated
}

// Do sends the request with a bearer header when a token is held. On a
// 401 it performs one coalesced refresh and one retry; a request that
// fails twice propagates the second failure with no further attempts.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if token := c.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, err
	}

	token, rerr := c.refresh(req.Context())
	if rerr != nil {
		return resp, nil
	}

	retry, cerr := rewind(req)
	if cerr != nil {
		return resp, nil
	}

	resp.Body.Close()
	retry.Header.Set("Authorization", "Bearer "+token)

	return c.http.Do(retry)
}

// Logout calls the server-side logout and clears local state. Local
// clearing happens regardless of the server outcome, so a failed call
// still leaves the client logged out.
func (c *Client) Logout(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/logout", nil)
	if err != nil {
		c.clearSession()
		return err
	}

	resp, err := c.http.Do(req)
	c.clearSession()
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("logout failed: status %d", resp.StatusCode)
	}

	return nil
}

func (c *Client) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Identity returns a copy of the current identity, or nil when no
// session is held.
func (c *Client) Identity() *Identity {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.identity == nil {
		return nil
	}
	identity := *c.identity
	return &identity
}

func (c *Client) probe(ctx context.Context) error {
	session, err := c.fetchSession(ctx, "/auth/me")
	if err != nil {
		return err
	}

	c.setSession(session)
	return nil
}

func (c *Client) refresh(ctx context.Context) (string, error) {
	token, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		session, err := c.fetchSession(ctx, "/auth/refresh")
		if err != nil {
			c.clearSession()
			if c.onSessionExpired != nil {
				c.onSessionExpired()
			}
			return "", err
		}

		c.setSession(session)
		return session.AccessToken, nil
	})
	if err != nil {
		return "", err
	}

	return token.(string), nil
}

func (c *Client) fetchSession(ctx context.Context, path string) (*sessionResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: status %d", path, resp.StatusCode)
	}

	var session sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("%s: failed to decode response: %w", path, err)
	}

	return &session, nil
}

func (c *Client) setSession(session *sessionResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = StateAuthenticated
	c.token = session.AccessToken
	identity := session.User
	c.identity = &identity
}

func (c *Client) clearSession() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = StateUnauthenticated
	c.token = ""
	c.identity = nil
}

func (c *Client) setState(state State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state
}

// rewind rebuilds the request for the single retry. Requests with a
// non-replayable body cannot be retried; the caller then receives the
// original 401.
func rewind(req *http.Request) (*http.Request, error) {
	retry := req.Clone(req.Context())

	if req.Body == nil || req.Body == http.NoBody {
		return retry, nil
	}
	if req.GetBody == nil {
		return nil, fmt.Errorf("request body is not replayable")
	}

	body, err := req.GetBody()
	if err != nil {
		return nil, err
	}
	retry.Body = body

	return retry, nil
}
