package linkedin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/leadscout/linkedin-mcp/internal/errors"
	"golang.org/x/time/rate"
)

// Options configures a Client.
type Options struct {
	Email    string
	Password string

	// BaseURL is the Voyager API root, AuthBaseURL the www root used for
	// the authenticate handshake. Tests point both at an httptest server.
	BaseURL     string
	AuthBaseURL string

	UserAgent         string
	RequestsPerSecond float64
	RequestBurst      int
	Timeout           time.Duration

	// SessionPath, when set, enables restoring and caching the cookie
	// session on disk so repeated invocations skip the password handshake.
	SessionPath string
}

// Client is an authenticated Voyager web API client. It is safe for
// concurrent use; all requests share one cookie session and one limiter.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
	opts    Options

	mu         sync.Mutex
	authed     bool
	csrfToken  string
	trackingID string
}

// New creates a client. No network traffic happens until the first call;
// authentication is performed lazily and at most once per process.
func New(opts Options) (*Client, error) {
	if opts.Email == "" || opts.Password == "" {
		return nil, errors.New(errors.CodeAuthFailed, "LINKEDIN_EMAIL and LINKEDIN_PASSWORD must be set")
	}
	if opts.BaseURL == "" {
		opts.BaseURL = "https://www.linkedin.com/voyager/api"
	}
	if opts.AuthBaseURL == "" {
		opts.AuthBaseURL = "https://www.linkedin.com"
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 1.0
	}
	if opts.RequestBurst <= 0 {
		opts.RequestBurst = 1
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		http: &http.Client{
			Jar:     jar,
			Timeout: opts.Timeout,
		},
		limiter:    rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), opts.RequestBurst),
		opts:       opts,
		trackingID: uuid.NewString(),
	}, nil
}

// ensureAuth authenticates on first use. A cached session from
// SessionPath is preferred over the password handshake.
func (c *Client) ensureAuth(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.authed {
		return nil
	}

	if c.opts.SessionPath != "" {
		if sess, err := loadSession(c.opts.SessionPath); err == nil && sess.Email == c.opts.Email {
			c.restoreSession(sess)
			c.authed = true
			return nil
		}
	}

	if err := c.authenticate(ctx); err != nil {
		return err
	}

	c.authed = true
	if c.opts.SessionPath != "" {
		// Cache failures are non-fatal; the session still works in-process.
		_ = saveSession(c.opts.SessionPath, c.snapshotSession())
	}
	return nil
}

// authenticate performs the two-step cookie handshake: an anonymous GET
// to seed the JSESSIONID csrf cookie, then the credential POST.
func (c *Client) authenticate(ctx context.Context) error {
	authURL := c.opts.AuthBaseURL + "/uas/authenticate"

	seed, err := http.NewRequestWithContext(ctx, http.MethodGet, authURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build seed request: %w", err)
	}
	seed.Header.Set("User-Agent", c.opts.UserAgent)

	resp, err := c.http.Do(seed)
	if err != nil {
		return errors.UpstreamError(authURL, err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	csrf := c.cookieValue(authURL, "JSESSIONID")
	if csrf == "" {
		return errors.New(errors.CodeUpstreamError, "authenticate handshake did not set a session cookie")
	}

	form := url.Values{}
	form.Set("session_key", c.opts.Email)
	form.Set("session_password", c.opts.Password)
	form.Set("JSESSIONID", csrf)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build authenticate request: %w", err)
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Li-User-Agent", "LIAuthLibrary:0.0.3")

	resp, err = c.http.Do(req)
	if err != nil {
		return errors.UpstreamError(authURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return errors.AuthFailed(c.opts.Email)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return errors.RateLimited(authURL)
	}
	if resp.StatusCode != http.StatusOK {
		return errors.UpstreamStatus(authURL, resp.StatusCode)
	}

	var result struct {
		LoginResult string `json:"login_result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return errors.UpstreamError(authURL, err)
	}

	switch result.LoginResult {
	case "PASS":
		// The handshake rotates JSESSIONID; pick up the fresh value.
		c.csrfToken = c.cookieValue(authURL, "JSESSIONID")
		return nil
	case "CHALLENGE":
		return errors.ChallengeRequired()
	default:
		return errors.AuthFailed(c.opts.Email)
	}
}

// cookieValue returns the named cookie currently in the jar for rawURL,
// with the quoting LinkedIn wraps around JSESSIONID stripped.
func (c *Client) cookieValue(rawURL, name string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	for _, ck := range c.http.Jar.Cookies(u) {
		if ck.Name == name {
			return strings.Trim(ck.Value, `"`)
		}
	}
	return ""
}

// get performs an authenticated Voyager GET and decodes the JSON body
// into out. Upstream failures map onto the shared error codes with no
// retry or backoff.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.ensureAuth(ctx); err != nil {
		return err
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	endpoint := c.opts.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}

	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/vnd.linkedin.normalized+json+2.1")
	req.Header.Set("Csrf-Token", c.csrf())
	req.Header.Set("X-Restli-Protocol-Version", "2.0.0")
	req.Header.Set("X-Li-Track-Id", c.trackingID)

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.UpstreamError(path, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		c.invalidateSession()
		return errors.SessionExpired()
	case http.StatusForbidden:
		return errors.ChallengeRequired()
	case http.StatusTooManyRequests:
		return errors.RateLimited(path)
	case http.StatusNotFound:
		return errors.New(errors.CodeNotFound, fmt.Sprintf("resource %s not found", path))
	default:
		return errors.UpstreamStatus(path, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return errors.UpstreamError(path, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.UpstreamError(path, err)
	}
	return nil
}

func (c *Client) csrf() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.csrfToken
}

// invalidateSession drops the cached session file so the next process
// start re-authenticates instead of replaying dead cookies.
func (c *Client) invalidateSession() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authed = false
	if c.opts.SessionPath != "" {
		_ = removeSession(c.opts.SessionPath)
	}
}

// urnID extracts the trailing identifier from a Voyager entity urn such
// as "urn:li:fs_jobPosting:12345".
func urnID(urn string) string {
	if idx := strings.LastIndex(urn, ":"); idx >= 0 {
		return urn[idx+1:]
	}
	return urn
}
