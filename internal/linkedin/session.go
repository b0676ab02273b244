package linkedin

import (
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// session is the on-disk cookie cache. It holds only what is needed to
// resume a logged-in Voyager session: the cookies and the csrf token
// derived from them.
type session struct {
	Email     string          `json:"email"`
	CSRFToken string          `json:"csrf_token"`
	Cookies   []sessionCookie `json:"cookies"`
	SavedAt   time.Time       `json:"saved_at"`
}

type sessionCookie struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Domain  string    `json:"domain"`
	Path    string    `json:"path"`
	Expires time.Time `json:"expires,omitempty"`
}

// snapshotSession captures the current jar state for caching.
// Caller holds c.mu.
func (c *Client) snapshotSession() *session {
	sess := &session{
		Email:     c.opts.Email,
		CSRFToken: c.csrfToken,
		SavedAt:   time.Now(),
	}

	u, err := url.Parse(c.opts.AuthBaseURL)
	if err != nil {
		return sess
	}
	for _, ck := range c.http.Jar.Cookies(u) {
		sess.Cookies = append(sess.Cookies, sessionCookie{
			Name:    ck.Name,
			Value:   ck.Value,
			Domain:  ck.Domain,
			Path:    ck.Path,
			Expires: ck.Expires,
		})
	}
	return sess
}

// restoreSession loads a cached session into the jar. Caller holds c.mu.
func (c *Client) restoreSession(sess *session) {
	u, err := url.Parse(c.opts.AuthBaseURL)
	if err != nil {
		return
	}
	cookies := make([]*http.Cookie, 0, len(sess.Cookies))
	for _, ck := range sess.Cookies {
		cookies = append(cookies, &http.Cookie{
			Name:    ck.Name,
			Value:   ck.Value,
			Domain:  ck.Domain,
			Path:    ck.Path,
			Expires: ck.Expires,
		})
	}
	c.http.Jar.SetCookies(u, cookies)
	c.csrfToken = sess.CSRFToken
}

// loadSession reads a cached session from path.
func loadSession(path string) (*session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sess session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// saveSession writes the session to path with owner-only permissions.
func saveSession(path string, sess *session) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// removeSession deletes the cached session file if present.
func removeSession(path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
