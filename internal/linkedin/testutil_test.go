package linkedin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// fakeVoyager is an httptest stand-in for the LinkedIn web host. It
// serves the /uas/authenticate handshake and whatever API routes a test
// registers under /voyager/api.
type fakeVoyager struct {
	t   *testing.T
	mux *http.ServeMux
	srv *httptest.Server

	// loginResult controls the handshake outcome, default "PASS".
	loginResult string
	// authStatus, when non-zero, short-circuits the credential POST.
	authStatus int

	seedCalls int
	authCalls int
}

func newFakeVoyager(t *testing.T) *fakeVoyager {
	t.Helper()

	fv := &fakeVoyager{
		t:           t,
		mux:         http.NewServeMux(),
		loginResult: "PASS",
	}

	fv.mux.HandleFunc("/uas/authenticate", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			fv.seedCalls++
			http.SetCookie(w, &http.Cookie{
				Name:  "JSESSIONID",
				Value: `"ajax:1234567890"`,
				Path:  "/",
			})
			w.WriteHeader(http.StatusOK)
		case http.MethodPost:
			fv.authCalls++
			if err := r.ParseForm(); err != nil {
				t.Errorf("failed to parse authenticate form: %v", err)
			}
			if r.PostFormValue("session_key") == "" {
				t.Error("authenticate POST missing session_key")
			}
			if r.PostFormValue("session_password") == "" {
				t.Error("authenticate POST missing session_password")
			}
			if r.PostFormValue("JSESSIONID") == "" {
				t.Error("authenticate POST missing JSESSIONID")
			}
			if fv.authStatus != 0 {
				w.WriteHeader(fv.authStatus)
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:  "JSESSIONID",
				Value: `"ajax:fresh-csrf"`,
				Path:  "/",
			})
			json.NewEncoder(w).Encode(map[string]string{"login_result": fv.loginResult})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	fv.srv = httptest.NewServer(fv.mux)
	t.Cleanup(fv.srv.Close)
	return fv
}

// handle registers an API route under the Voyager prefix.
func (fv *fakeVoyager) handle(path string, handler http.HandlerFunc) {
	fv.mux.HandleFunc("/voyager/api"+path, handler)
}

// handleJSON registers an API route that always responds with body.
func (fv *fakeVoyager) handleJSON(path string, body any) {
	fv.handle(path, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(body)
	})
}

// options returns client options pointed at the fake server, with
// pacing relaxed so tests run at full speed.
func (fv *fakeVoyager) options() Options {
	return Options{
		Email:             "test@example.com",
		Password:          "secret",
		BaseURL:           fv.srv.URL + "/voyager/api",
		AuthBaseURL:       fv.srv.URL,
		UserAgent:         "linkedin-mcp-test",
		RequestsPerSecond: 1000,
		RequestBurst:      100,
		Timeout:           5 * time.Second,
	}
}

// newTestClient builds a client against the fake server.
func newTestClient(t *testing.T, fv *fakeVoyager) *Client {
	t.Helper()

	client, err := New(fv.options())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return client
}
