package endpoints

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidosoro/userhub/pkg/oauth"
)

// fakeGitHub stands in for both the token and the user profile endpoints
func fakeGitHub(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		if r.FormValue("code") != "good-code" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"gho_testtoken","token_type":"bearer"}`))
	})
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"login":"octocat","name":"Mona Lisa","email":"mona@example.com"}`))
	})

	upstream := httptest.NewServer(mux)
	t.Cleanup(upstream.Close)
	return upstream
}

func TestOAuthFlow(t *testing.T) {
	upstream := fakeGitHub(t)
	provider := oauth.NewGitHubProviderForTesting(
		"client-id", "client-secret", upstream.URL+"/token", upstream.URL+"/user")

	s := newTestServer(t, testServerOptions{oauth: provider})

	// redirect leg: the handler sets a state cookie and sends the client to
	// the provider with the same state
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, httptest.NewRequest("GET", "/auth/github", nil))
	require.Equal(t, http.StatusFound, w.Code)

	location, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	state := location.Query().Get("state")
	require.NotEmpty(t, state)
	assert.Equal(t, "client-id", location.Query().Get("client_id"))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	// callback leg: code exchange and greeting
	req := httptest.NewRequest("GET", "/auth/github/callback?code=good-code&state="+state, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w = httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Welcome back, Mona Lisa!", w.Body.String())
}

func TestOAuthCallbackStateMismatch(t *testing.T) {
	upstream := fakeGitHub(t)
	provider := oauth.NewGitHubProviderForTesting(
		"client-id", "client-secret", upstream.URL+"/token", upstream.URL+"/user")

	s := newTestServer(t, testServerOptions{oauth: provider})

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, httptest.NewRequest("GET", "/auth/github/callback?code=good-code&state=forged", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid oauth state", w.Body.String())
}

func TestOAuthCallbackBadCode(t *testing.T) {
	upstream := fakeGitHub(t)
	provider := oauth.NewGitHubProviderForTesting(
		"client-id", "client-secret", upstream.URL+"/token", upstream.URL+"/user")

	s := newTestServer(t, testServerOptions{oauth: provider})

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, httptest.NewRequest("GET", "/auth/github", nil))
	require.Equal(t, http.StatusFound, w.Code)

	location, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	state := location.Query().Get("state")
	cookies := w.Result().Cookies()

	req := httptest.NewRequest("GET", "/auth/github/callback?code=bad-code&state="+state, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w = httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestOAuthRoutesAbsentWithoutProvider(t *testing.T) {
	s := newTestServer(t, testServerOptions{})

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, httptest.NewRequest("GET", "/auth/github", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
