package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangeAuthCode(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "test-code", r.FormValue("code"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"gho_testtoken","token_type":"bearer"}`))
	})
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Authorization"), "gho_testtoken")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"login":"octocat","name":"Mona Lisa","email":"octo@example.com"}`))
	})
	provider := httptest.NewServer(mux)
	defer provider.Close()

	p := NewGitHubProviderForTesting("id", "secret", provider.URL+"/token", provider.URL+"/user")

	profile, err := p.ExchangeAuthCode(context.Background(), "test-code")
	require.NoError(t, err)

	assert.Equal(t, "octocat", profile.Login)
	assert.Equal(t, "Mona Lisa", profile.Name)
	assert.Equal(t, "octo@example.com", profile.Email)
}

func TestExchangeAuthCodeBadCode(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bad_verification_code"}`, http.StatusUnauthorized)
	}))
	defer provider.Close()

	p := NewGitHubProviderForTesting("id", "secret", provider.URL+"/token", provider.URL+"/user")

	_, err := p.ExchangeAuthCode(context.Background(), "expired-code")
	assert.Error(t, err)
}

func TestAuthCodeURL(t *testing.T) {
	p := NewGitHubProvider("client-id", "client-secret", "https://example.com/auth/github/callback")

	u := p.AuthCodeURL("state-token")
	assert.True(t, strings.HasPrefix(u, "https://github.com/login/oauth/authorize"))
	assert.Contains(t, u, "client_id=client-id")
	assert.Contains(t, u, "state=state-token")
}
