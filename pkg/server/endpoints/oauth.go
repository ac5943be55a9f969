package endpoints

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/davidosoro/userhub/pkg/oauth"
	"github.com/davidosoro/userhub/pkg/server"
)

const oauthStateCookie = "userhub_oauth_state"

// RegisterOAuthEndpoints registers the GitHub OAuth redirect and callback.
// Both routes 404 when no provider is configured.
func RegisterOAuthEndpoints(s *server.Server) {
	if s.OAuth == nil {
		return
	}

	// GET /auth/github - Redirect to the provider's consent page
	s.Router.HandleFunc("/auth/github", handleOAuthRedirect(s.OAuth)).Methods("GET")

	// GET /auth/github/callback - Exchange the code and greet the profile
	s.Router.HandleFunc("/auth/github/callback", handleOAuthCallback(s.OAuth)).Methods("GET")
}

func newOAuthState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func handleOAuthRedirect(provider oauth.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := newOAuthState()
		if err != nil {
			slog.Error("generating oauth state failed", "error", err)
			respondWithText(w, http.StatusInternalServerError, "internal server error")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     oauthStateCookie,
			Value:    state,
			Path:     "/auth/github",
			MaxAge:   300,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		http.Redirect(w, r, provider.AuthCodeURL(state), http.StatusFound)
	}
}

func handleOAuthCallback(provider oauth.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := r.URL.Query().Get("state")
		cookie, err := r.Cookie(oauthStateCookie)
		if err != nil || state == "" || cookie.Value != state {
			respondWithText(w, http.StatusBadRequest, "invalid oauth state")
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			respondWithText(w, http.StatusBadRequest, "missing authorization code")
			return
		}

		profile, err := provider.ExchangeAuthCode(r.Context(), code)
		if err != nil {
			slog.Error("oauth code exchange failed", "error", err)
			respondWithText(w, http.StatusInternalServerError, "authentication with GitHub failed")
			return
		}

		identity := profile.Name
		if identity == "" {
			identity = profile.Login
		}
		respondWithText(w, http.StatusOK, fmt.Sprintf("Welcome back, %s!", identity))
	}
}
