package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/davidosoro/userhub/pkg/accounts"
	"github.com/davidosoro/userhub/pkg/audit"
	"github.com/davidosoro/userhub/pkg/server"
	"github.com/davidosoro/userhub/pkg/server/middleware"
)

// LoginRequest represents the body of POST /login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents the JSON response when token issuance is enabled
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// RegisterLoginEndpoint registers the authentication endpoint
func RegisterLoginEndpoint(s *server.Server) {
	// POST /login - Authenticate with email and password
	s.Router.HandleFunc("/login", handleLogin(s.Accounts)).Methods("POST")
}

func parseLogin(r *http.Request) (LoginRequest, error) {
	var req LoginRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		err := json.NewDecoder(r.Body).Decode(&req)
		return req, err
	}

	if err := r.ParseForm(); err != nil {
		return req, err
	}
	req.Email = r.PostFormValue("email")
	req.Password = r.PostFormValue("password")
	return req, nil
}

func handleLogin(accountsService *accounts.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseLogin(r)
		if err != nil {
			respondWithText(w, http.StatusBadRequest, "malformed request body")
			return
		}

		result, err := accountsService.Authenticate(req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, accounts.ErrUserNotFound):
				audit.Log(audit.LoginEvent{
					Email:        req.Email,
					ClientIP:     middleware.ClientIP(r),
					ErrorMessage: "unknown email",
				})
				respondWithText(w, http.StatusBadRequest, "User not found.")
			case errors.Is(err, accounts.ErrInvalidCredentials):
				audit.Log(audit.LoginEvent{
					Email:        req.Email,
					ClientIP:     middleware.ClientIP(r),
					ErrorMessage: "bad password",
				})
				respondWithText(w, http.StatusBadRequest, "Invalid password.")
			default:
				slog.Error("login failed", "error", err)
				respondWithText(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		audit.Log(audit.LoginEvent{
			Email:    req.Email,
			ClientIP: middleware.ClientIP(r),
			Success:  true,
		})

		greeting := fmt.Sprintf("Welcome back, %s!", result.User.Name)
		if result.Token != "" {
			respondWithJSON(w, http.StatusOK, LoginResponse{
				Message: greeting,
				Token:   result.Token,
			})
			return
		}

		respondWithText(w, http.StatusOK, greeting)
	}
}
