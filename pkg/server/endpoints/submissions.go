package endpoints

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/davidosoro/userhub/pkg/accounts"
	"github.com/davidosoro/userhub/pkg/audit"
	"github.com/davidosoro/userhub/pkg/model"
	"github.com/davidosoro/userhub/pkg/server"
	"github.com/davidosoro/userhub/pkg/server/middleware"
	"github.com/davidosoro/userhub/pkg/server/store"
)

// SubmissionRequest represents the body of POST /submit. Age arrives as a
// string from form posts and as a number from JSON clients.
type SubmissionRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Age      int    `json:"age"`
	Password string `json:"password"`
}

// RegisterSubmissionsEndpoints registers the registration and listing endpoints
func RegisterSubmissionsEndpoints(s *server.Server) {
	// POST /submit - Register a user (form-encoded or JSON body)
	s.Router.HandleFunc("/submit", handleSubmit(s.Accounts)).Methods("POST")

	// GET /api/submissions - Cached listing of registered users
	s.Router.HandleFunc("/api/submissions", handleListSubmissions(s)).Methods("GET")

	// DELETE /api/submissions/{id} - Remove a record; absent IDs are a no-op
	s.Router.HandleFunc("/api/submissions/{id}", handleDeleteSubmission(s.Users)).Methods("DELETE")
}

func parseSubmission(r *http.Request) (SubmissionRequest, error) {
	var req SubmissionRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		err := json.NewDecoder(r.Body).Decode(&req)
		return req, err
	}

	if err := r.ParseForm(); err != nil {
		return req, err
	}
	req.Name = r.PostFormValue("name")
	req.Email = r.PostFormValue("email")
	req.Password = r.PostFormValue("password")
	// a non-numeric age stays zero and fails validation as a missing field
	req.Age, _ = strconv.Atoi(r.PostFormValue("age"))
	return req, nil
}

func handleSubmit(accountsService *accounts.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseSubmission(r)
		if err != nil {
			respondWithText(w, http.StatusBadRequest, "malformed request body")
			return
		}

		user, err := accountsService.Register(accounts.RegistrationInput{
			Name:     req.Name,
			Email:    req.Email,
			Age:      req.Age,
			Password: req.Password,
		})
		if err != nil {
			if accounts.IsValidationError(err) {
				audit.Log(audit.RegistrationEvent{
					Email:        req.Email,
					ClientIP:     middleware.ClientIP(r),
					Success:      false,
					ErrorMessage: err.Error(),
				})
				respondWithText(w, http.StatusBadRequest, err.Error())
				return
			}
			slog.Error("registration failed", "error", err)
			respondWithText(w, http.StatusInternalServerError, "internal server error")
			return
		}

		audit.Log(audit.RegistrationEvent{
			Email:    user.Email,
			ClientIP: middleware.ClientIP(r),
			Success:  true,
		})

		// model.User marshals without the password hash
		respondWithJSON(w, http.StatusCreated, user)
	}
}

func handleListSubmissions(s *server.Server) http.HandlerFunc {
	usersStore := s.Users
	snapshotCache := s.Cache
	cfg := s.Config

	return func(w http.ResponseWriter, r *http.Request) {
		if snapshotCache != nil {
			result, err := snapshotCache.Get(r.Context())
			if err != nil {
				// degrade to the store; the next successful listing repopulates
				slog.Error("submissions cache read failed", "error", err)
			} else if result.Hit {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write(result.Value)
				return
			}
		}

		users, err := usersStore.ListUsers()
		if err != nil {
			slog.Error("listing submissions failed", "error", err)
			respondWithText(w, http.StatusInternalServerError, "internal server error")
			return
		}
		if users == nil {
			users = []model.User{}
		}

		snapshot, err := json.Marshal(users)
		if err != nil {
			slog.Error("serializing submissions failed", "error", err)
			respondWithText(w, http.StatusInternalServerError, "internal server error")
			return
		}

		if snapshotCache != nil {
			if err := snapshotCache.Put(r.Context(), snapshot, cfg.CacheTTL()); err != nil {
				slog.Error("submissions cache write failed", "error", err)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(snapshot)
	}
}

func handleDeleteSubmission(usersStore store.UsersStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		id := vars["id"]

		deleted, err := usersStore.DeleteUserByID(id)
		if err != nil {
			slog.Error("deleting submission failed", "id", id, "error", err)
			respondWithText(w, http.StatusInternalServerError, "internal server error")
			return
		}

		audit.Log(audit.DeletionEvent{
			UserID:   id,
			ClientIP: middleware.ClientIP(r),
			Deleted:  deleted,
		})

		// deleting an absent record is a no-op, not an error
		w.WriteHeader(http.StatusNoContent)
	}
}
