package endpoints

import (
	"net/http"

	"github.com/davidosoro/userhub/pkg/server"
	"github.com/davidosoro/userhub/pkg/server/store"
)

// HealthResponse represents the response from /health
type HealthResponse struct {
	OK       bool   `json:"ok"`
	Database string `json:"database"`
}

// RegisterStatusEndpoints registers the form page and health endpoints
func RegisterStatusEndpoints(s *server.Server) {
	healthStore := s.Health

	// GET / - Registration form page (no auth required)
	s.Router.HandleFunc("/", handleIndex()).Methods("GET")

	// GET /health - Database connectivity check
	s.Router.HandleFunc("/health", handleHealth(healthStore)).Methods("GET")
}

func handleIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		html := `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width">
    <title>UserHub</title>
  </head>
  <body>

    <main>
      <h1>Register</h1>
      <form action="/submit" method="POST">
        <label for="name">Name</label>
        <input type="text" id="name" name="name">

        <label for="email">Email</label>
        <input type="email" id="email" name="email">

        <label for="age">Age</label>
        <input type="number" id="age" name="age">

        <label for="password">Password</label>
        <input type="password" id="password" name="password">

        <button type="submit">Submit</button>
      </form>

      <h1>Login</h1>
      <form action="/login" method="POST">
        <label for="login-email">Email</label>
        <input type="email" id="login-email" name="email">

        <label for="login-password">Password</label>
        <input type="password" id="login-password" name="password">

        <button type="submit">Login</button>
      </form>
    </main>

  </body>
</html>
`

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}
}

func handleHealth(healthStore store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := healthStore.CheckConnectivity(); err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, HealthResponse{
				OK:       false,
				Database: "unreachable",
			})
			return
		}

		respondWithJSON(w, http.StatusOK, HealthResponse{
			OK:       true,
			Database: "ok",
		})
	}
}
