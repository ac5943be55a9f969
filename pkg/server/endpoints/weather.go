package endpoints

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/davidosoro/userhub/pkg/server"
	"github.com/davidosoro/userhub/pkg/server/middleware"
	"github.com/davidosoro/userhub/pkg/weather"
)

// RegisterWeatherEndpoint registers the rate-limited weather proxy
func RegisterWeatherEndpoint(s *server.Server) {
	cfg := s.Config

	handler := middleware.RateLimit(
		s.Limiter,
		cfg.RateLimitRequests,
		cfg.RateWindow(),
		func(r *http.Request) string { return "ip:" + middleware.ClientIP(r) },
		handleWeather(s.Weather),
	)

	// GET /weather/{city} - Weather lookup, limited per client IP
	s.Router.Handle("/weather/{city}", handler).Methods("GET")
}

func handleWeather(client weather.Client) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		city := vars["city"]

		report, err := client.FetchWeather(r.Context(), city)
		if err != nil {
			slog.Error("weather lookup failed", "city", city, "error", err)
			respondWithText(w, http.StatusInternalServerError, "Error fetching weather data")
			return
		}

		respondWithJSON(w, http.StatusOK, report)
	})
}
