package endpoints

import (
	"github.com/davidosoro/userhub/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoints(srv)
	RegisterSubmissionsEndpoints(srv)
	RegisterLoginEndpoint(srv)
	RegisterWeatherEndpoint(srv)
	RegisterOAuthEndpoints(srv)
}
