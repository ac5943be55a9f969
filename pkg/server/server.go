package server

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/davidosoro/userhub/pkg/accounts"
	"github.com/davidosoro/userhub/pkg/cache"
	"github.com/davidosoro/userhub/pkg/config"
	"github.com/davidosoro/userhub/pkg/oauth"
	"github.com/davidosoro/userhub/pkg/server/middleware"
	"github.com/davidosoro/userhub/pkg/server/store"
	"github.com/davidosoro/userhub/pkg/weather"
)

type Server struct {
	Users    store.UsersStore
	Health   store.HealthStore
	Accounts *accounts.Service
	Cache    *cache.SnapshotCache
	Weather  weather.Client
	OAuth    oauth.Provider
	Limiter  middleware.Limiter
	Config   *config.Config
	Router   *mux.Router
	DB       *gorm.DB
	srv      *http.Server
}

func NewServer(
	users store.UsersStore,
	health store.HealthStore,
	accountsService *accounts.Service,
	snapshotCache *cache.SnapshotCache,
	weatherClient weather.Client,
	oauthProvider oauth.Provider,
	limiter middleware.Limiter,
	cfg *config.Config,
	db *gorm.DB,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Users:    users,
		Health:   health,
		Accounts: accountsService,
		Cache:    snapshotCache,
		Weather:  weatherClient,
		OAuth:    oauthProvider,
		Limiter:  limiter,
		Config:   cfg,
		Router:   router,
		DB:       db,
		srv:      srv,
	}
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the listener
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
