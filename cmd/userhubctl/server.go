package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/davidosoro/userhub/pkg/accounts"
	"github.com/davidosoro/userhub/pkg/cache"
	"github.com/davidosoro/userhub/pkg/config"
	"github.com/davidosoro/userhub/pkg/db"
	"github.com/davidosoro/userhub/pkg/oauth"
	"github.com/davidosoro/userhub/pkg/server"
	"github.com/davidosoro/userhub/pkg/server/endpoints"
	"github.com/davidosoro/userhub/pkg/server/middleware"
	gormstore "github.com/davidosoro/userhub/pkg/server/store/gorm"
	"github.com/davidosoro/userhub/pkg/sweep"
	"github.com/davidosoro/userhub/pkg/weather"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "3000"
}

func defaultPortInt() int {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return 3000
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the UserHub application server",
	Long: `Run the UserHub application server.

Requires the DATABASE_URL environment variable. Redis, the weather upstream
and GitHub OAuth are optional; routes that need a missing collaborator
degrade or are not registered.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Validate required environment variables first (fail fast)
		if os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		cfg := config.Get()
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, "Invalid configuration:", err)
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		gormDB, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		usersStore := gormstore.NewUsersStore(gormDB)
		healthStore := gormstore.NewHealthStore(gormDB)

		accountsService := accounts.NewService(usersStore, accounts.Config{
			EnforceUniqueEmail: cfg.EnforceUniqueEmail,
			IssueLoginTokens:   cfg.IssueLoginTokens,
			TokenKey:           []byte(os.Getenv("USERHUB_TOKEN_KEY")),
			TokenTTL:           cfg.LoginTokenTTL(),
		})

		// With no Redis the listing goes straight to the store and rate
		// limits are enforced in-process
		var snapshotCache *cache.SnapshotCache
		var limiter middleware.Limiter = middleware.NewMemoryLimiter()
		if cfg.RedisAddr != "" {
			redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
			snapshotCache = cache.New(redisClient, cache.SubmissionsKey)
			limiter = middleware.NewRedisLimiter(redisClient)
			log.Println("Using Redis at", cfg.RedisAddr)
		} else {
			log.Println("No Redis configured; caching disabled, in-process rate limits")
		}

		weatherClient := weather.NewHTTPClient(cfg.WeatherAPIURL, cfg.WeatherAPIKey)

		var oauthProvider oauth.Provider
		if cfg.OAuthEnabled() {
			oauthProvider = oauth.NewGitHubProvider(
				cfg.GitHubClientID,
				cfg.GitHubClientSecret,
				cfg.GitHubRedirectURL,
			)
		}

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		s := server.NewServer(
			usersStore,
			healthStore,
			accountsService,
			snapshotCache,
			weatherClient,
			oauthProvider,
			limiter,
			cfg,
			gormDB,
			host,
			port,
		)

		endpoints.RegisterAll(s)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		sweeper := sweep.New(usersStore, cfg.SweepEvery(), cfg.RetentionMaxAge())
		go sweeper.Start(ctx)

		// configuration apply signals a reload with SIGHUP
		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		go func() {
			for range hup {
				log.Println("Reloading configuration...")
				if err := config.Reload(); err != nil {
					log.Println("Config reload failed:", err)
				}
			}
		}()

		go func() {
			log.Printf("Running server at http://%s:%s...\n", host, port)
			if err := s.Start(); err != nil {
				log.Println("Server stopped:", err)
			}
		}()

		<-ctx.Done()

		log.Println("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			log.Println("Shutdown error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
