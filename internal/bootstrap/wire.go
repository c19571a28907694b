package bootstrap

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/baechuer/user-account-service/internal/application/account"
	"github.com/baechuer/user-account-service/internal/config"
	"github.com/baechuer/user-account-service/internal/infrastructure/db/postgres"
	"github.com/baechuer/user-account-service/internal/infrastructure/memory"
	"github.com/baechuer/user-account-service/internal/infrastructure/security"
	"github.com/baechuer/user-account-service/internal/logger"
	http_handlers "github.com/baechuer/user-account-service/internal/transport/http/handlers"
	"github.com/baechuer/user-account-service/internal/transport/http/middleware"
	"github.com/baechuer/user-account-service/internal/transport/http/response"
	"github.com/baechuer/user-account-service/internal/transport/http/router"
)

const jwtIssuer = "user-account-service"

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	NewDB func(addr string, debug bool) (*sql.DB, error)

	Migrate func(ctx context.Context, db *sql.DB) error

	NewRouter func(router.Deps) (http.Handler, error)
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	var cleanupFns []func()

	// 1) store
	// Dev without DB_ADDR runs on the in-memory store; everything else
	// requires postgres (config.Load already enforces that).
	var userRepo account.UserRepo
	if cfg.DBAddr == "" {
		logger.Logger.Warn().Msg("DB_ADDR empty; using in-memory store (dev only, data is not persisted)")
		userRepo = memory.NewUserRepo()
	} else {
		db, err := deps.NewDB(cfg.DBAddr, cfg.Env == "dev")
		if err != nil {
			return nil, nil, err
		}
		cleanupFns = append(cleanupFns, func() { _ = db.Close() })

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := deps.Migrate(ctx, db); err != nil {
			runCleanup(cleanupFns)
			return nil, nil, err
		}

		userRepo = postgres.NewUserRepo(db)
	}

	// 2) security
	logger.Logger.Info().
		Str("issuer", jwtIssuer).
		Dur("access_ttl", cfg.AccessTokenTTL).
		Msg("initializing jwt signer")
	hasher := security.NewBcryptHasher(security.HashCost)
	signer := security.NewJWTSigner(cfg.JWTSecret, jwtIssuer, cfg.AccessTokenTTL)

	// 3) service
	accountSvc := account.NewService(userRepo, hasher, signer)

	// 4) handlers + middleware
	accountH := http_handlers.NewAccountHandler(accountSvc)
	healthH := http_handlers.NewHealthHandler()

	authMW := middleware.Auth(signer, response.WriteError)

	// 5) router
	mux, err := deps.NewRouter(router.Deps{
		Health:      healthH,
		Account:     accountH,
		RequestIDMW: middleware.RequestID,
		MetricsMW:   middleware.Metrics,
		AuthMW:      authMW,
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 6) server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() {
		runCleanup(cleanupFns)
	}

	return srv, cleanup, nil
}

/*
========================
 Default deps (prod)
========================
*/

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB:      config.NewDB,
		Migrate:    postgres.Migrate,
		NewRouter:  router.New,
	}
}

/*
========================
 helpers
========================
*/

func runCleanup(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
