package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/legislate-ai/core-service/internal/application/auth"
	"github.com/legislate-ai/core-service/internal/application/connect"
	"github.com/legislate-ai/core-service/internal/config"
	"github.com/legislate-ai/core-service/internal/domain"
	"github.com/legislate-ai/core-service/internal/infrastructure/db/postgres"
	"github.com/legislate-ai/core-service/internal/infrastructure/security"
	"github.com/legislate-ai/core-service/internal/logger"
	http_handlers "github.com/legislate-ai/core-service/internal/transport/http/handlers"
	"github.com/legislate-ai/core-service/internal/transport/http/middleware"
	"github.com/legislate-ai/core-service/internal/transport/http/response"
	"github.com/legislate-ai/core-service/internal/transport/http/router"
)

const (
	bcryptCost = 12
	totpIssuer = "Legislate AI"
	jwtIssuer  = "legislate-core"
)

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

	NewDB func(addr string, debug bool) (DBCloser, error)

	NewRouter func(router.Deps) (http.Handler, error)
}

type DBCloser interface {
	Close() error
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

	// 1) db
	db, err := deps.NewDB(cfg.DBAddr, cfg.DBDebug)
	if err != nil {
		return nil, nil, err
	}

	cleanupFns := []func(){
		func() { _ = db.Close() },
	}

	sqlDB, ok := db.(*sql.DB)
	if !ok {
		runCleanup(cleanupFns)
		return nil, nil, errors.New("bootstrap: NewDB did not return *sql.DB")
	}

	// 2) schema + repos
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := postgres.EnsureSchema(ctx, sqlDB); err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	userRepo := postgres.NewUserRepo(sqlDB)
	requestRepo := postgres.NewRequestRepo(sqlDB)

	// 3) security
	hasher := security.NewBcryptHasher(bcryptCost)
	signer := security.NewJWTSigner(cfg.JWTSecret, jwtIssuer)
	totp := security.NewTotpManager(totpIssuer)

	// 4) default admin; without it no verification decisions can be made.
	if err := postgres.SeedDefaultAdmin(ctx, userRepo, hasher, cfg.AdminSeed); err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 5) services
	audit := func(action string, fields map[string]string) {
		evt := logger.Logger.Info().
			Bool("audit", true).
			Str("action", action)
		for k, v := range fields {
			evt = evt.Str(k, v)
		}
		evt.Msg("audit")
	}

	authSvc := auth.NewService(userRepo, hasher, signer, totp, auth.Config{
		TokenTTL:      cfg.TokenTTL,
		SeedAdminName: cfg.AdminSeed.AdminName,
	}).WithAudit(audit)

	connectSvc := connect.NewService(requestRepo, userRepo).WithAudit(audit)

	// 6) handlers + middleware
	authH := http_handlers.NewAuthHandler(authSvc)
	adminH := http_handlers.NewAdminHandler(authSvc)
	connectH := http_handlers.NewConnectHandler(connectSvc)
	healthH := http_handlers.NewHealthHandler(sqlDB)

	authMW := middleware.Authenticate(signer, userRepo, response.WriteError)
	adminMW := middleware.RequireRole(response.WriteError, domain.RoleAdmin)
	individualMW := middleware.RequireRole(response.WriteError, domain.RoleIndividual)
	providerMW := middleware.RequireRole(response.WriteError, domain.RoleNgo, domain.RoleLawyer)
	verifiedMW := middleware.RequireVerified(response.WriteError)

	var authRateMW func(http.Handler) http.Handler
	if cfg.AuthRateLimit > 0 {
		authRateMW = middleware.RateLimitByIP(cfg.AuthRateLimit, cfg.AuthRateWindow, response.WriteError)
	}

	// 7) router
	mux, err := deps.NewRouter(router.Deps{
		Health:  healthH,
		Auth:    authH,
		Admin:   adminH,
		Connect: connectH,

		RequestIDMW: middleware.RequestID,
		MetricsMW:   middleware.Metrics,
		AuthMW:      authMW,

		AdminMW:      adminMW,
		IndividualMW: individualMW,
		ProviderMW:   providerMW,
		VerifiedMW:   verifiedMW,

		AuthRateMW: authRateMW,
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 8) server
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
		NewDB: func(addr string, debug bool) (DBCloser, error) {
			return config.NewDB(addr, debug)
		},
		NewRouter: func(d router.Deps) (http.Handler, error) {
			return router.New(d)
		},
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
