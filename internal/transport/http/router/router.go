package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
	Readyz(w http.ResponseWriter, r *http.Request)
}

type AuthHandler interface {
	// Admin auth
	AdminSetupTotp(w http.ResponseWriter, r *http.Request)
	AdminLogin(w http.ResponseWriter, r *http.Request)
	AdminCreate(w http.ResponseWriter, r *http.Request)

	// Provider auth
	NgoRegister(w http.ResponseWriter, r *http.Request)
	NgoLogin(w http.ResponseWriter, r *http.Request)
	LawyerRegister(w http.ResponseWriter, r *http.Request)
	LawyerLogin(w http.ResponseWriter, r *http.Request)

	// Individual auth
	IndividualRegister(w http.ResponseWriter, r *http.Request)
	IndividualLogin(w http.ResponseWriter, r *http.Request)

	Me(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
	Pending(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
}

type ConnectHandler interface {
	Users(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Assigned(w http.ResponseWriter, r *http.Request)
	Mine(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
	Connections(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health  HealthHandler
	Auth    AuthHandler
	Admin   AdminHandler
	Connect ConnectHandler

	RequestIDMW func(http.Handler) http.Handler
	MetricsMW   func(http.Handler) http.Handler
	AuthMW      func(http.Handler) http.Handler

	// Role gates layered on top of AuthMW.
	AdminMW      func(http.Handler) http.Handler
	IndividualMW func(http.Handler) http.Handler
	ProviderMW   func(http.Handler) http.Handler
	VerifiedMW   func(http.Handler) http.Handler

	// Throttle for the credential-bearing auth endpoints.
	AuthRateMW func(http.Handler) http.Handler
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Auth == nil {
		return nil, fmt.Errorf("nil Auth handler")
	}
	if deps.Admin == nil {
		return nil, fmt.Errorf("nil Admin handler")
	}
	if deps.Connect == nil {
		return nil, fmt.Errorf("nil Connect handler")
	}
	if deps.AuthMW == nil {
		return nil, fmt.Errorf("nil Auth middleware")
	}
	if deps.AdminMW == nil || deps.IndividualMW == nil || deps.ProviderMW == nil {
		return nil, fmt.Errorf("nil role middleware")
	}
	if deps.VerifiedMW == nil {
		return nil, fmt.Errorf("nil Verified middleware")
	}

	r := chi.NewRouter()
	if deps.RequestIDMW != nil {
		r.Use(deps.RequestIDMW)
	}
	if deps.MetricsMW != nil {
		r.Use(deps.MetricsMW)
	}

	r.Get("/healthz", deps.Health.Healthz)
	r.Get("/readyz", deps.Health.Readyz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		if deps.AuthRateMW != nil {
			r.Use(deps.AuthRateMW)
		}

		r.Route("/admin", func(r chi.Router) {
			r.Post("/setup-totp", deps.Auth.AdminSetupTotp)
			r.Post("/login", deps.Auth.AdminLogin)
			r.With(deps.AuthMW, deps.AdminMW).Post("/create", deps.Auth.AdminCreate)
		})

		r.Route("/ngo", func(r chi.Router) {
			r.Post("/register", deps.Auth.NgoRegister)
			r.Post("/login", deps.Auth.NgoLogin)
		})

		r.Route("/lawyer", func(r chi.Router) {
			r.Post("/register", deps.Auth.LawyerRegister)
			r.Post("/login", deps.Auth.LawyerLogin)
		})

		r.Route("/individual", func(r chi.Router) {
			r.Post("/register", deps.Auth.IndividualRegister)
			r.Post("/login", deps.Auth.IndividualLogin)
		})

		r.With(deps.AuthMW).Get("/me", deps.Auth.Me)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(deps.AuthMW)
		r.Use(deps.AdminMW)

		r.Get("/stats", deps.Admin.Stats)
		r.Get("/pending", deps.Admin.Pending)
		r.Post("/verify", deps.Admin.Verify)
	})

	r.With(deps.AuthMW, deps.IndividualMW, deps.VerifiedMW).Get("/users", deps.Connect.Users)

	r.Route("/requests", func(r chi.Router) {
		r.Use(deps.AuthMW)

		r.With(deps.IndividualMW, deps.VerifiedMW).Post("/", deps.Connect.Create)
		r.With(deps.ProviderMW, deps.VerifiedMW).Get("/assigned", deps.Connect.Assigned)
		r.With(deps.IndividualMW, deps.VerifiedMW).Get("/mine", deps.Connect.Mine)
		r.With(deps.ProviderMW, deps.VerifiedMW).Put("/{id}", deps.Connect.Resolve)
		r.With(deps.VerifiedMW).Get("/connections", deps.Connect.Connections)
	})

	return r, nil
}
