package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
}

type AccountHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
	UpdateSelf(w http.ResponseWriter, r *http.Request)
	DeleteSelf(w http.ResponseWriter, r *http.Request)
	CheckToken(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health  HealthHandler
	Account AccountHandler

	RequestIDMW func(http.Handler) http.Handler
	MetricsMW   func(http.Handler) http.Handler
	AuthMW      func(http.Handler) http.Handler
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Account == nil {
		return nil, fmt.Errorf("nil Account handler")
	}
	if deps.RequestIDMW == nil {
		return nil, fmt.Errorf("nil RequestID middleware")
	}
	if deps.MetricsMW == nil {
		return nil, fmt.Errorf("nil Metrics middleware")
	}
	if deps.AuthMW == nil {
		return nil, fmt.Errorf("nil Auth middleware")
	}

	r := chi.NewRouter()
	r.Use(deps.RequestIDMW)
	r.Use(deps.MetricsMW)

	r.Get("/healthz", deps.Health.Healthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Post("/auth/login", deps.Account.Login)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", deps.Account.Register)
		r.Get("/", deps.Account.ListUsers)

		// /users/token must register before /users/{id}; chi routes
		// the literal segment first either way, but keeping the order
		// explicit avoids surprises when routes are reshuffled.
		r.With(deps.AuthMW).Get("/token", deps.Account.CheckToken)
		r.Get("/{id}", deps.Account.GetUser)

		r.With(deps.AuthMW).Put("/", deps.Account.UpdateSelf)
		r.With(deps.AuthMW).Delete("/", deps.Account.DeleteSelf)
	})

	return r, nil
}
