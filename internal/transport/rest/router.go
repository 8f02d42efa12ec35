package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/fritter-backend/internal/config"
	"github.com/heartmarshall/fritter-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RouterDeps holds everything NewRouter wires together. RateLimiter may be
// nil to disable rate limiting.
type RouterDeps struct {
	Logger      *slog.Logger
	CORS        config.CORSConfig
	RateLimiter *middleware.RateLimiter
	Tokens      tokenValidator

	Health    *HealthHandler
	Users     *UserHandler
	Credits   *CreditHandler
	Cooldowns *CooldownHandler
	Scheduled *ScheduledHandler
	Freets    *FreetHandler

	Reflections *ReflectionHandler
}

// NewRouter builds the HTTP handler. Probes and /metrics sit outside /api
// and skip CORS, rate limiting and bearer auth.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.Metrics)

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.CORS(d.CORS))
		if d.RateLimiter != nil {
			r.Use(d.RateLimiter.Limit())
		}
		r.Use(middleware.Auth(d.Tokens))

		r.Route("/users", func(r chi.Router) {
			r.Post("/", d.Users.Register)
			r.Put("/", d.Users.UpdateProfile)
			r.Delete("/", d.Users.DeleteMe)
			r.Post("/session", d.Users.Login)
			r.Get("/{userId}", d.Users.Get)
		})

		r.Route("/credits", func(r chi.Router) {
			r.Get("/", d.Credits.GetMine)
			r.Put("/", d.Credits.Exchange)
		})

		r.Route("/cooldowns", func(r chi.Router) {
			r.Get("/{freetId}", d.Cooldowns.Get)
			r.Put("/{freetId}", d.Cooldowns.SetProvocative)
		})

		r.Route("/scheduledfreets", func(r chi.Router) {
			r.Get("/", d.Scheduled.List)
			r.Post("/", d.Scheduled.Create)
			r.Put("/{id}", d.Scheduled.Update)
			r.Delete("/{id}", d.Scheduled.Delete)
		})

		r.Route("/freets", func(r chi.Router) {
			r.Get("/", d.Freets.List)
			r.Post("/", d.Freets.Create)
			r.Delete("/{id}", d.Freets.Delete)
			r.Get("/{id}/reflections", d.Reflections.ListByFreet)
		})

		r.Route("/reflections", func(r chi.Router) {
			r.Get("/", d.Reflections.ListForUser)
			r.Post("/", d.Reflections.Create)
			r.Put("/{id}", d.Reflections.Update)
			r.Delete("/{id}", d.Reflections.Delete)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "NotFound", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "MethodNotAllowed", "method not allowed")
	})

	return r
}
