package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/todo-api/internal/api"
	"github.com/phrazzld/todo-api/internal/api/middleware"
	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/service/auth"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// routerDeps is everything newRouter needs to mount the API.
type routerDeps struct {
	Config     *config.Config
	Logger     *slog.Logger
	DB         store.TxBeginner
	Users      store.UserStore
	Identities store.IdentityStore
	Tasks      store.TaskStore
	JWT        auth.JWTService
	Registry   *prometheus.Registry
}

func newRouter(deps routerDeps) (http.Handler, error) {
	authLimiter := func(next http.Handler) http.Handler { return next }
	if deps.Config.RateLimit.Enabled {
		limiter, err := middleware.NewIPRateLimiter(deps.Config.RateLimit.AuthRate)
		if err != nil {
			return nil, err
		}
		authLimiter = limiter
	}

	authHandler := api.NewAuthHandler(deps.DB, deps.Users, deps.Identities, deps.JWT, deps.Logger)
	taskHandler := api.NewTaskHandler(deps.Tasks, deps.Logger)
	userHandler := api.NewUserHandler(deps.Users, deps.Logger)
	authMiddleware := middleware.NewAuthMiddleware(deps.JWT)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Trace(deps.Logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.NewSecure(middleware.SecureOptions(deps.Config.Server.LogLevel == "debug")))
	if deps.Config.Metrics.Enabled {
		r.Use(middleware.NewMetrics(deps.Registry).Handler)
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authLimiter)
			r.Post("/auth/signup", authHandler.SignUp)
			r.Post("/auth/signin", authHandler.SignIn)
		})

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/tasks", taskHandler.CreateTask)
			r.Get("/tasks", taskHandler.ListTasks)
			r.Put("/tasks/{id}", taskHandler.UpdateTask)
			r.Patch("/tasks/{id}/complete", taskHandler.CompleteTask)
			r.Patch("/tasks/{id}/uncomplete", taskHandler.UncompleteTask)
			r.Delete("/tasks/{id}", taskHandler.DeleteTask)

			r.Get("/users/{id}", userHandler.GetUser)
			r.Patch("/users", userHandler.UpdateCurrentUser)
			r.Delete("/users", userHandler.DeleteCurrentUser)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "", "Resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "", "Method not allowed")
	})

	return r, nil
}
