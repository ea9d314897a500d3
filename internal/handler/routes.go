package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"taskboard/internal/auth"
	"taskboard/internal/service"
)

// NewRouter builds the full route tree: public auth endpoints, the
// bearer-protected /tasks subtree, and the health check.
func NewRouter(authSvc *service.AuthService, taskSvc *service.TaskService, tokens *auth.TokenIssuer) *chi.Mux {
	authHandler := NewAuthHandler(authSvc)
	taskHandler := NewTaskHandler(taskSvc)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/healthz", HandleHealthz)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.HandleRegister)
		r.Post("/login", authHandler.HandleLogin)
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Use(RequireAuth(tokens))

		r.Post("/", taskHandler.HandleCreate)
		r.Get("/", taskHandler.HandleList)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", taskHandler.HandleGet)
			r.Put("/", taskHandler.HandleUpdate)
			r.Delete("/", taskHandler.HandleDelete)
		})
	})

	return r
}
