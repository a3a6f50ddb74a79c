package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	// set before mounting so the sub-routers inherit them
	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.methodNotAllowed(router))

	router.Route("/users", func(r chi.Router) {
		// routes without authorization
		r.Post("/loginUser", h.login)
		r.Post("/registerUser", h.register)
		r.With(h.rateLimit(h.forgotLimiter)).Post("/forgot-password", h.forgotPassword)
		r.Post("/reset-password/{token}", h.resetPassword)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/logoutUser", h.logout)
			r.Get("/getProfile", h.profile)
		})
	})

	router.Route("/clients", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.listClients)
		r.Post("/", h.createClient)
		r.Get("/email/{email}", h.getClientByEmail)
		r.Get("/{id}", h.getClient)
		r.Put("/{id}", h.replaceClient)
		r.Patch("/{id}", h.patchClient)
		r.Delete("/{id}", h.deleteClient)
	})

	router.Handle("/metrics", h.metrics.handler())

	return router
}
