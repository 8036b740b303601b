package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)

	router.Handle("/metrics", promhttp.Handler())

	// JSON API
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/registration-open", h.registrationOpen)
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
		r.Post("/api/logout", h.logout)
		r.Get("/api/session", h.session)

		r.Group(func(r chi.Router) {
			r.Use(h.withSession)
			r.Post("/api/update-password", h.updatePassword)
			r.Get("/api/instance/status", h.instanceStatus)

			r.Group(func(r chi.Router) {
				r.Use(h.withAdmin)
				r.Get("/api/admin/users", h.listUsers)
				r.Post("/api/admin/users", h.addUser)
				r.Delete("/api/admin/users", h.removeUser)
				r.Post("/api/admin/promote", h.promoteUser)
			})
		})
	})

	// per-user reverse proxies; the gateway checks the session itself
	for _, gateway := range h.gateways {
		prefix := gateway.Backend().Prefix
		router.Handle(prefix, gateway)
		router.Handle(prefix+"/*", gateway)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
