package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(withGZip)
	router.Use(h.withHashing)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.withSession)

	router.Get("/", h.health)
	router.Get("/version", h.getServerVersion)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/signup", h.register)
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
		r.Delete("/logout", h.logout)
		r.Get("/me", h.me)
		r.Get("/check_session", h.checkSession)
	})

	router.Route("/notes", func(r chi.Router) {
		r.Get("/", h.listNotes)
		r.Post("/", h.createNote)
		r.Get("/{id}", h.getNote)
		r.Put("/{id}", h.updateNote)
		r.Patch("/{id}", h.updateNote)
		r.Delete("/{id}", h.deleteNote)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
