package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jsvoboda/accounts-api/internal/api"
	apiMiddleware "github.com/jsvoboda/accounts-api/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware. Reads are public; mutating routes require the caller to
// authenticate as the account's owner.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	accountHandler := api.NewAccountHandler(app.accountService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.accountStore, app.verifier)

	r.Route("/api", func(r chi.Router) {
		r.Post("/accounts", accountHandler.Create)
		r.Get("/accounts", accountHandler.List)
		r.Get("/accounts/{id}", accountHandler.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Put("/accounts/{id}", accountHandler.Update)
			r.Delete("/accounts/{id}", accountHandler.Delete)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
