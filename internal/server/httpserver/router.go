package httpserver

import (
	"net/http"

	"github.com/dmitrijs2005/calckeeper/internal/logging"
)

// NewRouter registers every route on a ServeMux and wraps it in the
// request-id, logging and recover middleware.
func NewRouter(h *Handlers, l logging.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.Root)
	mux.HandleFunc("GET /health", h.Health)

	// Users
	mux.HandleFunc("POST /register", h.Register)
	mux.HandleFunc("POST /users/register", h.Register)
	mux.HandleFunc("POST /login", h.Login)
	mux.HandleFunc("POST /users/login", h.Login)

	// Calculations
	mux.HandleFunc("GET /calculations", h.BrowseCalculations)
	mux.HandleFunc("GET /calculations/{$}", h.BrowseCalculations)
	mux.HandleFunc("POST /calculations", h.AddCalculation)
	mux.HandleFunc("POST /calculations/{$}", h.AddCalculation)
	mux.HandleFunc("GET /calculations/{id}", h.ReadCalculation)
	mux.HandleFunc("PUT /calculations/{id}", h.EditCalculation)
	mux.HandleFunc("PATCH /calculations/{id}", h.EditCalculation)
	mux.HandleFunc("DELETE /calculations/{id}", h.DeleteCalculation)

	l = l.With("module", "http_access")

	return WithRequestID(WithLogging(l, WithRecover(l, mux)))
}
