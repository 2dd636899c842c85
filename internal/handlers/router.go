// This file registers every route on a ServeMux.
//
// Since Go 1.22, ServeMux patterns can include the HTTP method
// ("POST /calculate"). A request with the wrong method gets a 405 Method Not
// Allowed automatically, and the more specific pattern wins when two match:
// "GET /healthz" beats the catch-all "GET /".
package handlers

import (
	"net/http"

	"github.com/dlfelps/bmi-calculator/internal/config"
)

// NewRouter builds the application's handler with all routes and middleware.
// The serve command and the tests both use it so they always agree on the
// routes.
//
// It returns http.Handler (an interface) rather than *http.ServeMux, since
// the middleware chain wraps the mux and callers only ever need ServeHTTP.
func NewRouter(form config.FormConfig) http.Handler {
	page := NewPageHandler(form)
	calc := NewCalculatorHandler()

	mux := http.NewServeMux()

	// HTML form
	mux.HandleFunc("GET /", page.Index)
	mux.HandleFunc("POST /calculate", page.Calculate)
	mux.HandleFunc("GET /reset", page.Reset)
	mux.HandleFunc("POST /reset", page.Reset)

	// JSON API
	mux.HandleFunc("POST /api/bmi", calc.Calculate)
	mux.HandleFunc("GET /api/categories", calc.Categories)

	// Health check
	mux.HandleFunc("GET /healthz", HealthCheck)

	// Outermost first: every request gets an ID before it is logged, and
	// panics are caught inside the logger so they still produce a log line.
	return RequestID(Logging(Recover(mux)))
}
