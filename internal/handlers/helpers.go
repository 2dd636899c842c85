// Package handlers contains the HTTP handlers of the BMI calculator: the
// HTML form page, a small JSON API, and the middleware around them.
// Handlers are the glue between incoming requests and the calculator in the
// services package.
//
// This file provides shared helper functions used across the JSON handlers.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dlfelps/bmi-calculator/internal/models"
)

// writeJSON serializes a value to JSON and writes it with the correct
// Content-Type header and status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	// Headers must be set before WriteHeader sends them to the client.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// The status code is already sent, so all that's left is a best
		// effort error body.
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// writeSuccess writes a successful API response with the standard envelope.
// The request ID is always included in meta.
func writeSuccess(w http.ResponseWriter, r *http.Request, status int, data interface{}, meta map[string]any) {
	if meta == nil {
		meta = map[string]any{}
	}
	if id := RequestIDFrom(r.Context()); id != "" {
		meta["request_id"] = id
	}
	writeJSON(w, status, models.NewSuccessResponse(data, meta))
}

// writeError writes an error API response with the standard envelope.
func writeError(w http.ResponseWriter, r *http.Request, status int, messages ...string) {
	resp := models.NewErrorResponse(messages...)
	if id := RequestIDFrom(r.Context()); id != "" {
		resp.Meta["request_id"] = id
	}
	writeJSON(w, status, resp)
}
