// This file contains the JSON API handlers:
//   - POST /api/bmi        — Calculate BMI from a JSON body
//   - GET  /api/categories — List the category table
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dlfelps/bmi-calculator/internal/models"
	"github.com/dlfelps/bmi-calculator/internal/services"
)

// CalculatorHandler handles the JSON calculation endpoints.
type CalculatorHandler struct{}

// NewCalculatorHandler creates a CalculatorHandler.
func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

// Calculate handles POST /api/bmi.
//
// It:
//  1. Decodes and validates the request body
//  2. Runs the calculator on the measurement in meters
//  3. Maps InvalidInputError to 422 and anything else to 500
func (h *CalculatorHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req models.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "invalid JSON in request body")
		return
	}

	m, errs := req.Validate()
	if len(errs) > 0 {
		writeError(w, r, http.StatusUnprocessableEntity, errs...)
		return
	}

	result, err := services.CalculateMeasurement(m)
	if err != nil {
		var invalid *services.InvalidInputError
		if errors.As(err, &invalid) {
			writeError(w, r, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeSuccess(w, r, http.StatusOK, models.CalculateResponse{
		Measurement: m,
		BMIResult:   result,
		Chart:       services.BuildChart(result.BMI),
	}, nil)
}

// categoryView is a Band as exposed over JSON. The last band's upper bound
// is infinite, which JSON cannot encode, so it is omitted.
type categoryView struct {
	Category models.Category `json:"category"`
	Lower    float64         `json:"lower"`
	Upper    *float64        `json:"upper,omitempty"`
	Color    string          `json:"color"`
	Emoji    string          `json:"emoji"`
}

// Categories handles GET /api/categories — the ordered threshold table.
func (h *CalculatorHandler) Categories(w http.ResponseWriter, r *http.Request) {
	views := make([]categoryView, 0, len(services.Bands))
	lower := 0.0
	for i, b := range services.Bands {
		v := categoryView{Category: b.Category, Lower: lower, Color: b.Color, Emoji: b.Emoji}
		if i < len(services.Bands)-1 {
			upper := b.Upper
			v.Upper = &upper
		}
		views = append(views, v)
		lower = b.Upper
	}

	writeSuccess(w, r, http.StatusOK, views, map[string]any{
		"count": len(views),
	})
}
