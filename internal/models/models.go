// Package models defines the core data types used throughout the BMI
// calculator: measurements, height units, categories, results, chart data,
// and the JSON request/response types used by the API.
//
// Go doesn't have enums, so categories and units are string-backed types with
// a set of constants and an IsValid method.
package models

import (
	"fmt"
	"math"
	"strings"
)

// ---------------------------------------------------------------------------
// HeightUnit enum
// ---------------------------------------------------------------------------

// HeightUnit is the unit the user entered their height in.
type HeightUnit string

const (
	// HeightUnitMeters means the height value is already in meters.
	HeightUnitMeters HeightUnit = "m"

	// HeightUnitCentimeters means the height value must be divided by 100.
	HeightUnitCentimeters HeightUnit = "cm"
)

// IsValid reports whether u is a recognized unit.
func (u HeightUnit) IsValid() bool {
	switch u {
	case HeightUnitMeters, HeightUnitCentimeters:
		return true
	default:
		return false
	}
}

// Label returns the human-readable name shown in the unit selector.
func (u HeightUnit) Label() string {
	if u == HeightUnitCentimeters {
		return "Centimeters"
	}
	return "Meters"
}

// ToMeters converts a height expressed in u into meters.
func (u HeightUnit) ToMeters(v float64) float64 {
	if u == HeightUnitCentimeters {
		return v / 100
	}
	return v
}

// ParseHeightUnit converts user input into a HeightUnit. Matching is case
// insensitive and accepts both the short and long names. An empty string
// means meters.
func ParseHeightUnit(s string) (HeightUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "m", "meter", "meters":
		return HeightUnitMeters, nil
	case "cm", "centimeter", "centimeters":
		return HeightUnitCentimeters, nil
	default:
		return "", fmt.Errorf("unknown height unit %q: must be m or cm", s)
	}
}

// ---------------------------------------------------------------------------
// Category enum
// ---------------------------------------------------------------------------

// Category is a WHO-style classification bucket derived from a BMI value.
type Category string

const (
	CategoryUnderweight  Category = "Underweight"
	CategoryNormalWeight Category = "Normal weight"
	CategoryOverweight   Category = "Overweight"
	CategoryObese        Category = "Obese"
)

// IsValid reports whether c is one of the four known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryUnderweight, CategoryNormalWeight, CategoryOverweight, CategoryObese:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// ---------------------------------------------------------------------------
// Core domain models
// ---------------------------------------------------------------------------

// Measurement is a weight in kilograms and a height in meters.
type Measurement struct {
	Weight float64 `json:"weight_kg" yaml:"weight_kg"`
	Height float64 `json:"height_m" yaml:"height_m"`
}

// Valid reports whether both values are finite and strictly positive.
func (m Measurement) Valid() bool {
	return positive(m.Weight) && positive(m.Height)
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// BMIResult is the outcome of one calculation. It is computed fresh on every
// request and never stored.
type BMIResult struct {
	BMI      float64  `json:"bmi" yaml:"bmi"`
	Category Category `json:"category" yaml:"category"`
	Color    string   `json:"color" yaml:"color"`
	Emoji    string   `json:"emoji" yaml:"emoji"`
}

// ChartBar is one horizontal bar of the BMI chart.
type ChartBar struct {
	Label   string  `json:"label"`
	Bound   float64 `json:"bound"`
	Color   string  `json:"color"`
	Percent float64 `json:"percent"`
}

// Chart compares a BMI against the upper bound of each category. Percentages
// are relative to ScaleMax so the page can draw it with plain CSS widths.
type Chart struct {
	Bars          []ChartBar `json:"bars"`
	Marker        float64    `json:"marker"`
	MarkerPercent float64    `json:"marker_percent"`
	ScaleMax      float64    `json:"scale_max"`
}

// ---------------------------------------------------------------------------
// API request and response types
// ---------------------------------------------------------------------------

// CalculateRequest is the JSON body accepted by POST /api/bmi.
type CalculateRequest struct {
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
}

// Validate checks the request and returns the measurement in meters. All
// problems are collected so the client sees everything that is wrong at once.
func (r CalculateRequest) Validate() (Measurement, []string) {
	var errs []string

	unit, err := ParseHeightUnit(r.Unit)
	if err != nil {
		errs = append(errs, err.Error())
	}
	if !positive(r.Weight) {
		errs = append(errs, "weight must be a positive number")
	}
	if !positive(r.Height) {
		errs = append(errs, "height must be a positive number")
	}

	return Measurement{Weight: r.Weight, Height: unit.ToMeters(r.Height)}, errs
}

// CalculateResponse is the data payload returned by POST /api/bmi.
type CalculateResponse struct {
	Measurement Measurement `json:"measurement"`
	BMIResult
	Chart Chart `json:"chart"`
}

// APIResponse is the envelope wrapped around every JSON response so clients
// always know where to find data, metadata, and errors.
type APIResponse struct {
	Data   interface{}    `json:"data"`
	Meta   map[string]any `json:"meta"`
	Errors []APIError     `json:"errors"`
}

// APIError represents a single error message in the response envelope.
type APIError struct {
	Message string `json:"message"`
}

// NewSuccessResponse builds a successful response. A nil meta becomes an
// empty object so the JSON always contains "meta": {}.
func NewSuccessResponse(data interface{}, meta map[string]any) APIResponse {
	if meta == nil {
		meta = map[string]any{}
	}
	return APIResponse{
		Data:   data,
		Meta:   meta,
		Errors: []APIError{},
	}
}

// NewErrorResponse builds an error response with one or more messages.
func NewErrorResponse(messages ...string) APIResponse {
	errors := make([]APIError, 0, len(messages))
	for _, msg := range messages {
		errors = append(errors, APIError{Message: msg})
	}
	return APIResponse{
		Data:   nil,
		Meta:   map[string]any{},
		Errors: errors,
	}
}
