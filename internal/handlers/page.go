// This file contains the HTML form handlers:
//   - GET  /          — Render the empty form with default values
//   - POST /calculate — Calculate BMI from the submitted form and render it
//   - GET  /reset     — Clear the form by redirecting back to /
package handlers

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/dlfelps/bmi-calculator/internal/config"
	"github.com/dlfelps/bmi-calculator/internal/models"
	"github.com/dlfelps/bmi-calculator/internal/services"
)

// The //go:embed directive compiles the template files into the binary, so
// the server needs nothing on disk at runtime. embed.FS behaves like a
// read-only file system rooted at this package's directory.
//
//go:embed templates/*.html
var templateFS embed.FS

// pageTemplate is parsed once at startup. template.Must panics on a parse
// error, which turns a broken template into a failure at program start
// instead of on the first request.
//
// html/template (not text/template) escapes every value according to where
// it lands in the page: HTML text, attribute, CSS, or URL. That is what keeps
// a weight like `"><script>` harmless when the form echoes it back.
var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// PageHandler serves the calculator page. It holds only the form defaults,
// which never change after startup, so one PageHandler can serve any number
// of concurrent requests without locking.
type PageHandler struct {
	defaults config.FormConfig
}

// NewPageHandler creates a PageHandler whose form is pre-filled with the
// given defaults.
func NewPageHandler(defaults config.FormConfig) *PageHandler {
	return &PageHandler{defaults: defaults}
}

type unitOption struct {
	Value    models.HeightUnit
	Label    string
	Selected bool
}

// barView and resultView carry precomputed inline styles. Values of type
// template.CSS are trusted by html/template and inserted as-is; they are only
// ever built from the fixed color table and formatted numbers.
type barView struct {
	Label string
	Style template.CSS
}

type resultView struct {
	models.BMIResult
	PanelStyle  template.CSS
	MarkerStyle template.CSS
	ScaleMax    float64
	Bars        []barView
}

// pageData is everything the template renders. Weight and Height are kept
// as the raw strings the user typed so a failed submission shows them again.
type pageData struct {
	Weight      string
	Height      string
	HeightLabel string
	HeightHelp  string
	HeightMin   string
	HeightStep  string
	Units       []unitOption
	Result      *resultView
	Error       string
}

func newPageData(weight, height string, unit models.HeightUnit) *pageData {
	d := &pageData{Weight: weight, Height: height}

	for _, u := range []models.HeightUnit{models.HeightUnitMeters, models.HeightUnitCentimeters} {
		d.Units = append(d.Units, unitOption{Value: u, Label: u.Label(), Selected: u == unit})
	}

	if unit == models.HeightUnitCentimeters {
		d.HeightLabel = "Height (cm)"
		d.HeightHelp = "Your height in centimeters (e.g., 175)."
		d.HeightMin, d.HeightStep = "1", "1"
	} else {
		d.HeightLabel = "Height (m)"
		d.HeightHelp = "Your height in meters (e.g., 1.75)."
		d.HeightMin, d.HeightStep = "0.1", "0.01"
	}
	return d
}

func newResultView(result models.BMIResult) *resultView {
	chart := services.BuildChart(result.BMI)

	bars := make([]barView, 0, len(chart.Bars))
	for _, b := range chart.Bars {
		bars = append(bars, barView{
			Label: b.Label,
			Style: template.CSS(fmt.Sprintf("width:%.2f%%;background-color:%s;", b.Percent, b.Color)),
		})
	}

	return &resultView{
		BMIResult:   result,
		PanelStyle:  template.CSS(fmt.Sprintf("background-color:%s20;border:2px solid %s;", result.Color, result.Color)),
		MarkerStyle: template.CSS(fmt.Sprintf("left:%.2f%%;", chart.MarkerPercent)),
		ScaleMax:    chart.ScaleMax,
		Bars:        bars,
	}
}

// Index handles GET / — renders the form with the configured defaults.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	// The "GET /" pattern matches every path, so anything else is a 404.
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	d := newPageData(formatNumber(h.defaults.Weight), formatNumber(h.defaults.Height), h.defaults.Unit)
	renderPage(w, http.StatusOK, d)
}

// Calculate handles POST /calculate — parses the form, runs the calculator,
// and renders the page with either the result or a user-visible error.
//
// The flow mirrors the JSON handlers:
//  1. Parse the urlencoded body (r.ParseForm fills r.PostForm)
//  2. Convert the raw strings to numbers, collecting every problem
//  3. Delegate to the services layer
//  4. Map InvalidInputError to 422 with its message, anything else to a
//     generic message, so the page always stays usable
func (h *PageHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		d := newPageData(formatNumber(h.defaults.Weight), formatNumber(h.defaults.Height), h.defaults.Unit)
		d.Error = "could not read the submitted form"
		renderPage(w, http.StatusBadRequest, d)
		return
	}

	rawWeight := strings.TrimSpace(r.PostForm.Get("weight"))
	rawHeight := strings.TrimSpace(r.PostForm.Get("height"))
	unit, unitErr := models.ParseHeightUnit(r.PostForm.Get("unit"))
	if unitErr != nil {
		unit = h.defaults.Unit
	}
	d := newPageData(rawWeight, rawHeight, unit)

	weight, height, errs := parseForm(rawWeight, rawHeight)
	if unitErr != nil {
		errs = append(errs, unitErr.Error())
	}
	if len(errs) > 0 {
		d.Error = strings.Join(errs, "; ")
		renderPage(w, http.StatusUnprocessableEntity, d)
		return
	}

	result, err := services.CalculateIn(weight, height, unit)
	if err != nil {
		var invalid *services.InvalidInputError
		if errors.As(err, &invalid) {
			d.Error = invalid.Error()
			renderPage(w, http.StatusUnprocessableEntity, d)
			return
		}
		log.Printf("calculate: unexpected error: %v", err)
		d.Error = "An unexpected error occurred."
		renderPage(w, http.StatusInternalServerError, d)
		return
	}

	d.Result = newResultView(result)
	renderPage(w, http.StatusOK, d)
}

// Reset handles GET /reset — drops whatever was entered and starts over.
//
// The server keeps no form state, so "reset" just sends the browser back to
// the empty form. 303 See Other tells the browser to follow up with a GET
// even when the reset came from a POST.
func (h *PageHandler) Reset(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// parseForm converts the submitted strings to float64. strconv.ParseFloat
// returns an error instead of panicking on bad input, so every failure can
// be reported back to the user at once.
func parseForm(rawWeight, rawHeight string) (weight, height float64, errs []string) {
	var err error
	if weight, err = strconv.ParseFloat(rawWeight, 64); err != nil {
		errs = append(errs, "weight must be a number")
	}
	if height, err = strconv.ParseFloat(rawHeight, 64); err != nil {
		errs = append(errs, "height must be a number")
	}
	return weight, height, errs
}

// renderPage executes the template into a buffer first so a template error
// never leaves a half-written page behind.
func renderPage(w http.ResponseWriter, status int, d *pageData) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, d); err != nil {
		log.Printf("render page: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// formatNumber prints v with as few digits as needed: 70 not 70.000000.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
