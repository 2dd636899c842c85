// Package services holds the business logic of the BMI calculator. The core
// is a pure function: it takes a measurement and returns a BMI value, the
// matching category, and how that category should be displayed.
package services

import (
	"math"

	"github.com/dlfelps/bmi-calculator/internal/models"
)

// Band is one row of the category table. A BMI belongs to the first band
// whose Upper bound it is strictly below.
type Band struct {
	Upper    float64         `json:"upper"`
	Category models.Category `json:"category"`
	Color    string          `json:"color"`
	Emoji    string          `json:"emoji"`

	// ChartLabel and ChartBound describe this band's bar on the chart. The
	// last band is open-ended, so it is drawn up to a fixed bound instead.
	ChartLabel string  `json:"chart_label"`
	ChartBound float64 `json:"chart_bound"`
}

// Bands is the ordered threshold table. Intervals are half-open and
// contiguous: [0, 18.5), [18.5, 25), [25, 30), [30, +Inf).
var Bands = []Band{
	{Upper: 18.5, Category: models.CategoryUnderweight, Color: "#FFD700", Emoji: "🥦", ChartLabel: "Underweight", ChartBound: 18.5},
	{Upper: 25, Category: models.CategoryNormalWeight, Color: "#32CD32", Emoji: "✅", ChartLabel: "Normal", ChartBound: 25},
	{Upper: 30, Category: models.CategoryOverweight, Color: "#FFA500", Emoji: "⚠️", ChartLabel: "Overweight", ChartBound: 30},
	{Upper: math.Inf(1), Category: models.CategoryObese, Color: "#FF4500", Emoji: "🚨", ChartLabel: "Obese", ChartBound: 40},
}

// Classify returns the band a BMI value falls into.
func Classify(bmi float64) Band {
	for _, b := range Bands {
		if bmi < b.Upper {
			return b
		}
	}
	return Bands[len(Bands)-1]
}

// BandFor looks up the band of a category. Unknown categories get the last
// band, the same fallthrough Classify uses.
func BandFor(c models.Category) Band {
	for _, b := range Bands {
		if b.Category == c {
			return b
		}
	}
	return Bands[len(Bands)-1]
}

// Emoji returns the icon shown next to a category.
func Emoji(c models.Category) string {
	return BandFor(c).Emoji
}

// ColorOf returns the display color of a category.
func ColorOf(c models.Category) string {
	return BandFor(c).Color
}

// Messages carried by InvalidInputError.
const (
	ErrNotPositive = "weight and height must be positive numbers"
	ErrOutOfRange  = "weight and height give a BMI outside the range that can be displayed"
)

// Calculate computes BMI = weight / height² for a weight in kilograms and a
// height in meters. The category is chosen from the unrounded value; the
// returned BMI is rounded to two decimal places.
//
// It returns an *InvalidInputError when either value is not a finite,
// strictly positive number, or when the BMI they give overflows or rounds
// to zero.
func Calculate(weight, height float64) (models.BMIResult, error) {
	return CalculateMeasurement(models.Measurement{Weight: weight, Height: height})
}

// CalculateMeasurement is Calculate for a Measurement.
func CalculateMeasurement(m models.Measurement) (models.BMIResult, error) {
	if !m.Valid() {
		return models.BMIResult{}, &InvalidInputError{Message: ErrNotPositive}
	}

	bmi := m.Weight / (m.Height * m.Height)

	// Extreme but finite inputs can still overflow to +Inf or round down to
	// 0.00, neither of which is a BMI that can be shown or encoded as JSON.
	rounded := Round2(bmi)
	if math.IsInf(bmi, 0) || math.IsInf(rounded, 0) || rounded <= 0 {
		return models.BMIResult{}, &InvalidInputError{Message: ErrOutOfRange}
	}
	band := Classify(bmi)

	return models.BMIResult{
		BMI:      rounded,
		Category: band.Category,
		Color:    band.Color,
		Emoji:    band.Emoji,
	}, nil
}

// CalculateIn converts height from unit into meters before calculating, so
// 175 cm and 1.75 m give the same result.
func CalculateIn(weight, height float64, unit models.HeightUnit) (models.BMIResult, error) {
	return Calculate(weight, unit.ToMeters(height))
}

// Round2 rounds v to two decimal places, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ---------------------------------------------------------------------------
// Custom error types
// ---------------------------------------------------------------------------

// InvalidInputError is returned when a weight or height is not a positive
// number. Handlers surface its message to the user and keep serving.
type InvalidInputError struct {
	Message string
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	return e.Message
}
